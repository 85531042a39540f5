package guard_test

import (
	"errors"
	"sync"
	"testing"

	"storefront/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errProductFormNotBuilt = errors.New("product form must be created via newProductForm")

type productForm struct {
	name  string
	price float64
	guard guard.ConstructorGuard
}

func newProductForm(name string, price float64) productForm {
	return productForm{name: name, price: price, guard: guard.NewConstructorGuard()}
}

func (f productForm) Validate() error {
	return f.guard.Validate(errProductFormNotBuilt)
}

func TestConstructorGuard(t *testing.T) {
	constructed := guard.NewConstructorGuard()
	var zero guard.ConstructorGuard

	tests := []struct {
		name     string
		guard    guard.ConstructorGuard
		given    error
		expected error
	}{
		{name: "constructed with error", guard: constructed, given: errProductFormNotBuilt},
		{name: "constructed without error", guard: constructed},
		{name: "zero value with error", guard: zero, given: errProductFormNotBuilt, expected: errProductFormNotBuilt},
		{name: "zero value without error", guard: zero, expected: guard.ErrDefaultConstructorGuard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guard.Validate(tt.given)
			if tt.expected == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestConstructorGuard_Embedded(t *testing.T) {
	form := newProductForm("Knitted scarf", 45)
	require.NoError(t, form.Validate())

	copied := form
	copied.price = 50
	require.NoError(t, copied.Validate())

	assert.ErrorIs(t, productForm{name: "Knitted scarf"}.Validate(), errProductFormNotBuilt)
	assert.EqualError(t, productForm{}.guard.Validate(nil), "object must be created via its constructor")
}

func TestConstructorGuard_SharedAcrossGoroutines(t *testing.T) {
	form := newProductForm("Clay mug", 18)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				assert.NoError(t, form.Validate())
			}
		}()
	}
	wg.Wait()
}
