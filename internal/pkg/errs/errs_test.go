package errs_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "order not found",
			err:      errs.NewObjectNotFoundError("order", "ORD-009"),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: ORD-009",
		},
		{
			name:     "order not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("order", "ORD-009", cause),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: param is: order, ID is: ORD-009 (cause: connection reset)",
		},
		{
			name:     "duplicate order",
			err:      errs.NewObjectAlreadyExistsError("order", "ORD-001"),
			sentinel: errs.ErrObjectAlreadyExists,
			message:  "object already exists: ORD-001",
		},
		{
			name:     "duplicate order with cause",
			err:      errs.NewObjectAlreadyExistsErrorWithCause("order", "ORD-001", cause),
			sentinel: errs.ErrObjectAlreadyExists,
			message:  "object already exists: param is: order, ID is: ORD-001 (cause: connection reset)",
		},
		{
			name:     "unknown status",
			err:      errs.NewValueIsInvalidError("status"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: status",
		},
		{
			name:     "unknown status with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("status", errors.New(`"lost" is not a valid status`)),
			sentinel: errs.ErrValueIsInvalid,
			message:  `value is invalid: status (cause: "lost" is not a valid status)`,
		},
		{
			name:     "missing customer name",
			err:      errs.NewValueIsRequiredError("customer name"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: customer name",
		},
		{
			name:     "missing customer name with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("customer name", cause),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: customer name (cause: connection reset)",
		},
		{
			name:     "negative price",
			err:      errs.NewValueIsOutOfRangeError("price", -5, 0, "+Inf"),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: -5 is price, min value is 0, max value is +Inf",
		},
		{
			name:     "negative price with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("price", -5, 0, "+Inf", cause),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: -5 is price, min value is 0, max value is +Inf (cause: connection reset)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestErrorFields(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := errs.NewObjectAlreadyExistsErrorWithCause("product", "9b2f", cause)

	assert.Equal(t, "product", err.ParamName)
	assert.Equal(t, "9b2f", err.ID)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())

	outOfRange := errs.NewValueIsOutOfRangeError("amount", -1.5, 0, "+Inf")
	assert.Equal(t, -1.5, outOfRange.Value)
	assert.Equal(t, 0, outOfRange.Min)
	assert.Equal(t, "+Inf", outOfRange.Max)
	require.NoError(t, outOfRange.Cause)
}

func TestSanitize_KeepsIdentifiersOnOneLine(t *testing.T) {
	notFound := errs.NewObjectNotFoundError("order", "ORD-001\nlevel=error msg=forged")
	assert.Equal(t, "object not found: ORD-001 level=error msg=forged", notFound.Error())

	outOfRange := errs.NewValueIsOutOfRangeError("note", "first\r\nsecond", 0, 10)
	assert.NotContains(t, outOfRange.Error(), "\n")
	assert.Contains(t, outOfRange.Error(), "first second")
}

func TestJoinedErrors(t *testing.T) {
	err := errors.Join(
		errs.NewValueIsRequiredError("name"),
		errs.NewValueIsInvalidError("availability"),
	)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)

	var invalid *errs.ValueIsInvalidError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "availability", invalid.ParamName)
}
