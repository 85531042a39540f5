package servers

import (
	"context"
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var rawSpec []byte

var (
	loadOnce   sync.Once
	loadedSpec *openapi3.T
	loadErr    error
)

// GetSwagger parses and validates the embedded API contract. The document is
// loaded once and shared.
func GetSwagger() (*openapi3.T, error) {
	loadOnce.Do(func() {
		doc, err := openapi3.NewLoader().LoadFromData(rawSpec)
		if err != nil {
			loadErr = err
			return
		}
		if err = doc.Validate(context.Background()); err != nil {
			loadErr = err
			return
		}
		loadedSpec = doc
	})
	return loadedSpec, loadErr
}

// swaggerDoc serves the contract as JSON to the Swagger UI.
type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	doc, err := GetSwagger()
	if err != nil {
		return "{}"
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func init() {
	swag.Register(swag.Name, swaggerDoc{})
}
