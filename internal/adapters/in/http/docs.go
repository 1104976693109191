package http

import (
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const docsPath = "/swagger/index.html"

// openAPIDocument serves the contract to swagger UI through the swag registry.
type openAPIDocument struct {
	json string
}

func (d openAPIDocument) ReadDoc() string {
	return d.json
}

var registerDocsOnce sync.Once

// registerDocs publishes doc under /swagger/*. The swag registry is process
// wide and accepts one document per name, so only the first doc registers.
func registerDocs(e *echo.Echo, doc *openapi3.T) error {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	registerDocsOnce.Do(func() {
		swag.Register(swag.Name, openAPIDocument{json: string(encoded)})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
