package vocabulary

import (
	"fmt"
	"strings"
	"sync"

	contextutils "wordacy/internal/utils"

	"github.com/xeipuuv/gojsonschema"
)

const schemaFile = "schema.json"

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	data, err := embedded.ReadFile(schemaFile)
	if err != nil {
		return nil, contextutils.WrapError(err, "failed to read vocabulary schema")
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, contextutils.WrapError(err, "failed to compile vocabulary schema")
	}
	return schema, nil
})

// Schema returns the JSON Schema vocabulary documents are checked against.
func Schema() ([]byte, error) {
	return embedded.ReadFile(schemaFile)
}

// validateSchema checks a generically decoded document against the schema
func validateSchema(doc interface{}) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return contextutils.WrapErrorf(contextutils.ErrInvalidFormat, "schema validation error: %v", err)
	}

	if !result.Valid() {
		var validationErrors []string
		for _, validationErr := range result.Errors() {
			validationErrors = append(validationErrors, fmt.Sprintf("%s: %s", validationErr.Field(), validationErr.Description()))
		}
		return contextutils.WrapErrorf(contextutils.ErrValidationFailed, "schema validation failed: %s", strings.Join(validationErrors, "; "))
	}

	return nil
}
