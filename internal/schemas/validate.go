// Package schemas validates raw match payloads against their JSON Schema
// before they are decoded into typed structs.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed match_request.schema.json
var matchRequestSchemaJSON string

// matchRequestSchema is compiled once; the schema ships embedded in the
// binary so there is no path resolution to get wrong.
var matchRequestSchema = mustCompile(matchRequestSchemaJSON)

func mustCompile(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("embedded schema does not compile: %v", err))
	}
	return schema
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("payload validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateMatchRequest checks a raw JSON payload against the match request
// schema. Returns *ValidationError listing each failing field; a payload
// that is not JSON at all fails with a single "(document)" entry.
func ValidateMatchRequest(payload []byte) error {
	result, err := matchRequestSchema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return &ValidationError{Errors: []FieldError{{
			Field:   "(document)",
			Message: err.Error(),
		}}}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
