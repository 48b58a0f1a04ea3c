package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Validator checks JSON documents against one compiled JSON Schema.
// It is safe for concurrent use.
type Validator struct {
	name   string
	schema *gojsonschema.Schema
}

// Compile parses schemaJSON once so requests only pay for validation.
func Compile(name, schemaJSON string) (*Validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return &Validator{name: name, schema: schema}, nil
}

// MustCompile is Compile for schemas embedded in the binary.
func MustCompile(name, schemaJSON string) *Validator {
	v, err := Compile(name, schemaJSON)
	if err != nil {
		panic(err)
	}
	return v
}

func (v *Validator) Name() string {
	return v.name
}

// ValidateBytes validates a raw JSON document. The error is non-nil only when
// body is not JSON at all; schema violations are reported in the result.
func (v *Validator) ValidateBytes(body []byte) (*ValidationResult, error) {
	return v.validate(gojsonschema.NewBytesLoader(body))
}

// ValidateInput validates an already-decoded document.
func (v *Validator) ValidateInput(input interface{}) (*ValidationResult, error) {
	return v.validate(gojsonschema.NewGoLoader(input))
}

func (v *Validator) validate(doc gojsonschema.JSONLoader) (*ValidationResult, error) {
	result, err := v.schema.Validate(doc)
	if err != nil {
		return nil, fmt.Errorf("validate against %s: %w", v.name, err)
	}

	errs := make([]ValidationError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errs = append(errs, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
			Code:    strings.ToUpper(desc.Type()),
		})
	}

	return &ValidationResult{
		Valid:  result.Valid(),
		Errors: errs,
	}, nil
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// HasErrors checks if validation has errors for specific field
func (vr *ValidationResult) HasErrors(field string) bool {
	for _, err := range vr.Errors {
		if err.Field == field {
			return true
		}
	}
	return false
}
