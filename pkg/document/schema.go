package document

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SchemaValidator validates decoded documents against a JSON Schema. The
// schema is compiled on first use and reused across Validate calls.
type SchemaValidator struct {
	data   []byte
	once   sync.Once
	schema *jsonschema.Schema
	err    error
}

// NewSchemaValidator wraps raw JSON Schema source. Compilation is deferred
// until the first Validate call.
func NewSchemaValidator(data []byte) *SchemaValidator {
	return &SchemaValidator{data: data}
}

// Validate checks a decoded document against the schema. It fails with the
// compilation error if the schema itself is malformed.
func (v *SchemaValidator) Validate(doc any) error {
	v.once.Do(func() {
		v.schema, v.err = compileSchema(v.data)
	})
	if v.err != nil {
		return fmt.Errorf("compile schema: %w", v.err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return fmt.Errorf("document does not satisfy schema: %w", err)
	}
	return nil
}

func compileSchema(data []byte) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}
