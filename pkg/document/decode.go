package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"
)

// DecodeJSON parses a JSON document into a generic Go tree.
func DecodeJSON(data []byte) (any, error) {
	v, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return v, nil
}

// DecodeYAML parses a YAML document into a generic Go tree.
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return v, nil
}

// DecodeFile reads a document and decodes it by extension: .yaml and .yml
// are YAML, everything else is JSON.
func DecodeFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return DecodeJSON(data)
	}
}

// Load decodes a document file and normalizes it into a matcher operand.
func Load(path string, opts Options) (any, error) {
	v, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	n, err := Normalize(v, opts)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", path, err)
	}
	return n, nil
}
