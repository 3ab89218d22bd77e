package document

import (
	"fmt"

	"github.com/wildmatch/wildmatch/pkg/wild"
)

// Options controls which document spellings are rewritten by Normalize.
type Options struct {
	// Wildcard is the reserved string that becomes wild.Wildcard. Empty
	// disables wildcard rewriting.
	Wildcard string

	// SetKey is the key of the single-key mapping envelope that marks a
	// set literal. Empty disables set rewriting.
	SetKey string
}

// DefaultOptions uses "*" for wildcards and "$set" for set envelopes.
func DefaultOptions() Options {
	return Options{Wildcard: "*", SetKey: "$set"}
}

// Normalize rewrites a decoded document into a matcher operand: reserved
// wildcard strings become the Wildcard token and set envelopes become Sets,
// at any depth. The input is never mutated; containers are rebuilt.
func Normalize(v any, opts Options) (any, error) {
	switch val := v.(type) {
	case string:
		if opts.Wildcard != "" && val == opts.Wildcard {
			return wild.Wildcard, nil
		}
		return val, nil
	case map[string]any:
		if isSetEnvelope(val, opts) {
			return normalizeSet(val[opts.SetKey], opts)
		}
		out := make(map[string]any, len(val))
		for k, child := range val {
			n, err := Normalize(child, opts)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		if len(val) == 1 {
			if inner, ok := val[opts.SetKey]; ok && opts.SetKey != "" {
				return normalizeSet(inner, opts)
			}
		}
		out := make(map[any]any, len(val))
		for k, child := range val {
			n, err := Normalize(child, opts)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			n, err := Normalize(child, opts)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	default:
		return v, nil
	}
}

// isSetEnvelope reports whether a mapping is exactly {SetKey: ...}.
func isSetEnvelope(m map[string]any, opts Options) bool {
	if opts.SetKey == "" || len(m) != 1 {
		return false
	}
	_, ok := m[opts.SetKey]
	return ok
}

func normalizeSet(inner any, opts Options) (any, error) {
	elems, ok := inner.([]any)
	if !ok {
		return nil, fmt.Errorf("set envelope %q must hold a sequence, got %T", opts.SetKey, inner)
	}
	normalized := make([]any, len(elems))
	for i, e := range elems {
		n, err := Normalize(e, opts)
		if err != nil {
			return nil, err
		}
		normalized[i] = n
	}
	return wild.NewSet(normalized...), nil
}
