package wild

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeOf(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want shape
	}{
		{"nil", nil, shapeScalar},
		{"int", 1, shapeScalar},
		{"string", "ab", shapeScalar},
		{"bool", true, shapeScalar},
		{"wildcard", Wildcard, shapeScalar},
		{"string map", map[string]any{}, shapeMapping},
		{"any map", map[any]any{}, shapeMapping},
		{"typed map", map[string]int{}, shapeMapping},
		{"slice", []any{}, shapeSequence},
		{"typed slice", []int{1}, shapeSequence},
		{"array", [2]int{1, 2}, shapeSequence},
		{"bytes", []byte("x"), shapeSequence},
		{"set", NewSet(1), shapeSet},
		{"empty set", Set{}, shapeSet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shapeOf(tt.v))
		})
	}
}

func TestEqualValues(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"identical ints", 3, 3, true},
		{"int vs int64", 3, int64(3), true},
		{"int vs float64", 3, 3.0, true},
		{"uint vs float", uint8(7), 7.0, true},
		{"different numbers", 3, 4.0, false},
		{"number vs string", 3, "3", false},
		{"both nil", nil, nil, true},
		{"one nil", nil, "", false},
		{"deep equal maps", map[string]any{"a": []any{1}}, map[string]any{"a": []any{1}}, true},
		{"nested numeric types differ", map[string]any{"a": 1}, map[string]any{"a": 1.0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, equalValues(tt.a, tt.b))
		})
	}
}
