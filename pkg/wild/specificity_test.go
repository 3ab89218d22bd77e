package wild

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecificity(t *testing.T) {
	tests := []struct {
		name    string
		pattern any
		want    int
	}{
		{"wildcard", Wildcard, ScoreWildcard},
		{"scalar", 42, ScoreScalar},
		{"nil scalar", nil, ScoreScalar},
		{"empty sequence", []any{}, ScoreContainer},
		{"sequence of scalars", []any{1, 2}, ScoreContainer + 2*ScoreScalar},
		{"sequence with wildcard", []any{1, Wildcard}, ScoreContainer + ScoreScalar + ScoreWildcard},
		{"mapping", map[string]any{"a": 1}, ScoreContainer + ScoreKey + ScoreScalar},
		{"mapping with wildcard value", map[string]any{"a": Wildcard}, ScoreContainer + ScoreKey + ScoreWildcard},
		{"set", NewSet(1, Wildcard), ScoreContainer + ScoreScalar + ScoreWildcard},
		{
			"nested",
			map[string]any{"a": []any{Wildcard}},
			ScoreContainer + ScoreKey + ScoreContainer + ScoreWildcard,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Specificity(tt.pattern))
		})
	}
}

func TestSpecificityOrdersLooseToTight(t *testing.T) {
	value := map[string]any{"id": 7, "name": "x"}
	loose := Wildcard
	partial := map[string]any{"id": Wildcard, "name": Wildcard}
	exact := map[string]any{"id": 7, "name": "x"}

	assert.Less(t, Specificity(loose), Specificity(partial))
	assert.Less(t, Specificity(partial), Specificity(exact))

	// Sanity: they all match the value.
	assert.True(t, Match(loose, value))
	assert.True(t, Match(partial, value))
	assert.True(t, Match(exact, value))
}

func TestBestMatch(t *testing.T) {
	value := map[string]any{"id": 7, "name": "x"}
	patterns := []any{
		Wildcard,
		map[string]any{"id": Wildcard, "name": Wildcard},
		map[string]any{"id": 7, "name": "x"},
		map[string]any{"id": 8},
	}

	idx, ok := BestMatch(DefaultContext(), value, patterns...)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	// No candidate matches.
	_, ok = BestMatch(DefaultContext(), 99, map[string]any{"a": 1}, []any{1})
	assert.False(t, ok)

	// Ties go to the earliest pattern.
	idx, ok = BestMatch(DefaultContext(), 5, Wildcard, Wildcard)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}
