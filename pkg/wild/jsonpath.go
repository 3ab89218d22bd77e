package wild

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
)

// MatchAt matches the pattern against the value elements selected by a
// JSONPath expression. Paths that select several elements (wildcards,
// slices, filters) succeed when any selected element matches. A path that
// selects nothing never matches.
//
// An unparsable path is a caller error and is reported, not swallowed.
func MatchAt(ctx Context, path string, pattern, value any) (bool, error) {
	expr, err := jp.ParseString(path)
	if err != nil {
		return false, fmt.Errorf("parse json path %q: %w", path, err)
	}
	for _, candidate := range expr.Get(value) {
		if matchValue(ctx, pattern, candidate) {
			return true, nil
		}
	}
	return false, nil
}
