package wild

import "reflect"

// Specificity weights. Concrete scalar leaves pin the most data, wildcards
// consume a slot without pinning anything, and containers add a small
// structural bonus on top of their children.
const (
	// ScoreScalar is the weight of a concrete scalar leaf.
	ScoreScalar = 5

	// ScoreKey is the weight of each mapping key the pattern names.
	ScoreKey = 3

	// ScoreContainer is the structural bonus for each mapping, sequence,
	// or set in the pattern.
	ScoreContainer = 2

	// ScoreWildcard is the weight of a wildcard leaf.
	ScoreWildcard = 1
)

// Specificity scores a pattern by how much it pins down. Among several
// patterns that all match a value, the highest score is the most precise
// description of it.
func Specificity(pattern any) int {
	if IsWildcard(pattern) {
		return ScoreWildcard
	}
	switch shapeOf(pattern) {
	case shapeMapping:
		pm := reflect.ValueOf(pattern)
		score := ScoreContainer
		iter := pm.MapRange()
		for iter.Next() {
			score += ScoreKey + Specificity(iter.Value().Interface())
		}
		return score
	case shapeSet:
		score := ScoreContainer
		for _, e := range pattern.(Set).elems {
			score += Specificity(e)
		}
		return score
	case shapeSequence:
		ps := reflect.ValueOf(pattern)
		score := ScoreContainer
		for i := 0; i < ps.Len(); i++ {
			score += Specificity(ps.Index(i).Interface())
		}
		return score
	default:
		return ScoreScalar
	}
}

// BestMatch returns the index of the matching pattern with the highest
// specificity, preferring the earliest on ties. The second result is false
// when no pattern matches.
func BestMatch(ctx Context, value any, patterns ...any) (int, bool) {
	best := -1
	bestScore := -1
	for i, p := range patterns {
		if !matchValue(ctx, p, value) {
			continue
		}
		if s := Specificity(p); s > bestScore {
			best, bestScore = i, s
		}
	}
	return best, best >= 0
}
