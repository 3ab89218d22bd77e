package wild

// Match reports whether the pattern matches every supplied value under the
// default context: wildcards enabled, all relaxations off.
func Match(pattern any, values ...any) bool {
	return MatchIn(DefaultContext(), pattern, values...)
}

// Submatch reports whether the pattern is a structural sub-part of the
// value: extra mapping keys, extra set elements, and trailing sequence
// elements are all tolerated, and the Wildcard token is treated as a plain
// scalar.
func Submatch(pattern, value any) bool {
	return MatchIn(SubmatchContext(), pattern, value)
}

// MatchIn reports whether the pattern matches every supplied value under an
// explicit context. It is the general entry point; Match and Submatch fix
// the two common flag combinations.
func MatchIn(ctx Context, pattern any, values ...any) bool {
	for _, v := range values {
		if !matchValue(ctx, pattern, v) {
			return false
		}
	}
	return true
}

// SetMatch matches a set pattern against every supplied set value under the
// default context. The set matcher is invoked directly, with no shape
// inference; the Set parameter types carry the precondition that both
// operands are sets.
func SetMatch(pattern Set, values ...Set) bool {
	return SetMatchIn(DefaultContext(), pattern, values...)
}

// SetMatchIn is SetMatch with an explicit context.
func SetMatchIn(ctx Context, pattern Set, values ...Set) bool {
	for _, v := range values {
		if !matchSet(ctx, pattern, v) {
			return false
		}
	}
	return true
}

// matchValue dispatches one pattern/value pair to the rule for its shapes.
// Rule order matters: equality runs before the wildcard check so a pattern
// equal to the literal Wildcard token still matches it when WildcardOK is
// off, and composite dispatch runs only after both scalar rules fail.
func matchValue(ctx Context, pattern, value any) bool {
	if equalValues(pattern, value) {
		return true
	}
	if ctx.WildcardOK && IsWildcard(pattern) {
		return true
	}
	ps := shapeOf(pattern)
	if ps != shapeOf(value) {
		return false
	}
	switch ps {
	case shapeMapping:
		return matchMapping(ctx, pattern, value)
	case shapeSet:
		return matchSet(ctx, pattern.(Set), value.(Set))
	case shapeSequence:
		return matchSequence(ctx, pattern, value)
	default:
		// Scalars that survived the equality rule do not match.
		return false
	}
}
