package wild

import "reflect"

// matchSequence matches an ordered-sequence pattern against an ordered-
// sequence value position by position. Without SubvecOK the lengths must be
// equal; with it the pattern may be a prefix and trailing value elements go
// unchecked.
func matchSequence(ctx Context, pattern, value any) bool {
	ps := reflect.ValueOf(pattern)
	vs := reflect.ValueOf(value)

	np, nv := ps.Len(), vs.Len()
	if np != nv && !(ctx.SubvecOK && np < nv) {
		return false
	}
	for i := 0; i < np; i++ {
		if !matchValue(ctx, ps.Index(i).Interface(), vs.Index(i).Interface()) {
			return false
		}
	}
	return true
}
