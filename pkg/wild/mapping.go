package wild

import "reflect"

// matchMapping matches a mapping pattern against a mapping value. The
// key-set condition is settled before any per-key recursion: without
// SubmapOK the key sets must be identical, with it the pattern's keys must
// be a subset of the value's. Value keys outside the pattern are never
// inspected.
func matchMapping(ctx Context, pattern, value any) bool {
	pm := reflect.ValueOf(pattern)
	vm := reflect.ValueOf(value)

	if ctx.SubmapOK {
		if pm.Len() > vm.Len() {
			return false
		}
	} else if pm.Len() != vm.Len() {
		return false
	}

	// Key sets are unique, so equal lengths plus pattern-key presence
	// imply key-set equality.
	iter := pm.MapRange()
	for iter.Next() {
		if _, ok := mapLookup(vm, iter.Key()); !ok {
			return false
		}
	}

	iter = pm.MapRange()
	for iter.Next() {
		elem, _ := mapLookup(vm, iter.Key())
		if !matchValue(ctx, iter.Value().Interface(), elem) {
			return false
		}
	}
	return true
}
