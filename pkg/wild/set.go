package wild

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Set is an unordered collection of structurally distinct values. Go has no
// native set and composite elements cannot serve as map keys, so Set is
// backed by a slice with structural-equality membership. Element order is
// insertion order and carries no meaning for matching.
//
// The zero Set is empty and ready to use.
type Set struct {
	elems []any
}

// NewSet builds a Set from the given elements, dropping structural
// duplicates. Two elements are duplicates when they match under an empty
// Context (deep equality, no wildcard, no relaxations), so nested sets
// deduplicate regardless of insertion order.
func NewSet(elems ...any) Set {
	var s Set
	for _, e := range elems {
		if !s.Contains(e) {
			s.elems = append(s.elems, e)
		}
	}
	return s
}

// AsSet converts an untyped value to a Set, failing when the value is not
// one. It is the checked form of the precondition that the set-only entry
// points encode in their parameter types.
func AsSet(v any) (Set, error) {
	s, ok := v.(Set)
	if !ok {
		return Set{}, fmt.Errorf("wild: not a set: %T", v)
	}
	return s, nil
}

// Len returns the number of elements.
func (s Set) Len() int {
	return len(s.elems)
}

// Contains reports whether v is structurally present in the set.
func (s Set) Contains(v any) bool {
	for _, e := range s.elems {
		if matchValue(Context{}, e, v) {
			return true
		}
	}
	return false
}

// Elements returns a copy of the elements in insertion order.
func (s Set) Elements() []any {
	out := make([]any, len(s.elems))
	copy(out, s.elems)
	return out
}

// MarshalJSON renders the elements as a JSON array, for match reports.
// Element order is insertion order; the set-ness is not round-tripped.
func (s Set) MarshalJSON() ([]byte, error) {
	if s.elems == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.elems)
}

// String renders the set in a brace-delimited form for debugging.
func (s Set) String() string {
	parts := make([]string, len(s.elems))
	for i, e := range s.elems {
		parts[i] = fmt.Sprint(e)
	}
	return "set{" + strings.Join(parts, " ") + "}"
}

// matchSet matches an unordered pattern set against an unordered value set.
// Each pattern element must consume a distinct value element; no value
// element serves two pattern elements.
func matchSet(ctx Context, pattern, value Set) bool {
	return matchSetElems(ctx, pattern.elems, value.elems)
}

// matchSetElems is the backtracking core. Both slices are treated as
// immutable: every recursive step builds a reduced copy, so a failed
// candidate pairing needs no undo — the caller's slices are intact for the
// next candidate.
func matchSetElems(ctx Context, pattern, value []any) bool {
	if len(pattern) == 0 {
		return ctx.SubsetOK || len(value) == 0
	}
	p, rest := pattern[0], pattern[1:]

	// A scalar, wildcard-free element can only be consumed by a literally
	// equal value element, and equal candidates leave identical remainders,
	// so the first hit decides without backtracking.
	if shapeOf(p) == shapeScalar && !(ctx.WildcardOK && IsWildcard(p)) {
		for i, v := range value {
			if equalValues(p, v) {
				return matchSetElems(ctx, rest, removeAt(value, i))
			}
		}
		return false
	}

	// Wildcard and composite elements: try every remaining value element as
	// a candidate. A failed pairing must not abort the search; the next
	// candidate is tried with the original slices.
	for i, v := range value {
		if matchValue(ctx, p, v) && matchSetElems(ctx, rest, removeAt(value, i)) {
			return true
		}
	}
	return false
}

// removeAt returns a fresh slice with the i-th element dropped.
func removeAt(elems []any, i int) []any {
	out := make([]any, 0, len(elems)-1)
	out = append(out, elems[:i]...)
	return append(out, elems[i+1:]...)
}
