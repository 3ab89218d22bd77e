package wild

import (
	"fmt"
	"reflect"
	"sort"
)

// Divergence describes one place where a pattern failed against a value.
type Divergence struct {
	Path    string `json:"path"`
	Reason  string `json:"reason"`
	Pattern any    `json:"pattern,omitempty"`
	Value   any    `json:"value,omitempty"`
}

// Report is the outcome of Explain: the overall verdict plus every
// divergence found. A matching pair produces an empty divergence list.
type Report struct {
	Matched     bool         `json:"matched"`
	Divergences []Divergence `json:"divergences,omitempty"`
}

// Divergence reasons.
const (
	ReasonValueMismatch  = "value mismatch"
	ReasonShapeMismatch  = "shape mismatch"
	ReasonMissingKey     = "missing key"
	ReasonUnexpectedKeys = "unexpected keys"
	ReasonLengthMismatch = "length mismatch"
	ReasonSetAlignment   = "set elements could not be aligned"
)

// Explain walks the pattern/value pair the way MatchIn does but without
// short-circuiting across mapping keys and sequence positions, so a failed
// match reports every divergent location instead of just the first. Set
// failures are reported at the set's own path: the assignment search does
// not decompose into per-element blame.
//
// Explain is read-only and agrees with MatchIn: Report.Matched is true
// exactly when MatchIn(ctx, pattern, value) is.
func Explain(ctx Context, pattern, value any) *Report {
	r := &Report{}
	explainValue(ctx, "$", pattern, value, r)
	r.Matched = len(r.Divergences) == 0
	return r
}

func (r *Report) add(path, reason string, pattern, value any) {
	r.Divergences = append(r.Divergences, Divergence{
		Path:    path,
		Reason:  reason,
		Pattern: pattern,
		Value:   value,
	})
}

func explainValue(ctx Context, path string, pattern, value any, r *Report) {
	if equalValues(pattern, value) {
		return
	}
	if ctx.WildcardOK && IsWildcard(pattern) {
		return
	}
	ps := shapeOf(pattern)
	if ps != shapeOf(value) {
		r.add(path, ReasonShapeMismatch, pattern, value)
		return
	}
	switch ps {
	case shapeMapping:
		explainMapping(ctx, path, pattern, value, r)
	case shapeSet:
		if !matchSet(ctx, pattern.(Set), value.(Set)) {
			r.add(path, ReasonSetAlignment, pattern, value)
		}
	case shapeSequence:
		explainSequence(ctx, path, pattern, value, r)
	default:
		r.add(path, ReasonValueMismatch, pattern, value)
	}
}

func explainMapping(ctx Context, path string, pattern, value any, r *Report) {
	pm := reflect.ValueOf(pattern)
	vm := reflect.ValueOf(value)

	if !ctx.SubmapOK {
		if extra := extraKeys(pm, vm); len(extra) > 0 {
			r.add(path, ReasonUnexpectedKeys, pattern, extra)
		}
	}

	// Deterministic order keeps reports stable across runs.
	type entry struct {
		label string
		key   reflect.Value
	}
	entries := make([]entry, 0, pm.Len())
	iter := pm.MapRange()
	for iter.Next() {
		k := iter.Key()
		entries = append(entries, entry{fmt.Sprint(k.Interface()), k})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].label < entries[j].label })

	for _, e := range entries {
		childPath := path + "." + e.label
		elem, ok := mapLookup(vm, e.key)
		if !ok {
			r.add(childPath, ReasonMissingKey, pm.MapIndex(e.key).Interface(), nil)
			continue
		}
		explainValue(ctx, childPath, pm.MapIndex(e.key).Interface(), elem, r)
	}
}

func explainSequence(ctx Context, path string, pattern, value any, r *Report) {
	ps := reflect.ValueOf(pattern)
	vs := reflect.ValueOf(value)

	np, nv := ps.Len(), vs.Len()
	if np != nv && !(ctx.SubvecOK && np < nv) {
		r.add(path, ReasonLengthMismatch, np, nv)
	}
	// Walk the shared prefix even after a length mismatch so positional
	// divergences still show up in the report.
	n := np
	if nv < n {
		n = nv
	}
	for i := 0; i < n; i++ {
		explainValue(ctx, fmt.Sprintf("%s[%d]", path, i), ps.Index(i).Interface(), vs.Index(i).Interface(), r)
	}
}

// extraKeys lists the value-map keys absent from the pattern map.
func extraKeys(pm, vm reflect.Value) []string {
	var extra []string
	iter := vm.MapRange()
	for iter.Next() {
		if _, ok := mapLookup(pm, iter.Key()); !ok {
			extra = append(extra, fmt.Sprint(iter.Key().Interface()))
		}
	}
	sort.Strings(extra)
	return extra
}
