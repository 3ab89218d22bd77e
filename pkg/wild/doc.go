// Package wild implements structural pattern matching over nested,
// heterogeneous data.
//
// A pattern and a value are compared shape by shape. Four shapes exist:
// scalars (any atomic value, including the Wildcard token), keyed mappings
// (any Go map), ordered sequences (any Go slice or array), and unordered
// sets (the Set type). Pattern and value never need to share a concrete Go
// type, only a shape: map[string]any matches map[any]any, []int matches
// []any, and numbers compare across int and float representations the way
// decoded JSON requires.
//
// Matching behavior is controlled by a Context of four independent flags:
//
//   - SubmapOK: a mapping value may carry keys the pattern does not mention
//   - SubsetOK: a set value may carry elements the pattern does not consume
//   - SubvecOK: only a prefix of a sequence value is checked
//   - WildcardOK: the Wildcard token matches any single value
//
// Four predicate families cover the common flag combinations:
//
//	wild.Match(pattern, v1, v2)          // wildcard on, relaxations off
//	wild.Submatch(pattern, v)            // relaxations on, wildcard off
//	wild.MatchIn(ctx, pattern, v)        // explicit context
//	wild.SetMatch(patternSet, valueSet)  // set matcher, no shape inference
//
// Set matching is a backtracking search: every pattern element must consume
// a distinct value element, and a failed candidate pairing is undone so the
// next candidate can be tried. Worst-case cost is combinatorial in the
// number of wildcard or composite pattern elements; the package promises
// correctness and termination, not a time bound.
//
// All predicates are pure: inputs are never mutated, no state survives a
// call, and concurrent use needs no locking.
package wild
