// Package document turns JSON and YAML documents into matcher operands.
//
// Decoded documents are generic Go trees (map[string]any, []any, scalars).
// Normalize rewrites two reserved spellings into the matcher's own types:
//
//   - the reserved wildcard string (default "*") becomes wild.Wildcard
//   - a single-key mapping {"$set": [...]} becomes a wild.Set of its
//     normalized elements (the envelope key is configurable)
//
// Neither JSON nor YAML has a set literal or a wildcard, so both are
// spelled in plain data and rewritten here, at the boundary. Everything
// else passes through untouched.
//
// The package also wraps JSON Schema (Draft 2020-12) compilation so callers
// can validate value documents before handing them to the matcher.
package document
