// Package cli implements the wildmatch command-line interface.
//
// Commands mirror the library's predicate families:
//
//	wildmatch match PATTERN_FILE VALUE_FILE...      # wildcard on, relaxations off
//	wildmatch submatch PATTERN_FILE VALUE_FILE      # relaxations on, wildcard off
//	wildmatch set-match PATTERN_FILE VALUE_FILE...  # set matcher, both docs must be sets
//
// Pattern and value documents are JSON or YAML files; the reserved wildcard
// string and the {"$set": [...]} envelope are rewritten by pkg/document
// before matching. Relaxation flags (--submap, --subset, --subvec,
// --no-wildcard) override the per-command context defaults, --at scopes the
// match to a JSONPath selection, --schema validates value documents first,
// and --explain reports every divergence instead of a bare verdict.
//
// Exit codes: 0 when every value matches, 1 when any value does not, 2 on
// usage or I/O errors.
package cli
