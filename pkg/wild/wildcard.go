package wild

// wildcardToken is the type of the Wildcard sentinel. A dedicated struct
// type cannot collide with legitimate pattern or value data.
type wildcardToken struct{}

// Wildcard is the sentinel pattern element that, when Context.WildcardOK is
// enabled, matches any single value at the position, key, or set slot where
// it appears. It always consumes exactly one value, never zero or many.
//
// With WildcardOK disabled the token is compared like any other scalar, so
// it only matches a value that is literally the Wildcard token.
var Wildcard wildcardToken

// String returns the conventional textual form of the wildcard.
func (wildcardToken) String() string {
	return "*"
}

// MarshalJSON renders the token as its textual form, for match reports.
func (wildcardToken) MarshalJSON() ([]byte, error) {
	return []byte(`"*"`), nil
}

// IsWildcard reports whether v is the Wildcard token.
func IsWildcard(v any) bool {
	_, ok := v.(wildcardToken)
	return ok
}
