package wild

// Context controls how much slack the matcher grants the value side.
// A Context is immutable for the duration of one top-level match call;
// every recursive comparison sees the same flags.
type Context struct {
	// SubmapOK allows a mapping value to carry keys beyond the pattern's
	// key set. When false, the key sets must be identical.
	SubmapOK bool

	// SubsetOK allows a set value to keep elements the pattern did not
	// consume. When false, every value element must be consumed.
	SubsetOK bool

	// SubvecOK allows a sequence pattern to check only a prefix of the
	// value. When false, lengths must be equal.
	SubvecOK bool

	// WildcardOK makes the Wildcard token match any single value. When
	// false, the token is compared by plain equality like any scalar.
	WildcardOK bool
}

// DefaultContext is the context used by Match: wildcards enabled, all
// relaxations off.
func DefaultContext() Context {
	return Context{WildcardOK: true}
}

// SubmatchContext is the context used by Submatch: all three relaxations
// enabled, wildcards off. It answers "is the pattern a structural sub-part
// of the value".
func SubmatchContext() Context {
	return Context{SubmapOK: true, SubsetOK: true, SubvecOK: true}
}

// Option overrides a single Context flag. Options are merged over
// DefaultContext by NewContext, so callers only name the flags they change.
type Option func(*Context)

// SubmapOK sets the Context.SubmapOK flag.
func SubmapOK(ok bool) Option {
	return func(c *Context) { c.SubmapOK = ok }
}

// SubsetOK sets the Context.SubsetOK flag.
func SubsetOK(ok bool) Option {
	return func(c *Context) { c.SubsetOK = ok }
}

// SubvecOK sets the Context.SubvecOK flag.
func SubvecOK(ok bool) Option {
	return func(c *Context) { c.SubvecOK = ok }
}

// WildcardOK sets the Context.WildcardOK flag.
func WildcardOK(ok bool) Option {
	return func(c *Context) { c.WildcardOK = ok }
}

// NewContext returns DefaultContext modified by the given options. Any
// combination of flags is legal.
func NewContext(opts ...Option) Context {
	ctx := DefaultContext()
	for _, opt := range opts {
		opt(&ctx)
	}
	return ctx
}
