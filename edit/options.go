package edit

// Flags controls which of Apply's optional side effects run.
type Flags uint8

const (
	// FlagNone applies document mutations only: no undo tree, no region
	// update.
	FlagNone Flags = 0
	// FlagCreateUndo makes Apply return a tree that, applied in turn,
	// reverses this one.
	FlagCreateUndo Flags = 1 << 0
	// FlagUpdateRegions makes Apply leave each surviving edit's offset
	// pointing at where its content now lives in the document, and mark
	// edits consumed by a deleting ancestor as deleted.
	FlagUpdateRegions Flags = 1 << 1
)

// DefaultFlags is the combination Apply uses when a caller wants the
// common case: an undo tree, and regions tracking their new positions.
const DefaultFlags = FlagCreateUndo | FlagUpdateRegions

// Has reports whether f includes every bit set in x.
func (f Flags) Has(x Flags) bool { return f&x == x }

// ConsiderFunc decides whether an edit's own hooks (partner-link check,
// source computation, document mutation) run during Apply. Its children are always visited
// regardless of the edit's own verdict. A nil ConsiderFunc considers every
// edit.
type ConsiderFunc func(Edit) bool

func considerAll(Edit) bool { return true }

type applyConfig struct {
	consider ConsiderFunc
	maxDepth int
}

// ApplyOption configures a single Apply call.
type ApplyOption func(*applyConfig)

// WithConsider supplies the inclusion predicate Apply consults during
// passes A, B and C.
func WithConsider(fn ConsiderFunc) ApplyOption {
	return func(c *applyConfig) {
		if fn != nil {
			c.consider = fn
		}
	}
}

// WithMaxDepth rejects trees deeper than n before any mutation runs. n<=0
// disables the check.
func WithMaxDepth(n int) ApplyOption {
	return func(c *applyConfig) { c.maxDepth = n }
}
