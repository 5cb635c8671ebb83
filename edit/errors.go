package edit

import "fmt"

// Document is the external text store the engine mutates. Implementations
// live outside this package (see the document package for reference ones);
// the engine treats Document as an opaque collaborator and never inspects
// its internals.
type Document interface {
	// GetLength returns the current length of the document, in the same
	// unit offsets/lengths are expressed in throughout this package
	// (byte-like index positions into Get's return value).
	GetLength() int
	// Get returns the text in [offset, offset+length). Callers only ever
	// call this with bounds the processor has already validated against
	// the tree's own invariants.
	Get(offset, length int) string
	// Replace substitutes [offset, offset+length) with newText. It must
	// return a *BadLocation if the range falls outside the document.
	Replace(offset, length int, newText string) error
}

// MalformedTree reports a tree that violates the engine's structural
// invariants: a parent that doesn't cover a child, siblings that overlap,
// a zero-length edit with children, or a move/copy edit with no linked
// partner.
type MalformedTree struct {
	Parent Edit
	Child  Edit
	Reason string
}

func (e *MalformedTree) Error() string {
	return fmt.Sprintf("edit: malformed tree: %s", e.Reason)
}

// BadLocation reports a Document.Replace call whose range fell outside the
// document's current bounds.
type BadLocation struct {
	Offset    int
	Length    int
	DocLength int
}

func (e *BadLocation) Error() string {
	return fmt.Sprintf("edit: bad location: [%d,%d) exceeds document length %d", e.Offset, e.Offset+e.Length, e.DocLength)
}
