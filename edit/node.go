package edit

import "sync/atomic"

// Kind identifies a concrete edit variant, used by visitors, the tree
// serializer, and diagnostics that need to branch on type without a
// type switch.
type Kind uint8

const (
	KindInsert Kind = iota
	KindDelete
	KindReplace
	KindMulti
	KindRangeMarker
	KindMoveSource
	KindMoveTarget
	KindCopySource
	KindCopyTarget
)

func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "Insert"
	case KindDelete:
		return "Delete"
	case KindReplace:
		return "Replace"
	case KindMulti:
		return "Multi"
	case KindRangeMarker:
		return "RangeMarker"
	case KindMoveSource:
		return "MoveSource"
	case KindMoveTarget:
		return "MoveTarget"
	case KindCopySource:
		return "CopySource"
	case KindCopyTarget:
		return "CopyTarget"
	default:
		return "Unknown"
	}
}

// Region describes a half-open span [Offset, Offset+Length) in a document.
type Region struct {
	Offset int
	Length int
}

// ExclusiveEnd returns Offset+Length.
func (r Region) ExclusiveEnd() int { return r.Offset + r.Length }

// Edit is a node in an edit tree: a textual modification with a region, an
// optional parent, and zero or more disjoint children it covers. Concrete
// variants are Insert, Delete, Replace, Multi, RangeMarker, MoveSource,
// MoveTarget, CopySource and CopyTarget; there are no others, since base()
// is unexported and only those types embed editBase.
type Edit interface {
	// Offset returns the edit's current offset, or -1 if it has been
	// marked deleted by a region update pass.
	Offset() int
	// Length returns the edit's current length, or -1 if deleted.
	Length() int
	// ExclusiveEnd returns Offset()+Length(), or -1 if deleted.
	ExclusiveEnd() int
	// Region returns the edit's current span, or {-1,-1} if deleted.
	Region() Region
	// Parent returns the containing edit, or nil at the root.
	Parent() Edit
	// Children returns a snapshot of the edit's children in ascending
	// offset order. Mutating the returned slice has no effect on the tree.
	Children() []Edit
	// IsDeleted reports whether a region update pass marked this edit (or
	// an ancestor) as consumed by a deleting parent.
	IsDeleted() bool
	// Covers reports whether other's region lies entirely within this
	// edit's region.
	Covers(other Edit) bool
	// Kind identifies the concrete variant.
	Kind() Kind
	// Accept drives a Visitor over this edit and, if it elects to
	// descend, its children.
	Accept(v Visitor)

	// AddChild links c as a new child, in sorted position, after checking
	// coverage and sibling disjointness. It returns *MalformedTree on any
	// invariant violation.
	AddChild(c Edit) error
	// AddChildren calls AddChild for each edit in order, stopping at the
	// first error.
	AddChildren(cs []Edit) error
	// RemoveChildAt detaches and returns the child at index i.
	RemoveChildAt(i int) (Edit, error)
	// RemoveChild detaches c, returning its former index.
	RemoveChild(c Edit) (int, error)
	// RemoveChildren detaches and returns every child.
	RemoveChildren() []Edit

	// base gives package-internal code direct access to the shared
	// header; its being unexported is what seals this interface to edits
	// defined in this package.
	base() *editBase
	// clone produces a new, unparented, childless copy carrying only this
	// edit's offset and length (and, for types with one, its text).
	clone() Edit
	// postProcessCopy runs after a full structural copy, letting move/copy
	// variants rewire their partner reference through the identity map
	// built during the copy.
	postProcessCopy(orig Edit, copies map[Edit]Edit)
	// deletesChildren reports whether this edit's own apply consumes the
	// document range its children occupy, so they are marked deleted by
	// the region update pass.
	deletesChildren() bool
	// computeSource runs during pass B; only move/copy source edits do
	// anything here.
	computeSource(doc Document) error
	// applyOne performs this edit's own document mutation, if it has one,
	// after its children have already been applied and its length
	// adjusted to their net effect. It returns the content-length delta
	// this edit itself contributes (on top of its children's).
	applyOne(doc Document, undo *undoBuilder) (int, error)
	// accept0 invokes the visitor's type-specific Visit method and, if it
	// returns true, recurses into a snapshot of the children.
	accept0(v Visitor)
	// String returns a short debug representation.
	String() string
}

// editBase is the header embedded by every concrete edit type. Its
// pointer-receiver methods are promoted onto each concrete type, giving
// them Offset/Length/Parent/Children/tree-mutation/etc. for free; only the
// handful of methods above that vary per type need an override.
type editBase struct {
	self     Edit
	offset   int
	length   int
	parent   Edit
	children []Edit
	delta    int
}

var seqCounter int64

func nextSeq() int64 { return atomic.AddInt64(&seqCounter, 1) }

func newBase(self Edit, offset, length int) editBase {
	return editBase{self: self, offset: offset, length: length}
}

func (b *editBase) base() *editBase { return b }

func (b *editBase) Offset() int { return b.offset }
func (b *editBase) Length() int { return b.length }

func (b *editBase) ExclusiveEnd() int {
	if b.IsDeleted() {
		return -1
	}
	return b.offset + b.length
}

func (b *editBase) Region() Region {
	if b.IsDeleted() {
		return Region{-1, -1}
	}
	return Region{b.offset, b.length}
}

func (b *editBase) Parent() Edit { return b.parent }

func (b *editBase) Children() []Edit {
	return snapshot(b.children)
}

// childrenRef exposes the live slice for package-internal traversal where a
// snapshot isn't needed (tree mutation, the four apply passes, the copier).
func (b *editBase) childrenRef() []Edit { return b.children }

func (b *editBase) IsDeleted() bool { return b.offset == -1 && b.length == -1 }

func (b *editBase) Covers(other Edit) bool {
	if b.IsDeleted() || other.IsDeleted() {
		return false
	}
	if b.length == 0 {
		// An insertion point can't cover anything, not even another
		// zero-length edit at the same offset.
		return false
	}
	return b.offset <= other.Offset() && other.ExclusiveEnd() <= b.offset+b.length
}

func (b *editBase) Accept(v Visitor) {
	v.PreVisit(b.self)
	b.self.accept0(v)
	v.PostVisit(b.self)
}

// Default hooks; concrete types override where their behavior differs.
func (b *editBase) deletesChildren() bool                             { return false }
func (b *editBase) computeSource(Document) error                      { return nil }
func (b *editBase) applyOne(Document, *undoBuilder) (int, error)      { return 0, nil }
func (b *editBase) postProcessCopy(Edit, map[Edit]Edit)                {}

func (b *editBase) AddChild(c Edit) error           { return addChildTo(b.self, c) }
func (b *editBase) AddChildren(cs []Edit) error     { return addChildrenTo(b.self, cs) }
func (b *editBase) RemoveChildAt(i int) (Edit, error) { return removeChildAt(b.self, i) }
func (b *editBase) RemoveChild(c Edit) (int, error) { return removeChild(b.self, c) }
func (b *editBase) RemoveChildren() []Edit          { return removeAllChildren(b.self) }

func snapshot(in []Edit) []Edit {
	out := make([]Edit, len(in))
	copy(out, in)
	return out
}

func markDeletedRecursive(e Edit) {
	b := e.base()
	b.offset, b.length = -1, -1
	for _, c := range b.children {
		markDeletedRecursive(c)
	}
}

func depth(e Edit) int {
	max := 0
	for _, c := range e.base().children {
		if d := depth(c); d > max {
			max = d
		}
	}
	return max + 1
}
