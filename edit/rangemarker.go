package edit

import "fmt"

// RangeMarker performs no document operation; it only tracks a region
// through the edits applied around and within it. Typical use: marking a
// span of interest (a selection, a bookmark) that should move correctly as
// surrounding edits are applied.
type RangeMarker struct {
	editBase
}

// NewRangeMarker creates a marker over [offset, offset+length).
func NewRangeMarker(offset, length int) *RangeMarker {
	e := &RangeMarker{}
	e.editBase = newBase(e, offset, length)
	return e
}

func (e *RangeMarker) Kind() Kind { return KindRangeMarker }

func (e *RangeMarker) clone() Edit {
	c := &RangeMarker{}
	c.editBase = newBase(c, e.offset, e.length)
	return c
}

func (e *RangeMarker) accept0(v Visitor) {
	if v.VisitRangeMarker(e) {
		for _, c := range snapshot(e.children) {
			c.Accept(v)
		}
	}
}

func (e *RangeMarker) String() string {
	return fmt.Sprintf("RangeMarker[%d,%d)", e.offset, e.offset+e.length)
}
