package edit

import "fmt"

// Multi is a pure grouping edit: it performs no document operation of its
// own. Its region auto-expands to cover its children as they're added, and
// shrinks back to 0/0 when emptied.
type Multi struct {
	editBase
}

// NewMulti creates an empty group edit.
func NewMulti() *Multi {
	e := &Multi{}
	e.editBase = newBase(e, 0, 0)
	return e
}

func (e *Multi) Kind() Kind { return KindMulti }

func (e *Multi) clone() Edit {
	c := &Multi{}
	c.editBase = newBase(c, e.offset, e.length)
	return c
}

func (e *Multi) accept0(v Visitor) {
	if v.VisitMulti(e) {
		for _, c := range snapshot(e.children) {
			c.Accept(v)
		}
	}
}

func (e *Multi) String() string {
	return fmt.Sprintf("Multi[%d,%d)(%d children)", e.offset, e.offset+e.length, len(e.children))
}
