package edit

import "fmt"

// Delete removes [Offset, Offset+Length). Any children it has are
// consumed by its own apply and marked deleted by the region update pass.
type Delete struct {
	editBase
}

// NewDelete creates a Delete edit over [offset, offset+length).
func NewDelete(offset, length int) *Delete {
	e := &Delete{}
	e.editBase = newBase(e, offset, length)
	return e
}

func (e *Delete) Kind() Kind              { return KindDelete }
func (e *Delete) deletesChildren() bool   { return true }

func (e *Delete) clone() Edit {
	c := &Delete{}
	c.editBase = newBase(c, e.offset, e.length)
	return c
}

func (e *Delete) applyOne(doc Document, undo *undoBuilder) (int, error) {
	adjusted := e.length
	old := doc.Get(e.offset, adjusted)
	if err := doc.Replace(e.offset, adjusted, ""); err != nil {
		return 0, err
	}
	if undo != nil {
		undo.appendInverse(e.offset, 0, old)
	}
	e.length = 0
	return -adjusted, nil
}

func (e *Delete) accept0(v Visitor) {
	if v.VisitDelete(e) {
		for _, c := range snapshot(e.children) {
			c.Accept(v)
		}
	}
}

func (e *Delete) String() string {
	return fmt.Sprintf("Delete[%d,%d)", e.offset, e.offset+e.length)
}
