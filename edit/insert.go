package edit

import "fmt"

// Insert adds Text at Offset without touching anything already there. It
// is created zero-length (after an Apply with FlagUpdateRegions it spans
// len(Text)) and, per the tree's invariants, can never have children.
type Insert struct {
	editBase
	Text string
}

// NewInsert creates an Insert edit at offset.
func NewInsert(offset int, text string) *Insert {
	e := &Insert{Text: text}
	e.editBase = newBase(e, offset, 0)
	return e
}

func (e *Insert) Kind() Kind { return KindInsert }

func (e *Insert) clone() Edit {
	c := &Insert{Text: e.Text}
	c.editBase = newBase(c, e.offset, e.length)
	return c
}

func (e *Insert) applyOne(doc Document, undo *undoBuilder) (int, error) {
	if err := doc.Replace(e.offset, 0, e.Text); err != nil {
		return 0, err
	}
	if undo != nil {
		undo.appendInverse(e.offset, len(e.Text), "")
	}
	e.length = len(e.Text)
	return len(e.Text), nil
}

func (e *Insert) accept0(v Visitor) {
	if v.VisitInsert(e) {
		for _, c := range snapshot(e.children) {
			c.Accept(v)
		}
	}
}

func (e *Insert) String() string {
	return fmt.Sprintf("Insert[%d](%q)", e.offset, e.Text)
}
