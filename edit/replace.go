package edit

import "fmt"

// Replace substitutes [Offset, Offset+Length) with Text. Like Delete, it
// consumes any children's region; after an Apply with FlagUpdateRegions
// its length is len(Text).
type Replace struct {
	editBase
	Text string
}

// NewReplace creates a Replace edit over [offset, offset+length) with text.
func NewReplace(offset, length int, text string) *Replace {
	e := &Replace{Text: text}
	e.editBase = newBase(e, offset, length)
	return e
}

func (e *Replace) Kind() Kind            { return KindReplace }
func (e *Replace) deletesChildren() bool { return true }

func (e *Replace) clone() Edit {
	c := &Replace{Text: e.Text}
	c.editBase = newBase(c, e.offset, e.length)
	return c
}

func (e *Replace) applyOne(doc Document, undo *undoBuilder) (int, error) {
	adjusted := e.length
	old := doc.Get(e.offset, adjusted)
	if err := doc.Replace(e.offset, adjusted, e.Text); err != nil {
		return 0, err
	}
	if undo != nil {
		undo.appendInverse(e.offset, len(e.Text), old)
	}
	e.length = len(e.Text)
	return len(e.Text) - adjusted, nil
}

func (e *Replace) accept0(v Visitor) {
	if v.VisitReplace(e) {
		for _, c := range snapshot(e.children) {
			c.Accept(v)
		}
	}
}

func (e *Replace) String() string {
	return fmt.Sprintf("Replace[%d,%d)(%q)", e.offset, e.offset+e.length, e.Text)
}
