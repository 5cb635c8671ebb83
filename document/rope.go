package document

import (
	"github.com/halvard/edittree/edit"
	"github.com/halvard/edittree/internal/rope"
)

// RopeDocument is a Document backed by an immutable B+ tree rope, built
// for efficient editing of large documents. In addition to the Document
// contract it exposes the rope's line-index API as bonus inspection
// methods, supplementing the thin glue the original Eclipse IDocument
// offers (getLineOfOffset, getNumberOfLines) that this engine's
// distillation otherwise leaves out.
type RopeDocument struct {
	r rope.Rope
}

// NewRopeDocument creates a RopeDocument with the given initial text.
func NewRopeDocument(text string) *RopeDocument {
	return &RopeDocument{r: rope.FromString(text)}
}

func (d *RopeDocument) GetLength() int { return int(d.r.Len()) }

func (d *RopeDocument) Get(offset, length int) string {
	return d.r.Slice(rope.ByteOffset(offset), rope.ByteOffset(offset+length))
}

func (d *RopeDocument) Replace(offset, length int, newText string) error {
	docLen := int(d.r.Len())
	if offset < 0 || length < 0 || offset+length > docLen {
		return &edit.BadLocation{Offset: offset, Length: length, DocLength: docLen}
	}
	d.r = d.r.Replace(rope.ByteOffset(offset), rope.ByteOffset(offset+length), newText)
	return nil
}

// String returns the document's full current contents.
func (d *RopeDocument) String() string { return d.r.String() }

// LineCount returns the number of lines (newlines + 1) in the document.
func (d *RopeDocument) LineCount() int { return int(d.r.LineCount()) }

// OffsetToLine returns the 0-indexed line and column a byte offset falls
// on.
func (d *RopeDocument) OffsetToLine(offset int) (line, column int) {
	p := d.r.OffsetToPoint(rope.ByteOffset(offset))
	return int(p.Line), int(p.Column)
}

// LineToOffset is the inverse of OffsetToLine.
func (d *RopeDocument) LineToOffset(line, column int) int {
	return int(d.r.PointToOffset(rope.Point{Line: uint32(line), Column: uint32(column)}))
}

// LineText returns the text of the given 0-indexed line, excluding its
// terminating newline.
func (d *RopeDocument) LineText(line int) string {
	return d.r.LineText(uint32(line))
}
