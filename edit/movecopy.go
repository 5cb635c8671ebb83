package edit

import "fmt"

// MoveSource reads its region's text during pass B, then deletes it during
// pass C, handing the captured text to its linked MoveTarget. It must be
// linked with LinkMove before Apply runs.
type MoveSource struct {
	editBase
	target *MoveTarget
}

// NewMoveSource creates an unlinked move source over [offset, offset+length).
func NewMoveSource(offset, length int) *MoveSource {
	e := &MoveSource{}
	e.editBase = newBase(e, offset, length)
	return e
}

// MoveTarget is the insertion point a linked MoveSource's text lands at.
// It is created zero-length (after an Apply with FlagUpdateRegions it spans
// the text it inserted) and, like Insert, can never have children.
type MoveTarget struct {
	editBase
	source   *MoveSource
	incoming string
}

// NewMoveTarget creates an unlinked move target at offset.
func NewMoveTarget(offset int) *MoveTarget {
	e := &MoveTarget{}
	e.editBase = newBase(e, offset, 0)
	return e
}

// LinkMove pairs a move source with its target. Both must be linked before
// the tree they belong to is applied.
func LinkMove(src *MoveSource, tgt *MoveTarget) {
	src.target = tgt
	tgt.source = src
}

// CopySource reads its region's text during pass B and hands it to its
// linked CopyTarget; unlike MoveSource it performs no deletion of its own.
type CopySource struct {
	editBase
	target *CopyTarget
}

// NewCopySource creates an unlinked copy source over [offset, offset+length).
func NewCopySource(offset, length int) *CopySource {
	e := &CopySource{}
	e.editBase = newBase(e, offset, length)
	return e
}

// CopyTarget is the insertion point a linked CopySource's text lands at.
type CopyTarget struct {
	editBase
	source   *CopySource
	incoming string
}

// NewCopyTarget creates an unlinked copy target at offset.
func NewCopyTarget(offset int) *CopyTarget {
	e := &CopyTarget{}
	e.editBase = newBase(e, offset, 0)
	return e
}

// LinkCopy pairs a copy source with its target.
func LinkCopy(src *CopySource, tgt *CopyTarget) {
	src.target = tgt
	tgt.source = src
}

// --- MoveSource ---

func (e *MoveSource) Kind() Kind            { return KindMoveSource }
func (e *MoveSource) deletesChildren() bool { return true }

// Partner returns the linked MoveTarget, or nil if unlinked.
func (e *MoveSource) Partner() Edit {
	if e.target == nil {
		return nil
	}
	return e.target
}

func (e *MoveSource) clone() Edit {
	c := &MoveSource{}
	c.editBase = newBase(c, e.offset, e.length)
	return c
}

func (e *MoveSource) postProcessCopy(orig Edit, copies map[Edit]Edit) {
	o := orig.(*MoveSource)
	if o.target == nil {
		return
	}
	if cp, ok := copies[o.target]; ok {
		e.target = cp.(*MoveTarget)
		return
	}
	e.target = o.target
}

func (e *MoveSource) computeSource(doc Document) error {
	if e.target == nil {
		return &MalformedTree{Parent: e, Reason: "move source has no linked target"}
	}
	e.target.incoming = doc.Get(e.offset, e.length)
	return nil
}

func (e *MoveSource) applyOne(doc Document, undo *undoBuilder) (int, error) {
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

func (e *MoveSource) accept0(v Visitor) {
	if v.VisitMoveSource(e) {
		for _, c := range snapshot(e.children) {
			c.Accept(v)
		}
	}
}

func (e *MoveSource) String() string {
	return fmt.Sprintf("MoveSource[%d,%d)", e.offset, e.offset+e.length)
}

// --- MoveTarget ---

func (e *MoveTarget) Kind() Kind { return KindMoveTarget }

// Partner returns the linked MoveSource, or nil if unlinked.
func (e *MoveTarget) Partner() Edit {
	if e.source == nil {
		return nil
	}
	return e.source
}

func (e *MoveTarget) clone() Edit {
	c := &MoveTarget{}
	c.editBase = newBase(c, e.offset, e.length)
	return c
}

func (e *MoveTarget) postProcessCopy(orig Edit, copies map[Edit]Edit) {
	o := orig.(*MoveTarget)
	if o.source == nil {
		return
	}
	if cp, ok := copies[o.source]; ok {
		e.source = cp.(*MoveSource)
		return
	}
	e.source = o.source
}

func (e *MoveTarget) applyOne(doc Document, undo *undoBuilder) (int, error) {
	if err := doc.Replace(e.offset, 0, e.incoming); err != nil {
		return 0, err
	}
	if undo != nil {
		undo.appendInverse(e.offset, len(e.incoming), "")
	}
	e.length = len(e.incoming)
	return len(e.incoming), nil
}

func (e *MoveTarget) accept0(v Visitor) {
	if v.VisitMoveTarget(e) {
		for _, c := range snapshot(e.children) {
			c.Accept(v)
		}
	}
}

func (e *MoveTarget) String() string {
	return fmt.Sprintf("MoveTarget[%d]", e.offset)
}

// --- CopySource ---

func (e *CopySource) Kind() Kind { return KindCopySource }

// Partner returns the linked CopyTarget, or nil if unlinked.
func (e *CopySource) Partner() Edit {
	if e.target == nil {
		return nil
	}
	return e.target
}

func (e *CopySource) clone() Edit {
	c := &CopySource{}
	c.editBase = newBase(c, e.offset, e.length)
	return c
}

func (e *CopySource) postProcessCopy(orig Edit, copies map[Edit]Edit) {
	o := orig.(*CopySource)
	if o.target == nil {
		return
	}
	if cp, ok := copies[o.target]; ok {
		e.target = cp.(*CopyTarget)
		return
	}
	e.target = o.target
}

func (e *CopySource) computeSource(doc Document) error {
	if e.target == nil {
		return &MalformedTree{Parent: e, Reason: "copy source has no linked target"}
	}
	e.target.incoming = doc.Get(e.offset, e.length)
	return nil
}

func (e *CopySource) accept0(v Visitor) {
	if v.VisitCopySource(e) {
		for _, c := range snapshot(e.children) {
			c.Accept(v)
		}
	}
}

func (e *CopySource) String() string {
	return fmt.Sprintf("CopySource[%d,%d)", e.offset, e.offset+e.length)
}

// --- CopyTarget ---

func (e *CopyTarget) Kind() Kind { return KindCopyTarget }

// Partner returns the linked CopySource, or nil if unlinked.
func (e *CopyTarget) Partner() Edit {
	if e.source == nil {
		return nil
	}
	return e.source
}

func (e *CopyTarget) clone() Edit {
	c := &CopyTarget{}
	c.editBase = newBase(c, e.offset, e.length)
	return c
}

func (e *CopyTarget) postProcessCopy(orig Edit, copies map[Edit]Edit) {
	o := orig.(*CopyTarget)
	if o.source == nil {
		return
	}
	if cp, ok := copies[o.source]; ok {
		e.source = cp.(*CopySource)
		return
	}
	e.source = o.source
}

func (e *CopyTarget) applyOne(doc Document, undo *undoBuilder) (int, error) {
	if err := doc.Replace(e.offset, 0, e.incoming); err != nil {
		return 0, err
	}
	if undo != nil {
		undo.appendInverse(e.offset, len(e.incoming), "")
	}
	e.length = len(e.incoming)
	return len(e.incoming), nil
}

func (e *CopyTarget) accept0(v Visitor) {
	if v.VisitCopyTarget(e) {
		for _, c := range snapshot(e.children) {
			c.Accept(v)
		}
	}
}

func (e *CopyTarget) String() string {
	return fmt.Sprintf("CopyTarget[%d]", e.offset)
}
