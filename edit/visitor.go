package edit

// Visitor receives pre/post hooks around every edit in a tree Accept
// traverses, plus a type-specific Visit method per variant. A VisitX
// method's return value decides whether the traversal descends into that
// edit's children; children are snapshotted before the descent, so a
// visitor is free to mutate the tree it's visiting.
type Visitor interface {
	PreVisit(e Edit)
	VisitInsert(e *Insert) bool
	VisitDelete(e *Delete) bool
	VisitReplace(e *Replace) bool
	VisitMulti(e *Multi) bool
	VisitRangeMarker(e *RangeMarker) bool
	VisitMoveSource(e *MoveSource) bool
	VisitMoveTarget(e *MoveTarget) bool
	VisitCopySource(e *CopySource) bool
	VisitCopyTarget(e *CopyTarget) bool
	PostVisit(e Edit)
}

// BaseVisitor implements Visitor with no-op hooks that descend into every
// edit's children. Embed it and override only the methods a particular
// visitor cares about.
type BaseVisitor struct{}

func (BaseVisitor) PreVisit(Edit)                      {}
func (BaseVisitor) VisitInsert(*Insert) bool            { return true }
func (BaseVisitor) VisitDelete(*Delete) bool            { return true }
func (BaseVisitor) VisitReplace(*Replace) bool          { return true }
func (BaseVisitor) VisitMulti(*Multi) bool              { return true }
func (BaseVisitor) VisitRangeMarker(*RangeMarker) bool  { return true }
func (BaseVisitor) VisitMoveSource(*MoveSource) bool    { return true }
func (BaseVisitor) VisitMoveTarget(*MoveTarget) bool    { return true }
func (BaseVisitor) VisitCopySource(*CopySource) bool    { return true }
func (BaseVisitor) VisitCopyTarget(*CopyTarget) bool    { return true }
func (BaseVisitor) PostVisit(Edit)                      {}
