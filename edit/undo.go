package edit

import "fmt"

// undoBuilder accumulates, during pass C, the inverse of each document
// mutation the forward apply performs. The result is a Multi whose
// children, applied in turn, restore the document exactly.
type undoBuilder struct {
	root *Multi
	// ties tracks, per raw offset, the pure-insertion inverses recorded so
	// far at that point. Sibling point edits (Insert, MoveTarget,
	// CopyTarget) tied at the same offset are processed rightmost-first, so
	// each later insertion lands to the left of everything already
	// inserted there; ties lets appendInverse push those earlier inverses
	// right by the new insertion's length before recording it, instead of
	// stacking same-offset inverses that tree.go would reject as
	// overlapping.
	ties map[int][]*Replace
}

func newUndoBuilder() *undoBuilder {
	return &undoBuilder{root: NewMulti(), ties: make(map[int][]*Replace)}
}

// appendInverse records that the forward apply replaced some span with
// lengthInserted characters of new content, displacing textRemoved. The
// inverse is a single Replace at the new offset that puts textRemoved back.
//
// When the call is a pure insertion (nothing removed), offset is a tie
// point shared by every sibling inserted there; this shifts any inverse
// already recorded at that point by lengthInserted before adding the new
// one, so each lands at its true final resting position.
func (u *undoBuilder) appendInverse(offset, lengthInserted int, textRemoved string) {
	isPointInsert := textRemoved == "" && lengthInserted > 0
	if isPointInsert {
		for _, prior := range u.ties[offset] {
			prior.offset += lengthInserted
		}
	}

	inv := NewReplace(offset, lengthInserted, textRemoved)
	if err := u.root.AddChild(inv); err != nil {
		panic(fmt.Sprintf("edit: internal error building undo tree: %v", err))
	}

	if isPointInsert {
		u.ties[offset] = append(u.ties[offset], inv)
	}
}

func (u *undoBuilder) build() Edit { return u.root }
