package edit_test

import (
	"errors"
	"testing"

	"github.com/halvard/edittree/document"

	"github.com/halvard/edittree/edit"
)

func newDoc(text string) *document.StringDocument {
	return document.NewStringDocument(text)
}

func TestApplyInsertAtSameOffsetOrderedByArrival(t *testing.T) {
	m := edit.NewMulti()
	first := edit.NewInsert(0, "www.")
	second := edit.NewInsert(0, "eclipse.")
	if err := m.AddChild(first); err != nil {
		t.Fatalf("add first: %v", err)
	}
	if err := m.AddChild(second); err != nil {
		t.Fatalf("add second: %v", err)
	}

	doc := newDoc("org")
	if _, err := edit.Apply(m, doc, edit.FlagNone); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if got, want := doc.String(), "www.eclipse.org"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApplyUndoHandlesSameOffsetTies(t *testing.T) {
	m := edit.NewMulti()
	first := edit.NewInsert(0, "www.")
	second := edit.NewInsert(0, "eclipse.")
	if err := m.AddChild(first); err != nil {
		t.Fatalf("add first: %v", err)
	}
	if err := m.AddChild(second); err != nil {
		t.Fatalf("add second: %v", err)
	}

	doc := newDoc("org")
	undo, err := edit.Apply(m, doc, edit.DefaultFlags)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got, want := doc.String(), "www.eclipse.org"; got != want {
		t.Fatalf("forward: got %q, want %q", got, want)
	}

	if _, err := edit.Apply(undo, doc, edit.FlagNone); err != nil {
		t.Fatalf("apply undo: %v", err)
	}
	if got, want := doc.String(), "org"; got != want {
		t.Errorf("after undo: got %q, want %q", got, want)
	}
}

func TestApplyUndoHandlesThreeWaySameOffsetTie(t *testing.T) {
	m := edit.NewMulti()
	inserts := []*edit.Insert{edit.NewInsert(0, "XX"), edit.NewInsert(0, "YYY"), edit.NewInsert(0, "ZZZZZ")}
	for _, ins := range inserts {
		if err := m.AddChild(ins); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	doc := newDoc("rest")
	undo, err := edit.Apply(m, doc, edit.DefaultFlags)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got, want := doc.String(), "XXYYYZZZZZrest"; got != want {
		t.Fatalf("forward: got %q, want %q", got, want)
	}

	if _, err := edit.Apply(undo, doc, edit.FlagNone); err != nil {
		t.Fatalf("apply undo: %v", err)
	}
	if got, want := doc.String(), "rest"; got != want {
		t.Errorf("after undo: got %q, want %q", got, want)
	}
}

func TestApplyUpdateRegionsSetsInsertLength(t *testing.T) {
	ins := edit.NewInsert(3, "eclipse.")
	doc := newDoc("org")
	if _, err := edit.Apply(ins, doc, edit.FlagUpdateRegions); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if ins.Offset() != 3 || ins.Length() != 8 {
		t.Errorf("region: got [%d,%d), want [3,11)", ins.Offset(), ins.Offset()+ins.Length())
	}
}

func TestApplyUpdateRegionsSetsMoveTargetLength(t *testing.T) {
	src := edit.NewMoveSource(0, 5)
	tgt := edit.NewMoveTarget(11)
	edit.LinkMove(src, tgt)

	m := edit.NewMulti()
	if err := m.AddChild(src); err != nil {
		t.Fatalf("add source: %v", err)
	}
	if err := m.AddChild(tgt); err != nil {
		t.Fatalf("add target: %v", err)
	}

	doc := newDoc("hello world")
	if _, err := edit.Apply(m, doc, edit.FlagUpdateRegions); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if tgt.Length() != 5 {
		t.Errorf("move target length: got %d, want 5", tgt.Length())
	}
}

func TestApplyUpdateRegionsSetsCopyTargetLength(t *testing.T) {
	src := edit.NewCopySource(0, 5)
	tgt := edit.NewCopyTarget(11)
	edit.LinkCopy(src, tgt)

	m := edit.NewMulti()
	if err := m.AddChild(src); err != nil {
		t.Fatalf("add source: %v", err)
	}
	if err := m.AddChild(tgt); err != nil {
		t.Fatalf("add target: %v", err)
	}

	doc := newDoc("hello world")
	if _, err := edit.Apply(m, doc, edit.FlagUpdateRegions); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if tgt.Length() != 5 {
		t.Errorf("copy target length: got %d, want 5", tgt.Length())
	}
}

func TestApplyReplaceThenRangeMarkerShiftsRegion(t *testing.T) {
	m := edit.NewMulti()
	rep := edit.NewReplace(0, 1, "HH")
	marker := edit.NewRangeMarker(2, 2)
	if err := m.AddChild(rep); err != nil {
		t.Fatalf("add replace: %v", err)
	}
	if err := m.AddChild(marker); err != nil {
		t.Fatalf("add marker: %v", err)
	}

	doc := newDoc("hello")
	if _, err := edit.Apply(m, doc, edit.FlagUpdateRegions); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if got, want := doc.String(), "HHello"; got != want {
		t.Errorf("document: got %q, want %q", got, want)
	}
	if marker.Offset() != 3 || marker.Length() != 2 {
		t.Errorf("marker region: got [%d,%d), want [3,5)", marker.Offset(), marker.Offset()+marker.Length())
	}
}

func TestApplyUndoReversesForwardEdit(t *testing.T) {
	m := edit.NewMulti()
	if err := m.AddChild(edit.NewReplace(0, 5, "HELLO")); err != nil {
		t.Fatalf("add: %v", err)
	}

	doc := newDoc("hello world")
	undo, err := edit.Apply(m, doc, edit.FlagCreateUndo)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got, want := doc.String(), "HELLO world"; got != want {
		t.Fatalf("forward: got %q, want %q", got, want)
	}

	if _, err := edit.Apply(undo, doc, edit.FlagNone); err != nil {
		t.Fatalf("apply undo: %v", err)
	}
	if got, want := doc.String(), "hello world"; got != want {
		t.Errorf("after undo: got %q, want %q", got, want)
	}
}

func TestApplyFlagNoneSkipsUndoAndRegions(t *testing.T) {
	m := edit.NewMulti()
	ins := edit.NewInsert(0, "x")
	if err := m.AddChild(ins); err != nil {
		t.Fatalf("add: %v", err)
	}

	doc := newDoc("abc")
	undo, err := edit.Apply(m, doc, edit.FlagNone)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if undo != nil {
		t.Errorf("expected nil undo tree with edit.FlagNone, got %v", undo)
	}
	if got, want := doc.String(), "xabc"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if ins.Offset() != 0 || ins.Length() != 0 {
		t.Errorf("region: got [%d,%d), want [0,0) unchanged", ins.Offset(), ins.Offset()+ins.Length())
	}
}

func TestApplyZeroDeltaReplaceLeavesLaterOffsetsAlone(t *testing.T) {
	m := edit.NewMulti()
	rep := edit.NewReplace(0, 1, "a")
	marker := edit.NewRangeMarker(1, 1)
	if err := m.AddChild(rep); err != nil {
		t.Fatalf("add replace: %v", err)
	}
	if err := m.AddChild(marker); err != nil {
		t.Fatalf("add marker: %v", err)
	}

	doc := newDoc("xy")
	if _, err := edit.Apply(m, doc, edit.FlagUpdateRegions); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if marker.Offset() != 1 {
		t.Errorf("marker offset: got %d, want 1", marker.Offset())
	}
}

func TestApplyDeleteMarksChildrenDeleted(t *testing.T) {
	del := edit.NewDelete(0, 5)
	inner := edit.NewRangeMarker(1, 2)
	if err := del.AddChild(inner); err != nil {
		t.Fatalf("add: %v", err)
	}

	doc := newDoc("hello world")
	if _, err := edit.Apply(del, doc, edit.FlagUpdateRegions); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !inner.IsDeleted() {
		t.Error("expected inner edit to be marked deleted")
	}
	if del.IsDeleted() {
		t.Error("the deleting edit itself should not be marked deleted")
	}
	if got, want := doc.String(), " world"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApplyRejectsOverlappingSiblings(t *testing.T) {
	m := edit.NewMulti()
	if err := m.AddChild(edit.NewReplace(0, 5, "x")); err != nil {
		t.Fatalf("add first: %v", err)
	}
	err := m.AddChild(edit.NewReplace(3, 5, "y"))
	var malformed *edit.MalformedTree
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *edit.MalformedTree for overlapping siblings, got %v", err)
	}
}

func TestApplyRejectsInsertAtOverlapStart(t *testing.T) {
	m := edit.NewMulti()
	if err := m.AddChild(edit.NewReplace(2, 3, "xyz")); err != nil {
		t.Fatalf("add replace: %v", err)
	}
	err := m.AddChild(edit.NewInsert(2, "q"))
	var malformed *edit.MalformedTree
	if !errors.As(err, &malformed) {
		t.Fatalf("expected overlap error for insert at sibling start, got %v", err)
	}
}

func TestApplyAllowsInsertAtSiblingEnd(t *testing.T) {
	m := edit.NewMulti()
	if err := m.AddChild(edit.NewReplace(2, 3, "xyz")); err != nil {
		t.Fatalf("add replace: %v", err)
	}
	if err := m.AddChild(edit.NewInsert(5, "q")); err != nil {
		t.Fatalf("insert at sibling end should be allowed: %v", err)
	}
}

func TestApplyRejectsZeroLengthEditWithChildren(t *testing.T) {
	ins := edit.NewInsert(0, "x")
	err := ins.AddChild(edit.NewRangeMarker(0, 0))
	var malformed *edit.MalformedTree
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *edit.MalformedTree, got %v", err)
	}
}

func TestApplyMoveRelocatesText(t *testing.T) {
	src := edit.NewMoveSource(0, 5)
	tgt := edit.NewMoveTarget(11)
	edit.LinkMove(src, tgt)

	m := edit.NewMulti()
	if err := m.AddChild(src); err != nil {
		t.Fatalf("add source: %v", err)
	}
	if err := m.AddChild(tgt); err != nil {
		t.Fatalf("add target: %v", err)
	}

	doc := newDoc("hello world")
	if _, err := edit.Apply(m, doc, edit.FlagNone); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got, want := doc.String(), " worldhello"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApplyCopyDuplicatesText(t *testing.T) {
	src := edit.NewCopySource(0, 5)
	tgt := edit.NewCopyTarget(11)
	edit.LinkCopy(src, tgt)

	m := edit.NewMulti()
	if err := m.AddChild(src); err != nil {
		t.Fatalf("add source: %v", err)
	}
	if err := m.AddChild(tgt); err != nil {
		t.Fatalf("add target: %v", err)
	}

	doc := newDoc("hello world")
	if _, err := edit.Apply(m, doc, edit.FlagNone); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got, want := doc.String(), "hello worldhello"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApplyRejectsUnlinkedMoveSource(t *testing.T) {
	src := edit.NewMoveSource(0, 2)
	doc := newDoc("hi")
	_, err := edit.Apply(src, doc, edit.FlagNone)
	var malformed *edit.MalformedTree
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *edit.MalformedTree for unlinked move source, got %v", err)
	}
}

func TestApplyMaxDepthRejectsDeepTree(t *testing.T) {
	root := edit.NewMulti()
	cur := edit.Edit(root)
	for i := 0; i < 5; i++ {
		next := edit.NewMulti()
		if err := cur.AddChild(next); err != nil {
			t.Fatalf("add: %v", err)
		}
		cur = next
	}

	doc := newDoc("")
	_, err := edit.Apply(root, doc, edit.FlagNone, edit.WithMaxDepth(2))
	var malformed *edit.MalformedTree
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *edit.MalformedTree from depth guard, got %v", err)
	}
}

func TestApplyConsiderSkipsEditsButStillDescendsChildren(t *testing.T) {
	m := edit.NewMulti()
	ins := edit.NewInsert(3, "Z")
	if err := m.AddChild(ins); err != nil {
		t.Fatalf("add: %v", err)
	}

	doc := newDoc("abcdef")
	consider := func(e edit.Edit) bool {
		_, isMulti := e.(*edit.Multi)
		return isMulti
	}
	if _, err := edit.Apply(m, doc, edit.FlagNone, edit.WithConsider(consider)); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got, want := doc.String(), "abcdef"; got != want {
		t.Errorf("insert should have been skipped: got %q, want %q", got, want)
	}
}
