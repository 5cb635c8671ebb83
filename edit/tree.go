package edit

import "fmt"

// addChildTo links c under parent in sorted position. A Multi's region
// auto-expands to cover its children rather than constraining them, so it
// skips the coverage and zero-length checks that apply to every other
// variant.
func addChildTo(parent Edit, c Edit) error {
	if c.IsDeleted() {
		return &MalformedTree{Parent: parent, Child: c, Reason: "cannot add a deleted edit as a child"}
	}

	pb := parent.base()
	group, isGroup := parent.(*Multi)

	if !isGroup {
		if parent.Length() == 0 {
			return &MalformedTree{Parent: parent, Child: c, Reason: "zero-length edit cannot have children"}
		}
		if !parent.Covers(c) {
			return &MalformedTree{Parent: parent, Child: c, Reason: "child is not covered by parent"}
		}
	}

	idx, err := insertionIndex(pb.children, c)
	if err != nil {
		if mt, ok := err.(*MalformedTree); ok {
			mt.Parent, mt.Child = parent, c
		}
		return err
	}

	pb.children = append(pb.children, nil)
	copy(pb.children[idx+1:], pb.children[idx:])
	pb.children[idx] = c
	c.base().parent = parent

	if isGroup {
		expandMultiRegion(group)
	}
	return nil
}

func addChildrenTo(parent Edit, cs []Edit) error {
	for _, c := range cs {
		if err := parent.AddChild(c); err != nil {
			return err
		}
	}
	return nil
}

// insertionIndex returns the position c belongs at among children, sorted
// ascending by offset with two zero-length edits at the same offset
// ordered by arrival (an existing sibling always sorts before a new one).
// It returns a *MalformedTree if c genuinely overlaps a sibling.
func insertionIndex(children []Edit, c Edit) (int, error) {
	lo, hi := 0, len(children)
	for lo < hi {
		mid := (lo + hi) / 2
		cmp, err := compareEdits(children[mid], c)
		if err != nil {
			return 0, err
		}
		if cmp < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, nil
}

// compareEdits orders an existing sibling a against an incoming child c.
// Negative means a sorts before c, positive means a sorts after c. An
// error (always *MalformedTree) means the two regions overlap.
//
// Two zero-length edits at the same offset are not an overlap: a, already
// linked, is by definition older than c and sorts first. A zero-length
// edit sitting exactly at the start of a positive-length sibling is
// treated as an overlap in either direction, matching the Eclipse
// TextEdit original this engine's tree mutation is grounded on.
func compareEdits(a, c Edit) (int, error) {
	aZero, cZero := a.Length() == 0, c.Length() == 0

	if aZero && cZero && a.Offset() == c.Offset() {
		return -1, nil
	}
	if cZero && !aZero && c.Offset() == a.Offset() {
		return 0, &MalformedTree{Reason: "insert sits exactly at the start of a sibling it overlaps"}
	}
	if aZero && !cZero && a.Offset() == c.Offset() {
		return 0, &MalformedTree{Reason: "sibling sits exactly at the start of an insert it overlaps"}
	}

	if a.ExclusiveEnd() <= c.Offset() {
		return -1, nil
	}
	if c.ExclusiveEnd() <= a.Offset() {
		return 1, nil
	}
	return 0, &MalformedTree{Reason: "siblings overlap"}
}

func removeChildAt(parent Edit, i int) (Edit, error) {
	pb := parent.base()
	if i < 0 || i >= len(pb.children) {
		return nil, fmt.Errorf("edit: child index %d out of range [0,%d)", i, len(pb.children))
	}
	c := pb.children[i]
	pb.children = append(pb.children[:i], pb.children[i+1:]...)
	c.base().parent = nil
	if group, ok := parent.(*Multi); ok {
		expandMultiRegion(group)
	}
	return c, nil
}

func removeChild(parent Edit, c Edit) (int, error) {
	for i, ch := range parent.base().children {
		if ch == c {
			_, err := removeChildAt(parent, i)
			return i, err
		}
	}
	return -1, fmt.Errorf("edit: edit is not a child of this edit")
}

func removeAllChildren(parent Edit) []Edit {
	pb := parent.base()
	out := pb.children
	for _, c := range out {
		c.base().parent = nil
	}
	pb.children = nil
	if group, ok := parent.(*Multi); ok {
		group.offset, group.length = 0, 0
	}
	return snapshot(out)
}

// expandMultiRegion recomputes a group edit's region as the union of its
// children's regions, or 0/0 when it has none.
func expandMultiRegion(m *Multi) {
	children := m.children
	if len(children) == 0 {
		m.offset, m.length = 0, 0
		return
	}
	min := children[0].Offset()
	max := children[0].ExclusiveEnd()
	for _, c := range children[1:] {
		if c.Offset() < min {
			min = c.Offset()
		}
		if c.ExclusiveEnd() > max {
			max = c.ExclusiveEnd()
		}
	}
	m.offset, m.length = min, max-min
}
