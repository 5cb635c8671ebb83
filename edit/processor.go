package edit

// Apply drives root through the engine's four passes against doc:
//
//   - Pass A checks the tree's structural invariants (coverage, sibling
//     disjointness, zero-length-has-no-children, move/copy linkage)
//     without touching doc.
//   - Pass B computes move/copy sources, reading doc before any mutation.
//   - Pass C mutates doc, processing each level's children rightmost-first
//     so earlier offsets stay valid, and accumulates each edit's own
//     content-length delta.
//   - Pass D, if FlagUpdateRegions is set, shifts every surviving edit's
//     offset to its post-apply position and marks edits consumed by a
//     deleting ancestor as deleted; otherwise the lengths pass C changed
//     are restored.
//
// If flags includes FlagCreateUndo, Apply returns a tree that, applied in
// turn, reverses this one; otherwise it returns nil. On success root's
// parent link (if any) is cleared, detaching it from this call.
func Apply(root Edit, doc Document, flags Flags, opts ...ApplyOption) (Edit, error) {
	cfg := &applyConfig{consider: considerAll}
	for _, o := range opts {
		o(cfg)
	}

	if cfg.maxDepth > 0 {
		if d := depth(root); d > cfg.maxDepth {
			return nil, &MalformedTree{Parent: root, Reason: "tree depth exceeds the configured maximum"}
		}
	}

	resetDeltas(root)

	if err := checkIntegrity(root); err != nil {
		return nil, err
	}
	if err := checkPartners(root, cfg.consider); err != nil {
		return nil, err
	}
	if err := computeSources(root, doc, cfg.consider); err != nil {
		return nil, err
	}

	// Pass C adjusts lengths as it goes; without FlagUpdateRegions they are
	// put back afterwards, so every region is left as it was.
	lengths := map[*editBase]int{}
	var record func(Edit)
	record = func(e Edit) {
		lengths[e.base()] = e.base().length
		for _, c := range e.base().children {
			record(c)
		}
	}
	record(root)

	var undo *undoBuilder
	if flags.Has(FlagCreateUndo) {
		undo = newUndoBuilder()
	}
	if _, err := applyDocument(root, doc, cfg.consider, undo); err != nil {
		return nil, err
	}

	var undoRoot Edit
	if undo != nil {
		undoRoot = undo.build()
	}

	if flags.Has(FlagUpdateRegions) {
		updateRegions(root, 0, false)
	} else {
		for b, n := range lengths {
			b.length = n
		}
	}

	root.base().parent = nil
	return undoRoot, nil
}

func resetDeltas(e Edit) {
	e.base().delta = 0
	for _, c := range e.base().children {
		resetDeltas(c)
	}
}

// checkIntegrity is pass A's coverage/disjointness/zero-length-children
// check, re-verified at apply time independent of whatever tree.go already
// enforced at mutation time.
func checkIntegrity(e Edit) error {
	children := e.base().children

	if e.Length() == 0 && len(children) > 0 {
		if _, isGroup := e.(*Multi); !isGroup {
			return &MalformedTree{Parent: e, Reason: "zero-length edit has children"}
		}
	}

	for i, c := range children {
		if !e.Covers(c) {
			if _, isGroup := e.(*Multi); !isGroup {
				return &MalformedTree{Parent: e, Child: c, Reason: "child not covered by parent"}
			}
		}
		if i > 0 && children[i-1].ExclusiveEnd() > c.Offset() {
			return &MalformedTree{Parent: e, Child: c, Reason: "siblings overlap"}
		}
	}

	for _, c := range children {
		if err := checkIntegrity(c); err != nil {
			return err
		}
	}
	return nil
}

// checkPartners verifies every considered move/copy edit in the tree is
// linked to its partner before pass B runs.
func checkPartners(e Edit, consider ConsiderFunc) error {
	switch x := e.(type) {
	case *MoveSource:
		if x.target == nil && consider(x) {
			return &MalformedTree{Parent: x, Reason: "move source has no linked target"}
		}
	case *MoveTarget:
		if x.source == nil && consider(x) {
			return &MalformedTree{Parent: x, Reason: "move target has no linked source"}
		}
	case *CopySource:
		if x.target == nil && consider(x) {
			return &MalformedTree{Parent: x, Reason: "copy source has no linked target"}
		}
	case *CopyTarget:
		if x.source == nil && consider(x) {
			return &MalformedTree{Parent: x, Reason: "copy target has no linked source"}
		}
	}
	for _, c := range e.base().children {
		if err := checkPartners(c, consider); err != nil {
			return err
		}
	}
	return nil
}

func computeSources(e Edit, doc Document, consider ConsiderFunc) error {
	if consider(e) {
		if err := e.computeSource(doc); err != nil {
			return err
		}
	}
	for _, c := range e.base().children {
		if err := computeSources(c, doc, consider); err != nil {
			return err
		}
	}
	return nil
}

// applyDocument is pass C: children are processed rightmost-first so their
// mutations don't invalidate offsets this edit or its remaining siblings
// still need, then this edit's own length is adjusted to their net effect
// before its own operation (if considered) runs.
func applyDocument(e Edit, doc Document, consider ConsiderFunc, undo *undoBuilder) (int, error) {
	eb := e.base()
	origLen := eb.length

	total := 0
	for i := len(eb.children) - 1; i >= 0; i-- {
		d, err := applyDocument(eb.children[i], doc, consider, undo)
		if err != nil {
			return 0, err
		}
		total += d
	}

	eb.length = origLen + total

	contentDelta := total
	if consider(e) {
		d, err := e.applyOne(doc, undo)
		if err != nil {
			return 0, err
		}
		contentDelta += d
	}

	eb.delta = contentDelta
	return contentDelta, nil
}

// updateRegions is pass D: it shifts each edit's offset by the cumulative
// delta of everything positioned before it, and marks an edit's
// descendants deleted once a deletesChildren() ancestor has consumed their
// span.
func updateRegions(e Edit, accumulated int, forceDelete bool) {
	eb := e.base()

	if forceDelete {
		markDeletedRecursive(e)
		return
	}

	eb.offset += accumulated

	childForceDelete := e.deletesChildren()
	running := 0
	for _, c := range eb.children {
		updateRegions(c, accumulated+running, childForceDelete)
		running += c.base().delta
	}
}
