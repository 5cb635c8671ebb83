// Package edit implements the text edit tree engine: a hierarchy of
// non-overlapping textual modifications that can be applied to a Document
// atomically, producing an inverse (undo) edit tree and, optionally,
// updating each edit's region to its post-apply position.
//
// # Building a tree
//
// Concrete edits are constructed with their own constructors and linked
// into a tree with AddChild/AddChildren:
//
//	root := edit.NewMulti()
//	root.AddChild(edit.NewInsert(0, "www."))
//	root.AddChild(edit.NewInsert(0, "eclipse."))
//
// A tree enforces, at mutation time, that every parent covers its children
// and that siblings never overlap (two zero-length edits at the same offset
// are the sole exception, ordered by the order they were added).
//
// # Applying a tree
//
// Apply drives the tree through four passes against a Document: an
// integrity check, source computation for move/copy pairs, the document
// mutations themselves (processed right-to-left so earlier offsets stay
// valid), and, if requested, a region update pass that leaves every
// surviving edit's offset pointing at where its content now lives.
//
//	undo, err := edit.Apply(root, doc, edit.DefaultFlags)
//	...
//	edit.Apply(undo, doc, edit.FlagUpdateRegions) // restores doc
//
// # Copying and visiting
//
// Copy produces a deep copy of a tree, rewiring move/copy partner
// references to point within the copy. Accept drives a Visitor over the
// tree with pre/post hooks and type-specific dispatch.
package edit
