package edit

// Copy produces a deep copy of the tree rooted at root. Each copied node
// carries only its source's offset and length (and text, for the types
// that have one); move/copy partner references are rewired to point
// within the copy when the partner was itself copied, and left pointing
// at the original when the partner lies outside the copied subtree.
func Copy(root Edit) Edit {
	copies := make(map[Edit]Edit)
	cp := copyStructural(root, copies)

	var rewire func(Edit)
	rewire = func(orig Edit) {
		copies[orig].postProcessCopy(orig, copies)
		for _, c := range orig.base().children {
			rewire(c)
		}
	}
	rewire(root)

	return cp
}

func copyStructural(e Edit, copies map[Edit]Edit) Edit {
	cp := e.clone()
	copies[e] = cp
	cpb := cp.base()
	for _, c := range e.base().children {
		ccp := copyStructural(c, copies)
		cpb.children = append(cpb.children, ccp)
		ccp.base().parent = cp
	}
	return cp
}
