package edit

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// BoundaryWarning advises that an edit's cut point falls inside a grapheme
// cluster or between a base rune and a combining mark. It is never a
// fault: CheckBoundaries never fails Apply, it only surfaces advisories a
// caller can log.
type BoundaryWarning struct {
	Edit   Edit
	Offset int
	Reason string
}

const boundaryWindow = 16

// CheckBoundaries walks root and reports every edit whose offset (or, for
// a non-empty edit, exclusive end) cuts through a grapheme cluster or
// separates a base rune from a trailing combining mark, as read from doc
// before any mutation.
func CheckBoundaries(root Edit, doc Document) []BoundaryWarning {
	var warnings []BoundaryWarning
	docLen := doc.GetLength()

	var walk func(Edit)
	walk = func(e Edit) {
		if !e.IsDeleted() {
			warnings = checkCutPoint(e, e.Offset(), doc, docLen, warnings)
			if e.Length() > 0 {
				warnings = checkCutPoint(e, e.ExclusiveEnd(), doc, docLen, warnings)
			}
		}
		for _, c := range e.Children() {
			walk(c)
		}
	}
	walk(root)
	return warnings
}

func checkCutPoint(e Edit, offset int, doc Document, docLen int, warnings []BoundaryWarning) []BoundaryWarning {
	if offset <= 0 || offset >= docLen {
		return warnings
	}

	start := offset - boundaryWindow
	if start < 0 {
		start = 0
	}
	end := offset + boundaryWindow
	if end > docLen {
		end = docLen
	}
	window := doc.Get(start, end-start)
	rel := offset - start
	if rel < 0 || rel > len(window) {
		return warnings
	}

	if after := window[rel:]; after != "" {
		if !norm.NFC.PropertiesString(after).BoundaryBefore() {
			warnings = append(warnings, BoundaryWarning{Edit: e, Offset: offset, Reason: "offset separates a base rune from a combining mark"})
			return warnings
		}
	}

	gr := uniseg.NewGraphemes(window)
	pos := 0
	for gr.Next() {
		clusterStart, clusterEnd := pos, pos+len(gr.Str())
		if rel > clusterStart && rel < clusterEnd {
			warnings = append(warnings, BoundaryWarning{Edit: e, Offset: offset, Reason: "offset splits a grapheme cluster"})
			return warnings
		}
		pos = clusterEnd
	}
	return warnings
}
