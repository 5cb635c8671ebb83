// Package treeio (de)serializes an edit tree to and from JSON, so a tree
// built by one process can be handed to another (or stored alongside a
// document snapshot) without either end needing to link Go pointers by
// hand. There is no teacher analogue for a wire format here; this package
// exists to give the domain-stack's JSON libraries a concrete job.
package treeio

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/halvard/edittree/edit"
)

// partnered is implemented by the four move/copy edit types.
type partnered interface {
	Partner() edit.Edit
}

// Encode renders root and its descendants as a JSON document. Move and
// copy source/target pairs are linked in the output via matching "id" and
// "partnerId" fields.
func Encode(root edit.Edit) (string, error) {
	ids := assignIDs(root)
	return encodeNode(root, ids)
}

func assignIDs(root edit.Edit) map[edit.Edit]int {
	ids := make(map[edit.Edit]int)
	next := 1
	var walk func(e edit.Edit)
	walk = func(e edit.Edit) {
		if _, ok := e.(partnered); ok {
			ids[e] = next
			next++
		}
		for _, c := range e.Children() {
			walk(c)
		}
	}
	walk(root)
	return ids
}

func encodeNode(e edit.Edit, ids map[edit.Edit]int) (string, error) {
	obj := "{}"
	var err error
	if obj, err = sjson.Set(obj, "kind", e.Kind().String()); err != nil {
		return "", err
	}
	if obj, err = sjson.Set(obj, "offset", e.Offset()); err != nil {
		return "", err
	}
	if obj, err = sjson.Set(obj, "length", e.Length()); err != nil {
		return "", err
	}

	switch v := e.(type) {
	case *edit.Insert:
		obj, err = sjson.Set(obj, "text", v.Text)
	case *edit.Replace:
		obj, err = sjson.Set(obj, "text", v.Text)
	}
	if err != nil {
		return "", err
	}

	if p, ok := e.(partnered); ok {
		obj, err = sjson.Set(obj, "id", ids[e])
		if err != nil {
			return "", err
		}
		if partner := p.Partner(); partner != nil {
			if pid, ok := ids[partner]; ok {
				if obj, err = sjson.Set(obj, "partnerId", pid); err != nil {
					return "", err
				}
			}
		}
	}

	children := e.Children()
	if len(children) > 0 {
		if obj, err = sjson.SetRaw(obj, "children", "[]"); err != nil {
			return "", err
		}
		for i, c := range children {
			cs, err := encodeNode(c, ids)
			if err != nil {
				return "", fmt.Errorf("treeio: encoding child %d of %s: %w", i, e.Kind(), err)
			}
			if obj, err = sjson.SetRaw(obj, fmt.Sprintf("children.%d", i), cs); err != nil {
				return "", err
			}
		}
	}

	return obj, nil
}

// pendingLink records a source-side edit awaiting its partner, resolved
// once the whole tree has been built.
type pendingLink struct {
	kind      edit.Kind
	self      edit.Edit
	partnerID int64
}

// Decode parses a JSON document produced by Encode (or hand-written in the
// same shape) into an edit tree, linking move/copy partners by id.
func Decode(data string) (edit.Edit, error) {
	if !gjson.Valid(data) {
		return nil, fmt.Errorf("treeio: invalid JSON")
	}
	root := gjson.Parse(data)

	byID := make(map[int64]edit.Edit)
	var links []pendingLink

	e, err := decodeNode(root, byID, &links)
	if err != nil {
		return nil, err
	}

	for _, l := range links {
		partner, ok := byID[l.partnerID]
		if !ok {
			continue
		}
		switch l.kind {
		case edit.KindMoveSource:
			edit.LinkMove(l.self.(*edit.MoveSource), partner.(*edit.MoveTarget))
		case edit.KindCopySource:
			edit.LinkCopy(l.self.(*edit.CopySource), partner.(*edit.CopyTarget))
		}
	}

	return e, nil
}

func decodeNode(r gjson.Result, byID map[int64]edit.Edit, links *[]pendingLink) (edit.Edit, error) {
	kind := r.Get("kind").String()
	offset := int(r.Get("offset").Int())
	length := int(r.Get("length").Int())
	text := r.Get("text").String()

	var e edit.Edit
	switch kind {
	case "Insert":
		e = edit.NewInsert(offset, text)
	case "Delete":
		e = edit.NewDelete(offset, length)
	case "Replace":
		e = edit.NewReplace(offset, length, text)
	case "Multi":
		e = edit.NewMulti()
	case "RangeMarker":
		e = edit.NewRangeMarker(offset, length)
	case "MoveSource":
		e = edit.NewMoveSource(offset, length)
	case "MoveTarget":
		e = edit.NewMoveTarget(offset)
	case "CopySource":
		e = edit.NewCopySource(offset, length)
	case "CopyTarget":
		e = edit.NewCopyTarget(offset)
	default:
		return nil, fmt.Errorf("treeio: unknown edit kind %q", kind)
	}

	if id := r.Get("id"); id.Exists() {
		byID[id.Int()] = e
	}
	if pid := r.Get("partnerId"); pid.Exists() {
		if k := e.Kind(); k == edit.KindMoveSource || k == edit.KindCopySource {
			*links = append(*links, pendingLink{kind: k, self: e, partnerID: pid.Int()})
		}
	}

	for _, cr := range r.Get("children").Array() {
		c, err := decodeNode(cr, byID, links)
		if err != nil {
			return nil, err
		}
		if err := e.AddChild(c); err != nil {
			return nil, fmt.Errorf("treeio: linking child into %s: %w", kind, err)
		}
	}

	return e, nil
}
