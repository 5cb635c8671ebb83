package treeio

import (
	"testing"

	"github.com/halvard/edittree/document"
	"github.com/halvard/edittree/edit"
)

func TestEncodeDecodeRoundTripsSimpleTree(t *testing.T) {
	m := edit.NewMulti()
	if err := m.AddChildren([]edit.Edit{
		edit.NewInsert(0, "www."),
		edit.NewReplace(3, 0, ""),
	}); err != nil {
		t.Fatalf("add children: %v", err)
	}

	out, err := Encode(m)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := Decode(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	decodedMulti, ok := decoded.(*edit.Multi)
	if !ok {
		t.Fatalf("expected *edit.Multi, got %T", decoded)
	}
	if len(decodedMulti.Children()) != 2 {
		t.Fatalf("expected 2 children, got %d", len(decodedMulti.Children()))
	}
}

func TestEncodeDecodeLinksMovePartners(t *testing.T) {
	src := edit.NewMoveSource(0, 5)
	tgt := edit.NewMoveTarget(11)
	edit.LinkMove(src, tgt)

	root := edit.NewMulti()
	if err := root.AddChildren([]edit.Edit{src, tgt}); err != nil {
		t.Fatalf("add children: %v", err)
	}

	out, err := Encode(root)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := Decode(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	doc := document.NewStringDocument("hello world")
	if _, err := edit.Apply(decoded, doc, edit.FlagNone); err != nil {
		t.Fatalf("apply decoded tree: %v", err)
	}
	if got, want := doc.String(), " worldhello"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDecodeRejectsInvalidJSON(t *testing.T) {
	if _, err := Decode("not json"); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	if _, err := Decode(`{"kind":"Bogus","offset":0,"length":0}`); err == nil {
		t.Error("expected an error for an unknown edit kind")
	}
}
