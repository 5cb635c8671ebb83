// Package document provides reference implementations of the edit
// package's Document contract: StringDocument, the simplest possible
// backing store, and RopeDocument, built on an immutable B+ tree rope for
// large-document efficiency.
package document

import (
	"github.com/halvard/edittree/edit"
)

// StringDocument is a Document backed by a single Go string, copying the
// whole string on every Replace. It is meant for tests and small inputs,
// not for production-sized documents; see RopeDocument for that.
type StringDocument struct {
	text string
}

// NewStringDocument creates a StringDocument with the given initial text.
func NewStringDocument(text string) *StringDocument {
	return &StringDocument{text: text}
}

func (d *StringDocument) GetLength() int { return len(d.text) }

func (d *StringDocument) Get(offset, length int) string {
	return d.text[offset : offset+length]
}

func (d *StringDocument) Replace(offset, length int, newText string) error {
	if offset < 0 || length < 0 || offset+length > len(d.text) {
		return &edit.BadLocation{Offset: offset, Length: length, DocLength: len(d.text)}
	}
	d.text = d.text[:offset] + newText + d.text[offset+length:]
	return nil
}

// String returns the document's current contents.
func (d *StringDocument) String() string { return d.text }
