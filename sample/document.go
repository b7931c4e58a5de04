package sample

import "time"

// Person is a plain cloneable value holder.
//
// +clone
type Person struct {
	Name string
	Age  int
}

// Metadata is embedded by value into Document.
//
// +clone
type Metadata struct {
	Version int
	Owner   *Person
}

// Label is not marked cloneable, so fields of this type are always shared.
type Label struct {
	Text string
}

// Document mixes every property treatment: plain values, a shared author,
// deep cloned reviewer and metadata, and an excluded draft.
//
// +clone
type Document struct {
	Title    string
	Author   *Person `clone:"nodeep"`
	Reviewer *Person
	Meta     Metadata
	Label    *Label
	Tags     []string
	Created  time.Time
	draft    string `clone:"-"`
}

// Draft returns the unsaved draft text. Drafts are never cloned.
func (d *Document) Draft() string {
	return d.draft
}

// SetDraft replaces the unsaved draft text.
func (d *Document) SetDraft(text string) {
	d.draft = text
}
