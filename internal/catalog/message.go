package catalog

import (
	"cmp"
	"slices"
)

// Message is one extracted message with its identifier assigned.
type Message struct {
	ID             string
	DefaultMessage string
	Description    string
	HasDescription bool

	// Location is set when source locations are extracted.
	File        string
	Start       int
	End         int
	HasLocation bool

	// Meta carries pragma metadata of the declaration site.
	Meta map[string]string
}

// SameContent reports whether m and o describe the same message text.
func (m Message) SameContent(o Message) bool {
	return m.DefaultMessage == o.DefaultMessage &&
		m.Description == o.Description &&
		m.HasDescription == o.HasDescription
}

// SortByID orders messages by id; equal ids keep their relative order.
func SortByID(msgs []Message) {
	slices.SortStableFunc(msgs, func(a, b Message) int { return cmp.Compare(a.ID, b.ID) })
}

// Entry is an id with its message text, as read from a catalog to compile.
type Entry struct {
	ID      string
	Message string
}

// SortEntries orders entries by id.
func SortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int { return cmp.Compare(a.ID, b.ID) })
}
