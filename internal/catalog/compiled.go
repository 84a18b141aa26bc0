package catalog

import (
	"intlc/internal/jsonx"
)

// CompiledEntry is either canonical message text or an encoded AST.
type CompiledEntry struct {
	ID   string
	Text string
	AST  []byte // JSON; when set, Text is ignored
}

// Compiled is the output of the compiler for one locale. Entries are kept
// sorted by id and replaced as a whole on regeneration.
type Compiled struct {
	Locale  string
	Entries []CompiledEntry
}

// Get returns the entry for id.
func (c *Compiled) Get(id string) (CompiledEntry, bool) {
	for _, e := range c.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return CompiledEntry{}, false
}

// Len returns the number of entries.
func (c *Compiled) Len() int { return len(c.Entries) }

// MarshalJSON encodes the catalog as an indented JSON object id -> entry.
func (c *Compiled) MarshalJSON() ([]byte, error) {
	var b jsonx.Builder
	b.BeginObject()
	for _, e := range c.Entries {
		b.Key(e.ID)
		if e.AST != nil {
			b.Raw(e.AST)
		} else {
			b.String(e.Text)
		}
	}
	b.EndObject()
	return b.Indented()
}
