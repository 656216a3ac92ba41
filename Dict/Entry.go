// Package Dict is a word dictionary on top of a splay tree. Each word is stored
// once; defining an existing word appends to its definitions.
package Dict

import "strings"

// Entry is a word with its definitions in the order they were added.
type Entry struct {
	Word        string
	Definitions []string
}

func NewEntry(word, definition string) *Entry {
	return &Entry{Word: word, Definitions: []string{definition}}
}

// Compare orders entries by word.
func (e *Entry) Compare(o *Entry) int {
	return strings.Compare(e.Word, o.Word)
}

// Merge appends o's definitions to e. o is expected to have the same word.
func (e *Entry) Merge(o *Entry) bool {
	e.Definitions = append(e.Definitions, o.Definitions...)
	return true
}

func (e *Entry) String() string {
	return e.Word + ": " + strings.Join(e.Definitions, "; ")
}
