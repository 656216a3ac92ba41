package Dict

import (
	"bufio"
	"io"
	"strings"

	Trees "github.com/g-m-twostay/go-splay/Trees"
	"github.com/pkg/errors"
)

// ErrMalformedLine is returned by Load for a line without a tab separated definition.
var ErrMalformedLine = errors.New("malformed dictionary line")

// Dictionary maps words to definitions. Lookups splay the word to the top, so
// words looked up often are found fastest. Not safe for concurrent use.
type Dictionary struct {
	t *Trees.SplayTree[*Entry, uint32]
}

func New() *Dictionary {
	return &Dictionary{Trees.NewComparable[*Entry, uint32]()}
}

// Add a definition for word. Returns true if word is new.
func (d *Dictionary) Add(word, definition string) bool {
	n := d.t.Size()
	d.t.Insert(NewEntry(word, definition))
	return d.t.Size() > n
}

// Lookup the definitions of word. The returned slice is shared with the dictionary.
func (d *Dictionary) Lookup(word string) ([]string, bool) {
	e, ok := d.t.Find(&Entry{Word: word})
	if !ok {
		return nil, false
	}
	return e.Definitions, true
}

// Delete word and all of its definitions.
func (d *Dictionary) Delete(word string) bool {
	return d.t.Remove(&Entry{Word: word})
}

// Entries in alphabetical order.
func (d *Dictionary) Entries() []*Entry {
	return d.t.ToOrderedList()
}

func (d *Dictionary) Len() int {
	return d.t.Size()
}

// Tree exposes the underlying tree for diagnostics.
func (d *Dictionary) Tree() *Trees.SplayTree[*Entry, uint32] {
	return d.t
}

// Load reads "word<TAB>definition" lines from r. Blank lines and lines starting
// with # are skipped. Returns the number of definitions added; on a malformed
// line the definitions before it are kept.
func (d *Dictionary) Load(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	added, line := 0, 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		word, def, ok := strings.Cut(text, "\t")
		word, def = strings.TrimSpace(word), strings.TrimSpace(def)
		if !ok || word == "" || def == "" {
			return added, errors.Wrapf(ErrMalformedLine, "line %d", line)
		}
		d.Add(word, def)
		added++
	}
	return added, errors.Wrap(sc.Err(), "reading dictionary")
}
