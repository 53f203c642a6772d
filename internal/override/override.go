// Package override holds hand-curated exceptions to computed subsong
// splits. A Table is built once from configuration and only read after.
package override

// Entry is one exception for a file of a given title.
type Entry struct {
	Title string
	File  string

	// Single publishes a one-element subsong list as a split entry instead
	// of collapsing it into the unsplit file.
	Single bool

	// Subsongs, when non-nil, replaces the computed list. An empty non-nil
	// list forces the file to stay unsplit.
	Subsongs []int
}

// Kind classifies a Decision.
type Kind int

const (
	None Kind = iota
	Single
	Explicit
)

func (k Kind) String() string {
	switch k {
	case Single:
		return "single"
	case Explicit:
		return "explicit"
	default:
		return "none"
	}
}

// Decision is what a Table says about one file.
type Decision struct {
	Explicit bool
	Subsongs []int
	Single   bool
}

// Kind returns the strongest instruction in d: an explicit list wins over
// the single flag.
func (d Decision) Kind() Kind {
	switch {
	case d.Explicit:
		return Explicit
	case d.Single:
		return Single
	default:
		return None
	}
}

type key struct{ title, file string }

// Table is an immutable set of entries keyed by title and file.
type Table struct {
	entries map[key]Entry
}

// New builds a table. When two entries share a title and file the later
// one wins, so configuration can replace a default.
func New(entries ...Entry) *Table {
	t := &Table{entries: make(map[key]Entry, len(entries))}
	for _, e := range entries {
		e.Subsongs = clone(e.Subsongs)
		t.entries[key{e.Title, e.File}] = e
	}
	return t
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Lookup returns the decision for file of title. A nil table has no
// entries. The returned list is a copy.
func (t *Table) Lookup(title, file string) Decision {
	if t == nil {
		return Decision{}
	}
	e, ok := t.entries[key{title, file}]
	if !ok {
		return Decision{}
	}
	return Decision{
		Explicit: e.Subsongs != nil,
		Subsongs: clone(e.Subsongs),
		Single:   e.Single,
	}
}

// Range returns the inclusive sequence from..to.
func Range(from, to int) []int {
	if to < from {
		return []int{}
	}
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func clone(s []int) []int {
	if s == nil {
		return nil
	}
	return append([]int{}, s...)
}
