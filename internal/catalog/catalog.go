// Package catalog turns one downloaded song file into the entries
// published for it, one per subsong.
package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/llehouerou/unexotica/internal/amiga"
	"github.com/llehouerou/unexotica/internal/override"
)

// Song is one published catalog entry.
type Song struct {
	Name          string `json:"song"`
	Link          string `json:"song_link"`
	Size          int64  `json:"size,omitempty"`
	Composer      string `json:"composer,omitempty"`
	SourceArchive string `json:"source_archive,omitempty"`
}

// DecodeFunc computes subsong indices for a file. amiga.Decode satisfies it.
type DecodeFunc func(kind amiga.Kind, name string, data []byte, r amiga.Resolver) []int

// Splitter applies overrides on top of the decoders.
type Splitter struct {
	Overrides *override.Table
	Decode    DecodeFunc // nil means amiga.Decode
}

// NewSplitter returns a splitter using the stock decoders.
func NewSplitter(overrides *override.Table) *Splitter {
	return &Splitter{Overrides: overrides}
}

// Subsongs returns the indices name splits into when published under
// title. A nil result means the file is published whole: an override
// asked for it, or there is at most one subsong and the file is not marked
// single.
func (s *Splitter) Subsongs(title, name string, data []byte, r amiga.Resolver) []int {
	d := s.Decision(title, name)
	list := d.Subsongs
	if !d.Explicit {
		list = s.decode(amiga.Detect(name), name, data, r)
	}

	threshold := 1
	if d.Single {
		threshold = 0
	}
	if len(list) <= threshold {
		return nil
	}
	return list
}

// Decision returns the override for name under title. Names are matched
// after SanitizeName, the form they are published under.
func (s *Splitter) Decision(title, name string) override.Decision {
	return s.Overrides.Lookup(title, SanitizeName(name))
}

// Split returns the catalog entries for song. Every entry shares the
// song's metadata; split entries get a one-based "#n" suffix on both the
// name and the link.
func (s *Splitter) Split(title string, song Song, data []byte, r amiga.Resolver) []Song {
	return Expand(song, s.Subsongs(title, song.Name, data, r))
}

// Expand builds the entries for song from a list Subsongs produced. The
// name is sanitized first.
func Expand(song Song, subsongs []int) []Song {
	song.Name = SanitizeName(song.Name)
	if len(subsongs) == 0 {
		return []Song{song}
	}
	out := make([]Song, len(subsongs))
	for i, n := range subsongs {
		out[i] = song
		out[i].Name = fmt.Sprintf("%s #%d", song.Name, n+1)
		out[i].Link = fmt.Sprintf("%s#%d", song.Link, n+1)
	}
	return out
}

func (s *Splitter) decode(kind amiga.Kind, name string, data []byte, r amiga.Resolver) []int {
	if s.Decode != nil {
		return s.Decode(kind, name, data, r)
	}
	return amiga.Decode(kind, name, data, r)
}

// SanitizeName removes '#' so the subsong suffix stays unambiguous.
func SanitizeName(name string) string {
	return strings.ReplaceAll(name, "#", "")
}

var leadingArticle = regexp.MustCompile(`^(The)\s+(.*)$`)

// titleOverrides maps site titles to catalog titles where moving the
// article is not enough.
var titleOverrides = map[string]string{
	"A Prehistoric Tale": "Prehistoric Tale, A",
	"Legend of Kyrandia": "Legend of Kyrandia: Book One, The",
	"Xenon 2":            "Xenon 2: Megablast",
}

// SortTitle returns the catalog form of a game title: "The X" becomes
// "X, The". Override tables are keyed by this form.
func SortTitle(title string) string {
	if t, ok := titleOverrides[title]; ok {
		return t
	}
	return leadingArticle.ReplaceAllString(title, "$2, $1")
}
