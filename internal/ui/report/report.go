// Package report prints decoder results as a table or JSON, and hosts the
// interactive browser for them.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/unexotica/internal/amiga"
	"github.com/llehouerou/unexotica/internal/catalog"
	"github.com/llehouerou/unexotica/internal/ui/styles"
)

const (
	kindWidth  = 5
	sizeWidth  = 9
	countWidth = 5
	minName    = 12
	gap        = 2
)

// Entry is the outcome for one file.
type Entry struct {
	Path     string
	Name     string // logical song name, used for the published entries
	Kind     amiga.Kind
	Size     int64
	Subsongs []int // nil when published whole
	Err      error
}

// Songs returns the catalog entries the file publishes as.
func (e Entry) Songs() []catalog.Song {
	name := e.Name
	if name == "" {
		name = filepath.Base(e.Path)
	}
	song := catalog.Song{Name: name, Link: filepath.ToSlash(e.Path), Size: e.Size}
	return catalog.Expand(song, e.Subsongs)
}

// Render returns a table of entries fitted to width columns.
func Render(entries []Entry, width int) string {
	t := styles.T()
	nameWidth := max(width-kindWidth-sizeWidth-countWidth-4*gap, minName)

	var sb strings.Builder
	sb.WriteString(t.Banner("unexotica"))
	sb.WriteString("\n\n")
	sb.WriteString(t.S().Header.Render(row("FILE", "KIND", "SIZE", "SONGS", "SUBSONGS", nameWidth)))
	sb.WriteString("\n")

	var split, songs int
	for _, e := range entries {
		if e.Err != nil {
			line := cell(e.Path, nameWidth) + pad(gap) + e.Err.Error()
			sb.WriteString(t.S().Error.Render(line))
			sb.WriteString("\n")
			continue
		}

		count := len(e.Songs())
		songs += count
		if e.Subsongs != nil {
			split++
		}

		sb.WriteString(cell(e.Path, nameWidth))
		sb.WriteString(pad(gap))
		sb.WriteString(t.Kind(e.Kind).Render(cell(e.Kind.String(), kindWidth)))
		sb.WriteString(pad(gap))
		sb.WriteString(t.S().Muted.Render(leftPad(formatSize(e.Size), sizeWidth)))
		sb.WriteString(pad(gap))
		sb.WriteString(leftPad(strconv.Itoa(count), countWidth))
		sb.WriteString(pad(gap))
		sb.WriteString(t.S().Subtle.Render(FormatSubsongs(e.Subsongs)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(t.S().Title.Render(fmt.Sprintf("%d files, %d split, %d entries", len(entries), split, songs)))
	sb.WriteString("\n")
	return sb.String()
}

func row(name, kind, size, count, rest string, nameWidth int) string {
	return cell(name, nameWidth) + pad(gap) +
		cell(kind, kindWidth) + pad(gap) +
		leftPad(size, sizeWidth) + pad(gap) +
		leftPad(count, countWidth) + pad(gap) +
		rest
}

// cell truncates s and pads it to exactly width columns.
func cell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

func leftPad(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

func pad(n int) string {
	return strings.Repeat(" ", n)
}

// FormatSubsongs lists the one-based subsong numbers, or "-" when the file
// is published whole.
func FormatSubsongs(subsongs []int) string {
	if len(subsongs) == 0 {
		return "-"
	}
	parts := make([]string, len(subsongs))
	for i, n := range subsongs {
		parts[i] = "#" + strconv.Itoa(n+1)
	}
	return strings.Join(parts, " ")
}

// formatSize formats a file size in human-readable form.
// Uses binary calculation (1024) with SI notation (KB, MB, GB).
func formatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	s := humanize.IBytes(uint64(bytes)) //nolint:gosec // bytes is guaranteed non-negative above
	return strings.ReplaceAll(s, "iB", "B")
}

type jsonEntry struct {
	Path     string         `json:"path"`
	Kind     string         `json:"kind"`
	Size     int64          `json:"size"`
	Subsongs []int          `json:"subsongs"`
	Songs    []catalog.Song `json:"songs,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// WriteJSON writes entries as an indented JSON array.
func WriteJSON(w io.Writer, entries []Entry) error {
	out := make([]jsonEntry, len(entries))
	for i, e := range entries {
		je := jsonEntry{
			Path:     filepath.ToSlash(e.Path),
			Kind:     e.Kind.String(),
			Size:     e.Size,
			Subsongs: e.Subsongs,
		}
		if je.Subsongs == nil {
			je.Subsongs = []int{}
		}
		if e.Err != nil {
			je.Error = e.Err.Error()
		} else {
			je.Songs = e.Songs()
		}
		out[i] = je
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
