// Package bundle gives decoders access to the files a song is shipped
// with. Some Amiga formats keep their sample data in a separate file, and
// those pairs are published together as one zip.
package bundle

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// Map is an in-memory bundle keyed by entry name.
type Map map[string][]byte

// Entry returns the named entry. A name that is not found verbatim is
// matched on its base name.
func (m Map) Entry(name string) ([]byte, bool) {
	if data, ok := m[name]; ok {
		return data, true
	}
	base := baseName(name)
	for _, n := range m.Names() {
		if baseName(n) == base {
			return m[n], true
		}
	}
	return nil, false
}

// Names returns the entry names in sorted order.
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Size returns the total size of all entries.
func (m Map) Size() int64 {
	var n int64
	for _, data := range m {
		n += int64(len(data))
	}
	return n
}

// Single wraps one file as a bundle.
func Single(name string, data []byte) Map {
	return Map{name: data}
}

// FromZip reads every regular entry of the zip at path into memory.
func FromZip(path string) (Map, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip %s: %w", path, err)
	}
	defer r.Close()
	return readZip(&r.Reader)
}

func readZip(r *zip.Reader) (Map, error) {
	m := make(Map, len(r.File))
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open entry %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read entry %s: %w", f.Name, err)
		}
		m[strings.ReplaceAll(f.Name, `\`, "/")] = data
	}
	return m, nil
}

// ForFile loads the song at path together with its samples file when the
// format needs one. A missing samples file is an error since the song
// cannot be played without it.
func ForFile(file string, samples map[string]string) (Map, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	m := Map{filepath.Base(file): data}

	samplesPath, ok := SamplesName(filepath.ToSlash(file), samples)
	if !ok {
		return m, nil
	}
	sdata, err := os.ReadFile(filepath.FromSlash(samplesPath))
	if err != nil {
		return nil, fmt.Errorf("samples for %s: %w", filepath.Base(file), err)
	}
	m[path.Base(samplesPath)] = sdata
	return m, nil
}

// WriteZip packs the bundle into a zip at file, creating its directory.
func WriteZip(file string, m Map) error {
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return err
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := m.Pack(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", file, err)
	}
	return f.Close()
}

// Pack writes the bundle as a zip with entries in name order.
func (m Map) Pack(w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, name := range m.Names() {
		f, err := zw.Create(name)
		if err != nil {
			return err
		}
		if _, err := f.Write(m[name]); err != nil {
			return err
		}
	}
	return zw.Close()
}

var samplesBundle = regexp.MustCompile(`^(rjp|jpn|mdat)\.`)

var samplesPrefix = map[string]string{
	"rjp":  "smp",
	"jpn":  "smp",
	"mdat": "smpl",
}

// NeedsSamples reports whether the song named name keeps its samples in
// a separate file.
func NeedsSamples(name string) bool {
	return samplesBundle.MatchString(baseName(name))
}

// SamplesName returns the samples file paired with song. overrides maps a
// song path, or a trailing part of it, to its samples path and wins over
// the prefix convention. The bool is false when song needs no samples.
func SamplesName(song string, overrides map[string]string) (string, bool) {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if song == k {
			return overrides[k], true
		}
		if strings.HasSuffix(song, "/"+k) {
			return strings.TrimSuffix(song, k) + overrides[k], true
		}
	}

	dir, base := path.Split(song)
	m := samplesBundle.FindStringSubmatch(base)
	if m == nil {
		return "", false
	}
	return dir + samplesPrefix[m[1]] + base[len(m[1]):], true
}

// DefaultSamples lists the songs that share a samples file instead of
// following the naming convention.
func DefaultSamples() map[string]string {
	const dir = "James_Pond_2/AGA_Version/"
	m := make(map[string]string)
	for _, s := range []string{"bonus", "ingame_1", "ingame_2", "ingame_3", "ingame_4", "ingame_5", "title"} {
		m[dir+"rjp."+s] = dir + "smp.set"
	}
	return m
}

var companion = regexp.MustCompile(`(^|/)(smpl?\.|mod\..+\.nt|[Ii]nstruments/|Art_and_Magic_Player_Source|musica\.(readme|txt))`)

// IsCompanion reports whether name is a support file, such as a sample
// bank, that is never published on its own.
func IsCompanion(name string) bool {
	return companion.MatchString(filepath.ToSlash(name))
}

func baseName(name string) string {
	return path.Base(strings.ReplaceAll(name, `\`, "/"))
}
