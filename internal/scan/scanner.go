// Package scan walks directories of downloaded songs and caches the
// subsongs found in each one.
package scan

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/llehouerou/unexotica/internal/bundle"
	"github.com/llehouerou/unexotica/internal/catalog"
	"github.com/llehouerou/unexotica/internal/state"
)

const defaultWorkers = 8

// Phase names a step of a scan.
type Phase string

const (
	PhaseScanning   Phase = "scanning"
	PhaseProcessing Phase = "processing"
	PhaseCleaning   Phase = "cleaning"
	PhaseDone       Phase = "done"
)

// Progress reports the progress of a scan.
type Progress struct {
	Phase       Phase
	Current     int
	Total       int
	CurrentFile string
	Stats       *Stats // Only populated when Phase == PhaseDone
}

// Stats holds statistics for a completed scan.
type Stats struct {
	ByRoot map[string]*RootStats // keyed by root path
}

// RootStats holds per-root scan statistics.
type RootStats struct {
	Added     []string // relative paths of new songs
	Updated   []string // relative paths of songs whose mtime or settings changed
	Removed   []string // relative paths of songs no longer on disk
	Failed    []string // relative paths of songs that could not be loaded
	Unchanged int
}

// Store is the cache a scan reads and writes. *state.Store implements it.
type Store interface {
	Stamps(prefixes []string) (map[string]state.Stamp, error)
	PutAssets(assets []state.Asset) error
	DeleteAsset(path string) error
}

// Scanner decodes every song under a set of roots.
type Scanner struct {
	Store    Store
	Splitter *catalog.Splitter
	Title    string            // game title for override lookups
	Samples  map[string]string // samples pairings off the naming convention
	Workers  int               // 0 means 8
	Force    bool              // rescan files even when nothing changed
}

// fileInfo holds information about a discovered song.
type fileInfo struct {
	path  string
	name  string // relative to root, slash separated
	mtime  int64
	root   string
	inputs string
}

// fileResult holds the outcome of decoding one song.
type fileResult struct {
	file  fileInfo
	asset state.Asset
	err   error
	isNew bool
}

// Run scans roots and closes progress when it returns. progress may be
// nil.
func (s *Scanner) Run(ctx context.Context, roots []string, progress chan<- Progress) (*Stats, error) {
	if progress != nil {
		defer close(progress)
	}
	send := func(p Progress) {
		if progress != nil {
			progress <- p
		}
	}

	stats := &Stats{ByRoot: make(map[string]*RootStats)}
	for _, root := range roots {
		stats.ByRoot[root] = &RootStats{}
	}

	// Phase 1: Find songs
	send(Progress{Phase: PhaseScanning})
	files, discovered, err := discoverFiles(ctx, roots, send)
	if err != nil {
		return nil, err
	}

	// Phase 2: Skip what the cache already has
	existing, err := s.Store.Stamps(roots)
	if err != nil {
		return nil, err
	}

	splitter := s.splitter()
	toProcess := make([]fileInfo, 0, len(files))
	isNew := make(map[string]bool)
	for _, f := range files {
		f.inputs = s.inputs(splitter, f)
		st, known := existing[f.path]
		if !s.Force && known && st.Mtime == f.mtime && st.Inputs == f.inputs {
			stats.ByRoot[f.root].Unchanged++
			continue
		}
		isNew[f.path] = !known
		toProcess = append(toProcess, f)
	}

	// Phase 3: Decode new and modified songs
	if len(toProcess) > 0 {
		if err := s.processFiles(ctx, splitter, toProcess, isNew, stats, send); err != nil {
			return nil, err
		}
	}

	// Phase 4: Forget deleted songs
	send(Progress{Phase: PhaseCleaning})
	for path := range existing {
		if _, ok := discovered[path]; ok {
			continue
		}
		if err := s.Store.DeleteAsset(path); err != nil {
			return nil, err
		}
		for _, root := range roots {
			if strings.HasPrefix(path, root) {
				stats.ByRoot[root].Removed = append(stats.ByRoot[root].Removed, relativePath(root, path))
				break
			}
		}
	}

	send(Progress{Phase: PhaseDone, Current: len(files), Total: len(files), Stats: stats})
	return stats, nil
}

func (s *Scanner) splitter() *catalog.Splitter {
	if s.Splitter == nil {
		return catalog.NewSplitter(nil)
	}
	return s.Splitter
}

// inputs fingerprints what a file's cached row depends on besides its
// bytes: the title, its override and its samples pairing.
func (s *Scanner) inputs(splitter *catalog.Splitter, f fileInfo) string {
	_, name, _ := Classify(f.name)
	d := splitter.Decision(s.Title, name)
	samples, _ := bundle.SamplesName(filepath.ToSlash(f.path), s.Samples)
	data := fmt.Sprintf("%s:%t:%t:%v:%s", s.Title, d.Explicit, d.Single, d.Subsongs, samples)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

func (s *Scanner) workers() int {
	if s.Workers <= 0 {
		return defaultWorkers
	}
	return s.Workers
}

// Total sums the per-root counters.
func (st *Stats) Total() RootStats {
	var t RootStats
	for _, r := range st.ByRoot {
		t.Added = append(t.Added, r.Added...)
		t.Updated = append(t.Updated, r.Updated...)
		t.Removed = append(t.Removed, r.Removed...)
		t.Failed = append(t.Failed, r.Failed...)
		t.Unchanged += r.Unchanged
	}
	return t
}
