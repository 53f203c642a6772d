package scan

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/unexotica/internal/amiga"
	"github.com/llehouerou/unexotica/internal/bundle"
	"github.com/llehouerou/unexotica/internal/catalog"
	"github.com/llehouerou/unexotica/internal/override"
	"github.com/llehouerou/unexotica/internal/state"
)

// s3m returns a minimal Scream Tracker 3 header with the given orders.
func s3m(orders ...byte) []byte {
	data := make([]byte, 96+len(orders))
	copy(data[44:], "SCRM")
	binary.LittleEndian.PutUint16(data[32:], uint16(len(orders)))
	copy(data[96:], orders)
	return data
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func newStore(t *testing.T) *state.Store {
	t.Helper()
	s, err := state.Open(state.Memory)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func drain(ch <-chan Progress) []Progress {
	var out []Progress
	for p := range ch {
		out = append(out, p)
	}
	return out
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		kind amiga.Kind
		name string
		ok   bool
	}{
		{"Game/mod.title", amiga.KindMOD, "Game/mod.title", true},
		{"Game/tune.S3M", amiga.KindST3, "Game/tune.S3M", true},
		{"Game/rjp.title.zip", amiga.KindRJP, "Game/rjp.title", true},
		{"Game/mdat.intro.zip", amiga.KindTFMX, "Game/mdat.intro", true},
		{"Game/mod.title.zip", amiga.KindNone, "", false},
		{"Game/smp.title", amiga.KindNone, "", false},
		{"Game/mod.title.nt", amiga.KindNone, "", false},
		{"Game/readme.txt", amiga.KindNone, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			kind, name, ok := Classify(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestOpen_Zip(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	require.NoError(t, bundle.Map{"rjp.song": []byte("song"), "smp.song": []byte("samples")}.Pack(&buf))
	path := filepath.Join(dir, "rjp.song.zip")
	writeFile(t, path, buf.Bytes())

	f, err := Open(path, nil)
	require.NoError(t, err)
	assert.Equal(t, amiga.KindRJP, f.Kind)
	assert.Equal(t, filepath.ToSlash(filepath.Join(dir, "rjp.song")), f.Name)
	assert.Equal(t, []byte("song"), f.Data)
	assert.Equal(t, int64(11), f.Size())
}

func TestRun(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "tune.s3m"), s3m(0, 255, 1, 255))
	writeFile(t, filepath.Join(root, "Sub", "mod.noise"), []byte("not a module"))
	writeFile(t, filepath.Join(root, "smp.shared"), []byte("samples"))
	writeFile(t, filepath.Join(root, "readme.txt"), []byte("hello"))
	writeFile(t, filepath.Join(root, "rjp.orphan"), []byte("RJP1SMOD"))

	store := newStore(t)
	sc := &Scanner{Store: store, Workers: 2}

	progress := make(chan Progress, 64)
	var events []Progress
	collected := make(chan struct{})
	go func() {
		events = drain(progress)
		close(collected)
	}()

	stats, err := sc.Run(context.Background(), []string{root}, progress)
	require.NoError(t, err)
	<-collected

	rs := stats.ByRoot[root]
	require.NotNil(t, rs)
	assert.ElementsMatch(t, []string{"tune.s3m", "Sub/mod.noise"}, rs.Added)
	assert.Equal(t, []string{"rjp.orphan"}, rs.Failed, "rjp song without samples")

	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, PhaseDone, last.Phase)
	assert.Same(t, stats, last.Stats)
	assert.Equal(t, PhaseScanning, events[0].Phase)

	a, err := store.Asset(filepath.Join(root, "tune.s3m"))
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, amiga.KindST3, a.Kind)
	assert.Equal(t, []int{0, 2}, a.Subsongs)

	a, err = store.Asset(filepath.Join(root, "Sub", "mod.noise"))
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Nil(t, a.Subsongs)
}

func TestRun_Incremental(t *testing.T) {
	root := t.TempDir()
	tune := filepath.Join(root, "tune.s3m")
	other := filepath.Join(root, "other.s3m")
	writeFile(t, tune, s3m(0, 255, 1))
	writeFile(t, other, s3m(0))

	store := newStore(t)
	sc := &Scanner{Store: store}

	_, err := sc.Run(context.Background(), []string{root}, nil)
	require.NoError(t, err)

	stats, err := sc.Run(context.Background(), []string{root}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.ByRoot[root].Unchanged)
	assert.Empty(t, stats.ByRoot[root].Added)

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(tune, later, later))
	require.NoError(t, os.Remove(other))

	stats, err = sc.Run(context.Background(), []string{root}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"tune.s3m"}, stats.ByRoot[root].Updated)
	assert.Equal(t, []string{"other.s3m"}, stats.ByRoot[root].Removed)

	a, err := store.Asset(other)
	require.NoError(t, err)
	assert.Nil(t, a)

	sc.Force = true
	stats, err = sc.Run(context.Background(), []string{root}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"tune.s3m"}, stats.ByRoot[root].Updated)

	total := stats.Total()
	assert.Equal(t, 0, total.Unchanged)
	assert.Len(t, total.Updated, 1)
}

func TestRun_Overrides(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Music", "tune.s3m"), s3m(0, 255, 1))

	table := override.New(override.Entry{Title: "Game", File: "Music/tune.s3m", Subsongs: []int{4, 9}})
	store := newStore(t)
	sc := &Scanner{Store: store, Splitter: catalog.NewSplitter(table), Title: "Game"}

	_, err := sc.Run(context.Background(), []string{root}, nil)
	require.NoError(t, err)

	a, err := store.Asset(filepath.Join(root, "Music", "tune.s3m"))
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, []int{4, 9}, a.Subsongs)
}

func TestRun_SettingsChangeInvalidates(t *testing.T) {
	root := t.TempDir()
	tune := filepath.Join(root, "tune.s3m")
	other := filepath.Join(root, "other.s3m")
	writeFile(t, tune, s3m(0, 255, 1))
	writeFile(t, other, s3m(0, 255, 1))

	store := newStore(t)
	sc := &Scanner{Store: store, Title: "Game"}

	_, err := sc.Run(context.Background(), []string{root}, nil)
	require.NoError(t, err)

	// A new override for one file re-decodes only that file.
	table := override.New(override.Entry{Title: "Game", File: "tune.s3m", Subsongs: []int{4, 9}})
	sc.Splitter = catalog.NewSplitter(table)
	stats, err := sc.Run(context.Background(), []string{root}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"tune.s3m"}, stats.ByRoot[root].Updated)
	assert.Equal(t, 1, stats.ByRoot[root].Unchanged)

	a, err := store.Asset(tune)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, []int{4, 9}, a.Subsongs)

	stats, err = sc.Run(context.Background(), []string{root}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.ByRoot[root].Unchanged)

	// The override no longer applies under another title.
	sc.Title = "Other Game"
	stats, err = sc.Run(context.Background(), []string{root}, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"tune.s3m", "other.s3m"}, stats.ByRoot[root].Updated)

	a, err = store.Asset(tune)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, []int{0, 2}, a.Subsongs)
}

func TestRun_ManyFilesInBatches(t *testing.T) {
	root := t.TempDir()
	n := writeBatch + 5
	for i := range n {
		writeFile(t, filepath.Join(root, fmt.Sprintf("tune%03d.s3m", i)), s3m(0, 255, 1))
	}

	store := newStore(t)
	stats, err := (&Scanner{Store: store, Workers: 4}).Run(context.Background(), []string{root}, nil)
	require.NoError(t, err)
	assert.Len(t, stats.ByRoot[root].Added, n)

	assets, err := store.Assets()
	require.NoError(t, err)
	assert.Len(t, assets, n)
}

func TestRun_FileRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tune.s3m")
	writeFile(t, path, s3m(0, 254, 1))

	store := newStore(t)
	stats, err := (&Scanner{Store: store}).Run(context.Background(), []string{path}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"tune.s3m"}, stats.ByRoot[path].Added)
}

func TestRun_Canceled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "tune.s3m"), s3m(0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Scanner{Store: newStore(t)}).Run(ctx, []string{root}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
