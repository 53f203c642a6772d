package catalog

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/unexotica/internal/amiga"
	"github.com/llehouerou/unexotica/internal/override"
)

func fixed(list ...int) DecodeFunc {
	return func(amiga.Kind, string, []byte, amiga.Resolver) []int { return list }
}

func song(name string) Song {
	return Song{Name: name, Link: "unexotica/Game/" + name, Size: 1234, Composer: "Someone"}
}

func TestSplit_Threshold(t *testing.T) {
	tests := []struct {
		name     string
		decoded  []int
		single   bool
		wantLen  int
		wantName string
	}{
		{"no subsongs", nil, false, 1, "mod.x"},
		{"one subsong collapses", []int{0}, false, 1, "mod.x"},
		{"two subsongs", []int{0, 5}, false, 2, "mod.x #1"},
		{"single keeps one subsong", []int{3}, true, 1, "mod.x #4"},
		{"single with nothing", nil, true, 1, "mod.x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var table *override.Table
			if tt.single {
				table = override.New(override.Entry{Title: "Game", File: "mod.x", Single: true})
			}
			s := &Splitter{Overrides: table, Decode: fixed(tt.decoded...)}
			got := s.Split("Game", song("mod.x"), nil, nil)
			require.Len(t, got, tt.wantLen)
			assert.Equal(t, tt.wantName, got[0].Name)
		})
	}
}

func TestSplit_Naming(t *testing.T) {
	s := &Splitter{Decode: fixed(0, 6, 7)}
	got := s.Split("Game", song("rjp.JON"), nil, nil)

	require.Len(t, got, 3)
	assert.Equal(t, "rjp.JON #1", got[0].Name)
	assert.Equal(t, "rjp.JON #7", got[1].Name)
	assert.Equal(t, "unexotica/Game/rjp.JON#8", got[2].Link)
	for _, s := range got {
		assert.Equal(t, int64(1234), s.Size)
		assert.Equal(t, "Someone", s.Composer)
	}
}

func TestSplit_ExplicitOverride(t *testing.T) {
	table := override.New(
		override.Entry{Title: "Game", File: "rjp.a", Subsongs: []int{2, 4}},
		override.Entry{Title: "Game", File: "rjp.b", Subsongs: []int{}},
	)
	called := false
	s := &Splitter{Overrides: table, Decode: func(amiga.Kind, string, []byte, amiga.Resolver) []int {
		called = true
		return []int{0, 1, 2}
	}}

	assert.Equal(t, []int{2, 4}, s.Subsongs("Game", "rjp.a", nil, nil))
	assert.Nil(t, s.Subsongs("Game", "rjp.b", nil, nil))
	assert.False(t, called, "explicit lists bypass the decoders")

	assert.Equal(t, []int{0, 1, 2}, s.Subsongs("Other", "rjp.a", nil, nil))
	assert.True(t, called)
}

func TestSplit_DefaultSingleEntries(t *testing.T) {
	s := NewSplitter(override.New(override.Defaults()...))

	got := s.Split("Dune II", song("DUNE11.ADL"), nil, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "DUNE11.ADL #8", got[0].Name)
	assert.Equal(t, "unexotica/Game/DUNE11.ADL#8", got[0].Link)

	got = s.Split("Eye of the Beholder II: The Legend of Darkmoon", song("FOREST.ADL"), nil, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "FOREST.ADL #53", got[0].Name)

	got = s.Split("Cannon Fodder", song("rjp.WARX4"), nil, nil)
	assert.Equal(t, []Song{song("rjp.WARX4")}, got)
}

func TestSplit_StockDecoder(t *testing.T) {
	data := make([]byte, 100)
	copy(data[44:], "SCRM")
	binary.LittleEndian.PutUint16(data[32:], 4)
	copy(data[96:], []byte{0, 255, 1, 255})

	got := NewSplitter(nil).Split("Game", song("tune.s3m"), data, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "tune.s3m #1", got[0].Name)
	assert.Equal(t, "tune.s3m #3", got[1].Name)
}

func TestSplit_UnknownKind(t *testing.T) {
	got := NewSplitter(nil).Split("Game", song("readme.txt"), []byte("hello"), nil)
	assert.Equal(t, []Song{song("readme.txt")}, got)
}

func TestSplit_SanitizesNames(t *testing.T) {
	table := override.New(override.Entry{Title: "Game", File: "mod.song 2", Subsongs: []int{0, 3}})
	s := &Splitter{Overrides: table, Decode: fixed()}

	got := s.Split("Game", song("mod.song #2"), nil, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "mod.song 2 #1", got[0].Name)
	assert.Equal(t, "mod.song 2 #4", got[1].Name)

	whole := Expand(song("mod.a#b"), nil)
	assert.Equal(t, "mod.ab", whole[0].Name)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "mod.song 2", SanitizeName("mod.song #2"))
	assert.Equal(t, "plain", SanitizeName("plain"))
}

func TestSortTitle(t *testing.T) {
	tests := map[string]string{
		"The Chaos Engine":   "Chaos Engine, The",
		"Cannon Fodder":      "Cannon Fodder",
		"Theme Park":         "Theme Park",
		"A Prehistoric Tale": "Prehistoric Tale, A",
		"Xenon 2":            "Xenon 2: Megablast",
	}
	for in, want := range tests {
		assert.Equal(t, want, SortTitle(in), in)
	}
}
