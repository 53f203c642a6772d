package bundle

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplesName(t *testing.T) {
	tests := []struct {
		song   string
		want   string
		wantOK bool
	}{
		{"Game/rjp.title", "Game/smp.title", true},
		{"Game/jpn.level", "Game/smp.level", true},
		{"Game/mdat.intro", "Game/smpl.intro", true},
		{"mdat.intro", "smpl.intro", true},
		{"rjp.dir/mod.song", "", false},
		{"Game/mod.song", "", false},
		{"Game/xrjp.song", "", false},
		{"James_Pond_2/AGA_Version/rjp.bonus", "James_Pond_2/AGA_Version/smp.set", true},
		{"/data/unexotica/James_Pond_2/AGA_Version/rjp.title", "/data/unexotica/James_Pond_2/AGA_Version/smp.set", true},
	}
	for _, tt := range tests {
		t.Run(tt.song, func(t *testing.T) {
			got, ok := SamplesName(tt.song, DefaultSamples())
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNeedsSamples(t *testing.T) {
	assert.True(t, NeedsSamples("rjp.song"))
	assert.True(t, NeedsSamples(`Game\mdat.song`))
	assert.False(t, NeedsSamples("smp.song"))
	assert.False(t, NeedsSamples("mdat.dir/di.song"))
}

func TestIsCompanion(t *testing.T) {
	tests := map[string]bool{
		"Game/smp.title":                  true,
		"Game/smpl.intro":                 true,
		"smp.set":                         true,
		"Game/mod.song.nt":                true,
		"Game/Instruments/bass":           true,
		"Game/instruments/bass":           true,
		"Art_and_Magic_Player_Source/x.s": true,
		"Game/musica.readme":              true,
		"Game/rjp.title":                  false,
		"Game/mod.song":                   false,
		"Game/mdat.smp.x":                 false,
	}
	for name, want := range tests {
		assert.Equal(t, want, IsCompanion(name), name)
	}
}

func TestMap(t *testing.T) {
	m := Map{"Game/rjp.a": []byte{1}, "smp.a": []byte{2, 3}}

	data, ok := m.Entry("smp.a")
	require.True(t, ok)
	assert.Equal(t, []byte{2, 3}, data)

	data, ok = m.Entry("rjp.a")
	require.True(t, ok, "base name fallback")
	assert.Equal(t, []byte{1}, data)

	_, ok = m.Entry("rjp.b")
	assert.False(t, ok)

	assert.Equal(t, []string{"Game/rjp.a", "smp.a"}, m.Names())
	assert.Equal(t, int64(3), m.Size())
}

func TestSingle(t *testing.T) {
	m := Single("Game/mdat.intro", []byte{9})
	data, ok := m.Entry("mdat.intro")
	require.True(t, ok)
	assert.Equal(t, []byte{9}, data)
	assert.Equal(t, []string{"Game/mdat.intro"}, m.Names())
}

func TestPackAndFromZip(t *testing.T) {
	m := Map{"rjp.song": []byte("RJP1SMOD"), "smp.song": []byte("samples")}

	var buf bytes.Buffer
	require.NoError(t, m.Pack(&buf))

	path := filepath.Join(t.TempDir(), "rjp.song.zip")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	got, err := FromZip(path)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestWriteZip(t *testing.T) {
	m := Map{"mdat.intro": []byte("TFMX-SONG "), "smpl.intro": []byte{1, 2}}
	path := filepath.Join(t.TempDir(), "Game", "mdat.intro.zip")

	require.NoError(t, WriteZip(path, m))
	got, err := FromZip(path)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestFromZip_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.zip")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o644))
	_, err := FromZip(path)
	assert.Error(t, err)
}

func TestForFile(t *testing.T) {
	dir := t.TempDir()
	song := filepath.Join(dir, "rjp.song")
	require.NoError(t, os.WriteFile(song, []byte("song"), 0o644))

	_, err := ForFile(song, nil)
	require.Error(t, err, "samples file missing")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "smp.song"), []byte("samples"), 0o644))
	m, err := ForFile(song, nil)
	require.NoError(t, err)
	assert.Equal(t, Map{"rjp.song": []byte("song"), "smp.song": []byte("samples")}, m)

	plain := filepath.Join(dir, "mod.plain")
	require.NoError(t, os.WriteFile(plain, []byte("mod"), 0o644))
	m, err = ForFile(plain, nil)
	require.NoError(t, err)
	assert.Equal(t, Map{"mod.plain": []byte("mod")}, m)
}
