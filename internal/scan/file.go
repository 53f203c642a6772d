package scan

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/llehouerou/unexotica/internal/amiga"
	"github.com/llehouerou/unexotica/internal/bundle"
)

const zipExt = ".zip"

// File is a song loaded with everything its decoder needs.
type File struct {
	Path   string     // on disk
	Name   string     // logical song name, without a bundle's .zip
	Kind   amiga.Kind // decoder the name routes to
	Data   []byte     // song bytes
	Bundle bundle.Map // song plus any samples file
}

// Size is the published size: the song plus its samples.
func (f *File) Size() int64 {
	return f.Bundle.Size()
}

// Classify returns the decoder kind and logical name for path, or false
// when the file is not something to split. Songs that need samples may be
// stored as "<name>.zip" bundles.
func Classify(path string) (amiga.Kind, string, bool) {
	name := filepath.ToSlash(path)
	if strings.EqualFold(filepath.Ext(name), zipExt) {
		name = name[:len(name)-len(zipExt)]
		if !bundle.NeedsSamples(name) {
			return amiga.KindNone, "", false
		}
	}
	if bundle.IsCompanion(name) {
		return amiga.KindNone, "", false
	}
	kind := amiga.Detect(name)
	if kind == amiga.KindNone {
		return amiga.KindNone, "", false
	}
	return kind, name, true
}

// Open loads the song at path. samples maps songs to samples files that
// don't follow the naming convention.
func Open(path string, samples map[string]string) (*File, error) {
	kind, name, ok := Classify(path)
	if !ok {
		kind, name = amiga.KindNone, filepath.ToSlash(path)
	}

	var b bundle.Map
	var err error
	switch {
	case strings.EqualFold(filepath.Ext(path), zipExt) && ok:
		b, err = bundle.FromZip(path)
	case bundle.NeedsSamples(name):
		b, err = bundle.ForFile(path, samples)
	default:
		var data []byte
		data, err = os.ReadFile(path)
		b = bundle.Single(filepath.Base(path), data)
	}
	if err != nil {
		return nil, err
	}

	data, _ := b.Entry(amiga.BaseName(name))
	return &File{Path: path, Name: name, Kind: kind, Data: data, Bundle: b}, nil
}
