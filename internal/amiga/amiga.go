// Package amiga finds the subsongs packed into a single Amiga music file.
//
// Each supported format has a Split function that takes the raw file bytes
// and returns zero-based subsong indices. An empty result means the file
// is not of that format, is malformed, or holds a single song; callers
// publish it unsplit. Split functions never modify their input and keep no
// state between calls, so they are safe for concurrent use.
package amiga

import (
	"path"
	"strings"
)

// Kind identifies the decoder a file is routed to.
type Kind int

const (
	KindNone Kind = iota
	KindTFMX      // mdat.*
	KindMOD       // mod.* and *.mod
	KindDI        // di.*
	KindRH        // rh.*
	KindDW        // dw.*
	KindRJP       // rjp.*
	KindST3       // *.s3m
)

var kindNames = [...]string{
	KindNone: "none",
	KindTFMX: "tfmx",
	KindMOD:  "mod",
	KindDI:   "di",
	KindRH:   "rh",
	KindDW:   "dw",
	KindRJP:  "rjp",
	KindST3:  "s3m",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String. Unknown names map to KindNone.
func ParseKind(s string) Kind {
	for k, name := range kindNames {
		if name == s {
			return Kind(k)
		}
	}
	return KindNone
}

var prefixKinds = []struct {
	prefix string
	kind   Kind
}{
	{"mdat.", KindTFMX},
	{"mod.", KindMOD},
	{"di.", KindDI},
	{"rh.", KindRH},
	{"dw.", KindDW},
	{"rjp.", KindRJP},
}

// BaseName returns the last element of name, accepting both slash styles
// since archive entries often carry DOS separators.
func BaseName(name string) string {
	return path.Base(strings.ReplaceAll(name, `\`, "/"))
}

// Detect routes a file to a decoder by its name. Amiga files carry the
// format as a prefix ("mod.title"); files from PC-side collections use an
// extension instead. Prefixes are matched case-sensitively, extensions
// are not.
func Detect(name string) Kind {
	base := BaseName(name)
	for _, pk := range prefixKinds {
		if strings.HasPrefix(base, pk.prefix) {
			return pk.kind
		}
	}
	switch strings.ToLower(path.Ext(base)) {
	case ".s3m":
		return KindST3
	case ".mod":
		return KindMOD
	}
	return KindNone
}

// modSegmentLength is the shortest run counted as a song for a MOD file.
// Extension-named modules come from collections with many one-position
// fragments, so those need two.
func modSegmentLength(name string) int {
	if strings.HasPrefix(BaseName(name), "mod.") {
		return 1
	}
	return 2
}

// Resolver gives access to the other entries of the bundle a file was
// shipped in.
type Resolver interface {
	Entry(name string) ([]byte, bool)
	Names() []string
}

// Decode runs the decoder for kind over data. name is the file's logical
// name; r may be nil when the file was not shipped in a bundle.
func Decode(kind Kind, name string, data []byte, r Resolver) []int {
	switch kind {
	case KindTFMX:
		if r != nil {
			raw, ok := r.Entry(BaseName(name))
			if !ok {
				return nil
			}
			data = raw
		}
		return SplitTFMX(data)
	case KindMOD:
		return SplitMOD(data, modSegmentLength(name))
	case KindDI:
		return SplitDI(data)
	case KindRH:
		return SplitRH(data)
	case KindDW:
		return SplitDW(data)
	case KindRJP:
		if r != nil {
			raw, ok := entryWithPrefix(r, "rjp.")
			if !ok {
				return nil
			}
			data = raw
		}
		return SplitRJP(data)
	case KindST3:
		return SplitST3(data)
	case KindNone:
		return nil
	}
	return nil
}

func entryWithPrefix(r Resolver, prefix string) ([]byte, bool) {
	for _, name := range r.Names() {
		if strings.HasPrefix(BaseName(name), prefix) {
			return r.Entry(name)
		}
	}
	return nil, false
}
