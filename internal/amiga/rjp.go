package amiga

import "regexp"

var rjpSignature = regexp.MustCompile(`^RJP[0-3]SMOD$`)

// SplitRJP walks the chunk container of a Richard Joseph module to its
// track section and returns one ordinal per track that references pattern
// data.
//
// The container starts with an 8-byte tag followed by length-prefixed
// chunks: sample descriptors, envelopes, tracks and pattern pointers. Each
// track is four one-byte pattern-pointer indices, one per channel.
func SplitRJP(data []byte) []int {
	if !rjpSignature.MatchString(tag(data, 0, 8)) {
		return nil
	}

	p := 8
	p += u32(data, p) + 4 // samples
	p += u32(data, p) + 4 // envelopes
	tracksAt := p
	p += u32(data, p) + 4
	pointers := u32(data, p) >> 2

	tracks := u32(data, tracksAt) >> 2
	p = tracksAt + 4

	var songs []int
	for i := 0; i < tracks && p < len(data); i++ {
		for _, idx := range window(data, p, 4) {
			if idx > 0 && int(idx) < pointers {
				songs = append(songs, len(songs))
				break
			}
		}
		p += 4
	}
	return songs
}
