package amiga

const (
	tfmxSlots      = 32
	tfmxStartTable = 128 // word offset of the song start table
	tfmxEndTable   = tfmxStartTable + tfmxSlots
	tfmxUnused     = 511
)

var tfmxSignatures = []string{
	"TFMX-SONG ",
	"tfmxsong\x00\x00",
	"TFMX \x00\x00\x01\x00\x00",
}

// IsTFMX reports whether data starts with one of the known song-data
// signatures.
func IsTFMX(data []byte) bool {
	head := tag(data, 0, 10)
	for _, sig := range tfmxSignatures {
		if head == sig {
			return true
		}
	}
	return false
}

// SplitTFMX reads the 32-slot song table of a TFMX song-data file. A slot
// is a song unless it is empty (0,0), unused (511,511) or repeats the
// (start,end) pair of an earlier slot.
func SplitTFMX(data []byte) []int {
	if !IsTFMX(data) {
		return nil
	}

	type songRange struct{ start, end int }
	seen := make(map[songRange]bool, tfmxSlots)
	var songs []int
	for i := range tfmxSlots {
		r := songRange{
			start: word(data, tfmxStartTable+i),
			end:   word(data, tfmxEndTable+i),
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		if (r.start == 0 && r.end == 0) || (r.start == tfmxUnused && r.end == tfmxUnused) {
			continue
		}
		songs = append(songs, i)
	}
	return songs
}

// word reads the i-th 16-bit word of data in the file's big-endian order.
func word(data []byte, i int) int {
	return u16(data, 2*i)
}
