package amiga

const (
	rowsPerPattern = 64
	lastRow        = rowsPerPattern - 1
	cellSize       = 4
	orderSlots     = 128

	sampleNameSize   = 22
	sampleHeaderSize = 30
	titleSize        = 20

	classicTagOffset = 1080
	compactTagOffset = 952
	compactTag       = "KRIS"
)

// Sequence is a normalized view of a tracker module: how many positions it
// plays, which pattern each position plays and what is in every cell.
type Sequence struct {
	Channels int
	Length   int // number of playable positions
	Restart  int // repeat position, informational only
	Orders   []byte

	// positions is the number of positions whose order entry exists, which
	// may exceed Length.
	positions int
	cell      func(pos, row, ch int) Cell
}

// Cell returns the cell played at the given position, row and channel.
// Anything outside the order table or the pattern pool is the zero Cell.
func (s *Sequence) Cell(pos, row, ch int) Cell {
	if s.cell == nil || pos < 0 || row < 0 || ch < 0 || ch >= s.Channels {
		return Cell{}
	}
	return s.cell(pos, row, ch)
}

// NewSequence builds a sequence over an interleaved pattern pool: each
// pattern is 64 rows of channels cells, row-major, the layout used by the
// classic family and by the packed-pattern transcoder.
func NewSequence(channels, length int, orders, pool []byte) *Sequence {
	return &Sequence{
		Channels:  channels,
		Length:    length,
		Orders:    orders,
		positions: len(orders),
		cell: func(pos, row, ch int) Cell {
			if pos >= len(orders) {
				return Cell{}
			}
			// Rows past the last one are not clamped: they run into the
			// next pattern exactly like the replayers did.
			off := ((int(orders[pos])*rowsPerPattern+row)*channels + ch) * cellSize
			return cellAt(pool, off)
		},
	}
}

// classicLayout maps the tag at offset 1080 to a channel count. A missing
// or unknown tag means the original 15-sample, 4-channel layout.
func classicLayout(data []byte) (samples, channels int) {
	switch tag(data, classicTagOffset, 4) {
	case "M.K.", "M!K!", "4CHN", "FLT4":
		return 31, 4
	case "6CHN":
		return 31, 6
	case "8CHN", "FLT8":
		return 31, 8
	case "28CH":
		return 31, 28
	default:
		return 15, 4
	}
}

// ClassicSequence parses a classic-tracker header. It does not validate the
// header; garbage yields a bounded but meaningless sequence.
func ClassicSequence(data []byte) *Sequence {
	samples, channels := classicLayout(data)

	p := titleSize + sampleHeaderSize*samples
	length := u8(data, p)
	restart := u8(data, p+1)
	if restart == 0x7F {
		restart = 0
	}
	p += 2

	orders := make([]byte, orderSlots)
	patterns := 0
	for i := range orders {
		orders[i] = byte(u8(data, p+i))
		patterns = max(patterns, int(orders[i]))
	}
	patterns++
	p += orderSlots
	if samples == 31 {
		p += 4
	}

	pool := window(data, p, patterns*rowsPerPattern*channels*cellSize)
	seq := NewSequence(channels, length, orders, pool)
	seq.Restart = restart
	return seq
}

// CompactSequence parses the 4-channel chip-tracker variant marked "KRIS"
// at offset 952. Its order table holds one two-byte entry (pattern,
// transpose) per channel per position, and each pattern is a single
// channel of 64 rows.
func CompactSequence(data []byte) *Sequence {
	const channels = 4

	p := sampleNameSize + sampleHeaderSize*31 + 4
	length := u8(data, p)
	restart := u8(data, p+1)
	p += 2

	orders := make([]byte, orderSlots*channels)
	patterns := 0
	for i := range orders {
		orders[i] = byte(u8(data, p))
		patterns = max(patterns, int(orders[i]))
		p += 2
	}
	patterns++
	p += 2

	pool := window(data, p, patterns*rowsPerPattern*cellSize)
	return &Sequence{
		Channels:  channels,
		Length:    length,
		Restart:   restart,
		Orders:    orders,
		positions: orderSlots,
		cell: func(pos, row, ch int) Cell {
			i := pos*channels + ch
			if i >= len(orders) {
				return Cell{}
			}
			return cellAt(pool, (int(orders[i])*rowsPerPattern+row)*cellSize)
		},
	}
}

// ModSequence picks the compact variant when its marker is present and the
// classic layout otherwise.
func ModSequence(data []byte) *Sequence {
	if tag(data, compactTagOffset, 4) == compactTag {
		return CompactSequence(data)
	}
	return ClassicSequence(data)
}

// SplitMOD returns the start positions of the subsongs of a classic or
// compact tracker module.
func SplitMOD(data []byte, minSegmentLength int) []int {
	return Scan(ModSequence(data), minSegmentLength)
}
