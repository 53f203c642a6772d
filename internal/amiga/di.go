package amiga

const (
	diHeaderSize    = 14
	diSampleSize    = 8
	diEndOfList     = 0xFF
	diEmptyCell     = 0xFF
	diMinSegment    = 2
	patternPoolSize = rowsPerPattern * 4 * cellSize
)

// SplitDI unpacks a packed-pattern module into a 4-channel sequence and
// scans it. Runs shorter than two positions are ignored, since the packed
// format often leaves one-row fragments behind.
func SplitDI(data []byte) []int {
	seq := unpackDI(data)
	if seq == nil {
		return nil
	}
	return Scan(seq, diMinSegment)
}

func unpackDI(data []byte) *Sequence {
	if len(data) < diHeaderSize || data[0] != 0 {
		return nil
	}
	samples := int(data[1])
	if samples == 0 || samples > 31 {
		return nil
	}
	tracksPtr := u32(data, 2)
	patternsPtr := u32(data, 6)
	samplesPtr := u32(data, 10)
	if tracksPtr >= patternsPtr || patternsPtr >= samplesPtr || samplesPtr >= len(data) {
		return nil
	}
	if data[patternsPtr-1] != diEndOfList {
		return nil
	}

	var tracks []byte
	for p := tracksPtr; p < len(data) && data[p] != diEndOfList; p++ {
		tracks = append(tracks, data[p])
	}
	if len(tracks) == 0 {
		return nil
	}
	patterns := 0
	for _, t := range tracks {
		patterns = max(patterns, int(t))
	}
	patterns++

	// ends[i] is where the packed data of pattern i stops.
	ends := make([]int, patterns)
	table := diHeaderSize + samples*diSampleSize
	for i := 1; i < patterns; i++ {
		ends[i-1] = u16(data, table+2*i)
	}
	ends[patterns-1] = samplesPtr

	pool := make([]byte, patterns*patternPoolSize)
	p := patternsPtr
	for i, limit := range ends {
		q := i * patternPoolSize
		for {
			p, q = unpackCell(data, p, pool, q)
			if p >= limit {
				break
			}
		}
	}

	orders := make([]byte, orderSlots)
	copy(orders, tracks)
	return NewSequence(4, len(tracks)&0xFF, orders, pool)
}

// unpackCell expands one packed record at data[p] into a 4-byte cell at
// pool[q] and returns the advanced cursors. A 0xFF byte is an empty cell;
// otherwise two bytes carry the sample and effect and, when the top bit of
// the first is set, a third byte carries the effect parameter.
func unpackCell(data []byte, p int, pool []byte, q int) (int, int) {
	b0 := u8(data, p)
	p++
	if b0 == diEmptyCell {
		return p, q + cellSize
	}
	b1 := u8(data, p)
	p++
	sample := byte(b0>>2) & 0x1F

	var param byte
	if b0&0x80 != 0 {
		param = byte(u8(data, p))
		p++
	}
	if q >= 0 && q+cellSize <= len(pool) {
		pool[q] = sample & 0xF0
		pool[q+1] = 0
		pool[q+2] = (sample<<4)&0xF0 | byte(b1)&0x0F
		pool[q+3] = param
	}
	return p, q + cellSize
}
