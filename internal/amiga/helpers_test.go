package amiga

import "encoding/binary"

// modFile builds a classic tracker image. An empty tag gives the 15-sample
// layout.
type modFile struct {
	tag      string
	channels int
	orders   []byte
	length   int
	cells    map[[3]int]Cell // pattern, row, channel
}

func newMOD(tag string, channels int, orders ...byte) *modFile {
	return &modFile{
		tag:      tag,
		channels: channels,
		orders:   orders,
		length:   len(orders),
		cells:    make(map[[3]int]Cell),
	}
}

func (m *modFile) effect(pattern, row, ch int, effect, param byte) *modFile {
	m.cells[[3]int{pattern, row, ch}] = Cell{0, 0, effect, param}
	return m
}

func (m *modFile) bytes() []byte {
	samples := 31
	if m.tag == "" {
		samples = 15
	}
	patterns := 0
	for _, o := range m.orders {
		patterns = max(patterns, int(o))
	}
	for k := range m.cells {
		patterns = max(patterns, k[0])
	}
	patterns++

	head := titleSize + sampleHeaderSize*samples
	poolAt := head + 2 + orderSlots
	if m.tag != "" {
		poolAt += 4
	}
	size := poolAt + patterns*rowsPerPattern*m.channels*cellSize
	data := make([]byte, size)
	data[head] = byte(m.length)
	data[head+1] = 0x7F
	copy(data[head+2:], m.orders)
	if m.tag != "" {
		copy(data[classicTagOffset:], m.tag)
	}
	for k, c := range m.cells {
		off := poolAt + ((k[0]*rowsPerPattern+k[1])*m.channels+k[2])*cellSize
		copy(data[off:], c[:])
	}
	return data
}

func (m *modFile) sequence() *Sequence {
	return ClassicSequence(m.bytes())
}

// diFile builds a packed-pattern image with one sample.
func diFile(tracks []byte, patterns ...[]byte) []byte {
	const samples = 1
	table := diHeaderSize + samples*diSampleSize
	tracksPtr := table + 2*len(patterns)
	patternsPtr := tracksPtr + len(tracks) + 1

	data := make([]byte, patternsPtr)
	data[0] = 0
	data[1] = samples
	off := patternsPtr
	for i, p := range patterns {
		binary.BigEndian.PutUint16(data[table+2*i:], uint16(off))
		off += len(p)
	}
	copy(data[tracksPtr:], tracks)
	data[patternsPtr-1] = diEndOfList
	for _, p := range patterns {
		data = append(data, p...)
	}
	samplesPtr := len(data)
	data = append(data, 0, 0)

	binary.BigEndian.PutUint32(data[2:], uint32(tracksPtr))
	binary.BigEndian.PutUint32(data[6:], uint32(patternsPtr))
	binary.BigEndian.PutUint32(data[10:], uint32(samplesPtr))
	return data
}

// packedPattern returns 256 empty packed cells with the given cell index
// replaced by an effect record.
func packedPattern(effects map[int][2]byte) []byte {
	var out []byte
	for i := range rowsPerPattern * 4 {
		e, ok := effects[i]
		if !ok {
			out = append(out, diEmptyCell)
			continue
		}
		out = append(out, 0x80|1<<2, e[0], e[1])
	}
	return out
}

func putWord(data []byte, off, v int) {
	binary.BigEndian.PutUint16(data[off:], uint16(v))
}

func putLong(data []byte, off, v int) {
	binary.BigEndian.PutUint32(data[off:], uint32(v))
}
