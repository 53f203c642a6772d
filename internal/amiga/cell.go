package amiga

// Effect commands that redirect playback.
const (
	effectPositionJump = 0xB
	effectPatternBreak = 0xD
)

// Cell is one channel's event on one pattern row, in the 4-byte layout
// shared by every tracker-family format.
type Cell [4]byte

// Period returns the note period.
func (c Cell) Period() int {
	return int(c[0]&0x0F)<<8 | int(c[1])
}

// Sample returns the sample number (high bits in byte 0, low bits in byte 2).
func (c Cell) Sample() int {
	return int(c[0]&0xF0) | int(c[2]>>4)
}

// Effect returns the effect command, 0-15.
func (c Cell) Effect() byte {
	return c[2] & 0x0F
}

// Param returns the effect parameter.
func (c Cell) Param() byte {
	return c[3]
}

// cellAt copies the cell at off from pool. Bytes past the end of the pool
// read as zero.
func cellAt(pool []byte, off int) Cell {
	var c Cell
	if off < 0 || off >= len(pool) {
		return c
	}
	copy(c[:], pool[off:])
	return c
}

// decodeBreakRow turns a pattern break parameter into a row number. The
// parameter holds two decimal digits, one per nibble; nibbles above 9 are
// not rejected.
func decodeBreakRow(param byte) int {
	return int(param>>4)*10 + int(param&0x0F)
}
