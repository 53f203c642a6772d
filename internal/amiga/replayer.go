package amiga

// Instruction words that precede a pointer to the song table in the
// compiled replayers.
const (
	opMulu      = 0xC0FC // mulu.w #imm,d0
	opLeaA3     = 0x41EB // lea d16(a3),a0
	opLeaPC     = 0x41FA // lea d16(pc),a0
	opLeaPCA3   = 0x47FA // lea d16(pc),a3
	opMoveB     = 0x1230 // move.b d8(a0,dx),d1
	opMovem     = 0x48E7 // movem.l regs,-(sp)
	opBsr       = 0x6100 // bsr.w d16
	opRts       = 0x4E75
	codeScanEnd = 1024
	rhScanStart = 44

	// maxSongRecords bounds the song table walk. The table length isn't
	// stored anywhere, and on bad input the stop rule alone may not fire
	// for a long time.
	maxSongRecords = 256
)

// songTable describes a song table found inside replayer code. Each record
// is a 2-byte header followed by four pointer fields; any field pointing
// below the cursor marks the end of the table, because the table sits
// directly in front of the data it points to.
type songTable struct {
	offset     int
	base       int
	fieldWidth int
	recordSize int
	minimum    int
}

func (t songTable) field(data []byte, p int) int {
	if t.fieldWidth == 4 {
		return t.base + s32(data, p)
	}
	return t.base + u16(data, p)
}

// walk returns one ordinal per record.
func (t songTable) walk(data []byte) []int {
	var songs []int
	p := t.offset
	lowest := t.minimum
	for len(songs) < maxSongRecords && p < len(data) {
		p += 2
		for range 4 {
			lowest = min(lowest, t.field(data, p))
			p += t.fieldWidth
		}
		songs = append(songs, len(songs))
		if lowest-p < t.recordSize {
			break
		}
	}
	return songs
}

// SplitRH locates the song table of a Rob Hubbard replayer and returns one
// ordinal per song.
func SplitRH(data []byte) []int {
	if len(data) < codeScanEnd {
		return nil
	}
	table := 0
	for p := rhScanStart; p < codeScanEnd; p++ {
		if u16(data, p) == opMulu && u16(data, p+4) == opLeaA3 {
			table = u16(data, p+6)
			p += 8
		}
	}
	if table == 0 {
		return nil
	}
	return songTable{
		offset:     table,
		fieldWidth: 4,
		recordSize: 18,
		minimum:    0x10000,
	}.walk(data)
}

// SplitDW locates the song table of a David Whittaker replayer and returns
// one ordinal per song. Pointers in the table are relative to the a3 base
// loaded before it, when there is one.
func SplitDW(data []byte) []int {
	p := 0
	if u16(data, 0) == opMovem {
		if u16(data, 4) != opBsr {
			return nil
		}
		p = 6 + u16(data, 6)
	}

	table, base := 0, 0
	for ; p < codeScanEnd; p++ {
		if u16(data, p) == opLeaPCA3 {
			base = p + 2 + s16(data, p+2)
			p += 4
		}
		if u16(data, p) == opMulu && u16(data, p+4) == opLeaPC {
			table = p + 6 + u16(data, p+6)
			p += 8
		}
		if u16(data, p) == opMoveB && u16(data, p-4) == opLeaPC {
			table = p - 2 + u16(data, p-2)
			p += 2
		}
		if u16(data, p) == opRts {
			break
		}
	}
	if table == 0 {
		return nil
	}
	return songTable{
		offset:     table,
		base:       base,
		fieldWidth: 2,
		recordSize: 10,
		minimum:    0x7FFFFFFF,
	}.walk(data)
}
