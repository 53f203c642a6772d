package amiga

// Header fields are read from untrusted archives, so every reader treats
// bytes outside the buffer as zero instead of panicking.

func u8(b []byte, i int) int {
	if i < 0 || i >= len(b) {
		return 0
	}
	return int(b[i])
}

// u16 reads a big-endian word.
func u16(b []byte, i int) int {
	return u8(b, i)<<8 | u8(b, i+1)
}

// s16 reads a big-endian signed word.
func s16(b []byte, i int) int {
	return int(int16(uint16(u16(b, i)))) //nolint:gosec // reinterpretation is the point
}

// u32 reads a big-endian long as an unsigned value.
func u32(b []byte, i int) int {
	return u8(b, i)<<24 | u8(b, i+1)<<16 | u8(b, i+2)<<8 | u8(b, i+3)
}

// s32 reads a big-endian long as a signed value.
func s32(b []byte, i int) int {
	return int(int32(uint32(u32(b, i)))) //nolint:gosec // reinterpretation is the point
}

func u16le(b []byte, i int) int {
	return u8(b, i) | u8(b, i+1)<<8
}

// tag returns the n bytes at off as a string, or "" when they don't fit.
func tag(b []byte, off, n int) string {
	if off < 0 || n < 0 || off+n > len(b) {
		return ""
	}
	return string(b[off : off+n])
}

// window returns b[off:off+n] clamped to the buffer.
func window(b []byte, off, n int) []byte {
	if off < 0 || off >= len(b) || n <= 0 {
		return nil
	}
	end := off + n
	if end > len(b) || end < off {
		end = len(b)
	}
	return b[off:end]
}
