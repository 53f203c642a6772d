package amiga

const (
	st3TagOffset    = 44
	st3Tag          = "SCRM"
	st3OrdersCount  = 32
	st3OrdersOffset = 96
	st3Marker       = 254 // 254 skips, 255 ends the song
)

// SplitST3 returns the order positions songs start at in a Scream Tracker 3
// module. Orders of 254 and above are markers; a song starts after a run of
// markers when a playable order follows it, and the first one at position 0.
func SplitST3(data []byte) []int {
	if tag(data, st3TagOffset, 4) != st3Tag {
		return nil
	}
	orders := window(data, st3OrdersOffset, u16le(data, st3OrdersCount))

	songs := []int{0}
	for i := 0; i+1 < len(orders); i++ {
		if orders[i] >= st3Marker && orders[i+1] < st3Marker {
			songs = append(songs, i+1)
		}
	}
	return songs
}
