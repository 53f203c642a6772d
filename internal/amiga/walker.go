package amiga

// playState is the walker's position within one run.
type playState struct {
	pos    int
	row    int
	jump   bool // arrived here through a jump, break or position change
	played int  // positions entered during this run
	done   bool
}

// visitedSet records every position entered during one Scan. It only
// grows, so each run eventually stops at an already-visited position.
type visitedSet []bool

func (v visitedSet) has(pos int) bool {
	return pos >= 0 && pos < len(v) && v[pos]
}

func (v *visitedSet) mark(pos int) {
	if pos < 0 {
		return
	}
	for pos >= len(*v) {
		*v = append(*v, false)
	}
	(*v)[pos] = true
}

// firstUnvisited returns the lowest position below n not yet visited, or -1.
func (v visitedSet) firstUnvisited(n int) int {
	for pos := range n {
		if !v.has(pos) {
			return pos
		}
	}
	return -1
}

// Scan splits the order table of seq into independently reachable songs
// and returns the position each one starts at. The lowest position not
// reached by any earlier run starts the next run; a run counts as a song
// only if it entered at least minSegmentLength positions.
func Scan(seq *Sequence, minSegmentLength int) []int {
	if seq == nil || seq.Length <= 0 {
		return nil
	}
	minSegmentLength = max(minSegmentLength, 1)

	visited := make(visitedSet, max(seq.Length, seq.positions)+1)
	var songs []int
	for {
		start := visited.firstUnvisited(seq.Length)
		if start < 0 {
			break
		}
		state := playState{pos: start}
		for !state.done {
			state = advance(state, seq, &visited)
		}
		if state.played >= minSegmentLength {
			songs = append(songs, start)
		}
	}
	return songs
}

// advance plays one row and returns the state after it.
func advance(state playState, seq *Sequence, visited *visitedSet) playState {
	if state.jump && visited.has(state.pos) {
		return playState{done: true, played: state.played}
	}
	visited.mark(state.pos)

	for ch := range seq.Channels {
		cell := seq.Cell(state.pos, state.row, ch)
		switch cell.Effect() {
		case effectPositionJump:
			target := int(cell.Param())
			if target >= seq.Length {
				return playState{done: true, played: state.played + 1}
			}
			return playState{pos: target, jump: true, played: state.played + 1}
		case effectPatternBreak:
			return playState{
				pos:    state.pos + 1,
				row:    decodeBreakRow(cell.Param()),
				jump:   true,
				played: state.played + 1,
			}
		}
	}

	if state.row < lastRow {
		return playState{pos: state.pos, row: state.row + 1, played: state.played}
	}
	if state.pos < seq.Length-1 {
		return playState{pos: state.pos + 1, jump: true, played: state.played + 1}
	}
	return playState{done: true, played: state.played + 1}
}
