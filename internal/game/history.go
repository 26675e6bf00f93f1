package game

// historyCap bounds the undo stack; the oldest snapshot is evicted once
// the cap is reached.
const historyCap = 200

// snapshot is a full deep copy of the mutable session fields taken before
// every committed edit. The grid is 81 cells, so copying beats a diff log.
// The start-time anchor is deliberately not part of a snapshot: elapsed
// time keeps running across undos.
type snapshot struct {
	cells [9][9]Cell
	moves int
}

type history struct {
	stack []snapshot
}

func (h *history) push(s snapshot) {
	if len(h.stack) >= historyCap {
		h.stack = h.stack[1:]
	}
	h.stack = append(h.stack, s)
}

// pop removes and returns the most recent snapshot.
func (h *history) pop() (snapshot, bool) {
	if len(h.stack) == 0 {
		return snapshot{}, false
	}
	s := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	return s, true
}

func (h *history) len() int { return len(h.stack) }

func (h *history) reset() { h.stack = nil }
