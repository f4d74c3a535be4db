package state

import (
	"log"
	"time"

	"VectorBoard/internal/shape"
)

// DefaultHistoryLimit bounds the number of snapshots kept when no limit is given.
const DefaultHistoryLimit = 100

// History is a linear undo/redo log of whole-board snapshots. Pushing after
// an undo discards the entries that could have been redone.
type History struct {
	entries []Entry
	cursor  int // index of the current entry, -1 for the empty board
	floor   int // lowest cursor reachable by Undo
	limit   int
	clock   Clock
}

// NewHistory creates an empty history keeping at most limit entries.
// A limit of zero or less keeps every entry.
func NewHistory(limit int) *History {
	return &History{cursor: -1, floor: -1, limit: limit}
}

// Push records a deep copy of shapes as the new current entry.
func (h *History) Push(label string, shapes []shape.Shape) {
	h.entries = append(h.entries[:h.cursor+1], Entry{
		Label:  label,
		Shapes: shape.DeepCopyAll(shapes),
		Time:   time.Now(),
	})
	if h.limit > 0 && len(h.entries) > h.limit {
		drop := len(h.entries) - h.limit
		h.entries = append([]Entry(nil), h.entries[drop:]...)
		h.floor = 0
		log.Printf("[HISTORY] dropped %d oldest entries", drop)
	}
	h.cursor = len(h.entries) - 1
	h.clock.Tick()
}

// Undo steps back one entry and returns a copy of the board at that point.
// It returns false when there is nothing to undo.
func (h *History) Undo() ([]shape.Shape, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.cursor--
	h.clock.Tick()
	return h.current(), true
}

// Redo steps forward one entry and returns a copy of the board at that point.
// It returns false when there is nothing to redo.
func (h *History) Redo() ([]shape.Shape, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.cursor++
	h.clock.Tick()
	return h.current(), true
}

func (h *History) current() []shape.Shape {
	if h.cursor < 0 {
		return []shape.Shape{}
	}
	return shape.DeepCopyAll(h.entries[h.cursor].Shapes)
}

// CanUndo reports whether Undo would change the board.
func (h *History) CanUndo() bool { return h.cursor > h.floor }

// CanRedo reports whether Redo would change the board.
func (h *History) CanRedo() bool { return h.cursor < len(h.entries)-1 }

// Len returns the number of entries, including those available to Redo.
func (h *History) Len() int { return len(h.entries) }

// Cursor returns the index of the current entry, or -1 before the first one.
func (h *History) Cursor() int { return h.cursor }

// Current returns the current entry. Its shapes are shared with the history
// and must not be modified.
func (h *History) Current() (Entry, bool) {
	if h.cursor < 0 {
		return Entry{}, false
	}
	return h.entries[h.cursor], true
}

// Revision returns a counter that advances on every push, undo and redo.
func (h *History) Revision() uint64 { return h.clock.Now() }
