package state

import (
	"time"

	"VectorBoard/internal/shape"
)

// Entry is one snapshot in the history.
type Entry struct {
	Label  string
	Shapes []shape.Shape
	Time   time.Time
}

// Count returns the number of top-level shapes in the snapshot.
func (e Entry) Count() int {
	return len(e.Shapes)
}
