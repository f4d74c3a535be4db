package state

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VectorBoard/internal/shape"
)

func rect(x1, y1, x2, y2 float32) *shape.Primitive {
	return shape.NewRectangle(fyne.NewPos(x1, y1), fyne.NewPos(x2, y2))
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory(DefaultHistoryLimit)
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Equal(t, -1, h.Cursor())

	a := rect(0, 0, 10, 10)
	h.Push("draw rectangle", []shape.Shape{a})
	b := rect(20, 20, 30, 30)
	h.Push("draw rectangle", []shape.Shape{a, b})
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 1, h.Cursor())

	board, ok := h.Undo()
	require.True(t, ok)
	require.Len(t, board, 1)
	assert.Equal(t, a.Points(), board[0].Points())
	assert.NotSame(t, a, board[0], "undo hands out copies")

	board, ok = h.Undo()
	require.True(t, ok)
	assert.Empty(t, board)
	assert.NotNil(t, board)

	_, ok = h.Undo()
	assert.False(t, ok)

	board, ok = h.Redo()
	require.True(t, ok)
	assert.Len(t, board, 1)
	board, ok = h.Redo()
	require.True(t, ok)
	assert.Len(t, board, 2)
	_, ok = h.Redo()
	assert.False(t, ok)
}

func TestHistoryPushAfterUndoDropsRedo(t *testing.T) {
	h := NewHistory(0)
	h.Push("one", []shape.Shape{rect(0, 0, 1, 1)})
	h.Push("two", []shape.Shape{rect(0, 0, 2, 2)})
	h.Push("three", []shape.Shape{rect(0, 0, 3, 3)})

	h.Undo()
	h.Undo()
	h.Push("four", []shape.Shape{rect(0, 0, 4, 4)})

	assert.Equal(t, 2, h.Len())
	assert.False(t, h.CanRedo())
	e, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, "four", e.Label)
	assert.Equal(t, 1, e.Count())
}

func TestHistorySnapshotsAreIsolated(t *testing.T) {
	h := NewHistory(0)
	a := rect(0, 0, 10, 10)
	h.Push("draw", []shape.Shape{a})
	a.Translate(5, 5)

	e, _ := h.Current()
	assert.Equal(t, fyne.NewPos(0, 0), e.Shapes[0].Points()[0])

	h.Push("move", []shape.Shape{a})
	board, _ := h.Undo()
	board[0].Translate(100, 100)
	again, _ := h.Redo()
	undone, _ := h.Undo()
	assert.Equal(t, fyne.NewPos(5, 5), again[0].Points()[0])
	assert.Equal(t, fyne.NewPos(0, 0), undone[0].Points()[0])
}

func TestHistoryLimit(t *testing.T) {
	h := NewHistory(3)
	for i := 1; i <= 5; i++ {
		shapes := make([]shape.Shape, i)
		for j := range shapes {
			shapes[j] = rect(0, 0, 1, 1)
		}
		h.Push("draw", shapes)
	}
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 2, h.Cursor())

	board, ok := h.Undo()
	require.True(t, ok)
	assert.Len(t, board, 4)
	board, ok = h.Undo()
	require.True(t, ok)
	assert.Len(t, board, 3)

	// the empty board was trimmed away with the oldest entries
	_, ok = h.Undo()
	assert.False(t, ok)
}

func TestHistoryRevision(t *testing.T) {
	h := NewHistory(0)
	assert.Zero(t, h.Revision())
	h.Push("draw", nil)
	h.Undo()
	h.Redo()
	assert.Equal(t, uint64(3), h.Revision())

	h.Redo()
	assert.Equal(t, uint64(3), h.Revision(), "a refused redo does not tick")
}
