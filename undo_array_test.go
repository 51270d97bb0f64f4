package reorderable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoArrayElements(t *testing.T) {
	a := NewUndoArray([]string{"A", "B", "C"}, nil)
	a.NewItem = func() string { return "N" }

	require.NoError(t, a.InsertElement(1))
	require.NoError(t, a.DuplicateElement(0))
	assert.Equal(t, []string{"A", "A", "N", "B", "C"}, a.Items())

	require.NoError(t, a.MoveElement(4, 0))
	require.NoError(t, a.DeleteElement(2))
	assert.Equal(t, []string{"C", "A", "N", "B"}, a.Items())

	assert.ErrorIs(t, a.InsertElement(5), ErrIndexOutOfRange)
	assert.ErrorIs(t, a.DeleteElement(4), ErrIndexOutOfRange)
	assert.ErrorIs(t, a.MoveElement(0, 4), ErrIndexOutOfRange)

	require.NoError(t, a.ClearElements())
	assert.Zero(t, a.Len())
}

func TestUndoArrayCopiesInput(t *testing.T) {
	src := []string{"A", "B"}
	a := NewUndoArray(src, nil)
	src[0] = "Z"
	assert.Equal(t, "A", a.Items()[0])
}

func TestUndoRedo(t *testing.T) {
	a := NewUndoArray([]string{"A", "B"}, nil)
	p := NewPropertyAdaptor(a)

	require.NoError(t, p.AddNew())
	require.NoError(t, p.Move(0, 2))
	assert.Equal(t, []string{"B", "", "A"}, a.Items())

	name, err := a.Undo()
	require.NoError(t, err)
	assert.Equal(t, UndoMoveElement, name)
	assert.Equal(t, []string{"A", "B", ""}, a.Items())
	assert.True(t, a.CanRedo())

	name, err = a.Redo()
	require.NoError(t, err)
	assert.Equal(t, UndoMoveElement, name)
	assert.Equal(t, []string{"B", "", "A"}, a.Items())

	_, _ = a.Undo()
	_, _ = a.Undo()
	assert.Equal(t, []string{"A", "B"}, a.Items())
	assert.False(t, a.CanUndo())

	_, err = a.Undo()
	assert.ErrorIs(t, err, ErrNothingToUndo)
}

func TestUndoRecordClearsRedo(t *testing.T) {
	a := NewUndoArray([]string{"A"}, nil)
	p := NewPropertyAdaptor(a)
	require.NoError(t, p.AddNew())
	_, err := a.Undo()
	require.NoError(t, err)
	require.True(t, a.CanRedo())

	require.NoError(t, p.Duplicate(0))
	assert.False(t, a.CanRedo())
	_, err = a.Redo()
	assert.ErrorIs(t, err, ErrNothingToRedo)
}

func TestUndoHistoryBounded(t *testing.T) {
	a := NewUndoArray[int](nil, nil)
	p := NewPropertyAdaptor(a)
	for range maxUndoSize + 10 {
		require.NoError(t, p.AddNew())
	}

	undone := 0
	for a.CanUndo() {
		_, err := a.Undo()
		require.NoError(t, err)
		undone++
	}
	assert.Equal(t, maxUndoSize, undone)
	assert.Equal(t, 10, a.Len(), "the oldest groups are dropped")
}

func TestUndoSnapshotsUseClone(t *testing.T) {
	type row struct{ tags []string }
	a := NewUndoArray([]*row{{tags: []string{"a"}}}, nil)
	a.Clone = func(r *row) *row { return &row{tags: append([]string(nil), r.tags...)} }

	a.RecordUndo("edit")
	a.Items()[0].tags[0] = "b"

	_, err := a.Undo()
	require.NoError(t, err)
	assert.Equal(t, "a", a.Items()[0].tags[0])
}

func TestUndoArrayRecordsEdits(t *testing.T) {
	h := newHarness(t)
	a := NewUndoArray([]string{"A", "B"}, TextFieldRenderer)
	p := NewPropertyAdaptor(a)

	h.list(p)

	h.move(400, rowMid(1)).press(MouseButtonLeft)
	h.list(p)
	h.release(MouseButtonLeft)
	h.ctx.Input.AddInputChar('!')
	res := h.list(p)

	require.True(t, res.Changed)
	assert.Equal(t, 1, res.ChangedIndex)
	assert.Equal(t, "B!", a.Items()[1])

	name, err := a.Undo()
	require.NoError(t, err)
	assert.Equal(t, UndoEditElement, name)
	assert.Equal(t, []string{"A", "B"}, a.Items())
}
