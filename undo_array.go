package reorderable

import (
	"errors"
	"fmt"
)

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// maxUndoSize bounds the history of an UndoArray.
const maxUndoSize = 50

// UndoEditElement names the undo group recorded when an element's own
// content is edited in place.
const UndoEditElement = "Edit Element"

type undoEntry[T any] struct {
	name  string
	items []T
}

// UndoArray is an in-memory SerializedArray with snapshot undo and redo.
// It plays the role of a host property array for applications that have no
// object model of their own.
type UndoArray[T any] struct {
	items []T

	// Render draws and edits one element; nil draws a label.
	Render ItemRenderer[T]
	// NewItem creates inserted elements; nil uses the zero value.
	NewItem func() T
	// Clone deep-copies an element for Duplicate and for snapshots.
	Clone func(T) T
	// Height is the content height of every element.
	Height float32

	undo []undoEntry[T]
	redo []undoEntry[T]
}

// NewUndoArray creates an array holding a copy of items.
func NewUndoArray[T any](items []T, render ItemRenderer[T]) *UndoArray[T] {
	a := &UndoArray[T]{
		Render: render,
		Height: DefaultListStyle().ItemHeight,
	}
	a.items = a.snapshot(items)
	return a
}

// Items returns the current elements. The slice must not be modified.
func (a *UndoArray[T]) Items() []T {
	return a.items
}

func (a *UndoArray[T]) clone(v T) T {
	if a.Clone != nil {
		return a.Clone(v)
	}
	return v
}

func (a *UndoArray[T]) snapshot(items []T) []T {
	out := make([]T, len(items))
	for i, v := range items {
		out[i] = a.clone(v)
	}
	return out
}

// RecordUndo pushes a snapshot of the current elements under name and
// clears the redo history.
func (a *UndoArray[T]) RecordUndo(name string) {
	a.undo = append(a.undo, undoEntry[T]{name: name, items: a.snapshot(a.items)})
	if len(a.undo) > maxUndoSize {
		a.undo = a.undo[len(a.undo)-maxUndoSize:]
	}
	a.redo = a.redo[:0]
}

// CanUndo returns true if undo is available.
func (a *UndoArray[T]) CanUndo() bool { return len(a.undo) > 0 }

// CanRedo returns true if redo is available.
func (a *UndoArray[T]) CanRedo() bool { return len(a.redo) > 0 }

// Undo restores the state before the last recorded group and returns its name.
func (a *UndoArray[T]) Undo() (string, error) {
	n := len(a.undo)
	if n == 0 {
		return "", ErrNothingToUndo
	}
	e := a.undo[n-1]
	a.undo = a.undo[:n-1]
	a.redo = append(a.redo, undoEntry[T]{name: e.name, items: a.items})
	a.items = e.items
	return e.name, nil
}

// Redo reapplies the last undone group and returns its name.
func (a *UndoArray[T]) Redo() (string, error) {
	n := len(a.redo)
	if n == 0 {
		return "", ErrNothingToRedo
	}
	e := a.redo[n-1]
	a.redo = a.redo[:n-1]
	a.undo = append(a.undo, undoEntry[T]{name: e.name, items: a.items})
	a.items = e.items
	return e.name, nil
}

func (a *UndoArray[T]) newItem() T {
	if a.NewItem != nil {
		return a.NewItem()
	}
	var zero T
	return zero
}

func (a *UndoArray[T]) Len() int { return len(a.items) }

func (a *UndoArray[T]) InsertElement(index int) error {
	if err := checkInsertIndex("insert", index, len(a.items)); err != nil {
		return err
	}
	a.items = append(a.items, a.newItem())
	moveElement(a.items, len(a.items)-1, index)
	return nil
}

func (a *UndoArray[T]) DuplicateElement(index int) error {
	if err := checkIndex("duplicate", index, len(a.items)); err != nil {
		return err
	}
	a.items = append(a.items, a.clone(a.items[index]))
	moveElement(a.items, len(a.items)-1, index+1)
	return nil
}

func (a *UndoArray[T]) DeleteElement(index int) error {
	if err := checkIndex("delete", index, len(a.items)); err != nil {
		return err
	}
	moveElement(a.items, index, len(a.items)-1)
	var zero T
	a.items[len(a.items)-1] = zero
	a.items = a.items[:len(a.items)-1]
	return nil
}

func (a *UndoArray[T]) MoveElement(src, dest int) error {
	if err := checkIndex("move source", src, len(a.items)); err != nil {
		return err
	}
	if err := checkIndex("move destination", dest, len(a.items)); err != nil {
		return err
	}
	moveElement(a.items, src, dest)
	return nil
}

func (a *UndoArray[T]) ClearElements() error {
	a.items = nil
	return nil
}

func (a *UndoArray[T]) ElementHeight(int) float32 {
	return a.Height
}

// DrawElement draws element index and records an edit undo group when its
// widgets report a change.
func (a *UndoArray[T]) DrawElement(ctx *Context, rect Rect, index int) {
	if index < 0 || index >= len(a.items) {
		return
	}
	if a.Render == nil {
		ctx.LabelAt(rect, fmt.Sprint(a.items[index]))
		return
	}
	before := a.clone(a.items[index])
	ctx.BeginChangeCheck()
	edited := a.Render(ctx, rect, a.items[index])
	if ctx.EndChangeCheck() {
		a.items[index] = before
		a.RecordUndo(UndoEditElement)
	}
	a.items[index] = edited
}
