package reorderable

// SerializedArray is a host-owned array property: its elements live in the
// host's object model and every structural edit goes through it so the host
// can record undo and mark the owning object dirty.
type SerializedArray interface {
	Len() int
	InsertElement(index int) error
	DuplicateElement(index int) error
	DeleteElement(index int) error
	MoveElement(src, dest int) error
	ClearElements() error
	ElementHeight(index int) float32
	DrawElement(ctx *Context, rect Rect, index int)
}

// UndoRecorder is implemented by arrays that keep an undo history.
// RecordUndo snapshots the array under name before a mutation.
type UndoRecorder interface {
	RecordUndo(name string)
}

// Undo group names recorded before each structural edit.
const (
	UndoAddElement       = "Add Element"
	UndoInsertElement    = "Insert Element"
	UndoDuplicateElement = "Duplicate Element"
	UndoRemoveElement    = "Remove Element"
	UndoMoveElement      = "Move Element"
	UndoClearElements    = "Clear Elements"
)

// PropertyAdaptor adapts a SerializedArray to ListAdaptor and records an
// undo group before every structural edit.
type PropertyAdaptor struct {
	array SerializedArray

	// FixedHeight, when positive, overrides the array's element heights.
	FixedHeight float32
}

// NewPropertyAdaptor creates an adaptor over array.
func NewPropertyAdaptor(array SerializedArray) *PropertyAdaptor {
	if array == nil {
		panic("reorderable: NewPropertyAdaptor with nil array")
	}
	return &PropertyAdaptor{array: array}
}

// Array returns the wrapped array.
func (a *PropertyAdaptor) Array() SerializedArray {
	return a.array
}

func (a *PropertyAdaptor) record(name string) {
	if r, ok := a.array.(UndoRecorder); ok {
		r.RecordUndo(name)
	}
}

func (a *PropertyAdaptor) Count() int {
	return a.array.Len()
}

func (a *PropertyAdaptor) ItemHeight(index int) float32 {
	if a.FixedHeight > 0 {
		return a.FixedHeight
	}
	return a.array.ElementHeight(index)
}

func (a *PropertyAdaptor) DrawItem(ctx *Context, rect Rect, index int) {
	a.array.DrawElement(ctx, rect, index)
}

func (a *PropertyAdaptor) AddNew() error {
	n := a.array.Len()
	a.record(UndoAddElement)
	return a.array.InsertElement(n)
}

func (a *PropertyAdaptor) Insert(index int) error {
	if err := checkInsertIndex("insert", index, a.array.Len()); err != nil {
		return err
	}
	a.record(UndoInsertElement)
	return a.array.InsertElement(index)
}

func (a *PropertyAdaptor) Duplicate(index int) error {
	if err := checkIndex("duplicate", index, a.array.Len()); err != nil {
		return err
	}
	a.record(UndoDuplicateElement)
	return a.array.DuplicateElement(index)
}

func (a *PropertyAdaptor) Remove(index int) error {
	if err := checkIndex("remove", index, a.array.Len()); err != nil {
		return err
	}
	a.record(UndoRemoveElement)
	return a.array.DeleteElement(index)
}

func (a *PropertyAdaptor) Move(src, dest int) error {
	n := a.array.Len()
	if err := checkIndex("move source", src, n); err != nil {
		return err
	}
	if err := checkIndex("move destination", dest, n); err != nil {
		return err
	}
	if src == dest {
		return nil
	}
	a.record(UndoMoveElement)
	return a.array.MoveElement(src, dest)
}

func (a *PropertyAdaptor) Clear() error {
	if a.array.Len() == 0 {
		return nil
	}
	a.record(UndoClearElements)
	return a.array.ClearElements()
}
