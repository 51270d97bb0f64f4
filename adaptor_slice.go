package reorderable

import (
	"fmt"
	"slices"
)

// ItemRenderer draws item inside rect and returns the possibly edited item.
type ItemRenderer[T any] func(ctx *Context, rect Rect, item T) T

// SliceAdaptor adapts a Go slice to ListAdaptor. The slice is held by
// pointer so structural edits are visible to the caller.
//
//	names := []string{"a", "b"}
//	adaptor := reorderable.NewSliceAdaptor(&names, reorderable.TextFieldRenderer)
type SliceAdaptor[T any] struct {
	items  *[]T
	render ItemRenderer[T]

	// NewItem creates items for AddNew and Insert; nil uses the zero value.
	NewItem func() T
	// Clone copies an item for Duplicate; nil copies by assignment.
	Clone func(T) T
	// Height returns an item's content height; nil uses FixedHeight.
	Height func(item T) float32
	// FixedHeight is the content height of every item when Height is nil.
	FixedHeight float32
}

// NewSliceAdaptor creates an adaptor over items. A nil render draws each
// item with fmt.Sprint as a read-only label.
func NewSliceAdaptor[T any](items *[]T, render ItemRenderer[T]) *SliceAdaptor[T] {
	if items == nil {
		panic("reorderable: NewSliceAdaptor with nil slice pointer")
	}
	return &SliceAdaptor[T]{
		items:       items,
		render:      render,
		FixedHeight: DefaultListStyle().ItemHeight,
	}
}

// Items returns the current backing slice.
func (a *SliceAdaptor[T]) Items() []T {
	return *a.items
}

func (a *SliceAdaptor[T]) Count() int {
	return len(*a.items)
}

func (a *SliceAdaptor[T]) ItemHeight(index int) float32 {
	if a.Height != nil && index >= 0 && index < len(*a.items) {
		return a.Height((*a.items)[index])
	}
	return a.FixedHeight
}

func (a *SliceAdaptor[T]) DrawItem(ctx *Context, rect Rect, index int) {
	if index < 0 || index >= len(*a.items) {
		return
	}
	item := (*a.items)[index]
	if a.render == nil {
		ctx.LabelAt(rect, fmt.Sprint(item))
		return
	}
	(*a.items)[index] = a.render(ctx, rect, item)
}

func (a *SliceAdaptor[T]) newItem() T {
	if a.NewItem != nil {
		return a.NewItem()
	}
	var zero T
	return zero
}

func (a *SliceAdaptor[T]) AddNew() error {
	*a.items = append(*a.items, a.newItem())
	return nil
}

func (a *SliceAdaptor[T]) Insert(index int) error {
	if err := checkInsertIndex("insert", index, len(*a.items)); err != nil {
		return err
	}
	*a.items = slices.Insert(*a.items, index, a.newItem())
	return nil
}

func (a *SliceAdaptor[T]) Duplicate(index int) error {
	if err := checkIndex("duplicate", index, len(*a.items)); err != nil {
		return err
	}
	item := (*a.items)[index]
	if a.Clone != nil {
		item = a.Clone(item)
	}
	*a.items = slices.Insert(*a.items, index+1, item)
	return nil
}

func (a *SliceAdaptor[T]) Remove(index int) error {
	if err := checkIndex("remove", index, len(*a.items)); err != nil {
		return err
	}
	*a.items = slices.Delete(*a.items, index, index+1)
	return nil
}

func (a *SliceAdaptor[T]) Move(src, dest int) error {
	n := len(*a.items)
	if err := checkIndex("move source", src, n); err != nil {
		return err
	}
	if err := checkIndex("move destination", dest, n); err != nil {
		return err
	}
	moveElement(*a.items, src, dest)
	return nil
}

func (a *SliceAdaptor[T]) Clear() error {
	clear(*a.items)
	*a.items = (*a.items)[:0]
	return nil
}

// TextFieldRenderer edits string items with an inline text field.
func TextFieldRenderer(ctx *Context, rect Rect, item string) string {
	ctx.InputTextAt("##item", rect, &item)
	return item
}
