package reorderable

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by adaptor operations given an index
// outside the valid range for the current count.
var ErrIndexOutOfRange = errors.New("index out of range")

// ListAdaptor decouples the list control from its backing collection.
//
// Indices are zero-based. Insert and AddNew accept count (one past the end);
// every other operation requires 0 <= index < Count(). Mutations must be
// synchronous: Count reflects an operation as soon as it returns.
type ListAdaptor interface {
	// Count returns the number of items.
	Count() int
	// ItemHeight returns the content height of item index. It is queried
	// every frame and may differ per item; zero hides the row.
	ItemHeight(index int) float32
	// DrawItem draws item index inside rect. Widgets drawn here take part in
	// the context's focus and change tracking.
	DrawItem(ctx *Context, rect Rect, index int)

	AddNew() error
	Insert(index int) error
	Duplicate(index int) error
	Remove(index int) error
	// Move relocates the item at src so that it ends up at dest, with dest
	// counted after src has been taken out.
	Move(src, dest int) error
	Clear() error
}

// ItemPermissions may be implemented by an adaptor to lock individual items.
type ItemPermissions interface {
	CanDrag(index int) bool
	CanRemove(index int) bool
}

// ItemBackgroundDrawer may be implemented by an adaptor to paint a row's
// background before its content, including the floating row while dragging.
type ItemBackgroundDrawer interface {
	DrawItemBackground(ctx *Context, rect Rect, index int)
}

func canDrag(a ListAdaptor, index int) bool {
	if p, ok := a.(ItemPermissions); ok {
		return p.CanDrag(index)
	}
	return true
}

func canRemove(a ListAdaptor, index int) bool {
	if p, ok := a.(ItemPermissions); ok {
		return p.CanRemove(index)
	}
	return true
}

// checkIndex validates 0 <= index < count.
func checkIndex(op string, index, count int) error {
	if index < 0 || index >= count {
		return fmt.Errorf("%s %d (count %d): %w", op, index, count, ErrIndexOutOfRange)
	}
	return nil
}

// checkInsertIndex validates 0 <= index <= count.
func checkInsertIndex(op string, index, count int) error {
	if index < 0 || index > count {
		return fmt.Errorf("%s %d (count %d): %w", op, index, count, ErrIndexOutOfRange)
	}
	return nil
}

// moveElement relocates items[src] to dest by shifting the items between,
// leaving the slice length unchanged.
func moveElement[T any](items []T, src, dest int) {
	if src == dest {
		return
	}
	v := items[src]
	if src < dest {
		copy(items[src:dest], items[src+1:dest+1])
	} else {
		copy(items[dest+1:src+1], items[dest:src])
	}
	items[dest] = v
}
