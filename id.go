package reorderable

import "hash/fnv"

// ID uniquely identifies a control for state persistence and input capture.
// IDs depend only on the label and the enclosing ID stack, so the same call
// site yields the same ID every frame regardless of how many other widgets
// were drawn before it.
type ID uint64

func (ctx *Context) parentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}

// GetID generates a stable ID from a string label within the current ID stack.
// Use PushID or PushIDInt to disambiguate identical labels.
func (ctx *Context) GetID(label string) ID {
	h := fnv.New64a()
	var seed [8]byte
	p := uint64(ctx.parentID())
	for i := range seed {
		seed[i] = byte(p >> (8 * i))
	}
	h.Write(seed[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// GetIDFromInt generates an ID from an integer within the current ID stack.
// Useful for rows of a list.
func (ctx *Context) GetIDFromInt(n int) ID {
	h := fnv.New64a()
	var buf [16]byte
	p, v := uint64(ctx.parentID()), uint64(n)
	for i := 0; i < 8; i++ {
		buf[i] = byte(p >> (8 * i))
		buf[8+i] = byte(v >> (8 * i))
	}
	h.Write(buf[:])
	return ID(h.Sum64())
}

// PushID pushes an ID onto the stack for nested widgets.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PushIDInt pushes an integer-based ID onto the stack.
func (ctx *Context) PushIDInt(n int) {
	ctx.idStack = append(ctx.idStack, ctx.GetIDFromInt(n))
}

// PopID removes the last ID from the stack.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the current parent ID (top of stack).
func (ctx *Context) CurrentID() ID {
	return ctx.parentID()
}
