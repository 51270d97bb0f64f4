/*
Package reorderable provides an immediate-mode reorderable list control:
a vertical list whose rows can be dragged into a new order, removed with
a per-row button, appended with an add button and edited through a
right-click context menu.

# Overview

The list is rebuilt every frame. It keeps no copy of the items; it talks to
the collection through a ListAdaptor and keeps only what must survive
between frames (drag state, the row waiting for keyboard focus) in a
ListController keyed by control ID.

# Quick Start

	names := []string{"alpha", "beta", "gamma"}
	adaptor := reorderable.NewSliceAdaptor(&names, reorderable.TextFieldRenderer)

	ui := reorderable.New(renderer)
	for running {
	    input := backend.Update()

	    ctx := ui.Begin(input, reorderable.Vec2{X: 800, Y: 600}, dt)
	    res := ctx.ReorderableList("names", adaptor,
	        reorderable.WithListFlags(reorderable.DisableDuplicateCommand))
	    if res.Changed {
	        save(names)
	    }
	    ui.End()

	    backend.EndFrame()
	}

The host must clear per-frame input edges after the frame, not before it:
backends do this in EndFrame.

# Adaptors

	ListAdaptor        Count, ItemHeight, DrawItem and the structural edits
	ItemPermissions    optional CanDrag / CanRemove per row
	ItemBackgroundDrawer
	                   optional row background, also used for the floating row

	SliceAdaptor[T]    any Go slice held by pointer
	PropertyAdaptor    a host SerializedArray; records an undo group per edit
	UndoArray[T]       in-memory SerializedArray with snapshot undo/redo

Row heights come from ItemHeight every frame and may differ per row. A row
of height zero collapses entirely but keeps its index.

# Interaction

	Drag handle (left strip)   press and move to reorder; release to drop
	Escape / right click       cancel the drag, the list is unchanged
	x (right strip)            remove the row
	+ (footer)                 append an item and focus its first field
	Right click on a row       context menu: Move to Top, Move to Bottom,
	                           Insert Above, Insert Below, Duplicate,
	                           Remove, Clear All
	Up / Down / Enter          navigate and choose a menu entry

A drop is a no-op when the row lands where it started. Context menu
choices are posted as Commands and applied when the list draws on the next
frame; commands nobody collects expire at the end of that frame.

# Flags

	DisableReordering        no drag handle, no move commands
	HideAddButton            no footer, no insert or duplicate commands
	HideRemoveButtons        no remove zone, no remove or clear commands
	DisableContextMenu       right click does nothing
	DisableDuplicateCommand  drop Duplicate from the menu
	DisableAutoFocus         new rows do not take keyboard focus

Flags, the list width and style metrics can also be loaded from TOML with
LoadListConfig; ListConfig.Options turns the file into draw options.

# Layout

CalculateHeight and ReorderableListHeight return the height a list will
occupy without drawing it. Inside BeginMeasure / EndMeasure the list only
measures and advances the cursor, so enclosing layouts can size
themselves before the real pass.

# Backends

backend/opengl renders draw lists with OpenGL 4.1 and adapts GLFW input.
backend/terminal renders onto a tcell screen, one character cell per
8x16 GUI units, and adapts tcell events. Use terminal.Style so every metric
lands on whole cells.
*/
package reorderable
