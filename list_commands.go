package reorderable

// Context menu command names. They are posted with Context.PostCommand and
// handled by the list control on its next draw.
const (
	CommandMoveToTop    = "MoveToTop"
	CommandMoveToBottom = "MoveToBottom"
	CommandInsertAbove  = "InsertAbove"
	CommandInsertBelow  = "InsertBelow"
	CommandDuplicate    = "Duplicate"
	CommandRemove       = "Remove"
	CommandClearAll     = "ClearAll"
)

// HandleCommand applies cmd to list id immediately. It returns false when
// the command targets another control, names an unknown operation, refers
// to a missing row, or is disabled by the list flags.
func (lc *ListController) HandleCommand(ctx *Context, id ID, a ListAdaptor, cmd Command, opts ...Option) bool {
	if a == nil {
		panic("reorderable: HandleCommand with nil ListAdaptor")
	}
	if cmd.Target != id {
		return false
	}
	lc.resetChange()
	return lc.newListDraw(ctx, id, a, applyOptions(opts)).dispatch(cmd)
}

func (d *listDraw) dispatch(cmd Command) bool {
	ok := d.apply(cmd)
	if guiVerbose() {
		guiLogger.Debug("command handled", "id", d.id, "name", cmd.Name, "index", cmd.Index, "applied", ok)
	}
	return ok
}

func knownCommand(name string) bool {
	switch name {
	case CommandMoveToTop, CommandMoveToBottom, CommandInsertAbove, CommandInsertBelow,
		CommandDuplicate, CommandRemove, CommandClearAll:
		return true
	}
	return false
}

func (d *listDraw) apply(cmd Command) bool {
	if !knownCommand(cmd.Name) {
		guiLogger.Warn("unknown list command", "id", d.id, "name", cmd.Name, "index", cmd.Index)
		return false
	}
	count := d.adaptor.Count()
	i := cmd.Index
	if cmd.Name != CommandClearAll && (i < 0 || i >= count) {
		guiLogger.Debug("command index out of range", "id", d.id, "name", cmd.Name, "index", i, "count", count)
		return false
	}
	if d.state.drag.active() {
		d.cancelDrag("command " + cmd.Name)
	}

	switch cmd.Name {
	case CommandMoveToTop:
		if d.flags.Has(DisableReordering) || !canDrag(d.adaptor, i) {
			return false
		}
		return d.moveItem(i, 0)

	case CommandMoveToBottom:
		if d.flags.Has(DisableReordering) || !canDrag(d.adaptor, i) {
			return false
		}
		return d.moveItem(i, count-1)

	case CommandInsertAbove, CommandInsertBelow:
		if d.flags.Has(HideAddButton) {
			return false
		}
		at := i
		if cmd.Name == CommandInsertBelow {
			at = i + 1
		}
		if err := d.adaptor.Insert(at); err != nil {
			guiLogger.Warn("list insert failed", "id", d.id, "index", at, "error", err)
			return false
		}
		d.inserted(at, false)
		return true

	case CommandDuplicate:
		if d.flags.Has(HideAddButton) || d.flags.Has(DisableDuplicateCommand) {
			return false
		}
		if err := d.adaptor.Duplicate(i); err != nil {
			guiLogger.Warn("list duplicate failed", "id", d.id, "index", i, "error", err)
			return false
		}
		d.inserted(i+1, true)
		return true

	case CommandRemove:
		if d.flags.Has(HideRemoveButtons) || !canRemove(d.adaptor, i) {
			return false
		}
		return d.removeItem(i)

	case CommandClearAll:
		if d.flags.Has(HideRemoveButtons) || count == 0 {
			return false
		}
		if err := d.adaptor.Clear(); err != nil {
			guiLogger.Warn("list clear failed", "id", d.id, "error", err)
			return false
		}
		d.state.autoFocusIndex = -1
		d.ctx.ClearFocus()
		d.lc.noteStructural()
		return true
	}
	return false
}
