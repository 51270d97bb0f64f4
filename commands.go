package reorderable

// Command is a deferred request addressed to a control. Commands posted
// during one frame are delivered to their target on a later frame, when the
// target control drains them at the start of its draw.
type Command struct {
	Target ID     // control that must handle the command
	Name   string // command name, e.g. CommandMoveToTop
	Index  int    // item the command applies to
	frame  uint64 // frame the command was posted in
}

// PostCommand queues a command for target.
func (ctx *Context) PostCommand(target ID, name string, index int) {
	ctx.commands = append(ctx.commands, Command{
		Target: target,
		Name:   name,
		Index:  index,
		frame:  ctx.FrameCount,
	})
	if guiVerbose() {
		guiLogger.Debug("command posted", "target", target, "name", name, "index", index)
	}
}

// takeCommands removes and returns the commands for target that were posted
// before the current frame.
func (ctx *Context) takeCommands(target ID) []Command {
	if len(ctx.commands) == 0 {
		return nil
	}
	var out []Command
	kept := ctx.commands[:0]
	for _, cmd := range ctx.commands {
		if cmd.Target == target && cmd.frame < ctx.FrameCount {
			out = append(out, cmd)
			continue
		}
		kept = append(kept, cmd)
	}
	clear(ctx.commands[len(kept):])
	ctx.commands = kept
	return out
}

// expireCommands drops commands that had a full frame to be delivered and
// were not, which happens when their target stopped drawing.
func (ctx *Context) expireCommands() {
	kept := ctx.commands[:0]
	for _, cmd := range ctx.commands {
		if cmd.frame < ctx.FrameCount {
			guiLogger.Warn("dropping undelivered command",
				"target", cmd.Target, "name", cmd.Name, "index", cmd.Index)
			continue
		}
		kept = append(kept, cmd)
	}
	clear(ctx.commands[len(kept):])
	ctx.commands = kept
}

// PendingCommands returns the number of queued commands.
func (ctx *Context) PendingCommands() int {
	return len(ctx.commands)
}
