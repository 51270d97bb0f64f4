// Package demo is the scene shared by the example programs: three lists
// backed by a plain slice, an undoable array and a list with a locked row.
package demo

import (
	"fmt"

	"github.com/go-theft-auto/reorderable"
)

const maxLogLines = 6

// pinnedAdaptor keeps its first row in place: it can be neither dragged
// nor removed, and it is drawn on a highlighted background.
type pinnedAdaptor struct {
	*reorderable.SliceAdaptor[string]
	highlight uint32
}

func (p pinnedAdaptor) CanDrag(index int) bool   { return index != 0 }
func (p pinnedAdaptor) CanRemove(index int) bool { return index != 0 }

func (p pinnedAdaptor) DrawItemBackground(ctx *reorderable.Context, rect reorderable.Rect, index int) {
	if index == 0 {
		ctx.DrawList.AddRect(rect, p.highlight)
	}
}

// Scene holds the demo data and draws it each frame.
type Scene struct {
	Tasks   []string
	Pinned  []string
	Steps   *reorderable.UndoArray[string]
	Options []reorderable.Option

	tasks  *reorderable.SliceAdaptor[string]
	steps  *reorderable.PropertyAdaptor
	pinned pinnedAdaptor
	log    []string
}

// New builds the scene for style. opts apply to every list.
func New(style reorderable.Style, opts ...reorderable.Option) *Scene {
	s := &Scene{
		Tasks:   []string{"Write docs", "Fix drag target", "Review menu", "Ship it"},
		Pinned:  []string{"Header (locked)", "Intro", "Body", "Outro"},
		Options: opts,
	}
	itemH := style.List.ItemHeight

	s.tasks = reorderable.NewSliceAdaptor(&s.Tasks, reorderable.TextFieldRenderer)
	s.tasks.FixedHeight = itemH
	s.tasks.NewItem = func() string { return "New task" }

	s.Steps = reorderable.NewUndoArray([]string{"Fetch", "Build", "Test", "Deploy"}, reorderable.TextFieldRenderer)
	s.Steps.Height = itemH
	s.Steps.NewItem = func() string { return "Step" }
	s.steps = reorderable.NewPropertyAdaptor(s.Steps)

	pinned := reorderable.NewSliceAdaptor(&s.Pinned, nil)
	pinned.FixedHeight = itemH
	pinned.NewItem = func() string { return fmt.Sprintf("Section %d", len(s.Pinned)+1) }
	s.pinned = pinnedAdaptor{SliceAdaptor: pinned, highlight: style.SelectedBgColor}
	return s
}

func (s *Scene) logf(format string, args ...any) {
	s.log = append(s.log, fmt.Sprintf(format, args...))
	if len(s.log) > maxLogLines {
		s.log = s.log[len(s.log)-maxLogLines:]
	}
}

func (s *Scene) events(name string) reorderable.ListEvents {
	return reorderable.ListEvents{
		ItemInserted: func(index int, duplicated bool) {
			s.logf("%s: inserted %d (duplicate=%t)", name, index, duplicated)
		},
		ItemRemoving: func(index int) bool {
			s.logf("%s: removing %d", name, index)
			return true
		},
		ItemMoved: func(oldIndex, newIndex int) {
			s.logf("%s: moved %d -> %d", name, oldIndex, newIndex)
		},
	}
}

func (s *Scene) list(ctx *reorderable.Context, label string, a reorderable.ListAdaptor, extra ...reorderable.Option) {
	opts := append([]reorderable.Option{reorderable.WithListEvents(s.events(label))}, s.Options...)
	opts = append(opts, extra...)
	if res := ctx.ReorderableList(label, a, opts...); res.Changed && res.ChangedIndex != reorderable.NoChangedIndex {
		s.logf("%s: edited %d", label, res.ChangedIndex)
	}
}

// Draw draws one frame of the scene at the context's cursor.
func (s *Scene) Draw(ctx *reorderable.Context) {
	ctx.Label("Tasks (slice)")
	s.list(ctx, "tasks", s.tasks)

	ctx.Label("Pipeline steps (undoable)")
	s.list(ctx, "steps", s.steps)
	undo := ctx.Button("Undo", reorderable.Disabled(!s.Steps.CanUndo()))
	redo := ctx.Button("Redo", reorderable.Disabled(!s.Steps.CanRedo()))
	switch {
	case undo:
		if name, err := s.Steps.Undo(); err == nil {
			s.logf("steps: undo %s", name)
		}
	case redo:
		if name, err := s.Steps.Redo(); err == nil {
			s.logf("steps: redo %s", name)
		}
	}

	ctx.Label("Sections (first row locked)")
	s.list(ctx, "sections", s.pinned, reorderable.WithListFlags(reorderable.DisableDuplicateCommand),
		reorderable.WithEmptyContent(func(ctx *reorderable.Context, rect reorderable.Rect) {
			ctx.LabelAt(rect, "No sections yet.")
		}))

	for _, line := range s.log {
		ctx.Label(line)
	}
}
