// Command terminal shows the reorderable list demo in a terminal.
// Drag rows by their handle with the mouse, right-click a row for its
// menu and press Ctrl+C to quit.
//
//	go run ./example/terminal [-config lists.toml] [-log debug.log]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/reorderable"
	"github.com/go-theft-auto/reorderable/backend/terminal"
	"github.com/go-theft-auto/reorderable/example/internal/demo"
)

func main() {
	configPath := flag.String("config", "", "TOML list configuration")
	logPath := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, logPath string) error {
	var opts []reorderable.Option
	if configPath != "" {
		cfg, err := reorderable.LoadListConfig(configPath)
		if err != nil {
			return err
		}
		opts = cfg.Options()
	}

	// The screen belongs to the UI; logs go to a file or nowhere.
	reorderable.SetLogOutput(io.Discard)
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		reorderable.SetLogOutput(f)
		reorderable.SetVerbose(true)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()

	const cellW, cellH = terminal.DefaultCellWidth, terminal.DefaultCellHeight
	style := terminal.Style(cellW, cellH)
	renderer := terminal.NewRenderer(screen, cellW, cellH)
	input := terminal.NewInputAdapter(cellW, cellH)
	ui := reorderable.New(renderer, reorderable.WithStyle(style))
	scene := demo.New(style, opts...)

	frame := func(dt float32) error {
		screen.Clear()
		size := renderer.DisplaySize()
		ctx := ui.Begin(input.Input(), size, dt)
		ctx.SetCursorPos(cellW, cellH)
		ctx.SetContentWidth(min(size.X-2*cellW, 60*cellW))
		scene.Draw(ctx)
		if err := ui.End(); err != nil {
			return err
		}
		input.EndFrame()
		return nil
	}
	// Frames only run on events, so a menu choice posted during one frame
	// gets an extra frame to be delivered in.
	draw := func(dt float32) error {
		if err := frame(dt); err != nil {
			return err
		}
		if ui.Context().PendingCommands() > 0 {
			if err := frame(0); err != nil {
				return err
			}
		}
		screen.Show()
		return nil
	}

	if err := draw(0); err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	last := time.Now()
	for ev := range terminal.PollEvents(ctx, screen) {
		if input.Feed(ev) {
			return nil
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
		}
		now := time.Now()
		if err := draw(float32(now.Sub(last).Seconds())); err != nil {
			return err
		}
		last = now
	}
	return nil
}
