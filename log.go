package reorderable

import (
	"io"
	"log/slog"
	"os"
)

// guiLogLevel is shared by every logger in the package so SetVerbose
// toggles them together.
var guiLogLevel = new(slog.LevelVar)

var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))

func init() {
	guiLogLevel.Set(slog.LevelInfo)
}

// SetVerbose enables or disables debug logging.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

// SetLogOutput redirects package logging to w, e.g. a file while a
// terminal backend owns the screen.
func SetLogOutput(w io.Writer) {
	guiLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: guiLogLevel}))
}

// guiVerbose reports whether debug logging is enabled.
// Hot paths check it before building log attributes.
func guiVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}
