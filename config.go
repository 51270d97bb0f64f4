package reorderable

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by every ListConfig validation error.
var ErrInvalidConfig = errors.New("reorderable: invalid list config")

// ListConfig is the file form of a list's flags and metrics:
//
//	hide_add_button = true
//	disable_context_menu = false
//
//	[style]
//	item_height = 20
//	handle_width = 16
//
// Unset style values keep their defaults.
type ListConfig struct {
	DisableReordering       bool `toml:"disable_reordering"`
	HideAddButton           bool `toml:"hide_add_button"`
	HideRemoveButtons       bool `toml:"hide_remove_buttons"`
	DisableContextMenu      bool `toml:"disable_context_menu"`
	DisableDuplicateCommand bool `toml:"disable_duplicate_command"`
	DisableAutoFocus        bool `toml:"disable_auto_focus"`

	Width float32         `toml:"width,omitempty"`
	Style ListStyleConfig `toml:"style"`
}

// ListStyleConfig overrides list metrics. Zero values are ignored.
type ListStyleConfig struct {
	ContainerPadding  float32 `toml:"container_padding,omitempty"`
	RowPadding        float32 `toml:"row_padding,omitempty"`
	SplitterHeight    float32 `toml:"splitter_height,omitempty"`
	HandleWidth       float32 `toml:"handle_width,omitempty"`
	RemoveButtonWidth float32 `toml:"remove_button_width,omitempty"`
	FooterHeight      float32 `toml:"footer_height,omitempty"`
	EmptyHeight       float32 `toml:"empty_height,omitempty"`
	ItemHeight        float32 `toml:"item_height,omitempty"`
}

// ParseListConfig decodes a TOML list configuration. Unknown keys are an
// error so typos do not pass silently.
func ParseListConfig(data []byte) (ListConfig, error) {
	var cfg ListConfig
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return ListConfig{}, fmt.Errorf("parse list config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return ListConfig{}, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return ListConfig{}, err
	}
	return cfg, nil
}

// LoadListConfig reads and parses the TOML file at path.
func LoadListConfig(path string) (ListConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ListConfig{}, fmt.Errorf("load list config: %w", err)
	}
	cfg, err := ParseListConfig(data)
	if err != nil {
		return ListConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects negative sizes.
func (c ListConfig) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("%w: width %v is negative", ErrInvalidConfig, c.Width)
	}
	s := c.Style
	for _, f := range []struct {
		name string
		v    float32
	}{
		{"container_padding", s.ContainerPadding},
		{"row_padding", s.RowPadding},
		{"splitter_height", s.SplitterHeight},
		{"handle_width", s.HandleWidth},
		{"remove_button_width", s.RemoveButtonWidth},
		{"footer_height", s.FooterHeight},
		{"empty_height", s.EmptyHeight},
		{"item_height", s.ItemHeight},
	} {
		if f.v < 0 {
			return fmt.Errorf("%w: style.%s %v is negative", ErrInvalidConfig, f.name, f.v)
		}
	}
	return nil
}

// Flags converts the boolean switches to ListFlags.
func (c ListConfig) Flags() ListFlags {
	var f ListFlags
	set := func(on bool, flag ListFlags) {
		if on {
			f |= flag
		}
	}
	set(c.DisableReordering, DisableReordering)
	set(c.HideAddButton, HideAddButton)
	set(c.HideRemoveButtons, HideRemoveButtons)
	set(c.DisableContextMenu, DisableContextMenu)
	set(c.DisableDuplicateCommand, DisableDuplicateCommand)
	set(c.DisableAutoFocus, DisableAutoFocus)
	return f
}

// ApplyTo returns base with the configured overrides applied.
func (c ListStyleConfig) ApplyTo(base ListStyle) ListStyle {
	override := func(dst *float32, v float32) {
		if v > 0 {
			*dst = v
		}
	}
	override(&base.ContainerPadding, c.ContainerPadding)
	override(&base.RowPadding, c.RowPadding)
	override(&base.SplitterHeight, c.SplitterHeight)
	override(&base.HandleWidth, c.HandleWidth)
	override(&base.RemoveButtonWidth, c.RemoveButtonWidth)
	override(&base.FooterHeight, c.FooterHeight)
	override(&base.EmptyHeight, c.EmptyHeight)
	override(&base.ItemHeight, c.ItemHeight)
	return base
}

// Options returns the list options the configuration describes, using the
// default list style as the base for overrides.
func (c ListConfig) Options() []Option {
	opts := []Option{WithListFlags(c.Flags())}
	if c.Style != (ListStyleConfig{}) {
		opts = append(opts, WithListStyle(c.Style.ApplyTo(DefaultListStyle())))
	}
	if c.Width > 0 {
		opts = append(opts, WithWidth(c.Width))
	}
	return opts
}
