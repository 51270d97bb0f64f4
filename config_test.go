package reorderable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListConfig(t *testing.T) {
	cfg, err := ParseListConfig([]byte(`
hide_add_button = true
disable_context_menu = true
width = 320

[style]
item_height = 24
handle_width = 16
`))
	require.NoError(t, err)
	assert.Equal(t, HideAddButton|DisableContextMenu, cfg.Flags())
	assert.Equal(t, float32(320), cfg.Width)

	s := cfg.Style.ApplyTo(DefaultListStyle())
	def := DefaultListStyle()
	assert.Equal(t, float32(24), s.ItemHeight)
	assert.Equal(t, float32(16), s.HandleWidth)
	assert.Equal(t, def.RemoveButtonWidth, s.RemoveButtonWidth)
	assert.Equal(t, def.RowPadding, s.RowPadding)
}

func TestParseListConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		invalid bool
	}{
		{"unknown key", "hide_add_buttons = true", true},
		{"unknown style key", "[style]\nrow_height = 3", true},
		{"negative width", "width = -1", true},
		{"negative style", "[style]\nsplitter_height = -2", true},
		{"syntax", "hide_add_button = ", false},
		{"wrong type", `hide_add_button = "yes"`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseListConfig([]byte(tt.input))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestListConfigFlags(t *testing.T) {
	cfg := ListConfig{
		DisableReordering:       true,
		HideAddButton:           true,
		HideRemoveButtons:       true,
		DisableContextMenu:      true,
		DisableDuplicateCommand: true,
		DisableAutoFocus:        true,
	}
	f := cfg.Flags()
	for _, flag := range []ListFlags{
		DisableReordering, HideAddButton, HideRemoveButtons,
		DisableContextMenu, DisableDuplicateCommand, DisableAutoFocus,
	} {
		assert.True(t, f.Has(flag))
	}
	assert.Zero(t, ListConfig{}.Flags())
}

func TestListConfigOptions(t *testing.T) {
	o := applyOptions(ListConfig{}.Options())
	assert.Zero(t, GetOpt(o, OptListFlags))
	assert.False(t, HasOpt(o, OptListStyle))
	assert.False(t, HasOpt(o, OptWidth))

	cfg := ListConfig{HideAddButton: true, Width: 200, Style: ListStyleConfig{ItemHeight: 30}}
	o = applyOptions(cfg.Options())
	assert.Equal(t, HideAddButton, GetOpt(o, OptListFlags))
	assert.Equal(t, float32(200), GetOpt(o, OptWidth))
	assert.Equal(t, float32(30), GetOpt(o, OptListStyle).ItemHeight)
}

func TestListConfigDrivesLayout(t *testing.T) {
	cfg, err := ParseListConfig([]byte("hide_add_button = true\n[style]\nitem_height = 28\n"))
	require.NoError(t, err)

	h := newHarness(t)
	_, a := letters("A")
	a.FixedHeight = 28
	res := h.list(a, cfg.Options()...)
	// padding + row(2 + 28 + 2) + padding, no footer
	assert.Equal(t, float32(4+32+4), res.Height)
}

func TestLoadListConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.toml")
	require.NoError(t, os.WriteFile(path, []byte("disable_auto_focus = true\n"), 0o644))

	cfg, err := LoadListConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.DisableAutoFocus)

	_, err = LoadListConfig(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("bogus = 1\n"), 0o644))
	_, err = LoadListConfig(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), path)
}
