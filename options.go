package reorderable

// Option configures a widget or a list control.
type Option func(*options)

// options holds configuration values keyed by OptKey name.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for options.
//
//	var OptCompact = reorderable.NewOptKey("compact", false)
//	ctx.ReorderableList("tags", adaptor, reorderable.WithOpt(OptCompact, true))
//	compact := reorderable.GetOpt(opts, OptCompact)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name.
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value, or the key's default when unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.extensions[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// Widget options

var (
	// OptID overrides the label-derived widget ID.
	OptID = NewOptKey("id", "")
	// OptDisabled draws a widget greyed out and ignores its input.
	OptDisabled = NewOptKey("disabled", false)
	// OptWidth sets an explicit widget width; 0 means automatic.
	OptWidth = NewOptKey[float32]("width", 0)
)

// WithID overrides the label-derived widget ID.
func WithID(id string) Option { return WithOpt(OptID, id) }

// Disabled greys out a widget.
func Disabled(v bool) Option { return WithOpt(OptDisabled, v) }

// WithWidth sets an explicit widget width.
func WithWidth(w float32) Option { return WithOpt(OptWidth, w) }

// List options

// EmptyContentFunc draws the placeholder of an empty list inside rect.
type EmptyContentFunc func(ctx *Context, rect Rect)

var (
	// OptListFlags holds the ListFlags of a list control.
	OptListFlags = NewOptKey[ListFlags]("listFlags", 0)
	// OptEmptyContent replaces the default "List is empty." placeholder.
	OptEmptyContent = NewOptKey[EmptyContentFunc]("emptyContent", nil)
	// OptListStyle overrides the context's list style for one control.
	OptListStyle = NewOptKey("listStyle", ListStyle{})
	// OptListEvents attaches structural change callbacks.
	OptListEvents = NewOptKey("listEvents", ListEvents{})
)

// WithListFlags sets the behavior flags of a list control.
func WithListFlags(f ListFlags) Option { return WithOpt(OptListFlags, f) }

// WithEmptyContent sets the placeholder drawn when the list has no items.
func WithEmptyContent(fn EmptyContentFunc) Option { return WithOpt(OptEmptyContent, fn) }

// WithListStyle overrides the list metrics and colors for one control.
func WithListStyle(s ListStyle) Option { return WithOpt(OptListStyle, s) }

// WithListEvents attaches structural change callbacks.
func WithListEvents(ev ListEvents) Option { return WithOpt(OptListEvents, ev) }
