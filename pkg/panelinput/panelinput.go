// Package panelinput provides a single-line terminal prompt with a bordered
// suggestion panel underneath it. Suggestions come either from a fixed list of
// choices or from a completer function called on every edit.
//
// A one-shot prompt:
//
//	v, err := panelinput.Prompt(ctx, "❯ ", panelinput.WithChoices([]string{"alpha", "beta"}))
//
// A reusable input whose choices and style can change between prompts:
//
//	in := panelinput.New(panelinput.WithCompleter(panelinput.ShellCompleter()))
//	for {
//		v, err := in.Prompt(ctx, "$ ")
//		...
//	}
package panelinput

import (
	"context"
	"io"

	"panelinput/internal/complete"
	"panelinput/internal/panel"
	"panelinput/internal/ui"
)

// ErrInterrupted is returned when the user presses Ctrl+C.
var ErrInterrupted = ui.ErrInterrupted

// DefaultPrompt is used when the prompt text is empty.
const DefaultPrompt = "❯ "

type (
	// CompleterFunc returns completions for the last word of the buffer.
	CompleterFunc = complete.FragmentFunc
	// Style maps semantic tags to lipgloss styles.
	Style = panel.Style
	// Tag names a styled part of the widget.
	Tag = panel.Tag
)

// Style tags.
const (
	TagPrompt      = panel.TagPrompt
	TagInput       = panel.TagInput
	TagBorder      = panel.TagBorder
	TagLine        = panel.TagLine
	TagPlaceholder = panel.TagPlaceholder
	TagSelected    = panel.TagSelected
	TagFooter      = panel.TagFooter
	TagNoResults   = panel.TagNoResults
)

// DefaultChoices returns a copy of the built-in choice list.
func DefaultChoices() []string { return append([]string(nil), complete.DefaultChoices...) }

// DefaultStyle returns a copy of the default style.
func DefaultStyle() Style { return panel.DefaultStyle() }

// ParseStyle builds a style from tag → spec strings such as "ansicyan bold".
func ParseStyle(specs map[string]string) (Style, error) { return panel.StyleFromSpecs(specs) }

// ShellCompleter completes the last word with bash's compgen.
func ShellCompleter() CompleterFunc { return complete.DefaultCompgen().Complete }

type options struct {
	choices   []string
	completer CompleterFunc
	style     Style
	layout    panel.Layout
	fuzzy     bool
	seed      []string
	in        io.Reader
	out       io.Writer
}

// Option configures a prompt.
type Option func(*options)

// WithChoices sets the static choice list.
func WithChoices(choices []string) Option {
	return func(o *options) { o.choices = append([]string(nil), choices...) }
}

// WithCompleter switches from static choices to fn.
func WithCompleter(fn CompleterFunc) Option {
	return func(o *options) { o.completer = fn }
}

func WithStyle(st Style) Option { return func(o *options) { o.style = st } }

// WithMaxRows sets how many suggestion rows the panel shows.
func WithMaxRows(n int) Option { return func(o *options) { o.layout.MaxRows = n } }

// WithWidth sets the total panel width in columns.
func WithWidth(n int) Option { return func(o *options) { o.layout.Width = n } }

// WithFuzzy ranks static choices by fuzzy score instead of substring match.
func WithFuzzy() Option { return func(o *options) { o.fuzzy = true } }

// WithSeed highlights items before anything is typed, so Enter on an empty
// buffer returns the first of them (or the one moved to with Up/Down). The
// first edit replaces them with the regular suggestions.
func WithSeed(items []string) Option {
	return func(o *options) { o.seed = append([]string(nil), items...) }
}

// WithIO overrides the terminal input and output.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(o *options) { o.in, o.out = in, out }
}

func buildOptions(opts []Option) options {
	o := options{layout: panel.DefaultLayout()}
	for _, fn := range opts {
		fn(&o)
	}
	if o.choices == nil {
		o.choices = DefaultChoices()
	}
	if o.style == nil {
		o.style = panel.DefaultStyle()
	}
	return o
}

func (o options) source() complete.Source {
	if o.completer != nil {
		return complete.NewExternal(o.completer)
	}
	var sopts []complete.StaticOption
	if o.fuzzy {
		sopts = append(sopts, complete.WithFuzzy())
	}
	return complete.NewStatic(o.choices, sopts...)
}

func (o options) session(promptText string) ui.Options {
	if promptText == "" {
		promptText = DefaultPrompt
	}
	return ui.Options{
		Prompt: promptText,
		Source: o.source(),
		Style:  o.style,
		Layout: o.layout,
		Seed:   o.seed,
	}
}

func (o options) run(ctx context.Context, promptText string) (string, error) {
	return ui.Run(ctx, o.session(promptText), o.in, o.out)
}

// Prompt shows one prompt and returns the accepted text, or ErrInterrupted.
func Prompt(ctx context.Context, promptText string, opts ...Option) (string, error) {
	return buildOptions(opts).run(ctx, promptText)
}

// Input is a reusable prompt. Its choices and style may be changed between
// calls to Prompt; it is not safe for concurrent use.
type Input struct {
	opts options
}

// New returns an Input configured by opts.
func New(opts ...Option) *Input {
	return &Input{opts: buildOptions(opts)}
}

// Choices returns a copy of the static choices.
func (in *Input) Choices() []string { return append([]string(nil), in.opts.choices...) }

// SetChoices replaces the static choices used by later prompts.
func (in *Input) SetChoices(choices []string) {
	in.opts.choices = append([]string(nil), choices...)
}

func (in *Input) Style() Style { return in.opts.style.Clone() }

// SetStyle replaces the style used by later prompts. A nil style restores the default.
func (in *Input) SetStyle(st Style) {
	if st == nil {
		st = panel.DefaultStyle()
	}
	in.opts.style = st
}

// Feed runs one prompt without a terminal: keys are applied as if typed
// (\t fills from the selection, \x7f erases, \x1b clears, \x03 interrupts)
// and Enter is pressed at the end.
func (in *Input) Feed(keys string) (string, error) {
	return ui.Replay(in.opts.session(""), keys)
}

// Prompt shows the prompt and returns the accepted text, or ErrInterrupted.
func (in *Input) Prompt(ctx context.Context, promptText string) (string, error) {
	return in.opts.run(ctx, promptText)
}
