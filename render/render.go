// Package render draws cards for terminals. Face-up cards show their rank
// and suit coloured by card color; face-down cards show a dim "Card".
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/cardkit/cards"
)

// Renderer styles cards for one output.
type Renderer struct {
	lg        *lipgloss.Renderer
	red       lipgloss.Style
	black     lipgloss.Style
	back      lipgloss.Style
	separator string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithProfile forces a color profile instead of detecting one from the
// output. termenv.Ascii disables colour entirely.
func WithProfile(p termenv.Profile) Option {
	return func(r *Renderer) { r.lg.SetColorProfile(p) }
}

// WithSeparator sets the string placed between cards in a row.
func WithSeparator(sep string) Option {
	return func(r *Renderer) { r.separator = sep }
}

// New creates a renderer for w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		lg:        lipgloss.NewRenderer(w),
		separator: " ",
	}
	for _, opt := range opts {
		opt(r)
	}

	r.red = r.lg.NewStyle().
		Foreground(lipgloss.Color("#FF6B6B")).
		Bold(true)
	r.black = r.lg.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FAFAFA"}).
		Bold(true)
	r.back = r.lg.NewStyle().
		Foreground(lipgloss.Color("#626262")).
		Faint(true)
	return r
}

// Card renders a single card, e.g. "A♠" in black or "Card" when face down.
func (r *Renderer) Card(c *cards.Card) string {
	if c == nil {
		return ""
	}
	if !c.FaceUp() {
		return r.back.Render("Card")
	}
	text := c.Rank().String() + c.Suit().String()
	if c.Color() == cards.Red {
		return r.red.Render(text)
	}
	return r.black.Render(text)
}

// Cards renders every card of src in order as a bracketed row. An empty
// source renders as the empty string.
func (r *Renderer) Cards(src cards.CardSource) string {
	var formatted []string
	for c := range src.All() {
		formatted = append(formatted, r.Card(c))
	}
	if len(formatted) == 0 {
		return ""
	}
	return "[" + strings.Join(formatted, r.separator) + "]"
}

// Fprint writes the rendered row followed by a newline.
func (r *Renderer) Fprint(w io.Writer, src cards.CardSource) error {
	_, err := io.WriteString(w, r.Cards(src)+"\n")
	return err
}
