package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// placeholderArt is the fixed graphic shown in place of media that failed to
// display.
var placeholderArt = []string{
	"┌───────────┐",
	"│  ╲     ╱  │",
	"│    ╲ ╱    │",
	"│    ╱ ╲    │",
	"│  ╱     ╲  │",
	"└───────────┘",
}

// Placeholder stands in for an item that could not be displayed. It never
// shows the failure reason, only the item's alt text when it has one.
type Placeholder struct {
	BaseComponent
	caption string
}

// NewPlaceholder creates a placeholder with an optional caption.
func NewPlaceholder(caption string) *Placeholder {
	return &Placeholder{
		BaseComponent: NewBaseComponent(),
		caption:       caption,
	}
}

// View renders the placeholder.
func (p *Placeholder) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the placeholder centered in the context area.
func (p *Placeholder) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	art := lipgloss.NewStyle().
		Foreground(theme.Palette.Neutral.Base).
		Render(strings.Join(placeholderArt, "\n"))

	lines := []string{art}
	if p.caption != "" {
		lines = append(lines, TypographyStyle(theme, TypographyVariantCaption).Render(p.caption))
	}
	body := lipgloss.JoinVertical(lipgloss.Center, lines...)

	style := p.ComputeStyle(theme)
	if ctx.Width > 0 && ctx.Height > 0 {
		return style.Render(lipgloss.Place(ctx.Width, ctx.Height, lipgloss.Center, lipgloss.Center, body))
	}
	return style.Render(body)
}
