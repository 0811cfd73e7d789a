package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultDotWindow is how many dots are drawn before the indicator starts
// sliding with the active index.
const DefaultDotWindow = 15

// Dots is the position indicator under the stage.
type Dots struct {
	BaseComponent
	total  int
	active int
	window int
}

// NewDots creates an indicator for total items with active highlighted.
func NewDots(total, active int) *Dots {
	return &Dots{
		BaseComponent: NewBaseComponent(),
		total:         total,
		active:        active,
		window:        DefaultDotWindow,
	}
}

// WithWindow caps the number of dots drawn. Values below 3 are raised to 3.
func (d *Dots) WithWindow(n int) *Dots {
	if n < 3 {
		n = 3
	}
	d.window = n
	return d
}

// View renders the dots.
func (d *Dots) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the dots with the given theme context.
func (d *Dots) ViewWithContext(ctx RenderContext) string {
	if d.total <= 1 {
		return ""
	}
	theme := ctx.Theme
	start, end := d.Range()

	activeStyle := lipgloss.NewStyle().Foreground(theme.Palette.Primary.Base)
	idleStyle := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Base)

	parts := make([]string, 0, end-start+2)
	if start > 0 {
		parts = append(parts, idleStyle.Render("…"))
	}
	for i := start; i < end; i++ {
		if i == d.active {
			parts = append(parts, activeStyle.Render(theme.DotActive))
		} else {
			parts = append(parts, idleStyle.Render(theme.DotInactive))
		}
	}
	if end < d.total {
		parts = append(parts, idleStyle.Render("…"))
	}
	return d.ComputeStyle(theme).Render(strings.Join(parts, " "))
}

// Range returns the half-open index range of dots that are drawn. The
// window slides to keep the active dot roughly centered.
func (d *Dots) Range() (int, int) {
	if d.total <= d.window {
		return 0, d.total
	}
	start := d.active - d.window/2
	if start < 0 {
		start = 0
	}
	if start+d.window > d.total {
		start = d.total - d.window
	}
	return start, start + d.window
}
