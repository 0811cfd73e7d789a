package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ArrowDirection selects the glyph an Arrow draws.
type ArrowDirection int

const (
	ArrowPrevious ArrowDirection = iota
	ArrowNext
)

// Arrow is a previous/next navigation affordance.
type Arrow struct {
	BaseComponent
	direction ArrowDirection
	disabled  bool
	active    bool
}

// NewArrow creates an enabled arrow.
func NewArrow(direction ArrowDirection) *Arrow {
	return &Arrow{
		BaseComponent: NewBaseComponent(),
		direction:     direction,
	}
}

// View renders the arrow.
func (a *Arrow) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the arrow with the given theme context. Rows in
// the context vertically center the glyph.
func (a *Arrow) ViewWithContext(ctx RenderContext) string {
	glyph := ctx.Theme.ArrowNext
	if a.direction == ArrowPrevious {
		glyph = ctx.Theme.ArrowPrev
	}
	style := a.computeStyle(ctx.Theme)
	if ctx.Height > 0 {
		style = style.Height(ctx.Height).AlignVertical(lipgloss.Center)
	}
	return style.Render(glyph)
}

func (a *Arrow) computeStyle(theme Theme) lipgloss.Style {
	style := Foreground(PalettePrimary)(a.ComputeStyle(theme), theme).PaddingLeft(1).PaddingRight(1)
	if a.disabled {
		style = style.Foreground(theme.Palette.Neutral.Muted).Faint(true)
	}
	if a.active {
		style = style.Bold(true)
	}
	return style
}

// WithDisabled sets the disabled state.
func (a *Arrow) WithDisabled(disabled bool) *Arrow {
	a.disabled = disabled
	return a
}

// WithActive highlights the arrow, e.g. while a swipe in its direction is in
// progress.
func (a *Arrow) WithActive(active bool) *Arrow {
	a.active = active
	return a
}

// IsDisabled returns true if the arrow is disabled.
func (a *Arrow) IsDisabled() bool {
	return a.disabled
}
