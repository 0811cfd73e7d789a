package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Badge is a small label such as a media kind, a duration or a z-index.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantError
	BadgeVariantInfo
)

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		variant:       BadgeVariantDefault,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	if b.text == "" {
		return ""
	}
	return b.computeStyle(ctx.Theme).Render(b.text)
}

func (b *Badge) computeStyle(theme Theme) lipgloss.Style {
	baseStyle := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		return strategy.Apply(baseStyle, theme)
	}
	return baseStyle
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// Variant returns the badge variant.
func (b *Badge) Variant() BadgeVariant {
	return b.variant
}

// Badges renders several badges on one line separated by a space. Empty
// badges are skipped.
func Badges(ctx RenderContext, badges ...*Badge) string {
	parts := make([]string, 0, len(badges)*2)
	for _, badge := range badges {
		if badge == nil {
			continue
		}
		out := badge.ViewWithContext(ctx)
		if out == "" {
			continue
		}
		if len(parts) > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, out)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
