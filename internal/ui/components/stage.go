package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Stage is the bordered area an item is drawn in, with an optional title row
// above the body and a footer row below it.
type Stage struct {
	BaseComponent
	title  string
	body   Renderable
	footer string
	border BorderVariant
	accent PaletteSlot
}

// NewStage creates a stage around body.
func NewStage(body Renderable) *Stage {
	stage := &Stage{
		BaseComponent: NewBaseComponent(),
		body:          body,
		border:        BorderVariantRounded,
		accent:        PaletteNeutral,
	}
	return stage
}

// WithTitle sets the title row.
func (s *Stage) WithTitle(title string) *Stage {
	s.title = title
	return s
}

// WithFooter sets the footer row.
func (s *Stage) WithFooter(footer string) *Stage {
	s.footer = footer
	return s
}

// WithBorder sets the border variant.
func (s *Stage) WithBorder(variant BorderVariant) *Stage {
	s.border = variant
	return s
}

// WithAccent colours the border.
func (s *Stage) WithAccent(slot PaletteSlot) *Stage {
	if slot != nil {
		s.accent = slot
	}
	return s
}

// WithAppliers applies theme-based style modifiers to the frame.
func (s *Stage) WithAppliers(appliers ...StyleFunc) *Stage {
	s.AddAppliers(appliers...)
	return s
}

// View renders the stage.
func (s *Stage) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stage filling the context area. The body gets
// whatever is left after the border, title and footer rows.
func (s *Stage) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	frame := s.ComputeStyle(theme)
	frame = Border(s.border)(frame, theme)
	frame = BorderColor(s.accent)(frame, theme)
	frame = PaddingX(1)(frame, theme)

	innerWidth, innerHeight := 0, 0
	if ctx.Width > 0 {
		innerWidth = max(ctx.Width-frame.GetHorizontalFrameSize(), 1)
	}
	if ctx.Height > 0 {
		innerHeight = ctx.Height - frame.GetVerticalFrameSize()
		if s.title != "" {
			innerHeight--
		}
		if s.footer != "" {
			innerHeight--
		}
		innerHeight = max(innerHeight, 1)
	}

	rows := make([]string, 0, 3)
	if s.title != "" {
		rows = append(rows, TitleText(s.title).ViewWithContext(ctx.WithSize(innerWidth, 1)))
	}

	body := Render(s.body, ctx.WithSize(innerWidth, innerHeight))
	if innerWidth > 0 && innerHeight > 0 {
		body = lipgloss.Place(innerWidth, innerHeight, lipgloss.Center, lipgloss.Center, body)
	}
	rows = append(rows, body)

	if s.footer != "" {
		rows = append(rows, CaptionText(s.footer).ViewWithContext(ctx.WithSize(innerWidth, 1)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if innerWidth > 0 {
		frame = frame.Width(innerWidth + frame.GetHorizontalPadding())
	}
	return frame.Render(content)
}
