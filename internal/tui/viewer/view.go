package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vitrine/internal/carousel"
	"github.com/alexisbeaulieu97/vitrine/internal/media"
	"github.com/alexisbeaulieu97/vitrine/internal/ui/components"
)

// arrowWidth is the rendered width of an arrow column.
const arrowWidth = 3

// View renders the topmost surface.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if top, ok := m.TopOverlay(); ok {
		return m.ctrl.Render(func(f carousel.Frame) string {
			return m.renderOverlay(f, top.ZIndex())
		})
	}
	return m.ctrl.Render(m.renderPreview)
}

// renderPreview draws the inline card: header, stage between arrows, dots,
// badges and the help footer.
func (m Model) renderPreview(f carousel.Frame) string {
	helpView := footerStyle.Render(m.help.View(m.keys))
	stageHeight := max(m.height-3-lipgloss.Height(helpView), 5)

	rows := []string{
		m.renderHeader(f),
		m.renderStageRow(f, m.width, stageHeight, components.BorderVariantRounded, components.PaletteNeutral),
		m.renderDots(f),
		m.renderBadges(f),
		helpView,
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderOverlay draws the full-screen surface over a shaded backdrop.
func (m Model) renderOverlay(f carousel.Frame, z int) string {
	width := max(m.width-2*overlayInset, 10)
	height := max(m.height-2*overlayInset, 5)

	badges := []*components.Badge{
		components.NewBadge(fmt.Sprintf("z %d", z)).WithVariant(components.BadgeVariantPrimary),
		components.NewBadge(fmt.Sprintf("layer %d", len(m.overlays))),
	}
	if m.overlayOp.CloseOnEscape {
		badges = append(badges, components.NewBadge("esc close"))
	}
	top := components.Badges(m.renderContext(width, 1), badges...)

	stageHeight := max(height-2, 3)
	body := lipgloss.JoinVertical(lipgloss.Left,
		top,
		m.renderStageRow(f, width, stageHeight, components.BorderVariantThick, components.PalettePrimary),
		m.renderDots(f),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(shadeColor),
	)
}

// renderHeader renders the title with the position counter.
func (m Model) renderHeader(f carousel.Frame) string {
	counter := ""
	if f.Total > 0 {
		counter = fmt.Sprintf("%d / %d", f.Index+1, f.Total)
		if mark := transitionMark(f); mark != "" {
			counter += " " + mark
		}
	}
	return titleStyle.Render(m.title) + counterStyle.Render(counter)
}

// renderStageRow renders the stage flanked by arrows when they are shown.
func (m Model) renderStageRow(f carousel.Frame, width, height int, border components.BorderVariant, accent components.PaletteSlot) string {
	stageWidth := width
	if f.ShowArrows {
		stageWidth = max(width-2*arrowWidth, 10)
	}

	stage := components.NewStage(m.itemBody(f)).
		WithBorder(border).
		WithAccent(accent)
	if !f.Empty() {
		stage.WithFooter(f.Item.Alt())
	}
	view := stage.ViewWithContext(m.renderContext(stageWidth, height))
	if !f.ShowArrows {
		return view
	}

	ctx := m.renderContext(0, height)
	prev := components.NewArrow(components.ArrowPrevious).
		WithDisabled(!f.CanPrevious).
		WithActive(f.Swiping).
		ViewWithContext(ctx)
	next := components.NewArrow(components.ArrowNext).
		WithDisabled(!f.CanNext).
		WithActive(f.Swiping).
		ViewWithContext(ctx)
	return lipgloss.JoinHorizontal(lipgloss.Center, prev, view, next)
}

// renderDots renders the position indicator, or an empty row.
func (m Model) renderDots(f carousel.Frame) string {
	if !f.ShowDots {
		return ""
	}
	dots := components.NewDots(f.Total, f.Index).ViewWithContext(m.renderContext(0, 0))
	if m.width <= 0 {
		return dots
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, dots)
}

// renderBadges renders the status badges for the current item.
func (m Model) renderBadges(f carousel.Frame) string {
	if f.Empty() {
		return ""
	}
	var body bodyVisitor
	media.Visit(f.Index, f.Item, &body)

	badges := []*components.Badge{
		components.NewBadge(f.Item.Kind().String()).WithVariant(components.BadgeVariantPrimary),
	}
	if body.video != nil {
		if f.VideoControls.ShowDuration && body.video.DurationLabel != "" {
			badges = append(badges, components.NewBadge(body.video.DurationLabel).WithVariant(components.BadgeVariantInfo))
		}
		if f.VideoControls.Muted {
			badges = append(badges, components.NewBadge("muted"))
		}
	}
	if f.AutoAdvancing {
		badges = append(badges, components.NewBadge("auto").WithVariant(components.BadgeVariantSuccess))
	}
	if f.Swiping {
		badges = append(badges, components.NewBadge("swipe").WithVariant(components.BadgeVariantWarning))
	}
	return components.Badges(m.renderContext(m.width, 1), badges...)
}

// itemBody picks what the stage shows for the frame.
func (m Model) itemBody(f carousel.Frame) components.Renderable {
	switch {
	case f.Empty():
		return components.CaptionText("No media")
	case f.Failed:
		return components.NewPlaceholder(f.Item.Alt())
	case !f.Loaded:
		return components.NewText(m.spinner.View() + " loading")
	}
	body := bodyVisitor{playing: f.Playing}
	media.Visit(f.Index, f.Item, &body)
	return body.content
}

// bodyVisitor renders each variant as terminal text.
type bodyVisitor struct {
	playing bool
	content components.Renderable
	video   *media.Video
}

func (b *bodyVisitor) VisitImage(_ int, item media.Image) {
	b.content = components.NewText(describe("▣ image", item.Source))
}

func (b *bodyVisitor) VisitVideo(_ int, item media.Video) {
	b.video = &item
	state := "❚❚ paused"
	if b.playing {
		state = "▶ playing"
	}
	lines := []string{glyphStyle.Render(state), sourceStyle.Render(item.Source)}
	if item.PosterSource != "" {
		lines = append(lines, sourceStyle.Render("poster "+item.PosterSource))
	}
	b.content = components.NewText(strings.Join(lines, "\n"))
}

func (b *bodyVisitor) VisitMap(_ int, item media.Map) {
	b.content = components.NewText(describe("⌖ map", item.Source))
}

func (b *bodyVisitor) VisitEmbedded(_ int, item media.Embedded) {
	if item.Content == nil {
		b.content = components.NewText("")
		return
	}
	b.content = item.Content
}

func describe(glyph, source string) string {
	return glyphStyle.Render(glyph) + "\n" + sourceStyle.Render(source)
}

// transitionMark hints at an in-flight transition in the header.
func transitionMark(f carousel.Frame) string {
	if !f.Transitioning {
		return ""
	}
	if f.Transition == carousel.TransitionFade {
		return "~"
	}
	if f.Direction < 0 {
		return "←"
	}
	return "→"
}
