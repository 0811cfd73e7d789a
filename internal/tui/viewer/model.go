// Package viewer hosts a carousel in a Bubble Tea program. The inline preview
// and any number of stacked full-screen overlays draw the same controller
// with different renderers.
package viewer

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vitrine/internal/carousel"
	"github.com/alexisbeaulieu97/vitrine/internal/clock"
	"github.com/alexisbeaulieu97/vitrine/internal/logger"
	"github.com/alexisbeaulieu97/vitrine/internal/metrics"
	"github.com/alexisbeaulieu97/vitrine/internal/overlay"
	"github.com/alexisbeaulieu97/vitrine/internal/preload"
	"github.com/alexisbeaulieu97/vitrine/internal/ui/components"
)

const (
	// cellWidth and cellHeight approximate the pixel size of one terminal
	// cell so mouse travel can be fed to the pixel-based gesture thresholds.
	cellWidth  = 8
	cellHeight = 16

	// overlayInset is the backdrop margin around an overlay frame, in cells.
	overlayInset = 2
)

// OverlayOptions configures full-screen surfaces.
type OverlayOptions struct {
	// ZIndex pins every overlay to one stacking order. Zero lets the stack
	// assign them.
	ZIndex          int
	CloseOnEscape   bool
	CloseOnBackdrop bool
}

// Options configures a Model.
type Options struct {
	Controller *carousel.Controller
	// Scheduler is drained by the program loop. Leave nil when the
	// controller runs on a scheduler someone else drives.
	Scheduler *clock.Realtime
	// Loader checks that the current item can be displayed. Nil treats
	// every item as displayable.
	Loader  preload.Loader
	Mode    Mode
	Title   string
	Theme   components.Theme
	Overlay OverlayOptions
	Stack   *overlay.Stack
	Logger  *logger.Logger
	Metrics *metrics.Metrics
}

// Model is the viewer program model.
type Model struct {
	// Core data
	ctrl   *carousel.Controller
	sched  *clock.Realtime
	loader preload.Loader
	ctx    context.Context
	cancel context.CancelFunc

	// Surfaces
	mode      Mode
	title     string
	overlays  []*overlay.Surface
	overlayOp OverlayOptions
	stack     *overlay.Stack

	// Component state
	keys    KeyMap
	help    help.Model
	spinner spinner.Model
	theme   components.Theme

	// Pointer state
	pressed      bool
	pressX       int
	pressY       int
	checkedIndex int

	// Dimensions
	width  int
	height int

	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewModel creates a viewer model around opts.Controller. The controller is
// mounted here so the first frame already reflects it.
func NewModel(opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	theme := opts.Theme
	if theme.Variants == nil {
		theme = components.DefaultTheme()
	}
	stack := opts.Stack
	if stack == nil {
		stack = overlay.Default
	}
	title := opts.Title
	if title == "" {
		title = "vitrine"
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		ctrl:         opts.Controller,
		sched:        opts.Scheduler,
		loader:       opts.Loader,
		ctx:          ctx,
		cancel:       cancel,
		mode:         opts.Mode,
		title:        title,
		overlayOp:    opts.Overlay,
		stack:        stack,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		spinner:      s,
		theme:        theme,
		checkedIndex: -1,
		width:        80,
		height:       24,
		log:          opts.Logger.Component("viewer"),
		metrics:      opts.Metrics,
	}
	m.ctrl.Mount()
	if m.loader != nil && !m.ctrl.Catalog().IsEmpty() {
		m.checkedIndex = m.ctrl.Current()
	}
	return m
}

// Init starts the spinner, the scheduler pump and the first display check.
// In overlay mode the first overlay opens immediately.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
	}
	if m.sched != nil {
		cmds = append(cmds, waitForSchedulerCmd(m.ctx, m.sched))
	}
	if m.mode == ModeOverlay {
		cmds = append(cmds, func() tea.Msg { return OpenOverlayMsg{} })
	}
	if m.loader != nil && !m.ctrl.Catalog().IsEmpty() {
		item, _ := m.ctrl.Catalog().At(m.ctrl.Current())
		cmds = append(cmds, checkDisplayCmd(m.ctx, m.loader, m.ctrl.Current(), item))
	}
	return tea.Batch(cmds...)
}

// Controller returns the controller both surfaces draw.
func (m Model) Controller() *carousel.Controller {
	return m.ctrl
}

// OverlayDepth returns the number of open overlays.
func (m Model) OverlayDepth() int {
	return len(m.overlays)
}

// TopOverlay returns the topmost open overlay.
func (m Model) TopOverlay() (*overlay.Surface, bool) {
	if len(m.overlays) == 0 {
		return nil, false
	}
	return m.overlays[len(m.overlays)-1], true
}

// Shutdown closes every overlay, the controller and the scheduler. It is
// safe to call more than once.
func (m Model) Shutdown() {
	for i := len(m.overlays) - 1; i >= 0; i-- {
		m.overlays[i].Close(overlay.CloseUnmount)
	}
	m.metrics.SetOpenOverlays(0)
	m.ctrl.Close()
	if m.cancel != nil {
		m.cancel()
	}
	if m.sched != nil {
		m.sched.Close()
	}
}

func (m Model) openOverlay() Model {
	opts := []overlay.SurfaceOption{overlay.WithStack(m.stack)}
	if m.overlayOp.ZIndex > 0 {
		opts = append(opts, overlay.WithZIndex(m.overlayOp.ZIndex))
	}
	surface := overlay.NewSurface(opts...)
	z := surface.Open()
	m.overlays = append(m.overlays[:len(m.overlays):len(m.overlays)], surface)
	m.metrics.SetOpenOverlays(len(m.overlays))
	m.log.Debug("overlay opened", "overlay", surface.ID(), "z", z, "depth", len(m.overlays))
	return m
}

func (m Model) closeOverlay(reason overlay.CloseReason) Model {
	top, ok := m.TopOverlay()
	if !ok {
		return m
	}
	if top.Close(reason) {
		m.log.Debug("overlay closed", "overlay", top.ID(), "reason", string(reason))
	}
	m.overlays = m.overlays[:len(m.overlays)-1]
	m.metrics.SetOpenOverlays(len(m.overlays))
	return m
}

// renderContext returns the context for a surface of the given size.
func (m Model) renderContext(width, height int) components.RenderContext {
	return components.DefaultContext().WithTheme(m.theme).WithSize(width, height)
}
