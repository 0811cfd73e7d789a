package viewer

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vitrine/internal/overlay"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Scheduler messages
	case scheduledMsg:
		if msg.run != nil {
			msg.run()
		}
		check := m.displayCheck()
		if m.sched == nil {
			return m, check
		}
		return m, tea.Batch(waitForSchedulerCmd(m.ctx, m.sched), check)

	case schedulerClosedMsg:
		return m, nil

	// Display messages
	case DisplayCheckedMsg:
		switch {
		case msg.Err == nil:
			m.ctrl.ReportDisplayReady(msg.Index)
		case errors.Is(msg.Err, context.Canceled):
		default:
			m.ctrl.ReportDisplayFailure(msg.Index)
		}
		return m, nil

	// Overlay messages
	case OpenOverlayMsg:
		return m.openOverlay(), nil

	case CloseOverlayMsg:
		return m.close(overlay.CloseReason(msg.Reason))
	}

	return m, nil
}

// handleKeyPress handles keyboard input for whichever surface is on top.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if m.ctrl.Catalog().IsEmpty() {
			return m, nil
		}
		return m.openOverlay(), nil

	case key.Matches(msg, m.keys.Close):
		if len(m.overlays) == 0 || !m.overlayOp.CloseOnEscape {
			return m, nil
		}
		return m.close(overlay.CloseEscape)
	}

	if k, ok := m.keys.carouselKey(msg); ok {
		m.ctrl.HandleKey(k)
		check := m.displayCheck()
		return m, check
	}
	return m, nil
}

// handleMouse feeds left-button drags to the gesture recognizer. A click that
// does not travel opens an overlay from the preview, and a click on an
// overlay's backdrop closes it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := float64(msg.X*cellWidth), float64(msg.Y*cellHeight)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if len(m.overlays) > 0 && m.onBackdrop(msg.X, msg.Y) {
			if m.overlayOp.CloseOnBackdrop {
				return m.close(overlay.CloseBackdrop)
			}
			return m, nil
		}
		m.pressed = true
		m.pressX, m.pressY = msg.X, msg.Y
		m.ctrl.PointerDown(x, y)
		return m, nil

	case tea.MouseActionMotion:
		if m.pressed {
			m.ctrl.PointerMove(x, y)
		}
		return m, nil

	case tea.MouseActionRelease:
		if !m.pressed {
			return m, nil
		}
		m.pressed = false
		navigated := m.ctrl.PointerUp(x, y)
		if !navigated && len(m.overlays) == 0 && msg.X == m.pressX && msg.Y == m.pressY &&
			!m.ctrl.Catalog().IsEmpty() {
			return m.openOverlay(), nil
		}
		check := m.displayCheck()
		return m, check
	}
	return m, nil
}

// close closes the topmost overlay. In overlay mode closing the last one
// ends the program.
func (m Model) close(reason overlay.CloseReason) (tea.Model, tea.Cmd) {
	if len(m.overlays) == 0 {
		return m, nil
	}
	m = m.closeOverlay(reason)
	if m.mode == ModeOverlay && len(m.overlays) == 0 {
		m.Shutdown()
		return m, tea.Quit
	}
	return m, nil
}

// onBackdrop reports whether a cell lies outside the overlay frame.
func (m Model) onBackdrop(x, y int) bool {
	return x < overlayInset || x >= m.width-overlayInset ||
		y < overlayInset || y >= m.height-overlayInset
}

// displayCheck issues a display check when the current index changed since
// the last one.
func (m *Model) displayCheck() tea.Cmd {
	if m.loader == nil || m.ctrl.Catalog().IsEmpty() {
		return nil
	}
	index := m.ctrl.Current()
	if index == m.checkedIndex {
		return nil
	}
	m.checkedIndex = index
	item, _ := m.ctrl.Catalog().At(index)
	return checkDisplayCmd(m.ctx, m.loader, index, item)
}
