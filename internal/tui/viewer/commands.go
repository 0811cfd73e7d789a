package viewer

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vitrine/internal/clock"
	"github.com/alexisbeaulieu97/vitrine/internal/media"
	"github.com/alexisbeaulieu97/vitrine/internal/preload"
)

// waitForSchedulerCmd blocks until the scheduler has a callback for the
// loop. Update runs the callback and issues the next wait.
func waitForSchedulerCmd(ctx context.Context, sched *clock.Realtime) tea.Cmd {
	return func() tea.Msg {
		fn, ok := sched.Next(ctx)
		if !ok {
			return schedulerClosedMsg{}
		}
		return scheduledMsg{run: fn}
	}
}

// checkDisplayCmd asks the loader whether the item at index can be shown.
func checkDisplayCmd(ctx context.Context, loader preload.Loader, index int, item media.Descriptor) tea.Cmd {
	return func() tea.Msg {
		err := loader.Load(ctx, index, item)
		return DisplayCheckedMsg{Index: index, Err: err}
	}
}
