package autoadvance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/vitrine/internal/clock"
)

func newTimer() (*Timer, *clock.Manual, *int) {
	clk := clock.NewManual(time.Time{})
	fired := 0
	return New(clk, func() { fired++ }), clk, &fired
}

func TestFiresEveryInterval(t *testing.T) {
	t.Parallel()

	timer, clk, fired := newTimer()
	timer.Start(time.Second)

	clk.Advance(3500 * time.Millisecond)
	assert.Equal(t, 3, *fired)
	assert.True(t, timer.Running())
}

func TestSuspendAndResumeRestartsFromZero(t *testing.T) {
	t.Parallel()

	timer, clk, fired := newTimer()
	timer.Start(time.Second)

	clk.Advance(900 * time.Millisecond)
	timer.Suspend()
	assert.True(t, timer.Suspended())

	clk.Advance(5 * time.Second)
	assert.Equal(t, 0, *fired, "suspended timer never fires")

	timer.Resume()
	clk.Advance(900 * time.Millisecond)
	assert.Equal(t, 0, *fired, "the partial tick before suspension is not carried over")

	clk.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, *fired)
}

func TestResetBuysAFullInterval(t *testing.T) {
	t.Parallel()

	timer, clk, fired := newTimer()
	timer.Start(time.Second)

	clk.Advance(800 * time.Millisecond)
	timer.Reset()
	clk.Advance(800 * time.Millisecond)
	assert.Equal(t, 0, *fired)

	clk.Advance(200 * time.Millisecond)
	assert.Equal(t, 1, *fired)
}

func TestResetFromInsideFireDoesNotDoubleSchedule(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(time.Time{})
	fired := 0
	var timer *Timer
	timer = New(clk, func() {
		fired++
		timer.Reset()
	})
	timer.Start(time.Second)

	clk.Advance(2500 * time.Millisecond)
	assert.Equal(t, 2, fired)
	assert.Equal(t, 1, clk.Pending())
}

func TestStopCancelsPendingTick(t *testing.T) {
	t.Parallel()

	timer, clk, fired := newTimer()
	timer.Start(time.Second)
	timer.Stop()

	clk.Advance(10 * time.Second)
	assert.Equal(t, 0, *fired)
	assert.False(t, timer.Running())
	assert.Equal(t, 0, clk.Pending())
}

func TestStartWhileSuspendedWaitsForResume(t *testing.T) {
	t.Parallel()

	timer, clk, fired := newTimer()
	timer.Suspend()
	timer.Start(time.Second)

	clk.Advance(3 * time.Second)
	assert.Equal(t, 0, *fired)

	timer.Resume()
	clk.Advance(time.Second)
	assert.Equal(t, 1, *fired)
}

func TestNonPositiveIntervalStops(t *testing.T) {
	t.Parallel()

	timer, clk, fired := newTimer()
	timer.Start(0)
	clk.Advance(time.Minute)
	assert.Equal(t, 0, *fired)
	assert.False(t, timer.Running())
}
