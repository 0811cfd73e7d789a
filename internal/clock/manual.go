package clock

import (
	"container/heap"
	"sync"
	"time"
)

// Manual is a virtual-time Scheduler. Callbacks run only inside Advance or
// Flush, on the calling goroutine, in due-time order (ties in scheduling
// order).
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	queue taskHeap
}

// NewManual returns a manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current virtual time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc schedules fn at Now()+d.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Task {
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTask{owner: m, when: m.now.Add(d), seq: m.seq, fn: fn, index: -1}
	heap.Push(&m.queue, t)
	return t
}

// Post schedules fn at the current virtual time.
func (m *Manual) Post(fn func()) {
	m.AfterFunc(0, fn)
}

// Advance moves virtual time forward by d, running every task that falls due
// along the way, including tasks scheduled by those callbacks.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		if m.queue.Len() == 0 || m.queue[0].when.After(target) {
			m.now = target
			m.mu.Unlock()
			return
		}
		t := heap.Pop(&m.queue).(*manualTask)
		if t.when.After(m.now) {
			m.now = t.when
		}
		fn := t.fn
		m.mu.Unlock()

		fn()
	}
}

// Flush runs every task that is already due without moving time.
func (m *Manual) Flush() {
	m.Advance(0)
}

// Pending reports how many tasks are waiting.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queue.Len()
}

type manualTask struct {
	owner *Manual
	when  time.Time
	seq   uint64
	fn    func()
	index int
}

func (t *manualTask) Stop() bool {
	m := t.owner
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.index < 0 {
		return false
	}
	heap.Remove(&m.queue, t.index)
	return true
}

type taskHeap []*manualTask

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].when.Equal(h[j].when) {
		return h[i].seq < h[j].seq
	}
	return h[i].when.Before(h[j].when)
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	t := x.(*manualTask)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
