package reveal

import (
	"container/heap"
	"time"
)

// Clock supplies the current time to a Queue.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function into a Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Queue is a Scheduler whose timers only run when Advance is called. This keeps every reveal on
// the goroutine that drives the queue, which for the UI is the bubbletea update loop.
type Queue struct {
	clock  Clock
	timers timerHeap
	seq    uint64
}

func NewQueue(clock Clock) *Queue {
	if clock == nil {
		clock = SystemClock
	}

	return &Queue{clock: clock}
}

// Schedule implements Scheduler.
func (q *Queue) Schedule(delay time.Duration, fn func()) func() {
	q.seq++
	item := &timer{
		deadline: q.clock.Now().Add(max(delay, 0)),
		seq:      q.seq,
		fn:       fn,
	}
	heap.Push(&q.timers, item)

	return func() {
		if item.index < 0 {
			return
		}

		heap.Remove(&q.timers, item.index)
	}
}

// Advance runs every timer whose deadline is at or before now, in deadline order. Timers sharing
// a deadline run in the order they were scheduled. It returns the number of timers run.
func (q *Queue) Advance(now time.Time) int {
	fired := 0
	for len(q.timers) > 0 && !q.timers[0].deadline.After(now) {
		item, _ := heap.Pop(&q.timers).(*timer)
		item.fn()
		fired++
	}

	return fired
}

// Len is the number of timers waiting to run.
func (q *Queue) Len() int {
	return len(q.timers)
}

type timer struct {
	deadline time.Time
	seq      uint64
	fn       func()
	index    int
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}

	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	item, _ := x.(*timer)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]

	return item
}
