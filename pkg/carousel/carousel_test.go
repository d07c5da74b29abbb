package carousel

import (
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeScheduler fires callbacks only when the test advances its clock.
type fakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	s       *fakeScheduler
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{s: s, at: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward, firing due timers in order, including timers
// scheduled by fired callbacks.
func (s *fakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()
	for {
		s.mu.Lock()
		sort.SliceStable(s.timers, func(i, j int) bool { return s.timers[i].at < s.timers[j].at })
		var next *fakeTimer
		for _, t := range s.timers {
			if !t.fired && !t.stopped && t.at <= target {
				next = t
				break
			}
		}
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		next.fired = true
		s.now = next.at
		s.mu.Unlock()
		next.f()
	}
}

func (s *fakeScheduler) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, t := range s.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

type harness struct {
	sched    *fakeScheduler
	ctrl     *Controller
	active   int
	changes  []int
	preloads []string
	phases   []Phase
}

func newHarness(t *testing.T, images []string, revealed bool) *harness {
	t.Helper()
	h := &harness{sched: &fakeScheduler{}}
	h.ctrl = NewController(Options{
		Images:            images,
		RevealedByDefault: revealed,
		Scheduler:         h.sched,
		OnIndexChange: func(i int) {
			h.changes = append(h.changes, i)
			h.active = i
		},
		OnPhaseChange: func(p Phase) { h.phases = append(h.phases, p) },
		Preloader:     PreloaderFunc(func(src string) { h.preloads = append(h.preloads, src) }),
	})
	t.Cleanup(h.ctrl.Close)
	return h
}

var images = []string{"/a.png", "/b.png", "/c.png"}

func TestInitialPhase(t *testing.T) {
	t.Parallel()

	h := newHarness(t, images, false)
	require.Equal(t, Idle, h.ctrl.Phase())
	h.ctrl.Mount()
	require.Equal(t, Revealed, h.ctrl.Phase())
	h.ctrl.Mount()
	require.Equal(t, []Phase{Revealed}, h.phases, "mount reveals once")

	r := newHarness(t, images, true)
	require.Equal(t, Revealed, r.ctrl.Phase())
	r.ctrl.Mount()
	require.Empty(t, r.phases)
}

func TestFullTransition(t *testing.T) {
	t.Parallel()

	h := newHarness(t, images, true)

	require.True(t, h.ctrl.GoTo(h.active, 2))
	require.Equal(t, Hiding, h.ctrl.Phase())
	require.True(t, h.ctrl.InFlight())
	require.Equal(t, []string{"/c.png"}, h.preloads)

	h.sched.Advance(799 * time.Millisecond)
	require.Empty(t, h.changes)

	h.sched.Advance(time.Millisecond)
	require.Equal(t, []int{2}, h.changes)
	require.Equal(t, Hiding, h.ctrl.Phase())

	h.sched.Advance(299 * time.Millisecond)
	require.Equal(t, Hiding, h.ctrl.Phase())

	h.sched.Advance(time.Millisecond)
	require.Equal(t, Revealed, h.ctrl.Phase())
	require.False(t, h.ctrl.InFlight())
	require.Equal(t, 2, h.active)
	require.Equal(t, []Phase{Hiding, Revealed}, h.phases)
}

func TestSameIndexIsNoop(t *testing.T) {
	t.Parallel()

	h := newHarness(t, images, true)
	require.False(t, h.ctrl.GoTo(0, 0))
	require.Equal(t, Revealed, h.ctrl.Phase())
	require.Zero(t, h.sched.pending())
	require.Empty(t, h.preloads)
}

func TestRequestsDuringTransitionAreIgnored(t *testing.T) {
	t.Parallel()

	h := newHarness(t, images, true)
	require.True(t, h.ctrl.Next(h.active))

	require.False(t, h.ctrl.GoTo(h.active, 2))
	require.False(t, h.ctrl.Prev(h.active))
	h.sched.Advance(800 * time.Millisecond)
	require.False(t, h.ctrl.Next(h.active), "still in flight until revealed")

	h.sched.Advance(300 * time.Millisecond)
	require.Equal(t, []int{1}, h.changes)

	require.True(t, h.ctrl.Next(h.active))
	h.sched.Advance(time.Second + 100*time.Millisecond)
	require.Equal(t, []int{1, 2}, h.changes)
}

func TestWrapAround(t *testing.T) {
	t.Parallel()

	h := newHarness(t, images, true)
	h.active = 2
	require.True(t, h.ctrl.Next(h.active))
	h.sched.Advance(1100 * time.Millisecond)
	require.Equal(t, 0, h.active)

	require.True(t, h.ctrl.Prev(h.active))
	h.sched.Advance(1100 * time.Millisecond)
	require.Equal(t, 2, h.active)
	require.Equal(t, []string{"/a.png", "/c.png"}, h.preloads)
}

func TestSingleImageHasNoNavigation(t *testing.T) {
	t.Parallel()

	h := newHarness(t, []string{"/only.png"}, true)
	require.False(t, h.ctrl.Next(0))
	require.False(t, h.ctrl.Prev(0))
	require.Zero(t, h.sched.pending())
}

func TestOutOfRangeTargetIsIgnored(t *testing.T) {
	t.Parallel()

	h := newHarness(t, images, true)
	require.False(t, h.ctrl.GoTo(0, 3))
	require.False(t, h.ctrl.GoTo(0, -1))
}

func TestCloseCancelsPendingTransition(t *testing.T) {
	t.Parallel()

	h := newHarness(t, images, true)
	require.True(t, h.ctrl.GoTo(0, 1))
	h.ctrl.Close()
	h.sched.Advance(2 * time.Second)
	require.Empty(t, h.changes)
	require.Equal(t, []Phase{Hiding}, h.phases)
	require.False(t, h.ctrl.GoTo(0, 1), "closed controller ignores requests")
}

func TestCloseBetweenSwapAndReveal(t *testing.T) {
	t.Parallel()

	h := newHarness(t, images, true)
	require.True(t, h.ctrl.GoTo(0, 1))
	h.sched.Advance(800 * time.Millisecond)
	require.Equal(t, []int{1}, h.changes)

	h.ctrl.Close()
	h.sched.Advance(time.Second)
	require.Equal(t, []Phase{Hiding}, h.phases)
	require.Zero(t, h.sched.pending())
}

func TestCloseWaitsForRunningCallback(t *testing.T) {
	t.Parallel()

	sched := &fakeScheduler{}
	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	ctrl := NewController(Options{
		Images:            images,
		RevealedByDefault: true,
		Scheduler:         sched,
		OnIndexChange: func(int) {
			close(entered)
			<-release
			calls.Add(1)
		},
	})
	require.True(t, ctrl.GoTo(0, 1))

	advanced := make(chan struct{})
	go func() {
		sched.Advance(800 * time.Millisecond)
		close(advanced)
	}()
	<-entered

	closed := make(chan struct{})
	go func() {
		ctrl.Close()
		close(closed)
	}()

	select {
	case <-closed:
		t.Fatal("Close returned while the index callback was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-closed
	<-advanced
	require.EqualValues(t, 1, calls.Load())
	require.Zero(t, sched.pending(), "reveal cancelled by Close")
	require.False(t, ctrl.InFlight())
}

func TestIndexHelpers(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, NextIndex(4, 5))
	require.Equal(t, 3, NextIndex(2, 5))
	require.Equal(t, 4, PrevIndex(0, 5))
	require.Equal(t, 1, PrevIndex(2, 5))
	require.Equal(t, 0, NextIndex(0, 0))
}

func TestTimerSchedulerStops(t *testing.T) {
	t.Parallel()

	fired := make(chan struct{}, 1)
	timer := TimerScheduler{}.AfterFunc(time.Hour, func() { fired <- struct{}{} })
	require.True(t, timer.Stop())
	require.Len(t, fired, 0)
}
