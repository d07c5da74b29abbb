// Package carousel implements the slide transition protocol of an image gallery whose
// active index is owned by the caller.
package carousel

import (
	"sync"
	"time"
)

const (
	// DefaultHideDelay is the time between hiding the current slide and requesting the index change
	DefaultHideDelay = 800 * time.Millisecond
	// DefaultRevealDelay is the time between the index change and revealing the new slide
	DefaultRevealDelay = 300 * time.Millisecond
)

// Phase is the controller's step in the hide, swap, reveal cycle
type Phase int

const (
	Idle Phase = iota
	Hiding
	Revealed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Hiding:
		return "hiding"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// Preloader warms a cache for an image source. Failures are not reported.
type Preloader interface {
	Preload(src string)
}

// PreloaderFunc adapts a function to Preloader
type PreloaderFunc func(src string)

// Preload calls f(src)
func (f PreloaderFunc) Preload(src string) {
	f(src)
}

// Options configure a Controller
type Options struct {
	// Images are the slide sources, in display order
	Images []string
	// RevealedByDefault starts the controller in the Revealed phase
	RevealedByDefault bool
	// OnIndexChange asks the owner to switch its active index
	OnIndexChange func(index int)
	// OnPhaseChange is notified after every phase change
	OnPhaseChange func(phase Phase)
	Scheduler     Scheduler
	Preloader     Preloader
	HideDelay     time.Duration
	RevealDelay   time.Duration
}

// Controller runs at most one slide transition at a time. It never stores the active
// index; callers pass their current index with every request and receive the new one
// through OnIndexChange.
type Controller struct {
	mu sync.Mutex
	// cb is held while a scheduled callback runs and by Close
	cb sync.Mutex

	images        []string
	onIndexChange func(int)
	onPhaseChange func(Phase)
	scheduler     Scheduler
	preloader     Preloader
	hideDelay     time.Duration
	revealDelay   time.Duration

	phase    Phase
	mounted  bool
	inFlight bool
	closed   bool
	// generation invalidates callbacks of cancelled transitions
	generation uint64
	timer      Timer
}

// NewController creates a controller in the Revealed phase when RevealedByDefault is set,
// Idle otherwise.
func NewController(opts Options) *Controller {
	c := &Controller{
		images:        append([]string(nil), opts.Images...),
		onIndexChange: opts.OnIndexChange,
		onPhaseChange: opts.OnPhaseChange,
		scheduler:     opts.Scheduler,
		preloader:     opts.Preloader,
		hideDelay:     opts.HideDelay,
		revealDelay:   opts.RevealDelay,
		phase:         Idle,
	}
	if c.scheduler == nil {
		c.scheduler = TimerScheduler{}
	}
	if c.hideDelay <= 0 {
		c.hideDelay = DefaultHideDelay
	}
	if c.revealDelay <= 0 {
		c.revealDelay = DefaultRevealDelay
	}
	if c.onIndexChange == nil {
		c.onIndexChange = func(int) {}
	}
	if opts.RevealedByDefault {
		c.phase = Revealed
		c.mounted = true
	}
	return c
}

// Len returns the number of slides
func (c *Controller) Len() int {
	return len(c.images)
}

// Phase returns the current transition phase
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// InFlight reports whether a transition is running
func (c *Controller) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// Mount performs the first-paint reveal. It has no effect after the first call or when
// the controller started revealed.
func (c *Controller) Mount() {
	c.mu.Lock()
	if c.mounted || c.closed {
		c.mu.Unlock()
		return
	}
	c.mounted = true
	notify := c.setPhaseLocked(Revealed)
	c.mu.Unlock()
	notify()
}

// Next requests the slide after active, wrapping to the first one
func (c *Controller) Next(active int) bool {
	if len(c.images) < 2 {
		return false
	}
	return c.GoTo(active, NextIndex(active, len(c.images)))
}

// Prev requests the slide before active, wrapping to the last one
func (c *Controller) Prev(active int) bool {
	if len(c.images) < 2 {
		return false
	}
	return c.GoTo(active, PrevIndex(active, len(c.images)))
}

// GoTo starts a transition from active to target. It reports false and does nothing when
// target equals active, is out of range, or another transition is in flight.
func (c *Controller) GoTo(active, target int) bool {
	if target == active || target < 0 || target >= len(c.images) {
		return false
	}

	c.mu.Lock()
	if c.inFlight || c.closed {
		c.mu.Unlock()
		return false
	}
	c.inFlight = true
	c.generation++
	gen := c.generation
	notify := c.setPhaseLocked(Hiding)
	c.timer = c.scheduler.AfterFunc(c.hideDelay, func() {
		c.swap(gen, target)
	})
	c.mu.Unlock()

	if c.preloader != nil {
		c.preloader.Preload(c.images[target])
	}
	notify()
	return true
}

// Close cancels any pending transition. It waits for a scheduled callback that is already
// running, and none fires after Close returns. Callbacks must not call Close.
func (c *Controller) Close() {
	c.cb.Lock()
	defer c.cb.Unlock()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.generation++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.inFlight = false
}

func (c *Controller) swap(gen uint64, target int) {
	c.cb.Lock()
	defer c.cb.Unlock()

	c.mu.Lock()
	if c.closed || gen != c.generation {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	c.onIndexChange(target)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.generation {
		return
	}
	c.timer = c.scheduler.AfterFunc(c.revealDelay, func() {
		c.reveal(gen)
	})
}

func (c *Controller) reveal(gen uint64) {
	c.cb.Lock()
	defer c.cb.Unlock()

	c.mu.Lock()
	if c.closed || gen != c.generation {
		c.mu.Unlock()
		return
	}
	c.inFlight = false
	c.timer = nil
	notify := c.setPhaseLocked(Revealed)
	c.mu.Unlock()
	notify()
}

// setPhaseLocked must be called with mu held; the returned func runs the phase hook and
// must be called after unlocking.
func (c *Controller) setPhaseLocked(p Phase) func() {
	c.phase = p
	hook := c.onPhaseChange
	if hook == nil {
		return func() {}
	}
	return func() { hook(p) }
}

// NextIndex returns the index after active among n slides, wrapping to 0
func NextIndex(active, n int) int {
	if n <= 0 {
		return 0
	}
	return (active + 1) % n
}

// PrevIndex returns the index before active among n slides, wrapping to n-1
func PrevIndex(active, n int) int {
	if n <= 0 {
		return 0
	}
	return (active - 1 + n) % n
}
