package linechart

import (
	"errors"
	"sync"
	"time"
)

// DefaultDuration is used when AnimateOptions.Duration is zero.
const DefaultDuration = 300 * time.Millisecond

// DefaultFrameInterval is the TimerScheduler frame budget.
const DefaultFrameInterval = time.Second / 60

// Animate option validation errors.
var (
	ErrNilTarget       = errors.New("animate: nil target")
	ErrInvalidDuration = errors.New("animate: duration must be positive")
)

// Target is the element an animation writes to: anything exposing an
// attribute-set operation.
type Target interface {
	SetAttribute(name, value string)
}

// Clock supplies wall-clock time. Tests inject their own.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Scheduler delivers the next frame callback. The returned cancel
// drops the request if it has not fired yet. Implementations must not
// invoke fn synchronously from within RequestFrame.
type Scheduler interface {
	RequestFrame(fn func()) (cancel func())
}

// TimerScheduler schedules frames on stdlib timers.
type TimerScheduler struct {
	Interval time.Duration // 0 means DefaultFrameInterval
}

// RequestFrame implements Scheduler.
func (s TimerScheduler) RequestFrame(fn func()) func() {
	iv := s.Interval
	if iv <= 0 {
		iv = DefaultFrameInterval
	}
	t := time.AfterFunc(iv, fn)
	return func() { t.Stop() }
}

// AnimateOptions configures one animation run. The zero value animates
// for DefaultDuration with linear easing and no callbacks.
type AnimateOptions struct {
	Duration   time.Duration // 0 means DefaultDuration
	Easing     EasingFunc    // nil means Linear
	Path       *Options      // interpolation filters
	OnUpdate   func(path string, progress float64)
	OnComplete func(path string)
}

// Animator drives interpolation functions across frames, writing each
// result to the target's "d" attribute. Starting a new animation on a
// target supersedes any in-flight one for that target; superseded runs
// never complete. Animations on distinct targets are independent.
type Animator struct {
	clock Clock
	sched Scheduler

	mu     sync.Mutex
	active map[Target]*animation
}

// NewAnimator returns an Animator. A nil clock or scheduler selects
// the system clock and the default TimerScheduler.
func NewAnimator(clock Clock, sched Scheduler) *Animator {
	if clock == nil {
		clock = systemClock{}
	}
	if sched == nil {
		sched = TimerScheduler{}
	}
	return &Animator{
		clock:  clock,
		sched:  sched,
		active: make(map[Target]*animation),
	}
}

type animation struct {
	target      Target
	eval        func(float64) string
	start       time.Time
	duration    time.Duration
	easing      EasingFunc
	onUpdate    func(string, float64)
	onComplete  func(string)
	cancelFrame func()
	superseded  bool
}

// Animate fires and forgets a frame-driven animation of target's path
// attribute from fromPath to toPath. Option and path errors are
// returned before any frame is scheduled.
func (an *Animator) Animate(target Target, fromPath, toPath string, opts AnimateOptions) error {
	if target == nil {
		return ErrNilTarget
	}
	if opts.Duration < 0 {
		return ErrInvalidDuration
	}
	eval, err := Interpolate(fromPath, toPath, opts.Path)
	if err != nil {
		return err
	}

	anim := &animation{
		target:     target,
		eval:       eval,
		duration:   opts.Duration,
		easing:     opts.Easing,
		onUpdate:   opts.OnUpdate,
		onComplete: opts.OnComplete,
	}
	if anim.duration == 0 {
		anim.duration = DefaultDuration
	}
	if anim.easing == nil {
		anim.easing = Linear
	}

	an.mu.Lock()
	an.supersedeLocked(target)
	anim.start = an.clock.Now()
	an.active[target] = anim
	anim.cancelFrame = an.sched.RequestFrame(func() { an.step(anim) })
	an.mu.Unlock()
	return nil
}

// Cancel drops the in-flight animation on target, if any. The dropped
// run never completes.
func (an *Animator) Cancel(target Target) {
	an.mu.Lock()
	defer an.mu.Unlock()
	an.supersedeLocked(target)
	delete(an.active, target)
}

func (an *Animator) supersedeLocked(target Target) {
	if prev, ok := an.active[target]; ok {
		prev.superseded = true
		if prev.cancelFrame != nil {
			prev.cancelFrame()
		}
	}
}

// step runs one frame: derive progress from the clock, evaluate the
// interpolation function at the eased progress, then apply and notify.
// The attribute write happens only after a path string was produced.
func (an *Animator) step(anim *animation) {
	an.mu.Lock()
	if anim.superseded {
		an.mu.Unlock()
		return
	}

	progress := float64(an.clock.Now().Sub(anim.start)) / float64(anim.duration)
	done := progress >= 1
	if done {
		progress = 1
	}
	eased := anim.easing(progress)
	path := anim.eval(eased)

	if done {
		delete(an.active, anim.target)
	} else {
		anim.cancelFrame = an.sched.RequestFrame(func() { an.step(anim) })
	}
	an.mu.Unlock()

	anim.target.SetAttribute("d", path)
	if anim.onUpdate != nil {
		anim.onUpdate(path, eased)
	}
	if done && anim.onComplete != nil {
		anim.onComplete(path)
	}
}
