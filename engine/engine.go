// Package engine implements the scroll physics and snap-index core of a slide
// carousel: an axis-agnostic measurement model, snap-point and limit
// calculation, a spring-damper scroll body, drag-to-velocity translation, and
// the frame loop tying them together. The engine owns no I/O; geometry comes
// from an injected MeasureProvider, pointer input arrives as axis-reduced
// events, frames come from an injected Scheduler, and rendering happens in a
// caller-supplied sink.
//
// Everything is single-threaded and cooperative: all mutation happens inside
// one frame callback or one event-handler call, in a fixed order per frame
// (physics, then render, then event emission), so listeners always observe a
// consistent post-update state.
package engine

import (
	"fmt"
	"time"

	"github.com/curiousTauseef/embla-carousel/core"
	"github.com/curiousTauseef/embla-carousel/event"
	"github.com/curiousTauseef/embla-carousel/input"
)

// RenderFunc positions content visually once per frame. loopPoints is nil
// outside loop mode
type RenderFunc func(location float64, loopPoints []LoopPoint)

// Engine aggregates the carousel core for one activation. ReInit discards the
// whole engine and builds a fresh one so options and measurements always form
// a consistent snapshot; only the event emitter survives a rebuild
type Engine struct {
	opts      Options
	scheduler Scheduler
	render    RenderFunc

	measurements Measurements
	limit        core.Limit
	snaps        []float64

	current  Index
	previous Index

	body      *ScrollBody
	animation *Animation
	scrollTo  *ScrollTo
	drag      *DragHandler
	inView    SlidesInView
	progress  ScrollProgress
	looper    *SlideLooper

	emitter *event.Emitter
	store   *event.Store

	panicHook func(r any)
	destroyed bool
}

// New builds and activates an engine. A nil provider or scheduler and invalid
// options are fatal; no partial engine is constructed
func New(provider MeasureProvider, scheduler Scheduler, opts Options, render RenderFunc) (*Engine, error) {
	return newEngine(provider, scheduler, opts, render, event.NewEmitter())
}

func newEngine(provider MeasureProvider, scheduler Scheduler, opts Options,
	render RenderFunc, emitter *event.Emitter) (*Engine, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: nil measure provider", ErrConfiguration)
	}
	if scheduler == nil {
		return nil, fmt.Errorf("%w: nil scheduler", ErrConfiguration)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	m := measure(opts.Axis, provider)
	groups := slideGroups(m, opts.SlidesToScroll)
	snaps := scrollSnaps(m, groups)
	limit := measureLimit(m, snaps, opts.Loop)
	if !opts.Loop {
		snaps = containSnaps(snaps, limit)
	}

	e := &Engine{
		opts:         opts,
		scheduler:    scheduler,
		render:       render,
		measurements: m,
		limit:        limit,
		snaps:        snaps,
		emitter:      emitter,
		store:        event.NewStore(),
		inView:       NewSlidesInView(m, opts.Loop),
		progress:     NewScrollProgress(limit),
		looper:       NewSlideLooper(m),
	}

	e.current = NewIndex(opts.StartIndex, len(snaps), opts.Loop)
	e.previous = e.current.Clone()

	var startLocation float64
	if len(snaps) > 0 {
		startLocation = snaps[e.current.Get()]
	}
	e.body = NewScrollBody(startLocation, opts.Speed, opts.Mass)
	e.animation = NewAnimation(scheduler, e.frame, e.handleFramePanic)
	e.scrollTo = NewScrollTo(e.body, e.animation, e.emitter, limit, snaps,
		opts.Loop, &e.current, &e.previous)
	e.drag = NewDragHandler(e.body, e.scrollTo, e.animation, e.emitter, limit,
		opts.Loop, opts.Draggable)

	e.store.Add(e.animation.Stop)
	return e, nil
}

// frame is the per-frame pipeline: physics strictly before render, render
// strictly before event emission
func (e *Engine) frame(now time.Time) bool {
	e.body.Seek()
	if e.opts.Loop && e.looper.CanLoop() {
		e.wrapLocation()
	}

	location := e.body.Location()
	if e.render != nil {
		e.render(location, e.loopPoints(location))
	}
	e.emitter.Emit(event.Scroll)

	if e.body.Settled() && !e.drag.PointerDown() {
		e.emitter.Emit(event.Settle)
		return false
	}
	return true
}

// wrapLocation shifts location and target together by the content span when
// the body crosses a loop boundary, keeping coordinates bounded without a
// visible jump
func (e *Engine) wrapLocation() {
	location := e.body.Location()
	if location >= e.limit.Min && location <= e.limit.Max {
		return
	}
	wrapped := e.limit.RemoveOffset(location)
	if wrapped == location {
		return
	}
	shift := wrapped - location
	e.body.SetLocation(location + shift)
	e.body.SetTarget(e.body.Target() + shift)
}

func (e *Engine) loopPoints(location float64) []LoopPoint {
	if !e.opts.Loop || !e.looper.CanLoop() {
		return nil
	}
	return e.looper.LoopPoints(location)
}

func (e *Engine) handleFramePanic(r any) {
	// The loop is already stopped; the hook only observes
	if e.panicHook != nil {
		e.panicHook(r)
	}
}

// SetPanicHook installs an observer for recovered frame panics. A panicking
// frame stops this engine's loop only; without a hook the value is dropped
func (e *Engine) SetPanicHook(fn func(r any)) {
	e.panicHook = fn
}

// On registers an event handler and returns its disposer. Handlers survive
// ReInit rebuilds and are released on Destroy
func (e *Engine) On(t event.Type, h event.Handler) func() {
	return e.emitter.On(t, h)
}

// Emit fires an event to all registered handlers. Exposed so the activation
// glue can signal init once its listeners are wired
func (e *Engine) Emit(t event.Type) {
	e.emitter.Emit(t)
}

// HandlePointer feeds one pointer event into the drag handler
func (e *Engine) HandlePointer(ev input.PointerEvent) {
	if e.destroyed {
		return
	}
	e.drag.Handle(ev)
}

// ScrollToIndex targets a snap point, wrapping or clamping out-of-range
// input. Requesting the already-settled current index is a no-op
func (e *Engine) ScrollToIndex(i, direction int) {
	e.scrollTo.Index(e.current.Set(i), direction)
}

// ScrollNext advances one snap point; forward motion travels in the negative
// position direction
func (e *Engine) ScrollNext() {
	e.scrollTo.Index(e.current.Add(1), -1)
}

// ScrollPrev goes back one snap point
func (e *Engine) ScrollPrev() {
	e.scrollTo.Index(e.current.Add(-1), 1)
}

// ScrollBy offsets the current target by a raw distance, optionally
// re-snapping to the nearest snap point
func (e *Engine) ScrollBy(distance float64, snap bool) {
	e.scrollTo.Distance(distance, snap)
}

// CanScrollNext reports whether ScrollNext would move
func (e *Engine) CanScrollNext() bool {
	if e.opts.Loop {
		return len(e.snaps) > 1
	}
	return e.current.Get() < e.current.Max()
}

// CanScrollPrev reports whether ScrollPrev would move
func (e *Engine) CanScrollPrev() bool {
	if e.opts.Loop {
		return len(e.snaps) > 1
	}
	return e.current.Get() > e.current.Min()
}

// SelectedIndex returns the currently targeted snap index
func (e *Engine) SelectedIndex() int {
	return e.current.Get()
}

// PreviousIndex returns the snap index targeted before the current one
func (e *Engine) PreviousIndex() int {
	return e.previous.Get()
}

// Location returns the scroll body position
func (e *Engine) Location() float64 {
	return e.body.Location()
}

// Progress returns normalized scroll progress in [0,1]
func (e *Engine) Progress() float64 {
	return e.progress.Get(e.body.Location())
}

// SlidesInView returns the slide indices intersecting the viewport now
func (e *Engine) SlidesInView() []int {
	return e.inView.Check(e.body.Location())
}

// SlidesNotInView returns the complement of SlidesInView
func (e *Engine) SlidesNotInView() []int {
	return e.inView.CheckNot(e.body.Location())
}

// ScrollSnaps returns a copy of the snap point positions
func (e *Engine) ScrollSnaps() []float64 {
	snaps := make([]float64, len(e.snaps))
	copy(snaps, e.snaps)
	return snaps
}

// Limit returns the scrollable range
func (e *Engine) Limit() core.Limit {
	return e.limit
}

// Options returns the activation's configuration snapshot
func (e *Engine) Options() Options {
	return e.opts
}

// Dragging reports whether a pointer drag is live
func (e *Engine) Dragging() bool {
	return e.drag.PointerDown()
}

// ClickAllowed reports whether the drag handler permits the trailing click
func (e *Engine) ClickAllowed() bool {
	return e.drag.ClickAllowed()
}

// Animating reports whether the frame loop is running
func (e *Engine) Animating() bool {
	return e.animation.Running()
}

// ReInit tears this engine down and builds a replacement from fresh
// measurements, preserving the selected index as the new start index. Event
// handlers carry over; everything else is rebuilt. The old engine must not be
// used afterwards
func (e *Engine) ReInit(provider MeasureProvider) (*Engine, error) {
	opts := e.opts
	opts.StartIndex = e.current.Get()
	e.teardown()

	next, err := newEngine(provider, e.scheduler, opts, e.render, e.emitter)
	if err != nil {
		return nil, err
	}
	next.panicHook = e.panicHook
	next.emitter.Emit(event.ReInit)
	return next, nil
}

// Destroy stops the loop and releases every registration. Idempotent
func (e *Engine) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	e.teardown()
	e.emitter.Emit(event.Destroy)
	e.emitter.Clear()
}

// teardown releases scheduled work and scoped registrations exactly once per
// engine, leaving no dangling frame or listener behind
func (e *Engine) teardown() {
	e.store.Clear()
}
