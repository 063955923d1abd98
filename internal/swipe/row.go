package swipe

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

type cmdKind int

const (
	cmdDragStart cmdKind = iota
	cmdDragUpdate
	cmdDragEnd
	cmdAnimate
)

type command struct {
	kind        cmdKind
	translation float64
	velocity    float64
	target      float64
	done        chan struct{}
}

// settleEvent crosses from the executor goroutine to the notifier goroutine.
// Externally visible consequences of a settle (direction publication,
// promise resolution, the OnChange callback) happen only on the notifier
// side, never in the hot loop.
type settleEvent struct {
	dir      Direction
	snap     float64
	resolved []chan struct{}
}

// Row is a single swipeable list row. Feed it the external drag stream via
// DragStart/DragUpdate/DragEnd and drive it imperatively with Open and
// Close. All offset mutation happens on the row's own executor goroutine in
// the order commands arrive, so a release always resolves against the final
// applied offset of its gesture.
type Row struct {
	cfg Config
	cat catalog

	pos atomic.Pointer[position]
	dir atomic.Int32

	cmds    chan command
	settles chan settleEvent
	quit    chan struct{}
	stop    sync.Once
	wg      sync.WaitGroup
}

// NewRow builds a row from cfg and starts its executor and notifier
// goroutines. Call Stop when the row is discarded.
func NewRow(cfg Config) *Row {
	cfg = cfg.normalized()
	r := &Row{
		cfg:     cfg,
		cat:     newCatalog(cfg.SnapPointsLeft, cfg.SnapPointsRight, cfg.OverSwipe),
		cmds:    make(chan command, 64),
		settles: make(chan settleEvent, 8),
		quit:    make(chan struct{}),
	}
	r.pos.Store(&position{})
	r.wg.Add(2)
	go r.run()
	go r.notify()
	return r
}

// Stop shuts down the row's goroutines and waits for them to exit. Promise
// channels still pending at Stop are never resolved. Idempotent.
func (r *Row) Stop() {
	r.stop.Do(func() { close(r.quit) })
	r.wg.Wait()
}

// DragStart begins a gesture at the current offset. An in-flight settle
// animation is superseded; its promises stay pending for the next natural
// settle.
func (r *Row) DragStart() {
	r.send(command{kind: cmdDragStart})
}

// DragUpdate applies the gesture's current translation from its start
// point. Idempotent under duplicate translations.
func (r *Row) DragUpdate(translation float64) {
	r.send(command{kind: cmdDragUpdate, translation: translation})
}

// DragEnd finishes the gesture and settles on the snap point nearest to the
// released offset biased by velocity/SwipeDamping.
func (r *Row) DragEnd(translation, velocity float64) {
	r.send(command{kind: cmdDragEnd, translation: translation, velocity: velocity})
}

// Open animates the row open toward the given side and returns a channel
// that closes when the row next comes to rest naturally. Without an
// explicit snap point the side's extreme snap point is used. Open(None)
// closes the row. Calls during an active gesture are accepted but take no
// visual effect until the drag resolves.
func (r *Row) Open(dir Direction, snapPoint ...float64) <-chan struct{} {
	var target float64
	switch dir {
	case Left:
		target = r.cat.maxSnapLeft
		if len(snapPoint) > 0 {
			target = -math.Abs(snapPoint[0])
		}
	case Right:
		target = r.cat.maxSnapRight
		if len(snapPoint) > 0 {
			target = math.Abs(snapPoint[0])
		}
	}
	done := make(chan struct{})
	r.send(command{kind: cmdAnimate, target: target, done: done})
	return done
}

// Close animates the row back to the closed rest position.
func (r *Row) Close() <-chan struct{} {
	return r.Open(None)
}

// Offset returns the current signed offset: negative toward the left
// underlay, positive toward the right, 0 closed.
func (r *Row) Offset() float64 { return r.pos.Load().offset }

// GestureActive reports whether a drag is in progress.
func (r *Row) GestureActive() bool { return r.pos.Load().gestureActive }

// Animating reports whether a settle animation is running.
func (r *Row) Animating() bool { return r.pos.Load().animating }

// Direction returns the side the row last settled open toward. It is only
// ever updated at settle completion, never mid-drag.
func (r *Row) Direction() Direction { return Direction(r.dir.Load()) }

// PercentOpenLeft reports left-side openness relative to its extreme snap
// point.
func (r *Row) PercentOpenLeft() float64 { return r.pos.Load().percentOpenLeft(r.cat) }

// PercentOpenRight reports right-side openness relative to its extreme snap
// point.
func (r *Row) PercentOpenRight() float64 { return r.pos.Load().percentOpenRight(r.cat) }

// SwipingLeft reports whether the offset is currently left of closed.
func (r *Row) SwipingLeft() bool { return r.pos.Load().swipingLeft() }

// SwipingRight reports whether the offset is currently right of closed.
func (r *Row) SwipingRight() bool { return r.pos.Load().swipingRight() }

// SnapRange returns the extreme rest offsets of both sides.
func (r *Row) SnapRange() (left, right float64) {
	return r.cat.maxSnapLeft, r.cat.maxSnapRight
}

// ActiveOffsets returns the asymmetric activation thresholds the gesture
// recognizer should require before starting a drag. A side with no snap
// points gets an infinite threshold unless the row is open toward the other
// side, in which case a return-to-closed drag uses the normal threshold.
func (r *Row) ActiveOffsets() (left, right float64) {
	left, right = math.Inf(-1), math.Inf(1)
	if r.cat.maxSnapLeft < 0 || r.Direction() == Right {
		left = -r.cfg.ActivationThreshold
	}
	if r.cat.maxSnapRight > 0 || r.Direction() == Left {
		right = r.cfg.ActivationThreshold
	}
	return left, right
}

func (r *Row) send(c command) {
	select {
	case r.cmds <- c:
	case <-r.quit:
	}
}

func (r *Row) store(p position) { r.pos.Store(&p) }

// run is the executor goroutine: the sole writer of the row's position.
func (r *Row) run() {
	defer r.wg.Done()
	defer close(r.settles)

	anim := newAnimator(r.cfg.Animation, r.cfg.FPS)
	frame := time.Second / time.Duration(r.cfg.FPS)

	var (
		startOffset float64
		pending     []chan struct{}
		ticker      *time.Ticker
		tick        <-chan time.Time
	)
	stopTick := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, tick = nil, nil
		}
	}
	defer stopTick()
	startTick := func() {
		if ticker == nil {
			ticker = time.NewTicker(frame)
			tick = ticker.C
		}
	}

	// settleTo pins the offset at target and hands the settle off to the
	// notifier, draining the pending promise list.
	settleTo := func(target float64) {
		stopTick()
		r.store(position{offset: target})
		ev := settleEvent{dir: directionOf(target), snap: math.Abs(target), resolved: pending}
		pending = nil
		select {
		case r.settles <- ev:
		case <-r.quit:
		}
	}

	animateTo := func(target float64) {
		anim.start(target, func(natural bool) {
			if natural {
				settleTo(target)
			}
			// Superseded animations resolve nothing; the pending promises
			// wait for whichever animation is left running at rest.
		})
		cur := *r.pos.Load()
		r.store(position{offset: cur.offset, animating: true})
		startTick()
	}

	for {
		select {
		case <-r.quit:
			return

		case cmd := <-r.cmds:
			switch cmd.kind {
			case cmdDragStart:
				anim.interrupt()
				stopTick()
				startOffset = r.pos.Load().offset
				r.store(position{offset: startOffset, gestureActive: true})

			case cmdDragUpdate:
				if !r.pos.Load().gestureActive {
					break
				}
				off := r.cat.clamp(startOffset + cmd.translation)
				r.store(position{offset: off, gestureActive: true})

			case cmdDragEnd:
				if !r.pos.Load().gestureActive {
					break
				}
				off := r.cat.clamp(startOffset + cmd.translation)
				adjusted := off + cmd.velocity/r.cfg.SwipeDamping
				target := r.cat.nearest(adjusted)
				r.cfg.Logger.Debug("release resolved",
					zap.Float64("offset", off),
					zap.Float64("velocity", cmd.velocity),
					zap.Float64("target", target))
				if off == target {
					settleTo(target)
				} else {
					r.store(position{offset: off})
					animateTo(target)
				}

			case cmdAnimate:
				if cmd.done != nil {
					pending = append(pending, cmd.done)
				}
				cur := *r.pos.Load()
				if cur.gestureActive {
					// The drag owns the offset; the promise stays pending
					// until a later natural settle resolves it.
					break
				}
				if !cur.animating && cur.offset == cmd.target {
					settleTo(cmd.target)
					break
				}
				animateTo(cmd.target)
			}

		case <-tick:
			next, settled := anim.step(r.pos.Load().offset)
			if !settled {
				r.store(position{offset: next, animating: true})
			}
			// Rest is handled by the animation's settle callback.
		}
	}
}

// notify is the control goroutine: it applies the externally observable
// consequences of each settle in order received.
func (r *Row) notify() {
	defer r.wg.Done()
	for ev := range r.settles {
		r.dir.Store(int32(ev.dir))
		for _, ch := range ev.resolved {
			close(ch)
		}
		if r.cfg.OnChange != nil {
			r.cfg.OnChange(Change{Direction: ev.dir, SnapPoint: ev.snap})
		}
		r.cfg.Logger.Debug("row settled",
			zap.String("direction", ev.dir.String()),
			zap.Float64("snap_point", ev.snap))
	}
}
