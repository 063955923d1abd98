package swipe

import (
	"math"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newTestRow builds a row with snappy spring tuning and a buffered change
// feed so tests can observe settles without racing the notifier.
func newTestRow(t *testing.T, cfg Config) (*Row, <-chan Change) {
	t.Helper()
	changes := make(chan Change, 16)
	cfg.Animation = testSpring()
	cfg.OnChange = func(c Change) { changes <- c }
	r := NewRow(cfg)
	t.Cleanup(r.Stop)
	return r, changes
}

func waitChange(t *testing.T, changes <-chan Change) Change {
	t.Helper()
	select {
	case c := <-changes:
		return c
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for settle")
		return Change{}
	}
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for promise resolution")
	}
}

// eventually polls cond until it holds or the deadline passes. Row commands
// are applied asynchronously on the executor goroutine, so direct state
// assertions need to wait for the command to land.
func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal(msg)
}

func TestReleaseSnapsToNearestPoint(t *testing.T) {
	r, changes := newTestRow(t, Config{SnapPointsRight: []float64{80, 160}})

	r.DragStart()
	r.DragUpdate(60)
	r.DragEnd(60, 0)

	c := waitChange(t, changes)
	if c.Direction != Right || c.SnapPoint != 80 {
		t.Fatalf("expected settle right/80, got %v/%v", c.Direction, c.SnapPoint)
	}
	if got := r.Offset(); got != 80 {
		t.Fatalf("expected offset pinned to 80, got %v", got)
	}
	if got := r.Direction(); got != Right {
		t.Fatalf("expected direction right, got %v", got)
	}
}

func TestReleaseVelocityBiasesTarget(t *testing.T) {
	r, changes := newTestRow(t, Config{
		SnapPointsRight: []float64{80, 160},
		SwipeDamping:    10,
	})

	// 120 + 500/10 = 170, nearest of {80, 160, 0} is 160.
	r.DragStart()
	r.DragUpdate(120)
	r.DragEnd(120, 500)

	c := waitChange(t, changes)
	if c.Direction != Right || c.SnapPoint != 160 {
		t.Fatalf("expected settle right/160, got %v/%v", c.Direction, c.SnapPoint)
	}
}

func TestCloseResolvesOnceAndZeroesPercent(t *testing.T) {
	r, changes := newTestRow(t, Config{SnapPointsRight: []float64{80}})

	waitDone(t, r.Open(Right))
	if got := r.Direction(); got != Right {
		t.Fatalf("expected open right, got %v", got)
	}
	waitChange(t, changes)

	waitDone(t, r.Close())
	c := waitChange(t, changes)
	if c.Direction != None || c.SnapPoint != 0 {
		t.Fatalf("expected settle none/0, got %v/%v", c.Direction, c.SnapPoint)
	}
	if got := r.PercentOpenRight(); got != 0 {
		t.Fatalf("expected percentOpenRight 0 after close, got %v", got)
	}
}

func TestDoubleOpenResolvesBothPromises(t *testing.T) {
	r, _ := newTestRow(t, Config{SnapPointsRight: []float64{80}})

	first := r.Open(Right, 80)
	second := r.Open(Right, 80)
	waitDone(t, first)
	waitDone(t, second)
	if got := r.Offset(); got != 80 {
		t.Fatalf("expected offset 80, got %v", got)
	}
}

func TestRetargetLeavesSupersededPromisePendingUntilRest(t *testing.T) {
	r, _ := newTestRow(t, Config{SnapPointsRight: []float64{80, 160}})

	first := r.Open(Right, 160)
	second := r.Open(Right, 80)
	waitDone(t, first)
	waitDone(t, second)
	if got := r.Offset(); got != 80 {
		t.Fatalf("expected rest at final target 80, got %v", got)
	}
}

func TestDragClampInvariant(t *testing.T) {
	r, changes := newTestRow(t, Config{
		SnapPointsRight: []float64{80, 160},
		OverSwipe:       20,
	})

	r.DragStart()
	r.DragUpdate(1000)
	eventually(t, func() bool { return r.Offset() == 180 },
		"expected overswipe clamp at 180")

	r.DragUpdate(-1000)
	eventually(t, func() bool { return r.Offset() == 0 },
		"expected clamp at 0 on disabled left side")

	r.DragEnd(-1000, 0)
	c := waitChange(t, changes)
	if c.Direction != None {
		t.Fatalf("expected settle closed, got %v", c.Direction)
	}
}

func TestDisabledSideCannotOpenButCanReturnToClosed(t *testing.T) {
	r, changes := newTestRow(t, Config{SnapPointsRight: []float64{80}})

	// From closed, a leftward drag never moves the offset below 0.
	r.DragStart()
	r.DragUpdate(30)
	eventually(t, func() bool { return r.Offset() == 30 }, "expected drag to 30")
	r.DragUpdate(-50)
	eventually(t, func() bool { return r.Offset() == 0 }, "expected clamp at 0")
	r.DragEnd(-50, 0)
	waitChange(t, changes)

	// Open right, then a leftward drag can bring the row back to closed.
	waitDone(t, r.Open(Right))
	waitChange(t, changes)
	r.DragStart()
	r.DragUpdate(-80)
	eventually(t, func() bool { return r.Offset() == 0 }, "expected return drag to 0")
	r.DragEnd(-80, 0)
	c := waitChange(t, changes)
	if c.Direction != None {
		t.Fatalf("expected settle closed after return drag, got %v", c.Direction)
	}
}

func TestOpenDuringGestureIsSupersededUntilRelease(t *testing.T) {
	r, changes := newTestRow(t, Config{SnapPointsRight: []float64{80, 160}})

	r.DragStart()
	r.DragUpdate(60)
	eventually(t, func() bool { return r.Offset() == 60 }, "expected drag to 60")

	done := r.Open(Right, 160)
	select {
	case <-done:
		t.Fatal("promise resolved while gesture owns the offset")
	case <-time.After(50 * time.Millisecond):
	}
	if got := r.Offset(); got != 60 {
		t.Fatalf("expected drag to keep the offset at 60, got %v", got)
	}

	// Release resolves to 80; the pending promise resolves at that settle.
	r.DragEnd(60, 0)
	waitDone(t, done)
	c := waitChange(t, changes)
	if c.Direction != Right || c.SnapPoint != 80 {
		t.Fatalf("expected settle right/80, got %v/%v", c.Direction, c.SnapPoint)
	}
}

func TestTapAtRestSettlesImmediately(t *testing.T) {
	r, changes := newTestRow(t, Config{SnapPointsRight: []float64{80}})

	waitDone(t, r.Open(Right))
	waitChange(t, changes)

	// A gesture that releases exactly at the current snap point reports a
	// settle without animating.
	r.DragStart()
	r.DragEnd(0, 0)
	c := waitChange(t, changes)
	if c.Direction != Right || c.SnapPoint != 80 {
		t.Fatalf("expected immediate settle right/80, got %v/%v", c.Direction, c.SnapPoint)
	}
	if r.Animating() {
		t.Fatal("expected no animation for an at-rest release")
	}
}

func TestDragStartSupersedesAnimation(t *testing.T) {
	r, changes := newTestRow(t, Config{SnapPointsRight: []float64{80, 160}})

	done := r.Open(Right, 160)
	eventually(t, func() bool { return r.Offset() > 0 }, "expected animation to move offset")

	r.DragStart()
	eventually(t, func() bool { return r.GestureActive() }, "expected gesture active")
	r.DragUpdate(5)
	r.DragEnd(5, 900) // strong rightward flick from wherever the drag started

	waitDone(t, done)
	c := waitChange(t, changes)
	if c.Direction != Right {
		t.Fatalf("expected settle right, got %v", c.Direction)
	}
}

func TestActiveOffsets(t *testing.T) {
	r, changes := newTestRow(t, Config{
		SnapPointsRight:     []float64{80},
		ActivationThreshold: 20,
	})

	left, right := r.ActiveOffsets()
	if right != 20 {
		t.Fatalf("expected finite right threshold, got %v", right)
	}
	if !math.IsInf(left, -1) {
		t.Fatalf("expected infinite left threshold while closed, got %v", left)
	}

	waitDone(t, r.Open(Right))
	waitChange(t, changes)
	left, _ = r.ActiveOffsets()
	if left != -20 {
		t.Fatalf("expected finite left threshold while open right, got %v", left)
	}
}

func TestGestureActiveSignal(t *testing.T) {
	r, changes := newTestRow(t, Config{SnapPointsRight: []float64{80}})

	r.DragStart()
	eventually(t, func() bool { return r.GestureActive() }, "expected gesture active after start")
	r.DragEnd(0, 0)
	eventually(t, func() bool { return !r.GestureActive() }, "expected gesture inactive after end")
	waitChange(t, changes)
}

func TestStopIsIdempotent(t *testing.T) {
	r := NewRow(Config{SnapPointsRight: []float64{80}})
	r.Stop()
	r.Stop()
}
