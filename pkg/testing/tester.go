package testing

import (
	"errors"
	"sync"
	"testing"

	"github.com/go-drift/driftstore/pkg/core"
	drifterrors "github.com/go-drift/driftstore/pkg/errors"
	"github.com/go-drift/driftstore/pkg/platform"
)

// DefaultMaxPumps bounds PumpAndSettle when no limit is given.
const DefaultMaxPumps = 100

// ErrSettleTimeout is returned when PumpAndSettle exceeds its frame limit.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: framework did not settle")

// WidgetTester provides isolated widget testing. It owns a build owner and
// a dispatch queue and drives the same build phase as a running app.
type WidgetTester struct {
	buildOwner   *core.BuildOwner
	root         core.Element
	frames       int
	prevDispatch func(func())

	mu         sync.Mutex
	dispatches []func()
}

// NewWidgetTester creates a tester and registers its dispatch queue with
// the platform package so that platform.Dispatch works during tests.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	t := &WidgetTester{
		buildOwner: core.NewBuildOwner(),
	}
	t.prevDispatch = platform.RegisterDispatch(t.Dispatch)
	return t
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t testing.TB) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree, which disposes every state and releases its
// subscriptions, and restores the previous platform dispatch function.
func (t *WidgetTester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
	platform.RegisterDispatch(t.prevDispatch)
}

// BuildOwner returns the tester's build owner.
func (t *WidgetTester) BuildOwner() *core.BuildOwner {
	return t.buildOwner
}

// PumpWidget mounts (or remounts) a widget and runs one frame.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
	t.root = core.MountRoot(widget, t.buildOwner)
	return t.Pump()
}

// Pump runs a single frame: queued dispatches, then the build flush.
// A panicking dispatch is reported to the global error handler and the
// remaining dispatches still run.
func (t *WidgetTester) Pump() error {
	t.mu.Lock()
	dispatches := t.dispatches
	t.dispatches = nil
	t.mu.Unlock()
	for _, fn := range dispatches {
		runDispatch(fn)
	}

	t.buildOwner.FlushBuild()
	t.frames++
	return nil
}

// PumpAndSettle runs frames until nothing is pending or maxPumps frames
// have run. A non-positive maxPumps uses DefaultMaxPumps.
func (t *WidgetTester) PumpAndSettle(maxPumps int) error {
	if maxPumps <= 0 {
		maxPumps = DefaultMaxPumps
	}
	for range maxPumps {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.needsWork() {
			return nil
		}
	}
	return ErrSettleTimeout
}

// Frames returns the number of frames pumped so far.
func (t *WidgetTester) Frames() int {
	return t.frames
}

func runDispatch(fn func()) {
	defer drifterrors.Recover("testing.Pump")
	fn()
}

func (t *WidgetTester) needsWork() bool {
	t.mu.Lock()
	pending := len(t.dispatches)
	t.mu.Unlock()
	return t.buildOwner.NeedsWork() || pending > 0
}

// Dispatch queues a callback for the next frame. It is safe to call from
// any goroutine.
func (t *WidgetTester) Dispatch(fn func()) {
	t.mu.Lock()
	t.dispatches = append(t.dispatches, fn)
	t.mu.Unlock()
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.root
}

// Find evaluates a finder against the current element tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}
