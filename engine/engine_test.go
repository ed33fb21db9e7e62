package engine

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
	"github.com/go-gl/mathgl/mgl32"
)

// fakeHost stores the callbacks the engine registers so tests can fire events directly.
type fakeHost struct {
	width, height int
	running       bool
	closed        int
	iterations    int
	stopAfter     int // when > 0, the host stops itself after this many iterations
	log           *[]string

	onUpdate     func()
	onResize     func(width, height int)
	onScroll     func(direction float32)
	onKeyDown    func(keyCode uint32)
	onButtonDown func(button common.MouseButton, x, y float32)
	onButtonUp   func(button common.MouseButton)
	onMove       func(x, y float32)
}

func newFakeHost() *fakeHost {
	return &fakeHost{width: 800, height: 600, running: true}
}

func (h *fakeHost) SetUpdateCallback(cb func()) { h.onUpdate = cb }
func (h *fakeHost) SetResizeCallback(cb func(width, height int)) { h.onResize = cb }
func (h *fakeHost) SetScrollCallback(cb func(direction float32)) { h.onScroll = cb }
func (h *fakeHost) SetKeyDownCallback(cb func(keyCode uint32)) { h.onKeyDown = cb }
func (h *fakeHost) SetMouseButtonUpCallback(cb func(common.MouseButton)) { h.onButtonUp = cb }
func (h *fakeHost) SetMouseMoveCallback(cb func(x, y float32)) { h.onMove = cb }
func (h *fakeHost) SetMouseButtonDownCallback(cb func(common.MouseButton, float32, float32)) {
	h.onButtonDown = cb
}

func (h *fakeHost) IsRunning() bool { return h.running }
func (h *fakeHost) Width() int { return h.width }
func (h *fakeHost) Height() int { return h.height }

func (h *fakeHost) Close() error {
	h.closed++
	h.running = false
	if h.log != nil {
		*h.log = append(*h.log, "close")
	}
	return nil
}

// ProcessMessages runs the configured number of iterations and then stops.
func (h *fakeHost) ProcessMessages() {
	for i := range h.iterations {
		if h.stopAfter > 0 && i == h.stopAfter {
			h.running = false
			return
		}
		h.onUpdate()
	}
}

// countingContext counts frames and records the transform of each drawn triangle.
type countingContext struct {
	renderer.Transform
	frames     int
	viewports  [][2]int
	lastMV     mgl32.Mat4
	lastProj   camera.Projection
	presentErr error
}

func newCountingContext() *countingContext {
	return &countingContext{Transform: renderer.NewTransform()}
}

func (c *countingContext) SetViewport(width, height int) {
	c.viewports = append(c.viewports, [2]int{width, height})
}
func (c *countingContext) Clear() error { return nil }
func (c *countingContext) SetProjection(p camera.Projection) {
	c.lastProj = p
	c.Transform.SetProjection(p)
}
func (c *countingContext) DrawTriangle(renderer.Triangle) { c.lastMV = c.ModelView() }
func (c *countingContext) Present() error {
	if c.presentErr != nil {
		return c.presentErr
	}
	c.frames++
	return nil
}

func newTestEngine(t *testing.T, options ...EngineBuilderOption) (*engine, *fakeHost, *countingContext) {
	t.Helper()
	host := newFakeHost()
	ctx := newCountingContext()
	opts := append([]EngineBuilderOption{
		WithWindow(host),
		WithRenderer(renderer.NewRenderer(ctx)),
	}, options...)
	return NewEngine(opts...).(*engine), host, ctx
}

func TestOnDemandDrawsFirstFrameOnly(t *testing.T) {
	e, host, ctx := newTestEngine(t)
	if e.RenderPolicy() != RenderPolicyOnDemand {
		t.Fatalf("default policy = %v, want on-demand", e.RenderPolicy())
	}

	host.iterations = 5
	e.Run()

	if ctx.frames != 1 {
		t.Fatalf("frames = %d, want 1 (initial frame only)", ctx.frames)
	}
	if host.closed != 1 {
		t.Fatalf("window closed %d times, want 1", host.closed)
	}
}

func TestAlwaysDrawsEveryIteration(t *testing.T) {
	e, host, ctx := newTestEngine(t, WithRenderPolicy(RenderPolicyAlways))
	host.iterations = 4
	e.Run()
	if ctx.frames != 4 {
		t.Fatalf("frames = %d, want 4", ctx.frames)
	}
}

func TestDragRequestsRedraw(t *testing.T) {
	e, host, ctx := newTestEngine(t)
	host.onUpdate()

	// Motion without a pressed button is not a redraw.
	host.onMove(10, 10)
	host.onUpdate()
	if ctx.frames != 1 {
		t.Fatalf("frames = %d after idle motion, want 1", ctx.frames)
	}

	host.onButtonDown(common.MouseButtonLeft, 100, 100)
	host.onMove(110, 120)
	host.onMove(120, 120) // coalesces with the previous move
	host.onUpdate()
	if ctx.frames != 2 {
		t.Fatalf("frames = %d after drag, want 2", ctx.frames)
	}

	s := e.Controller().State()
	if s.Yaw != 10 || s.Pitch != 10 {
		t.Fatalf("state after drag = %+v, want yaw 10 pitch 10", s)
	}
	want := e.Renderer().Camera().ViewMatrix(s)
	if !matNear(ctx.lastMV, want, 1e-5) {
		t.Fatalf("drawn model-view %v, want %v", ctx.lastMV, want)
	}

	host.onButtonUp(common.MouseButtonLeft)
	host.onMove(200, 200)
	host.onUpdate()
	if ctx.frames != 2 {
		t.Fatalf("frames = %d after release, want 2", ctx.frames)
	}
}

func TestScrollZoomsAndRedraws(t *testing.T) {
	e, host, ctx := newTestEngine(t)
	host.onUpdate()

	host.onScroll(1)
	host.onUpdate()

	if ctx.frames != 2 {
		t.Fatalf("frames = %d, want 2", ctx.frames)
	}
	if z := e.Controller().State().Zoom; z < 1.0999 || z > 1.1001 {
		t.Fatalf("zoom = %v, want 1.1", z)
	}
}

func TestResetKey(t *testing.T) {
	e, host, ctx := newTestEngine(t)
	host.onUpdate()

	host.onScroll(-1)
	host.onKeyDown(common.KeyR)
	host.onUpdate()

	if got := e.Controller().State(); got != camera.InitialState() {
		t.Fatalf("state after reset = %+v", got)
	}
	if ctx.frames != 2 {
		t.Fatalf("frames = %d, want 2", ctx.frames)
	}

	host.onKeyDown('A')
	host.onUpdate()
	if ctx.frames != 2 {
		t.Fatalf("unbound key triggered a frame")
	}
}

func TestResizeUpdatesAspectAndRedraws(t *testing.T) {
	_, host, ctx := newTestEngine(t)
	host.onUpdate()

	host.width, host.height = 1000, 500
	host.onResize(1000, 500)
	host.onUpdate()

	if ctx.frames != 2 {
		t.Fatalf("frames = %d, want 2", ctx.frames)
	}
	if len(ctx.viewports) != 1 || ctx.viewports[0] != [2]int{1000, 500} {
		t.Fatalf("viewports = %v", ctx.viewports)
	}
	if ctx.lastProj.Aspect != 2 {
		t.Fatalf("aspect = %v, want 2", ctx.lastProj.Aspect)
	}
}

func TestMinimizedWindowDefersFrame(t *testing.T) {
	_, host, ctx := newTestEngine(t)
	host.width, host.height = 800, 0
	host.onResize(800, 0)
	host.onUpdate()
	if ctx.frames != 0 {
		t.Fatalf("frames = %d while minimized, want 0", ctx.frames)
	}

	host.width, host.height = 800, 600
	host.onUpdate()
	if ctx.frames != 1 {
		t.Fatalf("pending frame not drawn after restore: frames = %d", ctx.frames)
	}
	if ctx.lastProj.Aspect != float32(800)/float32(600) {
		t.Fatalf("aspect = %v, want the previous 4:3", ctx.lastProj.Aspect)
	}
}

func TestFrameErrorIsDropped(t *testing.T) {
	e, host, ctx := newTestEngine(t)
	ctx.presentErr = errors.New("surface lost")

	var callbacks int
	e.SetRenderCallback(func(float32) { callbacks++ })

	host.onUpdate()
	ctx.presentErr = nil
	host.onUpdate()

	if ctx.frames != 0 || callbacks != 0 {
		t.Fatalf("failed frame should be dropped: frames=%d callbacks=%d", ctx.frames, callbacks)
	}

	e.RequestRedraw()
	host.onUpdate()
	if ctx.frames != 1 || callbacks != 1 {
		t.Fatalf("frames=%d callbacks=%d after explicit redraw, want 1/1", ctx.frames, callbacks)
	}
}

func TestQuitIsIdempotent(t *testing.T) {
	e, host, _ := newTestEngine(t)
	e.Quit()
	e.Quit()
	if host.closed != 1 {
		t.Fatalf("closed %d times, want 1", host.closed)
	}
}

func TestRunClosesHostThatStoppedItself(t *testing.T) {
	e, host, ctx := newTestEngine(t, WithRenderPolicy(RenderPolicyAlways))
	host.iterations = 10
	host.stopAfter = 3
	e.Run()

	if ctx.frames != 3 {
		t.Fatalf("frames = %d, want 3", ctx.frames)
	}
	if host.closed != 1 {
		t.Fatalf("closed %d times after the host stopped, want 1", host.closed)
	}
	e.Quit()
	if host.closed != 1 {
		t.Fatalf("closed %d times after a second Quit, want 1", host.closed)
	}
}

func TestShutdownHooksRunBeforeClose(t *testing.T) {
	var events []string
	e, host, _ := newTestEngine(t,
		WithShutdown(func() { events = append(events, "release surface") }),
		WithShutdown(nil),
		WithShutdown(func() { events = append(events, "release device") }),
	)
	host.log = &events
	host.iterations = 3
	host.stopAfter = 1
	e.Run()
	e.Quit()

	want := []string{"release surface", "release device", "close"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events = %v, want %v", events, want)
		}
	}
}

func TestNewEngineRequiresWindowAndRenderer(t *testing.T) {
	cases := map[string][]EngineBuilderOption{
		"no window":   {WithRenderer(renderer.NewRenderer(newCountingContext()))},
		"no renderer": {WithWindow(newFakeHost())},
	}
	for name, opts := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			NewEngine(opts...)
		})
	}
}

func TestParseRenderPolicy(t *testing.T) {
	for name, want := range map[string]RenderPolicy{
		"":          RenderPolicyOnDemand,
		"on-demand": RenderPolicyOnDemand,
		"always":    RenderPolicyAlways,
	} {
		got, err := ParseRenderPolicy(name)
		if err != nil || got != want {
			t.Fatalf("ParseRenderPolicy(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseRenderPolicy("sometimes"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}

func TestFrameDuration(t *testing.T) {
	if frameDuration(0) != 0 || frameDuration(-5) != 0 {
		t.Fatal("non-positive fps should uncap")
	}
	if d := frameDuration(50); d.Milliseconds() != 20 {
		t.Fatalf("frameDuration(50) = %v, want 20ms", d)
	}
}

// matNear compares element-wise by absolute difference.
func matNear(a, b mgl32.Mat4, eps float32) bool {
	for i := range a {
		if d := a[i] - b[i]; d > eps || d < -eps {
			return false
		}
	}
	return true
}
