package ebiten_host

import (
	"errors"
	"log"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer/ebiten_context"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebiten numbers the middle button 1 and the right button 2.
var trackedButtons = []struct {
	ebiten ebiten.MouseButton
	button common.MouseButton
}{
	{ebiten.MouseButtonLeft, common.MouseButtonLeft},
	{ebiten.MouseButtonRight, common.MouseButtonRight},
	{ebiten.MouseButtonMiddle, common.MouseButtonMiddle},
}

// inputFrame is the input observed during one ebiten tick.
type inputFrame struct {
	cursorX, cursorY int
	pressed          []common.MouseButton
	released         []common.MouseButton
	wheelY           float64
	resetPressed     bool
	escapePressed    bool
}

// Host is an engine.Host backed by ebiten. ebiten owns the loop, so ProcessMessages hands control to
// ebiten.RunGame: Update translates ebiten input into the registered callbacks and Draw runs the
// engine's update callback with the screen image bound as the context target.
//
// The screen is not cleared between frames, so an iteration that draws nothing keeps the
// previous picture on screen.
type Host struct {
	ctx *ebiten_context.Context

	title  string
	width  int
	height int
	hud    func() string

	running   bool
	closing   bool
	hasCursor bool
	lastX     int
	lastY     int

	onUpdate     func()
	onResize     func(width, height int)
	onScroll     func(direction float32)
	onKeyDown    func(keyCode uint32)
	onButtonDown func(button common.MouseButton, x, y float32)
	onButtonUp   func(button common.MouseButton)
	onMove       func(x, y float32)
}

var (
	_ engine.Host = &Host{}
	_ ebiten.Game = &Host{}
)

// NewHost creates an ebiten host drawing through ctx.
//
// Parameters:
//   - ctx: the ebiten graphics context frames are drawn with
//   - options: functional options to configure the host
//
// Returns:
//   - *Host: the new host, not yet running
func NewHost(ctx *ebiten_context.Context, options ...HostOption) *Host {
	if ctx == nil {
		panic("ebiten_host: graphics context must not be nil")
	}
	h := &Host{
		ctx:     ctx,
		title:   common.DefaultWindowTitle,
		width:   common.DefaultWindowWidth,
		height:  common.DefaultWindowHeight,
		running: true,
	}
	for _, opt := range options {
		opt(h)
	}
	return h
}

func (h *Host) SetUpdateCallback(callback func()) {
	h.onUpdate = callback
}

func (h *Host) SetResizeCallback(callback func(width, height int)) {
	h.onResize = callback
}

func (h *Host) SetScrollCallback(callback func(direction float32)) {
	h.onScroll = callback
}

func (h *Host) SetKeyDownCallback(callback func(keyCode uint32)) {
	h.onKeyDown = callback
}

func (h *Host) SetMouseButtonDownCallback(callback func(button common.MouseButton, x, y float32)) {
	h.onButtonDown = callback
}

func (h *Host) SetMouseButtonUpCallback(callback func(button common.MouseButton)) {
	h.onButtonUp = callback
}

func (h *Host) SetMouseMoveCallback(callback func(x, y float32)) {
	h.onMove = callback
}

func (h *Host) IsRunning() bool {
	return h.running && !h.closing
}

// Close asks ebiten to end the loop at the next Update.
func (h *Host) Close() error {
	h.closing = true
	return nil
}

func (h *Host) Width() int {
	return h.width
}

func (h *Host) Height() int {
	return h.height
}

// ProcessMessages opens the window and blocks until it is closed.
func (h *Host) ProcessMessages() {
	ebiten.SetWindowTitle(h.title)
	ebiten.SetWindowSize(h.width, h.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("[Ebiten] game loop ended: %v", err)
	}
	h.running = false
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	if h.closing {
		return ebiten.Termination
	}

	in := inputFrame{
		resetPressed:  inpututil.IsKeyJustPressed(ebiten.KeyR),
		escapePressed: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	in.cursorX, in.cursorY = ebiten.CursorPosition()
	_, in.wheelY = ebiten.Wheel()
	for _, b := range trackedButtons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			in.pressed = append(in.pressed, b.button)
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			in.released = append(in.released, b.button)
		}
	}

	h.dispatch(in)
	if h.closing {
		return ebiten.Termination
	}
	return nil
}

// dispatch forwards one tick of input to the callbacks: presses first so a press and a move in the
// same tick start the drag at the press position, then motion, releases, wheel and keys.
func (h *Host) dispatch(in inputFrame) {
	if in.escapePressed {
		h.closing = true
		return
	}

	x, y := float32(in.cursorX), float32(in.cursorY)
	for _, b := range in.pressed {
		if h.onButtonDown != nil {
			h.onButtonDown(b, x, y)
		}
	}

	moved := !h.hasCursor || in.cursorX != h.lastX || in.cursorY != h.lastY
	h.hasCursor = true
	h.lastX, h.lastY = in.cursorX, in.cursorY
	if moved && h.onMove != nil {
		h.onMove(x, y)
	}

	for _, b := range in.released {
		if h.onButtonUp != nil {
			h.onButtonUp(b)
		}
	}

	if in.wheelY != 0 && h.onScroll != nil {
		h.onScroll(float32(in.wheelY))
	}

	if in.resetPressed && h.onKeyDown != nil {
		h.onKeyDown(common.KeyR)
	}
}

// Draw implements ebiten.Game. The engine decides whether this tick draws a frame; when it does,
// the HUD is printed over it.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.onUpdate == nil {
		return
	}
	h.ctx.SetTarget(screen)
	before := h.ctx.Presented()
	h.onUpdate()
	if h.hud != nil && h.ctx.Presented() != before {
		ebitenutil.DebugPrint(screen, h.hud())
	}
}

// Layout implements ebiten.Game. The window's outside size is used as the screen size and every
// change is reported to the resize callback.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.width || outsideHeight != h.height {
		h.width = outsideWidth
		h.height = outsideHeight
		if h.onResize != nil {
			h.onResize(outsideWidth, outsideHeight)
		}
	}
	return max(outsideWidth, 1), max(outsideHeight, 1)
}
