package camera

import "github.com/Carmen-Shannon/oxy-orbit/common"

// OrbitController translates raw pointer input into orbit camera state.
// A left-button drag rotates the camera (yaw from horizontal motion, pitch from vertical motion)
// and the wheel scales the zoom multiplicatively. Pitch and zoom are clamped after every change.
//
// OrbitController is not safe for concurrent use. The host loop is expected to deliver input events
// and read State from a single goroutine.
type OrbitController interface {
	// OnButtonDown starts a drag when the left button is pressed. Other buttons are ignored.
	//
	// Parameters:
	//   - button: the pressed button
	//   - x, y: pointer position at the time of the press
	OnButtonDown(button common.MouseButton, x, y float32)

	// OnButtonUp ends the drag when the left button is released. Releasing while no drag is
	// active is a no-op.
	//
	// Parameters:
	//   - button: the released button
	OnButtonUp(button common.MouseButton)

	// OnPointerMove rotates the camera by the pointer delta since the last observed position while a
	// drag is active.
	//
	// Parameters:
	//   - x, y: current pointer position
	//
	// Returns:
	//   - bool: true if the state changed and a redraw should be scheduled, false if no drag is active
	OnPointerMove(x, y float32) bool

	// OnWheel zooms in when direction is positive and out otherwise.
	//
	// Parameters:
	//   - direction: wheel delta sign (positive = forward/up)
	//
	// Returns:
	//   - bool: always true; a wheel event always requests a redraw
	OnWheel(direction float32) bool

	// Reset restores the camera to the state it was created with. Any active drag is left untouched.
	//
	// Returns:
	//   - bool: always true
	Reset() bool

	// State returns a copy of the current camera state.
	State() State

	// Drag returns a copy of the current drag state.
	Drag() DragState

	// Sensitivity returns the degrees of rotation per pointer unit.
	Sensitivity() float32

	// ZoomStep returns the multiplicative zoom factor per wheel event.
	ZoomStep() float32

	// ZoomBounds returns the inclusive zoom range.
	//
	// Returns:
	//   - lo, hi: minimum and maximum zoom
	ZoomBounds() (lo, hi float32)

	// PitchBounds returns the inclusive pitch range in degrees.
	//
	// Returns:
	//   - lo, hi: minimum and maximum pitch
	PitchBounds() (lo, hi float32)
}
