package camera

import "github.com/Carmen-Shannon/oxy-orbit/common"

// orbitControllerImpl is the single implementation of OrbitController.
type orbitControllerImpl struct {
	initial State
	state   State
	drag    DragState

	sensitivity float32
	zoomStep    float32

	minZoom  float32
	maxZoom  float32
	minPitch float32
	maxPitch float32
}

// Compile-time interface compliance check
var _ OrbitController = &orbitControllerImpl{}

// NewOrbitController creates an orbit controller starting at InitialState with the default
// sensitivity, zoom step and bounds. The initial state is clamped into the configured bounds.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the newly created controller
func NewOrbitController(options ...OrbitControllerOption) OrbitController {
	oc := &orbitControllerImpl{
		initial:     InitialState(),
		sensitivity: DefaultSensitivity,
		zoomStep:    DefaultZoomStep,
		minZoom:     DefaultMinZoom,
		maxZoom:     DefaultMaxZoom,
		minPitch:    DefaultMinPitch,
		maxPitch:    DefaultMaxPitch,
	}

	for _, option := range options {
		option(oc)
	}

	oc.state = oc.initial
	oc.clamp()
	return oc
}

// clamp pulls pitch and zoom back inside their bounds.
func (oc *orbitControllerImpl) clamp() {
	oc.state.Pitch = common.Clamp(oc.state.Pitch, oc.minPitch, oc.maxPitch)
	oc.state.Zoom = common.Clamp(oc.state.Zoom, oc.minZoom, oc.maxZoom)
}

func (oc *orbitControllerImpl) OnButtonDown(button common.MouseButton, x, y float32) {
	if button != common.MouseButtonLeft {
		return
	}
	oc.drag = DragState{Active: true, LastX: x, LastY: y}
}

func (oc *orbitControllerImpl) OnButtonUp(button common.MouseButton) {
	if button != common.MouseButtonLeft {
		return
	}
	oc.drag.Active = false
}

func (oc *orbitControllerImpl) OnPointerMove(x, y float32) bool {
	if !oc.drag.Active {
		return false
	}

	dx := x - oc.drag.LastX
	dy := y - oc.drag.LastY
	oc.state.Yaw += dx * oc.sensitivity
	oc.state.Pitch += dy * oc.sensitivity
	oc.state.Pitch = common.Clamp(oc.state.Pitch, oc.minPitch, oc.maxPitch)

	oc.drag.LastX = x
	oc.drag.LastY = y
	return true
}

func (oc *orbitControllerImpl) OnWheel(direction float32) bool {
	if direction > 0 {
		oc.state.Zoom *= oc.zoomStep
	} else {
		oc.state.Zoom /= oc.zoomStep
	}
	oc.state.Zoom = common.Clamp(oc.state.Zoom, oc.minZoom, oc.maxZoom)
	return true
}

func (oc *orbitControllerImpl) Reset() bool {
	oc.state = oc.initial
	oc.clamp()
	return true
}

func (oc *orbitControllerImpl) State() State {
	return oc.state
}

func (oc *orbitControllerImpl) Drag() DragState {
	return oc.drag
}

func (oc *orbitControllerImpl) Sensitivity() float32 {
	return oc.sensitivity
}

func (oc *orbitControllerImpl) ZoomStep() float32 {
	return oc.zoomStep
}

func (oc *orbitControllerImpl) ZoomBounds() (lo, hi float32) {
	return oc.minZoom, oc.maxZoom
}

func (oc *orbitControllerImpl) PitchBounds() (lo, hi float32) {
	return oc.minPitch, oc.maxPitch
}
