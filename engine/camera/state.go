package camera

// Default tuning for the orbit controller.
const (
	// DefaultSensitivity converts pointer pixels into degrees of rotation.
	DefaultSensitivity float32 = 0.5

	// DefaultZoomStep is the multiplicative zoom factor applied per wheel notch.
	DefaultZoomStep float32 = 1.1

	DefaultMinZoom  float32 = 0.1
	DefaultMaxZoom  float32 = 5.0
	DefaultMinPitch float32 = -90.0
	DefaultMaxPitch float32 = 90.0
)

// State is the orbit camera's orientation and zoom.
// It is mutated only by an OrbitController and read by the frame renderer.
type State struct {
	// Pitch is the rotation about the horizontal axis in degrees, kept within the controller's pitch bounds.
	Pitch float32

	// Yaw is the rotation about the vertical axis in degrees. It is never wrapped; the
	// trigonometric evaluation downstream is periodic.
	Yaw float32

	// Zoom is the camera distance multiplier, kept within the controller's zoom bounds.
	Zoom float32
}

// InitialState returns the state every camera starts from: no rotation and unit zoom.
//
// Returns:
//   - State: pitch 0, yaw 0, zoom 1
func InitialState() State {
	return State{Pitch: 0, Yaw: 0, Zoom: 1.0}
}

// DragState tracks an in-progress left-button drag.
type DragState struct {
	// Active is true between a left-button press and the matching release.
	Active bool

	// LastX and LastY hold the last pointer position observed while Active.
	LastX, LastY float32
}
