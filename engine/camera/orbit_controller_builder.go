package camera

// OrbitControllerOption is a functional option for configuring an OrbitController.
type OrbitControllerOption func(*orbitControllerImpl)

// WithSensitivity sets the pointer drag sensitivity.
//
// Parameters:
//   - sensitivity: degrees of rotation per pointer unit
//
// Returns:
//   - OrbitControllerOption: functional option to set the sensitivity
func WithSensitivity(sensitivity float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.sensitivity = sensitivity
	}
}

// WithZoomStep sets the multiplicative zoom factor applied per wheel event.
// A step of 1.1 zooms in by 10% per forward notch and back out by the inverse factor.
//
// Parameters:
//   - step: zoom factor (must be > 1 for wheel-forward to zoom in)
//
// Returns:
//   - OrbitControllerOption: functional option to set the zoom step
func WithZoomStep(step float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.zoomStep = step
	}
}

// WithZoomBounds sets the inclusive zoom range.
//
// Parameters:
//   - lo: minimum zoom (must be > 0)
//   - hi: maximum zoom
//
// Returns:
//   - OrbitControllerOption: functional option to set zoom bounds
func WithZoomBounds(lo, hi float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.minZoom = lo
		oc.maxZoom = hi
	}
}

// WithPitchBounds sets the inclusive pitch range in degrees.
//
// Parameters:
//   - lo: minimum pitch (prevents flipping under the target)
//   - hi: maximum pitch (prevents flipping over the target)
//
// Returns:
//   - OrbitControllerOption: functional option to set pitch bounds
func WithPitchBounds(lo, hi float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.minPitch = lo
		oc.maxPitch = hi
	}
}

// WithInitialState starts the controller from s instead of InitialState.
// The state is clamped into the configured bounds once all options are applied and is also the
// state Reset returns to.
//
// Parameters:
//   - s: the starting camera state
//
// Returns:
//   - OrbitControllerOption: functional option to set the initial state
func WithInitialState(s State) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.initial = s
	}
}
