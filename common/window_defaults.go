package common

// Window defaults shared by every host.
const (
	DefaultWindowTitle  = "oxy-orbit: Triangle (Mouse Control)"
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
)
