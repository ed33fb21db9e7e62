package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Default lens and placement settings.
const (
	DefaultFovY     float32 = 60.0
	DefaultNear     float32 = 0.1
	DefaultFar      float32 = 100.0
	DefaultDistance float32 = 5.0
)

var (
	// AxisX is the horizontal axis pitch rotates about.
	AxisX = mgl32.Vec3{1, 0, 0}
	// AxisY is the vertical axis yaw rotates about.
	AxisY = mgl32.Vec3{0, 1, 0}
)

// Projection holds the parameters of a perspective projection.
type Projection struct {
	FovY   float32 // vertical field of view in degrees
	Aspect float32 // width / height
	Near   float32
	Far    float32
}

// Matrix builds the projection matrix for the WebGPU clip-space depth range [0, 1].
//
// Returns:
//   - mgl32.Mat4: the column-major projection matrix
func (p Projection) Matrix() mgl32.Mat4 {
	var m mgl32.Mat4
	common.Perspective(m[:], mgl32.DegToRad(p.FovY), p.Aspect, p.Near, p.Far)
	return m
}

type cameraImpl struct {
	up     mgl32.Vec3
	target mgl32.Vec3

	fovY     float32
	aspect   float32
	near     float32
	far      float32
	distance float32
}

// Camera holds the lens (perspective settings) and the orbit placement rules that turn a State
// into a view transform. The eye sits at Distance()*zoom along +Z from the target, looking at the
// target with a fixed up vector; pitch is applied about +X and then yaw about +Y.
//
// Camera is not safe for concurrent use.
type Camera interface {
	// Fov returns the vertical field of view in degrees.
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	Aspect() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// Distance returns the eye distance from the target at zoom 1.
	Distance() float32

	// SetAspect sets the aspect ratio. Non-positive values are ignored.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetViewport recomputes the aspect ratio from a framebuffer size.
	// A zero or negative dimension (e.g. a minimized window) leaves the aspect unchanged.
	//
	// Parameters:
	//   - width, height: framebuffer size in pixels
	//
	// Returns:
	//   - bool: true if the aspect ratio was updated
	SetViewport(width, height int) bool

	// Projection returns the current perspective parameters.
	Projection() Projection

	// Eye returns the eye position for the given state, before the orbit rotations are applied.
	//
	// Parameters:
	//   - s: the camera state
	//
	// Returns:
	//   - mgl32.Vec3: eye position in world space
	Eye(s State) mgl32.Vec3

	// Target returns the look-at point.
	Target() mgl32.Vec3

	// Up returns the fixed up vector.
	Up() mgl32.Vec3

	// ViewMatrix composes LookAt(eye, target, up) * Rx(pitch) * Ry(yaw) for the given state.
	//
	// Parameters:
	//   - s: the camera state
	//
	// Returns:
	//   - mgl32.Mat4: the column-major view matrix
	ViewMatrix(s State) mgl32.Mat4
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera with a 60 degree vertical field of view, near plane 0.1, far plane
// 100, base distance 5 and an 800x600 aspect ratio.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		up:       AxisY,
		target:   mgl32.Vec3{0, 0, 0},
		fovY:     DefaultFovY,
		aspect:   800.0 / 600.0,
		near:     DefaultNear,
		far:      DefaultFar,
		distance: DefaultDistance,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Fov() float32 {
	return c.fovY
}

func (c *cameraImpl) Aspect() float32 {
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	return c.near
}

func (c *cameraImpl) Far() float32 {
	return c.far
}

func (c *cameraImpl) Distance() float32 {
	return c.distance
}

func (c *cameraImpl) SetAspect(aspect float32) {
	if aspect <= 0 {
		return
	}
	c.aspect = aspect
}

func (c *cameraImpl) SetViewport(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	c.aspect = float32(width) / float32(height)
	return true
}

func (c *cameraImpl) Projection() Projection {
	return Projection{
		FovY:   c.fovY,
		Aspect: c.aspect,
		Near:   c.near,
		Far:    c.far,
	}
}

func (c *cameraImpl) Eye(s State) mgl32.Vec3 {
	return c.target.Add(mgl32.Vec3{0, 0, c.distance * s.Zoom})
}

func (c *cameraImpl) Target() mgl32.Vec3 {
	return c.target
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	return c.up
}

func (c *cameraImpl) ViewMatrix(s State) mgl32.Mat4 {
	eye := c.Eye(s)

	var view mgl32.Mat4
	common.LookAt(view[:],
		eye[0], eye[1], eye[2],
		c.target[0], c.target[1], c.target[2],
		c.up[0], c.up[1], c.up[2],
	)

	// Pitch is composed first, yaw second; swapping them changes the orbit.
	view = view.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(s.Pitch)))
	return view.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(s.Yaw)))
}
