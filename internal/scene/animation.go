package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera orbit
var (
	CameraOrbitStart = mgl32.Vec3{3, 3, 3}
	CameraTarget     = mgl32.Vec3{0, 0, 0}
	CameraUp         = mgl32.Vec3{0, 1, 0}
)

const CameraOrbitSpeed = -0.05 // rad/s

// Model pose
var (
	ModelTranslation = mgl32.Vec3{0, 1, -0.5}
	ModelScale       = mgl32.Vec3{0.3, -0.3, 0.3}
)

const (
	ModelPitchSpeed  = 0.1136
	ModelPitchOffset = -math.Pi / 2
	ModelRollSpeed   = 0.2235
)

// Mirror pose
var MirrorOffset = mgl32.Vec3{0, -1, 0}

const (
	MirrorTilt      = 0.3
	MirrorSpinSpeed = 0.9
)

// CameraAt returns the orbiting camera at time t (seconds).
func CameraAt(t float64) Camera {
	eye := rotateY(CameraOrbitStart, t*CameraOrbitSpeed)
	return Camera{
		Position: eye,
		View:     mgl32.LookAtV(eye, CameraTarget, CameraUp),
	}
}

// ModelMatrix returns T · Rx(pitch) · Rz(roll) · S for time t.
func ModelMatrix(t float64) mgl32.Mat4 {
	pitch := float32(t*ModelPitchSpeed + ModelPitchOffset)
	roll := float32(t * ModelRollSpeed)

	return mgl32.Translate3D(ModelTranslation.Elem()).
		Mul4(mgl32.HomogRotate3DX(pitch)).
		Mul4(mgl32.HomogRotate3DZ(roll)).
		Mul4(mgl32.Scale3D(ModelScale.Elem()))
}

// MirrorMatrix returns Ry(spin) · Rx(tilt) · T(offset) for time t.
func MirrorMatrix(t float64) mgl32.Mat4 {
	spin := float32(t * MirrorSpinSpeed)

	return mgl32.HomogRotate3DY(spin).
		Mul4(mgl32.HomogRotate3DX(MirrorTilt)).
		Mul4(mgl32.Translate3D(MirrorOffset.Elem()))
}

// Frame is everything the renderer needs for one tick. It is a pure function of Time
// and the viewport aspect ratio.
type Frame struct {
	Time       float64
	Projection mgl32.Mat4
	Camera     Camera
	Model      mgl32.Mat4
	Mirror     mgl32.Mat4
	Lights     []Light
	Ambient    mgl32.Vec3
}

// FrameAt derives the full animation state for time t.
func FrameAt(t float64, aspectRatio float32) Frame {
	return Frame{
		Time:       t,
		Projection: DefaultLens.ProjectionMatrix(aspectRatio),
		Camera:     CameraAt(t),
		Model:      ModelMatrix(t),
		Mirror:     MirrorMatrix(t),
		Lights:     LightsAt(t),
		Ambient:    AmbientLightColor,
	}
}

// Reflection returns the reflection matrix across this frame's mirror plane.
func (f *Frame) Reflection() mgl32.Mat4 {
	return ReflectionMatrix(f.Mirror, MirrorNormal)
}

// Matrices computes the per-draw matrices for viewing the frame from cam.
func (f *Frame) Matrices(cam Camera) Matrices {
	return ComputeMatrices(cam, f.Projection, f.Model, f.Mirror)
}
