package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func mirrorPoses() map[string]mgl32.Mat4 {
	return map[string]mgl32.Mat4{
		"identity":    mgl32.Ident4(),
		"frame t=0":   MirrorMatrix(0),
		"frame t=2.5": MirrorMatrix(2.5),
		"frame t=97":  MirrorMatrix(97),
		"tilted and lifted": mgl32.Translate3D(1, 2, -3).
			Mul4(mgl32.HomogRotate3D(0.7, mgl32.Vec3{1, 1, 0}.Normalize())),
		"wall": mgl32.HomogRotate3DX(math.Pi / 2).Mul4(mgl32.Translate3D(0, 4, 0)),
		"non-uniform scale": MirrorMatrix(1.1).
			Mul4(mgl32.Scale3D(3, 0.5, 2)),
	}
}

// TestReflectionIsInvolution verifies reflecting twice is the identity
func TestReflectionIsInvolution(t *testing.T) {
	for name, mirror := range mirrorPoses() {
		r := ReflectionMatrix(mirror, MirrorNormal)
		if rr := r.Mul4(r); !matApprox(rr, mgl32.Ident4(), 1e-5) {
			t.Errorf("%s: R·R = %v, want identity", name, rr)
		}

		p := mgl32.Vec3{0.3, -7, 12}
		if got := ReflectPoint(r, ReflectPoint(r, p)); !vec3Approx(got, p, 1e-4) {
			t.Errorf("%s: reflect(reflect(%v)) = %v", name, p, got)
		}
	}
}

// TestReflectionFixesPlanePoints verifies points on the mirror surface map to themselves
func TestReflectionFixesPlanePoints(t *testing.T) {
	local := []mgl32.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{0, 0, 1},
		{-0.75, 0, 0.4},
		{5, 0, -3},
	}
	for name, mirror := range mirrorPoses() {
		r := ReflectionMatrix(mirror, MirrorNormal)
		for _, l := range local {
			w := mgl32.TransformCoordinate(l, mirror)
			if got := ReflectPoint(r, w); !vec3Approx(got, w, 1e-4) {
				t.Errorf("%s: plane point %v moved to %v", name, w, got)
			}
		}
	}
}

// TestReflectionNegatesPlaneDistance verifies a point off the plane lands at the same
// distance on the opposite side
func TestReflectionNegatesPlaneDistance(t *testing.T) {
	mirror := MirrorMatrix(0.8)
	n := NormalMatrix(mirror).Mul3x1(MirrorNormal).Normalize()
	origin := mirror.Col(3).Vec3()
	r := ReflectionMatrix(mirror, MirrorNormal)

	p := mgl32.Vec3{1, 2, 3}
	before := n.Dot(p.Sub(origin))
	after := n.Dot(ReflectPoint(r, p).Sub(origin))
	if math.Abs(float64(before+after)) > 1e-4 {
		t.Errorf("signed distance %f reflected to %f, want %f", before, after, -before)
	}
}

// TestReflectionMatrixLayout checks the horizontal mirror through y = -1
func TestReflectionMatrixLayout(t *testing.T) {
	r := ReflectionMatrix(mgl32.Translate3D(0, -1, 0), MirrorNormal)
	want := mgl32.Mat4{
		1, 0, 0, 0,
		0, -1, 0, 0,
		0, 0, 1, 0,
		0, -2, 0, 1,
	}
	if !matApprox(r, want, 1e-6) {
		t.Errorf("got %v, want %v", r, want)
	}
}

// TestReflectedCameraSeesMirroredScene verifies the mirrored camera observes R·p
// exactly where the real camera observes p
func TestReflectedCameraSeesMirroredScene(t *testing.T) {
	f := FrameAt(3.7, 16.0/9.0)
	r := f.Reflection()
	cam := f.Camera
	mirrored := cam.Reflected(r)

	if want := ReflectPoint(r, cam.Position); !vec3Approx(mirrored.Position, want, 1e-5) {
		t.Fatalf("reflected camera at %v, want %v", mirrored.Position, want)
	}

	points := []mgl32.Vec3{
		{0, 1, -0.5},
		{0.5, 0.2, 0.1},
		{-1, 1.5, 1},
	}
	for _, p := range points {
		direct := cam.View.Mul4x1(p.Vec4(1))
		viaMirror := mirrored.View.Mul4x1(ReflectPoint(r, p).Vec4(1))
		if !vec4Approx(direct, viaMirror, 1e-3) {
			t.Errorf("point %v: direct %v, via mirror %v", p, direct, viaMirror)
		}

		d1 := cam.Position.Sub(p).Len()
		d2 := mirrored.Position.Sub(ReflectPoint(r, p)).Len()
		if math.Abs(float64(d1-d2)) > 1e-3 {
			t.Errorf("point %v: eye distance %f vs mirrored %f", p, d1, d2)
		}
	}
}

// TestNormalMatrixUnderNonUniformScale verifies normals stay perpendicular to surfaces
func TestNormalMatrixUnderNonUniformScale(t *testing.T) {
	m := mgl32.Scale3D(1, 4, 1).Mul4(mgl32.HomogRotate3DZ(math.Pi / 4))
	tangent := m.Mat3().Mul3x1(mgl32.Vec3{1, -1, 0})
	normal := NormalMatrix(m).Mul3x1(mgl32.Vec3{1, 1, 0})
	if d := tangent.Dot(normal); math.Abs(float64(d)) > 1e-5 {
		t.Errorf("transformed normal not perpendicular: dot = %f", d)
	}
}
