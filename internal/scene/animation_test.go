package scene

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// TestModelMatrixAtTimeZero verifies the only remaining rotation at t = 0 is the fixed
// -90° pitch, which folds the negative Y scale into the Z column
func TestModelMatrixAtTimeZero(t *testing.T) {
	want := mgl32.Mat4{
		0.3, 0, 0, 0,
		0, 0, 0.3, 0,
		0, 0.3, 0, 0,
		0, 1, -0.5, 1,
	}
	got := ModelMatrix(0)
	if !matApprox(got, want, 1e-6) {
		t.Errorf("ModelMatrix(0) = %v, want %v", got, want)
	}
	if !FlipsWinding(got) {
		t.Errorf("model matrix should mirror geometry (det = %f)", got.Mat3().Det())
	}
}

func TestCameraAtTimeZero(t *testing.T) {
	cam := CameraAt(0)
	if cam.Position != CameraOrbitStart {
		t.Errorf("camera at %v, want %v", cam.Position, CameraOrbitStart)
	}
	want := mgl32.LookAtV(CameraOrbitStart, CameraTarget, CameraUp)
	if cam.View != want {
		t.Errorf("view = %v, want %v", cam.View, want)
	}
}

// TestCameraOrbitKeepsHeightAndRadius verifies the camera stays on its circular path
func TestCameraOrbitKeepsHeightAndRadius(t *testing.T) {
	radius := mgl32.Vec2{CameraOrbitStart.X(), CameraOrbitStart.Z()}.Len()
	for _, tm := range []float64{0, 1, 12.5, 400} {
		p := CameraAt(tm).Position
		if math.Abs(float64(p.Y()-CameraOrbitStart.Y())) > 1e-6 {
			t.Errorf("t=%v: height %f", tm, p.Y())
		}
		if r := (mgl32.Vec2{p.X(), p.Z()}).Len(); math.Abs(float64(r-radius)) > 1e-4 {
			t.Errorf("t=%v: radius %f, want %f", tm, r, radius)
		}
	}
}

func TestMirrorMatrixAtTimeZero(t *testing.T) {
	want := mgl32.HomogRotate3DX(MirrorTilt).Mul4(mgl32.Translate3D(0, -1, 0))
	if got := MirrorMatrix(0); !matApprox(got, want, 1e-6) {
		t.Errorf("MirrorMatrix(0) = %v, want %v", got, want)
	}
}

// TestLightsArePeriodic verifies a full rotation period returns every light to its position
func TestLightsArePeriodic(t *testing.T) {
	for _, start := range []float64{0, 0.4, 1.7, 30} {
		a := LightsAt(start)
		b := LightsAt(start + LightPeriod)
		if len(a) != NumLights || len(b) != NumLights {
			t.Fatalf("expected %d lights, got %d and %d", NumLights, len(a), len(b))
		}
		for i := range a {
			if !vec3Approx(a[i].Position, b[i].Position, 1e-3) {
				t.Errorf("t=%v light %d: %v after one period became %v", start, i, a[i].Position, b[i].Position)
			}
			if a[i].Color != b[i].Color {
				t.Errorf("light %d color changed", i)
			}
		}
	}
}

func TestLightsAtTimeZeroUseBasePositions(t *testing.T) {
	lights := LightsAt(0)
	for i, l := range lights {
		if l.Position != lightBasePositions[i] {
			t.Errorf("light %d at %v, want %v", i, l.Position, lightBasePositions[i])
		}
	}
}

func TestPackLights(t *testing.T) {
	b := PackLights(LightsAt(0))
	wantPos := []float32{-50, 0, 50, 50, 0, 50}
	wantCol := []float32{0.30, 0.0, 0.2, 0.1, 0.7, 0.7}
	if len(b.Positions) != len(wantPos) || len(b.Colors) != len(wantCol) {
		t.Fatalf("buffer sizes %d/%d, want %d", len(b.Positions), len(b.Colors), NumLights*3)
	}
	for i := range wantPos {
		if b.Positions[i] != wantPos[i] {
			t.Errorf("positions[%d] = %f, want %f", i, b.Positions[i], wantPos[i])
		}
		if b.Colors[i] != wantCol[i] {
			t.Errorf("colors[%d] = %f, want %f", i, b.Colors[i], wantCol[i])
		}
	}
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func TestDriverLifecycle(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	d := NewDriver(clock.Now)

	if d.State() != StateUninitialized {
		t.Fatalf("new driver state = %v", d.State())
	}
	if _, err := d.Tick(1.5); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("Tick before Start: err = %v, want ErrNotRunning", err)
	}

	d.Start()
	if d.State() != StateRunning {
		t.Fatalf("state after Start = %v", d.State())
	}

	f, err := d.Tick(1.5)
	if err != nil {
		t.Fatal(err)
	}
	if f.Time != 0 {
		t.Errorf("first frame time = %v, want 0", f.Time)
	}
	if !matApprox(f.Model, ModelMatrix(0), 1e-7) {
		t.Errorf("first frame model matrix not at t=0")
	}

	clock.now = clock.now.Add(2500 * time.Millisecond)
	d.Start() // already running; must not reset the epoch
	f, err = d.Tick(1.5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(f.Time-2.5) > 1e-9 {
		t.Errorf("frame time = %v, want 2.5", f.Time)
	}
	if f.Camera != CameraAt(2.5) {
		t.Errorf("camera does not match CameraAt(2.5)")
	}
}

// TestFrameIsPureFunctionOfTime verifies no state leaks between frames
func TestFrameIsPureFunctionOfTime(t *testing.T) {
	a := FrameAt(12.34, 1.5)
	_ = FrameAt(99, 0.5)
	b := FrameAt(12.34, 1.5)
	if a.Model != b.Model || a.Mirror != b.Mirror || a.Camera != b.Camera || a.Projection != b.Projection {
		t.Errorf("frames at the same time differ")
	}
}
