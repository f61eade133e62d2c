package profiling

import (
	"testing"
	"time"
)

func TestTopNOrdersSlowestFirst(t *testing.T) {
	ResetFrame()
	defer ResetFrame()

	Add("renderer.main", 2100*time.Microsecond)
	Add("renderer.reflection", 4200*time.Microsecond)
	Add("renderer.mirror", 300*time.Microsecond)
	Add("glfw.SwapBuffers", 1*time.Millisecond)

	got := TopN(2)
	want := "renderer.reflection:4.2ms, renderer.main:2.1ms"
	if got != want {
		t.Errorf("TopN(2) = %q, want %q", got, want)
	}

	if all := TopN(10); all != "renderer.reflection:4.2ms, renderer.main:2.1ms, glfw.SwapBuffers:1ms, renderer.mirror:0.3ms" {
		t.Errorf("TopN(10) = %q", all)
	}
}

func TestSumWithPrefix(t *testing.T) {
	ResetFrame()
	defer ResetFrame()

	Add("renderer.main", time.Millisecond)
	Add("renderer.main", time.Millisecond)
	Add("renderer.mirror", 3*time.Millisecond)
	Add("glfw.PollEvents", 7*time.Millisecond)

	if got := SumWithPrefix("renderer."); got != 5*time.Millisecond {
		t.Errorf("SumWithPrefix(renderer.) = %v, want 5ms", got)
	}
	if got := SumWithPrefix("assets."); got != 0 {
		t.Errorf("SumWithPrefix(assets.) = %v, want 0", got)
	}
}

func TestResetFrameClearsTotals(t *testing.T) {
	func() { defer Track("renderer.main")() }()
	if len(Snapshot()) == 0 {
		t.Fatal("Track recorded nothing")
	}
	ResetFrame()
	if n := len(Snapshot()); n != 0 {
		t.Errorf("%d timers left after ResetFrame", n)
	}
	if TopN(3) != "" {
		t.Errorf("TopN on empty frame = %q", TopN(3))
	}
}
