package renderer

import (
	"mirror-demo/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// CullFace selects which triangle facing is discarded
type CullFace int

const (
	CullBack CullFace = iota
	CullFront
)

// Opposite swaps front and back.
func (c CullFace) Opposite() CullFace {
	if c == CullBack {
		return CullFront
	}
	return CullBack
}

func (c CullFace) String() string {
	if c == CullFront {
		return "front"
	}
	return "back"
}

// Target is an off-screen framebuffer the surface can render into
type Target interface {
	Framebuffer() uint32
	Size() (width, height int)
}

// Surface is the rendering capability set the frame renderer depends on
type Surface interface {
	// Size returns the default framebuffer's dimensions in pixels.
	Size() (width, height int)
	// BindTarget redirects drawing into t and sets the viewport to its size; nil
	// restores the default framebuffer and viewport.
	BindTarget(t Target)
	Clear()
	SetDepthTest(enabled bool)
	SetCullFace(face CullFace)
}

// Pass identifies which of the frame's scene draws is running
type Pass int

const (
	PassReflection Pass = iota
	PassMain
)

func (p Pass) String() string {
	if p == PassReflection {
		return "reflection"
	}
	return "main"
}

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Pass     Pass
	Frame    *scene.Frame
	Matrices scene.Matrices
	Lights   scene.LightBuffers
	// ScreenSize is the default framebuffer size, also during the reflection pass.
	ScreenSize mgl32.Vec2
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
}
