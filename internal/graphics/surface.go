package graphics

import (
	"mirror-demo/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLSurface drives fixed-function state on the current GL context
type GLSurface struct {
	width, height int
	clearColor    [4]float32
}

// NewGLSurface prepares the default framebuffer state: counter-clockwise front faces
// with culling enabled.
func NewGLSurface(width, height int) *GLSurface {
	s := &GLSurface{width: width, height: height, clearColor: [4]float32{0, 0, 0, 1}}
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.DepthFunc(gl.LESS)
	gl.Viewport(0, 0, int32(width), int32(height))
	return s
}

// Size returns the default framebuffer's dimensions
func (s *GLSurface) Size() (int, int) { return s.width, s.height }

// BindTarget binds t's framebuffer and viewport, or the default ones when t is nil
func (s *GLSurface) BindTarget(t renderer.Target) {
	if t == nil {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		return
	}
	w, h := t.Size()
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.Framebuffer())
	gl.Viewport(0, 0, int32(w), int32(h))
}

// Clear clears color and depth of the bound framebuffer
func (s *GLSurface) Clear() {
	gl.ClearColor(s.clearColor[0], s.clearColor[1], s.clearColor[2], s.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (s *GLSurface) SetDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

func (s *GLSurface) SetCullFace(face renderer.CullFace) {
	if face == renderer.CullFront {
		gl.CullFace(gl.FRONT)
	} else {
		gl.CullFace(gl.BACK)
	}
}

var _ renderer.Surface = (*GLSurface)(nil)
