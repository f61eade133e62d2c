package renderer

import (
	"fmt"

	"mirror-demo/internal/profiling"
	"mirror-demo/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Renderer draws one frame as reflection pre-pass, main pass, then mirror composite
type Renderer struct {
	surface    Surface
	reflection Target

	skybox Renderable
	model  Renderable
	mirror Renderable
}

// NewRenderer initializes every renderable. Any failure is returned immediately and
// the renderables initialized so far are disposed.
func NewRenderer(surface Surface, reflection Target, skybox, model, mirror Renderable) (*Renderer, error) {
	r := &Renderer{
		surface:    surface,
		reflection: reflection,
		skybox:     skybox,
		model:      model,
		mirror:     mirror,
	}

	rs := r.renderables()
	for i, rd := range rs {
		if err := rd.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
	}
	return r, nil
}

func (r *Renderer) renderables() []Renderable {
	return []Renderable{r.skybox, r.model, r.mirror}
}

// Render executes the three stages for frame f
func (r *Renderer) Render(f *scene.Frame) {
	w, h := r.surface.Size()
	screen := mgl32.Vec2{float32(w), float32(h)}
	lights := scene.PackLights(f.Lights)

	func() {
		defer profiling.Track("renderer.reflection")()
		r.renderReflection(f, lights, screen)
	}()

	var main scene.Matrices
	func() {
		defer profiling.Track("renderer.main")()
		main = r.drawScene(PassMain, f, f.Camera, lights, screen)
	}()

	func() {
		defer profiling.Track("renderer.mirror")()
		r.mirror.Render(RenderContext{
			Pass:       PassMain,
			Frame:      f,
			Matrices:   main,
			Lights:     lights,
			ScreenSize: screen,
		})
	}()
}

// renderReflection draws the scene from the mirrored camera into the reflection target.
// Reflection inverts handedness, so front faces are culled instead of back faces.
func (r *Renderer) renderReflection(f *scene.Frame, lights scene.LightBuffers, screen mgl32.Vec2) {
	cam := f.Camera.Reflected(f.Reflection())

	r.surface.BindTarget(r.reflection)
	r.drawScene(PassReflection, f, cam, lights, screen)
	r.surface.SetCullFace(CullBack)
	r.surface.BindTarget(nil)
}

func (r *Renderer) drawScene(pass Pass, f *scene.Frame, cam scene.Camera, lights scene.LightBuffers, screen mgl32.Vec2) scene.Matrices {
	m := f.Matrices(cam)
	ctx := RenderContext{
		Pass:       pass,
		Frame:      f,
		Matrices:   m,
		Lights:     lights,
		ScreenSize: screen,
	}

	r.surface.Clear()

	// The skybox quad sits on the far plane; it is wound clockwise so it survives
	// front-face culling, and skips depth so it never occludes.
	r.surface.SetDepthTest(false)
	r.surface.SetCullFace(CullFront)
	r.skybox.Render(ctx)

	r.surface.SetDepthTest(true)
	r.surface.SetCullFace(ModelCullFace(pass, f.Model))
	r.model.Render(ctx)

	r.surface.SetCullFace(PassCullFace(pass))
	return m
}

// PassCullFace is the culling used for ordinary geometry in pass.
func PassCullFace(pass Pass) CullFace {
	if pass == PassReflection {
		return CullFront
	}
	return CullBack
}

// ModelCullFace accounts for a mirroring model transform on top of the pass culling.
func ModelCullFace(pass Pass, model mgl32.Mat4) CullFace {
	face := PassCullFace(pass)
	if scene.FlipsWinding(model) {
		face = face.Opposite()
	}
	return face
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	rs := r.renderables()
	for i := len(rs) - 1; i >= 0; i-- {
		rs[i].Dispose()
	}
}
