package skybox

import (
	"image"
	"path/filepath"

	"mirror-demo/internal/graphics"
	renderer "mirror-demo/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Quad covers the whole viewport on the far plane. Its triangles are wound clockwise so
// they survive front-face culling.
var (
	Positions = []float32{
		-1, 1, 1,
		1, 1, 1,
		-1, -1, 1,
		1, -1, 1,
	}
	Indices = []uint32{0, 1, 2, 2, 1, 3}
)

// Skybox draws the environment cubemap behind everything else
type Skybox struct {
	shadersDir string
	faces      [6]*image.RGBA

	shader  *graphics.Shader
	mesh    *graphics.Mesh
	cubemap uint32
}

// NewSkybox creates a skybox over faces ordered +X, -X, +Y, -Y, +Z, -Z
func NewSkybox(shadersDir string, faces [6]*image.RGBA) *Skybox {
	return &Skybox{shadersDir: filepath.Join(shadersDir, "skybox"), faces: faces}
}

// Init compiles the shader and uploads the quad and cubemap
func (s *Skybox) Init() error {
	var err error
	s.shader, err = graphics.NewShader(
		filepath.Join(s.shadersDir, "skybox.vert"),
		filepath.Join(s.shadersDir, "skybox.frag"),
	)
	if err != nil {
		return err
	}

	s.mesh, err = graphics.NewMesh([]graphics.Attribute{{Location: 0, Size: 3, Data: Positions}}, Indices)
	if err != nil {
		return err
	}

	s.cubemap, err = graphics.NewCubemap(s.faces)
	if err != nil {
		return err
	}
	// Pixel data lives on the GPU now
	s.faces = [6]*image.RGBA{}
	return nil
}

// Render draws the sky using the view-projection with translation removed
func (s *Skybox) Render(ctx renderer.RenderContext) {
	s.shader.Use()
	s.shader.SetMatrix4(graphics.UniformViewProjectionInv, ctx.Matrices.SkyboxViewProjectionInverse)

	graphics.BindTexture(0, gl.TEXTURE_CUBE_MAP, s.cubemap)
	s.shader.SetInt(graphics.SamplerCubemap, 0)

	s.mesh.Draw()
}

// Dispose cleans up OpenGL resources
func (s *Skybox) Dispose() {
	if s.mesh != nil {
		s.mesh.Delete()
	}
	graphics.DeleteTexture(&s.cubemap)
	if s.shader != nil {
		s.shader.Delete()
	}
}
