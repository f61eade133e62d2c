package model

import (
	"fmt"
	"image"
	"path/filepath"

	"mirror-demo/internal/graphics"
	renderer "mirror-demo/internal/graphics/renderer"
	"mirror-demo/internal/meshdata"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attribute locations in model.vert
const (
	LocPosition = 0
	LocNormal   = 1
	LocUV       = 2
)

// Model renders the textured, lit mesh
type Model struct {
	shadersDir string
	data       meshdata.Mesh
	image      *image.RGBA

	shader  *graphics.Shader
	mesh    *graphics.Mesh
	texture uint32
}

// NewModel creates a model renderable from CPU mesh data and its diffuse texture
func NewModel(shadersDir string, data meshdata.Mesh, texture *image.RGBA) *Model {
	return &Model{
		shadersDir: filepath.Join(shadersDir, "model"),
		data:       data,
		image:      texture,
	}
}

// Init uploads the mesh and texture and compiles the lighting shader
func (m *Model) Init() error {
	if err := m.data.Validate(); err != nil {
		return err
	}
	if m.image == nil {
		return fmt.Errorf("model texture missing")
	}
	m.data.ComputeNormals()

	var err error
	m.shader, err = graphics.NewShader(
		filepath.Join(m.shadersDir, "model.vert"),
		filepath.Join(m.shadersDir, "model.frag"),
	)
	if err != nil {
		return err
	}

	m.mesh, err = graphics.NewMesh([]graphics.Attribute{
		{Location: LocPosition, Size: 3, Data: m.data.Positions},
		{Location: LocNormal, Size: 3, Data: m.data.Normals},
		{Location: LocUV, Size: 2, Data: m.data.UVs},
	}, m.data.Indices)
	if err != nil {
		return err
	}

	m.texture, err = graphics.NewTexture2D(m.image, graphics.TextureOptions{Wrap: gl.REPEAT, Mipmaps: true})
	if err != nil {
		return err
	}
	m.data = meshdata.Mesh{}
	m.image = nil
	return nil
}

// Render draws the model with the pass's matrices and the frame's lights
func (m *Model) Render(ctx renderer.RenderContext) {
	mx := ctx.Matrices

	m.shader.Use()
	m.shader.SetMatrix4(graphics.UniformModelViewProjection, mx.ModelViewProjection)
	m.shader.SetMatrix4(graphics.UniformModelMatrix, mx.Model)
	m.shader.SetMatrix3(graphics.UniformNormalMatrix, mx.NormalMatrix)
	m.shader.SetVector3(graphics.UniformCameraPos, mx.CameraPosition)
	m.shader.SetVector3(graphics.UniformAmbientLightColor, ctx.Frame.Ambient)
	m.shader.SetVector3Array(graphics.UniformLightPositions, ctx.Lights.Positions)
	m.shader.SetVector3Array(graphics.UniformLightColors, ctx.Lights.Colors)

	graphics.BindTexture(0, gl.TEXTURE_2D, m.texture)
	m.shader.SetInt(graphics.SamplerModelTexture, 0)

	m.mesh.Draw()
}

// Dispose cleans up OpenGL resources
func (m *Model) Dispose() {
	if m.mesh != nil {
		m.mesh.Delete()
	}
	graphics.DeleteTexture(&m.texture)
	if m.shader != nil {
		m.shader.Delete()
	}
}
