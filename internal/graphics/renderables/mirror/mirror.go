package mirror

import (
	"fmt"
	"image"
	"path/filepath"

	"mirror-demo/internal/config"
	"mirror-demo/internal/graphics"
	renderer "mirror-demo/internal/graphics/renderer"
	"mirror-demo/internal/meshdata"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attribute locations in mirror.vert
const (
	LocPosition = 0
	LocUV       = 1
)

// Texture units
const (
	unitReflection = 0
	unitDistortion = 1
)

// Mirror composites the reflection texture onto the mirror plane, perturbed by a
// noise map.
type Mirror struct {
	shadersDir string
	data       meshdata.Mesh
	noise      *image.RGBA
	reflection *graphics.RenderTarget

	shader     *graphics.Shader
	mesh       *graphics.Mesh
	distortion uint32
}

// NewMirror creates a mirror that samples reflection's color attachment
func NewMirror(shadersDir string, data meshdata.Mesh, noise *image.RGBA, reflection *graphics.RenderTarget) *Mirror {
	return &Mirror{
		shadersDir: filepath.Join(shadersDir, "mirror"),
		data:       data,
		noise:      noise,
		reflection: reflection,
	}
}

func (m *Mirror) Init() error {
	if err := m.data.Validate(); err != nil {
		return err
	}
	if m.noise == nil || m.reflection == nil {
		return fmt.Errorf("mirror needs a distortion map and a reflection target")
	}

	var err error
	m.shader, err = graphics.NewShader(
		filepath.Join(m.shadersDir, "mirror.vert"),
		filepath.Join(m.shadersDir, "mirror.frag"),
	)
	if err != nil {
		return err
	}

	m.mesh, err = graphics.NewMesh([]graphics.Attribute{
		{Location: LocPosition, Size: 3, Data: m.data.Positions},
		{Location: LocUV, Size: 2, Data: m.data.UVs},
	}, m.data.Indices)
	if err != nil {
		return err
	}

	m.distortion, err = graphics.NewTexture2D(m.noise, graphics.TextureOptions{Wrap: gl.REPEAT})
	if err != nil {
		return err
	}
	m.data = meshdata.Mesh{}
	m.noise = nil
	return nil
}

func (m *Mirror) Render(ctx renderer.RenderContext) {
	m.shader.Use()
	m.shader.SetMatrix4(graphics.UniformModelViewProjection, ctx.Matrices.MirrorModelViewProjection)
	m.shader.SetVector2(graphics.UniformScreenSize, ctx.ScreenSize)
	m.shader.SetFloat(graphics.UniformDistortionStrength, config.GetDistortionStrength())

	graphics.BindTexture(unitReflection, gl.TEXTURE_2D, m.reflection.ColorTexture())
	m.shader.SetInt(graphics.SamplerReflection, unitReflection)
	graphics.BindTexture(unitDistortion, gl.TEXTURE_2D, m.distortion)
	m.shader.SetInt(graphics.SamplerDistortionMap, unitDistortion)

	m.mesh.Draw()

	gl.ActiveTexture(gl.TEXTURE0)
}

// Dispose releases the mirror's own resources; the reflection target is owned by the caller
func (m *Mirror) Dispose() {
	if m.mesh != nil {
		m.mesh.Delete()
	}
	graphics.DeleteTexture(&m.distortion)
	if m.shader != nil {
		m.shader.Delete()
	}
}
