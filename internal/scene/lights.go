package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// NumLights must match the array length declared by the model shader.
const NumLights = 2

// LightOrbitSpeed is the Y-axis angular speed of every light, in rad/s.
const LightOrbitSpeed = 5.0

// LightPeriod is the time after which every light is back at its base position.
const LightPeriod = 2 * math.Pi / LightOrbitSpeed

var AmbientLightColor = mgl32.Vec3{0.1, 0.8, 0.55}

var (
	lightBasePositions = [NumLights]mgl32.Vec3{
		{-50, 0, 50},
		{50, 0, 50},
	}
	lightColors = [NumLights]mgl32.Vec3{
		{0.30, 0.0, 0.2},
		{0.1, 0.7, 0.7},
	}
)

// Light is a point light
type Light struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// LightsAt rotates the base light positions about the origin for time t.
func LightsAt(t float64) []Light {
	lights := make([]Light, NumLights)
	for i := range lights {
		lights[i] = Light{
			Position: rotateY(lightBasePositions[i], t*LightOrbitSpeed),
			Color:    lightColors[i],
		}
	}
	return lights
}

// LightBuffers holds lights packed as flat xyz arrays for uniform upload.
type LightBuffers struct {
	Positions []float32
	Colors    []float32
}

// PackLights flattens lights into two parallel buffers of len(lights)*3 floats.
func PackLights(lights []Light) LightBuffers {
	b := LightBuffers{
		Positions: make([]float32, 0, len(lights)*3),
		Colors:    make([]float32, 0, len(lights)*3),
	}
	for _, l := range lights {
		b.Positions = append(b.Positions, l.Position[:]...)
		b.Colors = append(b.Colors, l.Color[:]...)
	}
	return b
}
