package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	SpecularShininess = 50.0
	// SpecularFloor clamps the Phong term from below before exponentiation. It is 0.9,
	// not 0, so every light contributes a faint constant highlight of 0.9^50.
	SpecularFloor = 0.9
)

// Shade evaluates the model fragment shader's lighting on the CPU: ambient plus, per
// light, Lambertian diffuse and a Phong specular term. normal must be unit length.
func Shade(normal, position, cameraPos mgl32.Vec3, ambient mgl32.Vec3, lights []Light) mgl32.Vec3 {
	view := cameraPos.Sub(position).Normalize()
	color := ambient

	for _, l := range lights {
		dir := l.Position.Sub(position).Normalize()

		diffuse := max(dir.Dot(normal), 0)
		r := reflect(dir.Mul(-1), normal)
		specular := float32(math.Pow(float64(max(view.Dot(r), SpecularFloor)), SpecularShininess))

		color = color.Add(l.Color.Mul(diffuse)).Add(mgl32.Vec3{specular, specular, specular})
	}
	return color
}

// reflect matches GLSL reflect(i, n) = i - 2·dot(n, i)·n.
func reflect(i, n mgl32.Vec3) mgl32.Vec3 {
	return i.Sub(n.Mul(2 * n.Dot(i)))
}
