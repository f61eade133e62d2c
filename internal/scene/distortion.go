package scene

import "github.com/go-gl/mathgl/mgl32"

// DefaultDistortionStrength scales the distortion map's red channel into a
// screen-space offset.
const DefaultDistortionStrength = 0.03

// DistortionOffset is the horizontal sampling offset produced by a distortion-map
// sample. Mid-gray (0.5) yields no offset.
func DistortionOffset(sample, strength float32) float32 {
	return (sample - 0.5) * strength
}

// MirrorSampleCoord reproduces the mirror fragment shader: the fragment's window
// coordinate is normalized by the screen size and shifted horizontally by the
// distortion offset. The result addresses the reflection target in [0,1] UV space.
func MirrorSampleCoord(fragCoord, screenSize mgl32.Vec2, sample, strength float32) mgl32.Vec2 {
	uv := mgl32.Vec2{fragCoord[0] / screenSize[0], fragCoord[1] / screenSize[1]}
	uv[0] += DistortionOffset(sample, strength)
	return uv
}
