package scene

import "github.com/go-gl/mathgl/mgl32"

// MirrorNormal is the mirror quad's object-space surface normal.
var MirrorNormal = mgl32.Vec3{0, 1, 0}

// NormalMatrix returns the inverse-transpose of m's upper 3x3 block.
func NormalMatrix(m mgl32.Mat4) mgl32.Mat3 {
	return m.Mat3().Inv().Transpose()
}

// ReflectionMatrix builds the affine matrix that reflects world-space points across the
// plane of a mirror posed by mirror, whose object-space normal is normal.
//
// The plane is dot(n, x) + d = 0 with n the world-space unit normal and d = -dot(n, t),
// t being the mirror's translation. The result is I - 2nnᵗ with -2dn in the translation column.
func ReflectionMatrix(mirror mgl32.Mat4, normal mgl32.Vec3) mgl32.Mat4 {
	n := NormalMatrix(mirror).Mul3x1(normal).Normalize()
	d := -n.Dot(mirror.Col(3).Vec3())

	var r mgl32.Mat4
	r[0] = 1 - 2*n[0]*n[0]
	r[4] = -2 * n[0] * n[1]
	r[8] = -2 * n[0] * n[2]
	r[12] = -2 * d * n[0]

	r[1] = -2 * n[1] * n[0]
	r[5] = 1 - 2*n[1]*n[1]
	r[9] = -2 * n[1] * n[2]
	r[13] = -2 * d * n[1]

	r[2] = -2 * n[2] * n[0]
	r[6] = -2 * n[2] * n[1]
	r[10] = 1 - 2*n[2]*n[2]
	r[14] = -2 * d * n[2]

	r[15] = 1
	return r
}

// ReflectPoint transforms p (w = 1) through r.
func ReflectPoint(r mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, r)
}
