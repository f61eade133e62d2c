package meshdata

import "github.com/go-gl/mathgl/mgl32"

// ComputeNormals fills Normals with area-weighted vertex normals accumulated from the
// faces sharing each vertex. Existing normals are left untouched.
func (m *Mesh) ComputeNormals() {
	if m.HasNormals() {
		return
	}
	n := m.VertexCount()
	acc := make([]mgl32.Vec3, n)
	pos := func(i uint32) mgl32.Vec3 {
		return mgl32.Vec3{m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2]}
	}
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, c := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		// Unnormalized cross product weights by triangle area
		face := pos(b).Sub(pos(a)).Cross(pos(c).Sub(pos(a)))
		acc[a] = acc[a].Add(face)
		acc[b] = acc[b].Add(face)
		acc[c] = acc[c].Add(face)
	}

	m.Normals = make([]float32, 0, n*3)
	for _, v := range acc {
		if v.Len() > 0 {
			v = v.Normalize()
		} else {
			v = mgl32.Vec3{0, 1, 0}
		}
		m.Normals = append(m.Normals, v[0], v[1], v[2])
	}
}
