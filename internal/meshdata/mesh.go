package meshdata

import (
	"errors"
	"fmt"
)

// ErrInvalidMesh is wrapped by every Validate failure.
var ErrInvalidMesh = errors.New("invalid mesh")

// Mesh is raw indexed triangle data: 3 floats per position and normal, 2 per UV.
// Normals are optional.
type Mesh struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint32
}

func (m Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

func (m Mesh) HasNormals() bool {
	return len(m.Normals) > 0
}

// Validate checks that every attribute array matches the vertex count and every index
// addresses an existing vertex.
func (m Mesh) Validate() error {
	if len(m.Positions) == 0 || len(m.Positions)%3 != 0 {
		return fmt.Errorf("%w: %d position floats is not a non-zero multiple of 3", ErrInvalidMesh, len(m.Positions))
	}
	n := m.VertexCount()
	if m.HasNormals() && len(m.Normals) != n*3 {
		return fmt.Errorf("%w: %d normal floats for %d vertices", ErrInvalidMesh, len(m.Normals), n)
	}
	if len(m.UVs) != n*2 {
		return fmt.Errorf("%w: %d uv floats for %d vertices", ErrInvalidMesh, len(m.UVs), n)
	}
	if len(m.Indices) == 0 || len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices do not form triangles", ErrInvalidMesh, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d at %d out of range for %d vertices", ErrInvalidMesh, idx, i, n)
		}
	}
	return nil
}

// Plane returns a size×size quad in the XZ plane centered on the origin, facing +Y
// with counter-clockwise winding. It carries positions and UVs only.
func Plane(size float32) Mesh {
	h := size / 2
	return Mesh{
		Positions: []float32{
			-h, 0, h,
			h, 0, h,
			h, 0, -h,
			-h, 0, -h,
		},
		UVs: []float32{
			0, 0,
			1, 0,
			1, 1,
			0, 1,
		},
		Indices: []uint32{
			0, 1, 2,
			0, 2, 3,
		},
	}
}
