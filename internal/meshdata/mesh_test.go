package meshdata

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"mirror-demo/internal/logging"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPlaneFacesUp(t *testing.T) {
	p := Plane(2)
	require.NoError(t, p.Validate())
	assert.Equal(t, 4, p.VertexCount())
	assert.False(t, p.HasNormals())

	vertex := func(i uint32) mgl32.Vec3 {
		return mgl32.Vec3{p.Positions[i*3], p.Positions[i*3+1], p.Positions[i*3+2]}
	}
	for tri := 0; tri < len(p.Indices); tri += 3 {
		a, b, c := vertex(p.Indices[tri]), vertex(p.Indices[tri+1]), vertex(p.Indices[tri+2])
		n := b.Sub(a).Cross(c.Sub(a))
		assert.Greater(t, n.Y(), float32(0), "triangle %d must wind counter-clockwise seen from +Y", tri/3)
	}
	for i := 0; i < p.VertexCount(); i++ {
		v := vertex(uint32(i))
		assert.Equal(t, float32(1), max(abs(v.X()), abs(v.Z())), "vertex %d on the 2x2 outline", i)
	}
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func TestValidate(t *testing.T) {
	good := Mesh{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:   []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		UVs:       []float32{0, 0, 1, 0, 0, 1},
		Indices:   []uint32{0, 1, 2},
	}
	require.NoError(t, good.Validate())

	cases := map[string]func(m *Mesh){
		"empty positions":    func(m *Mesh) { m.Positions = nil },
		"ragged positions":   func(m *Mesh) { m.Positions = m.Positions[:8] },
		"short normals":      func(m *Mesh) { m.Normals = m.Normals[:6] },
		"short uvs":          func(m *Mesh) { m.UVs = m.UVs[:4] },
		"no indices":         func(m *Mesh) { m.Indices = nil },
		"partial triangle":   func(m *Mesh) { m.Indices = []uint32{0, 1} },
		"index out of range": func(m *Mesh) { m.Indices = []uint32{0, 1, 3} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			m := good
			m.Positions = append([]float32(nil), good.Positions...)
			m.Normals = append([]float32(nil), good.Normals...)
			m.UVs = append([]float32(nil), good.UVs...)
			m.Indices = append([]uint32(nil), good.Indices...)
			mutate(&m)
			assert.ErrorIs(t, m.Validate(), ErrInvalidMesh)
		})
	}
}

func writeQuadGLB(t *testing.T, withNormals bool, nodes ...*gltf.Node) string {
	t.Helper()
	doc := gltf.NewDocument()
	doc.Nodes = nodes

	attrs := map[string]int{
		gltf.POSITION: modeler.WritePosition(doc, [][3]float32{
			{-1, 0, 1}, {1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
		}),
		gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, [][2]float32{
			{0, 0}, {1, 0}, {1, 1}, {0, 1},
		}),
	}
	if withNormals {
		attrs[gltf.NORMAL] = modeler.WriteNormal(doc, [][3]float32{
			{0, 1, 0}, {0, 1, 0}, {0, 1, 0}, {0, 1, 0},
		})
	}
	indices := modeler.WriteIndices(doc, []uint32{0, 1, 2, 0, 2, 3})

	doc.Meshes = []*gltf.Mesh{{
		Name: "quad",
		Primitives: []*gltf.Primitive{
			{Indices: gltf.Index(indices), Attributes: attrs},
			{Indices: gltf.Index(indices), Attributes: attrs},
		},
	}}

	path := filepath.Join(t.TempDir(), "quad.glb")
	require.NoError(t, gltf.SaveBinary(doc, path))
	return path
}

func TestLoadGLTFMergesPrimitives(t *testing.T) {
	m, err := LoadGLTF(context.Background(), writeQuadGLB(t, true))
	require.NoError(t, err)

	assert.Equal(t, 8, m.VertexCount())
	assert.True(t, m.HasNormals())
	assert.Len(t, m.UVs, 16)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}, m.Indices)
	assert.Equal(t, []float32{-1, 0, 1}, m.Positions[:3])
	assert.Equal(t, []float32{-1, 0, 1}, m.Positions[12:15])
}

func TestLoadGLTFWithoutNormals(t *testing.T) {
	m, err := LoadGLTF(context.Background(), writeQuadGLB(t, false))
	require.NoError(t, err)
	assert.False(t, m.HasNormals())
	require.NoError(t, m.Validate())
}

func TestLoadGLTFErrors(t *testing.T) {
	_, err := LoadGLTF(context.Background(), filepath.Join(t.TempDir(), "missing.glb"))
	assert.Error(t, err)

	garbage := filepath.Join(t.TempDir(), "garbage.glb")
	require.NoError(t, os.WriteFile(garbage, []byte("not a model"), 0o644))
	_, err = LoadGLTF(context.Background(), garbage)
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.glb")
	require.NoError(t, gltf.SaveBinary(gltf.NewDocument(), empty))
	_, err = LoadGLTF(context.Background(), empty)
	assert.ErrorIs(t, err, ErrInvalidMesh)
}

func TestComputeNormals(t *testing.T) {
	m := Plane(2)
	require.False(t, m.HasNormals())

	m.ComputeNormals()
	require.Len(t, m.Normals, m.VertexCount()*3)
	for i := 0; i < m.VertexCount(); i++ {
		n := mgl32.Vec3{m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2]}
		assert.InDelta(t, 0, n.Sub(mgl32.Vec3{0, 1, 0}).Len(), 1e-6, "vertex %d", i)
	}
	assert.NoError(t, m.Validate())
}

func TestComputeNormalsKeepsExisting(t *testing.T) {
	m := Plane(1)
	m.Normals = make([]float32, m.VertexCount()*3)
	m.ComputeNormals()
	for _, v := range m.Normals {
		assert.Zero(t, v)
	}
}

func TestLoadGLTFWarnsOnNodeTransform(t *testing.T) {
	scaled := &gltf.Node{Name: "scaled", Mesh: gltf.Index(0), Scale: [3]float64{2, 2, 2}}
	path := writeQuadGLB(t, true, scaled)

	core, logs := observer.New(zap.WarnLevel)
	ctx := logging.Context(context.Background(), zap.New(core))

	m, err := LoadGLTF(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []float32{-1, 0, 1}, m.Positions[:3], "positions stay as authored")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Mesh node transform ignored", entry.Message)
	assert.Equal(t, "scaled", entry.ContextMap()["node"])
}

func TestTransformedMeshNodes(t *testing.T) {
	cases := map[string]struct {
		nodes []*gltf.Node
		want  []string
	}{
		"no nodes": {},
		"identity": {
			nodes: []*gltf.Node{{Name: "plain", Mesh: gltf.Index(0)}},
		},
		"explicit identity matrix": {
			nodes: []*gltf.Node{{Name: "plain", Mesh: gltf.Index(0), Matrix: identityMatrix}},
		},
		"translated": {
			nodes: []*gltf.Node{{Name: "moved", Mesh: gltf.Index(0), Translation: [3]float64{0, 1, 0}}},
			want:  []string{"moved"},
		},
		"rotated": {
			nodes: []*gltf.Node{{Name: "turned", Mesh: gltf.Index(0), Rotation: [4]float64{0, 0.7071068, 0, 0.7071068}}},
			want:  []string{"turned"},
		},
		"transformed parent": {
			nodes: []*gltf.Node{
				{Name: "root", Children: []int{1}, Scale: [3]float64{0.01, 0.01, 0.01}},
				{Name: "child", Mesh: gltf.Index(0)},
			},
			want: []string{"child"},
		},
		"transformed node without mesh": {
			nodes: []*gltf.Node{{Name: "empty", Scale: [3]float64{3, 3, 3}}},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			doc := gltf.NewDocument()
			doc.Nodes = c.nodes
			var got []string
			for _, n := range TransformedMeshNodes(doc) {
				got = append(got, n.Name)
			}
			assert.Equal(t, c.want, got)
		})
	}
}
