package meshdata

import (
	"context"
	"fmt"

	"mirror-demo/internal/logging"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"
)

var identityMatrix = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// LoadGLTF reads every triangle primitive of a .gltf or .glb file into one Mesh.
// Node transforms are not applied; the arrays are taken as authored, and a warning is
// logged for every mesh placed under a transformed node.
func LoadGLTF(ctx context.Context, path string) (Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return Mesh{}, fmt.Errorf("open gltf %s: %w", path, err)
	}

	logger := logging.From(ctx)
	for _, node := range TransformedMeshNodes(doc) {
		logger.Warn("Mesh node transform ignored",
			zap.String("path", path),
			zap.String("node", node.Name),
			zap.Int("mesh", *node.Mesh))
	}

	var out Mesh
	for _, mesh := range doc.Meshes {
		for i, prim := range mesh.Primitives {
			if err := appendPrimitive(&out, doc, prim); err != nil {
				return Mesh{}, fmt.Errorf("mesh %q primitive %d: %w", mesh.Name, i, err)
			}
		}
	}

	if out.VertexCount() == 0 {
		return Mesh{}, fmt.Errorf("%w: no meshes found in %s", ErrInvalidMesh, path)
	}
	if err := out.Validate(); err != nil {
		return Mesh{}, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

func appendPrimitive(out *Mesh, doc *gltf.Document, prim *gltf.Primitive) error {
	if prim.Mode != gltf.PrimitiveTriangles {
		return fmt.Errorf("unsupported primitive mode %v", prim.Mode)
	}

	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}

	uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]
	if !ok {
		return fmt.Errorf("no TEXCOORD_0 attribute")
	}
	uvs, err := modeler.ReadTextureCoord(doc, doc.Accessors[uvIdx], nil)
	if err != nil {
		return fmt.Errorf("read texture coordinates: %w", err)
	}

	var normals [][3]float32
	if nIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[nIdx], nil)
		if err != nil {
			return fmt.Errorf("read normals: %w", err)
		}
	}
	// Mixing primitives with and without normals would misalign the arrays
	if out.VertexCount() > 0 && out.HasNormals() != (normals != nil) {
		return fmt.Errorf("normals present on some primitives only")
	}

	base := uint32(out.VertexCount())
	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	for _, p := range positions {
		out.Positions = append(out.Positions, p[0], p[1], p[2])
	}
	for _, n := range normals {
		out.Normals = append(out.Normals, n[0], n[1], n[2])
	}
	for _, uv := range uvs {
		out.UVs = append(out.UVs, uv[0], uv[1])
	}
	for _, idx := range indices {
		out.Indices = append(out.Indices, base+idx)
	}
	return nil
}

// TransformedMeshNodes returns the nodes referencing a mesh whose own transform, or an
// ancestor's, is not the identity.
func TransformedMeshNodes(doc *gltf.Document) []*gltf.Node {
	parent := make(map[int]int, len(doc.Nodes))
	for i, n := range doc.Nodes {
		for _, c := range n.Children {
			parent[c] = i
		}
	}

	var out []*gltf.Node
	for i, n := range doc.Nodes {
		if n.Mesh == nil {
			continue
		}
		// bounded walk in case of a malformed cyclic hierarchy
		for j, steps := i, 0; steps <= len(doc.Nodes); steps++ {
			if hasTransform(doc.Nodes[j]) {
				out = append(out, n)
				break
			}
			p, ok := parent[j]
			if !ok {
				break
			}
			j = p
		}
	}
	return out
}

func hasTransform(n *gltf.Node) bool {
	return n.MatrixOrDefault() != identityMatrix ||
		n.ScaleOrDefault() != [3]float64{1, 1, 1} ||
		n.RotationOrDefault() != [4]float64{0, 0, 0, 1} ||
		n.Translation != [3]float64{}
}
