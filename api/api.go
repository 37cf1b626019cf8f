package api

import (
	"bytes"
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/voxeltools/litematic/litematic"
)

// ToGLB converts a .litematic file held in memory into a binary glTF
// scene, one node per region. Vertex colors come from the per-state color
// derivation, faces are flat-shaded.
func ToGLB(data []byte) ([]byte, error) {
	s, err := litematic.FromBytes(data)
	if err != nil {
		return nil, err
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "litematic -> GLB"

	pbr := &gltf.PBRMetallicRoughness{BaseColorFactor: &[4]float32{1, 1, 1, 1}, MetallicFactor: gltf.Float(0), RoughnessFactor: gltf.Float(1)}
	doc.Materials = []*gltf.Material{{PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque}}

	for name, region := range s.Regions {
		mesh := region.GenerateMesh()
		if len(mesh.Vertices) == 0 {
			continue
		}

		positions := make([][3]float32, len(mesh.Vertices))
		colors := make([][4]float32, len(mesh.Vertices))
		for i, v := range mesh.Vertices {
			positions[i] = v.Position
			colors[i] = litematic.StateColor(mesh.Palette[v.State])
		}
		indices := make([]uint32, len(mesh.Indices))
		copy(indices, mesh.Indices)

		// flat normals per face
		normals := make([][3]float32, len(positions))
		for i := 0; i < len(indices); i += 3 {
			v0, v1, v2 := indices[i], indices[i+1], indices[i+2]
			p0, p1, p2 := positions[v0], positions[v1], positions[v2]
			vec1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
			vec2 := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
			cross := [3]float32{
				vec1[1]*vec2[2] - vec1[2]*vec2[1],
				vec1[2]*vec2[0] - vec1[0]*vec2[2],
				vec1[0]*vec2[1] - vec1[1]*vec2[0],
			}
			length := float32(math.Sqrt(float64(cross[0]*cross[0] + cross[1]*cross[1] + cross[2]*cross[2])))
			if length > 0 {
				cross[0] /= length
				cross[1] /= length
				cross[2] /= length
			}
			normals[v0] = cross
			normals[v1] = cross
			normals[v2] = cross
		}

		posAccessor := modeler.WritePosition(doc, positions)
		normalAccessor := modeler.WriteNormal(doc, normals)
		colorAccessor := modeler.WriteColor(doc, colors)
		indicesAccessor := modeler.WriteIndices(doc, indices)

		prim := &gltf.Primitive{
			Attributes: map[string]uint32{
				gltf.POSITION: uint32(posAccessor),
				gltf.NORMAL:   uint32(normalAccessor),
				gltf.COLOR_0:  uint32(colorAccessor),
			},
			Indices:  gltf.Index(uint32(indicesAccessor)),
			Material: gltf.Index(0),
		}
		meshIdx := uint32(len(doc.Meshes))
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: name, Primitives: []*gltf.Primitive{prim}})
		nodeIdx := uint32(len(doc.Nodes))
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Mesh: gltf.Index(meshIdx)})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, nodeIdx)
	}

	if len(doc.Meshes) == 0 {
		return nil, fmt.Errorf("schematic has no blocks to mesh")
	}

	var out bytes.Buffer
	enc := gltf.NewEncoder(&out)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Reencode decodes and re-encodes a .litematic file in memory. Volumes are
// normalized, unused palette entries are dropped and the metadata counters
// are recomputed; block content and opaque payloads are preserved.
func Reencode(data []byte) ([]byte, error) {
	s, err := litematic.FromBytes(data)
	if err != nil {
		return nil, err
	}
	return s.Bytes()
}
