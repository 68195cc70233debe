package io

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"camrig/camera"
	"camrig/math"
	"camrig/rig"
)

// glTF carries no image resolution, only an aspect ratio. Imported rigs get
// this image height and a width derived from the aspect.
const importImageHeight = 256

// ExportGLTF writes the rig as a glTF 2.0 document: one shared glTF camera
// built from the intrinsic, one node per viewpoint holding that camera, and
// a LINES-mode mesh primitive encoding the rig adjacency over the viewpoint
// positions. Spherical rigs must be converted to cartesian before export.
func ExportGLTF(path, name string, r rig.Rig, in *camera.Intrinsic) error {
	doc := gltf.NewDocument()

	cam, err := gltfCamera(name, in)
	if err != nil {
		return fmt.Errorf("gltf export %q: %w", path, err)
	}
	doc.Cameras = append(doc.Cameras, cam)

	// One node per viewpoint, all sharing camera 0
	for i, p := range r.Positions {
		node := &gltf.Node{
			Name:        fmt.Sprintf("%s_%03d", name, i),
			Camera:      gltf.Index(0),
			Translation: [3]float64{float64(p.X), float64(p.Y), float64(p.Z)},
		}
		doc.Nodes = append(doc.Nodes, node)
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, i)
	}

	// Rig adjacency as a line mesh over the viewpoint positions
	positions := make([][3]float32, len(r.Positions))
	for i, p := range r.Positions {
		positions[i] = [3]float32{p.X, p.Y, p.Z}
	}
	indices := make([]uint32, 0, 2*len(r.Edges))
	for _, e := range r.Edges {
		indices = append(indices, uint32(e[0]), uint32(e[1]))
	}

	posAccessor := modeler.WritePosition(doc, positions)
	idxAccessor := modeler.WriteIndices(doc, indices)
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name + "_edges",
		Primitives: []*gltf.Primitive{{
			Attributes: gltf.PrimitiveAttributes{"POSITION": posAccessor},
			Indices:    gltf.Index(idxAccessor),
			Mode:       gltf.PrimitiveLines,
		}},
	})
	meshNode := len(doc.Nodes)
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name + "_edges",
		Mesh: gltf.Index(0),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, meshNode)

	if err := gltf.Save(doc, path); err != nil {
		return fmt.Errorf("gltf save %q: %w", path, err)
	}
	return nil
}

// ImportGLTF reads a rig written by ExportGLTF: viewpoint positions and
// adjacency come from the LINES primitive, the shared intrinsic from the
// first camera in the document. The image size is reconstructed from the
// camera aspect at a height of importImageHeight pixels.
func ImportGLTF(path string) (*RigFile, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	if len(doc.Cameras) == 0 {
		return nil, fmt.Errorf("gltf %q: no camera", path)
	}
	intr, err := intrinsicData(doc.Cameras[0])
	if err != nil {
		return nil, fmt.Errorf("gltf %q: %w", path, err)
	}

	positions, edges, err := readLineMesh(doc)
	if err != nil {
		return nil, fmt.Errorf("gltf %q: %w", path, err)
	}

	r := rig.Rig{Positions: positions, Edges: edges}
	name := doc.Cameras[0].Name
	if name == "" {
		name = "rig"
	}

	f := NewRigFile(name, r, camera.DefaultIntrinsic())
	f.Intrinsic = intr
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("gltf %q: %w", path, err)
	}
	return f, nil
}

// gltfCamera maps an Intrinsic onto the glTF camera model.
func gltfCamera(name string, in *camera.Intrinsic) (*gltf.Camera, error) {
	cam := &gltf.Camera{Name: name}
	switch in.Projection {
	case camera.Perspective:
		aspect := float64(in.Aspect())
		far := float64(in.Far)
		cam.Perspective = &gltf.Perspective{
			AspectRatio: &aspect,
			Yfov:        float64(math.Deg2Rad(in.FOV)),
			Zfar:        &far,
			Znear:       float64(in.Near),
		}
	case camera.Orthographic:
		// xmag/ymag are the half-extents matching 1/M[0][0] and 1/M[1][1]
		t := math32.Tan(math.Deg2Rad(in.FOV) / 2)
		cam.Orthographic = &gltf.Orthographic{
			Xmag:  float64(in.Aspect() * t),
			Ymag:  float64(t),
			Zfar:  float64(in.Far),
			Znear: float64(in.Near),
		}
	default:
		return nil, fmt.Errorf("%w: unknown projection kind %v", camera.ErrInvalidConfig, in.Projection)
	}
	return cam, nil
}

// intrinsicData inverts gltfCamera.
func intrinsicData(cam *gltf.Camera) (IntrinsicData, error) {
	switch {
	case cam.Perspective != nil:
		p := cam.Perspective
		aspect := float32(1)
		if p.AspectRatio != nil {
			aspect = float32(*p.AspectRatio)
		}
		near := float32(p.Znear)
		far := near * 1000 // infinite frustum fallback
		if p.Zfar != nil {
			far = float32(*p.Zfar)
		}
		return IntrinsicData{
			FOV:        math.Rad2Deg(float32(p.Yfov)),
			Near:       near,
			Far:        far,
			ImageSize:  [2]float32{aspect * importImageHeight, importImageHeight},
			Projection: camera.Perspective.String(),
		}, nil
	case cam.Orthographic != nil:
		o := cam.Orthographic
		return IntrinsicData{
			FOV:        math.Rad2Deg(2 * math32.Atan(float32(o.Ymag))),
			Near:       float32(o.Znear),
			Far:        float32(o.Zfar),
			ImageSize:  [2]float32{float32(o.Xmag / o.Ymag) * importImageHeight, importImageHeight},
			Projection: camera.Orthographic.String(),
		}, nil
	}
	return IntrinsicData{}, fmt.Errorf("camera %q has neither perspective nor orthographic parameters", cam.Name)
}

// readLineMesh finds the first LINES primitive and decodes positions and
// edge pairs from it.
func readLineMesh(doc *gltf.Document) ([]math.Vec3, []rig.Edge, error) {
	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveLines {
				continue
			}
			posIdx, ok := prim.Attributes["POSITION"]
			if !ok {
				return nil, nil, fmt.Errorf("lines primitive in mesh %q has no POSITION attribute", mesh.Name)
			}
			raw, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, nil, fmt.Errorf("positions: %w", err)
			}
			positions := make([]math.Vec3, len(raw))
			for i, p := range raw {
				positions[i] = math.NewVec3(p[0], p[1], p[2])
			}

			var edges []rig.Edge
			if prim.Indices != nil {
				indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return nil, nil, fmt.Errorf("indices: %w", err)
				}
				if len(indices)%2 != 0 {
					return nil, nil, fmt.Errorf("lines primitive in mesh %q has odd index count %d", mesh.Name, len(indices))
				}
				edges = make([]rig.Edge, 0, len(indices)/2)
				for i := 0; i < len(indices); i += 2 {
					edges = append(edges, rig.Edge{int(indices[i]), int(indices[i+1])})
				}
			}
			return positions, edges, nil
		}
	}
	return nil, nil, fmt.Errorf("no LINES primitive found")
}
