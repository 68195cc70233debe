// Package io persists camera rigs: a JSON .rig format carrying the full
// camera state, and glTF export/import for interchange with DCC tools.
package io

import (
	"encoding/json"
	"fmt"
	"os"

	"camrig/camera"
	"camrig/math"
	"camrig/rig"
)

// RigFileVersion is written into every .rig file.
const RigFileVersion = "1.0"

// RigFile is the top-level structure of the .rig JSON format. Positions are
// always cartesian; spherical rigs are converted before saving.
type RigFile struct {
	Version   string        `json:"version"`
	Name      string        `json:"name"`
	Intrinsic IntrinsicData `json:"intrinsic"`
	Views     []ViewData    `json:"views"`
	Edges     [][2]int      `json:"edges"`
}

// IntrinsicData stores the shared projection parameters of the rig.
type IntrinsicData struct {
	FOV        float32    `json:"fov"`
	Near       float32    `json:"near"`
	Far        float32    `json:"far"`
	ImageSize  [2]float32 `json:"image_size"`
	Projection string     `json:"projection"` // "perspective" or "orthographic"
}

// ViewData stores the pose of one rig viewpoint.
type ViewData struct {
	Position [3]float32 `json:"position"`
	Target   [3]float32 `json:"target"`
	Up       [3]float32 `json:"up"`
}

// NewRigFile packs a generated rig into the file structure. Every view looks
// at the origin with +Y up, which is how the generators arrange viewpoints
// around a subject.
func NewRigFile(name string, r rig.Rig, in *camera.Intrinsic) *RigFile {
	views := make([]ViewData, len(r.Positions))
	for i, p := range r.Positions {
		views[i] = ViewData{
			Position: [3]float32{p.X, p.Y, p.Z},
			Target:   [3]float32{0, 0, 0},
			Up:       [3]float32{0, 1, 0},
		}
	}
	edges := make([][2]int, len(r.Edges))
	for i, e := range r.Edges {
		edges[i] = [2]int{e[0], e[1]}
	}
	return &RigFile{
		Version: RigFileVersion,
		Name:    name,
		Intrinsic: IntrinsicData{
			FOV:        in.FOV,
			Near:       in.Near,
			Far:        in.Far,
			ImageSize:  [2]float32{in.ImageSize.X, in.ImageSize.Y},
			Projection: in.Projection.String(),
		},
		Views: views,
		Edges: edges,
	}
}

// Cameras instantiates one camera per view, each with its own intrinsic copy
// so no state is shared between the returned cameras.
func (f *RigFile) Cameras() ([]*camera.Camera, error) {
	in, err := f.intrinsic()
	if err != nil {
		return nil, err
	}

	cameras := make([]*camera.Camera, len(f.Views))
	for i, v := range f.Views {
		e := camera.NewExtrinsic(
			math.NewVec3(v.Position[0], v.Position[1], v.Position[2]),
			math.NewVec3(v.Target[0], v.Target[1], v.Target[2]),
			math.NewVec3(v.Up[0], v.Up[1], v.Up[2]),
		)
		own := *in
		cameras[i] = camera.New(e, &own, fmt.Sprintf("%s_%03d", f.Name, i))
	}
	return cameras, nil
}

// Rig converts the file back into generator output form.
func (f *RigFile) Rig() rig.Rig {
	positions := make([]math.Vec3, len(f.Views))
	for i, v := range f.Views {
		positions[i] = math.NewVec3(v.Position[0], v.Position[1], v.Position[2])
	}
	edges := make([]rig.Edge, len(f.Edges))
	for i, e := range f.Edges {
		edges[i] = rig.Edge{e[0], e[1]}
	}
	return rig.Rig{Positions: positions, Edges: edges}
}

func (f *RigFile) intrinsic() (*camera.Intrinsic, error) {
	projection, err := camera.ParseProjection(f.Intrinsic.Projection)
	if err != nil {
		return nil, fmt.Errorf("rig %q: %w", f.Name, err)
	}
	return camera.NewIntrinsic(
		f.Intrinsic.FOV,
		f.Intrinsic.Near,
		f.Intrinsic.Far,
		math.NewVec2(f.Intrinsic.ImageSize[0], f.Intrinsic.ImageSize[1]),
		projection,
	)
}

// validate checks the structural invariants of a loaded file.
func (f *RigFile) validate() error {
	if _, err := f.intrinsic(); err != nil {
		return err
	}
	for _, e := range f.Edges {
		for _, idx := range e {
			if idx < 0 || idx >= len(f.Views) {
				return fmt.Errorf("rig %q: edge index %d out of range [0, %d)", f.Name, idx, len(f.Views))
			}
		}
	}
	return nil
}

// SaveRig serializes a rig to a .rig JSON file.
func SaveRig(path string, f *RigFile) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal rig: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadRig deserializes and validates a .rig JSON file.
func LoadRig(path string) (*RigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rig file: %w", err)
	}

	f := &RigFile{}
	if err := json.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("failed to parse rig file: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return f, nil
}
