package io

import (
	"errors"
	"path/filepath"
	"testing"

	"camrig/camera"
	"camrig/math"
	"camrig/rig"
)

func TestRigFileRoundTrip(t *testing.T) {
	r := rig.Views12(2, false)
	f := NewRigFile("dome", r, camera.DefaultIntrinsic())

	path := filepath.Join(t.TempDir(), "dome.rig")
	if err := SaveRig(path, f); err != nil {
		t.Fatalf("SaveRig: %v", err)
	}
	loaded, err := LoadRig(path)
	if err != nil {
		t.Fatalf("LoadRig: %v", err)
	}

	if loaded.Version != RigFileVersion || loaded.Name != "dome" {
		t.Errorf("header = %q %q", loaded.Version, loaded.Name)
	}
	if len(loaded.Views) != len(r.Positions) {
		t.Fatalf("views = %d, expected %d", len(loaded.Views), len(r.Positions))
	}
	back := loaded.Rig()
	for i, p := range r.Positions {
		if back.Positions[i].Distance(p) > 1e-6 {
			t.Errorf("position %d = %v, expected %v", i, back.Positions[i], p)
		}
	}
	if len(back.Edges) != len(r.Edges) {
		t.Fatalf("edges = %d, expected %d", len(back.Edges), len(r.Edges))
	}
	for i, e := range r.Edges {
		if back.Edges[i] != e {
			t.Errorf("edge %d = %v, expected %v", i, back.Edges[i], e)
		}
	}
	if loaded.Intrinsic.Projection != "perspective" {
		t.Errorf("projection = %q", loaded.Intrinsic.Projection)
	}
}

func TestRigFileCameras(t *testing.T) {
	r := rig.Views6(3, false)
	f := NewRigFile("hexa", r, camera.DefaultIntrinsic())

	cameras, err := f.Cameras()
	if err != nil {
		t.Fatalf("Cameras: %v", err)
	}
	if len(cameras) != 6 {
		t.Fatalf("cameras = %d, expected 6", len(cameras))
	}

	// No intrinsic sharing between the instantiated cameras
	cameras[0].Intrinsic.FOV = 90
	if cameras[1].Intrinsic.FOV == 90 {
		t.Error("cameras share intrinsic state")
	}

	// Every camera looks at the origin from its rig position
	for i, c := range cameras {
		if c.Extrinsic.Position.Distance(r.Positions[i]) > 1e-6 {
			t.Errorf("camera %d position = %v, expected %v", i, c.Extrinsic.Position, r.Positions[i])
		}
		if c.Extrinsic.Target != math.Vec3Zero {
			t.Errorf("camera %d target = %v, expected origin", i, c.Extrinsic.Target)
		}
	}

	// The subject at the origin survives a project/unproject round trip
	// through every instantiated camera
	for i, c := range cameras {
		uvd, err := c.Project([]math.Vec3{math.Vec3Zero}, true)
		if err != nil {
			t.Fatalf("camera %d Project: %v", i, err)
		}
		back, err := c.Unproject(uvd, true)
		if err != nil {
			t.Fatalf("camera %d Unproject: %v", i, err)
		}
		if back[0].Length() > 1e-3 {
			t.Errorf("camera %d: origin round-trips to %v", i, back[0])
		}
	}
}

func TestLoadRigValidation(t *testing.T) {
	dir := t.TempDir()

	f := NewRigFile("bad", rig.Polygon(4, 1, false), camera.DefaultIntrinsic())
	f.Intrinsic.Projection = "fisheye"
	path := filepath.Join(dir, "bad_projection.rig")
	if err := SaveRig(path, f); err != nil {
		t.Fatalf("SaveRig: %v", err)
	}
	if _, err := LoadRig(path); !errors.Is(err, camera.ErrInvalidConfig) {
		t.Errorf("LoadRig(bad projection): expected ErrInvalidConfig, got %v", err)
	}

	f = NewRigFile("bad", rig.Polygon(4, 1, false), camera.DefaultIntrinsic())
	f.Edges = append(f.Edges, [2]int{0, 99})
	path = filepath.Join(dir, "bad_edge.rig")
	if err := SaveRig(path, f); err != nil {
		t.Fatalf("SaveRig: %v", err)
	}
	if _, err := LoadRig(path); err == nil {
		t.Error("LoadRig(out-of-range edge): expected error")
	}
}

func TestLoadRigMissing(t *testing.T) {
	if _, err := LoadRig(filepath.Join(t.TempDir(), "nope.rig")); err == nil {
		t.Error("LoadRig(missing file): expected error")
	}
}

func absDiff(a, b float32) float32 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}
