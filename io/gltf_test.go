package io

import (
	"path/filepath"
	"testing"

	"camrig/camera"
	"camrig/math"
	"camrig/rig"
)

func TestGLTFRoundTrip(t *testing.T) {
	r := rig.Views6(2, false)
	in := camera.DefaultIntrinsic()

	path := filepath.Join(t.TempDir(), "rig.gltf")
	if err := ExportGLTF(path, "hexa", r, in); err != nil {
		t.Fatalf("ExportGLTF: %v", err)
	}

	f, err := ImportGLTF(path)
	if err != nil {
		t.Fatalf("ImportGLTF: %v", err)
	}

	back := f.Rig()
	if len(back.Positions) != len(r.Positions) {
		t.Fatalf("positions = %d, expected %d", len(back.Positions), len(r.Positions))
	}
	for i, p := range r.Positions {
		if back.Positions[i].Distance(p) > 1e-5 {
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

	// The shared intrinsic survives up to the aspect-based image size
	if f.Intrinsic.Projection != "perspective" {
		t.Errorf("projection = %q", f.Intrinsic.Projection)
	}
	if absDiff(f.Intrinsic.FOV, in.FOV) > 1e-3 {
		t.Errorf("fov = %v, expected %v", f.Intrinsic.FOV, in.FOV)
	}
	if absDiff(f.Intrinsic.Near, in.Near) > 1e-6 || absDiff(f.Intrinsic.Far, in.Far) > 1e-5 {
		t.Errorf("clip planes = %v/%v, expected %v/%v", f.Intrinsic.Near, f.Intrinsic.Far, in.Near, in.Far)
	}
	aspect := f.Intrinsic.ImageSize[0] / f.Intrinsic.ImageSize[1]
	if absDiff(aspect, in.Aspect()) > 1e-4 {
		t.Errorf("aspect = %v, expected %v", aspect, in.Aspect())
	}
}

func TestGLTFOrthographic(t *testing.T) {
	in, err := camera.NewIntrinsic(60, 0.5, 20, math.NewVec2(512, 256), camera.Orthographic)
	if err != nil {
		t.Fatalf("NewIntrinsic: %v", err)
	}
	r := rig.Polygon(5, 1.5, false)

	path := filepath.Join(t.TempDir(), "ortho.gltf")
	if err := ExportGLTF(path, "ring", r, in); err != nil {
		t.Fatalf("ExportGLTF: %v", err)
	}
	f, err := ImportGLTF(path)
	if err != nil {
		t.Fatalf("ImportGLTF: %v", err)
	}

	if f.Intrinsic.Projection != "orthographic" {
		t.Errorf("projection = %q", f.Intrinsic.Projection)
	}
	if absDiff(f.Intrinsic.FOV, 60) > 1e-3 {
		t.Errorf("fov = %v, expected 60", f.Intrinsic.FOV)
	}
	aspect := f.Intrinsic.ImageSize[0] / f.Intrinsic.ImageSize[1]
	if absDiff(aspect, 2) > 1e-4 {
		t.Errorf("aspect = %v, expected 2", aspect)
	}

	// An open 5-chain: 4 edges
	if len(f.Rig().Edges) != 4 {
		t.Errorf("edges = %d, expected 4", len(f.Rig().Edges))
	}
}

func TestGLTFCameraKind(t *testing.T) {
	// glTF derives the camera type from whichever sub-struct is set, so
	// exactly one of Perspective/Orthographic must be non-nil.
	persp, err := gltfCamera("p", camera.DefaultIntrinsic())
	if err != nil {
		t.Fatalf("gltfCamera(perspective): %v", err)
	}
	if persp.Perspective == nil || persp.Orthographic != nil {
		t.Errorf("perspective camera: Perspective=%v, Orthographic=%v", persp.Perspective, persp.Orthographic)
	}

	in, err := camera.NewIntrinsic(60, 0.5, 20, math.NewVec2(256, 256), camera.Orthographic)
	if err != nil {
		t.Fatalf("NewIntrinsic: %v", err)
	}
	ortho, err := gltfCamera("o", in)
	if err != nil {
		t.Fatalf("gltfCamera(orthographic): %v", err)
	}
	if ortho.Orthographic == nil || ortho.Perspective != nil {
		t.Errorf("orthographic camera: Perspective=%v, Orthographic=%v", ortho.Perspective, ortho.Orthographic)
	}
}

func TestImportGLTFMissing(t *testing.T) {
	if _, err := ImportGLTF(filepath.Join(t.TempDir(), "nope.gltf")); err == nil {
		t.Error("ImportGLTF(missing file): expected error")
	}
}
