// Command camrig generates multi-view camera rigs and writes them as .rig
// JSON or glTF files.
//
// Examples:
//
//	camrig -kind 42 -distance 2 -o dome.rig
//	camrig -kind stage -tile-el 6 -tile-az 8 -o stage.gltf
//	camrig -kind polygon -n 12 -projection orthographic -o ring.rig
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"camrig/camera"
	"camrig/io"
	"camrig/math"
	"camrig/rig"
)

func main() {
	var (
		kind       = flag.String("kind", "12", "rig kind: 6, 12, 18, 42, 66, stage or polygon")
		name       = flag.String("name", "rig", "rig name written into the output file")
		distance   = flag.Float64("distance", 1, "camera distance from the origin")
		n          = flag.Int("n", 8, "number of views for -kind polygon")
		tileEl     = flag.Int("tile-el", 6, "elevation bands for -kind stage")
		tileAz     = flag.Int("tile-az", 4, "azimuth steps for -kind stage")
		fov        = flag.Float64("fov", 30, "field of view in degrees")
		near       = flag.Float64("near", 0.1, "near clipping plane")
		far        = flag.Float64("far", 10, "far clipping plane")
		width      = flag.Float64("width", 256, "image width in pixels")
		height     = flag.Float64("height", 256, "image height in pixels")
		projection = flag.String("projection", "perspective", "projection kind: perspective or orthographic")
		output     = flag.String("o", "", "output path (.rig for JSON, .gltf for glTF); empty prints a summary only")
	)
	flag.Parse()

	proj, err := camera.ParseProjection(*projection)
	if err != nil {
		log.Fatalf("camrig: %v", err)
	}
	intrinsic, err := camera.NewIntrinsic(
		float32(*fov), float32(*near), float32(*far),
		math.NewVec2(float32(*width), float32(*height)), proj,
	)
	if err != nil {
		log.Fatalf("camrig: %v", err)
	}

	r, err := buildRig(*kind, float32(*distance), *n, *tileEl, *tileAz)
	if err != nil {
		log.Fatalf("camrig: %v", err)
	}

	file := io.NewRigFile(*name, r, intrinsic)
	fmt.Printf("%s: %d views, %d edges, %s fov=%g\n",
		*name, len(r.Positions), len(r.Edges), proj, *fov)
	reportCoverage(file)

	if *output == "" {
		return
	}
	switch strings.ToLower(filepath.Ext(*output)) {
	case ".gltf", ".glb":
		err = io.ExportGLTF(*output, *name, r, intrinsic)
	default:
		err = io.SaveRig(*output, file)
	}
	if err != nil {
		log.Fatalf("camrig: %v", err)
	}
	fmt.Printf("wrote %s\n", *output)
}

func buildRig(kind string, distance float32, n, tileEl, tileAz int) (rig.Rig, error) {
	switch kind {
	case "6":
		return rig.Views6(distance, false), nil
	case "12":
		return rig.Views12(distance, false), nil
	case "18":
		return rig.Views18(distance, false), nil
	case "42":
		return rig.Views42(distance, false), nil
	case "66":
		return rig.Views66(distance, false), nil
	case "stage":
		return rig.Stage(tileEl, tileAz, distance, false), nil
	case "polygon":
		if n < 2 {
			return rig.Rig{}, fmt.Errorf("polygon rig needs at least 2 views, got %d", n)
		}
		return rig.Polygon(n, distance, false), nil
	}
	return rig.Rig{}, fmt.Errorf("unknown rig kind %q", kind)
}

// reportCoverage counts the views whose frustum contains the subject at the
// origin, a quick sanity check on the chosen distance and clip planes.
func reportCoverage(file *io.RigFile) {
	cameras, err := file.Cameras()
	if err != nil {
		log.Fatalf("camrig: %v", err)
	}

	covered := 0
	for _, c := range cameras {
		f, err := c.Frustum()
		if err != nil {
			log.Fatalf("camrig: %v", err)
		}
		if f.Contains(math.Vec3Zero) {
			covered++
		}
	}
	fmt.Printf("origin visible from %d/%d views\n", covered, len(cameras))
}
