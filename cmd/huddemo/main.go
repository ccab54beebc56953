// Command huddemo renders an animated instrument HUD headlessly.
//
// It drives an overlay Manager over the software scene backend, animates a
// heading indicator and an artificial horizon, composites each frame over a
// synthetic background, and writes the frames as PNG files.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/host"
	_ "github.com/gogpu/overlay/host/gpu" // register the gpu backend
	"github.com/gogpu/overlay/widget"
)

func main() {
	var (
		width  = flag.Int("width", 800, "viewport width")
		height = flag.Int("height", 600, "viewport height")
		frames = flag.Int("frames", 8, "number of frames to render")
		outDir = flag.String("out", ".", "output directory")
	)
	flag.Parse()

	scene, err := host.NewScene(host.Options{})
	if err != nil {
		log.Fatalf("scene creation failed: %v", err)
	}
	defer scene.Close()

	software, ok := scene.(*host.SoftwareScene)
	if !ok {
		log.Fatalf("expected the software backend, got %T", scene)
	}
	viewport := &host.FixedViewport{W: *width, H: *height}
	ctx := host.NewContext(scene, viewport)

	// Heading indicator in the top-right corner.
	headingMgr := overlay.NewManager(overlay.WithNamePrefix("HeadingHUD"))
	headingMgr.Attach(ctx)
	headingMgr.SetGeometry(180, 180, 16, 16, overlay.AnchorTopRight)
	headingMgr.SetVisible(true)
	defer headingMgr.Close()

	// Artificial horizon in the bottom-left corner.
	attitudeMgr := overlay.NewManager(overlay.WithNamePrefix("AttitudeHUD"))
	attitudeMgr.Attach(ctx)
	attitudeMgr.SetGeometry(180, 180, 16, 16, overlay.AnchorBottomLeft)
	attitudeMgr.SetVisible(true)
	defer attitudeMgr.Close()

	heading := widget.NewHeadingIndicator()
	attitude := widget.NewAttitudeIndicator()

	for frame := 0; frame < *frames; frame++ {
		t := float64(frame) / float64(*frames)

		// Synthetic attitude: a lazy circling turn.
		roll, pitch, yaw := widget.EulerFromQuaternion(
			0.12*math.Sin(2*math.Pi*t),
			0.08*math.Cos(2*math.Pi*t),
			math.Sin(math.Pi*t),
			math.Cos(math.Pi*t),
		)
		heading.SetHeading(yaw * 180 / math.Pi)
		attitude.SetAttitude(roll*180/math.Pi, pitch*180/math.Pi)

		headingMgr.Render(heading)
		attitudeMgr.Render(attitude)

		frameImg := background(*width, *height)
		software.Composite(frameImg)

		name := filepath.Join(*outDir, fmt.Sprintf("hud_%03d.png", frame))
		if err := savePNG(name, frameImg); err != nil {
			log.Fatalf("failed to save %s: %v", name, err)
		}
	}

	log.Printf("rendered %d frames to %s (%dx%d)\n", *frames, *outDir, *width, *height)
}

// background paints a stand-in for the 3D scene: a vertical gradient.
func background(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h)
		c := color.RGBA{
			R: uint8(30 + t*40),
			G: uint8(45 + t*50),
			B: uint8(70 + t*60),
			A: 255,
		}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, img)
}
