// Command markertest runs marker detection on a single still and prints the results.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"marker-tracker/internal/annotate"
	"marker-tracker/internal/contour"
	"marker-tracker/internal/frame"
	"marker-tracker/internal/logger"
	"marker-tracker/internal/marker"

	"gocv.io/x/gocv"
)

func main() {
	imagePath := flag.String("image", "", "Path to a frame still (TIFF, PNG, or JPEG)")
	outPath := flag.String("out", "", "Optional path for the annotated image")
	mask := flag.Int("mask", contour.DefaultParams().MaskColumns, "Columns masked from the left edge")
	threshold := flag.Float64("threshold", contour.DefaultParams().BinaryThreshold, "Binary threshold")
	shortEdge := flag.Float64("short-edge", marker.DefaultParams().ShortEdgeMax, "Short edge length limit (px)")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn, error")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: markertest -image <path> [-out annotated.png] [-mask 1200] [-threshold 190]")
		os.Exit(1)
	}

	level, err := logger.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.NewConsole(level)

	img, err := frame.LoadImage(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	bounds := img.Bounds()
	fmt.Printf("Loaded image: %dx%d pixels\n", bounds.Dx(), bounds.Dy())

	mat := frame.ImageToMat(img)
	defer mat.Close()

	cparams := contour.DefaultParams().WithMask(*mask).WithThreshold(*threshold)
	mparams := marker.DefaultParams().WithShortEdgeMax(*shortEdge)
	fmt.Printf("\nDetection parameters:\n")
	fmt.Printf("  Mask: %d columns, threshold %.0f, min area %.0f, epsilon %.4f\n",
		cparams.MaskColumns, cparams.BinaryThreshold, cparams.MinContourArea, cparams.ApproxEpsilon)
	fmt.Printf("  Short edge < %.0f px, bright > %d, step scale %.2f\n",
		mparams.ShortEdgeMax, mparams.BrightLevel, mparams.StepScale)

	cands, err := contour.ExtractPolygons(mat, cparams)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Extraction failed: %v\n", err)
		os.Exit(1)
	}
	defer cands.Close()
	fmt.Printf("\n%d contours, %d pentagon candidates\n", cands.Contours, len(cands.Polygons))

	overlay := annotate.NewOverlay(&mat)
	overlay.Polygons(cands.Polygons)

	detector := marker.NewDetector(mparams, log)
	gray := frame.NewMatGray(cands.Gray)

	fmt.Printf("\n%-4s %8s %8s %6s %4s %10s %10s %s\n",
		"#", "Px", "Py", "Bits", "ID", "X", "Y", "Status")
	fmt.Println(strings.Repeat("-", 64))
	found := 0
	for i, poly := range cands.Polygons {
		det, err := detector.ReadMarker(poly, gray, overlay)
		if err != nil {
			fmt.Printf("%-4d %8s %8s %6s %4s %10s %10s %v (area %.0f)\n",
				i, "-", "-", "-", "-", "-", "-", err, poly.Area())
			continue
		}
		found++
		fmt.Printf("%-4d %8d %8d %6s %4d %10.2f %10.2f ok\n",
			i, det.Origin.X, det.Origin.Y, det.Bits, det.ID, det.Offset.X, det.Offset.Y)
	}
	fmt.Printf("\nDecoded %d of %d candidates\n", found, len(cands.Polygons))

	if *outPath != "" {
		if !gocv.IMWrite(*outPath, mat) {
			fmt.Fprintf(os.Stderr, "Failed to write %s\n", *outPath)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *outPath)
	}
}
