// Package tracker runs marker detection over a whole video.
package tracker

import (
	"context"
	"fmt"
	"time"

	"marker-tracker/internal/annotate"
	"marker-tracker/internal/config"
	"marker-tracker/internal/contour"
	"marker-tracker/internal/frame"
	"marker-tracker/internal/logger"
	"marker-tracker/internal/marker"
	"marker-tracker/internal/record"

	"github.com/rs/zerolog"
	"gocv.io/x/gocv"
)

// Config describes one tracker run.
type Config struct {
	Object  int
	Paths   config.Paths
	Contour contour.Params
	Marker  marker.Params
	Video   frame.SinkParams
}

// NewConfig builds the run configuration for an object, applying any
// tuning overrides (tuning may be nil).
func NewConfig(object int, paths config.Paths, tuning *config.TuningConfig) Config {
	cfg := Config{
		Object:  object,
		Paths:   paths,
		Contour: contour.DefaultParams(),
		Marker:  tuning.ApplyMarker(marker.DefaultParams()),
		Video:   frame.DefaultSinkParams(),
	}
	if tuning == nil {
		return cfg
	}
	if tuning.MaskColumns != nil {
		cfg.Contour = cfg.Contour.WithMask(*tuning.MaskColumns)
	}
	if tuning.BinaryThreshold != nil {
		cfg.Contour = cfg.Contour.WithThreshold(*tuning.BinaryThreshold)
	}
	if tuning.MinContourArea != nil {
		cfg.Contour = cfg.Contour.WithMinArea(*tuning.MinContourArea)
	}
	if tuning.ApproxEpsilon != nil {
		cfg.Contour = cfg.Contour.WithEpsilon(*tuning.ApproxEpsilon)
	}
	if tuning.FourCC != nil {
		cfg.Video.FourCC = *tuning.FourCC
	}
	if tuning.FPS != nil {
		cfg.Video.FPS = *tuning.FPS
	}
	if tuning.Width != nil {
		cfg.Video.Width = *tuning.Width
	}
	if tuning.Height != nil {
		cfg.Video.Height = *tuning.Height
	}
	return cfg
}

// Summary reports what a run processed.
type Summary struct {
	Frames     int
	Candidates int
	Markers    int
	Mismatched int
	Rejected   int
	Elapsed    time.Duration
}

// Run processes every frame of cfg.Paths.Input in order, writes the
// annotated video to cfg.Paths.Output and each frame's records to sink.
// Cancellation is checked between frames.
func Run(ctx context.Context, cfg Config, sink record.Sink, log zerolog.Logger) (Summary, error) {
	log = logger.Component(log, "tracker")
	start := time.Now()
	var sum Summary

	src, err := frame.OpenSource(cfg.Paths.Input)
	if err != nil {
		return sum, err
	}
	defer src.Close()

	out, err := frame.CreateSink(cfg.Paths.Output, cfg.Video)
	if err != nil {
		return sum, err
	}
	defer out.Close()

	total := src.FrameCount()
	log.Info().
		Int("object", cfg.Object).
		Str("input", cfg.Paths.Input).
		Str("output", cfg.Paths.Output).
		Int("frames", total).
		Msg("tracking started")

	detector := marker.NewDetector(cfg.Marker, log)
	img := gocv.NewMat()
	defer img.Close()

	for index := 0; src.Next(&img); index++ {
		if err := ctx.Err(); err != nil {
			return sum, fmt.Errorf("stopped at frame %d: %w", index, err)
		}

		res, err := processFrame(img, index, cfg, detector)
		if err != nil {
			return sum, fmt.Errorf("frame %d: %w", index, err)
		}
		if err := sink.Write(res.Records()); err != nil {
			return sum, fmt.Errorf("frame %d: %w", index, err)
		}
		if err := out.Write(img); err != nil {
			return sum, fmt.Errorf("frame %d: failed to write video: %w", index, err)
		}

		sum.Frames++
		sum.Candidates += len(res.Detections) + res.Mismatched + res.Rejected
		sum.Markers += len(res.Detections)
		sum.Mismatched += res.Mismatched
		sum.Rejected += res.Rejected

		if sum.Frames%100 == 0 {
			log.Info().Int("frame", index).Int("of", total).Int("markers", sum.Markers).Msg("progress")
		}
	}

	sum.Elapsed = time.Since(start)
	log.Info().
		Int("frames", sum.Frames).
		Int("markers", sum.Markers).
		Int("mismatched", sum.Mismatched).
		Int("rejected", sum.Rejected).
		Dur("elapsed", sum.Elapsed).
		Msg("tracking finished")
	return sum, nil
}

// processFrame finds, decodes and draws the markers of one frame in place.
func processFrame(img gocv.Mat, index int, cfg Config, detector *marker.Detector) (marker.FrameResult, error) {
	cands, err := contour.ExtractPolygons(img, cfg.Contour)
	if err != nil {
		return marker.FrameResult{}, err
	}
	defer cands.Close()

	overlay := annotate.NewOverlay(&img)
	overlay.Polygons(cands.Polygons)

	return detector.DetectMarkers(frame.NewMatGray(cands.Gray), cands.Polygons, index, cfg.Object, overlay), nil
}
