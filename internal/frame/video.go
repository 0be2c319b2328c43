// Package frame reads and writes the frames the tracker works on.
package frame

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Source reads BGR frames from a video file.
type Source struct {
	path string
	cap  *gocv.VideoCapture
}

// OpenSource opens a video file for reading.
func OpenSource(path string) (*Source, error) {
	vc, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open video %s: %w", path, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("failed to open video %s", path)
	}
	return &Source{path: path, cap: vc}, nil
}

// Path returns the file the source reads from.
func (s *Source) Path() string {
	return s.path
}

// FrameCount returns the container's frame count. It can be an estimate.
func (s *Source) FrameCount() int {
	return int(s.cap.Get(gocv.VideoCaptureFrameCount))
}

// Next reads the next frame into m. It returns false at end of stream.
func (s *Source) Next(m *gocv.Mat) bool {
	return s.cap.Read(m) && !m.Empty()
}

// Close releases the capture.
func (s *Source) Close() error {
	return s.cap.Close()
}

// SinkParams describes the annotated output video.
type SinkParams struct {
	FourCC string
	FPS    float64
	Width  int
	Height int
}

// DefaultSinkParams matches the recorded footage: 1080p at 29.97 fps, mp4v.
func DefaultSinkParams() SinkParams {
	return SinkParams{
		FourCC: "mp4v",
		FPS:    29.97,
		Width:  1920,
		Height: 1080,
	}
}

// Sink writes BGR frames to a video file.
type Sink struct {
	w *gocv.VideoWriter
}

// CreateSink opens a video file for writing.
func CreateSink(path string, params SinkParams) (*Sink, error) {
	vw, err := gocv.VideoWriterFile(path, params.FourCC, params.FPS, params.Width, params.Height, true)
	if err != nil {
		return nil, fmt.Errorf("failed to create video %s: %w", path, err)
	}
	if !vw.IsOpened() {
		vw.Close()
		return nil, fmt.Errorf("failed to create video %s (codec %s)", path, params.FourCC)
	}
	return &Sink{w: vw}, nil
}

// Write appends one frame.
func (s *Sink) Write(m gocv.Mat) error {
	return s.w.Write(m)
}

// Close finalizes the file.
func (s *Sink) Close() error {
	return s.w.Close()
}
