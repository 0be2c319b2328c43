// Package config holds the tracker's file layout and optional tuning overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"marker-tracker/internal/marker"
)

// TuningConfig overrides the built-in detection and video constants.
// Nil fields keep their defaults, so partial files are safe.
type TuningConfig struct {
	// Contour extraction
	MaskColumns     *int     `json:"mask_columns,omitempty"`
	BinaryThreshold *float64 `json:"binary_threshold,omitempty"`
	MinContourArea  *float64 `json:"min_contour_area,omitempty"`
	ApproxEpsilon   *float64 `json:"approx_epsilon,omitempty"` // Fraction of the contour perimeter

	// Marker reading
	ShortEdgeMax     *float64 `json:"short_edge_max,omitempty"`
	BrightLevel      *int     `json:"bright_level,omitempty"`
	StepScale        *float64 `json:"step_scale,omitempty"`
	FirstCorrection  *float64 `json:"first_correction,omitempty"`
	OtherCorrection  *float64 `json:"other_correction,omitempty"`
	AngleStepDegrees *float64 `json:"angle_step_degrees,omitempty"`
	Radius           *float64 `json:"radius,omitempty"`

	// Annotated video output
	FourCC *string  `json:"fourcc,omitempty"`
	FPS    *float64 `json:"fps,omitempty"`
	Width  *int     `json:"width,omitempty"`
	Height *int     `json:"height,omitempty"`
}

const maxConfigSize = 1 * 1024 * 1024 // 1MB

// Load reads a TuningConfig from a .json file and validates it.
func Load(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg TuningConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cleanPath, err)
	}
	return &cfg, nil
}

// Validate checks that every set field is within range.
func (c *TuningConfig) Validate() error {
	if c.MaskColumns != nil && *c.MaskColumns < 0 {
		return fmt.Errorf("mask_columns must be >= 0, got %d", *c.MaskColumns)
	}
	if c.BinaryThreshold != nil && (*c.BinaryThreshold < 0 || *c.BinaryThreshold > 255) {
		return fmt.Errorf("binary_threshold must be in [0, 255], got %v", *c.BinaryThreshold)
	}
	if c.ApproxEpsilon != nil && *c.ApproxEpsilon <= 0 {
		return fmt.Errorf("approx_epsilon must be positive, got %v", *c.ApproxEpsilon)
	}
	if c.ShortEdgeMax != nil && *c.ShortEdgeMax <= 0 {
		return fmt.Errorf("short_edge_max must be positive, got %v", *c.ShortEdgeMax)
	}
	if c.BrightLevel != nil && (*c.BrightLevel < 0 || *c.BrightLevel > 255) {
		return fmt.Errorf("bright_level must be in [0, 255], got %d", *c.BrightLevel)
	}
	if c.StepScale != nil && (*c.StepScale <= 0 || *c.StepScale*float64(marker.CodeLength) >= 10) {
		return fmt.Errorf("step_scale must be in (0, %v), got %v", 10/float64(marker.CodeLength), *c.StepScale)
	}
	for name, v := range map[string]*float64{
		"first_correction": c.FirstCorrection,
		"other_correction": c.OtherCorrection,
	} {
		if v != nil && (*v <= 0 || *v > 1) {
			return fmt.Errorf("%s must be in (0, 1], got %v", name, *v)
		}
	}
	if c.FourCC != nil && len(*c.FourCC) != 4 {
		return fmt.Errorf("fourcc must be 4 characters, got %q", *c.FourCC)
	}
	if c.FPS != nil && *c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %v", *c.FPS)
	}
	if (c.Width != nil && *c.Width <= 0) || (c.Height != nil && *c.Height <= 0) {
		return fmt.Errorf("width and height must be positive")
	}
	return nil
}

// ApplyMarker returns p with the marker overrides applied.
func (c *TuningConfig) ApplyMarker(p marker.Params) marker.Params {
	if c == nil {
		return p
	}
	if c.ShortEdgeMax != nil {
		p = p.WithShortEdgeMax(*c.ShortEdgeMax)
	}
	if c.BrightLevel != nil {
		p = p.WithBrightLevel(uint8(*c.BrightLevel))
	}
	if c.StepScale != nil {
		p.StepScale = *c.StepScale
	}
	if c.FirstCorrection != nil {
		p.FirstCorrection = *c.FirstCorrection
	}
	if c.OtherCorrection != nil {
		p.OtherCorrection = *c.OtherCorrection
	}
	if c.AngleStepDegrees != nil {
		p.AngleStepDegrees = *c.AngleStepDegrees
	}
	if c.Radius != nil {
		p.Radius = *c.Radius
	}
	return p
}

// Paths is the file layout for one tracked object.
type Paths struct {
	Input   string // Source video
	Output  string // Annotated video
	Records string // Per-frame marker records (CSV)
}

// PathsFor returns the file layout for object n. Videos live in dataDir,
// the record file in recordDir.
func PathsFor(dataDir, recordDir string, n int) Paths {
	return Paths{
		Input:   filepath.Join(dataDir, fmt.Sprintf("obj0%d.mp4", n)),
		Output:  filepath.Join(dataDir, fmt.Sprintf("obj%d_marker.mp4", n)),
		Records: filepath.Join(recordDir, fmt.Sprintf("obj%d_marker.csv", n)),
	}
}
