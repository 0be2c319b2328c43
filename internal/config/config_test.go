package config

import (
	"os"
	"path/filepath"
	"testing"

	"marker-tracker/internal/marker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadPartialConfig(t *testing.T) {
	path := writeConfig(t, "tuning.json", `{"short_edge_max": 95, "bright_level": 170, "fps": 25}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.ShortEdgeMax)
	assert.Equal(t, 95.0, *cfg.ShortEdgeMax)
	assert.Nil(t, cfg.MaskColumns)

	params := cfg.ApplyMarker(marker.DefaultParams())
	assert.Equal(t, 95.0, params.ShortEdgeMax)
	assert.Equal(t, uint8(170), params.BrightLevel)
	assert.Equal(t, marker.DefaultParams().StepScale, params.StepScale)
	assert.Equal(t, marker.DefaultParams().Radius, params.Radius)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	_, err := Load(writeConfig(t, "tuning.yaml", `{}`))
	assert.ErrorContains(t, err, ".json extension")

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "broken.json", `{"fps":`))
	assert.ErrorContains(t, err, "parse")

	_, err = Load(writeConfig(t, "range.json", `{"bright_level": 300}`))
	assert.ErrorContains(t, err, "bright_level")

	_, err = Load(writeConfig(t, "fourcc.json", `{"fourcc": "mp4"}`))
	assert.ErrorContains(t, err, "fourcc")

	_, err = Load(writeConfig(t, "step.json", `{"step_scale": 2.5}`))
	assert.ErrorContains(t, err, "step_scale")
}

func TestApplyMarkerNilConfig(t *testing.T) {
	var cfg *TuningConfig
	assert.Equal(t, marker.DefaultParams(), cfg.ApplyMarker(marker.DefaultParams()))
}

func TestPathsFor(t *testing.T) {
	p := PathsFor("../data", "out", 4)
	assert.Equal(t, filepath.Join("..", "data", "obj04.mp4"), p.Input)
	assert.Equal(t, filepath.Join("..", "data", "obj4_marker.mp4"), p.Output)
	assert.Equal(t, filepath.Join("out", "obj4_marker.csv"), p.Records)
}

func TestResolveObject(t *testing.T) {
	n, err := ResolveObject("ganesh")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = ResolveObject("2")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = ResolveObject("Parrot")
	assert.ErrorContains(t, err, "Toucan, Dino, Cracker, Ganesh")
}
