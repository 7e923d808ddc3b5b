package bot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTuningFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "strategy.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultTuning(t *testing.T) {
	tuning := DefaultTuning()

	assert.InDelta(t, 0.75, tuning.RaiseConfidence, 0.0001)
	assert.InDelta(t, 0.45, tuning.PlayConfidence, 0.0001)
	assert.InDelta(t, 2.0, tuning.OpenFactor, 0.0001)
	assert.InDelta(t, 2.5, tuning.LateOpenFactor, 0.0001)
	assert.InDelta(t, 1.5, tuning.LimpRaiseFactor, 0.0001)
	assert.InDelta(t, 0.6, tuning.ContinuationFactor, 0.0001)
	assert.InDelta(t, 1.0, tuning.ValueFactor, 0.0001)
	assert.InDelta(t, 0.6, tuning.SemiBluffFactor, 0.0001)
	assert.InDelta(t, 2.5, tuning.PreflopCallOdds, 0.0001)
	assert.InDelta(t, 1.5, tuning.DefendOdds, 0.0001)
	assert.InDelta(t, 3.0, tuning.DrawOdds, 0.0001)

	assert.NoError(t, DefaultTuning().validate())
}

func TestLoadTuning(t *testing.T) {
	path := writeTuningFile(t, `
strategy {
  raise_confidence = 0.8
  open_factor      = 3.0
}
`)

	tuning, err := LoadTuning(path)
	require.NoError(t, err)

	assert.InDelta(t, 0.8, tuning.RaiseConfidence, 0.0001)
	assert.InDelta(t, 3.0, tuning.OpenFactor, 0.0001)
	// Everything else keeps its default
	assert.InDelta(t, 0.45, tuning.PlayConfidence, 0.0001)
	assert.InDelta(t, 2.5, tuning.LateOpenFactor, 0.0001)
	assert.InDelta(t, 3.0, tuning.DrawOdds, 0.0001)
}

func TestLoadTuningEmptyFile(t *testing.T) {
	path := writeTuningFile(t, "")

	tuning, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), tuning)
}

func TestLoadTuningInvalidValues(t *testing.T) {
	path := writeTuningFile(t, `
strategy {
  raise_confidence = 0.4
  play_confidence  = 0.9
}
`)

	_, err := LoadTuning(path)
	assert.ErrorContains(t, err, "play_confidence")
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)
}

func TestLoadTuningMalformed(t *testing.T) {
	path := writeTuningFile(t, "strategy {")
	_, err := LoadTuning(path)
	assert.Error(t, err)
}
