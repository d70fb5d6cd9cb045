package scoring

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeightsSumToOne(t *testing.T) {
	w := DefaultWeights()
	assert.InDelta(t, 1.0, w.Sum(), 0.001)
	require.NoError(t, w.Validate())
}

func TestWeightsValidate(t *testing.T) {
	w := DefaultWeights()
	w.Climate = 0.5
	assert.Error(t, w.Validate(), "sum above 1.0")

	w = DefaultWeights()
	w.Climate = -0.20
	w.Latent = 0.60
	assert.Error(t, w.Validate(), "negative weight")
}

func TestLoadWeightsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.json")
	// partial file: listed factors override, the rest keep defaults
	require.NoError(t, os.WriteFile(path, []byte(`{"climate":0.25,"latent":0.15}`), 0o644))

	w, err := LoadWeightsFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0.25, w.Climate)
	assert.Equal(t, 0.15, w.Latent)
	assert.Equal(t, 0.15, w.Occasion)
}

func TestLoadWeightsFromFileMissing(t *testing.T) {
	w, err := LoadWeightsFromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	// caller still gets usable defaults
	assert.NoError(t, w.Validate())
}

func TestLoadWeightsFromFileRejectsBadSum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"climate":0.90}`), 0o644))

	_, err := LoadWeightsFromFile(path)
	assert.Error(t, err)
}
