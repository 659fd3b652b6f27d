package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMapping(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "class_mapping.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadClassMapping(t *testing.T) {
	t.Parallel()

	path := writeMapping(t, `{"0":"abs_strong","1":"abs_weak","2":"chest_strong"}`)

	mapping, err := LoadClassMapping(path)
	require.NoError(t, err)

	assert.Equal(t, ClassMapping{"abs_strong", "abs_weak", "chest_strong"}, mapping)
}

func TestLoadClassMapping_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadClassMapping(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadClassMapping_Empty(t *testing.T) {
	t.Parallel()

	path := writeMapping(t, `{}`)

	_, err := LoadClassMapping(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoadClassMapping_NonNumericIndex(t *testing.T) {
	t.Parallel()

	path := writeMapping(t, `{"zero":"abs_strong"}`)

	_, err := LoadClassMapping(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-numeric")
}

func TestLoadClassMapping_Gap(t *testing.T) {
	t.Parallel()

	path := writeMapping(t, `{"0":"abs_strong","2":"chest_strong"}`)

	_, err := LoadClassMapping(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not contiguous")
}

func TestToProbabilities(t *testing.T) {
	t.Parallel()

	mapping := ClassMapping{"abs_strong", "abs_weak"}

	probs, err := mapping.ToProbabilities([]float64{0.7, 0.3})
	require.NoError(t, err)

	assert.InDelta(t, 0.7, probs["abs_strong"], 1e-9)
	assert.InDelta(t, 0.3, probs["abs_weak"], 1e-9)
}

func TestToProbabilities_LengthMismatch(t *testing.T) {
	t.Parallel()

	mapping := ClassMapping{"abs_strong", "abs_weak"}

	_, err := mapping.ToProbabilities([]float64{0.7})
	assert.Error(t, err)
}
