package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeed(t *testing.T) {
	params, err := ParseSeed(Intermediate.Seed())
	require.NoError(t, err)
	assert.Equal(t, Intermediate, params)

	_, err = ParseSeed("10:10")
	assert.Error(t, err)

	_, err = ParseSeed("ten:10:10")
	assert.Error(t, err)
}

func TestPresets(t *testing.T) {
	presets := Presets()
	require.Len(t, presets, 3)
	for i, d := range presets {
		level := i + 1
		assert.Equal(t, GameParams{10 * level, 10 * level, 10 * level}, d.GameParams, d.Name)
		assert.NoError(t, d.Validate())
	}

	// callers get a copy
	presets[0].Width = 1
	assert.Equal(t, Easy, Presets()[0].GameParams)
}

func TestPresetLookup(t *testing.T) {
	tests := []struct {
		name string
		want GameParams
	}{
		{"easy", Easy},
		{"Intermediate", Intermediate},
		{" HARD ", Hard},
	}
	for _, test := range tests {
		params, err := Preset(test.name)
		require.NoError(t, err, test.name)
		assert.Equal(t, test.want, params)
	}

	_, err := Preset("impossible")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
