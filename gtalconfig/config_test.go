package gtalconfig_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stegoweave/gtal/engine"
	"github.com/stegoweave/gtal/gtalconfig"
)

func TestSaveLoad_RoundTripsEveryPreset(t *testing.T) {
	presets := map[string]engine.Params{
		"default":          engine.Default(),
		"imperceptibility": engine.Imperceptibility(),
		"performance":      engine.Performance(),
	}

	for name, want := range presets {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			var buf bytes.Buffer
			require.NoError(gtalconfig.Save(&buf, want))

			got, err := gtalconfig.Load(&buf)
			require.NoError(err)
			require.Equal(want, got)
		})
	}
}

func TestPreset_ResolvesKnownNamesCaseInsensitively(t *testing.T) {
	require := require.New(t)

	p, err := gtalconfig.Preset("Imperceptibility")
	require.NoError(err)
	require.Equal(engine.Imperceptibility(), p)

	p, err = gtalconfig.Preset("")
	require.NoError(err)
	require.Equal(engine.Default(), p)
}

func TestPreset_RejectsUnknownName(t *testing.T) {
	require := require.New(t)

	_, err := gtalconfig.Preset("turbo")
	require.ErrorIs(err, gtalconfig.ErrUnknownPreset)
}

func TestLoadFile_RoundTripsThroughDisk(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	path := dir + "/config.yaml"

	want := engine.Performance()
	require.NoError(gtalconfig.SaveFile(path, want))

	got, err := gtalconfig.LoadFile(path)
	require.NoError(err)
	require.Equal(want, got)
}
