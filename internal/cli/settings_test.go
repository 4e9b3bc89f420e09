package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/slidertrack/pkg/config"
	"github.com/matzehuels/slidertrack/pkg/errors"
	"github.com/matzehuels/slidertrack/pkg/preset"
)

// resolveArgs parses args into a throwaway command and resolves settings.
func resolveArgs(t *testing.T, args ...string) (config.Settings, error) {
	t.Helper()
	f := newSettingsFlags()
	cmd := &cobra.Command{Use: "test"}
	f.bind(cmd)
	cmd.SetContext(context.Background())
	require.NoError(t, cmd.ParseFlags(args))
	return f.resolve(cmd)
}

func TestSettingsFlagsDefaults(t *testing.T) {
	s, err := resolveArgs(t)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), s)
}

func TestSettingsFlagsOverrides(t *testing.T) {
	s, err := resolveArgs(t, "--value", "0.8", "--fill", "min", "--allow-jump", "--jump", "0.1", "--label", "Volume")
	require.NoError(t, err)

	assert.InDelta(t, 0.8, s.HandleValue, 1e-6)
	assert.Equal(t, "min", s.Fill)
	assert.True(t, s.AllowJump)
	assert.InDelta(t, 0.1, s.JumpValue, 1e-6)
	assert.Equal(t, "Volume", s.Label)
	assert.Equal(t, config.Default().SizeY, s.SizeY)
}

func TestSettingsFlagsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slider.toml")
	require.NoError(t, os.WriteFile(path, []byte("handle_value = 0.25\nfill = \"max\"\nsize_y = 20.0\n"), 0o644))

	s, err := resolveArgs(t, "--config", path, "--value", "0.75")
	require.NoError(t, err)

	assert.InDelta(t, 0.75, s.HandleValue, 1e-6, "explicit flag wins over the file")
	assert.Equal(t, "max", s.Fill, "file value kept")
	assert.InDelta(t, 20, s.SizeY, 1e-6)
}

func TestSettingsFlagsPreset(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	store, err := newPresetStore()
	require.NoError(t, err)

	saved := config.Default()
	saved.HandleValue = 0.3
	saved.Fill = "min"
	p, err := preset.New("low", saved)
	require.NoError(t, err)
	require.NoError(t, store.Put(context.Background(), p))

	s, err := resolveArgs(t, "--preset", "low", "--fill", "zero")
	require.NoError(t, err)
	assert.InDelta(t, 0.3, s.HandleValue, 1e-6)
	assert.Equal(t, "zero", s.Fill)

	_, err = resolveArgs(t, "--preset", "missing")
	assert.True(t, errors.Is(err, errors.ErrCodePresetNotFound), "got %v", err)
}

func TestSettingsFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"value out of range", []string{"--value", "1.5"}, errors.ErrCodeInvalidInput},
		{"negative size", []string{"--size-y=-1"}, errors.ErrCodeInvalidInput},
		{"bad fill", []string{"--fill", "sideways"}, errors.ErrCodeInvalidFillRule},
		{"bad anchor", []string{"--anchor", "nowhere"}, errors.ErrCodeInvalidAnchor},
		{"missing file", []string{"--config", "/nonexistent/slider.toml"}, errors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveArgs(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}
