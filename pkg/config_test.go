package filecleaner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)

	all := config.GetAllConfig()
	assert.Equal(t, DefaultKeyWidth, all.Key.Width)
	assert.Equal(t, "human", all.Output.Format)
	assert.Equal(t, 0, all.Verbose.Level)
	assert.Equal(t, "", all.Verbose.Debug)
}

func TestConfigMissingFileUsesDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config")

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, DefaultKeyWidth, config.GetKeyConfig().Width)

	// Loading must not create the file.
	_, err = os.Stat(configPath)
	assert.True(t, os.IsNotExist(err), "LoadConfig must not write a config file")
}

func TestConfigLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config")

	content := "[key]\nwidth = 4\n\n[output]\nformat = fdupes\n\n[verbose]\nlevel = 2\ndebug = scan\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	all := config.GetAllConfig()
	assert.Equal(t, 4, all.Key.Width)
	assert.Equal(t, "fdupes", all.Output.Format)
	assert.Equal(t, 2, all.Verbose.Level)
	assert.Equal(t, "scan", all.Verbose.Debug)
}

func TestConfigOverrides(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)

	err = config.ApplyOverrides([]string{
		"width:2",
		"format:json",
		"level:3",
		"debug:scan,compare",
	})
	require.NoError(t, err)

	all := config.GetAllConfig()
	assert.Equal(t, 2, all.Key.Width)
	assert.Equal(t, "json", all.Output.Format)
	assert.Equal(t, 3, all.Verbose.Level)
	assert.Equal(t, "scan,compare", all.Verbose.Debug)
}

func TestConfigInvalidOverrides(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Error(t, config.ApplyOverrides([]string{"no-separator"}))
	assert.Error(t, config.ApplyOverrides([]string{"unknown:value"}))
}

func TestConfigSaveAndReload(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config")

	config, err := LoadConfig(configPath)
	require.NoError(t, err)
	require.NoError(t, config.SetKeyWidth(2))

	reloaded, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.GetKeyConfig().Width)
}

func TestConfigSaveWithoutPath(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Error(t, config.Save())
}

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"human", "json", "fdupes", "JSON", "Human"} {
		assert.NoError(t, ValidateOutputFormat(format), format)
	}
	for _, format := range []string{"", "xml", "csv"} {
		assert.Error(t, ValidateOutputFormat(format), format)
	}
}

func TestValidateVerboseLevel(t *testing.T) {
	for level := 0; level <= 3; level++ {
		assert.NoError(t, ValidateVerboseLevel(level))
	}
	assert.Error(t, ValidateVerboseLevel(-1))
	assert.Error(t, ValidateVerboseLevel(4))
}
