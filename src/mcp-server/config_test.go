// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HIPCERT_CONFIG_FILE", "")

	config, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 30, config.Defaults.ValidityDays)
	assert.Equal(t, 30, config.Defaults.Timeout)
	assert.Empty(t, config.Defaults.KeyFile)
}

func TestLoadConfig_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"defaults": {"validityDays": 7, "timeoutSeconds": 60, "keyFile": "/etc/hip/key.pem"}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	config, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7, config.Defaults.ValidityDays)
	assert.Equal(t, 60, config.Defaults.Timeout)
	assert.Equal(t, "/etc/hip/key.pem", config.Defaults.KeyFile)
}

func TestLoadConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "defaults:\n  validityDays: 14\n  timeoutSeconds: 45\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	config, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 14, config.Defaults.ValidityDays)
	assert.Equal(t, 45, config.Defaults.Timeout)
}

func TestLoadConfig_EnvVariable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "defaults:\n  validityDays: 90\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	t.Setenv("HIPCERT_CONFIG_FILE", path)

	config, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 90, config.Defaults.ValidityDays)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"defaults": {"validityDays": -5, "timeoutSeconds": 0}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	// Nonsense values from the file fall back to the defaults.
	config, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 30, config.Defaults.ValidityDays)
	assert.Equal(t, 30, config.Defaults.Timeout)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, err = loadConfig(path)
	require.Error(t, err)
}

func TestDetectConfigFormat(t *testing.T) {
	assert.Equal(t, configFormatYAML, detectConfigFormat("config.yaml"))
	assert.Equal(t, configFormatYAML, detectConfigFormat("config.YML"))
	assert.Equal(t, configFormatJSON, detectConfigFormat("config.json"))
	assert.Equal(t, configFormatJSON, detectConfigFormat("config"))
}

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
}
