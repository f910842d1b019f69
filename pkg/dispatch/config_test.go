// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig("")
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), config)

	config, err = ParseConfig("name=plugins, reregister=Reject,strict_unregister=false")
	require.NoError(t, err)
	assert.Equal(t, Config{Name: "plugins", Reregister: Reject, StrictUnregister: false}, config)

	for _, invalid := range []string{"name", "reregister=maybe", "strict_unregister=perhaps", "color=blue"} {
		_, err = ParseConfig(invalid)
		require.Error(t, err, "ParseConfig(%q) should have failed", invalid)
	}
}

func TestLoadConfig(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "dispatch.yaml")
	require.NoError(t, os.WriteFile(filePath, []byte("name: from_file\nreregister: reject\n"), 0o644))
	config, err := LoadConfig(filePath)
	require.NoError(t, err)
	assert.Equal(t, Config{Name: "from_file", Reregister: Reject, StrictUnregister: true}, config)

	require.NoError(t, os.WriteFile(filePath, []byte("reregister: sometimes\n"), 0o644))
	_, err = LoadConfig(filePath)
	require.ErrorContains(t, err, "line 1")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	encoded, err := yaml.Marshal(Config{Name: "x", Reregister: Reject})
	require.NoError(t, err)
	assert.Contains(t, string(encoded), "reregister: reject")
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvConfig, "name=env,reregister=reject")
	config, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "env", config.Name)
	assert.Equal(t, Reject, config.Reregister)

	require.NoError(t, os.Unsetenv(EnvConfig))
	filePath := filepath.Join(t.TempDir(), "dispatch.yaml")
	require.NoError(t, os.WriteFile(filePath, []byte("name: env_file\nstrict_unregister: false\n"), 0o644))
	t.Setenv(EnvConfigFile, filePath)
	config, err = ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{Name: "env_file", Reregister: Overwrite, StrictUnregister: false}, config)

	require.NoError(t, os.Unsetenv(EnvConfigFile))
	previous := DefaultConfig
	defer func() { DefaultConfig = previous }()
	DefaultConfig = "name=package_default"
	config, err = ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "package_default", config.Name)
}
