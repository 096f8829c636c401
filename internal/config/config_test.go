package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every bound variable so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
}

func TestLoad_MissingToken(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
	assert.Nil(t, cfg)

	var missing *MissingCredentialError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "❌ Missing Hugging Face API Token. Please set it in the .env file.", err.Error())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HUGGINGFACE_TOKEN", "hf_test")

	cfg, err := Load(viper.New(), "")

	require.NoError(t, err)
	assert.Equal(t, "hf_test", cfg.Generation.Token)
	assert.Equal(t, "huggingface", cfg.Generation.Provider)
	assert.Equal(t, 60*time.Second, cfg.Generation.Timeout)
	assert.Equal(t, "mymemory", cfg.Translation.Provider)
	assert.Equal(t, 30*time.Second, cfg.Translation.Timeout)
	assert.Equal(t, ":8501", cfg.Server.Addr)
	assert.Equal(t, 2*time.Minute, cfg.Interview.Timeout)
	assert.False(t, cfg.Interview.ShortCircuitFailures)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_FromEnvFile(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "HUGGINGFACE_TOKEN=hf_from_file\nINTERVIEW_SHORT_CIRCUIT_FAILURES=true\nGENERATION_TIMEOUT=5s\nLOG_FORMAT=pretty\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0644))

	cfg, err := Load(viper.New(), envFile)

	require.NoError(t, err)
	assert.Equal(t, "hf_from_file", cfg.Generation.Token)
	assert.True(t, cfg.Interview.ShortCircuitFailures)
	assert.Equal(t, 5*time.Second, cfg.Generation.Timeout)
	assert.Equal(t, "pretty", cfg.Logger.Format)
}

func TestLoad_ProcessEnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("HUGGINGFACE_TOKEN", "hf_from_env")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("HUGGINGFACE_TOKEN=hf_from_file\n"), 0644))

	cfg, err := Load(viper.New(), envFile)

	require.NoError(t, err)
	assert.Equal(t, "hf_from_env", cfg.Generation.Token)
}

func TestLoad_GeminiNeedsItsOwnKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("GENERATION_PROVIDER", "gemini")
	t.Setenv("HUGGINGFACE_TOKEN", "hf_test")

	_, err := Load(viper.New(), "")

	var missing *MissingCredentialError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "GEMINI_API_KEY", missing.EnvVar)

	t.Setenv("GEMINI_API_KEY", "g_test")
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "g_test", cfg.Generation.GeminiAPIKey)
}

func TestLoad_UnknownProviders(t *testing.T) {
	clearEnv(t)
	t.Setenv("HUGGINGFACE_TOKEN", "hf_test")
	t.Setenv("TRANSLATION_PROVIDER", "babelfish")

	_, err := Load(viper.New(), "")
	assert.ErrorContains(t, err, "babelfish")

	t.Setenv("TRANSLATION_PROVIDER", "")
	t.Setenv("GENERATION_PROVIDER", "oracle")
	_, err = Load(viper.New(), "")
	assert.ErrorContains(t, err, "oracle")
}

func TestLoad_FlagBindingsTakePrecedenceOverDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HUGGINGFACE_TOKEN", "hf_test")

	v := viper.New()
	v.Set("server.addr", ":9000")

	cfg, err := Load(v, "")

	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
}
