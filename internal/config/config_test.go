package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhath/quill/internal/assist"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"QUILL_PROVIDER", "QUILL_MODEL", "QUILL_BASE_URL", APIKeyEnv} {
		t.Setenv(k, "")
	}
}

func TestLoadCreatesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "quill", "config.toml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, assist.ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-1.5-flash", cfg.Model)
	assert.Equal(t, assist.LevelDefault, cfg.Level())
	assert.Equal(t, time.Second, cfg.Debounce())
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout())
	assert.Equal(t, []string{"ctrl+e"}, cfg.Keys.Enhance)
	assert.Equal(t, path, cfg.Path())

	info, err := os.Stat(path)
	require.NoError(t, err, "first run writes the file")
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadFromTOML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `provider = "openai"
model = "qwen2.5:1.5b"
base_url = "http://localhost:11434/v1/"
enhancement_level = "formal"
debounce_ms = 250
request_timeout_seconds = 5
theme = "dracula"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"provider", cfg.Provider, "openai"},
		{"model", cfg.Model, "qwen2.5:1.5b"},
		{"base_url", cfg.BaseURL, "http://localhost:11434/v1/"},
		{"level", cfg.Level(), assist.LevelFormal},
		{"debounce", cfg.Debounce(), 250 * time.Millisecond},
		{"timeout", cfg.RequestTimeout(), 5 * time.Second},
		{"theme filled from name", cfg.Theme, GetThemes()["dracula"]},
		{"keys back-filled", cfg.Keys.Quit, []string{"ctrl+c"}},
		{"scroll keys back-filled", cfg.Keys.ScrollDown, []string{"pgdown"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`provider = "gemini"`+"\n"), 0600))

	t.Setenv("QUILL_PROVIDER", "mock")
	t.Setenv("QUILL_MODEL", "from-env")
	t.Setenv("QUILL_BASE_URL", "http://from-env")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "mock", cfg.Provider)
	assert.Equal(t, "from-env", cfg.Model)
	assert.Equal(t, "http://from-env", cfg.BaseURL)

	// Overrides are not persisted.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "from-env")
}

func TestLoadEnvProviderSwapsDefaultModel(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	t.Setenv("QUILL_PROVIDER", assist.ProviderOpenAI)
	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, assist.ProviderOpenAI, cfg.Provider)
	assert.Equal(t, assist.DefaultOpenAIModel, cfg.Model, "first-run gemini model must not reach openai")

	t.Setenv("QUILL_MODEL", "llama3")
	cfg, err = LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "llama3", cfg.Model)
}

func TestSetProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetProvider(assist.ProviderOpenAI)
	assert.Equal(t, assist.DefaultOpenAIModel, cfg.Model)

	cfg.Model = "my-model"
	cfg.SetProvider(assist.ProviderOpenAI)
	assert.Equal(t, "my-model", cfg.Model)

	cfg.SetProvider(assist.ProviderMock)
	assert.Equal(t, assist.ProviderMock, cfg.Provider)
	assert.Equal(t, "my-model", cfg.Model)
}

func TestLoadInvalid(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("provider = [[["), 0600))
	_, err := LoadFrom(bad)
	assert.Error(t, err)

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte(`provider = "carrier-pigeon"`+"\n"), 0600))
	_, err = LoadFrom(unknown)
	assert.ErrorContains(t, err, "unknown provider")

	level := filepath.Join(dir, "level.toml")
	require.NoError(t, os.WriteFile(level, []byte(`enhancement_level = "shouty"`+"\n"), 0600))
	_, err = LoadFrom(level)
	assert.ErrorContains(t, err, "enhancement level")
}

func TestConfigPathEnv(t *testing.T) {
	t.Setenv("QUILL_CONFIG", "/tmp/elsewhere.toml")
	p, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/elsewhere.toml", p)
}

type fakeSecrets struct {
	key string
	err error
}

func (f *fakeSecrets) GetAPIKey() (string, error) { return f.key, f.err }
func (f *fakeSecrets) SetAPIKey(k string) error    { f.key = k; return nil }
func (f *fakeSecrets) DeleteAPIKey() error         { f.key = ""; return nil }

func TestResolveAPIKey(t *testing.T) {
	clearEnv(t)

	key, src, err := ResolveAPIKey(&fakeSecrets{key: "from-keyring\n"})
	require.NoError(t, err)
	assert.Equal(t, "from-keyring", key)
	assert.Equal(t, "keyring", src)

	t.Setenv(APIKeyEnv, "from-env")
	key, src, err = ResolveAPIKey(&fakeSecrets{key: "from-keyring"})
	require.NoError(t, err)
	assert.Equal(t, "from-env", key)
	assert.Equal(t, "env", src)

	t.Setenv(APIKeyEnv, "")
	_, _, err = ResolveAPIKey(nil)
	assert.ErrorIs(t, err, ErrNoAPIKey)

	_, _, err = ResolveAPIKey(&fakeSecrets{key: "   "})
	assert.ErrorIs(t, err, ErrNoAPIKey)

	boom := errors.New("dbus down")
	_, _, err = ResolveAPIKey(&fakeSecrets{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestChromaStyle(t *testing.T) {
	assert.Equal(t, "dracula", ChromaStyle("dracula"))
	assert.Equal(t, "nord", ChromaStyle("unknown"))
}
