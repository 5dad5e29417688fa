package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhath/quill/internal/assist"
	"github.com/nhath/quill/internal/config"
)

type memStore struct {
	key string
	err error
}

func (s *memStore) GetAPIKey() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.key == "" {
		return "", config.ErrNoAPIKey
	}
	return s.key, nil
}
func (s *memStore) SetAPIKey(k string) error { s.key = k; return nil }
func (s *memStore) DeleteAPIKey() error      { s.key = ""; return nil }

func storeOf(s config.SecretStore) func() (config.SecretStore, error) {
	return func() (config.SecretStore, error) { return s, nil }
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("QUILL_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
	for _, k := range []string{"QUILL_PROVIDER", "QUILL_MODEL", "QUILL_BASE_URL", config.APIKeyEnv} {
		t.Setenv(k, "")
	}
}

func TestReadText(t *testing.T) {
	got, err := readText([]string{"teh", "cat", "sat"}, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "teh cat sat", got)

	got, err = readText(nil, strings.NewReader("line one\nline two\n\n"))
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", got)
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name      string
		opts      options
		wantProv  string
		wantModel string
		wantLevel assist.Level
		wantErr   bool
	}{
		{"no flags", options{}, assist.ProviderGemini, assist.DefaultGeminiModel, assist.LevelDefault, false},
		{"mock wins", options{provider: "openai", mock: true}, assist.ProviderMock, assist.DefaultOpenAIModel, assist.LevelDefault, false},
		{"openai default model", options{provider: "openai"}, assist.ProviderOpenAI, assist.DefaultOpenAIModel, assist.LevelDefault, false},
		{"explicit model", options{provider: "openai", model: "llama3"}, assist.ProviderOpenAI, "llama3", assist.LevelDefault, false},
		{"level", options{level: "Concise"}, assist.ProviderGemini, assist.DefaultGeminiModel, assist.LevelConcise, false},
		{"bad level", options{level: "loud"}, "", "", "", true},
		{"bad provider", options{provider: "smoke-signals"}, "", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			err := applyFlags(cfg, &tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantProv, cfg.Provider)
			assert.Equal(t, tt.wantModel, cfg.Model)
			assert.Equal(t, tt.wantLevel, cfg.Level())
		})
	}
}

func TestNewAssistant(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "")
	ctx := context.Background()

	cfg := config.DefaultConfig()
	cfg.Provider = assist.ProviderMock
	asst, err := newAssistant(ctx, cfg, func() (config.SecretStore, error) {
		t.Fatal("mock provider must not touch the keyring")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Mock (dev)", asst.Name())

	cfg.Provider = assist.ProviderGemini
	_, err = newAssistant(ctx, cfg, storeOf(&memStore{}))
	assert.ErrorIs(t, err, config.ErrNoAPIKey, "gemini needs a key")

	_, err = newAssistant(ctx, cfg, func() (config.SecretStore, error) {
		return nil, errors.New("no dbus")
	})
	assert.ErrorIs(t, err, config.ErrNoAPIKey, "an unavailable keyring counts as no key")

	cfg.Provider = assist.ProviderOpenAI
	cfg.BaseURL = "http://localhost:11434/v1/"
	asst, err = newAssistant(ctx, cfg, storeOf(&memStore{}))
	require.NoError(t, err, "local openai-compatible servers run without a key")
	assert.NotNil(t, asst)

	_, err = newAssistant(ctx, cfg, storeOf(&memStore{err: errors.New("dbus: no session bus")}))
	require.NoError(t, err, "a broken keyring must not block a provider that needs no key")

	cfg.Provider = assist.ProviderGemini
	_, err = newAssistant(ctx, cfg, storeOf(&memStore{err: errors.New("dbus: no session bus")}))
	assert.ErrorContains(t, err, "dbus")
}

func TestRunSuggestAndEnhance(t *testing.T) {
	asst := assist.New(&assist.MockGenerator{Reply: func(prompt string) (string, error) {
		if strings.HasPrefix(prompt, "Enhance") {
			return "I believe this is excellent.", nil
		}
		return "- Fix 'teh' to 'the'\n- Add more detail\n", nil
	}})
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, runSuggest(ctx, asst, "teh cat sat", &out))
	assert.Equal(t, "- Fix 'teh' to 'the'\n- Add more detail\n", out.String())

	out.Reset()
	require.NoError(t, runEnhance(ctx, asst, "i think this is good", assist.LevelDefault, &out))
	assert.Equal(t, "I believe this is excellent.\n", out.String())

	assert.ErrorIs(t, runSuggest(ctx, asst, "  ", &out), assist.ErrBlankInput)
	assert.ErrorIs(t, runEnhance(ctx, asst, "", assist.LevelDefault, &out), assist.ErrBlankInput)
}

func TestRunFailuresUseFixedMessages(t *testing.T) {
	asst := assist.New(&assist.MockGenerator{Reply: func(string) (string, error) {
		return "", errors.New("503 overloaded")
	}})
	ctx := context.Background()
	var out bytes.Buffer

	err := runSuggest(ctx, asst, "hello", &out)
	assert.EqualError(t, err, assist.SuggestFailedMessage)

	err = runEnhance(ctx, asst, "hello", assist.LevelFormal, &out)
	assert.EqualError(t, err, assist.EnhanceFailedMessage)
	assert.Empty(t, out.String())
}

func TestSetKeyAndStatus(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "")
	store := &memStore{}

	assert.Error(t, setKey(store, strings.NewReader("\n")))
	assert.Contains(t, keyStatus(store), "No API key")

	require.NoError(t, setKey(store, strings.NewReader("  AIzaSyExampleKey1234\nsecond line\n")))
	assert.Equal(t, "AIzaSyExampleKey1234", store.key)

	status := keyStatus(store)
	assert.Equal(t, "API key found in keyring (********1234)", status)
	assert.NotContains(t, status, "AIzaSy")

	t.Setenv(config.APIKeyEnv, "from-env-key")
	assert.Contains(t, keyStatus(store), "found in env")
	assert.Contains(t, keyStatus(nil), "found in env")
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", mask(""))
	assert.Equal(t, "*****", mask("short"))
	assert.Equal(t, "********wxyz", mask("abcdefghijklmnopqrstuvwxyz"))
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"suggest", "enhance", "key"})

	for _, flag := range []string{"debug", "mock", "provider", "model", "level"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestSuggestCommandWithMock(t *testing.T) {
	isolate(t)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"suggest", "--mock", "teh cat sat"})

	require.NoError(t, root.Execute())
	assert.Equal(t, 3, strings.Count(out.String(), "\n"))
	assert.Contains(t, out.String(), "- Tighten the opening sentence")
}

func TestEnhanceCommandReadsStdin(t *testing.T) {
	isolate(t)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetIn(strings.NewReader("i think this is good\n"))
	root.SetArgs([]string{"enhance", "--mock", "--level", "formal"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "This text has been polished for clarity.\n", out.String())
}
