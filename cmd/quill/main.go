// cmd/quill/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nhath/quill/internal/activity"
	"github.com/nhath/quill/internal/assist"
	"github.com/nhath/quill/internal/config"
	"github.com/nhath/quill/internal/ui"
)

// Build-time variables injected via ldflags
var (
	version = "dev"
	commit  = "unknown"
)

const mockDelay = 800 * time.Millisecond

// options are the flags shared by every command.
type options struct {
	debug    bool
	mock     bool
	provider string
	model    string
	level    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "quill: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "quill",
		Short: "A terminal writing assistant",
		Long: `quill suggests improvements while you write and rewrites your draft on
demand, using a generative language model.

Suggestions are fetched after you stop typing for a moment. Press ctrl+e to
enhance the draft, tab to pick a suggestion and f1 for all key bindings.

The API key is read from $QUILL_API_KEY or the system keyring
(see "quill key set"). It is never stored in the config file.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&opts.debug, "debug", false, "write a debug log under the XDG state dir")
	flags.BoolVar(&opts.mock, "mock", false, "use canned replies instead of a model")
	flags.StringVar(&opts.provider, "provider", "", "model provider: gemini, openai or mock")
	flags.StringVar(&opts.model, "model", "", "model name")
	flags.StringVar(&opts.level, "level", "", "enhancement level: default, formal, casual, concise, professional")

	root.AddCommand(newSuggestCmd(opts), newEnhanceCmd(opts), newKeyCmd())

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\n\n%s", err, cmd.UsageString())
	})
	return root
}

// setupLogging installs the default logger. In debug mode everything goes to
// a file so the alt screen stays clean; otherwise the TUI discards logs and
// one-shot commands print warnings to stderr.
// The returned closer is nil when no file was opened.
func setupLogging(debug, tui bool) (io.Closer, error) {
	if debug {
		path, err := xdg.StateFile("quill/debug.log")
		if err != nil {
			return nil, fmt.Errorf("debug log path: %w", err)
		}
		f, err := tea.LogToFile(path, "debug")
		if err != nil {
			return nil, fmt.Errorf("could not open debug log: %w", err)
		}
		log.SetDefault(log.NewWithOptions(f, log.Options{
			Level:           log.DebugLevel,
			ReportTimestamp: true,
			Prefix:          "quill",
		}))
		return f, nil
	}

	if tui {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel}))
	return nil, nil
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFlags(cfg, opts); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags layers flags over the file and environment values.
func applyFlags(cfg *config.Config, opts *options) error {
	if opts.provider != "" {
		cfg.SetProvider(opts.provider)
	}
	if opts.mock {
		cfg.Provider = assist.ProviderMock
	}
	if opts.model != "" {
		cfg.Model = opts.model
	}
	if opts.level != "" {
		cfg.EnhancementLevel = opts.level
	}
	return cfg.Validate()
}

// newAssistant builds the backend chosen by cfg. The credential is resolved
// at runtime from the environment or the keyring.
func newAssistant(ctx context.Context, cfg *config.Config, openStore func() (config.SecretStore, error)) (*assist.Assistant, error) {
	var apiKey string
	if cfg.Provider != assist.ProviderMock {
		var store config.SecretStore
		if s, err := openStore(); err != nil {
			log.Warn("keyring unavailable", "err", err)
		} else {
			store = s
		}

		key, source, err := config.ResolveAPIKey(store)
		switch {
		case err == nil:
			log.Debug("api key resolved", "source", source)
			apiKey = key
		case !assist.NeedsAPIKey(cfg.Provider):
			// Local OpenAI-compatible servers usually take no key.
			if !errors.Is(err, config.ErrNoAPIKey) {
				log.Warn("keyring read failed, continuing without a key", "err", err)
			}
		default:
			return nil, err
		}
	}

	gen, err := assist.NewGenerator(ctx, assist.Options{
		Provider:  cfg.Provider,
		APIKey:    apiKey,
		Model:     cfg.Model,
		BaseURL:   cfg.BaseURL,
		MockDelay: mockDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}
	return assist.New(gen), nil
}

func openKeyring() (config.SecretStore, error) {
	store, err := config.NewKeyringStore()
	if err != nil {
		return nil, err
	}
	return store, nil
}

func runTUI(ctx context.Context, opts *options) error {
	closer, err := setupLogging(opts.debug, true)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	asst, err := newAssistant(ctx, cfg, openKeyring)
	if err != nil {
		return err
	}
	log.Info("starting", "provider", cfg.Provider, "model", cfg.Model, "config", cfg.Path())

	model := ui.NewModel(cfg, asst, activity.NewStore(activity.DefaultLimit))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
