// cmd/quill/commands.go
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nhath/quill/internal/assist"
	"github.com/nhath/quill/internal/config"
)

func newSuggestCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [text]",
		Short: "Print writing suggestions for text",
		Long:  "Print writing suggestions for text, one per line. Without arguments the text is read from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			asst, cfg, err := oneShotSetup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			text, err := readText(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout())
			defer cancel()
			return runSuggest(ctx, asst, text, cmd.OutOrStdout())
		},
	}
}

func newEnhanceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "enhance [text]",
		Short: "Print an enhanced rewrite of text",
		Long:  "Print an enhanced rewrite of text at the configured level (see --level). Without arguments the text is read from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			asst, cfg, err := oneShotSetup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			text, err := readText(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout())
			defer cancel()
			return runEnhance(ctx, asst, text, cfg.Level(), cmd.OutOrStdout())
		},
	}
}

func oneShotSetup(ctx context.Context, opts *options) (*assist.Assistant, *config.Config, error) {
	if _, err := setupLogging(opts.debug, false); err != nil {
		return nil, nil, err
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, err
	}
	asst, err := newAssistant(ctx, cfg, openKeyring)
	if err != nil {
		return nil, nil, err
	}
	return asst, cfg, nil
}

// readText joins args, or reads all of in when there are none.
func readText(args []string, in io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func runSuggest(ctx context.Context, asst *assist.Assistant, text string, out io.Writer) error {
	if strings.TrimSpace(text) == "" {
		return assist.ErrBlankInput
	}
	items, err := asst.Suggest(ctx, text)
	if err != nil {
		return userError(err)
	}
	for _, item := range items {
		fmt.Fprintln(out, item)
	}
	return nil
}

func runEnhance(ctx context.Context, asst *assist.Assistant, text string, level assist.Level, out io.Writer) error {
	enhanced, err := asst.Enhance(ctx, text, level)
	if err != nil {
		return userError(err)
	}
	fmt.Fprintln(out, enhanced)
	return nil
}

// userError swaps a request failure for its fixed user-facing message.
// The cause is logged.
func userError(err error) error {
	var reqErr *assist.RequestError
	if errors.As(err, &reqErr) {
		log.Error("request failed", "op", reqErr.Op, "err", reqErr.Err)
		return errors.New(reqErr.UserMessage())
	}
	return err
}

func newKeyCmd() *cobra.Command {
	keyCmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the model API key in the system keyring",
	}

	keyCmd.AddCommand(
		&cobra.Command{
			Use:   "set",
			Short: "Store the API key read from stdin",
			Long:  "Store the API key in the system keyring. The key is read from the first line of stdin, e.g.\n\n  quill key set < ~/gemini.key",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := openKeyring()
				if err != nil {
					return err
				}
				if err := setKey(store, cmd.InOrStdin()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "API key stored.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the API key from the keyring",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := openKeyring()
				if err != nil {
					return err
				}
				if err := store.DeleteAPIKey(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "API key removed.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show where the API key would be read from",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := openKeyring()
				if err != nil {
					log.Warn("keyring unavailable", "err", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), keyStatus(store))
				return nil
			},
		},
	)
	return keyCmd
}

// setKey stores the first line of in as the API key.
func setKey(store config.SecretStore, in io.Reader) error {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read key: %w", err)
	}
	key := strings.TrimSpace(line)
	if key == "" {
		return errors.New("no key given on stdin")
	}
	return store.SetAPIKey(key)
}

// keyStatus describes the resolved credential without revealing it.
func keyStatus(store config.SecretStore) string {
	key, source, err := config.ResolveAPIKey(store)
	if err != nil {
		return "No API key: " + err.Error()
	}
	return fmt.Sprintf("API key found in %s (%s)", source, mask(key))
}

// mask keeps at most the last four characters of a secret.
func mask(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", 8) + key[len(key)-4:]
}
