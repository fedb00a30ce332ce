// Package cli builds the client command-line surface: translate,
// speak, save and ping against whichever backend the selector
// resolves.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/1psychoQAQ/my-translator/internal"
	"github.com/1psychoQAQ/my-translator/internal/backend"
	"github.com/1psychoQAQ/my-translator/internal/config"
	"github.com/1psychoQAQ/my-translator/internal/errs"
	"github.com/1psychoQAQ/my-translator/internal/protocol"
	"github.com/1psychoQAQ/my-translator/internal/transport"
)

// CreateRootCommand creates and configures the root cobra command.
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "translator",
		Short: "Translate text via the local helper or web providers",
		Long: `translator looks up translations through the privileged local
helper process when it is installed, and falls back to remote web
translation providers when it is not.

Examples:
  translator translate "hello world"
  translator translate bank --sentence "He sat on the river bank."
  translator speak "hello" --language en
  translator save serendipity 机缘巧合
  translator ping`,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.translator.yaml)")
	rootCmd.PersistentFlags().StringVar(&flags.Mode, "mode", "", "backend mode: native, web or auto")
	rootCmd.PersistentFlags().StringVarP(&flags.TargetLanguage, "target", "t", "", "target language tag (e.g. zh-Hans)")
	rootCmd.PersistentFlags().StringVarP(&flags.SourceLanguage, "source", "s", "", "source language tag (default: auto-detect)")
	rootCmd.PersistentFlags().StringVar(&flags.WebProvider, "web-provider", "", "web provider: google, bing, openai, gemini")

	rootCmd.AddCommand(newTranslateCommand(flags))
	rootCmd.AddCommand(newSpeakCommand(flags))
	rootCmd.AddCommand(newSaveCommand(flags))
	rootCmd.AddCommand(newPingCommand(flags))

	return rootCmd
}

func newTranslateCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate [text]",
		Short: "Translate text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selector, err := buildSelector(flags)
			if err != nil {
				return reportError(err)
			}
			defer selector.Close()

			translation, err := selector.Translate(context.Background(), args[0], flags.Sentence)
			if err != nil {
				return reportError(err)
			}
			fmt.Println(translation)
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.Sentence, "sentence", "", "surrounding sentence for short-phrase context")
	return cmd
}

func newSpeakCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "speak [text]",
		Short: "Pronounce text aloud via the helper",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selector, err := buildSelector(flags)
			if err != nil {
				return reportError(err)
			}
			defer selector.Close()

			if err := selector.Speak(context.Background(), args[0], flags.Language); err != nil {
				return reportError(err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags.Language, "language", "l", "", "language of the text being spoken")
	return cmd
}

func newSaveCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save [text] [translation]",
		Short: "Save a word to the word list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			selector, err := buildSelector(flags)
			if err != nil {
				return reportError(err)
			}
			defer selector.Close()

			entry := &protocol.SaveWordPayload{
				ID:          uuid.NewString(),
				Text:        args[0],
				Translation: args[1],
				Source:      firstNonEmpty(flags.Source, "cli"),
				SourceURL:   flags.SourceURL,
				Tags:        flags.Tags,
				CreatedAt:   time.Now().UnixMilli(),
			}
			if err := selector.SaveWord(entry); err != nil {
				return reportError(err)
			}
			fmt.Printf("Saved %q\n", entry.Text)
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.Source, "from", "", "where the word was encountered")
	cmd.Flags().StringVar(&flags.SourceURL, "url", "", "source page URL")
	cmd.Flags().StringSliceVar(&flags.Tags, "tag", nil, "tags for the entry (repeatable)")
	return cmd
}

func newPingCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check whether the local helper is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return reportError(err)
			}
			client, err := transport.Spawn(cfg.HelperBinary)
			if err != nil {
				return reportError(err)
			}
			defer client.Close()

			version, err := client.Ping()
			if err != nil {
				return reportError(err)
			}
			fmt.Printf("helper reachable, version %s\n", version)
			return nil
		},
	}
}

// buildSelector loads the config, applies flag overrides and resolves
// the backend.
func buildSelector(flags *Flags) (*backend.Selector, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	selector := backend.NewSelector(cfg, spawnDialer)
	if err := selector.Initialize(); err != nil {
		return nil, err
	}
	return selector, nil
}

func loadConfig(flags *Flags) (*config.Config, error) {
	cfg, err := config.Load(flags.CfgFile)
	if err != nil {
		return nil, err
	}
	if flags.Mode != "" {
		cfg.Mode = config.Mode(flags.Mode)
	}
	if flags.TargetLanguage != "" {
		cfg.TargetLanguage = flags.TargetLanguage
	}
	if flags.SourceLanguage != "" {
		cfg.SourceLanguage = flags.SourceLanguage
	}
	if flags.WebProvider != "" {
		cfg.WebProvider = flags.WebProvider
	}
	return cfg, cfg.Validate()
}

func spawnDialer(binary string) (backend.NativeTransport, error) {
	return transport.Spawn(binary)
}

// reportError prints the localized message for users and returns the
// underlying error for the exit code.
func reportError(err error) error {
	fmt.Fprintln(os.Stderr, errs.UserMessage(err))
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
