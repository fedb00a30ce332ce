package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/1psychoQAQ/my-translator/internal"
	"github.com/1psychoQAQ/my-translator/internal/audio"
	"github.com/1psychoQAQ/my-translator/internal/engine"
	"github.com/1psychoQAQ/my-translator/internal/host"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "translator-host",
		Short: "Privileged translation helper process",
		Long: `translator-host speaks the framed message protocol on stdin and
stdout. It is normally spawned by the client, not run by hand.`,
		Version: internal.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(verbose)
		},
	}
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log handled messages")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(verbose bool) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	eng := engine.NewOpenAIEngine(os.Getenv("OPENAI_API_KEY"))
	bridge := engine.NewBridge(eng)
	store := host.NewMemoryWordStore()

	// The speaker is optional: without espeak-ng the helper still
	// serves translate/saveWord and answers speak with a failure.
	var speaker host.Speaker
	if s, err := audio.NewESpeakSpeaker(nil); err == nil {
		speaker = s
	} else {
		logger.Info("speech disabled", zap.Error(err))
	}

	router := host.NewRouter(bridge, store, speaker, logger)
	logger.Info("helper ready", zap.String("version", internal.Version))

	// stdout carries frames; everything else goes to stderr.
	return router.Serve(os.Stdin, os.Stdout)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
