// Package config loads and persists the client-side backend
// configuration. Values live in a yaml file plus TRANSLATOR_* env
// overrides; any change to mode or web provider requires the caller to
// re-initialize the selector and clear the result cache.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Mode selects how the backend is chosen.
type Mode string

const (
	ModeNative Mode = "native" // prefer the helper process, fall back to web
	ModeWeb    Mode = "web"    // web providers only, no probe
	ModeAuto   Mode = "auto"   // probe the helper, else web
)

const configName = ".translator"

// Config is the persisted client configuration.
type Config struct {
	Mode           Mode
	TargetLanguage string
	SourceLanguage string
	WebProvider    string
	HelperBinary   string

	OpenAIKey string
	GeminiKey string
	BingKey   string
}

func setDefaults() {
	viper.SetDefault("mode", string(ModeAuto))
	viper.SetDefault("target_language", "zh-Hans")
	viper.SetDefault("source_language", "")
	viper.SetDefault("web_provider", "google")
	viper.SetDefault("helper_binary", "translator-host")
}

// Load reads the configuration, re-read on every call so a changed
// file is picked up at the next initialization.
func Load(cfgFile string) (*Config, error) {
	viper.Reset()
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(configName)
	}

	viper.SetEnvPrefix("TRANSLATOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && cfgFile != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Mode:           Mode(viper.GetString("mode")),
		TargetLanguage: viper.GetString("target_language"),
		SourceLanguage: viper.GetString("source_language"),
		WebProvider:    viper.GetString("web_provider"),
		HelperBinary:   viper.GetString("helper_binary"),
		OpenAIKey:      firstNonEmpty(os.Getenv("OPENAI_API_KEY"), viper.GetString("openai_key")),
		GeminiKey:      firstNonEmpty(os.Getenv("GEMINI_API_KEY"), viper.GetString("gemini_key")),
		BingKey:        viper.GetString("bing_key"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration back to the home directory (or the
// explicit file it was loaded from).
func Save(cfg *Config, cfgFile string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	viper.Set("mode", string(cfg.Mode))
	viper.Set("target_language", cfg.TargetLanguage)
	viper.Set("source_language", cfg.SourceLanguage)
	viper.Set("web_provider", cfg.WebProvider)
	viper.Set("helper_binary", cfg.HelperBinary)

	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("find home directory: %w", err)
		}
		path = filepath.Join(home, configName+".yaml")
	}
	return viper.WriteConfigAs(path)
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeNative, ModeWeb, ModeAuto:
	default:
		return fmt.Errorf("invalid mode: %q", c.Mode)
	}
	if c.TargetLanguage == "" {
		return fmt.Errorf("target language is required")
	}
	if c.WebProvider == "" {
		return fmt.Errorf("web provider is required")
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
