// Package audio provides the espeak-ng backed speaker the helper wires
// in when the platform speech service is unavailable.
package audio

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// ESpeakConfig holds tuning for espeak-ng playback.
type ESpeakConfig struct {
	Speed     int // words per minute (default: 150)
	Pitch     int // 0 to 99 (default: 50)
	Amplitude int // 0 to 200 (default: 100)
}

// DefaultESpeakConfig returns the default playback settings.
func DefaultESpeakConfig() *ESpeakConfig {
	return &ESpeakConfig{Speed: 150, Pitch: 50, Amplitude: 100}
}

// ESpeakSpeaker pronounces text by shelling out to espeak-ng.
type ESpeakSpeaker struct {
	config *ESpeakConfig
}

// NewESpeakSpeaker checks that espeak-ng is installed and returns the
// speaker.
func NewESpeakSpeaker(config *ESpeakConfig) (*ESpeakSpeaker, error) {
	if err := checkESpeakInstalled(); err != nil {
		return nil, err
	}
	if config == nil {
		config = DefaultESpeakConfig()
	}
	return &ESpeakSpeaker{config: config}, nil
}

// Speak plays text aloud. language is a canonical tag; espeak voices
// use the bare primary subtag.
func (s *ESpeakSpeaker) Speak(ctx context.Context, text, language string) error {
	if text == "" {
		return fmt.Errorf("text cannot be empty")
	}

	args := []string{
		"-s", strconv.Itoa(s.config.Speed),
		"-p", strconv.Itoa(s.config.Pitch),
		"-a", strconv.Itoa(s.config.Amplitude),
	}
	if voice := espeakVoice(language); voice != "" {
		args = append(args, "-v", voice)
	}
	args = append(args, text)

	cmd := exec.CommandContext(ctx, "espeak-ng", args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("espeak-ng failed: %w (output: %s)", err, output)
	}
	return nil
}

// espeakVoice maps canonical language tags onto espeak voice names.
func espeakVoice(language string) string {
	switch language {
	case "":
		return ""
	case "zh-Hans":
		return "cmn"
	case "zh-Hant":
		return "cmn"
	case "pt-BR":
		return "pt-br"
	default:
		if i := len(language); i > 2 && language[2] == '-' {
			return language[:2]
		}
		return language
	}
}

func checkESpeakInstalled() error {
	if _, err := exec.LookPath("espeak-ng"); err != nil {
		return fmt.Errorf("espeak-ng is not installed: %w", err)
	}
	return nil
}
