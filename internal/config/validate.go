package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateNotify(); err != nil {
		return err
	}
	if err := c.validateElevenLabs(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	return nil
}

func (c *Config) validateNotify() error {
	if c.Notify.MaxMessageLength < 1 {
		return errors.New("notify.max_message_length must be positive")
	}
	if c.Notify.SoundTimeout < 1 {
		return errors.New("notify.sound_timeout must be at least 1 second")
	}
	if c.Notify.TTSTimeout < 1 {
		return errors.New("notify.tts_timeout must be at least 1 second")
	}
	return nil
}

func (c *Config) validateElevenLabs() error {
	if !c.ElevenLabs.Enabled {
		return nil
	}
	if c.ElevenLabs.APIKey == "" {
		return errors.New("elevenlabs.api_key must be set when elevenlabs.enabled is true (or set ELEVENLABS_API_KEY)")
	}
	if c.ElevenLabs.VoiceID == "" {
		return errors.New("elevenlabs.voice_id must be set when elevenlabs.enabled is true")
	}
	if c.ElevenLabs.RequestTimeout < 1 {
		return errors.New("elevenlabs.request_timeout must be at least 1 second")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	if c.Logging.RetentionDays < 0 {
		return errors.New("logging.retention_days must not be negative")
	}
	return nil
}
