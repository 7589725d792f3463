package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeServer(); err != nil {
		return err
	}
	if err := c.normalizeNotify(); err != nil {
		return err
	}
	c.normalizeElevenLabs()
	return c.normalizeLogging()
}

func (c *Config) normalizeServer() error {
	c.Server.Host = strings.TrimSpace(c.Server.Host)
	if c.Server.Host == "" {
		c.Server.Host = defaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaultPort
	}
	c.Server.Interface = strings.TrimSpace(c.Server.Interface)
	c.Server.InterfacePrefix = strings.TrimSpace(c.Server.InterfacePrefix)
	return nil
}

func (c *Config) normalizeNotify() error {
	if c.Notify.MaxMessageLength == 0 {
		c.Notify.MaxMessageLength = defaultMaxMessageLength
	}
	if c.Notify.SoundTimeout == 0 {
		c.Notify.SoundTimeout = defaultSoundTimeout
	}
	if c.Notify.TTSTimeout == 0 {
		c.Notify.TTSTimeout = defaultTTSTimeout
	}
	c.Notify.SoundFile = strings.TrimSpace(c.Notify.SoundFile)
	if c.Notify.SoundFile != "" {
		expanded, err := expandPath(c.Notify.SoundFile)
		if err != nil {
			return fmt.Errorf("notify.sound_file: %w", err)
		}
		c.Notify.SoundFile = expanded
	}
	return nil
}

func (c *Config) normalizeElevenLabs() {
	c.ElevenLabs.APIKey = strings.TrimSpace(c.ElevenLabs.APIKey)
	if c.ElevenLabs.APIKey == "" {
		c.ElevenLabs.APIKey = strings.TrimSpace(os.Getenv("ELEVENLABS_API_KEY"))
	}
	c.ElevenLabs.VoiceID = strings.TrimSpace(c.ElevenLabs.VoiceID)
	if c.ElevenLabs.ModelID = strings.TrimSpace(c.ElevenLabs.ModelID); c.ElevenLabs.ModelID == "" {
		c.ElevenLabs.ModelID = defaultElevenLabsModel
	}
	if c.ElevenLabs.RequestTimeout == 0 {
		c.ElevenLabs.RequestTimeout = defaultElevenLabsTime
	}
}

func (c *Config) normalizeLogging() error {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if format == "" {
		format = defaultLogFormat
	}
	c.Logging.Format = format

	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if level == "" {
		level = defaultLogLevel
	}
	c.Logging.Level = level

	dir := strings.TrimSpace(c.Logging.LogDir)
	if dir == "" {
		dir = defaultLogDir
	}
	expanded, err := expandPath(dir)
	if err != nil {
		return fmt.Errorf("logging.log_dir: %w", err)
	}
	c.Logging.LogDir = expanded
	return nil
}
