package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"chime/internal/config"
	"chime/internal/logging"
)

const defaultElevenLabsBaseURL = "https://api.elevenlabs.io"

// FilePlayer plays a synthesized audio file; satisfied by sound.Player.
type FilePlayer interface {
	PlayFile(ctx context.Context, path string) error
}

// ElevenLabsClient speaks through the ElevenLabs text-to-speech API.
type ElevenLabsClient struct {
	cfg        config.ElevenLabs
	baseURL    string
	httpClient *http.Client
	player     FilePlayer
	logger     *slog.Logger
}

// ElevenLabsOption customizes the client.
type ElevenLabsOption func(*ElevenLabsClient)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) ElevenLabsOption {
	return func(c *ElevenLabsClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the API base URL, mainly for tests.
func WithBaseURL(baseURL string) ElevenLabsOption {
	return func(c *ElevenLabsClient) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// NewElevenLabsClient constructs a client. player is used to voice the
// synthesized audio on the host.
func NewElevenLabsClient(cfg config.ElevenLabs, player FilePlayer, logger *slog.Logger, opts ...ElevenLabsOption) *ElevenLabsClient {
	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := &ElevenLabsClient{
		cfg:        cfg,
		baseURL:    defaultElevenLabsBaseURL,
		httpClient: &http.Client{Timeout: timeout},
		player:     player,
		logger:     logging.WithComponent(logger, "elevenlabs"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Speak synthesizes the message and plays the returned audio.
func (c *ElevenLabsClient) Speak(ctx context.Context, message string) error {
	if c.cfg.APIKey == "" {
		return errors.New("elevenlabs api key not configured")
	}
	if c.player == nil {
		return errors.New("no audio player wired for elevenlabs output")
	}

	payload, err := json.Marshal(map[string]string{
		"text":     message,
		"model_id": c.cfg.ModelID,
	})
	if err != nil {
		return fmt.Errorf("encode synthesis request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s?output_format=mp3_44100_128", c.baseURL, c.cfg.VoiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build synthesis request: %w", err)
	}
	req.Header.Set("xi-api-key", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("elevenlabs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("elevenlabs returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	audio, err := os.CreateTemp("", "chime-tts-*.mp3")
	if err != nil {
		return fmt.Errorf("create temp audio file: %w", err)
	}
	tempPath := audio.Name()
	defer os.Remove(tempPath)

	if _, err := io.Copy(audio, resp.Body); err != nil {
		audio.Close()
		return fmt.Errorf("write synthesized audio: %w", err)
	}
	if err := audio.Close(); err != nil {
		return fmt.Errorf("close temp audio file: %w", err)
	}

	return c.player.PlayFile(ctx, tempPath)
}

// Voice describes one ElevenLabs voice.
type Voice struct {
	VoiceID string            `json:"voice_id"`
	Name    string            `json:"name"`
	Labels  map[string]string `json:"labels"`
}

// ListVoices returns the voices available to the configured API key.
func (c *ElevenLabsClient) ListVoices(ctx context.Context) ([]Voice, error) {
	if c.cfg.APIKey == "" {
		return nil, errors.New("elevenlabs api key not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/voices", nil)
	if err != nil {
		return nil, fmt.Errorf("build voices request: %w", err)
	}
	req.Header.Set("xi-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("elevenlabs returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed struct {
		Voices []Voice `json:"voices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode voices response: %w", err)
	}
	return parsed.Voices, nil
}
