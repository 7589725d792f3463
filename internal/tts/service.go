package tts

import (
	"context"
	"log/slog"

	"chime/internal/logging"
)

// Speaker voices a message on the host.
type Speaker interface {
	Speak(ctx context.Context, message string) error
}

// Service prefers the remote engine and falls back to local engines when the
// remote one is absent or fails.
type Service struct {
	remote Speaker
	local  Speaker
	logger *slog.Logger
}

// NewService composes the speech chain. remote may be nil when ElevenLabs is
// not configured.
func NewService(remote, local Speaker, logger *slog.Logger) *Service {
	return &Service{
		remote: remote,
		local:  local,
		logger: logging.WithComponent(logger, "tts"),
	}
}

// Speak voices the message, degrading from the remote engine to local ones.
func (s *Service) Speak(ctx context.Context, message string) error {
	if s.remote != nil {
		err := s.remote.Speak(ctx, message)
		if err == nil {
			return nil
		}
		s.logger.Debug("remote speech failed, falling back to local engines",
			logging.Args(logging.Error(err))...)
	}
	return s.local.Speak(ctx, message)
}
