package tts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"chime/internal/logging"
)

// DefaultTimeout bounds a single speech attempt.
const DefaultTimeout = 30 * time.Second

// Engine describes one command-line speech engine. When UseStdin is set the
// message is piped to the process; otherwise it is passed as the final
// argument.
type Engine struct {
	Command  string
	Args     []string
	UseStdin bool
}

// Engines returns the local speech engines in dispatch priority order.
func Engines() []Engine {
	return []Engine{
		{Command: "espeak"},
		{Command: "espeak-ng"},
		{Command: "spd-say"},
		{Command: "festival", Args: []string{"--tts"}, UseStdin: true},
	}
}

// Executor abstracts command execution for speech engines.
type Executor interface {
	Run(ctx context.Context, stdin string, name string, args ...string) error
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, stdin string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}

// LocalSpeaker speaks through the first available local engine.
type LocalSpeaker struct {
	engines  []Engine
	exec     Executor
	lookPath func(string) (string, error)
	timeout  time.Duration
	logger   *slog.Logger
}

// LocalOption customizes the local speaker.
type LocalOption func(*LocalSpeaker)

// WithExecutor overrides command execution, mainly for tests.
func WithExecutor(exec Executor) LocalOption {
	return func(s *LocalSpeaker) {
		if exec != nil {
			s.exec = exec
		}
	}
}

// WithLookPath overrides executable resolution, mainly for tests.
func WithLookPath(lookPath func(string) (string, error)) LocalOption {
	return func(s *LocalSpeaker) {
		if lookPath != nil {
			s.lookPath = lookPath
		}
	}
}

// WithEngines replaces the default engine list.
func WithEngines(engines []Engine) LocalOption {
	return func(s *LocalSpeaker) {
		if len(engines) > 0 {
			s.engines = engines
		}
	}
}

// WithTimeout overrides the per-attempt timeout.
func WithTimeout(timeout time.Duration) LocalOption {
	return func(s *LocalSpeaker) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// NewLocalSpeaker constructs a speaker over the host's speech engines.
func NewLocalSpeaker(logger *slog.Logger, opts ...LocalOption) *LocalSpeaker {
	s := &LocalSpeaker{
		engines:  Engines(),
		exec:     commandExecutor{},
		lookPath: exec.LookPath,
		timeout:  DefaultTimeout,
		logger:   logging.WithComponent(logger, "tts"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Speak voices the message through the first installed engine. An installed
// engine that exits non-zero ends the attempt as a failure.
func (s *LocalSpeaker) Speak(ctx context.Context, message string) error {
	if message == "" {
		return errors.New("empty message")
	}
	for _, engine := range s.engines {
		if _, err := s.lookPath(engine.Command); err != nil {
			continue
		}

		args := append([]string{}, engine.Args...)
		stdin := ""
		if engine.UseStdin {
			stdin = message
		} else {
			args = append(args, message)
		}

		runCtx, cancel := context.WithTimeout(ctx, s.timeout)
		err := s.exec.Run(runCtx, stdin, engine.Command, args...)
		cancel()
		if err != nil {
			s.logger.Warn("speech failed",
				logging.Args(logging.String("engine", engine.Command), logging.Error(err))...)
			return fmt.Errorf("%s: %w", engine.Command, err)
		}
		s.logger.Debug("message spoken",
			logging.Args(logging.String("engine", engine.Command))...)
		return nil
	}
	return errors.New("no speech engine available on this host")
}
