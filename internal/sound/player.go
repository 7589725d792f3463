package sound

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"chime/internal/logging"
)

// DefaultTimeout bounds a single playback attempt.
const DefaultTimeout = 10 * time.Second

// Candidate describes one playback command. The sound file path is appended
// to Args at invocation time.
type Candidate struct {
	Command string
	Args    []string
}

// Candidates returns the playback commands in dispatch priority order.
func Candidates() []Candidate {
	return []Candidate{
		{Command: "paplay"},
		{Command: "pw-play"},
		{Command: "aplay"},
		{Command: "ffplay", Args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
		{Command: "mpv", Args: []string{"--no-video", "--really-quiet"}},
	}
}

// Executor abstracts command execution for the player.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) error
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}

// Player plays audio files through the first available candidate command.
type Player struct {
	soundFile  string
	candidates []Candidate
	exec       Executor
	lookPath   func(string) (string, error)
	timeout    time.Duration
	logger     *slog.Logger
}

// Option customizes the player.
type Option func(*Player)

// WithExecutor overrides command execution, mainly for tests.
func WithExecutor(exec Executor) Option {
	return func(p *Player) {
		if exec != nil {
			p.exec = exec
		}
	}
}

// WithLookPath overrides executable resolution, mainly for tests.
func WithLookPath(lookPath func(string) (string, error)) Option {
	return func(p *Player) {
		if lookPath != nil {
			p.lookPath = lookPath
		}
	}
}

// WithCandidates replaces the default candidate commands.
func WithCandidates(candidates []Candidate) Option {
	return func(p *Player) {
		if len(candidates) > 0 {
			p.candidates = candidates
		}
	}
}

// WithTimeout overrides the per-attempt timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Player) {
		if timeout > 0 {
			p.timeout = timeout
		}
	}
}

// NewPlayer constructs a player. soundFile may be empty, in which case the
// notification sound is resolved from the standard system locations.
func NewPlayer(soundFile string, logger *slog.Logger, opts ...Option) *Player {
	p := &Player{
		soundFile:  soundFile,
		candidates: Candidates(),
		exec:       commandExecutor{},
		lookPath:   exec.LookPath,
		timeout:    DefaultTimeout,
		logger:     logging.WithComponent(logger, "sound"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Play plays the configured notification sound. A nil return means one
// candidate played the file to completion.
func (p *Player) Play(ctx context.Context) error {
	path := p.soundFile
	if path == "" {
		path = DefaultSound()
	}
	if path == "" {
		return errors.New("no notification sound file available")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("notification sound %s: %w", path, err)
	}
	return p.PlayFile(ctx, path)
}

// PlayFile plays an arbitrary audio file through the candidate chain.
func (p *Player) PlayFile(ctx context.Context, path string) error {
	for _, candidate := range p.candidates {
		if _, err := p.lookPath(candidate.Command); err != nil {
			continue
		}

		args := append(append([]string{}, candidate.Args...), path)
		runCtx, cancel := context.WithTimeout(ctx, p.timeout)
		err := p.exec.Run(runCtx, candidate.Command, args...)
		cancel()
		if err != nil {
			// Fallback covers absent players only, not broken ones.
			p.logger.Warn("playback failed",
				logging.Args(logging.String("player", candidate.Command), logging.Error(err))...)
			return fmt.Errorf("%s: %w", candidate.Command, err)
		}
		p.logger.Debug("sound played",
			logging.Args(logging.String("player", candidate.Command), logging.String("file", path))...)
		return nil
	}
	return errors.New("no audio player available on this host")
}
