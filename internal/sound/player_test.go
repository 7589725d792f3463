package sound

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"chime/internal/logging"
)

type recordingExecutor struct {
	calls []string
	errs  map[string]error
}

func (e *recordingExecutor) Run(_ context.Context, name string, args ...string) error {
	e.calls = append(e.calls, name)
	return e.errs[name]
}

func lookPathFor(available ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, cmd := range available {
			if cmd == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func writeSoundFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ding.oga")
	if err := os.WriteFile(path, []byte("audio"), 0o644); err != nil {
		t.Fatalf("write sound file: %v", err)
	}
	return path
}

func TestPlayUsesFirstAvailableCandidate(t *testing.T) {
	exec := &recordingExecutor{}
	player := NewPlayer(writeSoundFile(t), logging.NewNop(),
		WithExecutor(exec),
		WithLookPath(lookPathFor("pw-play", "mpv")),
	)

	if err := player.Play(context.Background()); err != nil {
		t.Fatalf("play: %v", err)
	}
	if len(exec.calls) != 1 || exec.calls[0] != "pw-play" {
		t.Fatalf("expected single pw-play invocation, got %v", exec.calls)
	}
}

func TestPlayDoesNotCascadeOnExecutionFailure(t *testing.T) {
	exec := &recordingExecutor{errs: map[string]error{"paplay": errors.New("exit status 1")}}
	player := NewPlayer(writeSoundFile(t), logging.NewNop(),
		WithExecutor(exec),
		WithLookPath(lookPathFor("paplay", "aplay")),
	)

	err := player.Play(context.Background())
	if err == nil {
		t.Fatal("expected failure when first available player exits non-zero")
	}
	if len(exec.calls) != 1 {
		t.Fatalf("expected no fallback after execution failure, got calls %v", exec.calls)
	}
}

func TestPlayFailsWhenNoPlayerInstalled(t *testing.T) {
	exec := &recordingExecutor{}
	player := NewPlayer(writeSoundFile(t), logging.NewNop(),
		WithExecutor(exec),
		WithLookPath(lookPathFor()),
	)

	if err := player.Play(context.Background()); err == nil {
		t.Fatal("expected failure when no candidate is installed")
	}
	if len(exec.calls) != 0 {
		t.Fatalf("expected no invocations, got %v", exec.calls)
	}
}

func TestPlayFailsWhenSoundFileMissing(t *testing.T) {
	exec := &recordingExecutor{}
	player := NewPlayer(filepath.Join(t.TempDir(), "missing.oga"), logging.NewNop(),
		WithExecutor(exec),
		WithLookPath(lookPathFor("paplay")),
	)

	if err := player.Play(context.Background()); err == nil {
		t.Fatal("expected failure for missing sound file")
	}
	if len(exec.calls) != 0 {
		t.Fatalf("expected no invocations, got %v", exec.calls)
	}
}

func TestPlayFileAppendsPathToInvocationTemplate(t *testing.T) {
	var gotArgs []string
	exec := &argCapturingExecutor{args: &gotArgs}
	player := NewPlayer("", logging.NewNop(),
		WithExecutor(exec),
		WithLookPath(lookPathFor("ffplay")),
	)

	if err := player.PlayFile(context.Background(), "/tmp/clip.mp3"); err != nil {
		t.Fatalf("play file: %v", err)
	}
	want := []string{"-nodisp", "-autoexit", "-loglevel", "quiet", "/tmp/clip.mp3"}
	if len(gotArgs) != len(want) {
		t.Fatalf("unexpected args: %v", gotArgs)
	}
	for i := range want {
		if gotArgs[i] != want[i] {
			t.Fatalf("arg %d: got %q, want %q", i, gotArgs[i], want[i])
		}
	}
}

type argCapturingExecutor struct {
	args *[]string
}

func (e *argCapturingExecutor) Run(_ context.Context, _ string, args ...string) error {
	*e.args = append([]string{}, args...)
	return nil
}
