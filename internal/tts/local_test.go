package tts

import (
	"context"
	"errors"
	"testing"

	"chime/internal/logging"
)

type call struct {
	name  string
	args  []string
	stdin string
}

type recordingExecutor struct {
	calls []call
	errs  map[string]error
}

func (e *recordingExecutor) Run(_ context.Context, stdin string, name string, args ...string) error {
	e.calls = append(e.calls, call{name: name, args: args, stdin: stdin})
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

func TestSpeakUsesFirstAvailableEngine(t *testing.T) {
	exec := &recordingExecutor{}
	speaker := NewLocalSpeaker(logging.NewNop(),
		WithExecutor(exec),
		WithLookPath(lookPathFor("espeak-ng", "spd-say")),
	)

	if err := speaker.Speak(context.Background(), "Build complete"); err != nil {
		t.Fatalf("speak: %v", err)
	}
	if len(exec.calls) != 1 || exec.calls[0].name != "espeak-ng" {
		t.Fatalf("expected single espeak-ng invocation, got %v", exec.calls)
	}
	if got := exec.calls[0].args; len(got) != 1 || got[0] != "Build complete" {
		t.Fatalf("expected message as final argument, got %v", got)
	}
}

func TestSpeakPipesMessageToFestival(t *testing.T) {
	exec := &recordingExecutor{}
	speaker := NewLocalSpeaker(logging.NewNop(),
		WithExecutor(exec),
		WithLookPath(lookPathFor("festival")),
	)

	if err := speaker.Speak(context.Background(), "Done"); err != nil {
		t.Fatalf("speak: %v", err)
	}
	got := exec.calls[0]
	if got.stdin != "Done" {
		t.Fatalf("expected message on stdin, got %q", got.stdin)
	}
	if len(got.args) != 1 || got.args[0] != "--tts" {
		t.Fatalf("unexpected festival args: %v", got.args)
	}
}

func TestSpeakStopsAfterEngineFailure(t *testing.T) {
	exec := &recordingExecutor{errs: map[string]error{"espeak": errors.New("exit status 1")}}
	speaker := NewLocalSpeaker(logging.NewNop(),
		WithExecutor(exec),
		WithLookPath(lookPathFor("espeak", "spd-say")),
	)

	if err := speaker.Speak(context.Background(), "Done"); err == nil {
		t.Fatal("expected failure when installed engine exits non-zero")
	}
	if len(exec.calls) != 1 {
		t.Fatalf("expected no fallback after execution failure, got %v", exec.calls)
	}
}

func TestSpeakFailsWithoutEngines(t *testing.T) {
	speaker := NewLocalSpeaker(logging.NewNop(),
		WithExecutor(&recordingExecutor{}),
		WithLookPath(lookPathFor()),
	)
	if err := speaker.Speak(context.Background(), "Done"); err == nil {
		t.Fatal("expected failure when no engine is installed")
	}
}

func TestSpeakRejectsEmptyMessage(t *testing.T) {
	speaker := NewLocalSpeaker(logging.NewNop(), WithExecutor(&recordingExecutor{}))
	if err := speaker.Speak(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty message")
	}
}
