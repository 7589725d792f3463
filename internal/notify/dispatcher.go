package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"chime/internal/logging"
)

// ActionType identifies one kind of local side effect.
type ActionType string

const (
	ActionSound ActionType = "sound"
	ActionTTS   ActionType = "tts"
)

// ActionResult reports the outcome of one action. Message is only set for
// speech actions and echoes the spoken text back to the caller.
type ActionResult struct {
	Type    ActionType `json:"type"`
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
}

// Result aggregates the actions a request triggered. Success is true iff
// every attempted action succeeded, vacuously true for zero actions.
type Result struct {
	Success bool           `json:"success"`
	Actions []ActionResult `json:"actions"`
}

// SoundPlayer plays the notification sound.
type SoundPlayer interface {
	Play(ctx context.Context) error
}

// Speaker voices a message.
type Speaker interface {
	Speak(ctx context.Context, message string) error
}

// Dispatcher turns a normalized request into local actions. It holds no
// mutable state and is safe for concurrent use.
type Dispatcher struct {
	sound   SoundPlayer
	speaker Speaker
	logger  *slog.Logger
}

// NewDispatcher wires the dispatcher to its action backends.
func NewDispatcher(sound SoundPlayer, speaker Speaker, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		sound:   sound,
		speaker: speaker,
		logger:  logging.WithComponent(logger, "dispatcher"),
	}
}

// Dispatch performs the requested actions in order: sound, then speech. A
// speak request with an empty message is skipped entirely rather than
// recorded as a no-op action. Actions are independent; one failing never
// aborts the other.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) Result {
	requestID := uuid.NewString()
	logger := d.logger.With(logging.String("request_id", requestID))
	logger.Info("notification received",
		logging.Args(
			logging.Bool("sound", req.Sound),
			logging.Bool("speak", req.Speak),
			logging.Int("message_chars", len([]rune(req.Message))),
		)...)

	actions := make([]ActionResult, 0, 2)

	if req.Sound {
		err := d.sound.Play(ctx)
		if err != nil {
			logger.Warn("sound action failed", logging.Args(logging.Error(err))...)
		}
		actions = append(actions, ActionResult{Type: ActionSound, Success: err == nil})
		recordAction(ActionSound, err == nil)
	}

	if req.Speak && req.Message != "" {
		err := d.speaker.Speak(ctx, req.Message)
		if err != nil {
			logger.Warn("tts action failed", logging.Args(logging.Error(err))...)
		}
		actions = append(actions, ActionResult{Type: ActionTTS, Success: err == nil, Message: req.Message})
		recordAction(ActionTTS, err == nil)
	}

	result := Result{Success: true, Actions: actions}
	for _, action := range actions {
		if !action.Success {
			result.Success = false
			break
		}
	}
	recordNotification(result.Success)

	logger.Info("notification completed",
		logging.Args(
			logging.Int("actions", len(actions)),
			logging.Bool("success", result.Success),
		)...)
	return result
}
