package notify

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
)

// Request is a normalized notification request.
type Request struct {
	Message string
	Sound   bool
	Speak   bool
}

// DefaultRequest returns the request implied by an empty body: play the
// notification sound, speak nothing.
func DefaultRequest() Request {
	return Request{Sound: true}
}

// MessageTooLongError reports a message exceeding the configured maximum.
// It is a client error; the caller should shorten or summarize the text.
type MessageTooLongError struct {
	Length int
	Limit  int
}

func (e *MessageTooLongError) Error() string {
	return fmt.Sprintf("message too long (%d characters): maximum allowed length is %d characters; shorten or summarize the message",
		e.Length, e.Limit)
}

func validateMessage(message string, maxLength int) error {
	if length := len([]rune(message)); length > maxLength {
		return &MessageTooLongError{Length: length, Limit: maxLength}
	}
	return nil
}

// ParseJSON normalizes a POST body. Absent fields take their defaults and
// unknown fields are ignored for forward compatibility. An empty body yields
// the default request.
func ParseJSON(body io.Reader, maxLength int) (Request, error) {
	var raw struct {
		Message *string `json:"message"`
		Sound   *bool   `json:"sound"`
		Speak   *bool   `json:"speak"`
	}
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultRequest(), nil
		}
		return Request{}, fmt.Errorf("invalid request body: %w", err)
	}

	req := DefaultRequest()
	if raw.Message != nil {
		req.Message = *raw.Message
	}
	if raw.Sound != nil {
		req.Sound = *raw.Sound
	}
	if raw.Speak != nil {
		req.Speak = *raw.Speak
	}

	if err := validateMessage(req.Message, maxLength); err != nil {
		return Request{}, err
	}
	return req, nil
}

func parseBoolParam(raw string) (bool, error) {
	return strconv.ParseBool(strings.ToLower(raw))
}

// ParseQuery normalizes GET query parameters. Boolean parameters accept the
// usual string spellings case-insensitively ("true", "FALSE", "1", ...).
func ParseQuery(values url.Values, maxLength int) (Request, error) {
	req := DefaultRequest()
	req.Message = values.Get("message")

	if raw := values.Get("sound"); raw != "" {
		parsed, err := parseBoolParam(raw)
		if err != nil {
			return Request{}, fmt.Errorf("query parameter \"sound\": invalid boolean %q", raw)
		}
		req.Sound = parsed
	}
	if raw := values.Get("speak"); raw != "" {
		parsed, err := parseBoolParam(raw)
		if err != nil {
			return Request{}, fmt.Errorf("query parameter \"speak\": invalid boolean %q", raw)
		}
		req.Speak = parsed
	}

	if err := validateMessage(req.Message, maxLength); err != nil {
		return Request{}, err
	}
	return req, nil
}
