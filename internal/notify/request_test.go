package notify

import (
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestParseJSONDefaults(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Request
	}{
		{name: "empty body", body: "", want: Request{Sound: true}},
		{name: "empty object", body: "{}", want: Request{Sound: true}},
		{name: "message only", body: `{"message":"Build complete"}`, want: Request{Message: "Build complete", Sound: true}},
		{name: "all fields", body: `{"message":"Done","sound":false,"speak":true}`, want: Request{Message: "Done", Speak: true}},
		{name: "unknown fields ignored", body: `{"speak":true,"message":"Hi","volume":11}`, want: Request{Message: "Hi", Sound: true, Speak: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseJSON(strings.NewReader(tc.body), 500)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParseJSONRejectsMalformedBody(t *testing.T) {
	if _, err := ParseJSON(strings.NewReader("{not json"), 500); err == nil {
		t.Fatal("expected error for malformed body")
	}
}

func TestParseJSONRejectsOverlongMessage(t *testing.T) {
	body := `{"message":"` + strings.Repeat("a", 501) + `"}`
	_, err := ParseJSON(strings.NewReader(body), 500)
	var tooLong *MessageTooLongError
	if !errors.As(err, &tooLong) {
		t.Fatalf("expected MessageTooLongError, got %v", err)
	}
	if tooLong.Length != 501 || tooLong.Limit != 500 {
		t.Fatalf("unexpected error fields: %+v", tooLong)
	}
	if !strings.Contains(tooLong.Error(), "500") {
		t.Fatalf("error should name the limit: %s", tooLong.Error())
	}
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Request
	}{
		{name: "empty", query: "", want: Request{Sound: true}},
		{name: "message and speak", query: "message=Done&speak=true", want: Request{Message: "Done", Sound: true, Speak: true}},
		{name: "case insensitive booleans", query: "sound=FALSE&speak=True", want: Request{Speak: true}},
		{name: "numeric booleans", query: "sound=0&speak=1", want: Request{Speak: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values, err := url.ParseQuery(tc.query)
			if err != nil {
				t.Fatalf("parse query: %v", err)
			}
			got, err := ParseQuery(values, 500)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParseQueryRejectsInvalidBoolean(t *testing.T) {
	values := url.Values{"speak": []string{"yes please"}}
	if _, err := ParseQuery(values, 500); err == nil {
		t.Fatal("expected error for invalid boolean")
	}
}

func TestParseQueryRejectsOverlongMessage(t *testing.T) {
	values := url.Values{"message": []string{strings.Repeat("b", 120)}}
	_, err := ParseQuery(values, 100)
	var tooLong *MessageTooLongError
	if !errors.As(err, &tooLong) {
		t.Fatalf("expected MessageTooLongError, got %v", err)
	}
}
