package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chime/internal/notify"
)

func TestPostNotification(t *testing.T) {
	var received notify.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/notify" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(notify.Result{
			Success: true,
			Actions: []notify.ActionResult{{Type: notify.ActionSound, Success: true}},
		})
	}))
	defer server.Close()

	address := strings.TrimPrefix(server.URL, "http://")
	req := notify.Request{Message: "Build complete", Sound: true, Speak: true}
	result, err := postNotification(context.Background(), address, req, 5*time.Second)
	if err != nil {
		t.Fatalf("post notification: %v", err)
	}
	if !result.Success || len(result.Actions) != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if received != req {
		t.Fatalf("server saw %+v, sent %+v", received, req)
	}
}

func TestPostNotificationServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"message too long"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	address := strings.TrimPrefix(server.URL, "http://")
	_, err := postNotification(context.Background(), address, notify.Request{Sound: true}, 5*time.Second)
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	if !strings.Contains(err.Error(), "message too long") {
		t.Fatalf("error should carry the server detail: %v", err)
	}
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, notify.Result{
		Success: false,
		Actions: []notify.ActionResult{
			{Type: notify.ActionSound, Success: true},
			{Type: notify.ActionTTS, Success: false, Message: "no speech engine"},
		},
	})

	out := buf.String()
	requireContains(t, out, "sound: ok")
	requireContains(t, out, "tts: failed")
	requireContains(t, out, "completed with failures")
}
