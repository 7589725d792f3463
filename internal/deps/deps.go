// Package deps reports availability of the host utilities chime can drive.
//
// Every playback and speech candidate is optional: the server degrades to
// per-action failures when nothing usable is installed, so these checks exist
// for operator visibility, not startup gating.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external executable chime can make use of.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Defaults returns the audio players and speech engines chime tries, in
// dispatch priority order.
func Defaults() []Requirement {
	return []Requirement{
		{Name: "PulseAudio player", Command: "paplay", Description: "sound playback via PulseAudio", Optional: true},
		{Name: "PipeWire player", Command: "pw-play", Description: "sound playback via PipeWire", Optional: true},
		{Name: "ALSA player", Command: "aplay", Description: "sound playback via ALSA", Optional: true},
		{Name: "ffplay", Command: "ffplay", Description: "sound playback via FFmpeg", Optional: true},
		{Name: "mpv", Command: "mpv", Description: "sound playback via mpv", Optional: true},
		{Name: "eSpeak", Command: "espeak", Description: "local text-to-speech", Optional: true},
		{Name: "eSpeak NG", Command: "espeak-ng", Description: "local text-to-speech", Optional: true},
		{Name: "Speech Dispatcher", Command: "spd-say", Description: "local text-to-speech", Optional: true},
		{Name: "Festival", Command: "festival", Description: "local text-to-speech", Optional: true},
	}
}

// Check evaluates the provided requirements and reports availability.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
