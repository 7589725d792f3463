// Package sound plays the notification sound through whichever audio player
// the host provides.
//
// Candidates are tried in a fixed priority order (PulseAudio, PipeWire, ALSA,
// ffplay, mpv). A candidate that is not installed is skipped; a candidate that
// exists but exits non-zero ends the attempt as a failure. Fallback covers
// absence only, never a broken player.
package sound
