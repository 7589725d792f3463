// Package tts speaks notification messages aloud.
//
// When ElevenLabs is configured the message is synthesized remotely and the
// resulting audio is played through the sound player chain; otherwise, or when
// the API is unreachable, chime falls back to whichever local command-line
// speech engine the host provides (espeak, espeak-ng, spd-say, festival).
package tts
