package sound

import "os"

// Standard desktop notification sounds, checked in order.
var defaultSoundPaths = []string{
	"/usr/share/sounds/freedesktop/stereo/complete.oga",
	"/usr/share/sounds/freedesktop/stereo/message.oga",
	"/usr/share/sounds/gnome/default/alerts/drip.ogg",
	"/usr/share/sounds/ubuntu/stereo/message.ogg",
	"/usr/share/sounds/sound-icons/prompt.wav",
}

// DefaultSound returns the first system notification sound present on the
// host, or an empty string when none exists.
func DefaultSound() string {
	for _, path := range defaultSoundPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
