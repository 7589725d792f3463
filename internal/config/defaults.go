package config

const (
	defaultHost             = "127.0.0.1"
	defaultPort             = 51515
	defaultMaxMessageLength = 500
	defaultSoundTimeout     = 10
	defaultTTSTimeout       = 30
	defaultLogDir           = "~/.local/state/chime"
	defaultLogRetentionDays = 7
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultElevenLabsModel  = "eleven_turbo_v2"
	defaultElevenLabsTime   = 30
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			Host: defaultHost,
			Port: defaultPort,
		},
		Notify: Notify{
			MaxMessageLength: defaultMaxMessageLength,
			SoundTimeout:     defaultSoundTimeout,
			TTSTimeout:       defaultTTSTimeout,
		},
		ElevenLabs: ElevenLabs{
			ModelID:        defaultElevenLabsModel,
			RequestTimeout: defaultElevenLabsTime,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			LogDir:        defaultLogDir,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
