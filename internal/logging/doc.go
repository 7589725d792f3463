// Package logging builds slog loggers for chime.
//
// It offers a human-oriented console handler and a JSON handler with
// normalized keys, fans output out to stdout plus a log file when a log
// directory is configured, and prunes aged log files per the configured
// retention window.
package logging
