// Package config loads, normalizes, and validates chime configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and centralizes every knob the server and CLI
// need: bind address, notification limits, ElevenLabs credentials, and log
// output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
