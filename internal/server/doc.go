// Package server exposes the notification HTTP API.
//
// The surface is small: /notify accepts notification requests as
// a JSON POST body or GET query parameters, /health answers liveness probes,
// and /metrics serves Prometheus counters. Validation problems surface as 400
// responses; missing host utilities degrade to per-action failures inside a
// 200 response instead.
package server
