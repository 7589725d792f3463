// Command chime runs a local audio notification server and the helper
// commands for inspecting and exercising it.
package main
