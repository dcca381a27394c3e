//go:build !js || !wasm
// +build !js !wasm

package debug

// Enabled reports whether debug output is active; never outside WASM.
func Enabled() bool { return false }

// Log is a no-op outside WASM builds.
func Log(args ...interface{}) {}

// Logf is a no-op outside WASM builds.
func Logf(format string, args ...interface{}) {}
