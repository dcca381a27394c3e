//go:build js && wasm
// +build js,wasm

// Package debug logs to the browser console in WASM builds and is a
// no-op everywhere else. Output is gated on a page flag so the
// injection path stays silent on production pages.
package debug

import (
	"fmt"
	"syscall/js"
)

// Enabled reports whether the hosting page requested debug output.
func Enabled() bool {
	return js.Global().Get("__STYLED_DEBUG__").Truthy()
}

// Log logs a message to the console
func Log(args ...interface{}) {
	if !Enabled() {
		return
	}
	js.Global().Get("console").Call("log", args...)
}

// Logf logs a formatted message to the console
func Logf(format string, args ...interface{}) {
	if !Enabled() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	js.Global().Get("console").Call("log", msg)
}
