//go:build !js || !wasm
// +build !js !wasm

package sheet

// newHost selects the Tag factory for the current environment. Off the
// browser there is never a document, so every sheet is a buffer sheet.
func newHost(opts Options) host {
	return bufferHost{}
}
