package sheet

import "sync"

// The process-wide sheet. Lazily constructed so importing the package
// costs nothing until a style is actually injected; guarded so the
// first access from independent call paths constructs exactly once.
var (
	globalMu    sync.Mutex
	globalSheet *StyleSheet
)

// Global returns the process-wide StyleSheet, creating it on first
// access with environment defaults.
func Global() *StyleSheet {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalSheet == nil {
		globalSheet = New(Options{})
	}
	return globalSheet
}

// Reset discards the process-wide sheet and constructs a fresh one with
// the given options, so repeated or isolated renders (tests, SSR
// requests) do not leak styles between runs. The new sheet is returned.
func Reset(opts Options) *StyleSheet {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalSheet = New(opts)
	return globalSheet
}
