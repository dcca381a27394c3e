package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalLazySingleton(t *testing.T) {
	Reset(Options{ForceServer: true})

	a := Global()
	b := Global()
	assert.Same(t, a, b, "repeated access must observe one instance")
}

func TestResetIsolatesRuns(t *testing.T) {
	s := Reset(Options{ForceServer: true})
	require.NoError(t, s.Inject("btn", []string{".btn{}"}, "1", "a"))
	require.True(t, Global().HasInjected("btn"))

	fresh := Reset(Options{ForceServer: true})
	assert.False(t, fresh.HasInjected("btn"), "reset must not leak styles")
	_, ok := fresh.NameForHash("1")
	assert.False(t, ok)
	assert.NotEqual(t, s.ID(), fresh.ID())
	assert.Same(t, fresh, Global())
}
