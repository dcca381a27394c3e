package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitByComponentRoundTrip(t *testing.T) {
	s := New(Options{ForceServer: true})
	require.NoError(t, s.Inject("btn", []string{".btn{color:red}"}, "1", "a"))
	require.NoError(t, s.Inject("card", []string{".card{margin:0}", ".card p{padding:0}"}, "2", "b"))

	parts := SplitByComponent(s.CSS())
	require.Len(t, parts, 2)
	assert.Equal(t, "btn", parts[0].ID)
	assert.Equal(t, ".btn{color:red}", parts[0].CSS)
	assert.Equal(t, "card", parts[1].ID)
	assert.Equal(t, ".card{margin:0} .card p{padding:0}", parts[1].CSS)
}

func TestSplitByComponentEmptyAndUnmarked(t *testing.T) {
	assert.Empty(t, SplitByComponent(""))
	assert.Empty(t, SplitByComponent(".loose{color:red}"))
}

func TestSplitByComponentMarkerOnly(t *testing.T) {
	parts := SplitByComponent(markerComment("only"))
	require.Len(t, parts, 1)
	assert.Equal(t, "only", parts[0].ID)
	assert.Equal(t, "", parts[0].CSS)
}
