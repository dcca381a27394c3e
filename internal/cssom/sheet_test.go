package cssom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertRulePositions(t *testing.T) {
	s := NewRuleSheet()

	idx, err := s.InsertRule(".a{color:red}", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = s.InsertRule(".c{color:green}", 1)
	require.NoError(t, err)

	// Insert between the two.
	_, err = s.InsertRule(".b{color:blue}", 1)
	require.NoError(t, err)

	require.Equal(t, 3, s.RuleCount())
	assert.Equal(t, ".a{color:red}", s.RuleText(0))
	assert.Equal(t, ".b{color:blue}", s.RuleText(1))
	assert.Equal(t, ".c{color:green}", s.RuleText(2))
}

func TestInsertRuleIndexBounds(t *testing.T) {
	s := NewRuleSheet()

	_, err := s.InsertRule(".a{}", 1)
	assert.ErrorIs(t, err, ErrIndexSize)

	_, err = s.InsertRule(".a{}", -1)
	assert.ErrorIs(t, err, ErrIndexSize)
}

func TestInsertRuleValidation(t *testing.T) {
	tests := []struct {
		name string
		rule string
		ok   bool
	}{
		{"simple rule", ".btn { color: red; }", true},
		{"compound selector", "a > b.c:hover { margin: 0 }", true},
		{"at-rule block", "@media (min-width: 600px) { .a { color: red } }", true},
		{"keyframes", "@keyframes spin { from { transform: rotate(0) } to { transform: rotate(360deg) } }", true},
		{"brace in string", `.a { content: "}" }`, true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"no block", "color: red;", false},
		{"unbalanced", ".a { color: red", false},
		{"trailing garbage", ".a { color: red } .b", false},
		{"two rules", ".a{} .b{}", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRuleSheet()
			_, err := s.InsertRule(tt.rule, 0)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrSyntax)
			}
		})
	}
}

func TestDeleteRule(t *testing.T) {
	s := NewRuleSheet()
	_, err := s.InsertRule(".a{}", 0)
	require.NoError(t, err)
	_, err = s.InsertRule(".b{}", 1)
	require.NoError(t, err)

	require.NoError(t, s.DeleteRule(0))
	assert.Equal(t, 1, s.RuleCount())
	assert.Equal(t, ".b{}", s.RuleText(0))

	assert.ErrorIs(t, s.DeleteRule(5), ErrIndexSize)
}

func TestCSSText(t *testing.T) {
	s := NewRuleSheet()
	_, err := s.InsertRule(".a{color:red}", 0)
	require.NoError(t, err)
	_, err = s.InsertRule(".b{color:blue}", 1)
	require.NoError(t, err)

	assert.Equal(t, ".a{color:red}\n.b{color:blue}", s.CSSText())
}

func TestRuleTextOutOfRange(t *testing.T) {
	s := NewRuleSheet()
	assert.Equal(t, "", s.RuleText(0))
	assert.Equal(t, "", s.RuleText(-1))
}
