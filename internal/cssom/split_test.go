package cssom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRules(t *testing.T) {
	tests := []struct {
		name string
		css  string
		want []string
	}{
		{
			name: "two rules",
			css:  ".a { color: red; }\n.b { color: blue; }",
			want: []string{".a { color: red; }", ".b { color: blue; }"},
		},
		{
			name: "nested at-rule stays whole",
			css:  "@media screen { .a { color: red } .b { color: blue } }",
			want: []string{"@media screen { .a { color: red } .b { color: blue } }"},
		},
		{
			name: "brace inside comment",
			css:  "/* } */ .a { color: red }",
			want: []string{"/* } */ .a { color: red }"},
		},
		{
			name: "brace inside string",
			css:  `.a { content: "}" } .b { color: blue }`,
			want: []string{`.a { content: "}" }`, `.b { color: blue }`},
		},
		{
			name: "trailing text without block kept for the validator",
			css:  ".a { color: red } stray",
			want: []string{".a { color: red }", "stray"},
		},
		{
			name: "empty input",
			css:  "   \n ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitRules(tt.css))
		})
	}
}
