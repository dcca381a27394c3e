package styling

import (
	"strings"
	"testing"
)

func TestHashDeterministic(t *testing.T) {
	a := Hash(".btn { color: red; }")
	b := Hash(".btn { color: red; }")
	if a != b {
		t.Errorf("same content must hash equal, got %s and %s", a, b)
	}

	c := Hash(".btn { color: blue; }")
	if a == c {
		t.Errorf("different content should not collide, both %s", a)
	}
}

func TestHashConcatenatesParts(t *testing.T) {
	if Hash("ab", "c") != Hash("a", "bc") {
		t.Error("hash must digest the concatenated content")
	}
}

func TestAlphabeticName(t *testing.T) {
	tests := []struct {
		code uint32
		want string
	}{
		{0, "a"},
		{1, "b"},
		{25, "z"},
		{26, "A"},
		{51, "Z"},
	}
	for _, tt := range tests {
		if got := AlphabeticName(tt.code); got != tt.want {
			t.Errorf("AlphabeticName(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestNameUsesOnlyLetters(t *testing.T) {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for _, content := range []string{"", "x", ".btn { color: red }", strings.Repeat("q", 500)} {
		name := Name(content)
		if name == "" {
			t.Errorf("Name(%q) is empty", content)
		}
		for i := 0; i < len(name); i++ {
			if !strings.ContainsRune(letters, rune(name[i])) {
				t.Errorf("Name(%q) = %q contains non-letter %q", content, name, name[i])
			}
		}
	}
}
