package styling

import (
	"strings"

	"github.com/recera/styled/pkg/sheet"
)

// Stringifier turns assembled rule content into finalized rule strings.
// name and prefix scope the content; either may be empty. The engine
// treats the result as opaque ordered fragments.
type Stringifier func(content, name, prefix string) []string

// WrapStringifier is the default Stringifier: it wraps the content in a
// single block scoped by prefix and name.
func WrapStringifier(content, name, prefix string) []string {
	switch {
	case prefix != "" && name != "":
		return []string{prefix + " " + name + " {" + content + "}"}
	case name != "":
		return []string{"." + name + " {" + content + "}"}
	default:
		return []string{content}
	}
}

// Keyframes assembles the fragments into an @keyframes block, injects
// it into the global sheet once per distinct content, and returns the
// generated animation name. Identical content, regardless of call site,
// is stringified and inserted at most once per sheet lifetime.
func Keyframes(fragments ...string) (string, error) {
	return KeyframesInto(sheet.Global(), WrapStringifier, fragments...)
}

// KeyframesInto is Keyframes against an explicit sheet and stringifier.
func KeyframesInto(s *sheet.StyleSheet, stringify Stringifier, fragments ...string) (string, error) {
	content := strings.Join(fragments, "")
	hash := Hash(content)
	if name, ok := s.NameForHash(hash); ok {
		return name, nil
	}
	name := Name(content)
	rules := stringify(content, name, "@keyframes")
	if err := s.Inject("sc-keyframes-"+name, rules, hash, name); err != nil {
		return "", err
	}
	return name, nil
}
