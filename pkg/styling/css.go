package styling

import (
	"strings"

	"github.com/recera/styled/pkg/sheet"
)

// Class injects the declarations as a rule scoped under a generated
// class name and returns that name. Identical declarations share one
// class: repeated calls hit the sheet's dedup cache and inject nothing.
func Class(declarations string) (string, error) {
	return ClassInto(sheet.Global(), declarations)
}

// ClassInto is Class against an explicit sheet.
func ClassInto(s *sheet.StyleSheet, declarations string) (string, error) {
	hash := Hash(declarations)
	if name, ok := s.NameForHash(hash); ok {
		return name, nil
	}
	name := "sc-" + Name(declarations)
	rules := WrapStringifier(declarations, name, "")
	if err := s.Inject(name, rules, hash, name); err != nil {
		return "", err
	}
	return name, nil
}

// InjectGlobal injects unscoped rule text (resets, font faces, base
// styles) into the global sheet once per distinct content.
func InjectGlobal(fragments ...string) error {
	return InjectGlobalInto(sheet.Global(), fragments...)
}

// InjectGlobalInto is InjectGlobal against an explicit sheet.
func InjectGlobalInto(s *sheet.StyleSheet, fragments ...string) error {
	content := strings.Join(fragments, "")
	hash := Hash(content)
	if _, ok := s.NameForHash(hash); ok {
		return nil
	}
	name := Name(content)
	return s.Inject("sc-global-"+name, fragments, hash, name)
}
