// Package cssom implements an in-memory analog of the browser's
// CSSStyleSheet: an ordered list of rules with positional insertion.
// It backs the index-based style tag variant when no real document is
// available and doubles as the validation surface for extracted CSS,
// rejecting rule text the way a browser's insertRule would.
package cssom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

var (
	// ErrSyntax is returned when rule text is not a parseable CSS rule.
	ErrSyntax = errors.New("syntax error")
	// ErrIndexSize is returned when an insertion or deletion index is out
	// of bounds for the current rule list.
	ErrIndexSize = errors.New("index out of bounds")
)

// RuleSheet holds an ordered list of CSS rules.
type RuleSheet struct {
	rules []string
}

// NewRuleSheet returns an empty rule sheet.
func NewRuleSheet() *RuleSheet {
	return &RuleSheet{}
}

// InsertRule inserts rule text at the given index, shifting later rules
// up by one, and returns the index it was inserted at. The rule must be
// a single complete qualified or at-rule; anything else fails with
// ErrSyntax, mirroring the browser primitive.
func (s *RuleSheet) InsertRule(rule string, index int) (int, error) {
	if index < 0 || index > len(s.rules) {
		return 0, fmt.Errorf("%w: %d of %d", ErrIndexSize, index, len(s.rules))
	}
	trimmed := strings.TrimSpace(rule)
	if err := validateRule(trimmed); err != nil {
		return 0, err
	}
	s.rules = append(s.rules, "")
	copy(s.rules[index+1:], s.rules[index:])
	s.rules[index] = trimmed
	return index, nil
}

// DeleteRule removes the rule at the given index.
func (s *RuleSheet) DeleteRule(index int) error {
	if index < 0 || index >= len(s.rules) {
		return fmt.Errorf("%w: %d of %d", ErrIndexSize, index, len(s.rules))
	}
	s.rules = append(s.rules[:index], s.rules[index+1:]...)
	return nil
}

// RuleCount returns the number of rules currently in the sheet.
func (s *RuleSheet) RuleCount() int {
	return len(s.rules)
}

// RuleText returns the serialized text of the rule at index i, or the
// empty string if i is out of range.
func (s *RuleSheet) RuleText(i int) string {
	if i < 0 || i >= len(s.rules) {
		return ""
	}
	return s.rules[i]
}

// CSSText returns the whole sheet serialized in rule order.
func (s *RuleSheet) CSSText() string {
	return strings.Join(s.rules, "\n")
}

// validateRule lexes the rule text and checks that it forms exactly one
// braced rule: a prelude (selector or at-rule preamble) followed by a
// balanced block, with nothing trailing. The lexer tolerates unknown
// properties, so this catches structural breakage, not bad declarations.
func validateRule(rule string) error {
	if rule == "" {
		return fmt.Errorf("%w: empty rule", ErrSyntax)
	}
	lexer := css.NewLexer(parse.NewInputString(rule))
	depth := 0
	sawBlock := false
	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != io.EOF {
				return fmt.Errorf("%w: %v", ErrSyntax, err)
			}
			if !sawBlock {
				return fmt.Errorf("%w: missing block in %q", ErrSyntax, rule)
			}
			if depth != 0 {
				return fmt.Errorf("%w: unbalanced braces in %q", ErrSyntax, rule)
			}
			return nil
		case css.LeftBraceToken:
			depth++
			sawBlock = true
		case css.RightBraceToken:
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: unexpected %q", ErrSyntax, string(text))
			}
			if depth == 0 {
				// A complete rule consumed; only whitespace may follow.
				for {
					tt, text := lexer.Next()
					if tt == css.ErrorToken {
						return nil
					}
					if tt != css.WhitespaceToken {
						return fmt.Errorf("%w: trailing %q after rule", ErrSyntax, string(text))
					}
				}
			}
		}
	}
}
