package cssom

import "strings"

// SplitRules splits stylesheet text into top-level rules: each returned
// fragment is one complete rule (selector or at-rule preamble plus its
// balanced block). Comments and string literals are skipped so braces
// inside them do not end a rule early. Trailing text without a block is
// returned as a final fragment and left for InsertRule to reject.
func SplitRules(css string) []string {
	var out []string
	depth := 0
	start := 0
	i := 0
	for i < len(css) {
		switch css[i] {
		case '/':
			if i+1 < len(css) && css[i+1] == '*' {
				end := strings.Index(css[i+2:], "*/")
				if end < 0 {
					i = len(css)
					continue
				}
				i += 2 + end + 2
				continue
			}
		case '"', '\'':
			quote := css[i]
			i++
			for i < len(css) && css[i] != quote {
				if css[i] == '\\' {
					i++
				}
				i++
			}
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				if frag := strings.TrimSpace(css[start : i+1]); frag != "" {
					out = append(out, frag)
				}
				start = i + 1
			}
		}
		i++
	}
	if frag := strings.TrimSpace(css[start:]); frag != "" {
		out = append(out, frag)
	}
	return out
}
