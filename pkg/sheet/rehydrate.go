package sheet

import "strings"

// ComponentCSS is one component's slice of a serialized sheet.
type ComponentCSS struct {
	ID  string
	CSS string
}

const (
	markerOpen  = "/* sc-component-id: "
	markerClose = " */\n"
)

// SplitByComponent parses the boundary comments out of serialized sheet
// CSS, returning each component id with its rule text in marker order.
// It is the inverse of the marker format CSS and HTML emit, and is what
// a rehydrating client uses to learn which components a server-rendered
// sheet already contains. Text before the first marker is ignored.
func SplitByComponent(css string) []ComponentCSS {
	var out []ComponentCSS
	for {
		start := strings.Index(css, markerOpen)
		if start < 0 {
			return out
		}
		rest := css[start+len(markerOpen):]
		end := strings.Index(rest, markerClose)
		if end < 0 {
			return out
		}
		id := rest[:end]
		body := rest[end+len(markerClose):]
		next := strings.Index(body, markerOpen)
		if next < 0 {
			out = append(out, ComponentCSS{ID: id, CSS: body})
			return out
		}
		// The marker comment starts with a newline; keep the rule text
		// clean of the next component's leading boundary.
		out = append(out, ComponentCSS{ID: id, CSS: strings.TrimSuffix(body[:next], "\n")})
		css = body[next:]
	}
}
