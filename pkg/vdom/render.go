package vdom

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// voidElements are HTML elements that cannot have children
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// rawTextElements hold raw character data; their text children are
// emitted verbatim (escaping would corrupt CSS selectors like "a > b").
var rawTextElements = map[string]bool{
	"style":  true,
	"script": true,
}

// RenderHTML serializes a VNode tree to an HTML string via a pure-Go
// walk. Attributes are written in sorted order so output is stable.
func RenderHTML(n *VNode) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	renderNode(&sb, n, false)
	return sb.String()
}

func renderNode(sb *strings.Builder, n *VNode, raw bool) {
	if n.Kind == KindText {
		if raw {
			sb.WriteString(n.Text)
		} else {
			sb.WriteString(html.EscapeString(n.Text))
		}
		return
	}

	sb.WriteString("<")
	sb.WriteString(n.Tag)
	renderAttributes(sb, n.Props)
	sb.WriteString(">")

	if voidElements[n.Tag] {
		return
	}

	childRaw := rawTextElements[n.Tag]
	for i := range n.Kids {
		renderNode(sb, &n.Kids[i], childRaw)
	}

	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteString(">")
}

func renderAttributes(sb *strings.Builder, props Props) {
	if len(props) == 0 {
		return
	}
	names := make([]string, 0, len(props))
	for name := range props {
		if name == "key" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		switch v := props[name].(type) {
		case bool:
			if v {
				sb.WriteString(" ")
				sb.WriteString(name)
			}
		case string:
			if v == "" {
				sb.WriteString(" ")
				sb.WriteString(name)
			} else {
				fmt.Fprintf(sb, ` %s="%s"`, name, html.EscapeString(v))
			}
		default:
			fmt.Fprintf(sb, ` %s="%s"`, name, html.EscapeString(fmt.Sprint(v)))
		}
	}
}
