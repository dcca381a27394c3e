package sheet

import "strings"

// TextContainer appends child text nodes in registration order. In the
// browser it is a style element holding DOM text nodes; off the browser
// it is a plain in-memory node list.
type TextContainer interface {
	AppendText(initial string) TextNode
}

// TextNode is one marker's accumulated rule text.
type TextNode interface {
	Append(s string)
	Text() string
}

// textTag is the compatibility variant: one text node per marker,
// appended in registration order, with rule text accumulated onto the
// node. Slower to inject than the index-based variant but the sheet
// content stays directly readable, which is why it is selected in
// non-production and debug modes.
type textTag struct {
	parent TextContainer
	order  []string
	nodes  map[string]TextNode
}

func newTextTag(parent TextContainer) *textTag {
	return &textTag{
		parent: parent,
		nodes:  make(map[string]TextNode),
	}
}

func (t *textTag) marker(id string) TextNode {
	if n, ok := t.nodes[id]; ok {
		return n
	}
	n := t.parent.AppendText(markerComment(id))
	t.nodes[id] = n
	t.order = append(t.order, id)
	return n
}

func (t *textTag) InsertMarker(id string) {
	t.marker(id)
}

func (t *textTag) InsertRules(id string, fragments []string) {
	t.marker(id).Append(joinFragments(fragments))
}

func (t *textTag) CSS() string {
	var sb strings.Builder
	for _, id := range t.order {
		sb.WriteString(t.nodes[id].Text())
	}
	return sb.String()
}

func (t *textTag) HTML() string {
	return styleWrap(t.CSS())
}

// memTextContainer is the pure-Go TextContainer used when the
// compatibility variant runs without a document.
type memTextContainer struct {
	nodes []*memTextNode
}

func newMemTextContainer() *memTextContainer {
	return &memTextContainer{}
}

func (c *memTextContainer) AppendText(initial string) TextNode {
	n := &memTextNode{}
	n.sb.WriteString(initial)
	c.nodes = append(c.nodes, n)
	return n
}

type memTextNode struct {
	sb strings.Builder
}

func (n *memTextNode) Append(s string) {
	n.sb.WriteString(s)
}

func (n *memTextNode) Text() string {
	return n.sb.String()
}
