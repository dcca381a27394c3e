package sheet

import "strings"

// MarkerAttr is the attribute carried by every style element the engine
// creates or serializes. Rehydration scans for it to find sheets that
// were rendered by a previous pass.
const MarkerAttr = "data-styled"

// Tag is a single logical injection target wrapping one native style
// container. A component id registered on a Tag stays on that Tag for
// the Tag's whole lifetime.
//
// InsertMarker is idempotent: registering an id twice neither moves it
// nor duplicates its boundary comment. InsertRules ensures a marker
// exists, then appends the fragments after any content already under
// that marker. Fragment errors never escape InsertRules; structurally
// invalid fragments are dropped (see the index-based variant).
type Tag interface {
	InsertMarker(id string)
	InsertRules(id string, fragments []string)
	CSS() string
	HTML() string
}

// markerComment is the component boundary written ahead of each
// component's rules. The exact format is load-bearing: rehydration
// locates previously rendered components by scanning for it.
func markerComment(id string) string {
	return "\n/* sc-component-id: " + id + " */\n"
}

// joinFragments drops empty fragments and joins the rest with a single
// space, the accumulation format of the text-backed variants.
func joinFragments(fragments []string) string {
	kept := fragments[:0:0]
	for _, f := range fragments {
		if f != "" {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// styleWrap wraps accumulated CSS in the style-element markup emitted
// for raw-HTML embedding.
func styleWrap(css string) string {
	return `<style type="text/css" ` + MarkerAttr + `>` + css + `</style>`
}

// bufferTag is the non-interactive variant: each marker is a single
// in-memory buffer seeded with its boundary comment. It backs server
// rendering, where there is no document to inject into and output is
// read back wholesale through CSS or HTML.
type bufferTag struct {
	order []string
	bufs  map[string]*strings.Builder
}

func newBufferTag() *bufferTag {
	return &bufferTag{bufs: make(map[string]*strings.Builder)}
}

func (t *bufferTag) marker(id string) *strings.Builder {
	if b, ok := t.bufs[id]; ok {
		return b
	}
	b := &strings.Builder{}
	b.WriteString(markerComment(id))
	t.bufs[id] = b
	t.order = append(t.order, id)
	return b
}

func (t *bufferTag) InsertMarker(id string) {
	t.marker(id)
}

func (t *bufferTag) InsertRules(id string, fragments []string) {
	t.marker(id).WriteString(joinFragments(fragments))
}

func (t *bufferTag) CSS() string {
	var sb strings.Builder
	for _, id := range t.order {
		sb.WriteString(t.bufs[id].String())
	}
	return sb.String()
}

func (t *bufferTag) HTML() string {
	return styleWrap(t.CSS())
}
