package sheet

import "strings"

// RuleContainer is the native backing store of the index-based tag
// variant: an ordered rule list with positional insertion. In the
// browser this is a CSSStyleSheet reached through syscall/js; off the
// browser it is the in-memory analog from internal/cssom.
type RuleContainer interface {
	// InsertRule inserts rule text at index, shifting later rules up,
	// and returns the index used. It fails if the rule text is not a
	// single well-formed rule.
	InsertRule(rule string, index int) (int, error)
	RuleCount() int
	RuleText(i int) string
}

// speedyTag is the performance variant: rules are inserted one by one
// at computed offsets in the native rule list instead of appending
// text, which keeps injection cheap even when the container already
// holds many rules.
//
// sizes holds one accepted-rule count per marker, parallel to marker
// registration order. A marker's rules occupy the contiguous slice of
// the native list starting at the sum of all earlier markers' sizes,
// so sizes must only ever count rules the container actually accepted.
type speedyTag struct {
	rules RuleContainer
	order []string
	slots map[string]int
	sizes []int
}

func newSpeedyTag(rules RuleContainer) *speedyTag {
	return &speedyTag{
		rules: rules,
		slots: make(map[string]int),
	}
}

func (t *speedyTag) InsertMarker(id string) {
	if _, ok := t.slots[id]; ok {
		return
	}
	t.slots[id] = len(t.sizes)
	t.sizes = append(t.sizes, 0)
	t.order = append(t.order, id)
}

func (t *speedyTag) InsertRules(id string, fragments []string) {
	t.InsertMarker(id)
	slot := t.slots[id]

	// Insertion point: everything under this marker and all markers
	// registered before it, using sizes prior to this call.
	pos := 0
	for i := 0; i <= slot; i++ {
		pos += t.sizes[i]
	}

	for _, frag := range fragments {
		if frag == "" {
			continue
		}
		if max := t.rules.RuleCount(); pos > max {
			pos = max
		}
		if _, err := t.rules.InsertRule(frag, pos); err != nil {
			// Malformed rule: skip it and keep going. The container
			// rejected it, so it must not count toward the marker's
			// size or the accounting above drifts from the rule list.
			continue
		}
		pos++
		t.sizes[slot]++
	}
}

func (t *speedyTag) CSS() string {
	var sb strings.Builder
	pos := 0
	for i, id := range t.order {
		sb.WriteString(markerComment(id))
		for n := 0; n < t.sizes[i]; n++ {
			sb.WriteString(t.rules.RuleText(pos))
			pos++
		}
	}
	return sb.String()
}

func (t *speedyTag) HTML() string {
	return styleWrap(t.CSS())
}
