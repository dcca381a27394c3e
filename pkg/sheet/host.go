package sheet

import "github.com/recera/styled/internal/cssom"

// bufferHost produces the non-interactive buffer variant. Sharding is
// disabled by default: with no native containers in play there is no
// per-container performance cliff to stay under.
type bufferHost struct{}

func (bufferHost) createTag() (Tag, error) {
	return newBufferTag(), nil
}

func (bufferHost) defaultCapacity() int {
	return 0
}

// memoryHost produces interactive-variant Tags over pure-Go containers:
// index-based Tags on cssom rule sheets, or text-node Tags in compat
// mode. It gives the extraction pipeline and tests the browser code
// paths, rule validation included, without a document.
type memoryHost struct {
	compat bool
}

func (h memoryHost) createTag() (Tag, error) {
	if h.compat {
		return newTextTag(newMemTextContainer()), nil
	}
	return newSpeedyTag(cssom.NewRuleSheet()), nil
}

func (memoryHost) defaultCapacity() int {
	return DefaultCapacity
}
