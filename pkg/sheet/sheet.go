// Package sheet implements the style-sheet injection engine: it takes
// generated CSS rule text for UI components and injects it into a live
// document (in WASM builds) or a serializable buffer (on the server)
// exactly once per distinct style.
//
// A StyleSheet owns an ordered list of Tags, each wrapping one native
// style container. Component ids are pinned to the Tag that first
// receives them; once a Tag has accepted too many distinct components a
// new Tag is started (sharding), which bounds per-container lookup and
// insert cost in the browser. A content-hash cache lets callers skip
// regeneration of styles the sheet has already seen.
//
// A StyleSheet is not safe for concurrent use; all mutation is expected
// to originate from one logical rendering pass. Only the package-level
// singleton accessor is goroutine-safe.
package sheet

import (
	"fmt"
	"sync"

	"github.com/recera/styled/pkg/vdom"
)

// DefaultCapacity is the number of distinct component ids a browser Tag
// accepts before the sheet shards to a fresh style element. Capacity is
// charged per component, not per rule.
const DefaultCapacity = 40

// Options configure a StyleSheet. The zero value selects sensible
// defaults for the current environment.
type Options struct {
	// Capacity overrides the per-Tag component capacity. Zero means
	// DefaultCapacity in interactive mode and unbounded in server
	// mode; negative forces unbounded.
	Capacity int

	// ForceServer selects the in-memory buffer variant even when a
	// document is present. Used for SSR-per-request sheets and tests.
	ForceServer bool

	// Compat forces the text-node variant in interactive mode.
	Compat bool

	// Production trims diagnostic messages and enables the index-based
	// variant in the browser.
	Production bool

	// Nonce is copied onto every created style element for CSP
	// compliance. In the browser it defaults to the nonce the host
	// page exposes, if any.
	Nonce string
}

// host creates Tags for a StyleSheet. The variant a host produces is a
// pure function of the environment it was built for, fixed at sheet
// construction.
type host interface {
	// createTag allocates a fresh Tag anchored after the most recently
	// created one, so Tag order in the document matches creation order.
	createTag() (Tag, error)
	// defaultCapacity is the per-Tag component capacity when Options
	// does not set one; zero means sharding is disabled.
	defaultCapacity() int
}

var sheetSeq struct {
	mu sync.Mutex
	n  int
}

func nextSheetID() int {
	sheetSeq.mu.Lock()
	defer sheetSeq.mu.Unlock()
	sheetSeq.n++
	return sheetSeq.n
}

// StyleSheet owns the Tags holding injected component styles.
type StyleSheet struct {
	id       int
	opts     Options
	host     host
	tags     []Tag
	tagMap   map[string]Tag
	hashes   map[string]string
	deferred map[string][]string
	max      int // per-Tag component capacity, 0 = unbounded
	capacity int // ids the current last Tag may still accept
}

// New constructs a StyleSheet for the current environment: a browser
// host in WASM builds with a live document, otherwise the in-memory
// buffer host. It panics if the very first Tag cannot be created, which
// only happens on a broken host environment.
func New(opts Options) *StyleSheet {
	return newSheet(newHost(opts), opts)
}

// NewValidating constructs a StyleSheet whose Tags are backed by the
// in-memory rule containers regardless of environment, so every
// injected fragment passes through positional insertion and rule
// validation. Used by the extraction pipeline and by tests.
func NewValidating(opts Options) *StyleSheet {
	return newSheet(memoryHost{compat: opts.Compat}, opts)
}

func newSheet(h host, opts Options) *StyleSheet {
	max := h.defaultCapacity()
	if opts.Capacity > 0 {
		max = opts.Capacity
	} else if opts.Capacity < 0 {
		max = 0
	}
	s := &StyleSheet{
		id:       nextSheetID(),
		opts:     opts,
		host:     h,
		tagMap:   make(map[string]Tag),
		hashes:   make(map[string]string),
		deferred: make(map[string][]string),
		max:      max,
		capacity: max,
	}
	first, err := h.createTag()
	if err != nil {
		// No first Tag means no working style container at all; the
		// host environment is unusable and nothing can be injected.
		panic(fmt.Errorf("sheet: creating initial style tag: %w", err))
	}
	s.tags = append(s.tags, first)
	return s
}

// ID returns the sheet's instance id, used to namespace serialized
// output keys.
func (s *StyleSheet) ID() int {
	return s.id
}

// NameForHash returns the name previously recorded for a content hash.
// Pure lookup; callers use it to skip regeneration entirely.
func (s *StyleSheet) NameForHash(hash string) (string, bool) {
	name, ok := s.hashes[hash]
	return name, ok
}

// HasInjected reports whether a component id has been registered with
// any Tag of this sheet.
func (s *StyleSheet) HasInjected(id string) bool {
	_, ok := s.tagMap[id]
	return ok
}

// TagForID returns the Tag owning the component id, assigning one if
// the id is new. Assignment is permanent: a component's rules always
// land on the same Tag. When the current Tag has no capacity left a new
// Tag is created, anchored after it.
func (s *StyleSheet) TagForID(id string) (Tag, error) {
	if t, ok := s.tagMap[id]; ok {
		return t, nil
	}
	if s.max > 0 {
		if s.capacity == 0 {
			t, err := s.host.createTag()
			if err != nil {
				return nil, err
			}
			s.tags = append(s.tags, t)
			s.capacity = s.max
		}
		s.capacity--
	}
	t := s.tags[len(s.tags)-1]
	s.tagMap[id] = t
	return t, nil
}

// DeferInject registers id with its Tag, creating the marker but
// inserting nothing, and stashes the fragments until a later Inject
// call for the same id flushes them ahead of its own fragments. A
// second DeferInject for the same id replaces the pending fragments.
// Used when rule text is final before its name is known, e.g. keyframe
// rules referencing a not-yet-assigned animation name.
func (s *StyleSheet) DeferInject(id string, fragments []string) error {
	t, err := s.TagForID(id)
	if err != nil {
		return err
	}
	t.InsertMarker(id)
	s.deferred[id] = fragments
	return nil
}

// Inject appends the fragments under the component id's marker,
// prefixed by any fragments deferred for that id, then records name for
// hash in the dedup cache. The first name recorded for a hash wins;
// callers are expected to consult NameForHash before generating.
func (s *StyleSheet) Inject(id string, fragments []string, hash, name string) error {
	if pending, ok := s.deferred[id]; ok {
		combined := make([]string, 0, len(pending)+len(fragments))
		combined = append(combined, pending...)
		combined = append(combined, fragments...)
		fragments = combined
		delete(s.deferred, id)
	}
	t, err := s.TagForID(id)
	if err != nil {
		return err
	}
	t.InsertRules(id, fragments)
	if hash != "" {
		if _, exists := s.hashes[hash]; !exists {
			s.hashes[hash] = name
		}
	}
	return nil
}

// Tags returns the sheet's Tags in creation order.
func (s *StyleSheet) Tags() []Tag {
	out := make([]Tag, len(s.tags))
	copy(out, s.tags)
	return out
}

// CSS returns the accumulated CSS of every Tag in order.
func (s *StyleSheet) CSS() string {
	var out string
	for _, t := range s.tags {
		out += t.CSS()
	}
	return out
}

// HTML serializes the sheet as one style-element markup block per Tag,
// in creation order, for embedding into raw server-rendered documents.
func (s *StyleSheet) HTML() string {
	var out string
	for _, t := range s.tags {
		out += t.HTML()
	}
	return out
}

// Nodes returns one renderable style node per Tag, in Tag order, each
// carrying the Tag's CSS as its content. Keys are stable across
// repeated renders of the same sheet.
func (s *StyleSheet) Nodes() []*vdom.VNode {
	nodes := make([]*vdom.VNode, 0, len(s.tags))
	for i, t := range s.tags {
		nodes = append(nodes, vdom.NewElement("style", vdom.Props{
			"type":     "text/css",
			MarkerAttr: "",
			"key":      nodeKey(s.id, i),
		}, vdom.NewText(t.CSS())))
	}
	return nodes
}

func nodeKey(sheetID, index int) string {
	return fmt.Sprintf("sc-%d-%d", sheetID, index)
}
