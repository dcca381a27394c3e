//go:build js && wasm
// +build js,wasm

package sheet

import (
	"fmt"
	"syscall/js"

	"github.com/recera/styled/pkg/debug"
)

// newHost selects the Tag factory for the current environment. With a
// live document the sheet injects into real style elements; the variant
// is fixed here, once, from the options and the page's own flags.
func newHost(opts Options) host {
	doc := js.Global().Get("document")
	if opts.ForceServer || !doc.Truthy() {
		return bufferHost{}
	}
	if !opts.Production {
		opts.Production = pageFlag("__STYLED_PRODUCTION__")
	}
	if !opts.Compat {
		opts.Compat = pageFlag("__STYLED_COMPAT__")
	}
	if opts.Nonce == "" {
		opts.Nonce = pageNonce()
	}
	return &browserHost{
		doc:    doc,
		target: doc.Get("head"),
		opts:   opts,
	}
}

// pageFlag reads a boolean global set by the hosting page.
func pageFlag(name string) bool {
	v := js.Global().Get(name)
	return v.Truthy()
}

// pageNonce retrieves the content-security-policy nonce the bundler
// exposes on the page, if any.
func pageNonce() string {
	v := js.Global().Get("__webpack_nonce__")
	if v.Type() == js.TypeString {
		return v.String()
	}
	return ""
}

// browserHost creates style elements in the document head. Elements are
// anchored in creation order: the first is appended to the target, each
// later one is inserted immediately after the previous, so later Tags'
// rules take CSSOM precedence over earlier ones at equal specificity.
type browserHost struct {
	doc    js.Value
	target js.Value
	lastEl js.Value
	opts   Options
}

func (h *browserHost) defaultCapacity() int {
	return DefaultCapacity
}

func (h *browserHost) createTag() (Tag, error) {
	el, err := h.createStyleElement()
	if err != nil {
		return nil, err
	}
	if h.opts.Production && !h.opts.Compat {
		backing, err := backingSheet(h.doc, el, h.opts.Production)
		if err != nil {
			return nil, err
		}
		debug.Log("styled: created speedy tag")
		return newSpeedyTag(&jsRuleContainer{sheet: backing}), nil
	}
	debug.Log("styled: created text-node tag")
	return newTextTag(&jsTextContainer{doc: h.doc, el: el}), nil
}

func (h *browserHost) createStyleElement() (js.Value, error) {
	el := h.doc.Call("createElement", "style")
	el.Call("setAttribute", "type", "text/css")
	el.Call("setAttribute", MarkerAttr, "")
	if h.opts.Nonce != "" {
		el.Call("setAttribute", "nonce", h.opts.Nonce)
	}

	if !h.lastEl.Truthy() {
		h.target.Call("appendChild", el)
	} else {
		parent := h.lastEl.Get("parentNode")
		if !parent.Truthy() {
			return js.Value{}, detachedAnchorError(h.opts.Production)
		}
		parent.Call("insertBefore", el, h.lastEl.Get("nextSibling"))
	}
	h.lastEl = el
	return el, nil
}

// backingSheet resolves the CSSStyleSheet behind a style element: the
// direct handle first, then a linear scan of document.styleSheets for
// the sheet the element owns (some hosts hand out the direct reference
// late). Not found is fatal.
func backingSheet(doc, el js.Value, production bool) (js.Value, error) {
	if s := el.Get("sheet"); s.Truthy() {
		return s, nil
	}
	sheets := doc.Get("styleSheets")
	for i := 0; i < sheets.Get("length").Int(); i++ {
		s := sheets.Index(i)
		if s.Get("ownerNode").Equal(el) {
			return s, nil
		}
	}
	return js.Value{}, noBackingSheetError(production)
}

// jsRuleContainer adapts a browser CSSStyleSheet to RuleContainer. The
// native insertRule throws on malformed rules, which syscall/js turns
// into a panic; that is converted to an ordinary error here so the
// index-based tag can skip the rule.
type jsRuleContainer struct {
	sheet js.Value
}

func (c *jsRuleContainer) InsertRule(rule string, index int) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("insertRule rejected %q: %v", rule, r)
		}
	}()
	c.sheet.Call("insertRule", rule, index)
	return index, nil
}

func (c *jsRuleContainer) RuleCount() int {
	return c.sheet.Get("cssRules").Get("length").Int()
}

func (c *jsRuleContainer) RuleText(i int) string {
	return c.sheet.Get("cssRules").Index(i).Get("cssText").String()
}

// jsTextContainer adapts a style element to TextContainer for the
// text-node variant.
type jsTextContainer struct {
	doc js.Value
	el  js.Value
}

func (c *jsTextContainer) AppendText(initial string) TextNode {
	node := c.doc.Call("createTextNode", initial)
	c.el.Call("appendChild", node)
	return &jsTextNode{node: node}
}

type jsTextNode struct {
	node js.Value
}

func (n *jsTextNode) Append(s string) {
	n.node.Set("textContent", n.node.Get("textContent").String()+s)
}

func (n *jsTextNode) Text() string {
	return n.node.Get("textContent").String()
}
