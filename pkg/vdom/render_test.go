package vdom

import (
	"strings"
	"testing"
)

func TestRenderHTMLElement(t *testing.T) {
	n := NewElement("div", Props{"class": "card", "id": "main"},
		NewText("hello"),
	)

	got := RenderHTML(n)
	want := `<div class="card" id="main">hello</div>`
	if got != want {
		t.Errorf("RenderHTML = %q, want %q", got, want)
	}
}

func TestRenderHTMLEscapesText(t *testing.T) {
	n := NewElement("span", nil, NewText(`<b> & "q"`))
	got := RenderHTML(n)
	if strings.Contains(got, "<b>") {
		t.Errorf("text content must be escaped, got %q", got)
	}
}

func TestRenderHTMLStyleIsRaw(t *testing.T) {
	css := ".a > .b { content: \"<x>\" }"
	n := NewElement("style", Props{"type": "text/css"}, NewText(css))

	got := RenderHTML(n)
	want := `<style type="text/css">` + css + `</style>`
	if got != want {
		t.Errorf("style text must not be escaped:\n got %q\nwant %q", got, want)
	}
}

func TestRenderHTMLValuelessAttribute(t *testing.T) {
	n := NewElement("style", Props{"data-styled": ""})
	got := RenderHTML(n)
	if got != `<style data-styled></style>` {
		t.Errorf("empty string attribute renders bare, got %q", got)
	}
}

func TestRenderHTMLKeyIsNotAnAttribute(t *testing.T) {
	n := NewElement("style", Props{"key": "sc-1-0"})
	if n.Key != "sc-1-0" {
		t.Errorf("key prop must populate Key, got %q", n.Key)
	}
	if strings.Contains(RenderHTML(n), "key=") {
		t.Error("key must not serialize as an attribute")
	}
}

func TestRenderHTMLVoidElement(t *testing.T) {
	n := NewElement("br", nil)
	if got := RenderHTML(n); got != "<br>" {
		t.Errorf("void element renders without closing tag, got %q", got)
	}
}

func TestRenderHTMLNil(t *testing.T) {
	if got := RenderHTML(nil); got != "" {
		t.Errorf("nil renders empty, got %q", got)
	}
}
