package html

import (
	"github.com/heathj/domtree/parser/dom"
)

type DocumentReadyState string

const (
	Loading     DocumentReadyState = "loading"
	Interactive DocumentReadyState = "interactive"
	Complete    DocumentReadyState = "complete"
)

// https://html.spec.whatwg.org/#the-document-object
//
// HTMLDocument keeps its lookups current purely from the tree's mutation
// callbacks. Only connected nodes are indexed.
type HTMLDocument struct {
	*dom.Document

	readyState     DocumentReadyState
	ids            map[string][]*dom.Node
	mutationEvents bool
}

var (
	_ dom.Registry          = (*HTMLDocument)(nil)
	_ dom.AttributeObserver = (*HTMLDocument)(nil)
)

func NewHTMLDocument(opts ...dom.DocumentOption) *HTMLDocument {
	d := &HTMLDocument{
		readyState: Loading,
		ids:        make(map[string][]*dom.Node),
	}
	opts = append(opts, dom.WithContentType("text/html"), dom.WithRegistry(d))
	d.Document = dom.NewDocument(opts...)
	return d
}

func (d *HTMLDocument) ReadyState() DocumentReadyState {
	return d.readyState
}

// SetReadyState fires readystatechange at the document when the state moves.
func (d *HTMLDocument) SetReadyState(s DocumentReadyState) {
	if s == d.readyState {
		return
	}
	d.readyState = s
	e := dom.NewEvent("readystatechange", dom.WithBubbles(false), dom.WithCancelable(false))
	_, _ = d.DispatchEvent(e)
}

// GetElementByID returns the first element in tree order whose id is id.
func (d *HTMLDocument) GetElementByID(id string) *dom.Node {
	candidates := d.ids[id]
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return candidates[0]
	}
	it := dom.NewNodeIterator(d.Node, dom.ShowElement, func(n *dom.Node) bool {
		return n.Element().ID() == id
	})
	return it.NextNode()
}

func (d *HTMLDocument) childOfRoot(name string) *dom.Node {
	root := d.DocumentElement()
	if root == nil || root.NodeName() != "html" {
		return nil
	}
	for _, c := range root.Children() {
		if c.NodeName() == name {
			return c
		}
	}
	return nil
}

// Head is https://html.spec.whatwg.org/#dom-document-head
func (d *HTMLDocument) Head() *dom.Node {
	return d.childOfRoot("head")
}

// Body is https://html.spec.whatwg.org/#dom-document-body
func (d *HTMLDocument) Body() *dom.Node {
	return d.childOfRoot("body")
}

// Title is the text of the first title element, with whitespace collapsed.
func (d *HTMLDocument) Title() string {
	titles := d.GetElementsByTagName("title")
	if len(titles) == 0 {
		return ""
	}
	return collapseWhitespace(titles[0].TextContent())
}

func (d *HTMLDocument) ChildInserted(parent, child *dom.Node, index int) {
	if !child.IsConnected() {
		return
	}
	d.walkElements(child, d.indexElement)
}

func (d *HTMLDocument) ChildRemoved(parent, child *dom.Node) {
	if !parent.IsConnected() {
		return
	}
	d.walkElements(child, d.unindexElement)
}

func (d *HTMLDocument) AttributeChanged(element *dom.Node, name, oldValue string, change dom.AttrChangeType) {
	if name != "id" || !element.IsConnected() {
		return
	}
	if change != dom.Addition {
		d.dropID(oldValue, element)
	}
	if change != dom.Removal {
		d.addID(element.Element().ID(), element)
	}
}

func (d *HTMLDocument) walkElements(root *dom.Node, fn func(*dom.Node)) {
	it := dom.NewNodeIterator(root, dom.ShowElement, nil)
	for n := it.NextNode(); n != nil; n = it.NextNode() {
		fn(n)
	}
}

func (d *HTMLDocument) indexElement(n *dom.Node) {
	if n.Element().HasAttribute("id") {
		d.addID(n.Element().ID(), n)
	}
}

func (d *HTMLDocument) unindexElement(n *dom.Node) {
	if n.Element().HasAttribute("id") {
		d.dropID(n.Element().ID(), n)
	}
}

func (d *HTMLDocument) addID(id string, n *dom.Node) {
	for _, c := range d.ids[id] {
		if c == n {
			return
		}
	}
	d.ids[id] = append(d.ids[id], n)
}

func (d *HTMLDocument) dropID(id string, n *dom.Node) {
	list := d.ids[id]
	for i, c := range list {
		if c == n {
			list = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(d.ids, id)
		return
	}
	d.ids[id] = list
}

func collapseWhitespace(s string) string {
	var out []byte
	space := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\f', '\r':
			space = len(out) > 0
		default:
			if space {
				out = append(out, ' ')
				space = false
			}
			out = append(out, s[i])
		}
	}
	return string(out)
}
