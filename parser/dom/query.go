package dom

import (
	"github.com/andybalholm/cascadia"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Selector matching is delegated to cascadia, which works on x/net/html
// trees. A query builds a throwaway html mirror of the tree that n lives in
// and maps the matches back.
type mirror struct {
	toDOM   map[*html.Node]*Node
	fromDOM map[*Node]*html.Node
}

func newMirror(n *Node) *mirror {
	m := &mirror{
		toDOM:   make(map[*html.Node]*Node),
		fromDOM: make(map[*Node]*html.Node),
	}
	m.build(n.getRoot())
	return m
}

func (m *mirror) build(n *Node) *html.Node {
	h := &html.Node{}
	switch n.nodeType {
	case ElementNode:
		h.Type = html.ElementNode
		h.Data = n.element.localName
		h.DataAtom = atom.Lookup([]byte(h.Data))
		for _, a := range n.element.attributes.attrs {
			h.Attr = append(h.Attr, html.Attribute{Key: a.name, Val: a.value})
		}
	case TextNode, CDATASectionNode:
		h.Type = html.TextNode
		h.Data = n.charData.data
	case CommentNode:
		h.Type = html.CommentNode
		h.Data = n.charData.data
	case DocumentTypeNode:
		h.Type = html.DoctypeNode
		h.Data = n.doctype.name
	default:
		h.Type = html.DocumentNode
	}
	m.toDOM[h] = n
	m.fromDOM[n] = h
	for _, child := range n.childNodes.nodes {
		h.AppendChild(m.build(child))
	}
	return h
}

func compileSelector(selectors string) (cascadia.SelectorGroup, error) {
	sel, err := cascadia.ParseGroup(selectors)
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "%q: %v", selectors, err)
	}
	return sel, nil
}

// QuerySelector returns the first descendant element matching selectors.
func (n *Node) QuerySelector(selectors string) (*Node, error) {
	sel, err := compileSelector(selectors)
	if err != nil {
		return nil, err
	}
	m := newMirror(n)
	match := cascadia.Query(m.fromDOM[n], sel)
	if match == nil {
		return nil, nil
	}
	return m.toDOM[match], nil
}

// QuerySelectorAll returns a static list of the matching descendant
// elements in tree order.
func (n *Node) QuerySelectorAll(selectors string) (*NodeList, error) {
	sel, err := compileSelector(selectors)
	if err != nil {
		return nil, err
	}
	m := newMirror(n)
	var nodes []*Node
	for _, match := range cascadia.QueryAll(m.fromDOM[n], sel) {
		nodes = append(nodes, m.toDOM[match])
	}
	return newStaticNodeList(nodes), nil
}

// Matches reports whether n is an element matching selectors.
func (n *Node) Matches(selectors string) (bool, error) {
	sel, err := compileSelector(selectors)
	if err != nil {
		return false, err
	}
	if !n.isElement() {
		return false, nil
	}
	return sel.Match(newMirror(n).fromDOM[n]), nil
}

// Closest returns the nearest inclusive ancestor element matching selectors.
func (n *Node) Closest(selectors string) (*Node, error) {
	sel, err := compileSelector(selectors)
	if err != nil {
		return nil, err
	}
	m := newMirror(n)
	for a := n; a != nil; a = a.parentNode {
		if a.isElement() && sel.Match(m.fromDOM[a]) {
			return a, nil
		}
	}
	return nil, nil
}
