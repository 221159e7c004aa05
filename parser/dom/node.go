// Package dom holds the document tree and the event system of the engine.
//
// Nodes are only ever built by a Document. Every tree mutation goes through
// the Node methods in this package so the owning Document sees each
// insertion and removal.
package dom

import "strings"

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	AttrNode
	TextNode
	CDATASectionNode
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case AttrNode:
		return "attribute"
	case TextNode:
		return "text"
	case CDATASectionNode:
		return "cdata-section"
	case ProcessingInstructionNode:
		return "processing-instruction"
	case CommentNode:
		return "comment"
	case DocumentNode:
		return "document"
	case DocumentTypeNode:
		return "document-type"
	case DocumentFragmentNode:
		return "document-fragment"
	}
	return "unknown"
}

type DocumentPosition uint16

const (
	Disconnected           DocumentPosition = 0x01
	Preceding              DocumentPosition = 0x02
	Following              DocumentPosition = 0x04
	Contain                DocumentPosition = 0x08
	ContainedBy            DocumentPosition = 0x10
	ImplementationSpecific DocumentPosition = 0x20
)

// https://dom.spec.whatwg.org/#dictdef-getrootnodeoptions
type GetRootNodeOptions struct {
	Composed bool
}

// https://dom.spec.whatwg.org/#htmlcollection
type HTMLCollection []*Node

// https://dom.spec.whatwg.org/#node
type Node struct {
	EventTarget

	nodeType   NodeType
	parentNode *Node
	childNodes *NodeList
	doc        *Document

	// at most one is set, matching nodeType
	element  *Element
	charData *CharacterData
	doctype  *DocumentType
}

func newNode(doc *Document, t NodeType) *Node {
	return &Node{
		nodeType:   t,
		childNodes: emptyNodeList,
		doc:        doc,
	}
}

func (n *Node) NodeType() NodeType {
	return n.nodeType
}

// NodeName is https://dom.spec.whatwg.org/#dom-node-nodename
func (n *Node) NodeName() string {
	switch n.nodeType {
	case ElementNode:
		return n.element.localName
	case TextNode:
		return "#text"
	case CDATASectionNode:
		return "#cdata-section"
	case CommentNode:
		return "#comment"
	case DocumentNode:
		return "#document"
	case DocumentTypeNode:
		return n.doctype.name
	case DocumentFragmentNode:
		return "#document-fragment"
	}
	return ""
}

// NodeValue is the character data of text and comment nodes, empty otherwise.
func (n *Node) NodeValue() string {
	return n.charData.Data()
}

// OwnerDocument is nil for the document node itself.
func (n *Node) OwnerDocument() *Document {
	if n.nodeType == DocumentNode {
		return nil
	}
	return n.doc
}

// Element returns the element view of n, or nil when n is not an element.
func (n *Node) Element() *Element {
	return n.element
}

// CharacterData returns the character data of text and comment nodes, or nil.
func (n *Node) CharacterData() *CharacterData {
	return n.charData
}

// DocumentType returns the doctype view of n, or nil.
func (n *Node) DocumentType() *DocumentType {
	return n.doctype
}

func (n *Node) isElement() bool {
	return n.nodeType == ElementNode
}

func (n *Node) ParentNode() *Node {
	return n.parentNode
}

// ParentElement is the parent when it is an element, nil otherwise.
func (n *Node) ParentElement() *Node {
	if n.parentNode != nil && n.parentNode.isElement() {
		return n.parentNode
	}
	return nil
}

// ChildNodes is the live list of children. Nodes that can have children
// get their own list here, so a list handed out stays current.
func (n *Node) ChildNodes() *NodeList {
	if n.childNodes == emptyNodeList && n.canHaveChildren() {
		n.childNodes = &NodeList{}
	}
	return n.childNodes
}

func (n *Node) HasChildNodes() bool {
	return n.childNodes.Length() > 0
}

func (n *Node) FirstChild() *Node {
	return n.childNodes.first()
}

func (n *Node) LastChild() *Node {
	return n.childNodes.last()
}

func (n *Node) siblingAt(offset int) *Node {
	if n.parentNode == nil {
		return nil
	}
	siblings := n.parentNode.childNodes
	return siblings.Item(siblings.IndexOf(n) + offset)
}

func (n *Node) NextSibling() *Node {
	return n.siblingAt(1)
}

func (n *Node) PreviousSibling() *Node {
	return n.siblingAt(-1)
}

// Children is https://dom.spec.whatwg.org/#dom-parentnode-children
func (n *Node) Children() HTMLCollection {
	var c HTMLCollection
	for _, child := range n.childNodes.nodes {
		if child.isElement() {
			c = append(c, child)
		}
	}
	return c
}

func (n *Node) ChildElementCount() int {
	return len(n.Children())
}

func (n *Node) FirstElementChild() *Node {
	for _, child := range n.childNodes.nodes {
		if child.isElement() {
			return child
		}
	}
	return nil
}

func (n *Node) LastElementChild() *Node {
	nodes := n.childNodes.nodes
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i].isElement() {
			return nodes[i]
		}
	}
	return nil
}

func (n *Node) NextElementSibling() *Node {
	for s := n.NextSibling(); s != nil; s = s.NextSibling() {
		if s.isElement() {
			return s
		}
	}
	return nil
}

func (n *Node) PreviousElementSibling() *Node {
	for s := n.PreviousSibling(); s != nil; s = s.PreviousSibling() {
		if s.isElement() {
			return s
		}
	}
	return nil
}

// TextContent concatenates the text of element and text children in tree
// order. Comments do not contribute.
func (n *Node) TextContent() string {
	switch n.nodeType {
	case TextNode, CDATASectionNode, CommentNode, ProcessingInstructionNode:
		return n.charData.Data()
	case ElementNode, DocumentFragmentNode:
		var b strings.Builder
		for _, child := range n.childNodes.nodes {
			if child.isElement() || child.nodeType == TextNode {
				b.WriteString(child.TextContent())
			}
		}
		return b.String()
	}
	return ""
}

// SetTextContent replaces all children with a single new text node. Old
// text children are dropped, never rewritten in place.
func (n *Node) SetTextContent(s string) {
	switch n.nodeType {
	case TextNode, CDATASectionNode, CommentNode, ProcessingInstructionNode:
		n.charData.SetData(s)
	case ElementNode, DocumentFragmentNode:
		n.removeAllChildren()
		n.insertNode(n.doc.CreateTextNode(s), nil)
	}
}

func (n *Node) getRoot() *Node {
	var prev *Node
	for i := n; i != nil; i = i.parentNode {
		prev = i
	}
	return prev
}

func (n *Node) GetRootNode(o GetRootNodeOptions) *Node {
	return n.getRoot()
}

// IsConnected reports whether n is in its document's tree.
func (n *Node) IsConnected() bool {
	return n.getRoot().nodeType == DocumentNode
}

func (n *Node) IsSameNode(on *Node) bool {
	return n == on
}

// Contains reports whether on is n or one of its descendants.
func (n *Node) Contains(on *Node) bool {
	if on == nil {
		return false
	}
	it := NewNodeIterator(n, ShowAll, nil)
	for node := it.NextNode(); node != nil; node = it.NextNode() {
		if node == on {
			return true
		}
	}
	return false
}

// GetElementsByTagName collects descendant elements named qualifiedName in
// tree order. "*" matches every element.
func (n *Node) GetElementsByTagName(qualifiedName string) HTMLCollection {
	if n.doc.IsHTML() {
		qualifiedName = asciiLower(qualifiedName)
	}
	var c HTMLCollection
	it := NewNodeIterator(n, ShowElement, nil)
	for node := it.NextNode(); node != nil; node = it.NextNode() {
		if node == n {
			continue
		}
		if qualifiedName == "*" || node.element.localName == qualifiedName {
			c = append(c, node)
		}
	}
	return c
}

func (n *Node) Normalize() error {
	return notSupported("normalize")
}

func (n *Node) CloneNode(deep bool) (*Node, error) {
	return nil, notSupported("cloneNode")
}

func (n *Node) IsEqualNode(on *Node) (bool, error) {
	return false, notSupported("isEqualNode")
}

func (n *Node) CompareDocumentPosition(on *Node) (DocumentPosition, error) {
	return Disconnected, notSupported("compareDocumentPosition")
}

func (n *Node) LookupPrefix(namespace string) (string, error) {
	return "", notSupported("lookupPrefix")
}

func (n *Node) LookupNamespaceURI(prefix string) (string, error) {
	return "", notSupported("lookupNamespaceURI")
}

func (n *Node) IsDefaultNamespace(namespace string) (bool, error) {
	return false, notSupported("isDefaultNamespace")
}

func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
