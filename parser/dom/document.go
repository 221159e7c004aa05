package dom

import (
	"github.com/sirupsen/logrus"
)

// Registry is told about every insertion into and removal from a tree owned
// by a document, except for moves inside a document fragment. Registries
// keep engine-wide indices current; the tree makes no assumption about what
// they do with the calls.
type Registry interface {
	ChildInserted(parent, child *Node, index int)
	ChildRemoved(parent, child *Node)
}

// AttributeObserver is implemented by registries that also track attribute
// changes. oldValue is empty when change is Addition.
type AttributeObserver interface {
	AttributeChanged(element *Node, name, oldValue string, change AttrChangeType)
}

// CharacterDataObserver is implemented by registries that also track text
// and comment data changes.
type CharacterDataObserver interface {
	CharacterDataChanged(node *Node, oldValue string)
}

const htmlContentType = "text/html"

// DocumentOption configures a Document at construction.
type DocumentOption func(*Document)

// WithLogger routes the document's mutation logs to l.
func WithLogger(l logrus.FieldLogger) DocumentOption {
	return func(d *Document) {
		d.log = l
	}
}

// WithRegistry adds r to the registries notified of mutations.
func WithRegistry(r Registry) DocumentOption {
	return func(d *Document) {
		d.registries = append(d.registries, r)
	}
}

// WithContentType sets the document's content type, text/html by default.
func WithContentType(ct string) DocumentOption {
	return func(d *Document) {
		d.contentType = ct
	}
}

// Document owns a tree and is the only factory for its nodes.
// https://dom.spec.whatwg.org/#interface-document
type Document struct {
	*Node

	contentType string
	registries  []Registry
	log         logrus.FieldLogger
}

func NewDocument(opts ...DocumentOption) *Document {
	d := &Document{
		contentType: htmlContentType,
		log:         logrus.StandardLogger(),
	}
	d.Node = newNode(d, DocumentNode)
	for _, opt := range opts {
		opt(d)
	}
	d.log = d.log.WithField("component", "dom")
	return d
}

func (d *Document) ContentType() string {
	return d.contentType
}

// IsHTML reports whether element and attribute names are case-folded.
func (d *Document) IsHTML() bool {
	return d.contentType == htmlContentType
}

// AddRegistry starts notifying r of mutations.
func (d *Document) AddRegistry(r Registry) {
	d.registries = append(d.registries, r)
}

// DocumentElement is the root element, if any.
func (d *Document) DocumentElement() *Node {
	return d.FirstElementChild()
}

// Doctype is the first doctype child, if any.
func (d *Document) Doctype() *Node {
	for _, child := range d.childNodes.nodes {
		if child.nodeType == DocumentTypeNode {
			return child
		}
	}
	return nil
}

func (d *Document) CreateElement(localName string) *Node {
	if d.IsHTML() {
		localName = asciiLower(localName)
	}
	n := newNode(d, ElementNode)
	n.element = &Element{localName: localName, node: n}
	n.element.attributes = newNamedNodeMap(n.element)
	return n
}

func (d *Document) CreateTextNode(data string) *Node {
	n := newNode(d, TextNode)
	n.charData = &CharacterData{data: data, node: n}
	return n
}

func (d *Document) CreateComment(data string) *Node {
	n := newNode(d, CommentNode)
	n.charData = &CharacterData{data: data, node: n}
	return n
}

func (d *Document) CreateDocumentFragment() *Node {
	return newNode(d, DocumentFragmentNode)
}

func (d *Document) CreateDocumentType(name, publicID, systemID string) *Node {
	n := newNode(d, DocumentTypeNode)
	n.doctype = &DocumentType{name: name, publicID: publicID, systemID: systemID}
	return n
}

// CreateEvent is NewEvent for callers that only hold the document.
func (d *Document) CreateEvent(eventType string, opts ...EventOption) *Event {
	return NewEvent(eventType, opts...)
}

func (d *Document) childInserted(parent, child *Node, index int) {
	d.log.WithFields(logrus.Fields{
		"method": "childInserted",
		"parent": parent.NodeName(),
		"child":  child.NodeName(),
		"index":  index,
	}).Debug("[TREE]")
	for _, r := range d.registries {
		r.ChildInserted(parent, child, index)
	}
}

func (d *Document) childRemoved(parent, child *Node) {
	d.log.WithFields(logrus.Fields{
		"method": "childRemoved",
		"parent": parent.NodeName(),
		"child":  child.NodeName(),
	}).Debug("[TREE]")
	for _, r := range d.registries {
		r.ChildRemoved(parent, child)
	}
}

func (d *Document) attributeChanged(element *Node, name, oldValue string, change AttrChangeType) {
	d.log.WithFields(logrus.Fields{
		"method":  "attributeChanged",
		"element": element.NodeName(),
		"name":    name,
		"change":  change.String(),
	}).Debug("[TREE]")
	for _, r := range d.registries {
		if o, ok := r.(AttributeObserver); ok {
			o.AttributeChanged(element, name, oldValue, change)
		}
	}
}

func (d *Document) characterDataChanged(node *Node, oldValue string) {
	d.log.WithFields(logrus.Fields{
		"method": "characterDataChanged",
		"node":   node.NodeName(),
	}).Debug("[TREE]")
	for _, r := range d.registries {
		if o, ok := r.(CharacterDataObserver); ok {
			o.CharacterDataChanged(node, oldValue)
		}
	}
}
