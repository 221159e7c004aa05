package parser

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/heathj/domtree/parser/dom"
)

// https://html.spec.whatwg.org/#void-elements
var voidElements = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Param:  true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

type stackOfOpenElements []*dom.Node

func (s *stackOfOpenElements) Push(n *dom.Node) {
	*s = append(*s, n)
}

func (s *stackOfOpenElements) Pop() *dom.Node {
	if len(*s) == 0 {
		return nil
	}
	n := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return n
}

// PopUntil pops elements up to and including the nearest one named name.
// The stack is left alone when no such element is open.
func (s *stackOfOpenElements) PopUntil(name string) *dom.Node {
	if !s.Contains(name) {
		return nil
	}
	for {
		if popped := s.Pop(); popped.NodeName() == name {
			return popped
		}
	}
}

func (s stackOfOpenElements) Contains(name string) bool {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].NodeName() == name {
			return true
		}
	}
	return false
}

func (s stackOfOpenElements) Current() *dom.Node {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// treeBuilder turns the token stream of x/net/html into a detached document
// fragment. Unmatched end tags are dropped and nothing is ever reparented,
// so the shape of the result mirrors the markup.
type treeBuilder struct {
	doc  *dom.Document
	frag *dom.Node
	open stackOfOpenElements
	log  logrus.FieldLogger
	// trace logs every token
	trace bool
}

func newTreeBuilder(doc *dom.Document, log logrus.FieldLogger, trace bool) *treeBuilder {
	return &treeBuilder{
		doc:   doc,
		frag:  doc.CreateDocumentFragment(),
		log:   log,
		trace: trace,
	}
}

// buildFragment parses text into a fresh fragment owned by doc.
func buildFragment(doc *dom.Document, text string, log logrus.FieldLogger, trace bool) (*dom.Node, error) {
	b := newTreeBuilder(doc, log, trace)
	z := nethtml.NewTokenizer(strings.NewReader(text))
	for {
		if z.Next() == nethtml.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return nil, errors.Wrap(err, "tokenizing markup")
			}
			return b.frag, nil
		}
		if err := b.processToken(z.Token()); err != nil {
			return nil, err
		}
	}
}

func (b *treeBuilder) insertionPoint() *dom.Node {
	if cur := b.open.Current(); cur != nil {
		return cur
	}
	return b.frag
}

func (b *treeBuilder) insert(n *dom.Node) error {
	if _, err := b.insertionPoint().AppendChild(n); err != nil {
		return errors.Wrapf(err, "inserting %s", n.NodeName())
	}
	return nil
}

func (b *treeBuilder) processToken(t nethtml.Token) error {
	if b.trace {
		b.log.WithFields(logrus.Fields{
			"type": t.Type.String(),
			"data": t.Data,
		}).Trace("token")
	}

	switch t.Type {
	case nethtml.TextToken:
		return b.insertText(t.Data)
	case nethtml.StartTagToken, nethtml.SelfClosingTagToken:
		return b.startTag(t)
	case nethtml.EndTagToken:
		b.endTag(t.Data)
	case nethtml.CommentToken:
		return b.insert(b.doc.CreateComment(t.Data))
	case nethtml.DoctypeToken:
		if len(b.open) > 0 {
			return nil
		}
		name := t.Data
		if fields := strings.Fields(t.Data); len(fields) > 0 {
			name = strings.ToLower(fields[0])
		}
		return b.insert(b.doc.CreateDocumentType(name, "", ""))
	}
	return nil
}

func (b *treeBuilder) insertText(data string) error {
	parent := b.insertionPoint()
	if data == "" || parent == b.frag && strings.TrimSpace(data) == "" {
		return nil
	}
	if last := parent.LastChild(); last != nil && last.NodeType() == dom.TextNode {
		last.CharacterData().AppendData(data)
		return nil
	}
	return b.insert(b.doc.CreateTextNode(data))
}

func (b *treeBuilder) startTag(t nethtml.Token) error {
	switch t.DataAtom {
	case atom.Html:
		if len(b.open) > 0 {
			return nil
		}
	case atom.Head:
		if b.open.Contains("head") || b.open.Contains("body") {
			return nil
		}
	case atom.Body:
		if b.open.Contains("body") {
			return nil
		}
		if cur := b.open.Current(); cur != nil && cur.NodeName() == "head" {
			b.open.Pop()
		}
	}

	n := b.doc.CreateElement(t.Data)
	for _, a := range t.Attr {
		if n.Element().HasAttribute(a.Key) {
			continue
		}
		n.Element().SetAttribute(a.Key, a.Val)
	}
	if err := b.insert(n); err != nil {
		return err
	}
	if t.Type == nethtml.SelfClosingTagToken || voidElements[t.DataAtom] {
		return nil
	}
	b.open.Push(n)
	return nil
}

func (b *treeBuilder) endTag(name string) {
	switch name {
	case "html", "body":
		return
	}
	if b.open.PopUntil(name) == nil {
		b.log.WithField("tag", name).Debug("dropping unmatched end tag")
	}
}
