// Package parser is the front door that turns markup into an attached
// document.
package parser

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/domtree/parser/dom"
	"github.com/heathj/domtree/parser/html"
)

var (
	ErrInvalidType   = errors.New("invalid type")
	ErrUnrecoverable = errors.New("unrecoverable markup")
)

const (
	shellOpen  = "<html><head><title></title></head><body>"
	shellClose = "</body></html>"
)

type parserConfig struct {
	log             logrus.FieldLogger
	debug           bool
	mutationEvents  bool
	documentOptions []dom.DocumentOption
}

type ParserOption func(*parserConfig)

func WithLogger(l logrus.FieldLogger) ParserOption {
	return func(c *parserConfig) { c.log = l }
}

// WithDebug logs every token and a dump of each parsed tree at trace level.
func WithDebug() ParserOption {
	return func(c *parserConfig) { c.debug = true }
}

// WithMutationEvents turns on legacy mutation events for parsed documents.
func WithMutationEvents() ParserOption {
	return func(c *parserConfig) { c.mutationEvents = true }
}

// WithDocumentOptions passes opts to every document the parser creates.
func WithDocumentOptions(opts ...dom.DocumentOption) ParserOption {
	return func(c *parserConfig) {
		c.documentOptions = append(c.documentOptions, opts...)
	}
}

// DOMParser is https://w3c.github.io/DOM-Parsing/#the-domparser-interface
type DOMParser struct {
	config parserConfig
}

func NewDOMParser(opts ...ParserOption) *DOMParser {
	c := parserConfig{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&c)
	}
	c.log = c.log.WithField("component", "parser")
	return &DOMParser{config: c}
}

// ParseFromString parses text into a new document. Only text/html is
// supported; the XML family yields dom.ErrNotSupported and anything else
// ErrInvalidType.
func (p *DOMParser) ParseFromString(text, contentType string) (*html.HTMLDocument, error) {
	switch contentType {
	case "text/html":
	case "text/xml", "application/xml", "application/xhtml+xml", "image/svg+xml":
		return nil, errors.Wrapf(dom.ErrNotSupported, "parsing %s", contentType)
	default:
		return nil, errors.Wrapf(ErrInvalidType, "%q", contentType)
	}

	opts := append([]dom.DocumentOption{dom.WithLogger(p.config.log)}, p.config.documentOptions...)
	doc := html.NewHTMLDocument(opts...)
	if p.config.mutationEvents {
		doc.EnableMutationEvents()
	}

	root, err := p.parseHTML(doc.Document, text)
	if err != nil {
		return nil, err
	}
	if _, err := doc.AppendChild(root); err != nil {
		return nil, errors.Wrap(err, "attaching root")
	}
	doc.SetReadyState(html.Interactive)
	doc.SetReadyState(html.Complete)

	if p.config.debug {
		p.config.log.WithFields(logrus.Fields{}).Trace("\n" + dom.Dump(doc.Node))
	}
	return doc, nil
}

type parseState uint

const (
	attemptState parseState = iota
	classifyState
	retryState
)

func (s parseState) String() string {
	switch s {
	case attemptState:
		return "attempt"
	case classifyState:
		return "classify"
	case retryState:
		return "retry"
	}
	return "unknown"
}

// parseHTML returns a detached html root for text. Markup that does not
// come out as a single html element is retried once inside a synthesized
// document shell.
func (p *DOMParser) parseHTML(doc *dom.Document, text string) (*dom.Node, error) {
	var (
		source  = discardPrefix(text)
		frag    *dom.Node
		retried bool
		err     error
		state   = attemptState
	)
	for {
		p.config.log.WithField("state", state.String()).Debug("[PARSE]")
		switch state {
		case attemptState:
			frag, err = buildFragment(doc, source, p.config.log, p.config.debug)
			if err != nil {
				return nil, err
			}
			state = classifyState
		case classifyState:
			if root := htmlRoot(frag); root != nil {
				return root, nil
			}
			if retried {
				return nil, errors.Wrapf(ErrUnrecoverable, "no html root in %d bytes of markup", len(text))
			}
			state = retryState
		case retryState:
			p.config.log.WithField("children", frag.ChildNodes().Length()).Warn("markup has no html root, wrapping it in a document shell")
			source = shellOpen + text + shellClose
			retried = true
			state = attemptState
		}
	}
}

// htmlRoot returns the only child of frag when it is an html element.
func htmlRoot(frag *dom.Node) *dom.Node {
	if frag.ChildNodes().Length() != 1 {
		return nil
	}
	root := frag.FirstChild()
	if root.NodeType() != dom.ElementNode || root.NodeName() != "html" {
		return nil
	}
	return root
}

// discardPrefix drops everything before the first <html tag, matched
// without regard to ASCII case. Text without one is returned as is.
func discardPrefix(text string) string {
	const tag = "<html"
	for i := 0; i+len(tag) <= len(text); i++ {
		if !strings.EqualFold(text[i:i+len(tag)], tag) {
			continue
		}
		rest := text[i+len(tag):]
		if rest == "" || strings.ContainsRune(" \t\n\f\r/>", rune(rest[0])) {
			return text[i:]
		}
	}
	return text
}
