package dom

import (
	"sort"
	"strings"

	"github.com/xlab/treeprint"
)

func describe(n *Node) string {
	switch n.nodeType {
	case ElementNode:
		return "<" + n.element.localName + ">"
	case TextNode, CDATASectionNode:
		return "\"" + n.charData.data + "\""
	case CommentNode:
		return "<!-- " + n.charData.data + " -->"
	case DocumentTypeNode:
		d := "<!DOCTYPE " + n.doctype.name
		if n.doctype.publicID != "" || n.doctype.systemID != "" {
			d += ` "` + n.doctype.publicID + `" "` + n.doctype.systemID + `"`
		}
		return d + ">"
	}
	return n.NodeName()
}

// serialize writes the html5lib test dump of n: one "| " prefixed line per
// node, children indented by two spaces, attributes sorted under their
// element.
func (n *Node) serialize(b *strings.Builder, depth int) {
	indent := ""
	if !n.isRootMarker() {
		indent = "| " + strings.Repeat("  ", depth)
	}
	b.WriteString(indent + describe(n) + "\n")
	if n.isElement() {
		names := n.element.GetAttributeNames()
		sort.Strings(names)
		for _, name := range names {
			b.WriteString("| " + strings.Repeat("  ", depth+1) + name + `="` + n.element.GetAttribute(name) + "\"\n")
		}
	}
	next := depth + 1
	if n.isRootMarker() {
		next = 0
	}
	for _, child := range n.childNodes.nodes {
		child.serialize(b, next)
	}
}

func (n *Node) isRootMarker() bool {
	return n.nodeType == DocumentNode || n.nodeType == DocumentFragmentNode
}

func (n *Node) String() string {
	var b strings.Builder
	n.serialize(&b, 0)
	return strings.TrimRight(b.String(), "\n")
}

// Dump draws the subtree of n as a box-drawing tree for logs.
func Dump(n *Node) string {
	t := treeprint.New()
	dumpChildren(t.AddBranch(describe(n)), n)
	return t.String()
}

func dumpChildren(t treeprint.Tree, n *Node) {
	for _, child := range n.childNodes.nodes {
		if !child.HasChildNodes() {
			t.AddNode(describe(child))
			continue
		}
		dumpChildren(t.AddBranch(describe(child)), child)
	}
}
