package dom

// WhatToShow is the node type mask of a NodeIterator.
// https://dom.spec.whatwg.org/#interface-nodefilter
type WhatToShow uint32

const (
	ShowAll                   WhatToShow = 0xFFFFFFFF
	ShowElement               WhatToShow = 1 << (ElementNode - 1)
	ShowAttribute             WhatToShow = 1 << (AttrNode - 1)
	ShowText                  WhatToShow = 1 << (TextNode - 1)
	ShowCDATASection          WhatToShow = 1 << (CDATASectionNode - 1)
	ShowProcessingInstruction WhatToShow = 1 << (ProcessingInstructionNode - 1)
	ShowComment               WhatToShow = 1 << (CommentNode - 1)
	ShowDocument              WhatToShow = 1 << (DocumentNode - 1)
	ShowDocumentType          WhatToShow = 1 << (DocumentTypeNode - 1)
	ShowDocumentFragment      WhatToShow = 1 << (DocumentFragmentNode - 1)
)

// NodeFilter accepts or skips a node the mask let through.
type NodeFilter func(n *Node) bool

// NodeIterator walks the subtree of root in tree order, root included.
// https://dom.spec.whatwg.org/#nodeiterator
type NodeIterator struct {
	root                       *Node
	referenceNode              *Node
	pointerBeforeReferenceNode bool
	whatToShow                 WhatToShow
	filter                     NodeFilter
}

func NewNodeIterator(root *Node, whatToShow WhatToShow, filter NodeFilter) *NodeIterator {
	return &NodeIterator{
		root:                       root,
		referenceNode:              root,
		pointerBeforeReferenceNode: true,
		whatToShow:                 whatToShow,
		filter:                     filter,
	}
}

func (it *NodeIterator) Root() *Node {
	return it.root
}

func (it *NodeIterator) ReferenceNode() *Node {
	return it.referenceNode
}

func (it *NodeIterator) accept(n *Node) bool {
	if it.whatToShow&(1<<(n.nodeType-1)) == 0 {
		return false
	}
	return it.filter == nil || it.filter(n)
}

func (it *NodeIterator) following(n *Node) *Node {
	if first := n.FirstChild(); first != nil {
		return first
	}
	for ; n != nil && n != it.root; n = n.parentNode {
		if next := n.NextSibling(); next != nil {
			return next
		}
	}
	return nil
}

func (it *NodeIterator) preceding(n *Node) *Node {
	if n == it.root {
		return nil
	}
	prev := n.PreviousSibling()
	if prev == nil {
		return n.parentNode
	}
	for last := prev.LastChild(); last != nil; last = prev.LastChild() {
		prev = last
	}
	return prev
}

// NextNode returns the next accepted node, or nil at the end.
func (it *NodeIterator) NextNode() *Node {
	node, before := it.referenceNode, it.pointerBeforeReferenceNode
	for {
		if before {
			before = false
		} else if node = it.following(node); node == nil {
			return nil
		}
		if it.accept(node) {
			it.referenceNode, it.pointerBeforeReferenceNode = node, false
			return node
		}
	}
}

// PreviousNode returns the previous accepted node, or nil at the start.
func (it *NodeIterator) PreviousNode() *Node {
	node, before := it.referenceNode, it.pointerBeforeReferenceNode
	for {
		if !before {
			before = true
		} else if node = it.preceding(node); node == nil {
			return nil
		}
		if it.accept(node) {
			it.referenceNode, it.pointerBeforeReferenceNode = node, true
			return node
		}
	}
}
