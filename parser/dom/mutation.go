package dom

import "github.com/pkg/errors"

func (n *Node) canHaveChildren() bool {
	switch n.nodeType {
	case ElementNode, DocumentNode, DocumentFragmentNode:
		return true
	}
	return false
}

// https://dom.spec.whatwg.org/#concept-node-ensure-pre-insertion-validity
func (n *Node) ensurePreInsertValidity(child *Node) error {
	if child == nil {
		return errors.Wrap(ErrHierarchyRequest, "nil node")
	}
	if !n.canHaveChildren() {
		return errors.Wrapf(ErrHierarchyRequest, "%s node cannot have children", n.nodeType)
	}
	if child.nodeType == DocumentNode {
		return errors.Wrap(ErrHierarchyRequest, "a document cannot be inserted")
	}
	if child.doc != n.doc {
		return errors.Wrap(ErrWrongDocument, "node belongs to another document")
	}
	for a := n; a != nil; a = a.parentNode {
		if a == child {
			return errors.Wrap(ErrHierarchyRequest, "node is an inclusive ancestor of the parent")
		}
	}
	return nil
}

// InsertBefore inserts child right before ref, or at the end when ref is nil.
// A child that already has a parent is detached first. Inserting a document
// fragment moves all of its children, in order, and returns the now empty
// fragment.
func (n *Node) InsertBefore(child, ref *Node) (*Node, error) {
	if ref != nil && ref.parentNode != n {
		return nil, errors.Wrap(ErrNotFound, "invalid reference node")
	}
	if err := n.ensurePreInsertValidity(child); err != nil {
		return nil, err
	}

	if child.nodeType == DocumentFragmentNode {
		for _, c := range child.childNodes.Values() {
			n.insertNode(c, ref)
		}
		return child, nil
	}

	if ref == child {
		ref = child.NextSibling()
	}
	return n.insertNode(child, ref), nil
}

// AppendChild is InsertBefore(child, nil).
func (n *Node) AppendChild(child *Node) (*Node, error) {
	return n.InsertBefore(child, nil)
}

// RemoveChild detaches child from n.
func (n *Node) RemoveChild(child *Node) (*Node, error) {
	if child == nil || child.parentNode != n {
		return nil, errors.Wrap(ErrNotFound, "not a child")
	}
	n.removeNode(child)
	return child, nil
}

// ReplaceChild puts newChild where oldChild is and returns oldChild.
func (n *Node) ReplaceChild(newChild, oldChild *Node) (*Node, error) {
	if oldChild == nil || oldChild.parentNode != n {
		return nil, errors.Wrap(ErrNotFound, "not a child")
	}
	if newChild == oldChild {
		return oldChild, nil
	}
	if _, err := n.InsertBefore(newChild, oldChild); err != nil {
		return nil, err
	}
	n.removeNode(oldChild)
	return oldChild, nil
}

// insertNode splices an already validated, non-fragment child in before ref.
func (n *Node) insertNode(child, ref *Node) *Node {
	if child.parentNode != nil {
		child.parentNode.removeNode(child)
	}

	if n.childNodes == emptyNodeList {
		n.childNodes = &NodeList{}
	}
	// a ref detached by a registry callback counts as the end of the list
	at := -1
	if ref != nil {
		at = n.childNodes.IndexOf(ref)
	}
	n.childNodes.wedgeIn(at, child)
	child.parentNode = n
	index := n.childNodes.IndexOf(child)

	// staging inside a fragment is invisible to the document
	if n.nodeType != DocumentFragmentNode {
		n.doc.childInserted(n, child, index)
	}
	return child
}

func (n *Node) removeNode(child *Node) {
	n.childNodes.remove(n.childNodes.IndexOf(child))
	child.parentNode = nil

	if n.nodeType != DocumentFragmentNode {
		n.doc.childRemoved(n, child)
	}
}

func (n *Node) removeAllChildren() {
	for n.childNodes.Length() > 0 {
		n.removeNode(n.childNodes.first())
	}
}
