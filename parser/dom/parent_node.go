package dom

import "github.com/pkg/errors"

// https://dom.spec.whatwg.org/#converting-nodes-into-a-node
//
// Strings become text nodes owned by n's document. Everything is staged in
// a fragment so that the caller inserts with a single InsertBefore. Nodes
// are checked against parent before any of them is moved.
func (n *Node) convertNodes(parent *Node, nodes []interface{}) (*Node, error) {
	for _, v := range nodes {
		switch t := v.(type) {
		case *Node:
			if err := parent.ensurePreInsertValidity(t); err != nil {
				return nil, err
			}
		case string:
		default:
			return nil, errors.Wrapf(ErrHierarchyRequest, "cannot insert a %T", v)
		}
	}

	frag := n.doc.CreateDocumentFragment()
	for _, v := range nodes {
		child, ok := v.(*Node)
		if !ok {
			child = n.doc.CreateTextNode(v.(string))
		}
		if child.nodeType != DocumentFragmentNode {
			frag.insertNode(child, nil)
			continue
		}
		for _, c := range child.childNodes.Values() {
			frag.insertNode(c, nil)
		}
	}
	return frag, nil
}

// Append inserts nodes and strings after the last child of n.
func (n *Node) Append(nodes ...interface{}) error {
	frag, err := n.convertNodes(n, nodes)
	if err != nil {
		return err
	}
	_, err = n.AppendChild(frag)
	return err
}

// Prepend inserts nodes and strings before the first child of n.
func (n *Node) Prepend(nodes ...interface{}) error {
	frag, err := n.convertNodes(n, nodes)
	if err != nil {
		return err
	}
	_, err = n.InsertBefore(frag, n.FirstChild())
	return err
}

// ReplaceChildren drops every child of n and inserts nodes instead.
func (n *Node) ReplaceChildren(nodes ...interface{}) error {
	frag, err := n.convertNodes(n, nodes)
	if err != nil {
		return err
	}
	if err := n.ensurePreInsertValidity(frag); err != nil {
		return err
	}
	n.removeAllChildren()
	_, err = n.AppendChild(frag)
	return err
}
