package dom

func inBatch(n *Node, nodes []interface{}) bool {
	for _, v := range nodes {
		if c, ok := v.(*Node); ok && c == n {
			return true
		}
	}
	return false
}

// Before inserts nodes and strings as siblings right before n. It does
// nothing when n has no parent.
func (n *Node) Before(nodes ...interface{}) error {
	parent := n.parentNode
	if parent == nil {
		return nil
	}
	prev := n.PreviousSibling()
	for prev != nil && inBatch(prev, nodes) {
		prev = prev.PreviousSibling()
	}
	frag, err := n.convertNodes(parent, nodes)
	if err != nil {
		return err
	}
	ref := parent.FirstChild()
	if prev != nil {
		ref = prev.NextSibling()
	}
	_, err = parent.InsertBefore(frag, ref)
	return err
}

// After inserts nodes and strings as siblings right after n. It does
// nothing when n has no parent.
func (n *Node) After(nodes ...interface{}) error {
	parent := n.parentNode
	if parent == nil {
		return nil
	}
	next := n.viableNextSibling(nodes)
	frag, err := n.convertNodes(parent, nodes)
	if err != nil {
		return err
	}
	_, err = parent.InsertBefore(frag, next)
	return err
}

// ReplaceWith puts nodes and strings where n is and detaches n.
func (n *Node) ReplaceWith(nodes ...interface{}) error {
	parent := n.parentNode
	if parent == nil {
		return nil
	}
	next := n.viableNextSibling(nodes)
	frag, err := n.convertNodes(parent, nodes)
	if err != nil {
		return err
	}
	// n may have been moved into the fragment
	if n.parentNode == parent {
		_, err = parent.ReplaceChild(frag, n)
		return err
	}
	_, err = parent.InsertBefore(frag, next)
	return err
}

// Remove detaches n from its parent, if any.
func (n *Node) Remove() {
	if n.parentNode != nil {
		n.parentNode.removeNode(n)
	}
}

func (n *Node) viableNextSibling(nodes []interface{}) *Node {
	next := n.NextSibling()
	for next != nil && inBatch(next, nodes) {
		next = next.NextSibling()
	}
	return next
}
