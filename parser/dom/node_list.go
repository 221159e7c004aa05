package dom

// https://dom.spec.whatwg.org/#nodelist
type NodeList struct {
	nodes []*Node
}

// emptyNodeList is shared by every childless node. It is never mutated:
// a node swaps it for a private list on its first insertion.
var emptyNodeList = &NodeList{}

func newStaticNodeList(nodes []*Node) *NodeList {
	if len(nodes) == 0 {
		return emptyNodeList
	}
	return &NodeList{nodes: nodes}
}

// Length is the number of nodes in the list.
func (l *NodeList) Length() int {
	return len(l.nodes)
}

// Item returns the node at index i, or nil when i is out of range.
func (l *NodeList) Item(i int) *Node {
	if i < 0 || i >= len(l.nodes) {
		return nil
	}
	return l.nodes[i]
}

// Values returns a copy of the nodes so callers can iterate while the
// tree mutates underneath them.
func (l *NodeList) Values() []*Node {
	out := make([]*Node, len(l.nodes))
	copy(out, l.nodes)
	return out
}

// IndexOf returns the position of n in the list or -1.
func (l *NodeList) IndexOf(n *Node) int {
	for i := range l.nodes {
		if n == l.nodes[i] {
			return i
		}
	}
	return -1
}

func (l *NodeList) first() *Node {
	return l.Item(0)
}

func (l *NodeList) last() *Node {
	return l.Item(len(l.nodes) - 1)
}

func (l *NodeList) remove(i int) *Node {
	if l == emptyNodeList {
		panic("dom: mutating the shared empty NodeList")
	}
	if i < 0 || i >= len(l.nodes) {
		return nil
	}
	node := l.nodes[i]
	copy(l.nodes[i:], l.nodes[i+1:])
	l.nodes[len(l.nodes)-1] = nil
	l.nodes = l.nodes[:len(l.nodes)-1]
	return node
}

func (l *NodeList) wedgeIn(i int, n *Node) {
	if l == emptyNodeList {
		panic("dom: mutating the shared empty NodeList")
	}
	if i < 0 || i >= len(l.nodes) {
		l.nodes = append(l.nodes, n)
		return
	}
	l.nodes = append(l.nodes, nil)
	copy(l.nodes[i+1:], l.nodes[i:])
	l.nodes[i] = n
}
