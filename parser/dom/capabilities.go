package dom

// TreeMutable is the mutation surface collaborators use to edit a tree.
type TreeMutable interface {
	AppendChild(child *Node) (*Node, error)
	InsertBefore(child, ref *Node) (*Node, error)
	RemoveChild(child *Node) (*Node, error)
	ReplaceChild(newChild, oldChild *Node) (*Node, error)
	Append(nodes ...interface{}) error
	Prepend(nodes ...interface{}) error
	ReplaceChildren(nodes ...interface{}) error
	After(nodes ...interface{}) error
	Before(nodes ...interface{}) error
	ReplaceWith(nodes ...interface{}) error
	Remove()
	SetTextContent(s string)
}

// TreeNavigable is the read-only view of a tree.
type TreeNavigable interface {
	ParentNode() *Node
	ParentElement() *Node
	ChildNodes() *NodeList
	FirstChild() *Node
	LastChild() *Node
	NextSibling() *Node
	PreviousSibling() *Node
	Children() HTMLCollection
	ChildElementCount() int
	FirstElementChild() *Node
	LastElementChild() *Node
	NextElementSibling() *Node
	PreviousElementSibling() *Node
	TextContent() string
	HasChildNodes() bool
	Contains(on *Node) bool
	IsConnected() bool
}

var (
	_ TreeMutable   = (*Node)(nil)
	_ TreeNavigable = (*Node)(nil)
	_ EventCapable  = (*Node)(nil)
	_ EventCapable  = (*AbortSignal)(nil)
)
