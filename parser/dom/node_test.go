package dom

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocument(opts ...DocumentOption) *Document {
	logger, _ := test.NewNullLogger()
	return NewDocument(append([]DocumentOption{WithLogger(logger)}, opts...)...)
}

// names lists the node names of the children of n.
func names(n *Node) []string {
	var out []string
	for _, c := range n.ChildNodes().Values() {
		out = append(out, c.NodeName())
	}
	return out
}

// assertLinked checks that every child of n points back at n.
func assertLinked(t *testing.T, n *Node) {
	t.Helper()
	for _, c := range n.ChildNodes().Values() {
		assert.Same(t, n, c.ParentNode())
		assertLinked(t, c)
	}
}

func TestEmptyChildListIsShared(t *testing.T) {
	t.Parallel()
	d := newTestDocument()
	a, b := d.CreateElement("a"), d.CreateElement("b")
	assert.Same(t, emptyNodeList, a.childNodes)
	assert.Same(t, emptyNodeList, b.childNodes)

	_, err := a.AppendChild(d.CreateTextNode("x"))
	require.NoError(t, err)
	assert.NotSame(t, emptyNodeList, a.childNodes)
	assert.Same(t, emptyNodeList, b.childNodes)
	assert.Equal(t, 0, emptyNodeList.Length())

	// leaves keep the sentinel even when asked
	text := d.CreateTextNode("t")
	assert.Same(t, emptyNodeList, text.ChildNodes())
}

func TestChildNodesIsLive(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		parent func(d *Document) *Node
	}{
		{"element", func(d *Document) *Node { return d.CreateElement("p") }},
		{"fragment", func(d *Document) *Node { return d.CreateDocumentFragment() }},
		{"document", func(d *Document) *Node { return d.Node }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := newTestDocument()
			p := tt.parent(d)
			held := p.ChildNodes()
			assert.Equal(t, 0, held.Length())

			a := d.CreateElement("a")
			_, err := p.AppendChild(a)
			require.NoError(t, err)
			assert.Equal(t, 1, held.Length())
			assert.Same(t, a, held.Item(0))
			assert.Same(t, held, p.ChildNodes())

			a.Remove()
			assert.Equal(t, 0, held.Length())
		})
	}
}

func TestInsertBefore(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		refIndex int // -1 means no reference node
		expected []string
	}{
		{"append", -1, []string{"a", "b", "c", "x"}},
		{"front", 0, []string{"x", "a", "b", "c"}},
		{"middle", 1, []string{"a", "x", "b", "c"}},
		{"last", 2, []string{"a", "b", "x", "c"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := newTestDocument()
			p := d.CreateElement("div")
			require.NoError(t, p.Append(d.CreateElement("a"), d.CreateElement("b"), d.CreateElement("c")))
			var ref *Node
			if tt.refIndex >= 0 {
				ref = p.ChildNodes().Item(tt.refIndex)
			}
			x := d.CreateElement("x")
			got, err := p.InsertBefore(x, ref)
			require.NoError(t, err)
			assert.Same(t, x, got)
			assert.Same(t, p, x.ParentNode())
			assert.Equal(t, tt.expected, names(p))
			if ref != nil {
				assert.Same(t, ref, x.NextSibling())
			}
			assertLinked(t, p)
		})
	}
}

func TestInsertBeforeInvalidReference(t *testing.T) {
	t.Parallel()
	d := newTestDocument()
	p, other := d.CreateElement("p"), d.CreateElement("div")
	stray := d.CreateElement("span")
	_, err := other.AppendChild(stray)
	require.NoError(t, err)

	_, err = p.InsertBefore(d.CreateElement("b"), stray)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, p.HasChildNodes())
}

func TestInsertFragment(t *testing.T) {
	t.Parallel()
	d := newTestDocument()
	p := d.CreateElement("div")
	require.NoError(t, p.Append(d.CreateElement("first"), d.CreateElement("r")))
	r := p.LastChild()

	frag := d.CreateDocumentFragment()
	require.NoError(t, frag.Append(d.CreateElement("a"), d.CreateElement("b"), d.CreateElement("c")))

	got, err := p.InsertBefore(frag, r)
	require.NoError(t, err)
	assert.Same(t, frag, got)
	assert.Equal(t, []string{"first", "a", "b", "c", "r"}, names(p))
	assert.False(t, frag.HasChildNodes())
	assertLinked(t, p)
}

func TestReinsertMovesNode(t *testing.T) {
	t.Parallel()
	d := newTestDocument()
	one, two := d.CreateElement("one"), d.CreateElement("two")
	c := d.CreateElement("c")
	require.NoError(t, one.Append(d.CreateElement("a"), c, d.CreateElement("b")))
	require.NoError(t, two.Append(d.CreateElement("x")))

	_, err := two.InsertBefore(c, two.FirstChild())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names(one))
	assert.Equal(t, []string{"c", "x"}, names(two))
	assert.Same(t, two, c.ParentNode())

	// moving within the same parent
	_, err = two.AppendChild(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "c"}, names(two))

	// inserting a node before itself leaves it in place
	_, err = two.InsertBefore(c, c)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "c"}, names(two))
	assertLinked(t, one)
	assertLinked(t, two)
}

func TestHierarchyErrors(t *testing.T) {
	t.Parallel()
	d := newTestDocument()
	other := newTestDocument()
	outer := d.CreateElement("outer")
	inner := d.CreateElement("inner")
	_, err := outer.AppendChild(inner)
	require.NoError(t, err)

	tests := []struct {
		name   string
		parent *Node
		child  *Node
		err    error
	}{
		{"nil child", outer, nil, ErrHierarchyRequest},
		{"text parent", d.CreateTextNode("t"), d.CreateElement("a"), ErrHierarchyRequest},
		{"document child", outer, other.Node, ErrHierarchyRequest},
		{"self", outer, outer, ErrHierarchyRequest},
		{"ancestor", inner, outer, ErrHierarchyRequest},
		{"other document", outer, other.CreateElement("a"), ErrWrongDocument},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parent.AppendChild(tt.child)
			assert.True(t, errors.Is(err, tt.err), "got %v", err)
		})
	}
	assert.Equal(t, []string{"inner"}, names(outer))
}

func TestRemoveChild(t *testing.T) {
	t.Parallel()
	d := newTestDocument()
	p := d.CreateElement("p")
	a, b := d.CreateElement("a"), d.CreateElement("b")
	require.NoError(t, p.Append(a, b))

	got, err := p.RemoveChild(a)
	require.NoError(t, err)
	assert.Same(t, a, got)
	assert.Nil(t, a.ParentNode())
	assert.Equal(t, -1, p.ChildNodes().IndexOf(a))

	_, err = p.RemoveChild(a)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = p.RemoveChild(nil)
	assert.True(t, errors.Is(err, ErrNotFound))

	b.Remove()
	assert.Nil(t, b.ParentNode())
	assert.False(t, p.HasChildNodes())
	b.Remove()
}

func TestReplaceChild(t *testing.T) {
	t.Parallel()
	d := newTestDocument()
	p := d.CreateElement("p")
	a, b, c := d.CreateElement("a"), d.CreateElement("b"), d.CreateElement("c")
	require.NoError(t, p.Append(a, b, c))

	x := d.CreateElement("x")
	got, err := p.ReplaceChild(x, b)
	require.NoError(t, err)
	assert.Same(t, b, got)
	assert.Nil(t, b.ParentNode())
	assert.Equal(t, []string{"a", "x", "c"}, names(p))

	got, err = p.ReplaceChild(c, c)
	require.NoError(t, err)
	assert.Same(t, c, got)
	assert.Equal(t, []string{"a", "x", "c"}, names(p))

	// replacing with a later sibling moves it
	_, err = p.ReplaceChild(c, a)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "x"}, names(p))

	_, err = p.ReplaceChild(d.CreateElement("y"), b)
	assert.True(t, errors.Is(err, ErrNotFound))
	assertLinked(t, p)
}

func TestNavigation(t *testing.T) {
	t.Parallel()
	d := newTestDocument()
	p := d.CreateElement("p")
	t1 := d.CreateTextNode("one")
	a := d.CreateElement("a")
	c := d.CreateComment("note")
	b := d.CreateElement("b")
	t2 := d.CreateTextNode("two")
	require.NoError(t, p.Append(t1, a, c, b, t2))

	assert.Same(t, t1, p.FirstChild())
	assert.Same(t, t2, p.LastChild())
	assert.Same(t, a, t1.NextSibling())
	assert.Same(t, t1, a.PreviousSibling())
	assert.Nil(t, t1.PreviousSibling())
	assert.Nil(t, t2.NextSibling())

	assert.Equal(t, HTMLCollection{a, b}, p.Children())
	assert.Equal(t, 2, p.ChildElementCount())
	assert.Same(t, a, p.FirstElementChild())
	assert.Same(t, b, p.LastElementChild())
	assert.Same(t, b, a.NextElementSibling())
	assert.Same(t, a, b.PreviousElementSibling())
	assert.Nil(t, b.NextElementSibling())

	assert.Same(t, p, a.ParentElement())
	frag := d.CreateDocumentFragment()
	_, err := frag.AppendChild(p)
	require.NoError(t, err)
	assert.Nil(t, p.ParentElement())
	assert.Same(t, frag, p.ParentNode())
}

func TestNodeNames(t *testing.T) {
	t.Parallel()
	d := newTestDocument()
	tests := []struct {
		node     *Node
		name     string
		nodeType NodeType
	}{
		{d.CreateElement("DIV"), "div", ElementNode},
		{d.CreateTextNode("t"), "#text", TextNode},
		{d.CreateComment("c"), "#comment", CommentNode},
		{d.CreateDocumentFragment(), "#document-fragment", DocumentFragmentNode},
		{d.CreateDocumentType("html", "", ""), "html", DocumentTypeNode},
		{d.Node, "#document", DocumentNode},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.name, tt.node.NodeName())
			assert.Equal(t, tt.nodeType, tt.node.NodeType())
		})
	}
	assert.Nil(t, d.OwnerDocument())
	assert.Same(t, d, d.CreateElement("a").OwnerDocument())
}

func TestTextContent(t *testing.T) {
	t.Parallel()
	d := newTestDocument()
	p := d.CreateElement("p")

	p.SetTextContent("hello")
	assert.Equal(t, "hello", p.TextContent())
	first := p.FirstChild()

	p.SetTextContent("world")
	assert.Equal(t, "world", p.TextContent())
	assert.Equal(t, 1, p.ChildNodes().Length())
	assert.Nil(t, first.ParentNode())

	require.NoError(t, p.Append(d.CreateComment("skip"), d.CreateElement("b")))
	p.LastChild().SetTextContent("!")
	assert.Equal(t, "world!", p.TextContent())

	text := d.CreateTextNode("a")
	text.SetTextContent("b")
	assert.Equal(t, "b", text.TextContent())
	assert.Equal(t, "", d.TextContent())
}

func TestBatchMutators(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		mutate   func(d *Document, p, a, b *Node) error
		expected []string
	}{
		{"append", func(d *Document, p, a, b *Node) error {
			return p.Append("t", d.CreateElement("x"))
		}, []string{"a", "b", "#text", "x"}},
		{"prepend", func(d *Document, p, a, b *Node) error {
			return p.Prepend(d.CreateElement("x"), "t")
		}, []string{"x", "#text", "a", "b"}},
		{"before", func(d *Document, p, a, b *Node) error {
			return b.Before(d.CreateElement("x"))
		}, []string{"a", "x", "b"}},
		{"before with itself", func(d *Document, p, a, b *Node) error {
			return b.Before(d.CreateElement("x"), a)
		}, []string{"x", "a", "b"}},
		{"after", func(d *Document, p, a, b *Node) error {
			return a.After(d.CreateElement("x"))
		}, []string{"a", "x", "b"}},
		{"after with next sibling", func(d *Document, p, a, b *Node) error {
			return a.After(b, d.CreateElement("x"))
		}, []string{"a", "b", "x"}},
		{"replace with", func(d *Document, p, a, b *Node) error {
			return a.ReplaceWith(d.CreateElement("x"), d.CreateElement("y"))
		}, []string{"x", "y", "b"}},
		{"replace with itself", func(d *Document, p, a, b *Node) error {
			return a.ReplaceWith(d.CreateElement("x"), a)
		}, []string{"x", "a", "b"}},
		{"replace children", func(d *Document, p, a, b *Node) error {
			return p.ReplaceChildren(d.CreateElement("x"))
		}, []string{"x"}},
		{"flatten fragment", func(d *Document, p, a, b *Node) error {
			frag := d.CreateDocumentFragment()
			if err := frag.Append(d.CreateElement("x"), d.CreateElement("y")); err != nil {
				return err
			}
			return p.Append(frag)
		}, []string{"a", "b", "x", "y"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := newTestDocument()
			p := d.CreateElement("p")
			a, b := d.CreateElement("a"), d.CreateElement("b")
			require.NoError(t, p.Append(a, b))
			require.NoError(t, tt.mutate(d, p, a, b))
			assert.Equal(t, tt.expected, names(p))
			assertLinked(t, p)
		})
	}
}

func TestBatchMutatorsWithoutParent(t *testing.T) {
	t.Parallel()
	d := newTestDocument()
	n := d.CreateElement("n")
	x := d.CreateElement("x")
	assert.NoError(t, n.Before(x))
	assert.NoError(t, n.After(x))
	assert.NoError(t, n.ReplaceWith(x))
	assert.Nil(t, x.ParentNode())
}

func TestBatchRejectsBeforeMoving(t *testing.T) {
	t.Parallel()
	d := newTestDocument()
	p := d.CreateElement("p")
	q := d.CreateElement("q")
	a := d.CreateElement("a")
	require.NoError(t, q.Append(a))

	err := p.Append(a, 42)
	assert.True(t, errors.Is(err, ErrHierarchyRequest))
	assert.Same(t, q, a.ParentNode())
	assert.False(t, p.HasChildNodes())

	err = p.Append(a, p)
	assert.True(t, errors.Is(err, ErrHierarchyRequest))
	assert.Same(t, q, a.ParentNode())
}

func TestContains(t *testing.T) {
	t.Parallel()
	d := newTestDocument()
	root := d.CreateElement("root")
	mid := d.CreateElement("mid")
	leaf := d.CreateTextNode("leaf")
	_, err := root.AppendChild(mid)
	require.NoError(t, err)
	_, err = mid.AppendChild(leaf)
	require.NoError(t, err)

	assert.True(t, root.Contains(root))
	assert.True(t, root.Contains(leaf))
	assert.True(t, mid.Contains(leaf))
	assert.False(t, leaf.Contains(root))
	assert.False(t, mid.Contains(root))
	assert.False(t, root.Contains(nil))
	assert.False(t, root.Contains(d.CreateElement("other")))
}

func TestIsConnected(t *testing.T) {
	t.Parallel()
	d := newTestDocument()
	html := d.CreateElement("html")
	body := d.CreateElement("body")
	_, err := html.AppendChild(body)
	require.NoError(t, err)
	assert.False(t, body.IsConnected())

	_, err = d.AppendChild(html)
	require.NoError(t, err)
	assert.True(t, body.IsConnected())
	assert.True(t, d.IsConnected())
	assert.Same(t, d.Node, body.GetRootNode(GetRootNodeOptions{}))
	assert.Same(t, html, d.DocumentElement())

	body.Remove()
	assert.False(t, body.IsConnected())
}

func TestGetElementsByTagName(t *testing.T) {
	t.Parallel()
	d := newTestDocument()
	root := d.CreateElement("div")
	require.NoError(t, root.Append(d.CreateElement("p"), d.CreateElement("span"), "text"))
	require.NoError(t, root.FirstChild().Append(d.CreateElement("p")))

	assert.Len(t, root.GetElementsByTagName("P"), 2)
	assert.Len(t, root.GetElementsByTagName("*"), 3)
	assert.Empty(t, root.GetElementsByTagName("div"))
}

func TestUnsupportedOperations(t *testing.T) {
	t.Parallel()
	d := newTestDocument()
	n := d.CreateElement("a")
	_, cloneErr := n.CloneNode(true)
	_, equalErr := n.IsEqualNode(n)
	_, posErr := n.CompareDocumentPosition(n)
	_, prefixErr := n.LookupPrefix("")
	_, nsErr := n.LookupNamespaceURI("")
	_, defaultErr := n.IsDefaultNamespace("")
	for _, err := range []error{n.Normalize(), cloneErr, equalErr, posErr, prefixErr, nsErr, defaultErr} {
		assert.True(t, errors.Is(err, ErrNotSupported), "got %v", err)
	}
}
