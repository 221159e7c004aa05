package dom

import "unicode/utf8"

// CharacterData is the payload of text and comment nodes.
// https://dom.spec.whatwg.org/#characterdata
type CharacterData struct {
	data string
	node *Node
}

// Data is nil-safe so that NodeValue works on every node type.
func (c *CharacterData) Data() string {
	if c == nil {
		return ""
	}
	return c.data
}

// Length counts code points.
func (c *CharacterData) Length() int {
	return utf8.RuneCountInString(c.Data())
}

func (c *CharacterData) SetData(data string) {
	old := c.data
	c.data = data
	c.node.doc.characterDataChanged(c.node, old)
}

func (c *CharacterData) AppendData(data string) {
	c.SetData(c.data + data)
}
