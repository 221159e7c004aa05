package dom

import "strings"

// Element is the element payload of a Node.
// https://dom.spec.whatwg.org/#interface-element
type Element struct {
	localName  string
	attributes *NamedNodeMap
	node       *Node
}

func (e *Element) LocalName() string {
	return e.localName
}

// TagName is the local name as written; HTML names are lowercased when the
// element is created.
func (e *Element) TagName() string {
	return e.localName
}

// Node returns the tree node that carries e.
func (e *Element) Node() *Node {
	return e.node
}

func (e *Element) Attributes() *NamedNodeMap {
	return e.attributes
}

func (e *Element) HasAttributes() bool {
	return e.attributes.Length() > 0
}

func (e *Element) GetAttributeNames() []string {
	names := make([]string, 0, e.attributes.Length())
	for _, a := range e.attributes.attrs {
		names = append(names, a.name)
	}
	return names
}

func (e *Element) GetAttribute(qualifiedName string) string {
	if a := e.attributes.GetNamedItem(qualifiedName); a != nil {
		return a.value
	}
	return ""
}

func (e *Element) HasAttribute(qualifiedName string) bool {
	return e.attributes.GetNamedItem(qualifiedName) != nil
}

func (e *Element) SetAttribute(qualifiedName, value string) {
	e.attributes.set(e.attributes.normalize(qualifiedName), value)
}

func (e *Element) RemoveAttribute(qualifiedName string) {
	e.attributes.RemoveNamedItem(qualifiedName)
}

// ToggleAttribute is https://dom.spec.whatwg.org/#dom-element-toggleattribute
func (e *Element) ToggleAttribute(qualifiedName string, force ...bool) bool {
	has := e.HasAttribute(qualifiedName)
	want := !has
	if len(force) > 0 {
		want = force[0]
	}
	switch {
	case want && !has:
		e.SetAttribute(qualifiedName, "")
	case !want && has:
		e.RemoveAttribute(qualifiedName)
	}
	return want
}

func (e *Element) ID() string {
	return e.GetAttribute("id")
}

func (e *Element) ClassName() string {
	return e.GetAttribute("class")
}

// ClassList splits the class attribute on ASCII whitespace.
func (e *Element) ClassList() []string {
	return strings.Fields(e.ClassName())
}
