package dom

// Attr is https://dom.spec.whatwg.org/#attr
type Attr struct {
	name         string
	value        string
	ownerElement *Element
}

func (a *Attr) Name() string {
	return a.name
}

func (a *Attr) Value() string {
	return a.value
}

func (a *Attr) OwnerElement() *Element {
	return a.ownerElement
}

// NamedNodeMap keeps attributes in the order they were first set.
// https://dom.spec.whatwg.org/#namednodemap
type NamedNodeMap struct {
	attrs             []*Attr
	associatedElement *Element
}

func newNamedNodeMap(oe *Element) *NamedNodeMap {
	return &NamedNodeMap{associatedElement: oe}
}

func (m *NamedNodeMap) Length() int {
	return len(m.attrs)
}

func (m *NamedNodeMap) Item(i int) *Attr {
	if i < 0 || i >= len(m.attrs) {
		return nil
	}
	return m.attrs[i]
}

// normalize lowercases qualified names of elements in HTML documents.
func (m *NamedNodeMap) normalize(qn string) string {
	if m.associatedElement.node.doc.IsHTML() {
		return asciiLower(qn)
	}
	return qn
}

func (m *NamedNodeMap) indexOf(qn string) int {
	for i, a := range m.attrs {
		if a.name == qn {
			return i
		}
	}
	return -1
}

func (m *NamedNodeMap) GetNamedItem(qn string) *Attr {
	return m.Item(m.indexOf(m.normalize(qn)))
}

func (m *NamedNodeMap) set(qn, value string) {
	var old string
	change := Addition
	if i := m.indexOf(qn); i >= 0 {
		old = m.attrs[i].value
		m.attrs[i].value = value
		change = Modification
	} else {
		m.attrs = append(m.attrs, &Attr{name: qn, value: value, ownerElement: m.associatedElement})
	}
	m.associatedElement.node.doc.attributeChanged(m.associatedElement.node, qn, old, change)
}

// RemoveNamedItem removes the attribute named qn and returns it, or nil when
// there was none.
func (m *NamedNodeMap) RemoveNamedItem(qn string) *Attr {
	i := m.indexOf(m.normalize(qn))
	if i < 0 {
		return nil
	}
	a := m.attrs[i]
	m.attrs = append(m.attrs[:i], m.attrs[i+1:]...)
	a.ownerElement = nil
	m.associatedElement.node.doc.attributeChanged(m.associatedElement.node, a.name, a.value, Removal)
	return a
}
