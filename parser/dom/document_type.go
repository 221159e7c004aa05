package dom

// DocumentType is https://dom.spec.whatwg.org/#documenttype
type DocumentType struct {
	name     string
	publicID string
	systemID string
}

func (d *DocumentType) Name() string {
	return d.name
}

func (d *DocumentType) PublicID() string {
	return d.publicID
}

func (d *DocumentType) SystemID() string {
	return d.systemID
}
