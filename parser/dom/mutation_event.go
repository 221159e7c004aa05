package dom

// Legacy mutation event types.
// https://www.w3.org/TR/DOM-Level-3-Events/#events-mutationevents
const (
	DOMNodeInserted          = "DOMNodeInserted"
	DOMNodeRemoved           = "DOMNodeRemoved"
	DOMSubtreeModified       = "DOMSubtreeModified"
	DOMAttrModified          = "DOMAttrModified"
	DOMCharacterDataModified = "DOMCharacterDataModified"
)

type AttrChangeType uint16

const (
	Modification AttrChangeType = iota + 1
	Addition
	Removal
)

func (c AttrChangeType) String() string {
	switch c {
	case Modification:
		return "modification"
	case Addition:
		return "addition"
	case Removal:
		return "removal"
	}
	return "unknown"
}

// MutationEvent is the detail carried by legacy mutation events.
type MutationEvent struct {
	RelatedNode *Node
	PrevValue   string
	NewValue    string
	AttrName    string
	AttrChange  AttrChangeType
}

// NewMutationEvent builds a bubbling, non-cancelable event carrying detail.
func NewMutationEvent(eventType string, detail *MutationEvent) *Event {
	return NewEvent(eventType, WithCancelable(false), WithDetail(detail))
}

// MutationDetail returns the mutation detail of e, or nil.
func MutationDetail(e *Event) *MutationEvent {
	m, _ := e.detail.(*MutationEvent)
	return m
}
