package html

import "github.com/heathj/domtree/parser/dom"

// mutationEmitter turns tree callbacks into the legacy mutation events.
// https://www.w3.org/TR/DOM-Level-3-Events/#events-mutationevents
type mutationEmitter struct{}

var (
	_ dom.Registry              = mutationEmitter{}
	_ dom.AttributeObserver     = mutationEmitter{}
	_ dom.CharacterDataObserver = mutationEmitter{}
)

// EnableMutationEvents makes the document fire DOMNodeInserted,
// DOMNodeRemoved, DOMSubtreeModified, DOMAttrModified and
// DOMCharacterDataModified. They are off by default.
func (d *HTMLDocument) EnableMutationEvents() {
	if d.mutationEvents {
		return
	}
	d.mutationEvents = true
	d.AddRegistry(mutationEmitter{})
}

func fire(target *dom.Node, eventType string, detail *dom.MutationEvent) {
	// a fresh event is never mid-dispatch, so there is no error to report
	_, _ = target.DispatchEvent(dom.NewMutationEvent(eventType, detail))
}

func (mutationEmitter) ChildInserted(parent, child *dom.Node, index int) {
	fire(child, dom.DOMNodeInserted, &dom.MutationEvent{RelatedNode: parent})
	fire(parent, dom.DOMSubtreeModified, &dom.MutationEvent{})
}

// ChildRemoved runs after child is detached, so DOMNodeRemoved only reaches
// the child itself.
func (mutationEmitter) ChildRemoved(parent, child *dom.Node) {
	fire(child, dom.DOMNodeRemoved, &dom.MutationEvent{RelatedNode: parent})
	fire(parent, dom.DOMSubtreeModified, &dom.MutationEvent{})
}

func (mutationEmitter) AttributeChanged(element *dom.Node, name, oldValue string, change dom.AttrChangeType) {
	detail := &dom.MutationEvent{
		AttrName:   name,
		PrevValue:  oldValue,
		AttrChange: change,
	}
	if change != dom.Removal {
		detail.NewValue = element.Element().GetAttribute(name)
	}
	fire(element, dom.DOMAttrModified, detail)
}

func (mutationEmitter) CharacterDataChanged(node *dom.Node, oldValue string) {
	fire(node, dom.DOMCharacterDataModified, &dom.MutationEvent{
		PrevValue: oldValue,
		NewValue:  node.CharacterData().Data(),
	})
}
