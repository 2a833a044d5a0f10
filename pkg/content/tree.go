package content

import "github.com/go-drift/listkit/pkg/fault"

// ScrollHandlers bundles the callbacks for the drag/decelerate lifecycle of
// the scrollable surface backing the list. Every field is optional; at most
// one handler fires per physical event.
type ScrollHandlers struct {
	// OnScroll fires on every content-offset change.
	OnScroll func()
	// OnWillBeginDragging fires when the user starts dragging.
	OnWillBeginDragging func()
	// OnDidEndDragging fires when the user lifts their finger; decelerate
	// reports whether the surface will continue moving.
	OnDidEndDragging func(decelerate bool)
	// OnDidEndDecelerating fires when post-drag movement stops.
	OnDidEndDecelerating func()
}

// Tree is the top-level content description: an ordered sequence of
// sections plus cross-cutting configuration. See the package documentation
// for lifecycle and mutation rules.
type Tree struct {
	// Sections is the ordered section list. Order is significant.
	Sections []*Section

	// OnReorder is invoked after a committed reorder has been spliced into
	// the tree. When nil, reordering is disabled entirely regardless of
	// per-item Reorderable flags. The callback must reflect the move into
	// whatever external state backs the items; the tree mutation alone is
	// not persisted.
	OnReorder func(src, dst Address)

	// WillDisplayMiddleware and DidEndDisplayingMiddleware are tree-wide
	// hooks invoked for every descriptor at the matching lifecycle phase,
	// in registration order, before the descriptor's own hook.
	WillDisplayMiddleware      []DisplayHook
	DidEndDisplayingMiddleware []DisplayHook

	// Scroll bundles the scroll-event callbacks for the surface.
	Scroll *ScrollHandlers
}

// NewTree constructs a tree over the given sections.
func NewTree(sections ...*Section) *Tree {
	return &Tree{Sections: sections}
}

// LookupSection returns the section at index, or false when index is out of
// range. This is the checked lookup used for events that may arrive one
// shape behind the tree.
func (t *Tree) LookupSection(index int) (*Section, bool) {
	if index < 0 || index >= len(t.Sections) {
		return nil, false
	}
	return t.Sections[index], true
}

// SectionAt returns the section at index. An out-of-range index is a
// programmer error and fails fatally.
func (t *Tree) SectionAt(index int) *Section {
	s, ok := t.LookupSection(index)
	if !ok {
		t.raiseAddress("content.SectionAt", SectionAt(index))
	}
	return s
}

// LookupItem returns the item at a, or false when a is not an item address
// in range. This is the checked lookup: the host may report lifecycle
// events for addresses that no longer exist after a concurrent structural
// change, and absence must be tolerated there.
func (t *Tree) LookupItem(a Address) (*Item, bool) {
	if !a.IsItem() {
		return nil, false
	}
	s, ok := t.LookupSection(a.Section)
	if !ok {
		return nil, false
	}
	if a.Item < 0 || a.Item >= len(s.Items) {
		return nil, false
	}
	return s.Items[a.Item], true
}

// ItemAt returns the item at a. An address out of range against this tree
// is a programmer error and fails fatally.
func (t *Tree) ItemAt(a Address) *Item {
	item, ok := t.LookupItem(a)
	if !ok {
		t.raiseAddress("content.ItemAt", a)
	}
	return item
}

// MoveItem splices the item at src to dst. Within one section it preserves
// the relative order of every other item; across sections it removes from
// the source list and inserts into the destination list at the given
// offset. Both addresses must be item addresses; src must be in range and
// dst must be in range for the post-removal shape.
func (t *Tree) MoveItem(src, dst Address) {
	if !src.IsItem() || !dst.IsItem() {
		t.raiseAddress("content.MoveItem", src)
	}
	if src.Section == dst.Section {
		t.SectionAt(src.Section).MoveItemTo(src.Item, dst.Item)
		return
	}
	item := t.SectionAt(src.Section).RemoveItemAt(src.Item)
	t.SectionAt(dst.Section).InsertItemAt(dst.Item, item)
}

func (t *Tree) raiseAddress(op string, a Address) {
	items := -1
	if a.IsItem() {
		if s, ok := t.LookupSection(a.Section); ok {
			items = len(s.Items)
		}
	}
	fault.Raise(&fault.AddressError{
		Op:       op,
		Address:  a.String(),
		Sections: len(t.Sections),
		Items:    items,
	})
}
