package content

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/go-drift/listkit/pkg/fault"
)

// Section is an ordered group of item descriptors plus optional header and
// footer decorations.
type Section struct {
	// ID is the diffing identity of the section. Unique within the tree.
	// Defaults to a generated UUID (see [Descriptor.ID] for the caveat).
	ID string

	// Header and Footer are optional decoration descriptors. When present
	// they take precedence over HeaderText/FooterText.
	Header *Decoration
	Footer *Decoration

	// HeaderText and FooterText are plain-text fallbacks rendered by the
	// host widget itself when no decoration descriptor is present. Ignored
	// when the corresponding decoration exists.
	HeaderText string
	FooterText string

	// Items is the ordered item list. Order is significant. The dispatch
	// adapter splices it in place in response to delete and reorder events.
	Items []*Item
}

// NewSection constructs a section with the given identifier and items. An
// empty id gets a generated UUID.
func NewSection(id string, items ...*Item) *Section {
	if id == "" {
		id = uuid.NewString()
	}
	return &Section{ID: id, Items: items}
}

// InsertItemAt splices item into the list at index. index may equal
// len(Items) to append; anything further out of range fails fatally.
func (s *Section) InsertItemAt(index int, item *Item) {
	if index < 0 || index > len(s.Items) {
		fault.Raise(&fault.AddressError{
			Op:      "content.InsertItemAt",
			Address: fmt.Sprintf("index %d in section %q", index, s.ID),
			Items:   len(s.Items),
		})
	}
	s.Items = append(s.Items, nil)
	copy(s.Items[index+1:], s.Items[index:])
	s.Items[index] = item
}

// RemoveItemAt splices the item at index out of the list and returns it.
// Out-of-range indexes fail fatally.
func (s *Section) RemoveItemAt(index int) *Item {
	if index < 0 || index >= len(s.Items) {
		fault.Raise(&fault.AddressError{
			Op:      "content.RemoveItemAt",
			Address: fmt.Sprintf("index %d in section %q", index, s.ID),
			Items:   len(s.Items),
		})
	}
	item := s.Items[index]
	s.Items = append(s.Items[:index], s.Items[index+1:]...)
	return item
}

// MoveItemTo moves the item at from to position to, preserving the relative
// order of every other item. Implemented as remove-at then insert-at.
func (s *Section) MoveItemTo(from, to int) {
	item := s.RemoveItemAt(from)
	s.InsertItemAt(to, item)
}
