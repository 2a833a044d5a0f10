package content

import "fmt"

// AddressKind distinguishes the two location shapes an Address can take.
type AddressKind int

const (
	// AddressSection locates a whole section (header/footer events).
	AddressSection AddressKind = iota
	// AddressItem locates one item within a section.
	AddressItem
)

func (k AddressKind) String() string {
	switch k {
	case AddressSection:
		return "section"
	case AddressItem:
		return "item"
	default:
		return "unknown"
	}
}

// Address is a location within a content tree: either a whole section or an
// item at a section plus offset. Lifecycle events are routed by address to
// the descriptor they concern.
//
// Construct addresses with [SectionAt] or [ItemAt]; the zero value addresses
// section 0.
type Address struct {
	// Section is the section index.
	Section int
	// Item is the item offset within the section. Meaningful only when
	// Kind() is AddressItem.
	Item int

	kind AddressKind
}

// SectionAt returns an address locating a whole section.
func SectionAt(section int) Address {
	return Address{Section: section, kind: AddressSection}
}

// ItemAt returns an address locating the item at the given offset within a
// section.
func ItemAt(section, item int) Address {
	return Address{Section: section, Item: item, kind: AddressItem}
}

// Kind reports whether the address locates a section or an item.
func (a Address) Kind() AddressKind { return a.kind }

// IsItem reports whether the address locates an item.
func (a Address) IsItem() bool { return a.kind == AddressItem }

func (a Address) String() string {
	if a.kind == AddressItem {
		return fmt.Sprintf("item %d of section %d", a.Item, a.Section)
	}
	return fmt.Sprintf("section %d", a.Section)
}
