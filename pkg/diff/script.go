package diff

import (
	"fmt"
	"strings"

	"github.com/go-drift/listkit/pkg/content"
)

// SectionEdit is one section insertion or removal. Index is in old-tree
// coordinates for deletions and new-tree coordinates for insertions.
type SectionEdit struct {
	Index int
	ID    string
}

// SectionMove relocates a surviving section. From is the old index, To the
// new index.
type SectionMove struct {
	ID   string
	From int
	To   int
}

// ItemEdit is one item insertion or removal. The address is in old-tree
// coordinates for deletions and new-tree coordinates for insertions.
type ItemEdit struct {
	ID      string
	Address content.Address
}

// ItemMove relocates a surviving item, possibly across sections. From is
// the old address, To the new address.
type ItemMove struct {
	ID   string
	From content.Address
	To   content.Address
}

// Script is the ordered edit script transitioning a widget from the old
// snapshot to the new one. Within each slice, deletions and moves are
// ordered by old position and insertions by new position.
//
// Invariants: per level the deleted, inserted, and moved identifier sets
// are pairwise disjoint, and every move's ordinal position among surviving
// identifiers differs between the snapshots.
type Script struct {
	SectionsDeleted  []SectionEdit
	SectionsInserted []SectionEdit
	SectionsMoved    []SectionMove

	ItemsDeleted  []ItemEdit
	ItemsInserted []ItemEdit
	ItemsMoved    []ItemMove
}

// Empty reports whether the script contains no edits.
func (s Script) Empty() bool {
	return len(s.SectionsDeleted) == 0 && len(s.SectionsInserted) == 0 &&
		len(s.SectionsMoved) == 0 && len(s.ItemsDeleted) == 0 &&
		len(s.ItemsInserted) == 0 && len(s.ItemsMoved) == 0
}

// String renders the script one edit per line, for logs and tooling.
func (s Script) String() string {
	var b strings.Builder
	for _, e := range s.SectionsDeleted {
		fmt.Fprintf(&b, "section -%q @%d\n", e.ID, e.Index)
	}
	for _, e := range s.SectionsInserted {
		fmt.Fprintf(&b, "section +%q @%d\n", e.ID, e.Index)
	}
	for _, m := range s.SectionsMoved {
		fmt.Fprintf(&b, "section %q %d -> %d\n", m.ID, m.From, m.To)
	}
	for _, e := range s.ItemsDeleted {
		fmt.Fprintf(&b, "item -%q @(%d,%d)\n", e.ID, e.Address.Section, e.Address.Item)
	}
	for _, e := range s.ItemsInserted {
		fmt.Fprintf(&b, "item +%q @(%d,%d)\n", e.ID, e.Address.Section, e.Address.Item)
	}
	for _, m := range s.ItemsMoved {
		fmt.Fprintf(&b, "item %q (%d,%d) -> (%d,%d)\n", m.ID,
			m.From.Section, m.From.Item, m.To.Section, m.To.Item)
	}
	return b.String()
}
