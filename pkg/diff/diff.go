package diff

import (
	"fmt"

	"github.com/go-drift/listkit/pkg/content"
	"github.com/go-drift/listkit/pkg/fault"
)

// Diff computes the edit script transitioning old to new. Both trees must
// satisfy the identifier-uniqueness invariant; a duplicate identifier in
// either snapshot fails fatally.
func Diff(oldTree, newTree *content.Tree) Script {
	oldSecs := sectionIDs(oldTree, "old")
	newSecs := sectionIDs(newTree, "new")

	var s Script
	deletedSecs, insertedSecs := diffSections(&s, oldSecs, newSecs)
	diffItems(&s, oldTree, newTree, deletedSecs, insertedSecs)
	return s
}

func sectionIDs(t *content.Tree, snapshot string) []string {
	ids := make([]string, len(t.Sections))
	seen := make(map[string]struct{}, len(t.Sections))
	for i, sec := range t.Sections {
		if _, dup := seen[sec.ID]; dup {
			fault.Raise(&fault.DuplicateIDError{
				Scope: fmt.Sprintf("sections of %s snapshot", snapshot),
				ID:    sec.ID,
			})
		}
		seen[sec.ID] = struct{}{}
		ids[i] = sec.ID
	}
	return ids
}

// diffSections fills in the section edits and returns the deleted and
// inserted section-id sets, which scope the item pass.
func diffSections(s *Script, oldSecs, newSecs []string) (deleted, inserted map[string]struct{}) {
	oldIdx := make(map[string]int, len(oldSecs))
	for i, id := range oldSecs {
		oldIdx[id] = i
	}
	newIdx := make(map[string]int, len(newSecs))
	for i, id := range newSecs {
		newIdx[id] = i
	}

	deleted = make(map[string]struct{})
	inserted = make(map[string]struct{})
	for i, id := range oldSecs {
		if _, ok := newIdx[id]; !ok {
			s.SectionsDeleted = append(s.SectionsDeleted, SectionEdit{Index: i, ID: id})
			deleted[id] = struct{}{}
		}
	}
	for i, id := range newSecs {
		if _, ok := oldIdx[id]; !ok {
			s.SectionsInserted = append(s.SectionsInserted, SectionEdit{Index: i, ID: id})
			inserted[id] = struct{}{}
		}
	}

	oldRank := survivorRanks(oldSecs, newIdx)
	newRank := survivorRanks(newSecs, oldIdx)
	for _, id := range oldSecs {
		if _, ok := newIdx[id]; !ok {
			continue
		}
		if oldRank[id] != newRank[id] {
			s.SectionsMoved = append(s.SectionsMoved, SectionMove{
				ID:   id,
				From: oldIdx[id],
				To:   newIdx[id],
			})
		}
	}
	return deleted, inserted
}

// survivorRanks returns each surviving identifier's ordinal position
// counted among survivors only, so insertions and deletions elsewhere in
// the sequence do not shift it.
func survivorRanks(ids []string, other map[string]int) map[string]int {
	ranks := make(map[string]int, len(ids))
	rank := 0
	for _, id := range ids {
		if _, ok := other[id]; !ok {
			continue
		}
		ranks[id] = rank
		rank++
	}
	return ranks
}

type itemPos struct {
	section   int
	index     int
	sectionID string
}

func itemIndex(t *content.Tree, snapshot string) (map[string]itemPos, []string) {
	pos := make(map[string]itemPos)
	order := make([]string, 0, 16)
	for si, sec := range t.Sections {
		for ii, item := range sec.Items {
			if _, dup := pos[item.ID]; dup {
				fault.Raise(&fault.DuplicateIDError{
					Scope: fmt.Sprintf("items of %s snapshot", snapshot),
					ID:    item.ID,
				})
			}
			pos[item.ID] = itemPos{section: si, index: ii, sectionID: sec.ID}
			order = append(order, item.ID)
		}
	}
	return pos, order
}

func diffItems(s *Script, oldTree, newTree *content.Tree, deletedSecs, insertedSecs map[string]struct{}) {
	oldPos, oldOrder := itemIndex(oldTree, "old")
	newPos, newOrder := itemIndex(newTree, "new")

	for _, id := range oldOrder {
		op := oldPos[id]
		if _, survives := newPos[id]; survives {
			continue
		}
		// A delete inside a deleted section is subsumed by the section edit.
		if _, gone := deletedSecs[op.sectionID]; gone {
			continue
		}
		s.ItemsDeleted = append(s.ItemsDeleted, ItemEdit{
			ID:      id,
			Address: content.ItemAt(op.section, op.index),
		})
	}
	for _, id := range newOrder {
		np := newPos[id]
		if _, existed := oldPos[id]; existed {
			continue
		}
		// An insert inside an inserted section is subsumed by the section edit.
		if _, fresh := insertedSecs[np.sectionID]; fresh {
			continue
		}
		s.ItemsInserted = append(s.ItemsInserted, ItemEdit{
			ID:      id,
			Address: content.ItemAt(np.section, np.index),
		})
	}

	oldRank := residentRanks(oldTree, oldPos, newPos)
	newRank := residentRanks(newTree, newPos, oldPos)
	for _, id := range oldOrder {
		np, survives := newPos[id]
		if !survives {
			continue
		}
		op := oldPos[id]
		crossSection := op.sectionID != np.sectionID
		if !crossSection && oldRank[id] == newRank[id] {
			continue
		}
		s.ItemsMoved = append(s.ItemsMoved, ItemMove{
			ID:   id,
			From: content.ItemAt(op.section, op.index),
			To:   content.ItemAt(np.section, np.index),
		})
	}
}

// residentRanks ranks each item that stays resident in its section (same
// owning section id in both snapshots) among its fellow residents, so that
// arrivals, departures, and cross-section traffic do not shift the rank.
func residentRanks(t *content.Tree, own, other map[string]itemPos) map[string]int {
	ranks := make(map[string]int)
	for _, sec := range t.Sections {
		rank := 0
		for _, item := range sec.Items {
			o, ok := other[item.ID]
			if !ok || o.sectionID != own[item.ID].sectionID {
				continue
			}
			ranks[item.ID] = rank
			rank++
		}
	}
	return ranks
}
