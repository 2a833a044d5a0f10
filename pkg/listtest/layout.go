package listtest

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/go-drift/listkit/pkg/content"
	"github.com/go-drift/listkit/pkg/diff"
)

// SectionLayout is the identifier shape of one section.
type SectionLayout struct {
	ID    string
	Items []string
}

// TreeLayout reduces a tree to its per-section identifier sequences.
func TreeLayout(t *content.Tree) []SectionLayout {
	layout := make([]SectionLayout, len(t.Sections))
	for i, sec := range t.Sections {
		items := make([]string, len(sec.Items))
		for j, item := range sec.Items {
			items[j] = item.ID
		}
		layout[i] = SectionLayout{ID: sec.ID, Items: items}
	}
	return layout
}

// RenderLayout renders a layout one section per line, "id: item item ...".
func RenderLayout(layout []SectionLayout) string {
	var b strings.Builder
	for _, sec := range layout {
		fmt.Fprintf(&b, "%s: %s\n", sec.ID, strings.Join(sec.Items, " "))
	}
	return b.String()
}

// DiffLayouts renders a unified diff of two layouts for failure messages.
// It returns the empty string when the layouts match.
func DiffLayouts(aName, bName string, a, b []SectionLayout) string {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(RenderLayout(a)),
		B:        difflib.SplitLines(RenderLayout(b)),
		FromFile: aName,
		ToFile:   bName,
		Context:  2,
	})
	if err != nil {
		return fmt.Sprintf("diff failed: %v", err)
	}
	return text
}

// ApplyScript replays a diff script against the old tree's identifier
// shape, pulling inserted-section content from the new tree, and returns
// the resulting layout. Replaying Diff(old, new) must reproduce
// TreeLayout(new); tests use that to verify script correctness.
func ApplyScript(oldTree, newTree *content.Tree, s diff.Script) []SectionLayout {
	oldItemIDs := make(map[string]struct{})
	for _, sec := range oldTree.Sections {
		for _, item := range sec.Items {
			oldItemIDs[item.ID] = struct{}{}
		}
	}

	deletedItems := make(map[string]struct{}, len(s.ItemsDeleted))
	for _, e := range s.ItemsDeleted {
		deletedItems[e.ID] = struct{}{}
	}
	movedItems := make(map[string]struct{}, len(s.ItemsMoved))
	for _, m := range s.ItemsMoved {
		movedItems[m.ID] = struct{}{}
	}

	// Residue per surviving old section: items neither deleted nor moved.
	residue := func(sec *content.Section) []string {
		var items []string
		for _, item := range sec.Items {
			if _, gone := deletedItems[item.ID]; gone {
				continue
			}
			if _, moved := movedItems[item.ID]; moved {
				continue
			}
			items = append(items, item.ID)
		}
		return items
	}

	deletedSecs := make(map[string]struct{}, len(s.SectionsDeleted))
	for _, e := range s.SectionsDeleted {
		deletedSecs[e.ID] = struct{}{}
	}
	movedSecs := make(map[string]int, len(s.SectionsMoved))
	for _, m := range s.SectionsMoved {
		movedSecs[m.ID] = m.To
	}

	// Base content of an inserted section comes from the new tree, minus
	// identifiers that existed in the old tree: those arrive via moves.
	insertedBase := func(id string) []string {
		for _, sec := range newTree.Sections {
			if sec.ID != id {
				continue
			}
			var items []string
			for _, item := range sec.Items {
				if _, existed := oldItemIDs[item.ID]; existed {
					continue
				}
				items = append(items, item.ID)
			}
			return items
		}
		return nil
	}

	// Assemble the final section order: inserted and moved sections land
	// at their target indexes, stable sections fill the rest in old order.
	var stable []SectionLayout
	extracted := make(map[string]SectionLayout)
	for _, sec := range oldTree.Sections {
		if _, gone := deletedSecs[sec.ID]; gone {
			continue
		}
		sl := SectionLayout{ID: sec.ID, Items: residue(sec)}
		if _, moved := movedSecs[sec.ID]; moved {
			extracted[sec.ID] = sl
			continue
		}
		stable = append(stable, sl)
	}

	final := make([]SectionLayout, len(stable)+len(extracted)+len(s.SectionsInserted))
	placed := make([]bool, len(final))
	for _, e := range s.SectionsInserted {
		final[e.Index] = SectionLayout{ID: e.ID, Items: insertedBase(e.ID)}
		placed[e.Index] = true
	}
	for _, m := range s.SectionsMoved {
		final[m.To] = extracted[m.ID]
		placed[m.To] = true
	}
	next := 0
	for i := range final {
		if placed[i] {
			continue
		}
		final[i] = stable[next]
		next++
	}

	// Place inserted and moved items at their target addresses; residue
	// already sits in relative order.
	targets := make(map[int]map[int]string)
	addTarget := func(a content.Address, id string) {
		if targets[a.Section] == nil {
			targets[a.Section] = make(map[int]string)
		}
		targets[a.Section][a.Item] = id
	}
	for _, e := range s.ItemsInserted {
		addTarget(e.Address, e.ID)
	}
	for _, m := range s.ItemsMoved {
		addTarget(m.To, m.ID)
	}
	for si := range final {
		if len(targets[si]) == 0 {
			continue
		}
		final[si].Items = placeByIndex(final[si].Items, targets[si])
	}
	return final
}

func placeByIndex(residue []string, targets map[int]string) []string {
	out := make([]string, len(residue)+len(targets))
	used := make([]bool, len(out))
	for idx, id := range targets {
		out[idx] = id
		used[idx] = true
	}
	next := 0
	for i := range out {
		if used[i] {
			continue
		}
		out[i] = residue[next]
		next++
	}
	return out
}
