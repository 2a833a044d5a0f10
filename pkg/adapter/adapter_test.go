package adapter_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/go-drift/listkit/pkg/adapter"
	"github.com/go-drift/listkit/pkg/content"
	"github.com/go-drift/listkit/pkg/fault"
	"github.com/go-drift/listkit/pkg/listtest"
)

func makeItem(id string) *content.Item {
	return content.NewItem(id, func(c *listtest.TextCell) {
		c.Title = "item " + id
		c.Configured++
	})
}

func makeSection(id string, itemIDs ...string) *content.Section {
	items := make([]*content.Item, len(itemIDs))
	for i, itemID := range itemIDs {
		items[i] = makeItem(itemID)
	}
	return content.NewSection(id, items...)
}

// twoSections is the canonical fixture: sections A and B with items [1 2]
// and [3 4].
func twoSections() *content.Tree {
	return content.NewTree(
		makeSection("A", "1", "2"),
		makeSection("B", "3", "4"),
	)
}

func itemIDs(s *content.Section) []string {
	ids := make([]string, len(s.Items))
	for i, item := range s.Items {
		ids[i] = item.ID
	}
	return ids
}

func TestCounts(t *testing.T) {
	a := adapter.New(listtest.NewFakePool())
	a.Attach(twoSections())

	if got := a.NumberOfSections(); got != 2 {
		t.Errorf("NumberOfSections() = %d, want 2", got)
	}
	for s, want := range []int{2, 2} {
		if got := a.NumberOfItems(s); got != want {
			t.Errorf("NumberOfItems(%d) = %d, want %d", s, got, want)
		}
	}
}

func TestCountsWithNoTree(t *testing.T) {
	a := adapter.New(listtest.NewFakePool())
	if got := a.NumberOfSections(); got != 0 {
		t.Errorf("NumberOfSections() with no tree = %d, want 0", got)
	}
}

func TestAttachRegistersDistinctReuseKeys(t *testing.T) {
	pool := listtest.NewFakePool()
	tree := twoSections()
	tree.Sections[0].Header = content.NewDecoration("hA", func(h *listtest.HeaderView) {
		h.Text = "A"
	})
	adapter.New(pool).Attach(tree)

	// Four TextCell items share one key; the header adds a second.
	if got := len(pool.Types); got != 2 {
		t.Fatalf("registered %d keys, want 2: %v", got, pool.Types)
	}
	cellType := pool.Types["*listtest.TextCell"]
	if cellType != reflect.TypeOf(&listtest.TextCell{}) {
		t.Errorf("cell key registered as %v, want *listtest.TextCell", cellType)
	}
	if _, ok := pool.Types["*listtest.HeaderView"]; !ok {
		t.Errorf("header key not registered: %v", pool.Types)
	}
}

func TestAttachTemplateTakesPrecedence(t *testing.T) {
	pool := listtest.NewFakePool()
	item := makeItem("1")
	item.ReuseKey = "task"
	other := makeItem("2")
	other.ReuseKey = "task"
	other.Template = "TaskCellTemplate"
	adapter.New(pool).Attach(content.NewTree(content.NewSection("A", item, other)))

	if got := pool.Templates["task"]; got != "TaskCellTemplate" {
		t.Errorf(`Templates["task"] = %q, want "TaskCellTemplate"`, got)
	}
	if _, ok := pool.Types["task"]; ok {
		t.Error("key registered by type as well as template; paths are mutually exclusive")
	}
}

func TestCellForConfiguresRecycledView(t *testing.T) {
	pool := listtest.NewFakePool()
	a := adapter.New(pool)
	a.Attach(twoSections())

	v := a.CellFor(content.ItemAt(1, 0))
	cell, ok := v.(*listtest.TextCell)
	if !ok {
		t.Fatalf("CellFor returned %T, want *listtest.TextCell", v)
	}
	if cell.Title != "item 3" {
		t.Errorf("configured title = %q, want %q", cell.Title, "item 3")
	}
	if got, want := pool.Acquired, []string{"*listtest.TextCell"}; len(got) != 1 || got[0] != want[0] {
		t.Errorf("acquisitions = %v, want %v", got, want)
	}
}

func TestCellForWrongPoolViewIsFatal(t *testing.T) {
	listtest.RecordFaults(t)
	pool := listtest.NewFakePool()
	pool.Stub("*listtest.TextCell", func() content.View { return &listtest.BadgeCell{} })
	a := adapter.New(pool)
	a.Attach(twoSections())

	defer func() {
		recovered := recover()
		if recovered == nil {
			t.Fatal("expected fatal fault for mismatched recycled view")
		}
		if _, ok := recovered.(*fault.ViewTypeError); !ok {
			t.Errorf("panic value = %T, want *fault.ViewTypeError", recovered)
		}
	}()
	a.CellFor(content.ItemAt(0, 0))
}

func TestCellForOutOfRangeIsFatal(t *testing.T) {
	listtest.RecordFaults(t)
	a := adapter.New(listtest.NewFakePool())
	a.Attach(twoSections())
	defer func() {
		if recover() == nil {
			t.Error("expected fatal fault for out-of-range address")
		}
	}()
	a.CellFor(content.ItemAt(5, 0))
}

func TestHeaderForDecoration(t *testing.T) {
	pool := listtest.NewFakePool()
	tree := twoSections()
	tree.Sections[0].Header = content.NewDecoration("hA", func(h *listtest.HeaderView) {
		h.Text = "Section A"
	})
	a := adapter.New(pool)
	a.Attach(tree)

	v, ok := a.HeaderFor(0)
	if !ok {
		t.Fatal("HeaderFor(0) reported absent")
	}
	if hv := v.(*listtest.HeaderView); hv.Text != "Section A" {
		t.Errorf("header text = %q, want %q", hv.Text, "Section A")
	}
	if _, ok := a.HeaderFor(1); ok {
		t.Error("HeaderFor(1) reported present for a section with no header")
	}
}

func TestHeaderTextFallbackPrecedence(t *testing.T) {
	tree := twoSections()
	tree.Sections[0].HeaderText = "Plain A"
	tree.Sections[1].Header = content.NewDecoration[*listtest.HeaderView]("hB", nil)
	tree.Sections[1].HeaderText = "ignored"
	a := adapter.New(listtest.NewFakePool())
	a.Attach(tree)

	if got, ok := a.HeaderText(0); !ok || got != "Plain A" {
		t.Errorf("HeaderText(0) = %q, %v; want %q, true", got, ok, "Plain A")
	}
	// Decoration wins; the text is ignored when one exists.
	if got, ok := a.HeaderText(1); ok {
		t.Errorf("HeaderText(1) = %q, true; want absent", got)
	}
}

func TestFooterTextFallback(t *testing.T) {
	tree := twoSections()
	tree.Sections[1].FooterText = "4 messages"
	a := adapter.New(listtest.NewFakePool())
	a.Attach(tree)

	if got, ok := a.FooterText(1); !ok || got != "4 messages" {
		t.Errorf("FooterText(1) = %q, %v; want %q, true", got, ok, "4 messages")
	}
	if _, ok := a.FooterText(0); ok {
		t.Error("FooterText(0) reported present for a section with no footer text")
	}
}

func TestWillDisplayOrdering(t *testing.T) {
	rec := &listtest.Recorder{}
	tree := twoSections()
	tree.WillDisplayMiddleware = []content.DisplayHook{
		rec.Hook("mw1"),
		rec.Hook("mw2"),
	}
	tree.Sections[0].Items[0].WillDisplay = rec.Hook("local")
	a := adapter.New(listtest.NewFakePool())
	a.Attach(tree)

	a.WillDisplay(&listtest.TextCell{}, content.ItemAt(0, 0))

	want := []string{
		"mw1 item 0 of section 0",
		"mw2 item 0 of section 0",
		"local item 0 of section 0",
	}
	if fmt.Sprint(rec.Events) != fmt.Sprint(want) {
		t.Errorf("dispatch order = %v, want %v", rec.Events, want)
	}
}

func TestDidEndDisplayingOrdering(t *testing.T) {
	rec := &listtest.Recorder{}
	tree := twoSections()
	tree.DidEndDisplayingMiddleware = []content.DisplayHook{rec.Hook("mw")}
	tree.Sections[1].Items[1].DidEndDisplaying = rec.Hook("local")
	a := adapter.New(listtest.NewFakePool())
	a.Attach(tree)

	a.DidEndDisplaying(&listtest.TextCell{}, content.ItemAt(1, 1))

	want := []string{"mw item 1 of section 1", "local item 1 of section 1"}
	if fmt.Sprint(rec.Events) != fmt.Sprint(want) {
		t.Errorf("dispatch order = %v, want %v", rec.Events, want)
	}
}

// The host may report did-end-displaying for an address deleted one frame
// earlier; the adapter must tolerate the stale address as a complete no-op.
func TestDidEndDisplayingStaleAddressIsNoOp(t *testing.T) {
	rec := &listtest.Recorder{}
	tree := twoSections()
	tree.DidEndDisplayingMiddleware = []content.DisplayHook{rec.Hook("mw")}
	a := adapter.New(listtest.NewFakePool())
	a.Attach(tree)

	tree.Sections[1].RemoveItemAt(1)
	a.DidEndDisplaying(&listtest.TextCell{}, content.ItemAt(1, 1))

	if len(rec.Events) != 0 {
		t.Errorf("stale dispatch ran middleware: %v", rec.Events)
	}
}

func TestHeaderLifecycle(t *testing.T) {
	rec := &listtest.Recorder{}
	tree := twoSections()
	hdr := content.NewDecoration[*listtest.HeaderView]("hA", nil)
	hdr.WillDisplay = rec.Hook("header")
	tree.Sections[0].Header = hdr
	tree.WillDisplayMiddleware = []content.DisplayHook{rec.Hook("mw")}
	a := adapter.New(listtest.NewFakePool())
	a.Attach(tree)

	a.WillDisplayHeader(&listtest.HeaderView{}, 0)
	// Section 1 has no header and section 9 is stale; both are no-ops.
	a.WillDisplayHeader(&listtest.HeaderView{}, 1)
	a.DidEndDisplayingHeader(&listtest.HeaderView{}, 9)

	want := []string{"mw section 0", "header section 0"}
	if fmt.Sprint(rec.Events) != fmt.Sprint(want) {
		t.Errorf("header dispatch = %v, want %v", rec.Events, want)
	}
}

func TestDidSelect(t *testing.T) {
	var selected []content.Address
	tree := twoSections()
	tree.Sections[0].Items[1].OnSelect = func(a content.Address) {
		selected = append(selected, a)
	}
	a := adapter.New(listtest.NewFakePool())
	a.Attach(tree)

	a.DidSelect(content.ItemAt(0, 1))
	a.DidSelect(content.ItemAt(0, 0)) // no OnSelect: no-op

	if len(selected) != 1 || selected[0] != content.ItemAt(0, 1) {
		t.Errorf("selections = %v, want [item 1 of section 0]", selected)
	}
}

func TestCanDelete(t *testing.T) {
	tree := twoSections()
	tree.Sections[0].Items[0].OnDelete = func(content.Address) {}
	a := adapter.New(listtest.NewFakePool())
	a.Attach(tree)

	if !a.CanDelete(content.ItemAt(0, 0)) {
		t.Error("CanDelete = false for an item with OnDelete")
	}
	if a.CanDelete(content.ItemAt(0, 1)) {
		t.Error("CanDelete = true for an item without OnDelete")
	}
	if a.CanDelete(content.ItemAt(7, 0)) {
		t.Error("CanDelete = true for an out-of-range address")
	}
}

// Deleting item "3" at (1,0) must leave section B with ["4"], and the
// callback must observe the post-delete shape.
func TestCommitDelete(t *testing.T) {
	tree := twoSections()
	var got []content.Address
	var countAtCallback int
	tree.Sections[1].Items[0].OnDelete = func(a content.Address) {
		got = append(got, a)
		countAtCallback = len(tree.Sections[1].Items)
	}
	a := adapter.New(listtest.NewFakePool())
	a.Attach(tree)

	a.CommitDelete(content.ItemAt(1, 0))

	if len(got) != 1 || got[0] != content.ItemAt(1, 0) {
		t.Errorf("OnDelete invocations = %v, want exactly [item 0 of section 1]", got)
	}
	if countAtCallback != 1 {
		t.Errorf("count at callback = %d, want 1 (removal precedes callback)", countAtCallback)
	}
	if ids := itemIDs(tree.Sections[1]); len(ids) != 1 || ids[0] != "4" {
		t.Errorf("section B after delete = %v, want [4]", ids)
	}
	if ids := itemIDs(tree.Sections[0]); len(ids) != 2 {
		t.Errorf("section A after delete = %v, want untouched", ids)
	}
}

func TestCommitDeletePreservesRelativeOrder(t *testing.T) {
	tree := content.NewTree(makeSection("A", "1", "2", "3", "4"))
	tree.Sections[0].Items[1].OnDelete = func(content.Address) {}
	a := adapter.New(listtest.NewFakePool())
	a.Attach(tree)

	a.CommitDelete(content.ItemAt(0, 1))

	want := []string{"1", "3", "4"}
	if got := itemIDs(tree.Sections[0]); fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("after delete = %v, want %v", got, want)
	}
}

func TestCanReorder(t *testing.T) {
	tree := twoSections()
	tree.Sections[0].Items[0].Reorderable = true
	a := adapter.New(listtest.NewFakePool())
	a.Attach(tree)

	// Without a tree-level OnReorder, reordering is disabled entirely.
	if a.CanReorder(content.ItemAt(0, 0)) {
		t.Error("CanReorder = true with no tree OnReorder")
	}

	tree.OnReorder = func(src, dst content.Address) {}
	if !a.CanReorder(content.ItemAt(0, 0)) {
		t.Error("CanReorder = false for a reorderable item with OnReorder set")
	}
	if a.CanReorder(content.ItemAt(0, 1)) {
		t.Error("CanReorder = true for a non-reorderable item")
	}
	if a.CanReorder(content.ItemAt(9, 0)) {
		t.Error("CanReorder = true for an out-of-range address")
	}
}

func TestMoveItemSameSection(t *testing.T) {
	tree := content.NewTree(makeSection("A", "1", "2", "3", "4"))
	var calls []string
	tree.OnReorder = func(src, dst content.Address) {
		calls = append(calls, fmt.Sprintf("%v -> %v", src, dst))
	}
	a := adapter.New(listtest.NewFakePool())
	a.Attach(tree)

	a.MoveItem(content.ItemAt(0, 0), content.ItemAt(0, 2))

	want := []string{"2", "3", "1", "4"}
	if got := itemIDs(tree.Sections[0]); fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("after move = %v, want %v", got, want)
	}
	if len(calls) != 1 || calls[0] != "item 0 of section 0 -> item 2 of section 0" {
		t.Errorf("OnReorder calls = %v", calls)
	}
}

func TestMoveItemCrossSection(t *testing.T) {
	tree := twoSections()
	var orderAtCallback []string
	tree.OnReorder = func(src, dst content.Address) {
		orderAtCallback = itemIDs(tree.Sections[1])
	}
	a := adapter.New(listtest.NewFakePool())
	a.Attach(tree)

	a.MoveItem(content.ItemAt(0, 0), content.ItemAt(1, 1))

	if got := itemIDs(tree.Sections[0]); fmt.Sprint(got) != fmt.Sprint([]string{"2"}) {
		t.Errorf("source section = %v, want [2]", got)
	}
	want := []string{"3", "1", "4"}
	if got := itemIDs(tree.Sections[1]); fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("destination section = %v, want %v", got, want)
	}
	// Mutation precedes the callback.
	if fmt.Sprint(orderAtCallback) != fmt.Sprint(want) {
		t.Errorf("order at callback = %v, want %v", orderAtCallback, want)
	}
}

func TestSwipeActions(t *testing.T) {
	tree := twoSections()
	item := tree.Sections[0].Items[0]
	item.TrailingActions = []content.SwipeAction{
		{Title: "Archive", Style: content.ActionStyleNormal, Background: content.RGB(0, 0, 255)},
		{Title: "Delete", Style: content.ActionStyleDestructive, Background: content.RGB(255, 0, 0)},
	}
	item.PerformsFirstActionWithFullSwipe = true
	a := adapter.New(listtest.NewFakePool())
	a.Attach(tree)

	actions, ok := a.TrailingActions(content.ItemAt(0, 0))
	if !ok || len(actions) != 2 {
		t.Fatalf("TrailingActions = %v, %v; want 2 actions", actions, ok)
	}
	if actions[0].Title != "Archive" || actions[1].Style != content.ActionStyleDestructive {
		t.Errorf("actions out of order: %v", actions)
	}
	if _, ok := a.LeadingActions(content.ItemAt(0, 0)); ok {
		t.Error("LeadingActions reported present for an item with none")
	}
	if !a.PerformsFullSwipe(content.ItemAt(0, 0)) {
		t.Error("PerformsFullSwipe = false, want true")
	}
	if a.PerformsFullSwipe(content.ItemAt(0, 1)) {
		t.Error("PerformsFullSwipe = true for default item")
	}
}

func TestScrollForwarders(t *testing.T) {
	rec := &listtest.Recorder{}
	tree := twoSections()
	tree.Scroll = &content.ScrollHandlers{
		OnScroll:            func() { rec.Record("scroll") },
		OnWillBeginDragging: func() { rec.Record("begin") },
		OnDidEndDragging: func(decelerate bool) {
			rec.Record(fmt.Sprintf("end decelerate=%v", decelerate))
		},
		OnDidEndDecelerating: func() { rec.Record("settled") },
	}
	a := adapter.New(listtest.NewFakePool())
	a.Attach(tree)

	a.WillBeginDragging()
	a.DidScroll()
	a.DidEndDragging(true)
	a.DidEndDecelerating()

	want := []string{"begin", "scroll", "end decelerate=true", "settled"}
	if fmt.Sprint(rec.Events) != fmt.Sprint(want) {
		t.Errorf("scroll events = %v, want %v", rec.Events, want)
	}
}

func TestScrollForwardersWithoutHandlers(t *testing.T) {
	a := adapter.New(listtest.NewFakePool())
	a.Attach(twoSections())

	// All must be safe no-ops with no handler bundle.
	a.DidScroll()
	a.WillBeginDragging()
	a.DidEndDragging(false)
	a.DidEndDecelerating()
}

func TestAttachReplacesTree(t *testing.T) {
	a := adapter.New(listtest.NewFakePool())
	first := twoSections()
	a.Attach(first)
	second := content.NewTree(makeSection("C", "9"))
	a.Attach(second)

	if a.Tree() != second {
		t.Error("Tree() did not report the newly attached tree")
	}
	if got := a.NumberOfSections(); got != 1 {
		t.Errorf("NumberOfSections() after replace = %d, want 1", got)
	}
}
