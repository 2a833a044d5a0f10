package adapter

import (
	"reflect"

	"github.com/go-drift/listkit/pkg/content"
)

// Adapter implements the full protocol surface over one attached tree.
// It is not safe for concurrent use; every method must be called from the
// thread driving the widget.
type Adapter struct {
	pool ReusePool
	tree *content.Tree
}

var (
	_ Counter           = (*Adapter)(nil)
	_ ContentResolver   = (*Adapter)(nil)
	_ LifecycleObserver = (*Adapter)(nil)
	_ EditCommands      = (*Adapter)(nil)
	_ ScrollForwarder   = (*Adapter)(nil)
)

// New creates an adapter over the given reuse pool with no tree attached.
func New(pool ReusePool) *Adapter {
	return &Adapter{pool: pool}
}

// Attach makes t the adapter's current tree, replacing any previous one,
// and registers every distinct reuse key appearing in t with the pool.
// Descriptors from the previous tree are not retained.
func (a *Adapter) Attach(t *content.Tree) {
	a.tree = t
	if t == nil {
		return
	}
	a.registerKeys(t)
}

// Tree returns the currently attached tree, or nil.
func (a *Adapter) Tree() *content.Tree { return a.tree }

type keyRegistration struct {
	viewType reflect.Type
	template string
}

func (a *Adapter) registerKeys(t *content.Tree) {
	keys := make(map[string]keyRegistration)
	order := make([]string, 0, 8)
	collect := func(d *content.Descriptor) {
		if d == nil {
			return
		}
		reg, seen := keys[d.ReuseKey]
		if !seen {
			order = append(order, d.ReuseKey)
		}
		if d.Template != "" {
			reg.template = d.Template
		}
		if reg.viewType == nil {
			reg.viewType = d.ViewType()
		}
		keys[d.ReuseKey] = reg
	}
	for _, s := range t.Sections {
		if s.Header != nil {
			collect(&s.Header.Descriptor)
		}
		if s.Footer != nil {
			collect(&s.Footer.Descriptor)
		}
		for _, item := range s.Items {
			collect(&item.Descriptor)
		}
	}
	for _, key := range order {
		reg := keys[key]
		if reg.template != "" {
			a.pool.RegisterTemplate(key, reg.template)
			continue
		}
		a.pool.RegisterType(key, reg.viewType)
	}
}

// NumberOfSections returns the section count of the attached tree.
func (a *Adapter) NumberOfSections() int {
	if a.tree == nil {
		return 0
	}
	return len(a.tree.Sections)
}

// NumberOfItems returns the item count of one section.
func (a *Adapter) NumberOfItems(section int) int {
	if a.tree == nil {
		return 0
	}
	return len(a.tree.SectionAt(section).Items)
}

// CellFor resolves the item at a, acquires a view from the pool under the
// item's reuse key, configures it, and returns it. Fails fatally when a is
// out of range or the pool returns a view of the wrong type.
func (a *Adapter) CellFor(addr content.Address) content.View {
	item := a.tree.ItemAt(addr)
	v := a.pool.AcquireView(item.ReuseKey)
	item.Configure(v)
	return v
}

// HeaderFor returns a configured header view, or false when the section
// has no header decoration.
func (a *Adapter) HeaderFor(section int) (content.View, bool) {
	return a.decorationView(a.tree.SectionAt(section).Header)
}

// FooterFor returns a configured footer view, or false when the section
// has no footer decoration.
func (a *Adapter) FooterFor(section int) (content.View, bool) {
	return a.decorationView(a.tree.SectionAt(section).Footer)
}

func (a *Adapter) decorationView(d *content.Decoration) (content.View, bool) {
	if d == nil {
		return nil, false
	}
	v := a.pool.AcquireView(d.ReuseKey)
	d.Configure(v)
	return v, true
}

// HeaderText returns the section's plain-text header. The decoration takes
// precedence: when one exists, or when no text is set, it returns false.
func (a *Adapter) HeaderText(section int) (string, bool) {
	s := a.tree.SectionAt(section)
	if s.Header != nil || s.HeaderText == "" {
		return "", false
	}
	return s.HeaderText, true
}

// FooterText returns the section's plain-text footer under the same
// precedence rule as HeaderText.
func (a *Adapter) FooterText(section int) (string, bool) {
	s := a.tree.SectionAt(section)
	if s.Footer != nil || s.FooterText == "" {
		return "", false
	}
	return s.FooterText, true
}

// WillDisplay dispatches the about-to-show notification for the item at a:
// every tree-wide WillDisplayMiddleware hook in registration order, then
// the item's own WillDisplay. The address must be in range.
func (a *Adapter) WillDisplay(v content.View, addr content.Address) {
	item := a.tree.ItemAt(addr)
	a.dispatchDisplay(a.tree.WillDisplayMiddleware, item.WillDisplay, v, addr)
}

// DidEndDisplaying dispatches the stopped-showing notification for the
// item at a. The host may report this for an address that no longer exists
// after a concurrent deletion; a stale address is a complete no-op.
func (a *Adapter) DidEndDisplaying(v content.View, addr content.Address) {
	item, ok := a.tree.LookupItem(addr)
	if !ok {
		return
	}
	a.dispatchDisplay(a.tree.DidEndDisplayingMiddleware, item.DidEndDisplaying, v, addr)
}

// WillDisplayHeader dispatches the about-to-show notification for a
// section's header decoration.
func (a *Adapter) WillDisplayHeader(v content.View, section int) {
	d := a.tree.SectionAt(section).Header
	if d == nil {
		return
	}
	a.dispatchDisplay(a.tree.WillDisplayMiddleware, d.WillDisplay, v, content.SectionAt(section))
}

// DidEndDisplayingHeader dispatches the stopped-showing notification for a
// section's header decoration. Stale section indexes are a no-op.
func (a *Adapter) DidEndDisplayingHeader(v content.View, section int) {
	s, ok := a.tree.LookupSection(section)
	if !ok || s.Header == nil {
		return
	}
	a.dispatchDisplay(a.tree.DidEndDisplayingMiddleware, s.Header.DidEndDisplaying, v, content.SectionAt(section))
}

// WillDisplayFooter dispatches the about-to-show notification for a
// section's footer decoration.
func (a *Adapter) WillDisplayFooter(v content.View, section int) {
	d := a.tree.SectionAt(section).Footer
	if d == nil {
		return
	}
	a.dispatchDisplay(a.tree.WillDisplayMiddleware, d.WillDisplay, v, content.SectionAt(section))
}

// DidEndDisplayingFooter dispatches the stopped-showing notification for a
// section's footer decoration. Stale section indexes are a no-op.
func (a *Adapter) DidEndDisplayingFooter(v content.View, section int) {
	s, ok := a.tree.LookupSection(section)
	if !ok || s.Footer == nil {
		return
	}
	a.dispatchDisplay(a.tree.DidEndDisplayingMiddleware, s.Footer.DidEndDisplaying, v, content.SectionAt(section))
}

func (a *Adapter) dispatchDisplay(middleware []content.DisplayHook, local content.DisplayHook, v content.View, addr content.Address) {
	for _, m := range middleware {
		m(v, addr, a.tree)
	}
	if local != nil {
		local(v, addr, a.tree)
	}
}

// DidSelect invokes the item's OnSelect if present; no-op otherwise.
func (a *Adapter) DidSelect(addr content.Address) {
	item := a.tree.ItemAt(addr)
	if item.OnSelect != nil {
		item.OnSelect(addr)
	}
}

// CanDelete reports whether the item at a accepts a committed delete.
func (a *Adapter) CanDelete(addr content.Address) bool {
	item, ok := a.tree.LookupItem(addr)
	return ok && item.OnDelete != nil
}

// CommitDelete splices the item at a out of its section, then invokes the
// item's OnDelete with a. The removal happens first so the callback
// observes counts already consistent with the post-delete shape. Only
// invocable when CanDelete(a) holds; this is not re-validated.
func (a *Adapter) CommitDelete(addr content.Address) {
	item := a.tree.ItemAt(addr)
	a.tree.SectionAt(addr.Section).RemoveItemAt(addr.Item)
	item.OnDelete(addr)
}

// CanReorder reports whether the item at a participates in reordering:
// the tree must have OnReorder set and the item must be Reorderable.
func (a *Adapter) CanReorder(addr content.Address) bool {
	if a.tree == nil || a.tree.OnReorder == nil {
		return false
	}
	item, ok := a.tree.LookupItem(addr)
	return ok && item.Reorderable
}

// MoveItem splices the item at src to dst, then invokes the tree's
// OnReorder with both addresses. Only invocable when CanReorder holds for
// the destination — a reorder is permitted into a slot if the slot accepts
// drops, independent of whether the dragged item itself is reorderable.
// The application must reflect the move into its own state; the tree
// mutation alone is not persisted.
func (a *Adapter) MoveItem(src, dst content.Address) {
	a.tree.MoveItem(src, dst)
	a.tree.OnReorder(src, dst)
}

// LeadingActions returns the item's leading swipe actions, or false when
// it has none.
func (a *Adapter) LeadingActions(addr content.Address) ([]content.SwipeAction, bool) {
	actions := a.tree.ItemAt(addr).LeadingActions
	return actions, len(actions) > 0
}

// TrailingActions returns the item's trailing swipe actions, or false when
// it has none.
func (a *Adapter) TrailingActions(addr content.Address) ([]content.SwipeAction, bool) {
	actions := a.tree.ItemAt(addr).TrailingActions
	return actions, len(actions) > 0
}

// PerformsFullSwipe reports whether a full swipe triggers the item's first
// action directly.
func (a *Adapter) PerformsFullSwipe(addr content.Address) bool {
	return a.tree.ItemAt(addr).PerformsFirstActionWithFullSwipe
}

// DidScroll forwards the content-offset change to the tree's handler.
func (a *Adapter) DidScroll() {
	if h := a.scroll(); h != nil && h.OnScroll != nil {
		h.OnScroll()
	}
}

// WillBeginDragging forwards the drag start to the tree's handler.
func (a *Adapter) WillBeginDragging() {
	if h := a.scroll(); h != nil && h.OnWillBeginDragging != nil {
		h.OnWillBeginDragging()
	}
}

// DidEndDragging forwards the drag end to the tree's handler.
func (a *Adapter) DidEndDragging(decelerate bool) {
	if h := a.scroll(); h != nil && h.OnDidEndDragging != nil {
		h.OnDidEndDragging(decelerate)
	}
}

// DidEndDecelerating forwards the deceleration end to the tree's handler.
func (a *Adapter) DidEndDecelerating() {
	if h := a.scroll(); h != nil && h.OnDidEndDecelerating != nil {
		h.OnDidEndDecelerating()
	}
}

func (a *Adapter) scroll() *content.ScrollHandlers {
	if a.tree == nil {
		return nil
	}
	return a.tree.Scroll
}
