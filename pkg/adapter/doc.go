// Package adapter binds a content tree to a native list widget's
// data-source and delegate protocols.
//
// An [Adapter] answers the widget's queries (counts, content for an
// address) and forwards its lifecycle notifications (about to show, stopped
// showing, selected, deleted, reordered, scrolled) to the attached tree's
// descriptors and middleware, in a fixed order. The protocol surface is
// split into one narrow interface per lifecycle concern — [Counter],
// [ContentResolver], [EditCommands], [LifecycleObserver],
// [ScrollForwarder] — all implemented by the single Adapter type, so hosts
// depend only on the slices of the surface they drive.
//
// # Wiring
//
//	a := adapter.New(pool)
//	a.Attach(tree)
//
// Attach enumerates every descriptor in the tree and registers each
// distinct reuse key with the pool, by template name when the descriptor
// carries one and by concrete view type otherwise. The adapter holds
// exactly one tree at a time; attaching a new tree replaces the old one.
//
// # Ordering
//
// Within a single dispatch call, tree-wide middleware always precedes the
// descriptor's own callback, and delete/reorder tree mutation always
// precedes invocation of the corresponding application callback. Every
// operation is synchronous and must be invoked only from the single thread
// that owns the attached widget.
//
// # Guards
//
// The mutating operations assume their guard predicate was consulted
// first: the host checks CanDelete before CommitDelete and CanReorder
// (against the destination) before MoveItem. The mutating operations do
// not re-validate.
package adapter
