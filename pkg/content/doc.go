// Package content defines the declarative description of list content:
// descriptors, sections, trees, and the addressing scheme used to locate
// them.
//
// A [Tree] is an ordered sequence of [Section] values, each holding an
// ordered sequence of [Item] descriptors plus optional header and footer
// [Decoration] descriptors. Trees are cheap value aggregates built fresh by
// the application whenever screen state changes; the binding layer reads
// them and never retains descriptors beyond the life of their tree.
//
// # Descriptors
//
// A descriptor describes one renderable unit without rendering it: which
// concrete view type presents it, how to configure a recycled instance of
// that view, and the identifiers used for reuse-pool lookup and diffing.
// Descriptors are constructed with typed configure closures:
//
//	item := content.NewItem("task-42", func(cell *TaskCell) {
//	    cell.Title = task.Title
//	    cell.Done = task.Done
//	})
//	item.OnSelect = func(a content.Address) { openTask(task) }
//
// The concrete view type is captured at construction. When the reuse pool
// later hands back a view of a different type, configuration fails fatally:
// that is a wiring bug, not a runtime condition.
//
// # Identity
//
// Descriptor and section identifiers are the sole identity criterion for
// diffing: two descriptors with equal identifiers are the same logical
// entity even when every other field differs. Identifiers must be unique
// within one tree snapshot and must not change over the life of the logical
// entity they name.
//
// Constructors generate a UUID when given an empty identifier. Generated
// identifiers are stable only within the one construction call; two trees
// built with generated identifiers never match under diffing and will
// always produce a full-replacement edit script. Supply explicit
// identifiers for any content that participates in diffing.
//
// # Mutation
//
// Trees are immutable after construction with one exception: the items of a
// section are spliced in place by the dispatch adapter when the host widget
// commits a delete or a reorder, so that subsequent count queries observe
// the new shape before the application rebuilds. All such mutation happens
// on the single thread driving widget callbacks.
package content
