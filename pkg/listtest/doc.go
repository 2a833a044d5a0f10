// Package listtest provides test doubles and structural helpers for
// exercising the binding layer without a real widget.
//
// [FakePool] stands in for the host's view-recycling pool: it records
// registrations and acquisitions and manufactures fake views on demand.
// [Recorder] captures callback invocation order for dispatch-ordering
// assertions. The layout helpers reduce a tree to its identifier shape
// ([TreeLayout]), replay a diff script against that shape ([ApplyScript]),
// and render unified diffs of two shapes for failure messages
// ([DiffLayouts]).
package listtest
