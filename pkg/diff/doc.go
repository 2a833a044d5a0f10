// Package diff computes minimal structural edit scripts between two
// content-tree snapshots.
//
// [Diff] compares an old and a new [content.Tree] using identifier
// equality as the sole identity criterion and produces the section and
// item insertions, removals, and moves needed to animate a live widget
// from the old shape to the new one without a full reload. Content
// differences that do not change an identifier generate no edit: the
// widget re-configures such rows through the content-for-address path on
// its next layout pass.
//
// Deletions are identifiers present only in the old snapshot, insertions
// identifiers present only in the new one, and moves identifiers present
// in both whose ordinal position among the surviving identifiers changed.
// Because position is measured among survivors, pure insertions and
// deletions shift no moves; a swap reports both participants. Item edits
// already covered by a section edit (an item inside a deleted section, or
// inside an inserted one) are omitted, and an item whose owning section
// changed is reported as a move, so the deleted, inserted, and moved sets
// stay pairwise disjoint.
//
// Identifier uniqueness within each snapshot is the caller's invariant
// (see package content); Diff fails fatally on a duplicate rather than
// guessing.
//
// Applying the script is the host widget's job; this package's contract
// ends at producing a valid, minimal, internally consistent script.
package diff
