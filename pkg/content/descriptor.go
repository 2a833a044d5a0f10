package content

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/go-drift/listkit/pkg/fault"
)

// View is the opaque mutable handle for a pooled, renderable view instance.
// Concrete view types are owned by the host widget; this layer only
// configures them.
type View any

// DisplayHook is a lifecycle callback invoked when a view enters or leaves
// the visible region. It receives the live view, the address the event was
// reported for, and the tree the descriptor belongs to.
type DisplayHook func(v View, a Address, t *Tree)

// Descriptor is the shared reusable part of every renderable unit: cells,
// headers, and footers. It carries the identity used for diffing, the pool
// key used for view recycling, and the typed configuration closure captured
// at construction.
//
// Descriptors are immutable by convention once handed to a tree; in
// particular ID must never change for the life of the logical entity it
// names.
type Descriptor struct {
	// ID is the diffing identity. Unique within one tree snapshot.
	// Defaults to a generated UUID, which is stable only within the one
	// construction call; see the package documentation before relying on
	// generated identifiers with the differ.
	ID string

	// ReuseKey groups descriptors that can share a pooled view instance.
	// Defaults to a stable name derived from the concrete view type.
	ReuseKey string

	// Template optionally names a view template resource. When set, the
	// reuse key is registered with the host by template name instead of by
	// concrete type.
	Template string

	// WillDisplay is invoked just before a view configured by this
	// descriptor becomes visible, after all tree-wide middleware.
	WillDisplay DisplayHook

	// DidEndDisplaying is invoked after a view configured by this
	// descriptor stops being visible, after all tree-wide middleware.
	DidEndDisplaying DisplayHook

	viewType  reflect.Type
	configure func(View)
}

func newDescriptor[V View](id string, configure func(V)) Descriptor {
	vt := reflect.TypeOf((*V)(nil)).Elem()
	if id == "" {
		id = uuid.NewString()
	}
	d := Descriptor{
		ID:       id,
		ReuseKey: vt.String(),
		viewType: vt,
	}
	if configure != nil {
		d.configure = func(v View) {
			if cv, ok := v.(V); ok {
				configure(cv)
			}
		}
	}
	return d
}

// ViewType returns the concrete view type captured at construction. The
// binding layer uses it to register the reuse key with the host and to
// validate recycled views.
func (d *Descriptor) ViewType() reflect.Type { return d.viewType }

// Configure applies the descriptor's visual state to a recycled view. It is
// idempotent and safe to invoke repeatedly on the same view. Fails fatally
// when the view's runtime type does not match the type captured at
// construction.
func (d *Descriptor) Configure(v View) {
	if d.viewType != nil {
		got := reflect.TypeOf(v)
		if got == nil || !got.AssignableTo(d.viewType) {
			fault.Raise(&fault.ViewTypeError{
				ReuseKey: d.ReuseKey,
				Want:     d.viewType,
				Got:      got,
			})
		}
	}
	if d.configure != nil {
		d.configure(v)
	}
}

// Decoration is a descriptor used for a section header or footer. It has no
// selection, delete, or reorder semantics.
type Decoration struct {
	Descriptor
}

// NewDecoration constructs a header/footer decoration whose configure
// closure receives the concrete view type V. An empty id gets a generated
// UUID (see [Descriptor.ID]).
func NewDecoration[V View](id string, configure func(V)) *Decoration {
	return &Decoration{Descriptor: newDescriptor(id, configure)}
}
