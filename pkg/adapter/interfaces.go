package adapter

import (
	"reflect"

	"github.com/go-drift/listkit/pkg/content"
)

// ReusePool is the view-recycling cache owned by the host widget. The
// adapter acquires views from it synchronously and never constructs views
// itself.
//
// The two registration paths are mutually exclusive per key: a key is
// registered either by concrete view type or by named template resource,
// and the template path takes precedence when a descriptor resolves both.
type ReusePool interface {
	// AcquireView returns a view previously registered under reuseKey,
	// freshly reset or recycled.
	AcquireView(reuseKey string) content.View
	// RegisterType associates reuseKey with a concrete view type.
	RegisterType(reuseKey string, viewType reflect.Type)
	// RegisterTemplate associates reuseKey with a named template resource.
	RegisterTemplate(reuseKey string, template string)
}

// Counter answers the widget's count queries.
type Counter interface {
	NumberOfSections() int
	NumberOfItems(section int) int
}

// ContentResolver resolves views and header/footer content for addresses.
type ContentResolver interface {
	// CellFor acquires a recycled view for the item at a, configures it,
	// and returns it.
	CellFor(a content.Address) content.View
	// HeaderFor returns a configured header view for the section, or false
	// when the section has no header decoration.
	HeaderFor(section int) (content.View, bool)
	// FooterFor returns a configured footer view for the section, or false
	// when the section has no footer decoration.
	FooterFor(section int) (content.View, bool)
	// HeaderText returns the plain-text header fallback, or false when the
	// section has a header decoration or no header text.
	HeaderText(section int) (string, bool)
	// FooterText returns the plain-text footer fallback, or false when the
	// section has a footer decoration or no footer text.
	FooterText(section int) (string, bool)
}

// LifecycleObserver receives the widget's display and selection
// notifications.
type LifecycleObserver interface {
	WillDisplay(v content.View, a content.Address)
	DidEndDisplaying(v content.View, a content.Address)
	WillDisplayHeader(v content.View, section int)
	DidEndDisplayingHeader(v content.View, section int)
	WillDisplayFooter(v content.View, section int)
	DidEndDisplayingFooter(v content.View, section int)
	DidSelect(a content.Address)
}

// EditCommands receives the widget's edit queries and mutations.
type EditCommands interface {
	CanDelete(a content.Address) bool
	CommitDelete(a content.Address)
	CanReorder(a content.Address) bool
	MoveItem(src, dst content.Address)
	LeadingActions(a content.Address) ([]content.SwipeAction, bool)
	TrailingActions(a content.Address) ([]content.SwipeAction, bool)
	PerformsFullSwipe(a content.Address) bool
}

// ScrollForwarder receives the scroll lifecycle of the underlying surface.
type ScrollForwarder interface {
	DidScroll()
	WillBeginDragging()
	DidEndDragging(decelerate bool)
	DidEndDecelerating()
}
