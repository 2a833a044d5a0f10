package content

// ActionStyle describes how the host widget should present a swipe action.
type ActionStyle int

const (
	// ActionStyleNormal is the default presentation.
	ActionStyleNormal ActionStyle = iota
	// ActionStyleDestructive marks an action that removes content.
	ActionStyleDestructive
)

func (s ActionStyle) String() string {
	if s == ActionStyleDestructive {
		return "destructive"
	}
	return "normal"
}

// SwipeAction is one directional action revealed by swiping an item.
type SwipeAction struct {
	// Title is the label the host renders on the action.
	Title string
	// Style selects normal or destructive presentation.
	Style ActionStyle
	// Background is the action's background color.
	Background Color
	// Handler performs the action. The completion callback reports whether
	// the action's effect should be considered committed; the host may
	// defer invoking it, and while deferred the originating address must be
	// treated as still valid.
	Handler func(a Address, completion func(done bool))
}

// Item is the descriptor for one cell, extending [Descriptor] with
// selection, deletion, swipe-action, and reorder semantics.
type Item struct {
	Descriptor

	// OnSelect is invoked when the host reports the item selected.
	OnSelect func(Address)

	// OnDelete is invoked after a committed delete has been spliced out of
	// the owning section. A nil OnDelete marks the item as not deletable;
	// the host must consult that before committing.
	OnDelete func(Address)

	// LeadingActions and TrailingActions are the directional swipe actions,
	// in presentation order.
	LeadingActions  []SwipeAction
	TrailingActions []SwipeAction

	// PerformsFirstActionWithFullSwipe lets a full swipe trigger the first
	// action directly.
	PerformsFirstActionWithFullSwipe bool

	// Reorderable gates both whether the item can be dragged and whether
	// its slot accepts drops. Reordering also requires the owning tree's
	// OnReorder to be set.
	Reorderable bool
}

// NewItem constructs an item whose configure closure receives the concrete
// view type V. An empty id gets a generated UUID (see [Descriptor.ID]).
func NewItem[V View](id string, configure func(V)) *Item {
	return &Item{Descriptor: newDescriptor(id, configure)}
}
