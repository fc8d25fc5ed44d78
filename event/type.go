package event

// Type identifies a carousel lifecycle or motion signal. Events are
// fire-and-forget notifications with no payload beyond the name
type Type int

const (
	// Init fires once when an engine finishes construction
	// Trigger: Engine activation | Consumer: facade, UI glue
	Init Type = iota

	// ReInit fires after a resize-triggered engine rebuild completes
	// Trigger: Engine.ReInit | Consumer: facade, UI glue
	ReInit

	// Destroy fires when an engine is torn down for good
	// Trigger: Engine.Destroy | Consumer: facade, UI glue
	Destroy

	// Select fires when the selected snap index changes
	// Trigger: ScrollTo, drag release | Consumer: dot indicators, styling
	Select

	// Settle fires once when the scroll body comes to rest on a snap point
	// Trigger: Animation loop, first settled frame | Consumer: lazy loaders
	Settle

	// Scroll fires every animation frame while the body is in motion
	// Trigger: Animation loop | Consumer: progress bars, parallax effects
	Scroll

	// Resize fires when the measured viewport extent changes
	// Trigger: facade resize wiring | Consumer: UI glue
	Resize

	// PointerDown fires when a drag gesture begins
	// Trigger: DragHandler | Consumer: cursor styling, autoplay pause
	PointerDown

	// PointerUp fires when a drag gesture ends
	// Trigger: DragHandler | Consumer: cursor styling, autoplay resume
	PointerUp

	typeCount
)

var typeNames = [typeCount]string{
	Init:        "init",
	ReInit:      "reInit",
	Destroy:     "destroy",
	Select:      "select",
	Settle:      "settle",
	Scroll:      "scroll",
	Resize:      "resize",
	PointerDown: "pointerDown",
	PointerUp:   "pointerUp",
}

// String implements fmt.Stringer
func (t Type) String() string {
	if t < 0 || t >= typeCount {
		return "unknown"
	}
	return typeNames[t]
}
