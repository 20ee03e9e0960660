package glint

// Event is what the platform delivers to a bound listener. Only the fields
// relevant to the event type are populated.
type Event struct {
	Type   string
	Target *DomNode
	Key    string // key events
	Value  string // change/input events
	X, Y   int    // pointer events
}

// Listener is a callback bound to an element for one event type. The
// platform calls it once per dispatched event and ignores any outcome;
// state changes happen through the component update protocol the listener
// closes over.
type Listener func(Event)

// Event types with first-class binding helpers on ElementUpdater.
const (
	EventClick    = "click"
	EventDblClick = "dblclick"
	EventChange   = "change"
	EventKeyPress = "keypress"
	EventBlur     = "blur"
	EventFocus    = "focus"
)
