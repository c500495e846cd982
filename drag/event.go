package drag

// Modality identifies which input mechanism originated a session.
// A session never changes modality; events carrying a mismatched
// modality are ignored against it.
type Modality int

const (
	Pointer Modality = iota
	Touch
)

func (m Modality) String() string {
	switch m {
	case Pointer:
		return "pointer"
	case Touch:
		return "touch"
	default:
		return "unknown"
	}
}

// Event is one semantic interaction event. The host adapter decodes
// raw platform input (mouse, keys) into these; the reducer never sees
// pixels or keycodes.
type Event interface{ isEvent() }

// Start begins a gesture on the item at Index inside Container. It
// applies from any state: a Start during an active gesture overwrites
// the session, and the abandoned gesture yields no decision.
type Start struct {
	Modality  Modality
	Container string
	Index     int
}

// Enter records a candidate drop position. It is accepted only when the
// destination container's policy accepts the session's source.
type Enter struct {
	Modality  Modality
	Container string
	Index     int
}

// Leave is a reserved hook for presentational feedback; it is an
// identity transition.
type Leave struct {
	Modality Modality
}

// Move is drag motion in a touch-style gesture. It clears the recorded
// target: the adapter must re-send Enter before an End will resolve to
// a destination.
type Move struct {
	Modality Modality
}

// Drop completes a gesture at the position named by the event itself,
// ignoring any previously recorded target.
type Drop struct {
	Modality  Modality
	Container string
	Index     int
}

// End completes a gesture at the previously recorded target. With no
// recorded target the gesture ends without a decision.
type End struct {
	Modality Modality
}

// Cancel abandons the gesture: the session resets with no decision.
type Cancel struct {
	Modality Modality
}

// Hover is generic hover feedback; identity transition.
type Hover struct{}

// User tunnels a caller-defined message through the event channel. The
// reducer passes it through unexamined.
type User struct {
	Msg any
}

func (Start) isEvent()  {}
func (Enter) isEvent()  {}
func (Leave) isEvent()  {}
func (Move) isEvent()   {}
func (Drop) isEvent()   {}
func (End) isEvent()    {}
func (Cancel) isEvent() {}
func (Hover) isEvent()  {}
func (User) isEvent()   {}
