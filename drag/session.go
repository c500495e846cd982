package drag

// State is the lifecycle phase of a Session.
type State int

const (
	Idle State = iota
	Active
)

// Location names one position inside a container.
type Location struct {
	Container string
	Index     int
}

// Session is the transient record of one in-flight gesture. The zero
// value is an idle session. Source is fixed at gesture start; Target is
// set only by an accepted Enter and cleared by Move or by any reset to
// idle.
type Session struct {
	State    State
	Modality Modality
	Source   Location
	Target   *Location
}

// ActiveWith reports whether the session is active and was started by
// the given modality.
func (s Session) ActiveWith(m Modality) bool {
	return s.State == Active && s.Modality == m
}
