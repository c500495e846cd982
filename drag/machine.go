package drag

// Update is the drag session reducer. It is pure and total: every
// event maps to a result, and anything incompatible with the current
// state or modality degrades to an identity transition with a nil
// decision rather than an error. The caller serializes events; the
// reducer itself never blocks and holds no hidden state.
func Update(s Session, ev Event, p Policy) (Session, Decision) {
	switch ev := ev.(type) {
	case Start:
		return startSession(ev)
	case Enter:
		return enterTarget(s, ev, p)
	case Move:
		return clearTarget(s, ev)
	case Drop:
		return dropAt(s, ev, p)
	case End:
		return endAtTarget(s, ev, p)
	case Cancel:
		return cancelSession(s, ev)
	case Leave, Hover, User:
		return s, nil
	default:
		return s, nil
	}
}

func startSession(ev Start) (Session, Decision) {
	// Overwrites any in-flight session; the abandoned gesture yields
	// no decision.
	return Session{
		State:    Active,
		Modality: ev.Modality,
		Source:   Location{Container: ev.Container, Index: ev.Index},
	}, nil
}

func enterTarget(s Session, ev Enter, p Policy) (Session, Decision) {
	if !s.ActiveWith(ev.Modality) {
		return s, nil
	}
	if !accepts(p, ev.Container, s.Source.Container) {
		return s, nil
	}
	s.Target = &Location{Container: ev.Container, Index: ev.Index}
	return s, nil
}

func clearTarget(s Session, ev Move) (Session, Decision) {
	if ev.Modality != Touch || !s.ActiveWith(Touch) {
		return s, nil
	}
	s.Target = nil
	return s, nil
}

func dropAt(s Session, ev Drop, p Policy) (Session, Decision) {
	if !s.ActiveWith(ev.Modality) {
		return s, nil
	}
	// Destination comes from the event itself, not the recorded target.
	return Session{}, resolve(p, s.Source, Location{Container: ev.Container, Index: ev.Index})
}

func endAtTarget(s Session, ev End, p Policy) (Session, Decision) {
	if !s.ActiveWith(ev.Modality) {
		return s, nil
	}
	if s.Target == nil {
		return Session{}, nil
	}
	return Session{}, resolve(p, s.Source, *s.Target)
}

func cancelSession(s Session, ev Cancel) (Session, Decision) {
	if !s.ActiveWith(ev.Modality) {
		return s, nil
	}
	return Session{}, nil
}

// resolve applies the acceptance policy to a completed gesture. The
// destination must accept the source at completion time even when an
// earlier Enter already accepted it.
func resolve(p Policy, src, dst Location) Decision {
	switch {
	case src.Container == dst.Container:
		return SameContainer{Container: src.Container, From: src.Index, To: dst.Index}
	case accepts(p, dst.Container, src.Container):
		return CrossContainer{
			FromContainer: src.Container,
			FromIndex:     src.Index,
			ToContainer:   dst.Container,
			ToIndex:       dst.Index,
		}
	default:
		return nil
	}
}
