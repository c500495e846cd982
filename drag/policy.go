package drag

// Policy decides whether a destination container accepts an item
// dragged out of a source container. The reducer consults it on Enter
// and again on Drop/End; both checks must agree for a cross-container
// transfer to resolve. Same-container transfers are always accepted
// before the policy is consulted, so implementations only rule on
// cross-container pairs.
type Policy interface {
	Accepts(dst, src string) bool
}

// AllowList is the default Policy: a per-container allow-list of source
// container ids. A container absent from the map accepts only
// same-container reorders. Membership is exact: no wildcards, no
// transitivity.
type AllowList map[string][]string

func (a AllowList) Accepts(dst, src string) bool {
	if dst == src {
		return true
	}
	for _, id := range a[dst] {
		if id == src {
			return true
		}
	}
	return false
}

// PolicyFunc adapts a plain function to the Policy interface.
type PolicyFunc func(dst, src string) bool

func (f PolicyFunc) Accepts(dst, src string) bool { return f(dst, src) }

func accepts(p Policy, dst, src string) bool {
	if dst == src {
		return true
	}
	return p != nil && p.Accepts(dst, src)
}
