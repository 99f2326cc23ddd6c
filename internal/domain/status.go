package domain

// Booking status values. A booking is created pending and moves exactly once
// to accepted or rejected; both are terminal.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

var transitions = map[string]map[string]struct{}{
	StatusPending:  {StatusAccepted: {}, StatusRejected: {}},
	StatusAccepted: {},
	StatusRejected: {},
}

// IsTransitionTarget reports whether s is a status an operator may move a
// booking to.
func IsTransitionTarget(s string) bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanTransition reports whether a booking may move from one status to
// another. Unknown statuses never transition.
func CanTransition(from, to string) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}
