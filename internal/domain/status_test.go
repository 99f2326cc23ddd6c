package domain

import "testing"

func TestCanTransitionFromPending(t *testing.T) {
	if !CanTransition(StatusPending, StatusAccepted) {
		t.Fatalf("pending -> accepted should be allowed")
	}
	if !CanTransition(StatusPending, StatusRejected) {
		t.Fatalf("pending -> rejected should be allowed")
	}
}

func TestTerminalStatesDoNotTransition(t *testing.T) {
	for _, from := range []string{StatusAccepted, StatusRejected} {
		for _, to := range []string{StatusPending, StatusAccepted, StatusRejected} {
			if CanTransition(from, to) {
				t.Fatalf("%s -> %s should be blocked", from, to)
			}
		}
	}
}

func TestIsTransitionTarget(t *testing.T) {
	if !IsTransitionTarget(StatusAccepted) || !IsTransitionTarget(StatusRejected) {
		t.Fatalf("accepted and rejected are the only valid targets")
	}
	if IsTransitionTarget(StatusPending) || IsTransitionTarget("cancelled") {
		t.Fatalf("pending and unknown statuses are not valid targets")
	}
}
