package lifecycle

import "testing"

func TestCanTransition(t *testing.T) {
	if !CanTransition(StatusPending, StatusAccepted) {
		t.Fatal("expected pending -> accepted to be allowed")
	}
	if !CanTransition(StatusPending, StatusDeclined) {
		t.Fatal("expected pending -> declined to be allowed")
	}
	if !CanTransition(StatusAccepted, StatusCompleted) {
		t.Fatal("expected accepted -> completed to be allowed")
	}
	if CanTransition(StatusPending, StatusCompleted) {
		t.Fatal("unexpected pending -> completed allowed")
	}
	if CanTransition(StatusDeclined, StatusAccepted) {
		t.Fatal("unexpected transition out of declined allowed")
	}
	if CanTransition(StatusAccepted, StatusDeclined) {
		t.Fatal("unexpected accepted -> declined allowed")
	}
}

func TestTerminalStatesStayTerminal(t *testing.T) {
	targets := []string{StatusPending, StatusAccepted, StatusDeclined, StatusCompleted}
	for _, terminal := range []string{StatusDeclined, StatusCompleted} {
		if !IsTerminal(terminal) {
			t.Fatalf("expected %s to be terminal", terminal)
		}
		for _, to := range targets {
			if CanTransition(terminal, to) {
				t.Fatalf("unexpected transition %s -> %s allowed", terminal, to)
			}
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusAccepted, StatusDeclined, StatusCompleted} {
		if !IsValidStatus(s) {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if IsValidStatus("in_progress") {
		t.Fatal("unexpected status accepted")
	}
	if IsValidStatus("") {
		t.Fatal("empty status accepted")
	}
}
