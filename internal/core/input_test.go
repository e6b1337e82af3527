package core

import "testing"

func TestActionStringRoundTrip(t *testing.T) {
	for _, a := range []Action{ActionNone, ActionPrimary, ActionQuit} {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, ok)
		}
	}

	if _, ok := ParseAction("Jump"); ok {
		t.Error("ParseAction should reject unknown names")
	}
	if Action(42).String() != "Unknown" {
		t.Error("out of range action should stringify as Unknown")
	}
}
