package deckui

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// ---- Debug mode tests ------------------------------------------------------

func TestDebugModePanicsOnUnknownCard(t *testing.T) {
	c := NewController(Config{Debug: true})
	c.SetDebugOutput(&bytes.Buffer{})
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, `MoveCard on unknown card "ghost"`) {
			t.Errorf("panic = %v", r)
		}
	}()
	c.MoveCard("ghost")
}

func TestDebugModeLogs(t *testing.T) {
	c, _ := newAPIFixture(t)
	var buf bytes.Buffer
	c.SetDebugOutput(&buf)
	c.SetDebugMode(true)

	c.MoveCard("cardA")
	c.DropCard("cardA", "deckB")

	out := buf.String()
	for _, want := range []string{"[deckui] move cardA z=5", "[deckui] drop cardA (none) -> deckB"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugModeSilentWhenDisabled(t *testing.T) {
	c, _ := newAPIFixture(t)
	var buf bytes.Buffer
	c.SetDebugOutput(&buf)
	c.MoveCard("cardA")
	if buf.Len() != 0 {
		t.Errorf("unexpected debug output: %q", buf.String())
	}
}


func TestDebugMode_UnknownDeckPanics(t *testing.T) {
	c, _ := newAPIFixture(t)
	c.SetDebugOutput(&bytes.Buffer{})
	c.SetDebugMode(true)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on DropCard into unknown deck, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, `unknown deck "nowhere"`) {
			t.Errorf("panic message should name the deck, got: %s", msg)
		}
	}()

	c.DropCard("cardA", "nowhere")
}

func TestDebugMode_BrokenInvariantPanics(t *testing.T) {
	c, _ := newAPIFixture(t)
	c.SetDebugOutput(&bytes.Buffer{})
	c.SetDebugMode(true)

	// Corrupt the registries behind the controller's back.
	c.Decks().Get("deckB").Cards = []string{"ghost"}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected invariant panic, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "invariant broken after MoveCard") {
			t.Errorf("panic message should name the operation, got: %s", msg)
		}
	}()

	c.MoveCard("cardA")
}

func TestReleaseMode_BrokenInvariantNoPanic(t *testing.T) {
	c, _ := newAPIFixture(t)
	c.Decks().Get("deckB").Cards = []string{"ghost"}

	// Release mode never validates; the move itself still applies.
	c.MoveCard("cardA")
	if c.Cards().Get("cardA").Position.ZIndex != 5 {
		t.Error("MoveCard should still apply in release mode")
	}
}

func TestDebugMode_DefaultOutputIsStderr(t *testing.T) {
	c, _ := newAPIFixture(t)
	c.SetDebugMode(true)

	// Capture stderr output.
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	c.MoveCard("cardA")

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	if !strings.Contains(buf.String(), "[deckui] move cardA") {
		t.Errorf("expected debug line on stderr, got: %q", buf.String())
	}
}
