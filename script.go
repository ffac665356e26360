package deckui

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Card   string  `json:"card,omitempty"`
	Deck   string  `json:"deck,omitempty"`
}

// gestureScript is the top-level JSON structure for a script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "release": true, "click": true,
	"drag": true, "wait": true, "move_card": true, "drop_card": true,
}

// ScriptRunner sequences injected pointer events and direct controller calls
// across frames, for demos and headless tests. Attach to a Table via
// SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON gesture script and returns a ScriptRunner ready to
// be attached to a Table.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if (st.Action == "move_card" || st.Action == "drop_card") && st.Card == "" {
			return nil, fmt.Errorf("parse script: step %d: %s needs a card", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a ScriptRunner to the table. The runner advances
// one step per Update, before injected input is consumed. Pass nil to detach.
func (t *Table) SetScriptRunner(runner *ScriptRunner) {
	t.runner = runner
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Table.Update.
func (r *ScriptRunner) step(t *Table) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(t.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		t.InjectPress(st.X, st.Y)
	case "move":
		t.InjectMove(st.X, st.Y)
	case "release":
		t.InjectRelease(st.X, st.Y)
	case "click":
		t.InjectClick(st.X, st.Y)
	case "drag":
		t.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "move_card":
		t.ctrl.MoveCard(st.Card)
	case "drop_card":
		t.ctrl.DropCard(st.Card, st.Deck)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(t.injectQueue) == 0 {
		r.done = true
	}
}
