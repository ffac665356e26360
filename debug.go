package deckui

import (
	"fmt"
	"io"
	"os"
)

// SetDebugMode enables or disables debug mode. When enabled, operations on
// unknown ids panic, invariants are validated after every mutation, and each
// mutation is logged to the debug writer (stderr unless changed with
// SetDebugOutput).
func (c *Controller) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// SetDebugOutput redirects debug logging. Pass nil to restore stderr.
func (c *Controller) SetDebugOutput(w io.Writer) {
	c.debugOut = w
}

func (c *Controller) debugf(format string, args ...any) {
	if !c.debug {
		return
	}
	w := c.debugOut
	if w == nil {
		w = os.Stderr
	}
	_, _ = fmt.Fprintf(w, "[deckui] "+format+"\n", args...)
}

// debugMissing panics with a descriptive message when an operation names a
// card or deck that is not registered. In release mode callers skip this and
// the operation does nothing.
func (c *Controller) debugMissing(op, kind, id string) {
	if c.debug {
		panic(fmt.Sprintf("deckui debug: %s on unknown %s %q", op, kind, id))
	}
}

// debugCheckInvariants panics if the registries no longer satisfy the
// card/deck cross-reference invariants.
func (c *Controller) debugCheckInvariants(op string) {
	if !c.debug {
		return
	}
	if err := c.Validate(); err != nil {
		panic(fmt.Sprintf("deckui debug: invariant broken after %s: %v", op, err))
	}
}
