package tui

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// heldActions are the actions that stay active while their key repeats.
var heldActions = []core.Action{core.ActionLeft, core.ActionRight, core.ActionShoot}

// HeldKeys approximates key-up events for terminals, which only report presses.
// A fresh press stays held for the repeat delay, long enough for the keyboard
// to start auto-repeating. Once repeats arrive each one extends the hold by the
// shorter hold window, so a release is noticed quickly.
type HeldKeys struct {
	hold      time.Duration
	first     time.Duration
	last      map[core.Action]time.Time
	repeating map[core.Action]bool
}

// NewHeldKeys creates a tracker. first is the window after an initial press
// and hold the window after each auto-repeat. first never drops below hold.
func NewHeldKeys(hold, first time.Duration) *HeldKeys {
	return &HeldKeys{
		hold:      hold,
		first:     max(first, hold),
		last:      make(map[core.Action]time.Time),
		repeating: make(map[core.Action]bool),
	}
}

// Press records a key press at now.
// A press that lands while the key is still held counts as an auto-repeat.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	h.repeating[a] = h.Held(a, now)
	h.last[a] = now
}

// Held reports whether a is still held at now.
func (h *HeldKeys) Held(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	if !ok {
		return false
	}
	window := h.first
	if h.repeating[a] {
		window = h.hold
	}
	return now.Sub(t) < window
}

// Sample writes every held action into frame.
func (h *HeldKeys) Sample(now time.Time, frame *core.InputFrame) {
	for _, a := range heldActions {
		if h.Held(a, now) {
			frame.Set(a)
		}
	}
}

// Reset forgets all presses.
func (h *HeldKeys) Reset() {
	clear(h.last)
	clear(h.repeating)
}
