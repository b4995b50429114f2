// Package history implements linear snapshot-based undo/redo for a
// pattern document: an append-only undo stack capped at a configurable
// depth and a redo stack that resets on every new mutation.
package history

import "stitch-designer/internal/pattern"

// DefaultLimit is the default undo depth.
const DefaultLimit = 50

// History holds full-pattern deep clones. Push is called before every
// mutation; Undo/Redo swap the live document against the stacks.
type History struct {
	limit   int
	history []*pattern.Pattern
	future  []*pattern.Pattern
}

// New creates a History with the given cap. A non-positive limit falls
// back to DefaultLimit.
func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit}
}

// Push records a snapshot of the current state and clears the redo stack.
// When the undo stack is full the oldest snapshot is dropped.
func (h *History) Push(current *pattern.Pattern) {
	h.history = append(h.history, current.Clone())
	if len(h.history) > h.limit {
		copy(h.history, h.history[1:])
		h.history = h.history[:h.limit]
	}
	h.future = h.future[:0]
}

// Undo exchanges the current state for the most recent snapshot. Returns
// nil when there is nothing to undo; the caller treats that as a no-op.
func (h *History) Undo(current *pattern.Pattern) *pattern.Pattern {
	if len(h.history) == 0 {
		return nil
	}
	last := h.history[len(h.history)-1]
	h.history = h.history[:len(h.history)-1]
	h.future = append(h.future, current.Clone())
	return last
}

// Redo exchanges the current state for the most recently undone snapshot.
// Returns nil when there is nothing to redo.
func (h *History) Redo(current *pattern.Pattern) *pattern.Pattern {
	if len(h.future) == 0 {
		return nil
	}
	next := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.history = append(h.history, current.Clone())
	return next
}

// CanUndo reports whether an undo snapshot is available.
func (h *History) CanUndo() bool { return len(h.history) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Reset drops both stacks. Used when a new document replaces the old one.
func (h *History) Reset() {
	h.history = h.history[:0]
	h.future = h.future[:0]
}
