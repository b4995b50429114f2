// Package engine provides the pattern editing engine: the single owner
// of the in-memory pattern document and the mutation API every tool and
// UI surface calls into. Entry points validate the target layer, push a
// history snapshot before mutating, and emit change events for the UI.
// User-triggered edge cases are silent no-ops; programmer errors are
// logged and ignored rather than raised, so a bad call can never crash
// the editing session or corrupt history.
package engine

import (
	"log"
	"sync"

	"stitch-designer/internal/history"
	"stitch-designer/internal/pattern"
	"stitch-designer/internal/selection"
)

// EventType identifies different engine events.
type EventType int

const (
	EventPatternReplaced EventType = iota
	EventStitchesChanged
	EventLayersChanged
	EventPaletteChanged
	EventSelectionChanged
	EventHistoryChanged
	EventModified
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// Regenerator rebuilds a text layer's stitches at a new target height.
// Injected so the transform machinery stays agnostic of how content is
// produced.
type Regenerator interface {
	Regenerate(meta pattern.TextMetadata, targetHeight int) ([]pattern.Stitch, error)
}

// Engine owns one pattern document, its history, and the live selection.
// All entry points run to completion on the calling goroutine; the host
// UI serializes input events, so no mutation lock is needed. The mutex
// only guards listener registration.
type Engine struct {
	mu        sync.RWMutex
	listeners map[EventType][]EventListener

	pat     *pattern.Pattern
	hist    *history.History
	sel     *selection.State
	activeL string
	dirty   bool

	regen Regenerator
}

// New creates an engine with no document loaded.
func New(regen Regenerator) *Engine {
	return &Engine{
		listeners: make(map[EventType][]EventListener),
		hist:      history.New(history.DefaultLimit),
		regen:     regen,
	}
}

// On registers an event listener for the specified event type.
func (e *Engine) On(event EventType, listener EventListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners[event] = append(e.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (e *Engine) Emit(event EventType, data interface{}) {
	e.mu.RLock()
	listeners := e.listeners[event]
	e.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Pattern returns the live document. Consumers must treat it as
// read-only; mutation goes through engine entry points.
func (e *Engine) Pattern() *pattern.Pattern { return e.pat }

// Selection returns the live selection state, or nil.
func (e *Engine) Selection() *selection.State { return e.sel }

// ActiveLayerID returns the id of the layer edits apply to.
func (e *Engine) ActiveLayerID() string { return e.activeL }

// Dirty reports whether the document has unsaved changes.
func (e *Engine) Dirty() bool { return e.dirty }

// CanUndo reports whether an undo step is available.
func (e *Engine) CanUndo() bool { return e.hist.CanUndo() }

// CanRedo reports whether a redo step is available.
func (e *Engine) CanRedo() bool { return e.hist.CanRedo() }

// NewPattern replaces the document with a fresh pattern.
func (e *Engine) NewPattern(name string, width, height, meshCount int) {
	e.SetPattern(pattern.New(name, width, height, meshCount))
}

// SetPattern replaces the document wholesale (new/load/import). History
// and selection are reset; the bottom layer becomes active.
func (e *Engine) SetPattern(p *pattern.Pattern) {
	e.pat = p
	e.hist.Reset()
	e.sel = nil
	e.dirty = false
	if p != nil && len(p.Layers) > 0 {
		e.activeL = p.Layers[len(p.Layers)-1].ID
	} else {
		e.activeL = ""
	}
	e.Emit(EventPatternReplaced, p)
	e.Emit(EventHistoryChanged, nil)
	e.Emit(EventSelectionChanged, nil)
}

// MarkSaved clears the dirty flag after a successful save.
func (e *Engine) MarkSaved() {
	e.dirty = false
	e.Emit(EventModified, false)
}

// Undo swaps the document for the most recent snapshot. No-op on an
// empty stack. The selection is cleared: its layer and bounds references
// may be stale after a jump in time.
func (e *Engine) Undo() {
	if e.pat == nil {
		return
	}
	prev := e.hist.Undo(e.pat)
	if prev == nil {
		return
	}
	e.pat = prev
	e.clearSelectionLocked()
	e.markDirty()
	e.Emit(EventPatternReplaced, e.pat)
	e.Emit(EventHistoryChanged, nil)
}

// Redo is the mirror of Undo.
func (e *Engine) Redo() {
	if e.pat == nil {
		return
	}
	next := e.hist.Redo(e.pat)
	if next == nil {
		return
	}
	e.pat = next
	e.clearSelectionLocked()
	e.markDirty()
	e.Emit(EventPatternReplaced, e.pat)
	e.Emit(EventHistoryChanged, nil)
}

// pushHistory snapshots the current document before a mutation.
func (e *Engine) pushHistory() {
	e.hist.Push(e.pat)
	e.Emit(EventHistoryChanged, nil)
}

func (e *Engine) markDirty() {
	if !e.dirty {
		e.dirty = true
		e.Emit(EventModified, true)
	}
}

// editableLayer resolves a layer id for mutation, enforcing bounds on the
// document and the layer's lock. Returns nil (and logs) when the target
// is not editable; callers treat that as a no-op.
func (e *Engine) editableLayer(id string) *pattern.Layer {
	if e.pat == nil {
		log.Printf("engine: mutation with no pattern loaded")
		return nil
	}
	l := e.pat.LayerByID(id)
	if l == nil {
		log.Printf("engine: unknown layer %q", id)
		return nil
	}
	if l.Locked {
		return nil
	}
	return l
}

func (e *Engine) clearSelectionLocked() {
	if e.sel != nil {
		e.sel = nil
		e.Emit(EventSelectionChanged, nil)
	}
}
