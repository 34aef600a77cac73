// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package edit implements the inline editing session used by the site
// editor: a per-field autosave state machine with debounced writes.
//
// Each field moves through idle → editing → saving → saved/error, with
// saved and error decaying back to idle after a display window. Typing
// restarts a single per-field debounce timer, so a burst of keystrokes
// produces exactly one save carrying the final value. Blur flushes
// immediately. A failed save rolls the field back to its last confirmed
// value and surfaces the error; there is no automatic retry.
//
// Fields are independent: edits to different fields save concurrently,
// while saves for the same field are serialised.
package edit

import (
	"context"
	"sync"
	"time"
)

// State is the autosave lifecycle state of a single field.
type State string

const (
	StateIdle    State = "idle"
	StateEditing State = "editing"
	StateSaving  State = "saving"
	StateSaved   State = "saved"
	StateError   State = "error"
)

// Saver persists one field value. Implementations must be safe for
// concurrent use across fields.
type Saver interface {
	Save(ctx context.Context, fieldPath, value string) error
}

// Config tunes the session timers. Zero values take the defaults.
type Config struct {
	Debounce time.Duration // quiet period after the last keystroke (default 750ms)
	Decay    time.Duration // how long saved/error stays visible (default 2s)
}

// Event describes one field state transition, delivered to the session's
// observer. Err is non-nil only for StateError.
type Event struct {
	Field string
	State State
	Err   error
}

// Session tracks autosave state for all fields of one website being
// edited. All exported methods are safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	saver   Saver
	cfg     Config
	fields  map[string]*field
	onEvent func(Event)
	saves   sync.WaitGroup
	closed  bool
}

type field struct {
	state     State
	confirmed string
	pending   string
	saving    bool // a save goroutine is in flight
	seq       uint64
}

// NewSession creates an editing session. onEvent may be nil; when set it
// receives every state transition (it is called without the session lock
// held, in no guaranteed order across fields).
func NewSession(saver Saver, cfg Config, onEvent func(Event)) *Session {
	if cfg.Debounce <= 0 {
		cfg.Debounce = 750 * time.Millisecond
	}
	if cfg.Decay <= 0 {
		cfg.Decay = 2 * time.Second
	}
	return &Session{
		saver:   saver,
		cfg:     cfg,
		fields:  make(map[string]*field),
		onEvent: onEvent,
	}
}

// Load primes a field's confirmed value without marking it edited. Called
// when the editor opens with the website's current customization.
func (s *Session) Load(fieldPath, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.field(fieldPath)
	f.confirmed = value
	f.pending = value
}

// Input records a keystroke: the field enters editing and its debounce
// timer restarts, so only the last input in a burst triggers a save.
func (s *Session) Input(fieldPath, value string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	f := s.field(fieldPath)
	f.pending = value
	f.state = StateEditing
	f.seq++ // invalidates any armed timer for this field
	seq := f.seq
	s.mu.Unlock()

	s.emit(Event{Field: fieldPath, State: StateEditing})

	time.AfterFunc(s.cfg.Debounce, func() {
		s.flushIfCurrent(fieldPath, seq)
	})
}

// Blur flushes the field immediately when it has unsaved input. A blur on
// a clean field is a no-op.
func (s *Session) Blur(fieldPath string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	f := s.field(fieldPath)
	f.seq++ // cancel any armed debounce
	dirty := f.pending != f.confirmed
	s.mu.Unlock()

	if dirty {
		s.flush(fieldPath)
	}
}

// StateOf returns the field's current autosave state.
func (s *Session) StateOf(fieldPath string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.field(fieldPath).state
}

// Value returns what the editor currently shows: the pending value.
func (s *Session) Value(fieldPath string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.field(fieldPath).pending
}

// Confirmed returns the last successfully saved value.
func (s *Session) Confirmed(fieldPath string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.field(fieldPath).confirmed
}

// Flush forces pending saves for every dirty field. Used on editor close.
func (s *Session) Flush() {
	s.mu.Lock()
	var dirty []string
	for name, f := range s.fields {
		f.seq++
		if f.pending != f.confirmed {
			dirty = append(dirty, name)
		}
	}
	s.mu.Unlock()

	for _, name := range dirty {
		s.flush(name)
	}
}

// Close flushes dirty fields and waits for in-flight saves to finish.
// The session must not be used afterwards.
func (s *Session) Close() {
	s.Flush()
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.saves.Wait()
}

// field returns the tracked state for a path, creating it on first use.
// Caller holds s.mu.
func (s *Session) field(fieldPath string) *field {
	f, ok := s.fields[fieldPath]
	if !ok {
		f = &field{state: StateIdle}
		s.fields[fieldPath] = f
	}
	return f
}

// flushIfCurrent runs a debounce-timer flush, but only if no newer input
// or blur superseded the timer.
func (s *Session) flushIfCurrent(fieldPath string, seq uint64) {
	s.mu.Lock()
	f := s.field(fieldPath)
	if f.seq != seq || s.closed {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.flush(fieldPath)
}

// flush starts a save for the field's pending value. If a save for the
// same field is already in flight, the new value is picked up when that
// save completes; same-field saves never run concurrently.
func (s *Session) flush(fieldPath string) {
	s.mu.Lock()
	f := s.field(fieldPath)
	if f.saving || f.pending == f.confirmed {
		s.mu.Unlock()
		return
	}
	value := f.pending
	f.saving = true
	f.state = StateSaving
	s.mu.Unlock()

	s.emit(Event{Field: fieldPath, State: StateSaving})

	s.saves.Add(1)
	go s.save(fieldPath, value)
}

// save performs the Saver call and applies the outcome.
func (s *Session) save(fieldPath, value string) {
	defer s.saves.Done()

	err := s.saver.Save(context.Background(), fieldPath, value)

	s.mu.Lock()
	f := s.field(fieldPath)
	f.saving = false

	var followUp bool
	if err != nil {
		// Rollback: discard the rejected input.
		f.pending = f.confirmed
		f.state = StateError
	} else {
		f.confirmed = value
		if f.pending != f.confirmed {
			// More input arrived while saving; it needs its own save.
			followUp = true
		} else {
			f.state = StateSaved
		}
	}
	f.seq++
	seq := f.seq
	closed := s.closed
	s.mu.Unlock()

	if err != nil {
		s.emit(Event{Field: fieldPath, State: StateError, Err: err})
	} else if !followUp {
		s.emit(Event{Field: fieldPath, State: StateSaved})
	}

	if followUp {
		s.flush(fieldPath)
		return
	}

	if closed {
		return
	}
	time.AfterFunc(s.cfg.Decay, func() {
		s.decayIfCurrent(fieldPath, seq)
	})
}

// decayIfCurrent returns a field to idle after the display window, unless
// it has been touched since.
func (s *Session) decayIfCurrent(fieldPath string, seq uint64) {
	s.mu.Lock()
	f := s.field(fieldPath)
	if f.seq != seq || (f.state != StateSaved && f.state != StateError) {
		s.mu.Unlock()
		return
	}
	f.state = StateIdle
	s.mu.Unlock()

	s.emit(Event{Field: fieldPath, State: StateIdle})
}

func (s *Session) emit(e Event) {
	if s.onEvent != nil {
		s.onEvent(e)
	}
}
