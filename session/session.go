// Package session keeps one selection state per diagram client in memory.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/jsphweid/fifths/logger"
	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/selection"
	"github.com/jsphweid/fifths/theory"
	"go.uber.org/zap"
)

var ErrUnknownSession = errors.New("unknown session")

type session struct {
	state selection.State

	// hover events arrive in bursts as the pointer sweeps the circle
	settled func(f func())
}

type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
	settle   time.Duration

	// OnSettle runs once the displayed key of a session stops changing
	OnSettle func(id string, s selection.State)
}

func NewStore(settle time.Duration) *Store {
	st := &Store{sessions: make(map[string]*session), settle: settle}
	st.OnSettle = func(id string, s selection.State) {
		display, ok := s.Display()
		if !ok {
			logger.Debug("selection cleared", zap.String("session", id))
			return
		}
		logger.Info("selection settled",
			zap.String("session", id),
			zap.String("key", display.Label),
			zap.String("mode", string(display.Mode)),
			zap.String("visual", string(s.Visual)),
			zap.Bool("pinned", s.Pinned != nil),
		)
	}
	return st
}

func (st *Store) Create() string {
	id := uuid.New().String()

	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[id] = &session{state: selection.New(), settled: debounce.New(st.settle)}
	return id
}

func (st *Store) Get(id string) (selection.State, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return selection.State{}, fmt.Errorf("%w: %v", ErrUnknownSession, id)
	}
	return s.state, nil
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Apply runs one view event against a session and returns the new state.
// Bad input leaves the state untouched.
func (st *Store) Apply(id string, evt model.SessionEvent) (selection.State, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return selection.State{}, fmt.Errorf("%w: %v", ErrUnknownSession, id)
	}

	next, err := Transition(s.state, evt)
	if err != nil {
		return s.state, err
	}

	before, hadBefore := s.state.Display()
	after, hasAfter := next.Display()
	s.state = next
	if before != after || hadBefore != hasAfter || evt.Type == "visual" {
		onSettle := st.OnSettle
		s.settled(func() { onSettle(id, next) })
	}
	return next, nil
}

// Transition maps a view event onto the selection state machine.
func Transition(s selection.State, evt model.SessionEvent) (selection.State, error) {
	switch evt.Type {
	case "hover", "click":
		k, err := theory.ParseKeyMode(evt.Key, evt.Mode)
		if err != nil {
			return s, err
		}
		if evt.Type == "hover" {
			return s.Hover(k), nil
		}
		return s.Click(k), nil
	case "leave":
		return s.Leave(), nil
	case "visual":
		v, err := model.ParseVisualMode(evt.Visual)
		if err != nil {
			return s, err
		}
		return s.SetVisual(v), nil
	case "section":
		sec, err := selection.ParseSection(evt.Section)
		if err != nil {
			return s, err
		}
		return s.ToggleSection(sec), nil
	}
	return s, fmt.Errorf("unknown event type %q", evt.Type)
}
