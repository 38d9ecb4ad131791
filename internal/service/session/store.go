package session

import (
	"context"
	"errors"
	"log"
)

// Store owns every active session. All mutations are named actions
// dispatched through a single channel and applied one at a time by the store
// goroutine, so there is no concurrent mutation of a session and totals
// always reflect the most recent edit.
type Store struct {
	actions chan action
}

type action struct {
	name  string
	apply func(sessions map[string]*Session) error
	done  chan error
}

func NewStore() *Store {
	return &Store{actions: make(chan action)}
}

// Run consumes the action channel until ctx is canceled. It must be running
// before any Dispatch call.
func (s *Store) Run(ctx context.Context) {
	sessions := make(map[string]*Session)
	for {
		select {
		case <-ctx.Done():
			return
		case act := <-s.actions:
			err := act.apply(sessions)
			if err != nil {
				log.Printf("session store: action %s refused: %v", act.name, err)
			}
			act.done <- err
		}
	}
}

// Dispatch submits a named action and waits for the store goroutine to apply
// it.
func (s *Store) Dispatch(ctx context.Context, name string, apply func(sessions map[string]*Session) error) error {
	act := action{name: name, apply: apply, done: make(chan error, 1)}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case s.actions <- act:
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-act.done:
		return err
	}
}

// Update is a Dispatch against one session, failing with ErrSessionNotFound
// when the ID is unknown.
func (s *Store) Update(ctx context.Context, name, id string, apply func(sess *Session) error) error {
	return s.Dispatch(ctx, name, func(sessions map[string]*Session) error {
		sess, ok := sessions[id]
		if !ok {
			return ErrSessionNotFound
		}
		return apply(sess)
	})
}

// Put registers a session, refusing duplicates.
func (s *Store) Put(ctx context.Context, name string, sess *Session) error {
	return s.Dispatch(ctx, name, func(sessions map[string]*Session) error {
		if _, ok := sessions[sess.ID]; ok {
			return errors.New("session already exists")
		}
		sessions[sess.ID] = sess
		return nil
	})
}
