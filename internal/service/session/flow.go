package session

import "errors"

// Flow guard violations. All of these block a transition locally and never
// reach the network.
var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrNoRoomsSelected    = errors.New("select at least one room")
	ErrAmountExceedsLimit = errors.New("booking amount exceeds maximum limit")
	ErrSubmitInFlight     = errors.New("submission already in progress")
	ErrWrongStage         = errors.New("operation not allowed in current stage")
)
