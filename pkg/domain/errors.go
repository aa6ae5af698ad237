package domain

import "errors"

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrUnknownAction is returned at decoding boundaries for kinds outside the vocabulary.
var ErrUnknownAction = errors.New("unknown action kind")

// ErrNilAction is returned when a nil action is dispatched.
var ErrNilAction = errors.New("nil action")
