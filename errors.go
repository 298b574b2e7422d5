package main

import "errors"

var (
	ErrInvalidTimeFormat  = errors.New("invalid time format")
	ErrMissingActualTimes = errors.New("missing actual times")
	ErrDegenerateRoute    = errors.New("degenerate route")
	ErrSessionDisposed    = errors.New("session disposed")

	ErrSessionNotFound = errors.New("tracking session not found")
	ErrAirportNotFound = errors.New("airport not found")
	ErrAlreadyRunning  = errors.New("another instance is already running")
)
