// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrRosterEmpty signals a missing or empty participant roster.
	ErrRosterEmpty = errors.New("roster empty")
	// ErrRosterInvalid signals a roster entry without a usable id.
	ErrRosterInvalid = errors.New("roster invalid")
	// ErrRunNotFound signals a missing run record.
	ErrRunNotFound = errors.New("run not found")
	// ErrSourceHost signals a failure talking to the pull-request host.
	ErrSourceHost = errors.New("source host error")
	// ErrDestination signals a failure creating or writing the sheet tab.
	ErrDestination = errors.New("destination error")
)
