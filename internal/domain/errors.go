package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict, e.g. a signup with a
	// taken email.
	ErrAlreadyExists = errors.New("already exists")
	// ErrUnauthenticated indicates no customer id is available; mutating
	// operations are rejected before any request is issued.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrBusy indicates a mutation is already in flight for the same cart
	// group or pizza; concurrent calls are rejected, never queued.
	ErrBusy = errors.New("operation already in progress")
	// ErrOutOfSync indicates the local item list no longer matches the
	// displayed group, so a removal cannot be resolved to a concrete item.
	ErrOutOfSync = errors.New("cart out of sync")
	// ErrIncomplete indicates required fields were missing from a request
	// payload; no remote call is made.
	ErrIncomplete = errors.New("missing required data")
)
