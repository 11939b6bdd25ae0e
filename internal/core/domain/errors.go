package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrPropertyNotFound = errors.New("property not found")
var ErrListingNotFound = errors.New("listing not found")
var ErrDisputeNotFound = errors.New("dispute not found")
var ErrReviewExists = errors.New("listing already reviewed by this tenant")
var ErrDisputeClosed = errors.New("dispute already resolved or dismissed")
var ErrInvalidResolution = errors.New("resolution status must be resolved or dismissed")
var ErrInvalidTransition = errors.New("invalid dispute status transition")
var ErrForbidden = errors.New("access forbidden")
var ErrAgentBanned = errors.New("account banned from listing operations")
var ErrNoFields = errors.New("no fields to update")

// AgentSuspendedError blocks listing mutation until EndsAt. It carries the
// suspension end so callers can report when access resumes.
type AgentSuspendedError struct {
	EndsAt time.Time
}

func (e *AgentSuspendedError) Error() string {
	return fmt.Sprintf("account suspended until %s", e.EndsAt.UTC().Format(time.RFC3339))
}
