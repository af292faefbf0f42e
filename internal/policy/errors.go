package policy

import (
	"errors"
	"fmt"

	"citizen_policy_platform/internal/db/models"
)

// ErrAmbiguousOutcome is returned when a vote ties with a competing
// variant. The platform refuses to resolve it; the process owners have
// to decide, for instance by extending the vote.
var ErrAmbiguousOutcome = errors.New("vote tied with a competing variant")

// PermissionDeniedError is the recoverable refusal of a guard
// predicate. Nothing has been mutated; the reason, if set, is meant
// for the user.
type PermissionDeniedError struct {
	Reason string
}

func (e *PermissionDeniedError) Error() string {
	if e.Reason == "" {
		return "permission denied"
	}
	return "permission denied: " + e.Reason
}

// InvalidStateTransitionError marks an event applied to a policy
// outside the event's source states. The guard should have been
// consulted first, so this is a programming or race error, not a user
// error.
type InvalidStateTransitionError struct {
	Event Event
	State models.PolicyState
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("event %q cannot be applied in state %q", e.Event, e.State)
}

func IsPermissionDenied(err error) bool {
	var denied *PermissionDeniedError
	return errors.As(err, &denied)
}
