package policy

import "time"

// Env is the request-scoped snapshot of platform-wide values every
// predicate and transition derives from. It is assembled once per
// request so repeated checks within one evaluation agree on "now".
type Env struct {
	Quorum          int
	TotalModerators int
	ActiveUserCount int
	Now             time.Time
}
