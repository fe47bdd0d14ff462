package service

import "time"

// AuthMetrics records outcomes of the authentication operations.
type AuthMetrics interface {
	// RecordOperation counts one call of op ("register", "login", ...) with its outcome code.
	RecordOperation(op string, outcome string)

	// RecordIdentityResolution counts which OAuth resolution tier matched.
	RecordIdentityResolution(tier string)

	// RecordTokenIssue observes how long issuing a pair took.
	RecordTokenIssue(duration time.Duration)
}
