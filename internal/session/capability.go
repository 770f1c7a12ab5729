package session

import "github.com/riftcup/gateway/pkg/token"

// Capability is the result of checking whether the current actor may perform
// a privileged mutation on an entry without presenting the entry's password.
type Capability int

const (
	// RequiresSecret means the actor has no admin session; the action must
	// carry the entry's own password and the backend arbitrates the match.
	RequiresSecret Capability = iota
	// Authorized means the actor holds an admin session; the action is
	// executed with the backend token and no password.
	Authorized
)

// Authorize maps session claims (possibly nil for anonymous requests) to a
// capability plus the backend token to replay when Authorized.
func Authorize(claims *token.Claims) (Capability, string) {
	if claims != nil && claims.IsAdmin() {
		return Authorized, claims.BackendToken
	}
	return RequiresSecret, ""
}
