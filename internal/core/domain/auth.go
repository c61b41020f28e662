package domain

import "errors"

// Token verification failures. They all collapse to 401 at the transport
// layer, but services and tests distinguish them.
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenNoSubject = errors.New("token missing subject")
)

// ErrUnauthenticated covers every failure of the auth gate: absent or
// malformed header, bad token, or a token whose subject no longer resolves
// to a stored user.
var ErrUnauthenticated = errors.New("could not validate credentials")

var ErrForbidden = errors.New("insufficient permissions")

// RequireRole allows the action iff role is one of allowed. Pure check;
// callers load everything beforehand.
func RequireRole(role string, allowed ...string) error {
	for _, a := range allowed {
		if role == a {
			return nil
		}
	}
	return ErrForbidden
}

// RequireOwner allows the action iff the actor is the resource's owner.
func RequireOwner(actorID, ownerID int64) error {
	if actorID != ownerID {
		return ErrForbidden
	}
	return nil
}
