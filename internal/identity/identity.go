// Package identity names the actor a cart or order belongs to: either a
// registered user or an anonymous browser session. Exactly one of the two
// is ever set.
package identity

import "github.com/google/uuid"

// Owner scopes cart and order lookups. Construct it with ForUser or
// ForSession; the zero value is invalid.
type Owner struct {
	UserID    uuid.UUID
	SessionID string
}

// ForUser returns the owner of an authenticated request.
func ForUser(userID uuid.UUID) Owner {
	return Owner{UserID: userID}
}

// ForSession returns the owner of an anonymous request.
func ForSession(token string) Owner {
	return Owner{SessionID: token}
}

// IsAuthenticated reports whether the owner is a registered user.
func (o Owner) IsAuthenticated() bool {
	return o.UserID != uuid.Nil
}

// Valid reports whether the owner carries either identity.
func (o Owner) Valid() bool {
	return o.IsAuthenticated() || o.SessionID != ""
}

// Key is the single-column ownership value stored on cart rows so the
// (owner, product, period) uniqueness constraint can span both identity
// kinds.
func (o Owner) Key() string {
	if o.IsAuthenticated() {
		return "user:" + o.UserID.String()
	}
	return "sess:" + o.SessionID
}
