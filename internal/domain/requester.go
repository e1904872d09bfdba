package domain

import "strings"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Requester is the authenticated caller as supplied by the identity provider.
type Requester struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

func (r *Requester) IsAdmin() bool {
	return r != nil && r.Role == RoleAdmin
}

// Owns reports whether the reservation was created under the requester's email.
func (r *Requester) Owns(res *Reservation) bool {
	if r == nil || res == nil || r.Email == "" {
		return false
	}
	return strings.EqualFold(r.Email, res.OwnerEmail)
}
