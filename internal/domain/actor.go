package domain

import "time"

// ActorProfile describes an account owner as resolved by the identity
// collaborator. The ledger trusts the resolved ID and never authenticates.
type ActorProfile struct {
	ID             string
	Name           string
	Email          string
	HashedPassword string
	CreatedAt      time.Time
}
