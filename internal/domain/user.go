package domain

import "time"

// User is an authenticated owner of accounts and transactions. The
// ledger core trusts a resolved user ID and only enforces that every
// account or transaction it touches belongs to that user.
type User struct {
	ID             string
	Email          string
	Name           string
	HashedPassword string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
