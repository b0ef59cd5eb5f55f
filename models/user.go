package models

import (
	"sort"
	"time"
)

// User is a personal-finance account record. Spending and Budget are embedded
// collections owned exclusively by the user; entries have no identity outside
// the owning document.
//
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier assigned at creation time.
	// Not exposed via JSON; used only at the persistence layer.
	ID string `json:"-"`

	// FirstName is the user's given name.
	FirstName string `json:"firstName"`

	// LastName is the user's family name.
	LastName string `json:"lastName"`

	// Email is the uniqueness key for sign-up and the lookup key for
	// sign-in. Uniqueness is enforced by the store itself.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// MUST never hold the plaintext password.
	PasswordHash string `json:"-"`

	// Spending holds the user's spending entries, kept sorted descending
	// by timestamp after every mutation.
	Spending []SpendingEntry `json:"spending"`

	// Budget holds the user's budget entries in insertion order.
	Budget []BudgetEntry `json:"budget"`

	// Version is the optimistic-concurrency counter. Every successful
	// write increments it; a conditional update that does not match the
	// expected version is rejected by the repository.
	Version int64 `json:"-"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// SortSpending re-orders the spending collection newest-timestamp-first.
// The sort is stable: entries with equal timestamps keep insertion order.
func (u *User) SortSpending() {
	sort.SliceStable(u.Spending, func(i, j int) bool {
		return u.Spending[i].Timestamp.After(u.Spending[j].Timestamp)
	})
}

// SpendingEntry is a single spending record embedded in its owning User.
type SpendingEntry struct {
	// ID is a server-generated stable identifier for the entry. The public
	// delete contract is positional, but mutations resolve the position to
	// this id before touching storage.
	ID string `json:"id"`

	// Timestamp is the date of the spending, required.
	Timestamp time.Time `json:"timeStamp"`

	// BusinessName is where the money was spent, required.
	BusinessName string `json:"businessName"`

	// Amount is the sum spent; must be greater than zero at entry time.
	Amount float64 `json:"amount"`

	// Category is a free-form spending category, required.
	Category string `json:"category"`
}

// BudgetEntry is a single budget record embedded in its owning User.
// Budget entries keep insertion order and are never re-sorted.
type BudgetEntry struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timeStamp"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
}
