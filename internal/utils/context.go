// Package utils provides general-purpose helpers shared across the
// application: context keys, JSON response writing, JWT token generation and
// validation, password hashing, id generation, and the outbound HTTP client.
package utils

import (
	"context"
)

// contextKey is a private type for context keys. A dedicated type prevents
// collisions with other packages that use string-based keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authentication middleware stores
// the authenticated account id in the request context.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated account id from ctx.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}
