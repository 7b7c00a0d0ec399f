package session

import "github.com/google/uuid"

// NewToken generates a fresh unpredictable bearer token. The token carries no claims;
// it is only a key into the store.
func NewToken() string {
	return uuid.NewString()
}
