package session

import "context"

// unexported, collision-proof context key
type entryContextKeyType struct{}

var entryKey = entryContextKeyType{}

// NewContext attaches a session entry to the request context. The gateway middleware
// stores a copy here so concurrent requests never share entry state.
func NewContext(ctx context.Context, entry Entry) context.Context {
	return context.WithValue(ctx, entryKey, entry)
}

// FromContext extracts the session entry attached by the gateway middleware.
func FromContext(ctx context.Context) (Entry, bool) {
	entry, ok := ctx.Value(entryKey).(Entry)
	return entry, ok
}
