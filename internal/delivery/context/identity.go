package context

import (
	"context"

	"authgate/internal/domain/entity"
)

// KeyIdentity is the key for storing the authenticated identity in context.
const KeyIdentity ContextKey = "identity"

// WithIdentity returns a new context carrying the authenticated identity.
func WithIdentity(ctx context.Context, identity entity.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentity extracts the authenticated identity from the context.
// The second return value reports whether an identity was present.
func GetIdentity(ctx context.Context) (entity.Identity, bool) {
	identity, ok := ctx.Value(KeyIdentity).(entity.Identity)

	return identity, ok
}
