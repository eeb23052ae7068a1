package delivery

import (
	"context"

	authdomain "notekeeper-backend/internal/auth/domain"

	"github.com/gin-gonic/gin"
)

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying the authenticated caller.
func WithIdentity(ctx context.Context, identity *authdomain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the caller attached by AuthMiddleware.
func IdentityFromContext(ctx context.Context) (*authdomain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*authdomain.Identity)
	return identity, ok && identity != nil
}

// IdentityFrom is IdentityFromContext for the request behind c.
func IdentityFrom(c *gin.Context) (*authdomain.Identity, bool) {
	return IdentityFromContext(c.Request.Context())
}
