// Package revocation keeps track of bearer tokens that were invalidated
// before their natural expiry (logout). Entries only need to live as long as
// the token they refer to, so every store is bounded by token expiry.
package revocation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Store records revoked tokens.
type Store interface {
	// Revoke marks token as revoked until expiresAt.
	Revoke(ctx context.Context, token string, expiresAt time.Time) error

	// IsRevoked reports whether token was revoked and has not expired yet.
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// fingerprint is the key stored instead of the raw token, so a dump of the
// store does not hand out usable credentials.
func fingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
