package usecase

import (
	"strings"

	"notekeeper-backend/pkg/apperror"
)

// Reason tells why a request was not authenticated. It is logged, never sent
// to the client.
type Reason string

const (
	ReasonMissingToken          Reason = "missing_token"
	ReasonRevoked               Reason = "revoked"
	ReasonInvalidOrExpired      Reason = "invalid_or_expired"
	ReasonRevocationUnavailable Reason = "revocation_unavailable"
)

// AuthError is returned by Authenticate. It matches apperror.ErrUnauthorized
// and, when set, the underlying cause.
type AuthError struct {
	Reason Reason
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return "unauthorized (" + string(e.Reason) + "): " + e.Err.Error()
	}
	return "unauthorized (" + string(e.Reason) + ")"
}

func (e *AuthError) Unwrap() []error {
	if e.Err != nil {
		return []error{apperror.ErrUnauthorized, e.Err}
	}
	return []error{apperror.ErrUnauthorized}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func BearerToken(header string) (string, bool) {
	scheme, rest, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(rest)
	if tok == "" {
		return "", false
	}
	return tok, true
}
