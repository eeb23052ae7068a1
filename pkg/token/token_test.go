package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret", time.Hour)

	tok, expiresAt, err := issuer.Issue(42, "t@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "t@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestVerify_ExpiredAfterTTL(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	issuer := NewIssuer("secret", time.Hour, WithClock(clock.Now))

	tok, _, err := issuer.Issue(1, "a@example.com")
	require.NoError(t, err)

	clock.now = clock.now.Add(59 * time.Minute)
	_, err = issuer.Verify(tok)
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Minute)
	_, err = issuer.Verify(tok)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExpired)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.NotErrorIs(t, err, ErrInvalidSignature)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := NewIssuer("right-secret", time.Hour).Issue(2, "b@example.com")
	require.NoError(t, err)

	_, err = NewIssuer("wrong-secret", time.Hour).Verify(tok)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSignature)
	assert.NotErrorIs(t, err, ErrExpired)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewIssuer("k", time.Hour).Verify("not.a.jwt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := Claims{
		UserID: 3,
		Email:  "c@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewIssuer("k", time.Hour).Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RequiresExpiry(t *testing.T) {
	t.Parallel()

	claims := Claims{UserID: 4, Email: "d@example.com"}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = NewIssuer("k", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssue_DistinctTokensInSameSecond(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	issuer := NewIssuer("secret", time.Hour, WithClock(clock.Now))

	first, _, err := issuer.Issue(5, "e@example.com")
	require.NoError(t, err)
	second, _, err := issuer.Issue(5, "e@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
