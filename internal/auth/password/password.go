package password

import (
	"context"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// DefaultCost is the bcrypt work factor used for new hashes.
const DefaultCost = 10

// MaxLength is the longest password bcrypt accepts, in bytes.
const MaxLength = 72

// ErrTooLong is returned by Hash for passwords over MaxLength bytes.
var ErrTooLong = bcrypt.ErrPasswordTooLong

// TooLong reports whether plaintext exceeds MaxLength. Multibyte characters
// count once per byte.
func TooLong(plaintext string) bool {
	return len(plaintext) > MaxLength
}

// Hasher hashes and verifies passwords.
type Hasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, hash string) bool
}

// bcryptHasher bounds how many bcrypt computations run at once so a burst
// of logins cannot occupy every CPU.
type bcryptHasher struct {
	cost int
	sem  *semaphore.Weighted
}

// NewBcryptHasher returns a Hasher using bcrypt with the given cost. At most
// parallelism hashes run concurrently; values < 1 mean runtime.NumCPU().
func NewBcryptHasher(cost, parallelism int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}
	return &bcryptHasher{
		cost: cost,
		sem:  semaphore.NewWeighted(int64(parallelism)),
	}
}

func (h *bcryptHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	if TooLong(plaintext) {
		return "", ErrTooLong
	}
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	return string(bytes), err
}

// Verify reports whether plaintext matches hash. A malformed hash, a
// cancelled context or a plaintext over MaxLength count as a mismatch.
func (h *bcryptHasher) Verify(ctx context.Context, plaintext, hash string) bool {
	if TooLong(plaintext) {
		return false
	}
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false
	}
	defer h.sem.Release(1)

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
