package ports

import "context"

// PasswordHasher turns plain passwords into opaque hashes and checks them.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)

	// Verify reports whether password matches hash. A mismatch is not an error.
	Verify(ctx context.Context, password, hash string) (bool, error)
}
