// Package identity derives content-addressed identifiers for posts.
// The same resolved URL always yields the same identifier, which keeps
// ids stable across runs without any coordination.
package identity

import (
	"crypto/sha1" //nolint:gosec // identifier derivation, not integrity protection
	"encoding/hex"
)

// idLength is the number of hex characters kept from the digest. Collisions
// at this length are accepted risk and not actively detected.
const idLength = 16

// PostID returns a deterministic, fixed-length identifier for the given
// canonical string (a resolved source URL).
func PostID(canonical string) string {
	sum := sha1.Sum([]byte(canonical))
	return hex.EncodeToString(sum[:])[:idLength]
}
