// Package address derives content identities for canonical archives.
//
// The full identity is the SHA-256 of the archive bytes. The public
// handle is a prefix of that hash, starting at ShortIDLength and
// growing one character at a time when a different document already
// owns the shorter prefix. Identical content always resolves to the
// existing record instead of minting a new handle.
package address

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	perr "scrollpress/internal/platform/errors"
)

// ShortIDLength is the starting prefix length for public handles
const ShortIDLength = 12

// Lookup answers whether a short id is already taken and by which hash.
// Implementations are expected to be backed by the scrolls store
type Lookup interface {
	// FindByShortID returns the full content hash owning shortID,
	// ok=false when the id is unclaimed
	FindByShortID(ctx context.Context, shortID string) (contentHash string, ok bool, err error)
}

// Address is the resolved identity of one canonical archive
type Address struct {
	// ContentHash is the full SHA-256 hex digest of the archive
	ContentHash string
	// ShortID is the shortest unclaimed (or owned) hash prefix
	ShortID string
	// Existing is true when the content was already stored
	Existing bool
}

// Hash returns the SHA-256 hex digest of the archive bytes
func Hash(archive []byte) string {
	sum := sha256.Sum256(archive)
	return hex.EncodeToString(sum[:])
}

// Resolve computes the archive hash and finds its short id, growing the
// prefix past collisions with other content. A prefix owned by the same
// hash is a dedup hit and is returned with Existing set
func Resolve(ctx context.Context, lk Lookup, archive []byte) (Address, error) {
	full := Hash(archive)

	for n := ShortIDLength; n <= len(full); n++ {
		short := full[:n]
		owner, taken, err := lk.FindByShortID(ctx, short)
		if err != nil {
			return Address{}, perr.Wrap(err, perr.ErrorCodeDB, "address: short id lookup")
		}
		if !taken {
			return Address{ContentHash: full, ShortID: short}, nil
		}
		if owner == full {
			return Address{ContentHash: full, ShortID: short, Existing: true}, nil
		}
	}
	// every prefix up to the full digest is owned by different content,
	// which requires a SHA-256 collision
	return Address{}, perr.Conflictf("address: short id space exhausted for %s", full)
}
