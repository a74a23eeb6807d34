package types

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hash is the SHA256 hash Hydrus uses to identify a file.
//
// This is implemented as a fixed size array instead of a slice or string so it
// can be used as a map key and compared directly.
type Hash [HashSize]byte

const HashSize = sha256.Size

// ParseHash parses the 64 character hex form of a Hash.
func ParseHash(s string) (Hash, error) {
	var h Hash
	if err := h.UnmarshalText([]byte(s)); err != nil {
		return Hash{}, err
	}
	return h, nil
}

// HashOf computes the Hash Hydrus would assign to the given file contents.
func HashOf(data []byte) Hash {
	return Hash(sha256.Sum256(data))
}

func (hash Hash) String() string {
	return hex.EncodeToString(hash[:])
}

func (hash Hash) IsZero() bool {
	return hash == Hash{}
}

func (hash Hash) MarshalText() ([]byte, error) {
	return []byte(hash.String()), nil
}

// UnmarshalText decodes a hex encoded hash. An empty string decodes to the zero
// Hash since Hydrus sends an empty hash for some failed imports.
func (hash *Hash) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*hash = Hash{}
		return nil
	}
	if hex.DecodedLen(len(data)) != HashSize {
		return fmt.Errorf("invalid sha256 hash length")
	}
	_, err := hex.Decode(hash[:], data)
	if err != nil {
		return fmt.Errorf("failed to decode sha256 hash: %w", err)
	}
	return nil
}
