// Package digest is the only representation of a password that pass-audit
// keeps around: a SHA-256 over the password's UTF-8 bytes.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
)

const Size = sha256.Size

type Digest [Size]byte

func Sum(candidate string) Digest {
	return Digest(sha256.Sum256([]byte(candidate)))
}

func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

func (d Digest) String() string {
	return d.Hex()
}
