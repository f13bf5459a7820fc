package tests

import (
	"crypto/sha256"
	"math/rand"

	"github.com/mr-tron/base58"
)

func randomBytes(n int) []byte {
	a := make([]byte, n)
	rand.Read(a) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return a
}

// randomEvidenceRef builds an opaque content-addressed reference to an
// evidence document, the way an external document store would produce it.
func randomEvidenceRef() string {
	h := sha256.Sum256(randomBytes(100))
	return base58.Encode(h[:])
}
