package common

import (
	"fmt"

	"github.com/dchest/siphash"
)

const (
	sipKeyZero = 0x7472616e73697469
	sipKeyOne  = 0x76652d73626f6d31
)

func Siphash(left, right uint64, body []byte) uint64 {
	return siphash.Hash(left, right, body)
}

// Digest is a stable fingerprint of content, used to identify written documents.
func Digest(body []byte) string {
	return fmt.Sprintf("%016x", Siphash(sipKeyZero, sipKeyOne, body))
}
