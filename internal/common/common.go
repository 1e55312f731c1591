package common

import (
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// View aliases b as a string without copying. The string changes whenever
// b is written, so callers must only hand it out for as long as the
// bytes are stable.
func View(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// Fingerprint hashes b; used to confirm a buffer came back unchanged.
func Fingerprint(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// Equal reports whether b holds exactly s, without allocating.
func Equal(b []byte, s string) bool {
	return string(b) == s
}
