// Package randid generates opaque alphanumeric identifiers for CSRF state
// tokens and session ids.
package randid

import (
	"crypto/rand"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// maxByte is the largest multiple of len(alphabet) that fits in a byte.
// Bytes at or above it are discarded to keep the distribution uniform.
const maxByte = byte(256 - 256%len(alphabet))

// Alphanumeric returns a random string of exactly length characters drawn
// from the 62-symbol alphanumeric alphabet. Safe for concurrent use.
func Alphanumeric(length int) string {
	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		// crypto/rand.Read never returns an error; it aborts the
		// program if the randomness source fails.
		_, _ = rand.Read(buf)
		for _, c := range buf {
			if c >= maxByte {
				continue
			}
			out = append(out, alphabet[int(c)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out)
}
