// Package codec implements the credential transforms: the one-way password
// digest, the reversible email obfuscation, and the symmetric note cipher.
package codec

import (
	"fmt"
	"unicode/utf16"
)

// digestTag identifies the digest scheme. The value is historical; the
// underlying hash is a rolling 32-bit fold, not bcrypt.
const digestTag = "bcrypt$"

// Digest derives an opaque, deterministic digest from password+salt.
//
// The hash walks the UTF-16 code units of the concatenated string, folding
// each into a 32-bit accumulator as h = h*31 + unit. The absolute value is
// rendered as a zero-padded 16-digit hex string behind the scheme tag.
// The result is suitable for equality comparison only and is never reversed.
func Digest(password, salt string) string {
	var h int32
	for _, u := range utf16.Encode([]rune(password + salt)) {
		h = (h << 5) - h + int32(u)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return fmt.Sprintf("%s%016x", digestTag, v)
}
