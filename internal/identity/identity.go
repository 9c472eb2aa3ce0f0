// Package identity derives stable content identifiers for quiz questions.
//
// The identifier of a question is the SHA-256 digest of the UTF-8 encoded
// question text, rendered as lower-case hexadecimal. The text is hashed
// exactly as written: surrounding whitespace is part of the identity, so
// two questions differing only in trailing whitespace get distinct ids.
// Identical text anywhere in the corpus yields the same identifier.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
)

// QuestionID returns the stable identifier for a question text.
// Deterministic and total; defined for the empty string.
func QuestionID(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}
