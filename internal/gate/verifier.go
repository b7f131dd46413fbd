// Package gate implements the shared-access-code gate in front of the
// portfolio: code verification, session authorization state, and the
// HTTP middleware tying the two together.
package gate

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrNotConfigured is returned by Verify when neither a hashed nor a
// plaintext access code has been configured. Verification fails closed:
// no credential means nobody gets in.
var ErrNotConfigured = errors.New("no access code configured: set ACCESS_CODE or ACCESS_CODE_HASH")

// Verifier checks submitted access codes against the configured secret.
// A hashed secret takes precedence over a plaintext one.
type Verifier struct {
	hash      string
	plaintext string
}

// NewVerifier builds a Verifier from the configured secrets. Either or
// both may be empty.
func NewVerifier(hash, plaintext string) *Verifier {
	return &Verifier{hash: hash, plaintext: plaintext}
}

// Configured reports whether any secret is set at all.
func (v *Verifier) Configured() bool {
	return v.hash != "" || v.plaintext != ""
}

// Verify checks the submitted code. With a hashed secret any comparison
// failure, including a malformed hash, counts as a mismatch rather than
// an error. With a plaintext secret the comparison is constant-time.
// With no secret configured it returns false and ErrNotConfigured.
func (v *Verifier) Verify(code string) (bool, error) {
	if v.hash != "" {
		err := bcrypt.CompareHashAndPassword([]byte(v.hash), []byte(code))
		return err == nil, nil
	}
	if v.plaintext != "" {
		ok := subtle.ConstantTimeCompare([]byte(code), []byte(v.plaintext)) == 1
		return ok, nil
	}
	return false, ErrNotConfigured
}
