package impl

import (
	"crypto/sha256"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/xerrors"
)

// credential stores the hash of a password. Only equality with a candidate
// password can be checked.
//
// bcrypt only reads the first 72 bytes of its input, so the password is
// digested first and passwords of any length compare exactly.
type credential struct {
	hash []byte
}

func newCredential(password string, cost int) (credential, error) {
	hash, err := bcrypt.GenerateFromPassword(digest(password), cost)
	if err != nil {
		return credential{}, xerrors.Errorf("failed to hash password: %w", err)
	}
	return credential{hash: hash}, nil
}

func (c credential) matches(password string) bool {
	return bcrypt.CompareHashAndPassword(c.hash, digest(password)) == nil
}

func digest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return sum[:]
}
