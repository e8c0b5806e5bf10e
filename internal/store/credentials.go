package store

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Credentials decides how passwords are kept in the directory and how a
// login attempt is checked against the stored value.
type Credentials interface {
	Seal(password string) (string, error)
	Match(stored, password string) bool
}

// NewCredentials returns bcrypt credentials when hash is set, plaintext otherwise.
func NewCredentials(hash bool) Credentials {
	if hash {
		return BcryptCredentials{Cost: bcrypt.DefaultCost}
	}
	return PlainCredentials{}
}

// PlainCredentials keeps passwords as-is. Demo only: anything beyond a demo
// needs BcryptCredentials.
type PlainCredentials struct{}

func (PlainCredentials) Seal(password string) (string, error) {
	return password, nil
}

func (PlainCredentials) Match(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

type BcryptCredentials struct {
	Cost int
}

func (b BcryptCredentials) Seal(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptCredentials) Match(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
