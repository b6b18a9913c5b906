package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	SchemeSHA256 = "sha256"
	SchemeBcrypt = "bcrypt"
)

var ErrMismatch error = errors.New("password does not match")
var ErrTooLong error = errors.New("password is too long")
var ErrUnknownScheme error = errors.New("unknown password scheme")

// Hasher turns a plain password into a stored digest and checks a plain
// password against a stored digest.
type Hasher interface {
	Hash(plain string) (string, error)
	Compare(digest, plain string) error
}

// New returns the Hasher for scheme. cost is only used by bcrypt; zero means
// bcrypt.DefaultCost.
func New(scheme string, cost int) (Hasher, error) {
	switch scheme {
	case SchemeSHA256, "":
		return SHA256{}, nil
	case SchemeBcrypt:
		if cost == 0 {
			cost = bcrypt.DefaultCost
		}
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
		}
		return Bcrypt{Cost: cost}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

// SHA256 stores the hex encoded SHA-256 digest of the password.
type SHA256 struct{}

func (SHA256) Hash(plain string) (string, error) {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA256) Compare(digest, plain string) error {
	computed, _ := h.Hash(plain)
	if subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) != 1 {
		return ErrMismatch
	}
	return nil
}

// Bcrypt stores a salted bcrypt hash.
type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), b.Cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrTooLong
		}
		return "", fmt.Errorf("generate bcrypt hash: %w", err)
	}
	return string(hash), nil
}

func (Bcrypt) Compare(digest, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("compare bcrypt hash: %w", err)
	}
	return nil
}
