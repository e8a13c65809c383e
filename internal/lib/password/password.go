// Package password hashes and verifies teacher credentials with bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxBytes is the longest input bcrypt accepts. The limit is in bytes, not
// characters.
const MaxBytes = 72

// ErrTooLong is returned by Hash for input longer than MaxBytes.
var ErrTooLong = fmt.Errorf("password is longer than %d bytes", MaxBytes)

// Hash returns the bcrypt hash of plain. A cost of zero uses bcrypt.DefaultCost.
func Hash(plain string, cost int) (string, error) {
	if len(plain) > MaxBytes {
		return "", ErrTooLong
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Compare reports whether plain matches hash.
//
// A mismatch is (false, nil); an error means hash is not a valid bcrypt hash.
//
// Input longer than MaxBytes never matches, since Hash refuses to store it.
func Compare(hash, plain string) (bool, error) {
	if len(plain) > MaxBytes {
		return false, nil
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("failed to compare password: %w", err)
	}
}
