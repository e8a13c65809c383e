package model

import "github.com/bhzconnection/escola/internal/lib/password"

// Professor is a teacher and the only login principal. Email is unique.
//
// PasswordHash holds a bcrypt hash; the raw password is never stored.
type Professor struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// NewProfessor builds a Professor whose password is stored as a bcrypt hash.
// cost zero uses the bcrypt default.
func NewProfessor(name, email, plainPassword string, cost int) (*Professor, error) {
	hash, err := password.Hash(plainPassword, cost)
	if err != nil {
		return nil, err
	}

	return &Professor{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}, nil
}
