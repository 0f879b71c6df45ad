package lib

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Err returns formatted error in "op: err" template.
func Err(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// NewToken returns a random hex token. Used for team ids and invite tokens.
func NewToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
