package utils

import "github.com/google/uuid"

// TokenGenerator produces the opaque session and reset tokens handed out
// by the service. Tokens are UUIDv4 strings: 122 bits of CSPRNG output,
// which satisfies the "guessing is infeasible" requirement while staying
// trivially printable and cookie-safe.
//
// UUIDv7 is deliberately not used here: its leading timestamp would leak
// issuance time and cut the random portion of the token.
type TokenGenerator struct {
}

// NewTokenGenerator returns a ready-to-use [TokenGenerator].
func NewTokenGenerator() *TokenGenerator {
	return &TokenGenerator{}
}

// Generate returns a fresh opaque token.
func (g *TokenGenerator) Generate() string {
	return uuid.NewString()
}
