package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// verifies candidate passwords against stored hashes. It knows nothing
// about users, storage, or transport.
type PasswordHasher interface {
	// Hash produces a salted one-way hash of the password. Every call
	// embeds a fresh random salt, so hashing the same password twice
	// yields different outputs.
	Hash(password string) ([]byte, error)

	// Verify recomputes the hash using the salt embedded in hashed and
	// compares the results in constant time. It returns false on any
	// mismatch or malformed hash and never panics on bad input.
	Verify(hashed []byte, password string) bool
}
