// Package password provides one-way password hashing for storage.
package password

import "golang.org/x/crypto/bcrypt"

// bcrypt hashes at most 72 bytes of input; x/crypto rejects anything longer
// instead of silently truncating. Accepted passwords may be up to 100
// characters, so truncate before hashing to keep the full range hashable.
const maxBcryptLength = 72

func truncated(plaintext string) []byte {
	raw := []byte(plaintext)
	if len(raw) > maxBcryptLength {
		raw = raw[:maxBcryptLength]
	}
	return raw
}

// Hash transforms a plaintext password into a salted bcrypt hash. Each call
// uses a fresh random salt, so identical plaintexts yield different hashes.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncated(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare reports whether plaintext matches a previously stored hash.
func Compare(hash, plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncated(plaintext))
}
