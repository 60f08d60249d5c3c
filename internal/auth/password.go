package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt hash of a password. The plaintext is never
// stored anywhere.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches the stored hash. Any
// mismatch or malformed hash yields false.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
