package utils

import "golang.org/x/crypto/bcrypt"

// GenerateHash hasht ein Passwort mit bcrypt (Default-Cost).
func GenerateHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CompareHash prüft ein Passwort gegen den gespeicherten Hash.
func CompareHash(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
