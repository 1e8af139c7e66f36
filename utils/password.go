package utils

import "github.com/matthewhartstonge/argon2"

// Admin passwords are stored as argon2id encoded strings. The encoded form
// embeds its own parameters, so tuning the config later never invalidates
// hashes already in the database.
var argonConfig = argon2.DefaultConfig()

func HashPassword(password string) (string, error) {
	encoded, err := argonConfig.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword checks a plaintext password against a stored encoded hash.
// A mismatch is (false, nil); the error is reserved for malformed hashes.
func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
