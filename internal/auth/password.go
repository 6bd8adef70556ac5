package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength       = 24
	pbkdf2Iterations = 120_000
	pbkdf2KeyLength  = 32
)

const saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// HashedPassword — пара из хеша и соли; хранятся в отдельных колонках.
type HashedPassword struct {
	Hash string
	Salt string
}

// HashPassword хеширует пароль PBKDF2-SHA256 со случайной солью.
func HashPassword(password string) (HashedPassword, error) {
	salt, err := randomSalt(saltLength)
	if err != nil {
		return HashedPassword{}, fmt.Errorf("generate salt: %w", err)
	}
	return HashedPassword{
		Hash: derive(password, salt),
		Salt: salt,
	}, nil
}

// VerifyPassword сравнивает попытку с хешем за постоянное время.
func VerifyPassword(attempt, hash, salt string) bool {
	derived := derive(attempt, salt)
	return subtle.ConstantTimeCompare([]byte(derived), []byte(hash)) == 1
}

func derive(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLength, sha256.New)
	return hex.EncodeToString(key)
}

func randomSalt(length int) (string, error) {
	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	for i, b := range raw {
		raw[i] = saltAlphabet[int(b)%len(saltAlphabet)]
	}
	return string(raw), nil
}
