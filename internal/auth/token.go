package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// TokenTTL — срок жизни сессионного токена.
const TokenTTL = 7 * 24 * time.Hour

// Claims — подписанный набор утверждений сессии. Subject содержит id
// пользователя в десятичной записи.
type Claims struct {
	jwt.RegisteredClaims
	Role           domain.UserType `json:"role"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	ManagedStoreID *int64          `json:"managed_store_id,omitempty"`
}

// UserID возвращает id пользователя из Subject.
func (c Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse token subject: %w", err)
	}
	return id, nil
}

// TokenIssuer подписывает и проверяет сессионные токены (HS256).
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer создаёт издателя токенов с TTL по умолчанию.
func NewTokenIssuer(secret []byte) *TokenIssuer {
	return &TokenIssuer{
		secret: secret,
		ttl:    TokenTTL,
		now:    time.Now,
	}
}

// Issue выпускает токен для пользователя.
func (i *TokenIssuer) Issue(user domain.User) (string, error) {
	now := i.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Role:           user.Type,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		ManagedStoreID: user.ManagedStoreID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse проверяет подпись и срок действия и возвращает claims.
// Любая проблема с токеном — domain.Unauthorized.
func (i *TokenIssuer) Parse(tokenString string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return Claims{}, domain.Unauthorized("invalid token")
	}
	return claims, nil
}
