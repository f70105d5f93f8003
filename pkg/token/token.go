package token

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/Kinimary/belwest/internal/entity"
)

// Manager signs and verifies HS256 bearer tokens carrying the caller id and role.
type Manager struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewManager(secret, issuer string) *Manager {
	return &Manager{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

func (m *Manager) Issue(c entity.Caller, ttl time.Duration) (string, error) {
	now := m.now()

	claims := entity.CallerClaims{
		UserID: c.UserID,
		Role:   c.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func (m *Manager) Parse(raw string) (entity.Caller, error) {
	var claims entity.CallerClaims

	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return entity.Caller{}, fmt.Errorf("%w: %w", entity.ErrInvalidToken, err)
	}

	if claims.UserID <= 0 {
		return entity.Caller{}, fmt.Errorf("%w: missing user_id", entity.ErrInvalidToken)
	}

	role, err := entity.ParseRole(string(claims.Role))
	if err != nil {
		return entity.Caller{}, errors.Join(entity.ErrInvalidToken, err)
	}

	return entity.Caller{UserID: claims.UserID, Role: role}, nil
}
