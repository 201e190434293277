package paseto

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	pasetolib "github.com/o1egl/paseto"
	"golang.org/x/crypto/chacha20poly1305"

	"hr-management-backend/models"
)

var (
	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is the payload carried inside a PASETO v2.local token.
type Claims struct {
	UserID    int       `json:"userId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiredAt time.Time `json:"expiredAt"`
}

// Maker issues and verifies symmetric PASETO tokens.
type Maker struct {
	paseto *pasetolib.V2
	key    []byte
}

// NewMaker builds a Maker from a base64url encoded 32 byte secret.
func NewMaker(secretBase64 string) (*Maker, error) {
	key, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		return nil, fmt.Errorf("decode token secret: %w", err)
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("token secret must decode to %d bytes", chacha20poly1305.KeySize)
	}
	return &Maker{paseto: pasetolib.NewV2(), key: key}, nil
}

func (m *Maker) GenerateToken(user models.User, duration time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		IssuedAt:  now,
		ExpiredAt: now.Add(duration),
	}
	return m.paseto.Encrypt(m.key, claims, nil)
}

func (m *Maker) ValidateToken(token string) (*Claims, error) {
	var claims Claims
	if err := m.paseto.Decrypt(token, m.key, &claims, nil); err != nil {
		return nil, ErrInvalidToken
	}
	if time.Now().After(claims.ExpiredAt) {
		return nil, ErrExpiredToken
	}
	return &claims, nil
}
