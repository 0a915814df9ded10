package fakebackend

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var errTokenRevoked = errors.New("token revoked")

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// tokenManager issues HS256 access tokens and remembers revoked ids until
// they would have expired anyway.
type tokenManager struct {
	secret  []byte
	issuer  string
	expiry  time.Duration
	nowFunc func() time.Time

	mu      sync.RWMutex
	revoked map[string]time.Time
}

func newTokenManager(secret, issuer string, expiry time.Duration, now func() time.Time) *tokenManager {
	return &tokenManager{
		secret:  []byte(secret),
		issuer:  issuer,
		expiry:  expiry,
		nowFunc: now,
		revoked: make(map[string]time.Time),
	}
}

func (m *tokenManager) Create(subject, role string) (string, error) {
	now := m.nowFunc()
	claims := tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			ID:        uuid.New().String(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", errors.Wrap(err, "tokenManager.Create SignedString")
	}
	return signed, nil
}

func (m *tokenManager) Validate(raw string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.nowFunc),
	)
	if err != nil {
		return nil, errors.Wrap(err, "tokenManager.Validate")
	}
	if m.isRevoked(claims.ID) {
		return nil, errTokenRevoked
	}
	return claims, nil
}

func (m *tokenManager) Revoke(claims *tokenClaims) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[claims.ID] = claims.ExpiresAt.Time

	now := m.nowFunc()
	for jti, exp := range m.revoked {
		if now.After(exp) {
			delete(m.revoked, jti)
		}
	}
}

func (m *tokenManager) isRevoked(jti string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.revoked[jti]
	return ok
}
