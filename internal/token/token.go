package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalid = errors.New("invalid token")
	ErrExpired = errors.New("expired token")
)

// Identity é o que um token válido prova: o id do cliente e seu email.
type Identity struct {
	ID    uint
	Email string
}

// Service emite e verifica tokens HS256 assinados com o segredo do processo.
// Stateless: nada é persistido e não há revogação.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *Service) Issue(identity Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   identity.ID,
		"email": identity.Email,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify valida assinatura e expiração. Token expirado retorna ErrExpired;
// qualquer outra falha (assinatura, algoritmo, payload) retorna ErrInvalid.
func (s *Service) Verify(raw string) (Identity, error) {
	t, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrExpired
		}
		return Identity{}, ErrInvalid
	}
	if !t.Valid {
		return Identity{}, ErrInvalid
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalid
	}

	sub, ok1 := claims["sub"].(float64)
	email, ok2 := claims["email"].(string)
	if !ok1 || !ok2 {
		return Identity{}, ErrInvalid
	}

	return Identity{ID: uint(sub), Email: email}, nil
}
