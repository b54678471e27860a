package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ResultTokenService emite y valida los tokens firmados que protegen el
// acceso a los resultados de un intento. El token viaja en el link de
// resultados que recibe la UI y va embebido en el email.
type ResultTokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

type resultClaims struct {
	AttemptID string `json:"att"`
	jwt.RegisteredClaims
}

var (
	ErrTokenInvalid = errors.New("result token invalid")
	ErrTokenExpired = errors.New("result token expired")
)

func NewResultTokenService(secret string, ttl time.Duration) *ResultTokenService {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &ResultTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "bizmatch",
	}
}

// Generate emite un token acotado a un attempt id.
func (s *ResultTokenService) Generate(attemptID string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrTokenInvalid
	}
	if attemptID == "" {
		return "", ErrAttemptIDRequired
	}
	now := time.Now().UTC()
	claims := resultClaims{
		AttemptID: attemptID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   attemptID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate chequea firma, expiracion y el binding al intento.
func (s *ResultTokenService) Validate(token, attemptID string) error {
	if len(s.secret) == 0 || token == "" {
		return ErrTokenInvalid
	}
	var claims resultClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return ErrTokenInvalid
	}
	if !parsed.Valid || claims.AttemptID != attemptID {
		return ErrTokenInvalid
	}
	return nil
}
