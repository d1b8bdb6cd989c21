package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	apperrors "elearning/internal/errors"
)

// TokenExpiry is the lifetime of an issued token. The upstream system
// advertised "7 days" in its login response while computing a shorter
// literal; a full week is the documented behavior and what we implement.
const TokenExpiry = 7 * 24 * time.Hour

// Claims carried by an issued token. Subject is the user's email.
type Claims struct {
	jwt.RegisteredClaims
}

// JWTService issues and verifies signed bearer tokens. The secret is
// fixed at construction time and never rotated.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a token service with the given signing secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

// Issue signs a token for the given subject, valid for TokenExpiry.
func (s *JWTService) Issue(subject string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses the token, checking the HMAC signature and expiry.
// Any failure collapses to ErrInvalidToken.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// ExtractSubject returns the subject claim of a verified token.
func (s *JWTService) ExtractSubject(tokenString string) (string, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", apperrors.ErrInvalidToken
	}
	return claims.Subject, nil
}
