package middleware

import (
	"context"
	"time"

	"github.com/arpitsharma-bit/peextrap/config"
	"github.com/arpitsharma-bit/peextrap/internal/domain/user"
	appErrors "github.com/arpitsharma-bit/peextrap/internal/errors"
	"github.com/arpitsharma-bit/peextrap/internal/pkg"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

type JwtService struct {
	secret      []byte
	ttl         time.Duration
	userService *user.Service
}

func NewJwtService(cfg config.JWTConfig, userService *user.Service) *JwtService {
	return &JwtService{
		secret:      []byte(cfg.Secret),
		ttl:         cfg.TTL,
		userService: userService,
	}
}

func (s *JwtService) GenerateToken(userID ulid.ULID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return signed, nil
}

// ValidateToken checks the signature and expiry and confirms the user
// still exists.
func (s *JwtService) ValidateToken(ctx context.Context, tokenString string) (ulid.ULID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	rawID, ok := claims["user_id"].(string)
	if !ok {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	userID, err := pkg.ParseULID(rawID)
	if err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	if err := s.userService.Exists(ctx, userID); err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	return userID, nil
}
