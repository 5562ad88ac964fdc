package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Coullax/disaster-relief-management/internal/pkg/log"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type sessionClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// generateSessionToken выпускает сессионный JWT (HS256).
func (s *Service) generateSessionToken(ctx context.Context, userID uuid.UUID, email string, now time.Time) (string, time.Time, error) {
	const op = "service/token/generateSessionToken"

	expires := now.Add(s.cfg.Auth.SessionTTL)

	claims := sessionClaims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.cfg.Auth.Issuer,
			Subject:   userID.String(),
			Audience:  jwt.ClaimStrings(s.cfg.Auth.Audience),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		log.From(ctx).Error("session_token_sign_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return signed, expires, nil
}

// validateSessionToken проверяет подпись, срок, issuer и audience.
// Любая ошибка — ErrUnauthenticated.
func (s *Service) validateSessionToken(tokenStr string) (uuid.UUID, string, error) {
	const op = "service/token/validateSessionToken"

	token, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
			}

			return []byte(s.cfg.Auth.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(s.cfg.Auth.Issuer),
		jwt.WithAudience(s.cfg.Auth.Audience...),
	)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return uuid.Nil, "", fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	return uid, claims.Email, nil
}
