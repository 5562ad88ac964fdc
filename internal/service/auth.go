package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"net/mail"
	"strings"

	"github.com/Coullax/disaster-relief-management/internal/models"
	"github.com/Coullax/disaster-relief-management/internal/pkg/log"
	"github.com/Coullax/disaster-relief-management/internal/pkg/redact"
	"github.com/Coullax/disaster-relief-management/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

// RequestCode выдаёт одноразовый код входа и отправляет его на e-mail.
//
// Правила:
//   - e-mail нормализуется (TrimSpace + lower) и проверяется net/mail;
//   - повторный запрос раньше auth.otp_resend_interval — ErrTooManyRequests;
//   - новый код заменяет предыдущий и сбрасывает счётчик попыток;
//   - в хранилище попадает только bcrypt-хэш кода.
func (s *Service) RequestCode(ctx context.Context, email string) error {
	const op = "service/auth/RequestCode"

	norm, err := validateEmail(email)
	if err != nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	lg := log.From(ctx).With("op", op, "email", redact.Email(norm))
	now := s.now()

	prev, err := s.otp.ChallengeByEmail(ctx, norm)
	switch {
	case err == nil:
		if now.Sub(prev.CreatedAt) < s.cfg.Auth.OTPResendInterval {
			lg.Warn("otp_resend_too_early")
			return fmt.Errorf("%s: %w", op, ErrTooManyRequests)
		}
	case !errors.Is(err, storage.ErrNotFound):
		lg.Error("otp_lookup_failed", slog.String("err", err.Error()))
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	code, err := generateCode(s.cfg.Auth.OTPLength)
	if err != nil {
		lg.Error("otp_generate_failed", slog.String("err", err.Error()))
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		lg.Error("otp_hash_failed", slog.String("err", err.Error()))
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	challenge := models.OTPChallenge{
		Email:     norm,
		CodeHash:  string(hash),
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.Auth.OTPTTL),
	}

	if err := s.otp.SaveChallenge(ctx, challenge); err != nil {
		lg.Error("otp_save_failed", slog.String("err", err.Error()))
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if err := s.sender.SendCode(ctx, norm, code, s.cfg.Auth.OTPTTL); err != nil {
		lg.Error("otp_send_failed", slog.String("err", err.Error()))

		// Неотправленный код не должен блокировать повторный запрос.
		if derr := s.otp.DeleteChallenge(ctx, norm); derr != nil {
			lg.Warn("otp_delete_failed", slog.String("err", derr.Error()))
		}

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("otp_requested")

	return nil
}

// VerifyCode проверяет код и открывает сессию.
//
// Каждая проверка сначала атомарно расходует попытку (TakeAttempt), поэтому
// параллельные запросы не получают больше auth.otp_max_attempts сравнений.
// Отсутствующий/истёкший челлендж, исчерпанные попытки или неверный код —
// ErrInvalidCode. Верный код потребляет челлендж (ConsumeChallenge): из
// конкурентных запросов с одним кодом сессию получает только один.
// Профиль учётной записи создаётся по e-mail при первом входе.
func (s *Service) VerifyCode(ctx context.Context, email, code string) (*models.AuthSession, error) {
	const op = "service/auth/VerifyCode"

	norm, err := validateEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCode)
	}

	lg := log.From(ctx).With("op", op, "email", redact.Email(norm))

	ch, err := s.otp.TakeAttempt(ctx, norm, s.cfg.Auth.OTPMaxAttempts)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("otp_challenge_unavailable")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCode)
		}

		lg.Error("otp_attempt_failed", slog.String("err", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if bcrypt.CompareHashAndPassword([]byte(ch.CodeHash), []byte(code)) != nil {
		lg.Warn("otp_code_mismatch",
			slog.String("code", redact.Code()),
			slog.Int("attempts", ch.Attempts),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCode)
	}

	if err := s.otp.ConsumeChallenge(ctx, norm, ch.CodeHash); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("otp_challenge_already_used")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCode)
		}

		lg.Error("otp_consume_failed", slog.String("err", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	profile, err := s.profiles.UpsertAccountProfile(ctx, norm)
	if err != nil {
		lg.Error("account_profile_upsert_failed", slog.String("err", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	token, expires, err := s.generateSessionToken(ctx, profile.ID, norm, s.now())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("session_opened", slog.String("user_id", profile.ID.String()))

	return &models.AuthSession{
		Token:     token,
		ExpiresAt: expires,
		UserID:    profile.ID,
		Email:     norm,
	}, nil
}

// Authenticate проверяет сессионный токен и возвращает сессию.
// Ошибки: ErrUnauthenticated.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	const op = "service/auth/Authenticate"

	uid, email, err := s.validateSessionToken(strings.TrimSpace(token))
	if err != nil {
		log.From(ctx).Debug("session_token_rejected", slog.String("op", op))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.Session{UserID: uid, Email: email}, nil
}

// validateEmail проверяет базовый формат email и нормализует его.
func validateEmail(raw string) (string, error) {
	const op = "service/auth/validateEmail"

	email := normalizeEmail(raw)
	if email == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	return email, nil
}

// maxCodeLength — больше цифр не помещается в int64.
const maxCodeLength = 18

// generateCode возвращает n случайных десятичных цифр (crypto/rand).
func generateCode(n int) (string, error) {
	if n < 1 || n > maxCodeLength {
		return "", fmt.Errorf("otp length %d out of range [1, %d]", n, maxCodeLength)
	}

	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)

	v, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", n, v.Int64()), nil
}
