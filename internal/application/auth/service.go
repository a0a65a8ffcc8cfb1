package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/Kush146/note-app-Backend/internal/domain"
	"github.com/Kush146/note-app-Backend/internal/infrastructure/google"
	"github.com/Kush146/note-app-Backend/internal/infrastructure/smtp"
	"github.com/Kush146/note-app-Backend/internal/pkg/token"
)

type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

// PasscodeStore is the passcode persistence the service requires.
type PasscodeStore interface {
	Put(ctx context.Context, p *domain.Passcode) error
	Get(ctx context.Context, email string) (*domain.Passcode, error)
	// Consume deletes the passcode only when code matches and now is before
	// its expiry; domain.ErrUnauthorized on a failed condition.
	Consume(ctx context.Context, email, code string, now int64) error
}

// TokenSigner mints session tokens for a verified identity.
type TokenSigner interface {
	Sign(email, name string) (string, error)
}

// GoogleExchanger runs the Google OAuth redirect flow.
type GoogleExchanger interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*google.Identity, error)
}

type Service interface {
	SendOTP(ctx context.Context, req SendOTPRequest) error
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (string, error)
	GoogleAuthURL() (string, error)
	GoogleCallback(ctx context.Context, code string) (string, error)
}

// ServiceDeps bundles the collaborators NewService needs.
type ServiceDeps struct {
	PasscodeRepo PasscodeStore
	Mailer       smtp.Mailer
	Google       GoogleExchanger
	JWTProvider  TokenSigner
	OTPExpiry    time.Duration
}

type service struct {
	passcodeRepo PasscodeStore
	mailer       smtp.Mailer
	google       GoogleExchanger
	jwtProvider  TokenSigner
	otpExpiry    time.Duration
}

func NewService(deps ServiceDeps) Service {
	return &service{
		passcodeRepo: deps.PasscodeRepo,
		mailer:       deps.Mailer,
		google:       deps.Google,
		jwtProvider:  deps.JWTProvider,
		otpExpiry:    deps.OTPExpiry,
	}
}

// SendOTP emails a fresh one-time code and upserts the passcode row.
// The email goes out first: if delivery fails nothing is stored, so a code
// the user never received can never sit in the table.
func (s *service) SendOTP(ctx context.Context, req SendOTPRequest) error {
	email := normalizeEmail(req.Email)

	otp, err := randomOTP()
	if err != nil {
		return err
	}

	if err := s.mailer.SendEmail(email, "Your OTP Code", "Your OTP is: "+otp); err != nil {
		return fmt.Errorf("send otp email: %w", err)
	}

	now := time.Now()
	p := &domain.Passcode{
		Email:     email,
		Code:      otp,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.otpExpiry).Unix(),
	}
	if err := s.passcodeRepo.Put(ctx, p); err != nil {
		return fmt.Errorf("store passcode: %w", err)
	}

	slog.Info("otp issued", "email", email)
	return nil
}

// VerifyOTP checks the submitted code and mints a session token. The stored
// row is removed by a conditional delete, so a code can be spent at most once
// even under concurrent verification attempts.
func (s *service) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (string, error) {
	email := normalizeEmail(req.Email)

	p, err := s.passcodeRepo.Get(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("OTP not found: %w", domain.ErrNotFound)
		}
		// A store failure is not "no code issued"; let it surface as a 500.
		return "", fmt.Errorf("load passcode: %w", err)
	}

	now := time.Now().Unix()
	if err := s.passcodeRepo.Consume(ctx, email, req.OTP, now); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			// The true cause stays server-side; the client always sees the
			// same "invalid or expired" answer. The reason is best-effort:
			// p is a pre-read and may be stale if a fresh code was issued
			// between Get and Consume.
			reason := "mismatch"
			if p.ExpiresAt <= now {
				reason = "expired"
			}
			slog.Info("otp rejected", "email", email, "reason", reason)
			return "", fmt.Errorf("invalid or expired OTP: %w", domain.ErrUnauthorized)
		}
		return "", err
	}

	return s.jwtProvider.Sign(email, "")
}

// GoogleAuthURL returns the provider consent URL with a fresh state value.
// The state is not tracked server-side; the flow is stateless and trusts the
// provider round-trip.
func (s *service) GoogleAuthURL() (string, error) {
	state, err := token.NewState()
	if err != nil {
		return "", err
	}
	return s.google.AuthURL(state), nil
}

// GoogleCallback exchanges the authorization code and mints a session token
// for the asserted identity. A profile without an email aborts the flow.
func (s *service) GoogleCallback(ctx context.Context, code string) (string, error) {
	ident, err := s.google.Exchange(ctx, code)
	if err != nil {
		return "", err
	}
	if ident.Email == "" {
		return "", fmt.Errorf("google profile has no email: %w", domain.ErrUnauthorized)
	}
	return s.jwtProvider.Sign(normalizeEmail(ident.Email), ident.Name)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// randomOTP draws a uniform code from 100000–999999. The leading digit is
// never zero, matching the issued-code format users already know.
func randomOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
