package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/foodyy-service/internal/auth"
	"github.com/spec-kit/foodyy-service/internal/domain"
	"github.com/spec-kit/foodyy-service/internal/notify"
	"github.com/spec-kit/foodyy-service/internal/repository"
	apperrors "github.com/spec-kit/foodyy-service/pkg/util/errorutil"
)

// ForgotPasswordService runs the OTP-based password recovery flow for
// customers. One live OTP per customer; requesting again replaces it.
type ForgotPasswordService struct {
	resets     repository.PasswordResetRepository
	customers  repository.CustomerRepository
	mailer     notify.Mailer
	otpTTL     time.Duration
	bcryptCost int
}

// NewForgotPasswordService builds the service.
func NewForgotPasswordService(resets repository.PasswordResetRepository, customers repository.CustomerRepository, mailer notify.Mailer, otpTTL time.Duration, bcryptCost int) *ForgotPasswordService {
	return &ForgotPasswordService{
		resets:     resets,
		customers:  customers,
		mailer:     mailer,
		otpTTL:     otpTTL,
		bcryptCost: bcryptCost,
	}
}

func generateOTP() int {
	return rand.Intn(9000) + 1000
}

// RequestOTP verifies the email belongs to a customer, generates a fresh
// OTP and mails it.
func (s *ForgotPasswordService) RequestOTP(ctx context.Context, email string) error {
	customer, err := s.customers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("customer", nil)
		}
		return err
	}

	otp := &domain.PasswordResetOTP{
		CustomerID: customer.ID,
		OTP:        generateOTP(),
		ExpiresAt:  time.Now().Add(s.otpTTL),
	}
	if err := s.resets.Replace(ctx, otp); err != nil {
		return err
	}

	return s.mailer.Send(ctx, notify.Mail{
		To:      email,
		Subject: "OTP for forgot password request",
		Body:    fmt.Sprintf("Your one-time password is %d. It expires in %d seconds.", otp.OTP, int(s.otpTTL.Seconds())),
	})
}

// VerifyOTP checks the code for the given email. Expired codes are deleted
// on sight.
func (s *ForgotPasswordService) VerifyOTP(ctx context.Context, code int, email string) error {
	customer, err := s.customers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("customer", nil)
		}
		return err
	}

	otp, err := s.resets.GetByOTPAndCustomer(ctx, code, customer.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewBadRequest("invalid OTP")
		}
		return err
	}

	if otp.Expired(time.Now()) {
		_ = s.resets.Delete(ctx, otp.ID)
		return apperrors.NewBadRequest("OTP has expired")
	}
	return nil
}

// ChangePassword rewrites the customer's password and discards the OTP
// session. It requires a live, previously requested OTP.
func (s *ForgotPasswordService) ChangePassword(ctx context.Context, email, newPassword string) error {
	customer, err := s.customers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("customer", nil)
		}
		return err
	}

	otp, err := s.resets.GetByCustomer(ctx, customer.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewBadRequest("OTP session expired or not found")
		}
		return err
	}
	if otp.Expired(time.Now()) {
		_ = s.resets.Delete(ctx, otp.ID)
		return apperrors.NewBadRequest("OTP session expired or not found")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.customers.UpdatePassword(ctx, customer.ID, hash); err != nil {
		return err
	}
	return s.resets.DeleteByCustomer(ctx, customer.ID)
}
