package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/foodyy-service/internal/domain"
)

// PasswordResetRepository defines persistence access for forgot-password
// OTPs. Replace enforces the one-live-OTP-per-customer rule.
type PasswordResetRepository interface {
	Replace(ctx context.Context, otp *domain.PasswordResetOTP) error
	GetByCustomer(ctx context.Context, customerID int) (*domain.PasswordResetOTP, error)
	GetByOTPAndCustomer(ctx context.Context, otp, customerID int) (*domain.PasswordResetOTP, error)
	Delete(ctx context.Context, id int) error
	DeleteByCustomer(ctx context.Context, customerID int) error
}

type passwordResetRepository struct {
	pool *pgxpool.Pool
}

// NewPasswordResetRepository returns a Postgres-backed implementation.
func NewPasswordResetRepository(pool *pgxpool.Pool) PasswordResetRepository {
	return &passwordResetRepository{pool: pool}
}

func (r *passwordResetRepository) Replace(ctx context.Context, otp *domain.PasswordResetOTP) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx,
		`DELETE FROM password_reset_otps WHERE customer_id=$1`, otp.CustomerID); err != nil {
		return err
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO password_reset_otps (customer_id, otp, expires_at)
         VALUES ($1, $2, $3) RETURNING id`,
		otp.CustomerID, otp.OTP, otp.ExpiresAt,
	).Scan(&otp.ID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *passwordResetRepository) GetByCustomer(ctx context.Context, customerID int) (*domain.PasswordResetOTP, error) {
	var otp domain.PasswordResetOTP
	err := r.pool.QueryRow(ctx,
		`SELECT id, customer_id, otp, expires_at FROM password_reset_otps WHERE customer_id=$1`,
		customerID,
	).Scan(&otp.ID, &otp.CustomerID, &otp.OTP, &otp.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *passwordResetRepository) GetByOTPAndCustomer(ctx context.Context, code, customerID int) (*domain.PasswordResetOTP, error) {
	var otp domain.PasswordResetOTP
	err := r.pool.QueryRow(ctx,
		`SELECT id, customer_id, otp, expires_at FROM password_reset_otps
         WHERE otp=$1 AND customer_id=$2`,
		code, customerID,
	).Scan(&otp.ID, &otp.CustomerID, &otp.OTP, &otp.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *passwordResetRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM password_reset_otps WHERE id=$1`, id)
	return err
}

func (r *passwordResetRepository) DeleteByCustomer(ctx context.Context, customerID int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM password_reset_otps WHERE customer_id=$1`, customerID)
	return err
}
