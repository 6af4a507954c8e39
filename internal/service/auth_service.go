package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/foodyy-service/internal/auth"
	"github.com/spec-kit/foodyy-service/internal/domain"
	"github.com/spec-kit/foodyy-service/internal/observability"
)

// ErrInvalidCredentials covers both unknown identifier and wrong password.
// The two causes are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrMissingToken is returned by Logout when no bearer header was supplied.
var ErrMissingToken = errors.New("token missing or invalid")

// SignInResult carries the issued token and the non-secret principal fields.
type SignInResult struct {
	Token     string
	ExpiresAt time.Time
	Principal domain.Principal
}

// AuthService orchestrates credential verification, token issuance and
// logout-driven revocation.
type AuthService struct {
	store     auth.CredentialStore
	tokens    *auth.TokenManager
	blacklist auth.Blacklist
	metrics   *observability.Metrics
	logger    *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(store auth.CredentialStore, tokens *auth.TokenManager, blacklist auth.Blacklist, metrics *observability.Metrics, logger *zap.Logger) *AuthService {
	return &AuthService{store: store, tokens: tokens, blacklist: blacklist, metrics: metrics, logger: logger}
}

// SignIn authenticates an identifier within one role namespace and issues a
// bearer token on success.
func (s *AuthService) SignIn(ctx context.Context, identifier, password string, role domain.Role) (*SignInResult, error) {
	principal, err := s.store.FindPrincipal(ctx, identifier, role)
	if err != nil {
		// unknown identifier and bad password must look identical
		return nil, ErrInvalidCredentials
	}
	if !principal.IsEnabled() {
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPassword(principal.Credential(), password) {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Generate(principal.Identifier())
	if err != nil {
		return nil, err
	}

	s.logger.Info("sign-in",
		zap.String("subject", principal.Identifier()),
		zap.String("role", string(principal.AccountRole())),
	)
	return &SignInResult{Token: token, ExpiresAt: expiresAt, Principal: principal}, nil
}

// Logout revokes the presented token. It is idempotent and succeeds even for
// expired or garbage tokens: the caller's intent, "this token must stop
// working", is satisfied either way. Only a missing or malformed header is
// an error.
func (s *AuthService) Logout(ctx context.Context, authHeader string) error {
	token, ok := auth.BearerToken(authHeader)
	if !ok {
		return ErrMissingToken
	}

	if err := s.blacklist.Revoke(ctx, token); err != nil {
		return err
	}
	s.metrics.RecordRevocation()
	return nil
}

// TokenManager exposes the underlying token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}
