// internal/service/auth.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dangerclosesec/sarpa/internal/auth"
	"github.com/dangerclosesec/sarpa/internal/domain"
	"github.com/dangerclosesec/sarpa/internal/model"
	"github.com/dangerclosesec/sarpa/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type RegisterInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	CompanyName string `json:"companyName" validate:"required,max=255"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ClientMeta records where a refresh token was issued.
type ClientMeta struct {
	IPAddress string
	UserAgent string
}

// AuthOutput is returned by every operation that starts or renews a session.
type AuthOutput struct {
	User                  *model.User `json:"user"`
	AccessToken           string      `json:"accessToken"`
	AccessTokenExpiresAt  time.Time   `json:"accessTokenExpiresAt"`
	RefreshToken          string      `json:"-"`
	RefreshTokenExpiresAt time.Time   `json:"-"`
}

type AuthService struct {
	tx           repository.Transactor
	companyRepo  repository.CompanyRepositoryIface
	userRepo     repository.UserRepositoryIface
	tokenRepo    repository.RefreshTokenRepositoryIface
	tokenManager *auth.TokenManager
	hasher       *auth.PasswordHasher
	notifier     Notifier
	validate     *validator.Validate
	now          func() time.Time
}

func NewAuthService(
	tx repository.Transactor,
	companyRepo repository.CompanyRepositoryIface,
	userRepo repository.UserRepositoryIface,
	tokenRepo repository.RefreshTokenRepositoryIface,
	tokenManager *auth.TokenManager,
	notifier Notifier,
) *AuthService {
	return &AuthService{
		tx:           tx,
		companyRepo:  companyRepo,
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		tokenManager: tokenManager,
		hasher:       auth.NewPasswordHasher(),
		notifier:     notifier,
		validate:     newValidator(),
		now:          time.Now,
	}
}

// Register creates a company together with its first user and signs the
// user in.
func (s *AuthService) Register(ctx context.Context, input RegisterInput, meta ClientMeta) (*AuthOutput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	if err := s.validate.Struct(input); err != nil {
		return nil, toValidationError(err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	txCtx, tx, err := s.tx.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	company := &model.Company{Name: input.CompanyName}
	if err := s.companyRepo.Create(txCtx, company); err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		CompanyID:    company.ID,
	}
	if err := s.userRepo.Create(txCtx, user); err != nil {
		return nil, err
	}

	out, err := s.issue(txCtx, user, meta)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing registration: %w", err)
	}

	user.Company = company
	if s.notifier != nil {
		if err := s.notifier.Welcome(ctx, user, company); err != nil {
			slog.WarnContext(ctx, "welcome notification failed", "user_id", user.ID.String(), "error", err)
		}
	}

	return out, nil
}

// Login checks the credentials. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input LoginInput, meta ClientMeta) (*AuthOutput, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := s.validate.Struct(input); err != nil {
		return nil, toValidationError(err)
	}

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issue(ctx, user, meta)
}

// Refresh rotates a refresh token. Presenting a token that was already
// rotated revokes every session of its user.
func (s *AuthService) Refresh(ctx context.Context, plain string, meta ClientMeta) (*AuthOutput, error) {
	if plain == "" {
		return nil, domain.ErrInvalidRefreshToken
	}

	txCtx, tx, err := s.tx.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	stored, err := s.tokenRepo.FindByHash(txCtx, auth.HashRefreshToken(plain))
	if err != nil {
		if errors.Is(err, domain.ErrRefreshTokenNotFound) {
			return nil, domain.ErrInvalidRefreshToken
		}
		return nil, err
	}

	if stored.Revoked {
		if err := s.tokenRepo.RevokeAllForUser(txCtx, stored.UserID); err != nil {
			return nil, err
		}
		if err := tx.Commit(); err != nil {
			return nil, err
		}
		return nil, domain.ErrInvalidRefreshToken
	}
	if !stored.Usable(s.now()) {
		return nil, domain.ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindByID(txCtx, stored.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidRefreshToken
		}
		return nil, err
	}

	if err := s.tokenRepo.Revoke(txCtx, stored.ID); err != nil {
		return nil, err
	}

	out, err := s.issue(txCtx, user, meta)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing token rotation: %w", err)
	}
	return out, nil
}

// Logout revokes the given refresh token. Unknown and already revoked
// tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, plain string) error {
	if plain == "" {
		return nil
	}

	stored, err := s.tokenRepo.FindByHash(ctx, auth.HashRefreshToken(plain))
	if err != nil {
		if errors.Is(err, domain.ErrRefreshTokenNotFound) {
			return nil
		}
		return err
	}
	if err := s.tokenRepo.Revoke(ctx, stored.ID); err != nil && !errors.Is(err, domain.ErrInvalidRefreshToken) {
		return err
	}
	return nil
}

// Me returns the authenticated user with its company.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// PruneTokens deletes refresh tokens that expired before now.
func (s *AuthService) PruneTokens(ctx context.Context) (int64, error) {
	return s.tokenRepo.DeleteExpired(ctx, s.now())
}

func (s *AuthService) issue(ctx context.Context, user *model.User, meta ClientMeta) (*AuthOutput, error) {
	access, accessExp, err := s.tokenManager.Generate(user.ID, user.CompanyID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	plain, hash, refreshExp, err := s.tokenManager.NewRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generating refresh token: %w", err)
	}

	if err := s.tokenRepo.Create(ctx, &model.RefreshToken{
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: refreshExp,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	}); err != nil {
		return nil, err
	}

	return &AuthOutput{
		User:                  user,
		AccessToken:           access,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          plain,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}
