package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/sarpa/internal/auth"
	"github.com/dangerclosesec/sarpa/internal/domain"
	"github.com/dangerclosesec/sarpa/internal/mocks"
	"github.com/dangerclosesec/sarpa/internal/model"
	"github.com/dangerclosesec/sarpa/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	companyRepo *mocks.MockCompanyRepositoryIface
	userRepo    *mocks.MockUserRepositoryIface
	tokenRepo   *mocks.MockRefreshTokenRepositoryIface
	notifier    *mocks.MockNotifier
	tokens      *auth.TokenManager
	svc         *service.AuthService
}

func newAuthFixture(ctrl *gomock.Controller) *authFixture {
	f := &authFixture{
		companyRepo: mocks.NewMockCompanyRepositoryIface(ctrl),
		userRepo:    mocks.NewMockUserRepositoryIface(ctrl),
		tokenRepo:   mocks.NewMockRefreshTokenRepositoryIface(ctrl),
		notifier:    mocks.NewMockNotifier(ctrl),
		tokens:      auth.NewTokenManager("test-secret", 15*time.Minute, 24*time.Hour),
	}
	f.svc = service.NewAuthService(newTransactor(ctrl), f.companyRepo, f.userRepo, f.tokenRepo, f.tokens, f.notifier)
	return f
}

func TestAuthRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	meta := service.ClientMeta{IPAddress: "10.0.0.1", UserAgent: "test"}

	t.Run("creates company, user and session", func(t *testing.T) {
		f := newAuthFixture(ctrl)
		companyID := uuid.New()

		f.companyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *model.Company) error {
				assert.Equal(t, "Acme Plant", c.Name)
				c.ID = companyID
				return nil
			},
		)
		f.userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *model.User) error {
				assert.Equal(t, "ada@example.com", u.Email)
				assert.Equal(t, companyID, u.CompanyID)
				assert.NotEqual(t, "correct horse", u.PasswordHash)
				u.ID = uuid.New()
				return nil
			},
		)
		f.tokenRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rt *model.RefreshToken) error {
				assert.Equal(t, "10.0.0.1", rt.IPAddress)
				assert.NotEmpty(t, rt.TokenHash)
				return nil
			},
		)
		f.notifier.EXPECT().Welcome(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		out, err := f.svc.Register(context.Background(), service.RegisterInput{
			Name:        "Ada",
			Email:       " Ada@Example.com ",
			Password:    "correct horse",
			CompanyName: "Acme Plant",
		}, meta)
		require.NoError(t, err)

		claims, err := f.tokens.Validate(out.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, out.User.ID, claims.UserID)
		assert.Equal(t, companyID, claims.CompanyID)
		assert.NotEmpty(t, out.RefreshToken)
		assert.Equal(t, companyID, out.User.Company.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newAuthFixture(ctrl)
		f.companyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrEmailAlreadyExists)

		_, err := f.svc.Register(context.Background(), service.RegisterInput{
			Name:        "Ada",
			Email:       "ada@example.com",
			Password:    "correct horse",
			CompanyName: "Acme Plant",
		}, meta)
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("invalid payload", func(t *testing.T) {
		f := newAuthFixture(ctrl)

		_, err := f.svc.Register(context.Background(), service.RegisterInput{
			Email:    "not-an-email",
			Password: "short",
		}, meta)
		assert.Equal(t, []string{
			"name is required",
			"email must be a valid email address",
			"password must be at least 8 characters",
			"companyName is required",
		}, validationErrors(t, err))
	})
}

func TestAuthLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := auth.NewPasswordHasher().Hash("correct horse")
	require.NoError(t, err)
	user := &model.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: hash, CompanyID: uuid.New()}

	t.Run("valid credentials", func(t *testing.T) {
		f := newAuthFixture(ctrl)
		f.userRepo.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(user, nil)
		f.tokenRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		out, err := f.svc.Login(context.Background(), service.LoginInput{Email: "ADA@example.com", Password: "correct horse"}, service.ClientMeta{})
		require.NoError(t, err)
		assert.Equal(t, user, out.User)
		assert.NotEmpty(t, out.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(ctrl)
		f.userRepo.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(user, nil)

		_, err := f.svc.Login(context.Background(), service.LoginInput{Email: "ada@example.com", Password: "wrong"}, service.ClientMeta{})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture(ctrl)
		f.userRepo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, domain.ErrUserNotFound)

		_, err := f.svc.Login(context.Background(), service.LoginInput{Email: "nobody@example.com", Password: "whatever"}, service.ClientMeta{})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &model.User{ID: uuid.New(), Email: "ada@example.com", CompanyID: uuid.New()}
	plain := "opaque-refresh-token"

	stored := func() *model.RefreshToken {
		return &model.RefreshToken{
			ID:        uuid.New(),
			UserID:    user.ID,
			TokenHash: auth.HashRefreshToken(plain),
			ExpiresAt: time.Now().Add(time.Hour),
		}
	}

	t.Run("rotates the token", func(t *testing.T) {
		f := newAuthFixture(ctrl)
		current := stored()

		f.tokenRepo.EXPECT().FindByHash(gomock.Any(), auth.HashRefreshToken(plain)).Return(current, nil)
		f.userRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		f.tokenRepo.EXPECT().Revoke(gomock.Any(), current.ID).Return(nil)
		f.tokenRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		out, err := f.svc.Refresh(context.Background(), plain, service.ClientMeta{})
		require.NoError(t, err)
		assert.NotEqual(t, plain, out.RefreshToken)
	})

	t.Run("reusing a rotated token revokes every session", func(t *testing.T) {
		f := newAuthFixture(ctrl)
		current := stored()
		current.Revoked = true

		f.tokenRepo.EXPECT().FindByHash(gomock.Any(), gomock.Any()).Return(current, nil)
		f.tokenRepo.EXPECT().RevokeAllForUser(gomock.Any(), user.ID).Return(nil)

		_, err := f.svc.Refresh(context.Background(), plain, service.ClientMeta{})
		assert.ErrorIs(t, err, domain.ErrInvalidRefreshToken)
	})

	t.Run("losing a concurrent rotation issues nothing", func(t *testing.T) {
		f := newAuthFixture(ctrl)
		current := stored()

		f.tokenRepo.EXPECT().FindByHash(gomock.Any(), gomock.Any()).Return(current, nil)
		f.userRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		f.tokenRepo.EXPECT().Revoke(gomock.Any(), current.ID).Return(domain.ErrInvalidRefreshToken)
		f.tokenRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		out, err := f.svc.Refresh(context.Background(), plain, service.ClientMeta{})
		assert.ErrorIs(t, err, domain.ErrInvalidRefreshToken)
		assert.Nil(t, out)
	})

	t.Run("expired token", func(t *testing.T) {
		f := newAuthFixture(ctrl)
		current := stored()
		current.ExpiresAt = time.Now().Add(-time.Minute)

		f.tokenRepo.EXPECT().FindByHash(gomock.Any(), gomock.Any()).Return(current, nil)

		_, err := f.svc.Refresh(context.Background(), plain, service.ClientMeta{})
		assert.ErrorIs(t, err, domain.ErrInvalidRefreshToken)
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newAuthFixture(ctrl)
		f.tokenRepo.EXPECT().FindByHash(gomock.Any(), gomock.Any()).Return(nil, domain.ErrRefreshTokenNotFound)

		_, err := f.svc.Refresh(context.Background(), plain, service.ClientMeta{})
		assert.ErrorIs(t, err, domain.ErrInvalidRefreshToken)
	})

	t.Run("missing token", func(t *testing.T) {
		f := newAuthFixture(ctrl)

		_, err := f.svc.Refresh(context.Background(), "", service.ClientMeta{})
		assert.ErrorIs(t, err, domain.ErrInvalidRefreshToken)
	})
}

func TestAuthLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAuthFixture(ctrl)
	id := uuid.New()

	f.tokenRepo.EXPECT().FindByHash(gomock.Any(), auth.HashRefreshToken("known")).Return(&model.RefreshToken{ID: id}, nil)
	f.tokenRepo.EXPECT().Revoke(gomock.Any(), id).Return(nil)
	require.NoError(t, f.svc.Logout(context.Background(), "known"))

	f.tokenRepo.EXPECT().FindByHash(gomock.Any(), auth.HashRefreshToken("unknown")).Return(nil, domain.ErrRefreshTokenNotFound)
	require.NoError(t, f.svc.Logout(context.Background(), "unknown"))

	revoked := uuid.New()
	f.tokenRepo.EXPECT().FindByHash(gomock.Any(), auth.HashRefreshToken("revoked")).Return(&model.RefreshToken{ID: revoked, Revoked: true}, nil)
	f.tokenRepo.EXPECT().Revoke(gomock.Any(), revoked).Return(domain.ErrInvalidRefreshToken)
	require.NoError(t, f.svc.Logout(context.Background(), "revoked"))

	require.NoError(t, f.svc.Logout(context.Background(), ""))
}
