package service_test

import (
	"context"
	"testing"

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

func TestPartCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := uuid.New()
	pump := &model.Asset{ID: uuid.New(), Name: "Pump", CompanyID: companyID}

	t.Run("links assets of the same company", func(t *testing.T) {
		partRepo := mocks.NewMockPartRepositoryIface(ctrl)
		assetRepo := mocks.NewMockAssetRepositoryIface(ctrl)
		svc := service.NewPartService(newTransactor(ctrl), partRepo, assetRepo)

		assetRepo.EXPECT().FindManyByCompany(gomock.Any(), companyID, []uuid.UUID{pump.ID}).Return([]*model.Asset{pump}, nil)
		partRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		partRepo.EXPECT().ReplaceAssets(gomock.Any(), gomock.Any(), []*model.Asset{pump}).Return(nil)

		part, err := svc.Create(context.Background(), companyID, service.PartInput{
			Name:            " Seal kit ",
			MinimumQuantity: 2,
			AssetIDs:        []string{pump.ID.String(), pump.ID.String()},
		})
		require.NoError(t, err)
		assert.Equal(t, "Seal kit", part.Name)
		assert.Equal(t, companyID, part.CompanyID)
	})

	t.Run("asset of another company", func(t *testing.T) {
		partRepo := mocks.NewMockPartRepositoryIface(ctrl)
		assetRepo := mocks.NewMockAssetRepositoryIface(ctrl)
		svc := service.NewPartService(newTransactor(ctrl), partRepo, assetRepo)
		foreign := uuid.New()

		assetRepo.EXPECT().FindManyByCompany(gomock.Any(), companyID, []uuid.UUID{foreign}).Return(nil, nil)

		_, err := svc.Create(context.Background(), companyID, service.PartInput{
			Name:     "Seal kit",
			AssetIDs: []string{foreign.String()},
		})
		assert.ErrorIs(t, err, domain.ErrAssetNotFound)
	})

	t.Run("invalid payload", func(t *testing.T) {
		svc := service.NewPartService(newTransactor(ctrl), mocks.NewMockPartRepositoryIface(ctrl), mocks.NewMockAssetRepositoryIface(ctrl))

		_, err := svc.Create(context.Background(), companyID, service.PartInput{MinimumQuantity: -1})
		assert.Equal(t, []string{
			"name is required",
			"minimumQuantity must be 0 or more",
		}, validationErrors(t, err))
	})
}

func TestAssetCreateRejectsForeignWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	assetRepo := mocks.NewMockAssetRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	svc := service.NewAssetService(assetRepo, userRepo)

	companyID, workerID := uuid.New(), uuid.New()
	userRepo.EXPECT().FindByCompany(gomock.Any(), companyID, workerID).Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), companyID, service.AssetInput{Name: "Boiler", WorkerID: workerID.String()})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Create(context.Background(), companyID, service.AssetInput{Name: "Boiler", PurchaseDate: "soon"})
	assert.Equal(t, []string{"purchaseDate is not a valid date"}, validationErrors(t, err))
}

func TestCompanyUpdateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	svc := service.NewCompanyService(companyRepo, userRepo)

	companyID := uuid.New()
	user := &model.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", PasswordHash: "old", CompanyID: companyID}

	userRepo.EXPECT().FindByCompany(gomock.Any(), companyID, user.ID).Return(user, nil)
	userRepo.EXPECT().Update(gomock.Any(), user).Return(nil)

	got, err := svc.UpdateUser(context.Background(), companyID, user.ID, service.UserUpdateInput{
		Email:    "Ada.L@Example.com",
		Password: "a much longer password",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "ada.l@example.com", got.Email)
	assert.NotEqual(t, "old", got.PasswordHash)

	ok, err := auth.NewPasswordHasher().Verify("a much longer password", got.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	companyRepo.EXPECT().FindByID(gomock.Any(), companyID).Return(&model.Company{ID: companyID, Name: "Old"}, nil)
	companyRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	company, err := svc.Rename(context.Background(), companyID, service.CompanyInput{Name: " New name "})
	require.NoError(t, err)
	assert.Equal(t, "New name", company.Name)
}
