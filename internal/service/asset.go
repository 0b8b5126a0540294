// internal/service/asset.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dangerclosesec/sarpa/internal/domain"
	"github.com/dangerclosesec/sarpa/internal/model"
	"github.com/dangerclosesec/sarpa/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type AssetInput struct {
	Name                   string   `json:"name" validate:"required,max=255"`
	Description            string   `json:"description"`
	Image                  string   `json:"image"`
	Model                  string   `json:"model"`
	SerialNumber           string   `json:"serialNumber"`
	Barcode                string   `json:"barcode"`
	PurchasePrice          *float64 `json:"purchasePrice" validate:"omitempty,gte=0"`
	PurchaseDate           string   `json:"purchaseDate"`
	ResidualValue          *float64 `json:"residualValue" validate:"omitempty,gte=0"`
	UsefulLife             *int     `json:"usefulLife" validate:"omitempty,gte=0"`
	UsefulLifeUnit         string   `json:"usefulLifeUnit" validate:"omitempty,oneof=day week month year"`
	PlacedInServiceDate    string   `json:"placedInServiceDate"`
	WarrantyExpirationDate string   `json:"warrantyExpirationDate"`
	AdditionalInformation  string   `json:"additionalInformation"`
	WorkerID               string   `json:"workerId" validate:"omitempty,uuid"`
}

type AssetService struct {
	assetRepo repository.AssetRepositoryIface
	userRepo  repository.UserRepositoryIface
	validate  *validator.Validate
}

func NewAssetService(assetRepo repository.AssetRepositoryIface, userRepo repository.UserRepositoryIface) *AssetService {
	return &AssetService{
		assetRepo: assetRepo,
		userRepo:  userRepo,
		validate:  newValidator(),
	}
}

// apply validates the input and copies it onto the asset.
func (s *AssetService) apply(ctx context.Context, companyID uuid.UUID, asset *model.Asset, input AssetInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Struct(input); err != nil {
		return toValidationError(err)
	}

	var errs []string
	dates := []struct {
		field string
		raw   string
		dst   **model.Date
	}{
		{"purchaseDate", input.PurchaseDate, &asset.PurchaseDate},
		{"placedInServiceDate", input.PlacedInServiceDate, &asset.PlacedInServiceDate},
		{"warrantyExpirationDate", input.WarrantyExpirationDate, &asset.WarrantyExpirationDate},
	}
	for _, d := range dates {
		raw := strings.TrimSpace(d.raw)
		if raw == "" {
			*d.dst = nil
			continue
		}
		parsed, err := model.ParseDate(raw)
		if err != nil {
			errs = append(errs, d.field+" is not a valid date")
			continue
		}
		*d.dst = &parsed
	}
	if len(errs) > 0 {
		return domain.NewValidationError(errs...)
	}

	workerID, _ := parseOptionalID(input.WorkerID)
	var worker *model.User
	if workerID != nil {
		w, err := s.userRepo.FindByCompany(ctx, companyID, *workerID)
		if err != nil {
			return err
		}
		worker = w
	}

	asset.Name = input.Name
	asset.Description = input.Description
	asset.Image = input.Image
	asset.Model = input.Model
	asset.SerialNumber = input.SerialNumber
	asset.Barcode = input.Barcode
	asset.PurchasePrice = input.PurchasePrice
	asset.ResidualValue = input.ResidualValue
	asset.UsefulLife = input.UsefulLife
	asset.UsefulLifeUnit = input.UsefulLifeUnit
	asset.AdditionalInformation = input.AdditionalInformation
	asset.WorkerID = workerID
	asset.Worker = worker
	asset.CompanyID = companyID
	return nil
}

func (s *AssetService) Create(ctx context.Context, companyID uuid.UUID, input AssetInput) (*model.Asset, error) {
	asset := &model.Asset{}
	if err := s.apply(ctx, companyID, asset, input); err != nil {
		return nil, err
	}
	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("creating asset: %w", err)
	}
	return asset, nil
}

func (s *AssetService) Get(ctx context.Context, companyID, assetID uuid.UUID) (*model.Asset, error) {
	return s.assetRepo.FindByCompany(ctx, companyID, assetID)
}

func (s *AssetService) List(ctx context.Context, companyID uuid.UUID) ([]*model.Asset, error) {
	return s.assetRepo.ListByCompany(ctx, companyID)
}

func (s *AssetService) Update(ctx context.Context, companyID, assetID uuid.UUID, input AssetInput) (*model.Asset, error) {
	asset, err := s.assetRepo.FindByCompany(ctx, companyID, assetID)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, companyID, asset, input); err != nil {
		return nil, err
	}
	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return nil, fmt.Errorf("updating asset: %w", err)
	}
	return asset, nil
}

func (s *AssetService) Delete(ctx context.Context, companyID, assetID uuid.UUID) error {
	return s.assetRepo.Delete(ctx, companyID, assetID)
}
