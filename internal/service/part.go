// internal/service/part.go
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

type PartInput struct {
	Name                  string   `json:"name" validate:"required,max=255"`
	PartNumber            string   `json:"partNumber"`
	Description           string   `json:"description"`
	ImageURL              string   `json:"imageUrl"`
	IsCritical            bool     `json:"isCritical"`
	IsNonStock            bool     `json:"isNonStock"`
	MinimumQuantity       int      `json:"minimumQuantity" validate:"gte=0"`
	AdditionalInformation string   `json:"additionalInformation"`
	AssetIDs              []string `json:"assetIds" validate:"omitempty,dive,uuid"`
}

type PartService struct {
	tx        repository.Transactor
	partRepo  repository.PartRepositoryIface
	assetRepo repository.AssetRepositoryIface
	validate  *validator.Validate
}

func NewPartService(tx repository.Transactor, partRepo repository.PartRepositoryIface, assetRepo repository.AssetRepositoryIface) *PartService {
	return &PartService{
		tx:        tx,
		partRepo:  partRepo,
		assetRepo: assetRepo,
		validate:  newValidator(),
	}
}

func (s *PartService) parse(input *PartInput) ([]uuid.UUID, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Struct(input); err != nil {
		return nil, toValidationError(err)
	}

	seen := make(map[uuid.UUID]struct{}, len(input.AssetIDs))
	ids := make([]uuid.UUID, 0, len(input.AssetIDs))
	for _, raw := range input.AssetIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, domain.NewValidationError("assetIds contains an invalid id")
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

// linkedAssets loads the referenced assets. Every id must belong to the company.
func (s *PartService) linkedAssets(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]*model.Asset, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	assets, err := s.assetRepo.FindManyByCompany(ctx, companyID, ids)
	if err != nil {
		return nil, err
	}
	if len(assets) != len(ids) {
		return nil, domain.ErrAssetNotFound
	}
	return assets, nil
}

func fillPart(part *model.Part, companyID uuid.UUID, input PartInput) {
	part.Name = input.Name
	part.PartNumber = input.PartNumber
	part.Description = input.Description
	part.ImageURL = input.ImageURL
	part.IsCritical = input.IsCritical
	part.IsNonStock = input.IsNonStock
	part.MinimumQuantity = input.MinimumQuantity
	part.AdditionalInformation = input.AdditionalInformation
	part.CompanyID = companyID
}

func (s *PartService) Create(ctx context.Context, companyID uuid.UUID, input PartInput) (*model.Part, error) {
	ids, err := s.parse(&input)
	if err != nil {
		return nil, err
	}
	assets, err := s.linkedAssets(ctx, companyID, ids)
	if err != nil {
		return nil, err
	}

	txCtx, tx, err := s.tx.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	part := &model.Part{}
	fillPart(part, companyID, input)
	if err := s.partRepo.Create(txCtx, part); err != nil {
		return nil, fmt.Errorf("creating part: %w", err)
	}
	if len(assets) > 0 {
		if err := s.partRepo.ReplaceAssets(txCtx, part, assets); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing part: %w", err)
	}
	return part, nil
}

func (s *PartService) Get(ctx context.Context, companyID, partID uuid.UUID) (*model.Part, error) {
	return s.partRepo.FindByCompany(ctx, companyID, partID)
}

func (s *PartService) List(ctx context.Context, companyID uuid.UUID) ([]*model.Part, error) {
	return s.partRepo.ListByCompany(ctx, companyID)
}

// Update replaces the part's fields and its asset links.
func (s *PartService) Update(ctx context.Context, companyID, partID uuid.UUID, input PartInput) (*model.Part, error) {
	ids, err := s.parse(&input)
	if err != nil {
		return nil, err
	}
	assets, err := s.linkedAssets(ctx, companyID, ids)
	if err != nil {
		return nil, err
	}

	txCtx, tx, err := s.tx.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	part, err := s.partRepo.FindByCompany(txCtx, companyID, partID)
	if err != nil {
		return nil, err
	}
	fillPart(part, companyID, input)
	if err := s.partRepo.Update(txCtx, part); err != nil {
		return nil, fmt.Errorf("updating part: %w", err)
	}
	if err := s.partRepo.ReplaceAssets(txCtx, part, assets); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing part: %w", err)
	}
	return part, nil
}

func (s *PartService) Delete(ctx context.Context, companyID, partID uuid.UUID) error {
	return s.partRepo.Delete(ctx, companyID, partID)
}
