// internal/repository/asset.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/sarpa/internal/domain"
	"github.com/dangerclosesec/sarpa/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssetRepositoryIface interface {
	Create(ctx context.Context, asset *model.Asset) error
	FindByCompany(ctx context.Context, companyID, id uuid.UUID) (*model.Asset, error)
	FindManyByCompany(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]*model.Asset, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Asset, error)
	Update(ctx context.Context, asset *model.Asset) error
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(ctx context.Context, asset *model.Asset) error {
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(asset).Error; err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

func (r *AssetRepository) FindByCompany(ctx context.Context, companyID, id uuid.UUID) (*model.Asset, error) {
	var asset model.Asset
	result := conn(ctx, r.db).
		Preload("Worker").
		Preload("Parts").
		First(&asset, "id = ? AND company_id = ?", id, companyID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to find asset: %w", result.Error)
	}
	return &asset, nil
}

// FindManyByCompany returns the assets among ids that belong to the company.
func (r *AssetRepository) FindManyByCompany(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]*model.Asset, error) {
	var assets []*model.Asset
	if len(ids) == 0 {
		return assets, nil
	}
	result := conn(ctx, r.db).
		Where("company_id = ? AND id IN ?", companyID, ids).
		Find(&assets)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find assets: %w", result.Error)
	}
	return assets, nil
}

func (r *AssetRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Asset, error) {
	var assets []*model.Asset
	result := conn(ctx, r.db).
		Preload("Worker").
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&assets)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find assets: %w", result.Error)
	}
	return assets, nil
}

func (r *AssetRepository) Update(ctx context.Context, asset *model.Asset) error {
	if err := conn(ctx, r.db).Omit(clause.Associations).Save(asset).Error; err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	return nil
}

func (r *AssetRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	db := conn(ctx, r.db)
	result := db.Where("id = ? AND company_id = ?", id, companyID).Delete(&model.Asset{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAssetNotFound
	}
	if err := db.Exec("DELETE FROM asset_parts WHERE asset_id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to detach asset parts: %w", err)
	}
	return nil
}
