// internal/repository/part.go
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

type PartRepositoryIface interface {
	Create(ctx context.Context, part *model.Part) error
	FindByCompany(ctx context.Context, companyID, id uuid.UUID) (*model.Part, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Part, error)
	Update(ctx context.Context, part *model.Part) error
	ReplaceAssets(ctx context.Context, part *model.Part, assets []*model.Asset) error
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

type PartRepository struct {
	db *gorm.DB
}

func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

func (r *PartRepository) Create(ctx context.Context, part *model.Part) error {
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(part).Error; err != nil {
		return fmt.Errorf("failed to create part: %w", err)
	}
	return nil
}

func (r *PartRepository) FindByCompany(ctx context.Context, companyID, id uuid.UUID) (*model.Part, error) {
	var part model.Part
	result := conn(ctx, r.db).
		Preload("Assets").
		First(&part, "id = ? AND company_id = ?", id, companyID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPartNotFound
		}
		return nil, fmt.Errorf("failed to find part: %w", result.Error)
	}
	return &part, nil
}

func (r *PartRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Part, error) {
	var parts []*model.Part
	result := conn(ctx, r.db).
		Preload("Assets").
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&parts)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find parts: %w", result.Error)
	}
	return parts, nil
}

func (r *PartRepository) Update(ctx context.Context, part *model.Part) error {
	if err := conn(ctx, r.db).Omit(clause.Associations).Save(part).Error; err != nil {
		return fmt.Errorf("failed to update part: %w", err)
	}
	return nil
}

// ReplaceAssets swaps the part's asset links for the given set.
func (r *PartRepository) ReplaceAssets(ctx context.Context, part *model.Part, assets []*model.Asset) error {
	links := make([]model.Asset, 0, len(assets))
	for _, a := range assets {
		links = append(links, *a)
	}
	if err := conn(ctx, r.db).Model(part).Omit("Assets.*").Association("Assets").Replace(links); err != nil {
		return fmt.Errorf("failed to replace part assets: %w", err)
	}
	part.Assets = links
	return nil
}

func (r *PartRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	db := conn(ctx, r.db)
	result := db.Where("id = ? AND company_id = ?", id, companyID).Delete(&model.Part{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete part: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrPartNotFound
	}
	if err := db.Exec("DELETE FROM asset_parts WHERE part_id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to detach part assets: %w", err)
	}
	return nil
}
