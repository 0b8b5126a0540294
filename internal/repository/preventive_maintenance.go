// internal/repository/preventive_maintenance.go
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

type PreventiveMaintenanceRepositoryIface interface {
	Create(ctx context.Context, pm *model.PreventiveMaintenance) error
	// FindByCompany loads the PM with its work orders, most recent first.
	FindByCompany(ctx context.Context, companyID, id uuid.UUID) (*model.PreventiveMaintenance, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.PreventiveMaintenance, error)
	Update(ctx context.Context, pm *model.PreventiveMaintenance) error
	Delete(ctx context.Context, companyID, id uuid.UUID) error
	// FindSchedulable pages through every non-completed, user-defined PM across tenants.
	FindSchedulable(ctx context.Context, afterID uuid.UUID, limit int) ([]*model.PreventiveMaintenance, error)
	// FindForUpdate reloads a PM and locks its row until the surrounding transaction ends.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*model.PreventiveMaintenance, error)
	// UpdateStatus writes only the status column.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.PMStatus) error
}

type PreventiveMaintenanceRepository struct {
	db *gorm.DB
}

func NewPreventiveMaintenanceRepository(db *gorm.DB) *PreventiveMaintenanceRepository {
	return &PreventiveMaintenanceRepository{db: db}
}

func (r *PreventiveMaintenanceRepository) Create(ctx context.Context, pm *model.PreventiveMaintenance) error {
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(pm).Error; err != nil {
		return fmt.Errorf("failed to create preventive maintenance: %w", err)
	}
	return nil
}

func (r *PreventiveMaintenanceRepository) FindByCompany(ctx context.Context, companyID, id uuid.UUID) (*model.PreventiveMaintenance, error) {
	var pm model.PreventiveMaintenance
	result := conn(ctx, r.db).
		Preload("Asset").
		Preload("AssignedTo").
		Preload("WorkOrders", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&pm, "id = ? AND company_id = ?", id, companyID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPreventiveMaintenanceNotFound
		}
		return nil, fmt.Errorf("failed to find preventive maintenance: %w", result.Error)
	}
	return &pm, nil
}

func (r *PreventiveMaintenanceRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.PreventiveMaintenance, error) {
	var pms []*model.PreventiveMaintenance
	result := conn(ctx, r.db).
		Preload("Asset").
		Preload("AssignedTo").
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&pms)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find preventive maintenances: %w", result.Error)
	}
	return pms, nil
}

func (r *PreventiveMaintenanceRepository) Update(ctx context.Context, pm *model.PreventiveMaintenance) error {
	if err := conn(ctx, r.db).Omit(clause.Associations).Save(pm).Error; err != nil {
		return fmt.Errorf("failed to update preventive maintenance: %w", err)
	}
	return nil
}

func (r *PreventiveMaintenanceRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := conn(ctx, r.db).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&model.PreventiveMaintenance{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete preventive maintenance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrPreventiveMaintenanceNotFound
	}
	return nil
}

func (r *PreventiveMaintenanceRepository) FindSchedulable(ctx context.Context, afterID uuid.UUID, limit int) ([]*model.PreventiveMaintenance, error) {
	var pms []*model.PreventiveMaintenance
	result := conn(ctx, r.db).
		Where("auto_generated = ? AND status <> ?", false, model.PMStatusCompleted).
		Where("id > ?", afterID).
		Order("id ASC").
		Limit(limit).
		Find(&pms)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find schedulable preventive maintenances: %w", result.Error)
	}
	return pms, nil
}

func (r *PreventiveMaintenanceRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*model.PreventiveMaintenance, error) {
	var pm model.PreventiveMaintenance
	result := conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&pm, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPreventiveMaintenanceNotFound
		}
		return nil, fmt.Errorf("failed to lock preventive maintenance: %w", result.Error)
	}
	return &pm, nil
}

func (r *PreventiveMaintenanceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.PMStatus) error {
	result := conn(ctx, r.db).
		Model(&model.PreventiveMaintenance{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update preventive maintenance status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrPreventiveMaintenanceNotFound
	}
	return nil
}
