// internal/repository/work_order.go
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

// WorkOrderFilter narrows ListByCompany. Nil fields are ignored.
type WorkOrderFilter struct {
	Status                  *model.WorkOrderStatus
	PreventiveMaintenanceID *uuid.UUID
}

type WorkOrderRepositoryIface interface {
	Create(ctx context.Context, wo *model.WorkOrder) error
	FindByCompany(ctx context.Context, companyID, id uuid.UUID) (*model.WorkOrder, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, filter WorkOrderFilter) ([]*model.WorkOrder, error)
	Update(ctx context.Context, wo *model.WorkOrder) error
	Delete(ctx context.Context, companyID, id uuid.UUID) error
	CountOutstanding(ctx context.Context, pmID uuid.UUID, dueDate model.Date) (int64, error)
	DeleteByPM(ctx context.Context, companyID, pmID uuid.UUID) error
}

type WorkOrderRepository struct {
	db *gorm.DB
}

func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

func (r *WorkOrderRepository) Create(ctx context.Context, wo *model.WorkOrder) error {
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(wo).Error; err != nil {
		return fmt.Errorf("failed to create work order: %w", err)
	}
	return nil
}

func (r *WorkOrderRepository) FindByCompany(ctx context.Context, companyID, id uuid.UUID) (*model.WorkOrder, error) {
	var wo model.WorkOrder
	result := conn(ctx, r.db).
		Preload("PreventiveMaintenance").
		Preload("Asset").
		Preload("AssignedTo").
		First(&wo, "id = ? AND company_id = ?", id, companyID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWorkOrderNotFound
		}
		return nil, fmt.Errorf("failed to find work order: %w", result.Error)
	}
	return &wo, nil
}

func (r *WorkOrderRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, filter WorkOrderFilter) ([]*model.WorkOrder, error) {
	var wos []*model.WorkOrder
	q := conn(ctx, r.db).
		Preload("Asset").
		Preload("AssignedTo").
		Where("company_id = ?", companyID)
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.PreventiveMaintenanceID != nil {
		q = q.Where("preventive_maintenance_id = ?", *filter.PreventiveMaintenanceID)
	}
	if err := q.Order("created_at DESC").Find(&wos).Error; err != nil {
		return nil, fmt.Errorf("failed to find work orders: %w", err)
	}
	return wos, nil
}

func (r *WorkOrderRepository) Update(ctx context.Context, wo *model.WorkOrder) error {
	if err := conn(ctx, r.db).Omit(clause.Associations).Save(wo).Error; err != nil {
		return fmt.Errorf("failed to update work order: %w", err)
	}
	return nil
}

func (r *WorkOrderRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := conn(ctx, r.db).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&model.WorkOrder{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete work order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrWorkOrderNotFound
	}
	return nil
}

// CountOutstanding counts the PM's open work orders together with any work
// order already issued for dueDate that was not cancelled.
func (r *WorkOrderRepository) CountOutstanding(ctx context.Context, pmID uuid.UUID, dueDate model.Date) (int64, error) {
	var count int64
	result := conn(ctx, r.db).
		Model(&model.WorkOrder{}).
		Where("preventive_maintenance_id = ?", pmID).
		Where("(status IN ? OR (due_date = ? AND status <> ?))",
			[]model.WorkOrderStatus{model.WorkOrderPending, model.WorkOrderInProgress}, dueDate, model.WorkOrderCancelled).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count outstanding work orders: %w", result.Error)
	}
	return count, nil
}

func (r *WorkOrderRepository) DeleteByPM(ctx context.Context, companyID, pmID uuid.UUID) error {
	result := conn(ctx, r.db).
		Where("preventive_maintenance_id = ? AND company_id = ?", pmID, companyID).
		Delete(&model.WorkOrder{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete work orders: %w", result.Error)
	}
	return nil
}
