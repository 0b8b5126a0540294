// internal/service/work_order.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dangerclosesec/sarpa/internal/domain"
	"github.com/dangerclosesec/sarpa/internal/model"
	"github.com/dangerclosesec/sarpa/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// WorkOrderInput is the create and update payload of a work order. Updates
// replace the record: an omitted assignee or asset clears it.
type WorkOrderInput struct {
	Title                   string `json:"title" validate:"required,max=255"`
	Description             string `json:"description"`
	Status                  string `json:"status" validate:"omitempty,oneof=pending inProgress completed cancelled"`
	Priority                string `json:"priority" validate:"omitempty,oneof=none low medium high"`
	DueDate                 string `json:"dueDate"`
	AssetID                 string `json:"assetId" validate:"omitempty,uuid"`
	AssignedToID            string `json:"assignedToId" validate:"omitempty,uuid"`
	PreventiveMaintenanceID string `json:"preventiveMaintenanceId" validate:"omitempty,uuid"`
}

type workOrderFields struct {
	title        string
	description  string
	status       model.WorkOrderStatus
	priority     model.WorkOrderPriority
	dueDate      *model.Date
	assetID      *uuid.UUID
	assignedToID *uuid.UUID
	pmID         *uuid.UUID
}

// WorkOrderListInput filters List. Empty fields match everything.
type WorkOrderListInput struct {
	Status                  string `json:"status" validate:"omitempty,oneof=pending inProgress completed cancelled"`
	PreventiveMaintenanceID string `json:"preventiveMaintenanceId" validate:"omitempty,uuid"`
}

type WorkOrderService struct {
	tx       repository.Transactor
	woRepo   repository.WorkOrderRepositoryIface
	pmRepo   repository.PreventiveMaintenanceRepositoryIface
	refs     references
	notifier Notifier
	validate *validator.Validate
	now      func() time.Time
}

func NewWorkOrderService(
	tx repository.Transactor,
	woRepo repository.WorkOrderRepositoryIface,
	pmRepo repository.PreventiveMaintenanceRepositoryIface,
	assetRepo repository.AssetRepositoryIface,
	userRepo repository.UserRepositoryIface,
	notifier Notifier,
) *WorkOrderService {
	return &WorkOrderService{
		tx:       tx,
		woRepo:   woRepo,
		pmRepo:   pmRepo,
		refs:     references{assets: assetRepo, users: userRepo},
		notifier: notifier,
		validate: newValidator(),
		now:      time.Now,
	}
}

// SetClock replaces the time source.
func (s *WorkOrderService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *WorkOrderService) parse(input WorkOrderInput) (*workOrderFields, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := s.validate.Struct(input); err != nil {
		return nil, toValidationError(err)
	}

	f := &workOrderFields{
		title:       input.Title,
		description: input.Description,
		status:      model.WorkOrderStatus(input.Status),
		priority:    model.WorkOrderPriority(input.Priority),
	}
	if raw := strings.TrimSpace(input.DueDate); raw != "" {
		due, err := model.ParseDate(raw)
		if err != nil {
			return nil, domain.NewValidationError("dueDate is not a valid date")
		}
		f.dueDate = &due
	}
	// Formats were checked by the validator above.
	f.assetID, _ = parseOptionalID(input.AssetID)
	f.assignedToID, _ = parseOptionalID(input.AssignedToID)
	f.pmID, _ = parseOptionalID(input.PreventiveMaintenanceID)
	return f, nil
}

// Create issues a standalone work order. Without a preventive maintenance id
// a one-off placeholder schedule is created to own it.
func (s *WorkOrderService) Create(ctx context.Context, companyID, userID uuid.UUID, input WorkOrderInput) (*model.WorkOrder, error) {
	f, err := s.parse(input)
	if err != nil {
		return nil, err
	}
	if f.status == "" {
		f.status = model.WorkOrderPending
	}
	if f.priority == "" {
		f.priority = model.PriorityMedium
	}

	asset, assignee, err := s.refs.resolve(ctx, companyID, f.assetID, f.assignedToID)
	if err != nil {
		return nil, err
	}

	txCtx, tx, err := s.tx.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := s.now()
	var pm *model.PreventiveMaintenance
	if f.pmID != nil {
		if pm, err = s.pmRepo.FindByCompany(txCtx, companyID, *f.pmID); err != nil {
			return nil, err
		}
	} else {
		pm = placeholderSchedule(f, companyID, userID, model.NewDate(now))
		if err := s.pmRepo.Create(txCtx, pm); err != nil {
			return nil, fmt.Errorf("creating placeholder preventive maintenance: %w", err)
		}
	}
	pmID := pm.ID

	wo := &model.WorkOrder{
		Title:                   f.title,
		Description:             f.description,
		Status:                  f.status,
		Priority:                f.priority,
		DueDate:                 f.dueDate,
		PreventiveMaintenanceID: &pmID,
		AssetID:                 f.assetID,
		AssignedToID:            f.assignedToID,
		CompanyID:               companyID,
	}
	if wo.Status == model.WorkOrderCompleted {
		wo.CompletedAt = &now
	}

	if err := s.woRepo.Create(txCtx, wo); err != nil {
		return nil, fmt.Errorf("creating work order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing work order: %w", err)
	}

	pm.WorkOrders = nil
	wo.PreventiveMaintenance, wo.Asset, wo.AssignedTo = pm, asset, assignee
	notifyAssigned(ctx, s.notifier, wo, assignee)

	return wo, nil
}

func placeholderSchedule(f *workOrderFields, companyID, userID uuid.UUID, today model.Date) *model.PreventiveMaintenance {
	priority := f.priority
	return &model.PreventiveMaintenance{
		Title:             "Work order: " + f.title,
		Description:       f.description,
		ScheduleType:      model.ScheduleRegularInterval,
		Frequency:         1,
		TimeUnit:          model.UnitDay,
		StartDate:         today,
		NextDueDate:       today,
		Status:            model.PMStatusPending,
		AutoGenerated:     true,
		WorkOrderTitle:    f.title,
		WorkOrderPriority: &priority,
		AssetID:           cloneID(f.assetID),
		AssignedToID:      cloneID(f.assignedToID),
		CreatedByID:       &userID,
		CompanyID:         companyID,
	}
}

// Update replaces the work order's fields. Status changes flow into the owning
// schedule: starting work marks it in progress, while completing or cancelling
// the current occurrence advances its due date.
func (s *WorkOrderService) Update(ctx context.Context, companyID, workOrderID uuid.UUID, input WorkOrderInput) (*model.WorkOrder, error) {
	f, err := s.parse(input)
	if err != nil {
		return nil, err
	}

	asset, assignee, err := s.refs.resolve(ctx, companyID, f.assetID, f.assignedToID)
	if err != nil {
		return nil, err
	}

	txCtx, tx, err := s.tx.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	wo, err := s.woRepo.FindByCompany(txCtx, companyID, workOrderID)
	if err != nil {
		return nil, err
	}

	previousStatus := wo.Status
	previousAssignee := cloneID(wo.AssignedToID)

	wo.Title = f.title
	wo.Description = f.description
	if f.status != "" {
		wo.Status = f.status
	}
	if f.priority != "" {
		wo.Priority = f.priority
	}
	if f.dueDate != nil {
		wo.DueDate = f.dueDate
	}
	wo.AssetID = f.assetID
	wo.AssignedToID = f.assignedToID

	if wo.Status != previousStatus {
		if err := s.transition(txCtx, wo, previousStatus); err != nil {
			return nil, err
		}
	}

	if err := s.woRepo.Update(txCtx, wo); err != nil {
		return nil, fmt.Errorf("updating work order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing work order: %w", err)
	}

	wo.Asset, wo.AssignedTo = asset, assignee
	if assignee != nil && !sameID(previousAssignee, wo.AssignedToID) {
		notifyAssigned(ctx, s.notifier, wo, assignee)
	}

	return wo, nil
}

// transition applies the side effects of a status change to the work order
// and its schedule.
func (s *WorkOrderService) transition(ctx context.Context, wo *model.WorkOrder, from model.WorkOrderStatus) error {
	now := s.now()

	if from == model.WorkOrderCompleted {
		wo.CompletedAt = nil
	}

	pm := wo.PreventiveMaintenance
	if pm == nil {
		if wo.Status == model.WorkOrderCompleted {
			wo.CompletedAt = &now
		}
		return nil
	}

	switch wo.Status {
	case model.WorkOrderCompleted:
		wo.CompletedAt = &now
		pm.LastCompletedAt = &now
		if pm.AutoGenerated {
			pm.Status = model.PMStatusCompleted
		} else {
			AdvanceSchedule(pm, model.NewDate(now))
		}
	case model.WorkOrderInProgress:
		if pm.Status == model.PMStatusCompleted {
			return nil
		}
		pm.Status = model.PMStatusInProgress
	case model.WorkOrderCancelled:
		switch {
		case pm.AutoGenerated:
			pm.Status = model.PMStatusCompleted
		case wo.DueDate != nil && !wo.DueDate.Before(pm.NextDueDate):
			// The current occurrence is skipped.
			AdvanceSchedule(pm, model.NewDate(now))
		default:
			return nil
		}
	default:
		return nil
	}

	if err := s.pmRepo.Update(ctx, pm); err != nil {
		return fmt.Errorf("updating preventive maintenance: %w", err)
	}
	return nil
}

func (s *WorkOrderService) Get(ctx context.Context, companyID, workOrderID uuid.UUID) (*model.WorkOrder, error) {
	return s.woRepo.FindByCompany(ctx, companyID, workOrderID)
}

func (s *WorkOrderService) List(ctx context.Context, companyID uuid.UUID, input WorkOrderListInput) ([]*model.WorkOrder, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, toValidationError(err)
	}

	var filter repository.WorkOrderFilter
	if input.Status != "" {
		status := model.WorkOrderStatus(input.Status)
		filter.Status = &status
	}
	filter.PreventiveMaintenanceID, _ = parseOptionalID(input.PreventiveMaintenanceID)

	return s.woRepo.ListByCompany(ctx, companyID, filter)
}

func (s *WorkOrderService) Delete(ctx context.Context, companyID, workOrderID uuid.UUID) error {
	return s.woRepo.Delete(ctx, companyID, workOrderID)
}
