// internal/service/preventive_maintenance.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/sarpa/internal/model"
	"github.com/dangerclosesec/sarpa/internal/repository"
	"github.com/google/uuid"
)

type PreventiveMaintenanceService struct {
	tx       repository.Transactor
	pmRepo   repository.PreventiveMaintenanceRepositoryIface
	woRepo   repository.WorkOrderRepositoryIface
	refs     references
	notifier Notifier
	now      func() time.Time
}

func NewPreventiveMaintenanceService(
	tx repository.Transactor,
	pmRepo repository.PreventiveMaintenanceRepositoryIface,
	woRepo repository.WorkOrderRepositoryIface,
	assetRepo repository.AssetRepositoryIface,
	userRepo repository.UserRepositoryIface,
	notifier Notifier,
) *PreventiveMaintenanceService {
	return &PreventiveMaintenanceService{
		tx:       tx,
		pmRepo:   pmRepo,
		woRepo:   woRepo,
		refs:     references{assets: assetRepo, users: userRepo},
		notifier: notifier,
		now:      time.Now,
	}
}

// Create validates the payload, stores the schedule and, when asked to,
// issues its first work order in the same transaction.
func (s *PreventiveMaintenanceService) Create(ctx context.Context, companyID, userID uuid.UUID, input PMInput) (*model.PreventiveMaintenance, error) {
	sched, err := input.Validate()
	if err != nil {
		return nil, err
	}

	asset, assignee, err := s.refs.resolve(ctx, companyID, sched.AssetID, sched.AssignedToID)
	if err != nil {
		return nil, err
	}

	txCtx, tx, err := s.tx.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	pm := &model.PreventiveMaintenance{
		Status:      model.PMStatusPending,
		CreatedByID: &userID,
		CompanyID:   companyID,
	}
	applySchedule(pm, sched)

	if err := s.pmRepo.Create(txCtx, pm); err != nil {
		return nil, fmt.Errorf("creating preventive maintenance: %w", err)
	}

	var wo *model.WorkOrder
	if sched.CreateWorkOrderNow && sched.WorkOrderTitle != "" {
		wo = WorkOrderFromSchedule(pm)
		if err := s.woRepo.Create(txCtx, wo); err != nil {
			return nil, fmt.Errorf("creating work order: %w", err)
		}
		pm.WorkOrders = []model.WorkOrder{*wo}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing preventive maintenance: %w", err)
	}

	pm.Asset, pm.AssignedTo = asset, assignee
	notifyAssigned(ctx, s.notifier, wo, assignee)

	return pm, nil
}

// Update overwrites the schedule and propagates the work-order template to the
// most recently created work order. When the PM has no work order yet, one is
// issued only if the payload asks for it.
func (s *PreventiveMaintenanceService) Update(ctx context.Context, companyID, pmID uuid.UUID, input PMInput) (*model.PreventiveMaintenance, error) {
	sched, err := input.Validate()
	if err != nil {
		return nil, err
	}

	asset, assignee, err := s.refs.resolve(ctx, companyID, sched.AssetID, sched.AssignedToID)
	if err != nil {
		return nil, err
	}

	txCtx, tx, err := s.tx.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	pm, err := s.pmRepo.FindByCompany(txCtx, companyID, pmID)
	if err != nil {
		return nil, err
	}

	applySchedule(pm, sched)
	today := model.NewDate(s.now())
	if pm.Status == model.PMStatusOverdue && !pm.NextDueDate.Before(today) {
		pm.Status = model.PMStatusPending
	}

	if err := s.pmRepo.Update(txCtx, pm); err != nil {
		return nil, fmt.Errorf("updating preventive maintenance: %w", err)
	}

	var notify *model.WorkOrder
	switch {
	case len(pm.WorkOrders) > 0:
		current := &pm.WorkOrders[0]
		previousAssignee := cloneID(current.AssignedToID)
		applyTemplate(current, sched)
		if err := s.woRepo.Update(txCtx, current); err != nil {
			return nil, fmt.Errorf("updating work order: %w", err)
		}
		if current.AssignedToID != nil && !sameID(previousAssignee, current.AssignedToID) {
			notify = current
		}
	case sched.CreateWorkOrderNow && sched.WorkOrderTitle != "":
		wo := WorkOrderFromSchedule(pm)
		if err := s.woRepo.Create(txCtx, wo); err != nil {
			return nil, fmt.Errorf("creating work order: %w", err)
		}
		pm.WorkOrders = []model.WorkOrder{*wo}
		notify = wo
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing preventive maintenance: %w", err)
	}

	pm.Asset, pm.AssignedTo = asset, assignee
	if notify != nil && assignee != nil && sameID(notify.AssignedToID, &assignee.ID) {
		notifyAssigned(ctx, s.notifier, notify, assignee)
	}

	return pm, nil
}

// Get returns the PM with its work orders, most recent first.
func (s *PreventiveMaintenanceService) Get(ctx context.Context, companyID, pmID uuid.UUID) (*model.PreventiveMaintenance, error) {
	return s.pmRepo.FindByCompany(ctx, companyID, pmID)
}

func (s *PreventiveMaintenanceService) List(ctx context.Context, companyID uuid.UUID) ([]*model.PreventiveMaintenance, error) {
	return s.pmRepo.ListByCompany(ctx, companyID)
}

// Delete removes the PM together with its work orders.
func (s *PreventiveMaintenanceService) Delete(ctx context.Context, companyID, pmID uuid.UUID) error {
	txCtx, tx, err := s.tx.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.woRepo.DeleteByPM(txCtx, companyID, pmID); err != nil {
		return err
	}
	if err := s.pmRepo.Delete(txCtx, companyID, pmID); err != nil {
		return err
	}

	return tx.Commit()
}

func applySchedule(pm *model.PreventiveMaintenance, sched *PMSchedule) {
	pm.Title = sched.Title
	pm.Description = sched.Description
	pm.ScheduleType = sched.ScheduleType
	pm.Frequency = sched.Frequency
	pm.TimeUnit = sched.TimeUnit
	pm.CreateWOsDaysBeforeDue = sched.CreateWOsDaysBeforeDue
	pm.StartDate = sched.StartDate
	pm.EndDate = sched.EndDate
	pm.NextDueDate = sched.NextDueDate
	pm.AssetID = cloneID(sched.AssetID)
	pm.AssignedToID = cloneID(sched.AssignedToID)
	pm.WorkOrderTitle = sched.WorkOrderTitle
	pm.WorkOrderDescription = sched.WorkOrderDescription
	pm.WorkOrderPriority = sched.WorkOrderPriority
}

// applyTemplate copies the template onto an existing work order. An empty
// title keeps the current one; the description is always written through so
// it can be cleared. Status and due date stay as they are.
func applyTemplate(wo *model.WorkOrder, sched *PMSchedule) {
	if sched.WorkOrderTitle != "" {
		wo.Title = sched.WorkOrderTitle
	}
	wo.Description = sched.WorkOrderDescription
	if sched.WorkOrderPriority != nil {
		wo.Priority = *sched.WorkOrderPriority
	}
	if sched.AssignedToID != nil {
		wo.AssignedToID = cloneID(sched.AssignedToID)
	}
	if sched.AssetID != nil {
		wo.AssetID = cloneID(sched.AssetID)
	}
}

// WorkOrderFromSchedule builds the pending work order for the PM's current
// due date from its template fields.
func WorkOrderFromSchedule(pm *model.PreventiveMaintenance) *model.WorkOrder {
	title := pm.WorkOrderTitle
	if title == "" {
		title = pm.Title
	}
	description := pm.WorkOrderDescription
	if description == "" {
		description = pm.Description
	}
	priority := model.PriorityMedium
	if pm.WorkOrderPriority != nil {
		priority = *pm.WorkOrderPriority
	}
	pmID := pm.ID

	return &model.WorkOrder{
		Title:                   title,
		Description:             description,
		Status:                  model.WorkOrderPending,
		Priority:                priority,
		DueDate:                 pm.NextDueDate.Ptr(),
		PreventiveMaintenanceID: &pmID,
		AssetID:                 cloneID(pm.AssetID),
		AssignedToID:            cloneID(pm.AssignedToID),
		CompanyID:               pm.CompanyID,
	}
}
