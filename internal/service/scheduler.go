// internal/service/scheduler.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dangerclosesec/sarpa/internal/domain"
	"github.com/dangerclosesec/sarpa/internal/model"
	"github.com/dangerclosesec/sarpa/internal/repository"
	"github.com/google/uuid"
)

// SweepResult summarizes one pass over the preventive maintenance schedules.
type SweepResult struct {
	Scanned       int `json:"scanned"`
	Spawned       int `json:"spawned"`
	MarkedOverdue int `json:"markedOverdue"`
	Closed        int `json:"closed"`
	Failed        int `json:"failed"`
}

// MaintenanceScheduler periodically walks every open schedule, issues the work
// order for schedules that entered their lead-time window, flags overdue
// schedules and closes schedules that ran past their end date.
type MaintenanceScheduler struct {
	tx          repository.Transactor
	pmRepo      repository.PreventiveMaintenanceRepositoryIface
	woRepo      repository.WorkOrderRepositoryIface
	userRepo    repository.UserRepositoryIface
	notifier    Notifier
	interval    time.Duration
	batchSize   int
	dryRun      bool // If true, don't make changes, just log
	logger      *slog.Logger
	now         func() time.Time
	stopChan    chan struct{}
	stoppedChan chan struct{}
}

func NewMaintenanceScheduler(
	tx repository.Transactor,
	pmRepo repository.PreventiveMaintenanceRepositoryIface,
	woRepo repository.WorkOrderRepositoryIface,
	userRepo repository.UserRepositoryIface,
	notifier Notifier,
	interval time.Duration,
	logger *slog.Logger,
) *MaintenanceScheduler {
	if interval == 0 {
		interval = time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MaintenanceScheduler{
		tx:          tx,
		pmRepo:      pmRepo,
		woRepo:      woRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		interval:    interval,
		batchSize:   100,
		logger:      logger,
		now:         time.Now,
		stopChan:    make(chan struct{}),
		stoppedChan: make(chan struct{}),
	}
}

// SetBatchSize sets how many schedules are loaded per page.
func (s *MaintenanceScheduler) SetBatchSize(size int) {
	if size > 0 {
		s.batchSize = size
	}
}

// SetDryRun makes the scheduler log what it would do without writing.
func (s *MaintenanceScheduler) SetDryRun(dryRun bool) {
	s.dryRun = dryRun
}

// SetClock replaces the time source.
func (s *MaintenanceScheduler) SetClock(now func() time.Time) {
	s.now = now
}

// Start runs a sweep immediately and then on every tick until Stop.
func (s *MaintenanceScheduler) Start() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		defer close(s.stoppedChan)

		s.sweep()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stopChan:
				return
			}
		}
	}()
}

// Stop halts the scheduler and waits for an in-flight sweep to finish.
func (s *MaintenanceScheduler) Stop() {
	close(s.stopChan)
	<-s.stoppedChan
}

func (s *MaintenanceScheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if _, err := s.RunOnce(ctx); err != nil {
		s.logger.Error("maintenance sweep failed", "error", err)
	}
}

// RunOnce performs a single sweep. A failure on one schedule is logged and
// the sweep moves on.
func (s *MaintenanceScheduler) RunOnce(ctx context.Context) (SweepResult, error) {
	var result SweepResult
	today := model.NewDate(s.now())
	s.logger.Info("starting maintenance sweep", "today", today.String(), "dry_run", s.dryRun)

	afterID := uuid.Nil
	for {
		batch, err := s.pmRepo.FindSchedulable(ctx, afterID, s.batchSize)
		if err != nil {
			return result, fmt.Errorf("fetching schedules: %w", err)
		}
		if len(batch) == 0 {
			break
		}

		for _, pm := range batch {
			result.Scanned++
			if err := s.process(ctx, pm, today, &result); err != nil {
				result.Failed++
				s.logger.Error("failed to process schedule",
					"pm_id", pm.ID.String(),
					"company_id", pm.CompanyID.String(),
					"error", err,
				)
			}
		}
		afterID = batch[len(batch)-1].ID

		// Check if context is done between batches
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if len(batch) < s.batchSize {
			break
		}
	}

	s.logger.Info("completed maintenance sweep",
		"scanned", result.Scanned,
		"spawned", result.Spawned,
		"overdue", result.MarkedOverdue,
		"closed", result.Closed,
		"failed", result.Failed,
	)
	return result, nil
}

// sweepAction is what one sweep does to a schedule.
type sweepAction struct {
	close   bool
	spawn   *model.WorkOrder
	overdue bool
}

func (a sweepAction) empty() bool {
	return !a.close && a.spawn == nil && !a.overdue
}

// evaluate decides the sweep action for pm as of today without writing.
func (s *MaintenanceScheduler) evaluate(ctx context.Context, pm *model.PreventiveMaintenance, today model.Date) (sweepAction, error) {
	var act sweepAction
	if pm.AutoGenerated || pm.Status == model.PMStatusCompleted {
		return act, nil
	}
	if pm.EndDate != nil && pm.NextDueDate.After(*pm.EndDate) {
		act.close = true
		return act, nil
	}

	if !today.Before(GenerationDate(pm)) {
		outstanding, err := s.woRepo.CountOutstanding(ctx, pm.ID, pm.NextDueDate)
		if err != nil {
			return act, err
		}
		if outstanding == 0 {
			act.spawn = WorkOrderFromSchedule(pm)
		}
	}

	act.overdue = today.After(pm.NextDueDate) &&
		(pm.Status == model.PMStatusPending || pm.Status == model.PMStatusInProgress)
	return act, nil
}

// process evaluates the batch copy of pm first. When something needs to be
// written, the row is locked and evaluated again so an edit committed since
// the batch was read is never overwritten.
func (s *MaintenanceScheduler) process(ctx context.Context, pm *model.PreventiveMaintenance, today model.Date, result *SweepResult) error {
	act, err := s.evaluate(ctx, pm, today)
	if err != nil || act.empty() {
		return err
	}

	if s.dryRun {
		s.logger.Info("would update schedule (dry run)",
			"pm_id", pm.ID.String(),
			"next_due_date", pm.NextDueDate.String(),
			"close", act.close,
			"spawn_work_order", act.spawn != nil,
			"mark_overdue", act.overdue,
		)
		result.record(act)
		return nil
	}

	txCtx, tx, err := s.tx.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	current, err := s.pmRepo.FindForUpdate(txCtx, pm.ID)
	if err != nil {
		if errors.Is(err, domain.ErrPreventiveMaintenanceNotFound) {
			return nil
		}
		return err
	}
	act, err = s.evaluate(txCtx, current, today)
	if err != nil || act.empty() {
		return err
	}

	switch {
	case act.close:
		if err := s.pmRepo.UpdateStatus(txCtx, current.ID, model.PMStatusCompleted); err != nil {
			return fmt.Errorf("closing schedule: %w", err)
		}
	default:
		if act.spawn != nil {
			if err := s.woRepo.Create(txCtx, act.spawn); err != nil {
				return fmt.Errorf("creating work order: %w", err)
			}
		}
		if act.overdue {
			if err := s.pmRepo.UpdateStatus(txCtx, current.ID, model.PMStatusOverdue); err != nil {
				return fmt.Errorf("marking overdue: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	result.record(act)

	if act.spawn != nil {
		s.logger.Info("issued scheduled work order",
			"pm_id", current.ID.String(),
			"work_order_id", act.spawn.ID.String(),
			"due_date", current.NextDueDate.String(),
		)
		s.notifySpawned(ctx, act.spawn)
	}
	return nil
}

func (r *SweepResult) record(act sweepAction) {
	if act.close {
		r.Closed++
		return
	}
	if act.spawn != nil {
		r.Spawned++
	}
	if act.overdue {
		r.MarkedOverdue++
	}
}

func (s *MaintenanceScheduler) notifySpawned(ctx context.Context, wo *model.WorkOrder) {
	if wo.AssignedToID == nil {
		return
	}
	assignee, err := s.userRepo.FindByCompany(ctx, wo.CompanyID, *wo.AssignedToID)
	if err != nil {
		s.logger.Warn("could not load assignee for notification",
			"work_order_id", wo.ID.String(),
			"error", err,
		)
		return
	}
	notifyAssigned(ctx, s.notifier, wo, assignee)
}
