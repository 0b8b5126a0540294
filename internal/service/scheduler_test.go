package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dangerclosesec/sarpa/internal/domain"
	"github.com/dangerclosesec/sarpa/internal/mocks"
	"github.com/dangerclosesec/sarpa/internal/model"
	"github.com/dangerclosesec/sarpa/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type schedulerFixture struct {
	pmRepo    *mocks.MockPreventiveMaintenanceRepositoryIface
	woRepo    *mocks.MockWorkOrderRepositoryIface
	userRepo  *mocks.MockUserRepositoryIface
	notifier  *mocks.MockNotifier
	scheduler *service.MaintenanceScheduler
}

func newSchedulerFixture(ctrl *gomock.Controller, today model.Date) *schedulerFixture {
	f := &schedulerFixture{
		pmRepo:   mocks.NewMockPreventiveMaintenanceRepositoryIface(ctrl),
		woRepo:   mocks.NewMockWorkOrderRepositoryIface(ctrl),
		userRepo: mocks.NewMockUserRepositoryIface(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.scheduler = service.NewMaintenanceScheduler(newTransactor(ctrl), f.pmRepo, f.woRepo, f.userRepo, f.notifier, time.Hour, logger)
	f.scheduler.SetClock(func() time.Time { return today.Add(9 * time.Hour) })
	return f
}

func schedule(due model.Date, lead int) *model.PreventiveMaintenance {
	pm := &model.PreventiveMaintenance{
		ID:           uuid.New(),
		Title:        "Scheduled inspection",
		ScheduleType: model.ScheduleRegularInterval,
		Frequency:    1,
		TimeUnit:     model.UnitWeek,
		StartDate:    due.AddDays(-30),
		NextDueDate:  due,
		Status:       model.PMStatusPending,
		CompanyID:    uuid.New(),
	}
	if lead > 0 {
		pm.CreateWOsDaysBeforeDue = &lead
	}
	return pm
}

// reloaded returns a fresh copy of pm, as FindForUpdate would.
func reloaded(pm *model.PreventiveMaintenance) *model.PreventiveMaintenance {
	cp := *pm
	return &cp
}

func TestMaintenanceSchedulerRunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	today := model.DateOf(2024, 3, 10)
	f := newSchedulerFixture(ctrl, today)
	f.scheduler.SetBatchSize(3)

	assignee := &model.User{ID: uuid.New(), Name: "Tech"}

	upcoming := schedule(model.DateOf(2024, 3, 12), 3)
	upcoming.AssignedToID = &assignee.ID
	upcoming.WorkOrderTitle = "Weekly inspection"

	later := schedule(model.DateOf(2024, 3, 20), 0)

	late := schedule(model.DateOf(2024, 3, 5), 0)

	end := model.DateOf(2024, 3, 1)
	expired := schedule(model.DateOf(2024, 3, 4), 0)
	expired.EndDate = &end

	broken := schedule(model.DateOf(2024, 3, 10), 0)

	gomock.InOrder(
		f.pmRepo.EXPECT().FindSchedulable(gomock.Any(), uuid.Nil, 3).
			Return([]*model.PreventiveMaintenance{upcoming, later, late}, nil),
		f.pmRepo.EXPECT().FindSchedulable(gomock.Any(), late.ID, 3).
			Return([]*model.PreventiveMaintenance{expired, broken}, nil),
	)

	// upcoming: inside its lead window with nothing issued yet
	f.woRepo.EXPECT().CountOutstanding(gomock.Any(), upcoming.ID, upcoming.NextDueDate).Return(int64(0), nil).Times(2)
	f.pmRepo.EXPECT().FindForUpdate(gomock.Any(), upcoming.ID).Return(reloaded(upcoming), nil)
	f.woRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, wo *model.WorkOrder) error {
			assert.Equal(t, "Weekly inspection", wo.Title)
			assert.Equal(t, &upcoming.ID, wo.PreventiveMaintenanceID)
			assert.Equal(t, model.DateOf(2024, 3, 12), *wo.DueDate)
			assert.Equal(t, model.WorkOrderPending, wo.Status)
			wo.ID = uuid.New()
			return nil
		},
	)
	f.userRepo.EXPECT().FindByCompany(gomock.Any(), upcoming.CompanyID, assignee.ID).Return(assignee, nil)
	f.notifier.EXPECT().WorkOrderAssigned(gomock.Any(), gomock.Any(), assignee).Return(nil)

	// late: its work order already exists, only the status changes
	f.woRepo.EXPECT().CountOutstanding(gomock.Any(), late.ID, late.NextDueDate).Return(int64(1), nil).Times(2)
	f.pmRepo.EXPECT().FindForUpdate(gomock.Any(), late.ID).Return(reloaded(late), nil)
	f.pmRepo.EXPECT().UpdateStatus(gomock.Any(), late.ID, model.PMStatusOverdue).Return(nil)

	// expired: ran past its end date
	f.pmRepo.EXPECT().FindForUpdate(gomock.Any(), expired.ID).Return(reloaded(expired), nil)
	f.pmRepo.EXPECT().UpdateStatus(gomock.Any(), expired.ID, model.PMStatusCompleted).Return(nil)

	// broken: storage error is counted and the sweep continues
	f.woRepo.EXPECT().CountOutstanding(gomock.Any(), broken.ID, broken.NextDueDate).Return(int64(0), errors.New("db down"))

	result, err := f.scheduler.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, service.SweepResult{
		Scanned:       5,
		Spawned:       1,
		MarkedOverdue: 1,
		Closed:        1,
		Failed:        1,
	}, result)
}

func TestMaintenanceSchedulerSpawnsAndMarksOverdueTogether(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	today := model.DateOf(2024, 3, 10)
	f := newSchedulerFixture(ctrl, today)

	pm := schedule(model.DateOf(2024, 3, 8), 0)
	pm.Status = model.PMStatusInProgress

	f.pmRepo.EXPECT().FindSchedulable(gomock.Any(), uuid.Nil, 100).Return([]*model.PreventiveMaintenance{pm}, nil)
	f.woRepo.EXPECT().CountOutstanding(gomock.Any(), pm.ID, pm.NextDueDate).Return(int64(0), nil).Times(2)
	f.pmRepo.EXPECT().FindForUpdate(gomock.Any(), pm.ID).Return(reloaded(pm), nil)
	f.woRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.pmRepo.EXPECT().UpdateStatus(gomock.Any(), pm.ID, model.PMStatusOverdue).Return(nil)

	result, err := f.scheduler.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Spawned)
	assert.Equal(t, 1, result.MarkedOverdue)
}

func TestMaintenanceSchedulerRechecksLockedRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	today := model.DateOf(2024, 3, 10)

	t.Run("edit committed after the batch was read wins", func(t *testing.T) {
		f := newSchedulerFixture(ctrl, today)
		stale := schedule(model.DateOf(2024, 1, 8), 0)
		stale.Title = "Old"

		fresh := reloaded(stale)
		fresh.Title = "User edit"
		fresh.NextDueDate = model.DateOf(2024, 4, 1)

		f.pmRepo.EXPECT().FindSchedulable(gomock.Any(), uuid.Nil, 100).Return([]*model.PreventiveMaintenance{stale}, nil)
		f.woRepo.EXPECT().CountOutstanding(gomock.Any(), stale.ID, stale.NextDueDate).Return(int64(0), nil)
		f.pmRepo.EXPECT().FindForUpdate(gomock.Any(), stale.ID).Return(fresh, nil)

		result, err := f.scheduler.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, service.SweepResult{Scanned: 1}, result)
	})

	t.Run("work order follows the reloaded due date", func(t *testing.T) {
		f := newSchedulerFixture(ctrl, today)
		stale := schedule(model.DateOf(2024, 1, 8), 0)

		fresh := reloaded(stale)
		fresh.WorkOrderTitle = "Edited template"
		fresh.NextDueDate = model.DateOf(2024, 3, 5)

		f.pmRepo.EXPECT().FindSchedulable(gomock.Any(), uuid.Nil, 100).Return([]*model.PreventiveMaintenance{stale}, nil)
		f.woRepo.EXPECT().CountOutstanding(gomock.Any(), stale.ID, stale.NextDueDate).Return(int64(0), nil)
		f.pmRepo.EXPECT().FindForUpdate(gomock.Any(), stale.ID).Return(fresh, nil)
		f.woRepo.EXPECT().CountOutstanding(gomock.Any(), stale.ID, fresh.NextDueDate).Return(int64(0), nil)
		f.woRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, wo *model.WorkOrder) error {
				assert.Equal(t, "Edited template", wo.Title)
				assert.Equal(t, model.DateOf(2024, 3, 5), *wo.DueDate)
				return nil
			},
		)
		f.pmRepo.EXPECT().UpdateStatus(gomock.Any(), stale.ID, model.PMStatusOverdue).Return(nil)

		result, err := f.scheduler.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, result.Spawned)
	})

	t.Run("deleted since the batch was read", func(t *testing.T) {
		f := newSchedulerFixture(ctrl, today)
		stale := schedule(model.DateOf(2024, 3, 1), 0)

		f.pmRepo.EXPECT().FindSchedulable(gomock.Any(), uuid.Nil, 100).Return([]*model.PreventiveMaintenance{stale}, nil)
		f.woRepo.EXPECT().CountOutstanding(gomock.Any(), stale.ID, stale.NextDueDate).Return(int64(1), nil)
		f.pmRepo.EXPECT().FindForUpdate(gomock.Any(), stale.ID).Return(nil, domain.ErrPreventiveMaintenanceNotFound)

		result, err := f.scheduler.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, service.SweepResult{Scanned: 1}, result)
	})
}

func TestMaintenanceSchedulerDryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	today := model.DateOf(2024, 3, 10)
	f := newSchedulerFixture(ctrl, today)
	f.scheduler.SetDryRun(true)

	due := schedule(model.DateOf(2024, 3, 10), 0)
	late := schedule(model.DateOf(2024, 3, 1), 0)

	f.pmRepo.EXPECT().FindSchedulable(gomock.Any(), uuid.Nil, 100).Return([]*model.PreventiveMaintenance{due, late}, nil)
	f.woRepo.EXPECT().CountOutstanding(gomock.Any(), due.ID, due.NextDueDate).Return(int64(0), nil)
	f.woRepo.EXPECT().CountOutstanding(gomock.Any(), late.ID, late.NextDueDate).Return(int64(1), nil)

	result, err := f.scheduler.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Spawned)
	assert.Equal(t, 1, result.MarkedOverdue)
	assert.Equal(t, model.PMStatusPending, late.Status)
}

func TestMaintenanceSchedulerListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSchedulerFixture(ctrl, model.DateOf(2024, 3, 10))
	f.pmRepo.EXPECT().FindSchedulable(gomock.Any(), uuid.Nil, 100).Return(nil, errors.New("connection refused"))

	_, err := f.scheduler.RunOnce(context.Background())
	assert.ErrorContains(t, err, "fetching schedules")
}

func TestMaintenanceSchedulerStartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSchedulerFixture(ctrl, model.DateOf(2024, 3, 10))
	f.pmRepo.EXPECT().FindSchedulable(gomock.Any(), uuid.Nil, 100).Return(nil, nil).MinTimes(1)

	f.scheduler.Start()
	assert.Eventually(t, ctrl.Satisfied, time.Second, 10*time.Millisecond)
	f.scheduler.Stop()
}
