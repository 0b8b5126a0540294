package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dangerclosesec/sarpa/internal/model"
	"github.com/dangerclosesec/sarpa/internal/repository"
	"github.com/dangerclosesec/sarpa/internal/service"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// store wires the services to an in-memory database.
type store struct {
	db     *gorm.DB
	tx     *repository.GormTransactor
	pms    *repository.PreventiveMaintenanceRepository
	wos    *repository.WorkOrderRepository
	assets *repository.AssetRepository
	users  *repository.UserRepository
}

func newStore(t *testing.T) *store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.Company{},
		&model.User{},
		&model.Asset{},
		&model.PreventiveMaintenance{},
		&model.WorkOrder{},
	))

	return &store{
		db:     db,
		tx:     repository.NewTransactor(db),
		pms:    repository.NewPreventiveMaintenanceRepository(db),
		wos:    repository.NewWorkOrderRepository(db),
		assets: repository.NewAssetRepository(db),
		users:  repository.NewUserRepository(db),
	}
}

func (s *store) company(t *testing.T) uuid.UUID {
	t.Helper()
	c := &model.Company{Name: "Acme Plant"}
	require.NoError(t, s.db.Create(c).Error)
	return c.ID
}

func (s *store) scheduler(pms repository.PreventiveMaintenanceRepositoryIface, today model.Date) *service.MaintenanceScheduler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sch := service.NewMaintenanceScheduler(s.tx, pms, s.wos, s.users, service.NopNotifier{}, time.Hour, logger)
	sch.SetClock(func() time.Time { return today.Add(9 * time.Hour) })
	return sch
}

func (s *store) workOrders(t *testing.T, pmID uuid.UUID) []model.WorkOrder {
	t.Helper()
	var out []model.WorkOrder
	require.NoError(t, s.db.Where("preventive_maintenance_id = ?", pmID).Order("due_date").Find(&out).Error)
	return out
}

// editingSchedules lets a user edit land between the batch read and the
// row lock.
type editingSchedules struct {
	*repository.PreventiveMaintenanceRepository
	edit func()
}

func (e *editingSchedules) FindSchedulable(ctx context.Context, afterID uuid.UUID, limit int) ([]*model.PreventiveMaintenance, error) {
	batch, err := e.PreventiveMaintenanceRepository.FindSchedulable(ctx, afterID, limit)
	if err == nil && e.edit != nil {
		e.edit()
		e.edit = nil
	}
	return batch, err
}

type failingWorkOrders struct {
	*repository.WorkOrderRepository
}

func (failingWorkOrders) Create(context.Context, *model.WorkOrder) error {
	return errors.New("disk full")
}

func weeklyInput() service.PMInput {
	in := validPMInput()
	in.Frequency = service.NumericInt(1)
	in.StartDate = "2024-01-01"
	in.NextDueDate = "2024-01-08"
	return in
}

func TestSchedulerKeepsConcurrentEdit(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	companyID := st.company(t)

	pmSvc := service.NewPreventiveMaintenanceService(st.tx, st.pms, st.wos, st.assets, st.users, service.NopNotifier{})
	pm, err := pmSvc.Create(ctx, companyID, uuid.New(), weeklyInput())
	require.NoError(t, err)

	pms := &editingSchedules{PreventiveMaintenanceRepository: st.pms}
	pms.edit = func() {
		in := weeklyInput()
		in.Title = "User edit"
		in.NextDueDate = "2024-03-01"
		_, err := pmSvc.Update(ctx, companyID, pm.ID, in)
		require.NoError(t, err)
	}

	result, err := st.scheduler(pms, model.DateOf(2024, 1, 10)).RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, service.SweepResult{Scanned: 1}, result)

	got, err := st.pms.FindByCompany(ctx, companyID, pm.ID)
	require.NoError(t, err)
	assert.Equal(t, "User edit", got.Title)
	assert.Equal(t, model.DateOf(2024, 3, 1), got.NextDueDate)
	assert.Equal(t, model.PMStatusPending, got.Status)
	assert.Empty(t, st.workOrders(t, pm.ID))
}

func TestCancelledOccurrenceIsReissuedNextCycle(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	companyID := st.company(t)

	pmSvc := service.NewPreventiveMaintenanceService(st.tx, st.pms, st.wos, st.assets, st.users, service.NopNotifier{})
	pm, err := pmSvc.Create(ctx, companyID, uuid.New(), weeklyInput())
	require.NoError(t, err)

	result, err := st.scheduler(st.pms, model.DateOf(2024, 1, 8)).RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Spawned)

	issued := st.workOrders(t, pm.ID)
	require.Len(t, issued, 1)

	woSvc := service.NewWorkOrderService(st.tx, st.wos, st.pms, st.assets, st.users, service.NopNotifier{})
	woSvc.SetClock(func() time.Time { return model.DateOf(2024, 1, 9).Add(10 * time.Hour) })
	_, err = woSvc.Update(ctx, companyID, issued[0].ID, service.WorkOrderInput{
		Title:  issued[0].Title,
		Status: "cancelled",
	})
	require.NoError(t, err)

	got, err := st.pms.FindByCompany(ctx, companyID, pm.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DateOf(2024, 1, 15), got.NextDueDate)
	assert.Nil(t, got.LastCompletedAt)

	result, err = st.scheduler(st.pms, model.DateOf(2024, 1, 15)).RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Spawned)

	issued = st.workOrders(t, pm.ID)
	require.Len(t, issued, 2)
	assert.Equal(t, model.WorkOrderCancelled, issued[0].Status)
	assert.Equal(t, model.WorkOrderPending, issued[1].Status)
	assert.Equal(t, model.DateOf(2024, 1, 15), *issued[1].DueDate)
}

func TestFailedWorkOrderLeavesNoSchedule(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	companyID := st.company(t)
	wos := failingWorkOrders{WorkOrderRepository: st.wos}

	countSchedules := func() int64 {
		var n int64
		require.NoError(t, st.db.Model(&model.PreventiveMaintenance{}).Where("company_id = ?", companyID).Count(&n).Error)
		return n
	}

	t.Run("schedule with its first work order", func(t *testing.T) {
		pmSvc := service.NewPreventiveMaintenanceService(st.tx, st.pms, wos, st.assets, st.users, service.NopNotifier{})
		in := weeklyInput()
		in.CreateWorkOrderNow = true
		in.WorkOrderTitle = "Compressor inspection"

		_, err := pmSvc.Create(ctx, companyID, uuid.New(), in)
		require.ErrorContains(t, err, "disk full")
		assert.Zero(t, countSchedules())
	})

	t.Run("standalone work order placeholder", func(t *testing.T) {
		woSvc := service.NewWorkOrderService(st.tx, wos, st.pms, st.assets, st.users, service.NopNotifier{})

		_, err := woSvc.Create(ctx, companyID, uuid.New(), service.WorkOrderInput{Title: "Replace belt"})
		require.ErrorContains(t, err, "disk full")
		assert.Zero(t, countSchedules())
	})
}
