package service_test

import (
	"testing"

	"github.com/dangerclosesec/sarpa/internal/model"
	"github.com/dangerclosesec/sarpa/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestNextOccurrence(t *testing.T) {
	tests := []struct {
		name      string
		from      model.Date
		frequency int
		unit      model.TimeUnit
		want      model.Date
	}{
		{"days", model.DateOf(2024, 1, 30), 3, model.UnitDay, model.DateOf(2024, 2, 2)},
		{"weeks", model.DateOf(2024, 1, 1), 2, model.UnitWeek, model.DateOf(2024, 1, 15)},
		{"months", model.DateOf(2024, 1, 15), 1, model.UnitMonth, model.DateOf(2024, 2, 15)},
		{"month end clamps in leap year", model.DateOf(2024, 1, 31), 1, model.UnitMonth, model.DateOf(2024, 2, 29)},
		{"month end clamps", model.DateOf(2023, 1, 31), 1, model.UnitMonth, model.DateOf(2023, 2, 28)},
		{"months across year", model.DateOf(2024, 11, 30), 3, model.UnitMonth, model.DateOf(2025, 2, 28)},
		{"years", model.DateOf(2024, 6, 1), 1, model.UnitYear, model.DateOf(2025, 6, 1)},
		{"leap day yearly", model.DateOf(2024, 2, 29), 1, model.UnitYear, model.DateOf(2025, 2, 28)},
		{"zero frequency steps once", model.DateOf(2024, 1, 1), 0, model.UnitDay, model.DateOf(2024, 1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.NextOccurrence(tt.from, tt.frequency, tt.unit))
		})
	}
}

func TestAdvanceSchedule(t *testing.T) {
	t.Run("regular interval keeps its grid", func(t *testing.T) {
		pm := &model.PreventiveMaintenance{
			ScheduleType: model.ScheduleRegularInterval,
			Frequency:    1,
			TimeUnit:     model.UnitWeek,
			NextDueDate:  model.DateOf(2024, 3, 4),
			Status:       model.PMStatusInProgress,
		}
		service.AdvanceSchedule(pm, model.DateOf(2024, 3, 6))

		assert.Equal(t, model.DateOf(2024, 3, 11), pm.NextDueDate)
		assert.Equal(t, model.PMStatusPending, pm.Status)
	})

	t.Run("regular interval skips missed occurrences", func(t *testing.T) {
		pm := &model.PreventiveMaintenance{
			ScheduleType: model.ScheduleRegularInterval,
			Frequency:    1,
			TimeUnit:     model.UnitWeek,
			NextDueDate:  model.DateOf(2024, 3, 4),
			Status:       model.PMStatusOverdue,
		}
		service.AdvanceSchedule(pm, model.DateOf(2024, 3, 20))

		assert.Equal(t, model.DateOf(2024, 3, 25), pm.NextDueDate)
		assert.Equal(t, model.PMStatusPending, pm.Status)
	})

	t.Run("month end stays on the month end grid", func(t *testing.T) {
		tests := []struct {
			name      string
			start     model.Date
			due       model.Date
			completed model.Date
			want      model.Date
		}{
			{"completed after a short month", model.DateOf(2024, 1, 31), model.DateOf(2024, 1, 31), model.DateOf(2024, 3, 1), model.DateOf(2024, 3, 31)},
			{"due on a clamped february", model.DateOf(2024, 1, 31), model.DateOf(2024, 2, 29), model.DateOf(2024, 2, 29), model.DateOf(2024, 3, 31)},
			{"clamped again in april", model.DateOf(2024, 1, 31), model.DateOf(2024, 3, 31), model.DateOf(2024, 4, 2), model.DateOf(2024, 4, 30)},
			{"back to the 31st after april", model.DateOf(2024, 1, 31), model.DateOf(2024, 4, 30), model.DateOf(2024, 4, 30), model.DateOf(2024, 5, 31)},
			{"no start date anchors on the due date", model.Date{}, model.DateOf(2024, 1, 31), model.DateOf(2024, 3, 1), model.DateOf(2024, 3, 31)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				pm := &model.PreventiveMaintenance{
					ScheduleType: model.ScheduleRegularInterval,
					Frequency:    1,
					TimeUnit:     model.UnitMonth,
					StartDate:    tt.start,
					NextDueDate:  tt.due,
				}
				service.AdvanceSchedule(pm, tt.completed)
				assert.Equal(t, tt.want, pm.NextDueDate)
			})
		}
	})

	t.Run("repeated completions do not drift", func(t *testing.T) {
		pm := &model.PreventiveMaintenance{
			ScheduleType: model.ScheduleRegularInterval,
			Frequency:    1,
			TimeUnit:     model.UnitMonth,
			StartDate:    model.DateOf(2023, 12, 31),
			NextDueDate:  model.DateOf(2023, 12, 31),
		}
		for i := 0; i < 12; i++ {
			service.AdvanceSchedule(pm, pm.NextDueDate)
		}
		assert.Equal(t, model.DateOf(2024, 12, 31), pm.NextDueDate)
	})

	t.Run("due date off the start grid keeps its own grid", func(t *testing.T) {
		pm := &model.PreventiveMaintenance{
			ScheduleType: model.ScheduleRegularInterval,
			Frequency:    2,
			TimeUnit:     model.UnitWeek,
			StartDate:    model.DateOf(2024, 1, 1),
			NextDueDate:  model.DateOf(2024, 1, 10),
		}
		service.AdvanceSchedule(pm, model.DateOf(2024, 1, 10))
		assert.Equal(t, model.DateOf(2024, 1, 24), pm.NextDueDate)
	})

	t.Run("after completion restarts from completion", func(t *testing.T) {
		pm := &model.PreventiveMaintenance{
			ScheduleType: model.ScheduleAfterCompletion,
			Frequency:    10,
			TimeUnit:     model.UnitDay,
			NextDueDate:  model.DateOf(2024, 3, 4),
		}
		service.AdvanceSchedule(pm, model.DateOf(2024, 3, 8))

		assert.Equal(t, model.DateOf(2024, 3, 18), pm.NextDueDate)
	})

	t.Run("past end date closes the schedule", func(t *testing.T) {
		end := model.DateOf(2024, 3, 10)
		pm := &model.PreventiveMaintenance{
			ScheduleType: model.ScheduleRegularInterval,
			Frequency:    1,
			TimeUnit:     model.UnitWeek,
			NextDueDate:  model.DateOf(2024, 3, 4),
			EndDate:      &end,
			Status:       model.PMStatusInProgress,
		}
		service.AdvanceSchedule(pm, model.DateOf(2024, 3, 4))

		assert.Equal(t, model.PMStatusCompleted, pm.Status)
		assert.Equal(t, model.DateOf(2024, 3, 4), pm.NextDueDate)
	})
}

func TestGenerationDate(t *testing.T) {
	lead := 5
	pm := &model.PreventiveMaintenance{NextDueDate: model.DateOf(2024, 3, 4)}
	assert.Equal(t, model.DateOf(2024, 3, 4), service.GenerationDate(pm))

	pm.CreateWOsDaysBeforeDue = &lead
	assert.Equal(t, model.DateOf(2024, 2, 28), service.GenerationDate(pm))
}
