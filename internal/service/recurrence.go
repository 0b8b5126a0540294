// internal/service/recurrence.go
package service

import (
	"time"

	"github.com/dangerclosesec/sarpa/internal/model"
)

// NextOccurrence moves d forward by frequency units. Month and year steps
// clamp to the last day of the target month, so Jan 31 + 1 month is the
// last day of February.
func NextOccurrence(d model.Date, frequency int, unit model.TimeUnit) model.Date {
	return occurrence(d, 1, frequency, unit)
}

// occurrence returns the n-th date of the grid that starts at anchor. Each
// date is computed from the anchor, so a clamped month end does not carry
// over into later months.
func occurrence(anchor model.Date, n, frequency int, unit model.TimeUnit) model.Date {
	if frequency <= 0 {
		frequency = 1
	}
	switch unit {
	case model.UnitWeek:
		return anchor.AddDays(7 * frequency * n)
	case model.UnitMonth:
		return addMonthsClamped(anchor, frequency*n)
	case model.UnitYear:
		return addMonthsClamped(anchor, 12*frequency*n)
	default:
		return anchor.AddDays(frequency * n)
	}
}

func addMonthsClamped(d model.Date, months int) model.Date {
	y, m, day := d.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return model.DateOf(first.Year(), first.Month(), day)
}

// AdvanceSchedule moves the PM's due-date cursor past a completion.
//
// afterCompletion schedules restart from the completion date. regularInterval
// schedules stay on their grid and skip any occurrence that is not after the
// completion date. A next date beyond endDate closes the schedule.
func AdvanceSchedule(pm *model.PreventiveMaintenance, completedOn model.Date) {
	var next model.Date
	switch pm.ScheduleType {
	case model.ScheduleAfterCompletion:
		next = NextOccurrence(completedOn, pm.Frequency, pm.TimeUnit)
	default:
		anchor := gridAnchor(pm)
		for n := 1; ; n++ {
			next = occurrence(anchor, n, pm.Frequency, pm.TimeUnit)
			if next.After(pm.NextDueDate) && next.After(completedOn) {
				break
			}
		}
	}

	if pm.EndDate != nil && next.After(*pm.EndDate) {
		pm.Status = model.PMStatusCompleted
		return
	}
	pm.NextDueDate = next
	pm.Status = model.PMStatusPending
}

// gridAnchor is the start date when the current due date lies on the grid it
// defines, and the current due date otherwise.
func gridAnchor(pm *model.PreventiveMaintenance) model.Date {
	start := pm.StartDate
	if start.Time.IsZero() || start.After(pm.NextDueDate) {
		return pm.NextDueDate
	}
	for n := 0; ; n++ {
		d := occurrence(start, n, pm.Frequency, pm.TimeUnit)
		if d.Equal(pm.NextDueDate) {
			return start
		}
		if d.After(pm.NextDueDate) {
			return pm.NextDueDate
		}
	}
}

// GenerationDate is the first day on which the scheduler materializes the
// work order for the PM's current due date.
func GenerationDate(pm *model.PreventiveMaintenance) model.Date {
	lead := 0
	if pm.CreateWOsDaysBeforeDue != nil && *pm.CreateWOsDaysBeforeDue > 0 {
		lead = *pm.CreateWOsDaysBeforeDue
	}
	return pm.NextDueDate.AddDays(-lead)
}
