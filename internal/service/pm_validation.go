// internal/service/pm_validation.go
package service

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/dangerclosesec/sarpa/internal/domain"
	"github.com/dangerclosesec/sarpa/internal/model"
	"github.com/google/uuid"
)

// Numeric accepts a JSON number or a numeric string. Forms post numbers as
// strings, so both have to validate the same way.
type Numeric string

func (n *Numeric) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Numeric(strings.TrimSpace(s))
		return nil
	}
	*n = Numeric(b)
	return nil
}

// Provided reports whether the field carried a value at all.
func (n *Numeric) Provided() bool {
	return n != nil && *n != ""
}

// Int parses the value as a whole number.
func (n *Numeric) Int() (int, bool) {
	if !n.Provided() {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(*n), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// NumericInt is a convenience for building inputs in code.
func NumericInt(v int) *Numeric {
	n := Numeric(strconv.Itoa(v))
	return &n
}

// PMInput is the create and update payload of a preventive maintenance schedule.
type PMInput struct {
	Title                  string   `json:"title"`
	Description            string   `json:"description"`
	ScheduleType           string   `json:"scheduleType"`
	Frequency              *Numeric `json:"frequency"`
	TimeUnit               string   `json:"timeUnit"`
	StartDate              string   `json:"startDate"`
	NextDueDate            string   `json:"nextDueDate"`
	EndDate                string   `json:"endDate"`
	CreateWOsDaysBeforeDue *Numeric `json:"createWOsDaysBeforeDue"`
	AssetID                string   `json:"assetId"`
	AssignedToID           string   `json:"assignedToId"`
	CreateWorkOrderNow     bool     `json:"createWorkOrderNow"`
	WorkOrderTitle         string   `json:"workOrderTitle"`
	WorkOrderDescription   string   `json:"workOrderDescription"`
	WorkOrderPriority      string   `json:"workOrderPriority"`
}

// PMSchedule holds the typed values of a PMInput that passed validation.
type PMSchedule struct {
	Title                  string
	Description            string
	ScheduleType           model.ScheduleType
	Frequency              int
	TimeUnit               model.TimeUnit
	StartDate              model.Date
	NextDueDate            model.Date
	EndDate                *model.Date
	CreateWOsDaysBeforeDue *int
	AssetID                *uuid.UUID
	AssignedToID           *uuid.UUID
	CreateWorkOrderNow     bool
	WorkOrderTitle         string
	WorkOrderDescription   string
	WorkOrderPriority      *model.WorkOrderPriority
}

// Validate runs every rule and collects all failures instead of stopping at
// the first one. Messages are returned in rule order.
func (in PMInput) Validate() (*PMSchedule, error) {
	var errs []string
	out := &PMSchedule{
		Title:                strings.TrimSpace(in.Title),
		Description:          in.Description,
		CreateWorkOrderNow:   in.CreateWorkOrderNow,
		WorkOrderTitle:       strings.TrimSpace(in.WorkOrderTitle),
		WorkOrderDescription: in.WorkOrderDescription,
	}

	if out.Title == "" {
		errs = append(errs, "title is required")
	}

	switch st := model.ScheduleType(in.ScheduleType); {
	case in.ScheduleType == "":
		errs = append(errs, "scheduleType is required")
	case !st.Valid():
		errs = append(errs, "scheduleType must be one of regularInterval, afterCompletion")
	default:
		out.ScheduleType = st
	}

	if freq, ok := in.Frequency.Int(); !ok || freq <= 0 {
		errs = append(errs, "frequency must be a positive whole number")
	} else {
		out.Frequency = freq
	}

	switch tu := model.TimeUnit(in.TimeUnit); {
	case in.TimeUnit == "":
		errs = append(errs, "timeUnit is required")
	case !tu.Valid():
		errs = append(errs, "timeUnit must be one of day, week, month, year")
	default:
		out.TimeUnit = tu
	}

	startRaw, nextRaw := strings.TrimSpace(in.StartDate), strings.TrimSpace(in.NextDueDate)
	if startRaw == "" {
		errs = append(errs, "startDate is required")
	}
	if nextRaw == "" {
		errs = append(errs, "nextDueDate is required")
	}

	if in.CreateWOsDaysBeforeDue.Provided() {
		if days, ok := in.CreateWOsDaysBeforeDue.Int(); !ok || days < 0 {
			errs = append(errs, "createWOsDaysBeforeDue must be a whole number of zero or more")
		} else {
			out.CreateWOsDaysBeforeDue = &days
		}
	}

	startOK, nextOK := false, false
	if startRaw != "" {
		if d, err := model.ParseDate(startRaw); err != nil {
			errs = append(errs, "startDate is not a valid date")
		} else {
			out.StartDate, startOK = d, true
		}
	}
	if nextRaw != "" {
		if d, err := model.ParseDate(nextRaw); err != nil {
			errs = append(errs, "nextDueDate is not a valid date")
		} else {
			out.NextDueDate, nextOK = d, true
		}
	}

	if startOK && nextOK && out.NextDueDate.Before(out.StartDate) {
		errs = append(errs, "nextDueDate cannot be before startDate")
	}

	if endRaw := strings.TrimSpace(in.EndDate); endRaw != "" {
		end, err := model.ParseDate(endRaw)
		if err != nil {
			errs = append(errs, "endDate is not a valid date")
		} else {
			out.EndDate = &end
			if startOK && end.Before(out.StartDate) {
				errs = append(errs, "endDate cannot be before startDate")
			}
			if nextOK && end.Before(out.NextDueDate) {
				errs = append(errs, "endDate cannot be before nextDueDate")
			}
		}
	}

	if in.CreateWorkOrderNow {
		if out.WorkOrderTitle == "" {
			errs = append(errs, "workOrderTitle is required when creating a work order")
		}
		if in.WorkOrderPriority == "" {
			errs = append(errs, "workOrderPriority is required when creating a work order")
		}
	}

	if in.WorkOrderPriority != "" {
		if p := model.WorkOrderPriority(in.WorkOrderPriority); p.Valid() {
			out.WorkOrderPriority = &p
		} else {
			errs = append(errs, "workOrderPriority must be one of none, low, medium, high")
		}
	}

	var err error
	if out.AssetID, err = parseOptionalID(in.AssetID); err != nil {
		errs = append(errs, "assetId is not a valid id")
	}
	if out.AssignedToID, err = parseOptionalID(in.AssignedToID); err != nil {
		errs = append(errs, "assignedToId is not a valid id")
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationError(errs...)
	}
	return out, nil
}

func parseOptionalID(raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
