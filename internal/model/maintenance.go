// internal/model/maintenance.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleType string

const (
	ScheduleRegularInterval ScheduleType = "regularInterval"
	ScheduleAfterCompletion ScheduleType = "afterCompletion"
)

func (s ScheduleType) Valid() bool {
	return s == ScheduleRegularInterval || s == ScheduleAfterCompletion
}

type TimeUnit string

const (
	UnitDay   TimeUnit = "day"
	UnitWeek  TimeUnit = "week"
	UnitMonth TimeUnit = "month"
	UnitYear  TimeUnit = "year"
)

func (u TimeUnit) Valid() bool {
	switch u {
	case UnitDay, UnitWeek, UnitMonth, UnitYear:
		return true
	}
	return false
}

type PMStatus string

const (
	PMStatusPending    PMStatus = "pending"
	PMStatusInProgress PMStatus = "inProgress"
	PMStatusCompleted  PMStatus = "completed"
	PMStatusOverdue    PMStatus = "overdue"
)

// PreventiveMaintenance is a recurring maintenance schedule. It doubles as the
// template for the work orders it produces.
type PreventiveMaintenance struct {
	ID                     uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	Title                  string             `gorm:"type:text;not null" json:"title"`
	Description            string             `gorm:"type:text" json:"description"`
	ScheduleType           ScheduleType       `gorm:"type:text;not null" json:"scheduleType"`
	Frequency              int                `gorm:"not null" json:"frequency"`
	TimeUnit               TimeUnit           `gorm:"type:text;not null" json:"timeUnit"`
	StartDate              Date               `gorm:"not null" json:"startDate"`
	EndDate                *Date              `json:"endDate"`
	NextDueDate            Date               `gorm:"not null;index" json:"nextDueDate"`
	CreateWOsDaysBeforeDue *int               `gorm:"column:create_wos_days_before_due" json:"createWOsDaysBeforeDue"`
	Status                 PMStatus           `gorm:"type:text;not null;default:pending" json:"status"`
	AutoGenerated          bool               `gorm:"not null;default:false" json:"autoGenerated"`
	WorkOrderTitle         string             `gorm:"type:text" json:"workOrderTitle"`
	WorkOrderDescription   string             `gorm:"type:text" json:"workOrderDescription"`
	WorkOrderPriority      *WorkOrderPriority `gorm:"type:text" json:"workOrderPriority"`
	AssetID                *uuid.UUID         `gorm:"type:uuid" json:"assetId"`
	AssignedToID           *uuid.UUID         `gorm:"type:uuid" json:"assignedToId"`
	CreatedByID            *uuid.UUID         `gorm:"type:uuid" json:"createdById"`
	LastCompletedAt        *time.Time         `json:"lastCompletedAt"`
	CompanyID              uuid.UUID          `gorm:"type:uuid;not null;index" json:"companyId"`
	CreatedAt              time.Time          `json:"createdAt"`
	UpdatedAt              time.Time          `json:"updatedAt"`

	Asset      *Asset      `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
	AssignedTo *User       `gorm:"foreignKey:AssignedToID" json:"assignedTo,omitempty"`
	CreatedBy  *User       `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	WorkOrders []WorkOrder `gorm:"foreignKey:PreventiveMaintenanceID" json:"workOrders,omitempty"`
}

func (PreventiveMaintenance) TableName() string {
	return "preventive_maintenances"
}

func (pm *PreventiveMaintenance) BeforeCreate(tx *gorm.DB) error {
	if pm.ID == uuid.Nil {
		pm.ID = uuid.New()
	}
	if pm.Status == "" {
		pm.Status = PMStatusPending
	}
	return nil
}
