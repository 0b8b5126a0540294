// internal/model/work_order.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkOrderStatus string

const (
	WorkOrderPending    WorkOrderStatus = "pending"
	WorkOrderInProgress WorkOrderStatus = "inProgress"
	WorkOrderCompleted  WorkOrderStatus = "completed"
	WorkOrderCancelled  WorkOrderStatus = "cancelled"
)

func (s WorkOrderStatus) Valid() bool {
	switch s {
	case WorkOrderPending, WorkOrderInProgress, WorkOrderCompleted, WorkOrderCancelled:
		return true
	}
	return false
}

// Open reports whether the work order still needs attention.
func (s WorkOrderStatus) Open() bool {
	return s == WorkOrderPending || s == WorkOrderInProgress
}

type WorkOrderPriority string

const (
	PriorityNone   WorkOrderPriority = "none"
	PriorityLow    WorkOrderPriority = "low"
	PriorityMedium WorkOrderPriority = "medium"
	PriorityHigh   WorkOrderPriority = "high"
)

func (p WorkOrderPriority) Valid() bool {
	switch p {
	case PriorityNone, PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type WorkOrder struct {
	ID                      uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Title                   string            `gorm:"type:text;not null" json:"title"`
	Description             string            `gorm:"type:text" json:"description"`
	Status                  WorkOrderStatus   `gorm:"type:text;not null;default:pending" json:"status"`
	Priority                WorkOrderPriority `gorm:"type:text;not null;default:medium" json:"priority"`
	DueDate                 *Date             `json:"dueDate"`
	CompletedAt             *time.Time        `json:"completedAt"`
	PreventiveMaintenanceID *uuid.UUID        `gorm:"type:uuid;index" json:"preventiveMaintenanceId"`
	AssetID                 *uuid.UUID        `gorm:"type:uuid" json:"assetId"`
	AssignedToID            *uuid.UUID        `gorm:"type:uuid" json:"assignedToId"`
	CompanyID               uuid.UUID         `gorm:"type:uuid;not null;index" json:"companyId"`
	CreatedAt               time.Time         `gorm:"index" json:"createdAt"`
	UpdatedAt               time.Time         `json:"updatedAt"`

	PreventiveMaintenance *PreventiveMaintenance `gorm:"foreignKey:PreventiveMaintenanceID" json:"preventiveMaintenance,omitempty"`
	Asset                 *Asset                 `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
	AssignedTo            *User                  `gorm:"foreignKey:AssignedToID" json:"assignedTo,omitempty"`
}

func (wo *WorkOrder) BeforeCreate(tx *gorm.DB) error {
	if wo.ID == uuid.Nil {
		wo.ID = uuid.New()
	}
	if wo.Status == "" {
		wo.Status = WorkOrderPending
	}
	if wo.Priority == "" {
		wo.Priority = PriorityMedium
	}
	return nil
}
