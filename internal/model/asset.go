// internal/model/asset.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Asset struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name                   string     `gorm:"type:text;not null" json:"name"`
	Description            string     `gorm:"type:text" json:"description"`
	Image                  string     `gorm:"type:text" json:"image"`
	Model                  string     `gorm:"type:text" json:"model"`
	SerialNumber           string     `gorm:"type:text" json:"serialNumber"`
	Barcode                string     `gorm:"type:text" json:"barcode"`
	PurchasePrice          *float64   `json:"purchasePrice"`
	PurchaseDate           *Date      `json:"purchaseDate"`
	ResidualValue          *float64   `json:"residualValue"`
	UsefulLife             *int       `json:"usefulLife"`
	UsefulLifeUnit         string     `gorm:"type:text" json:"usefulLifeUnit"`
	PlacedInServiceDate    *Date      `json:"placedInServiceDate"`
	WarrantyExpirationDate *Date      `json:"warrantyExpirationDate"`
	AdditionalInformation  string     `gorm:"type:text" json:"additionalInformation"`
	WorkerID               *uuid.UUID `gorm:"type:uuid" json:"workerId"`
	CompanyID              uuid.UUID  `gorm:"type:uuid;not null;index" json:"companyId"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`

	Worker *User  `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
	Parts  []Part `gorm:"many2many:asset_parts" json:"parts,omitempty"`
}

func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
