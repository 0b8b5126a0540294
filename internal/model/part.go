// internal/model/part.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Part struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name                  string    `gorm:"type:text;not null" json:"name"`
	PartNumber            string    `gorm:"type:text" json:"partNumber"`
	Description           string    `gorm:"type:text" json:"description"`
	ImageURL              string    `gorm:"column:image_url;type:text" json:"imageUrl"`
	IsCritical            bool      `gorm:"not null;default:false" json:"isCritical"`
	IsNonStock            bool      `gorm:"not null;default:false" json:"isNonStock"`
	MinimumQuantity       int       `gorm:"not null;default:0" json:"minimumQuantity"`
	AdditionalInformation string    `gorm:"type:text" json:"additionalInformation"`
	CompanyID             uuid.UUID `gorm:"type:uuid;not null;index" json:"companyId"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`

	Assets []Asset `gorm:"many2many:asset_parts" json:"assets,omitempty"`
}

func (p *Part) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
