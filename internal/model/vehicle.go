package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vehicle struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ContractorID uuid.UUID `gorm:"type:uuid;not null;index" json:"contractor_id"`
	// PlateNumber is always stored in normalized form; lookups
	// normalize their argument before querying.
	PlateNumber  string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"plate_number"`
	PlateFormat  string    `gorm:"type:varchar(16);not null" json:"plate_format"`
	BodyVolumeM3 *float64  `json:"body_volume_m3"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
