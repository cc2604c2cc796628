package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LprEvent struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	CameraID uuid.UUID `gorm:"type:uuid;not null;index" json:"camera_id"`
	// RawPlate is the plate as read by the camera; NormalizedPlate is
	// nil when the read could not be normalized, with RejectionCode
	// naming the reason.
	RawPlate        string     `gorm:"type:varchar(32);not null" json:"raw_plate"`
	NormalizedPlate *string    `gorm:"type:varchar(32);index" json:"normalized_plate"`
	PlateFormat     *string    `gorm:"type:varchar(16)" json:"plate_format"`
	RejectionCode   *string    `gorm:"type:varchar(40)" json:"rejection_code"`
	VehicleID       *uuid.UUID `gorm:"type:uuid;index" json:"vehicle_id"`
	DetectedAt      time.Time  `gorm:"not null;index" json:"detected_at"`
	Direction       *string    `gorm:"type:varchar(20)" json:"direction"`
	Confidence      *float64   `json:"confidence"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (LprEvent) TableName() string {
	return "lpr_events"
}

func (e *LprEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
