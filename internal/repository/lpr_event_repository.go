package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"plate-service/internal/model"
)

type LprEventRepository struct {
	db *gorm.DB
}

func NewLprEventRepository(db *gorm.DB) *LprEventRepository {
	return &LprEventRepository{db: db}
}

func (r *LprEventRepository) Create(ctx context.Context, event *model.LprEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

type LprEventListFilter struct {
	NormalizedPlate *string
	CameraID        *uuid.UUID
	Direction       *string
	DetectedFrom    *time.Time
	DetectedTo      *time.Time
	Limit           int
}

func (r *LprEventRepository) List(ctx context.Context, filter LprEventListFilter) ([]model.LprEvent, error) {
	query := r.db.WithContext(ctx).Model(&model.LprEvent{})

	if filter.NormalizedPlate != nil {
		query = query.Where("normalized_plate = ?", *filter.NormalizedPlate)
	}
	if filter.CameraID != nil {
		query = query.Where("camera_id = ?", *filter.CameraID)
	}
	if filter.Direction != nil {
		query = query.Where("direction = ?", *filter.Direction)
	}
	if filter.DetectedFrom != nil {
		query = query.Where("detected_at >= ?", *filter.DetectedFrom)
	}
	if filter.DetectedTo != nil {
		query = query.Where("detected_at <= ?", *filter.DetectedTo)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 1000 {
		limit = 1000
	}

	var events []model.LprEvent
	if err := query.Order("detected_at DESC").Limit(limit).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
