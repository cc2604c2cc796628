package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"plate-service/internal/model"
	"plate-service/internal/plate"
	"plate-service/internal/repository"
)

type EventService struct {
	eventRepo    *repository.LprEventRepository
	vehicleRepo  *repository.VehicleRepository
	plateService *PlateService
}

func NewEventService(
	eventRepo *repository.LprEventRepository,
	vehicleRepo *repository.VehicleRepository,
	plateService *PlateService,
) *EventService {
	return &EventService{
		eventRepo:    eventRepo,
		vehicleRepo:  vehicleRepo,
		plateService: plateService,
	}
}

type IngestEventInput struct {
	CameraID   string
	Plate      string
	DetectedAt time.Time
	Direction  *string
	Confidence *float64
}

type IngestResult struct {
	EventID         uuid.UUID  `json:"event_id"`
	RawPlate        string     `json:"raw_plate"`
	NormalizedPlate *string    `json:"normalized_plate,omitempty"`
	PlateFormat     *string    `json:"plate_format,omitempty"`
	RejectionCode   *string    `json:"rejection_code,omitempty"`
	VehicleID       *uuid.UUID `json:"vehicle_id,omitempty"`
	Matched         bool       `json:"matched"`
}

// Ingest records a camera detection. Normalization failures are not
// fatal: cameras misread plates, so the event is stored with the raw
// value and the rejection code instead.
func (s *EventService) Ingest(ctx context.Context, input IngestEventInput) (*IngestResult, error) {
	cameraID, err := uuid.Parse(input.CameraID)
	if err != nil {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(input.Plate) == "" {
		return nil, ErrInvalidInput
	}

	detectedAt := input.DetectedAt
	if detectedAt.IsZero() {
		detectedAt = time.Now().UTC()
	}

	event := &model.LprEvent{
		CameraID:   cameraID,
		RawPlate:   input.Plate,
		DetectedAt: detectedAt,
		Direction:  input.Direction,
		Confidence: input.Confidence,
	}

	normalized, normErr := s.plateService.Normalize(input.Plate, nil)
	if normErr != nil {
		code, ok := plate.ErrorCode(normErr)
		if !ok {
			return nil, normErr
		}
		event.RejectionCode = &code
	} else {
		event.NormalizedPlate = &normalized.Value
		event.PlateFormat = &normalized.Format

		vehicle, err := s.vehicleRepo.GetByPlate(ctx, normalized.Value)
		if err != nil {
			return nil, err
		}
		if vehicle != nil {
			event.VehicleID = &vehicle.ID
		}
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return &IngestResult{
		EventID:         event.ID,
		RawPlate:        event.RawPlate,
		NormalizedPlate: event.NormalizedPlate,
		PlateFormat:     event.PlateFormat,
		RejectionCode:   event.RejectionCode,
		VehicleID:       event.VehicleID,
		Matched:         event.VehicleID != nil,
	}, nil
}

type ListEventsInput struct {
	Plate        *string
	CameraID     *uuid.UUID
	Direction    *string
	DetectedFrom *time.Time
	DetectedTo   *time.Time
	Limit        int
}

// ListEvents queries detections; a plate filter is normalized first
// so callers may pass any manual spelling.
func (s *EventService) ListEvents(ctx context.Context, input ListEventsInput) ([]model.LprEvent, error) {
	filter := repository.LprEventListFilter{
		CameraID:     input.CameraID,
		Direction:    input.Direction,
		DetectedFrom: input.DetectedFrom,
		DetectedTo:   input.DetectedTo,
		Limit:        input.Limit,
	}

	if input.Plate != nil {
		normalized, err := s.plateService.Normalize(*input.Plate, nil)
		if err != nil {
			return nil, err
		}
		filter.NormalizedPlate = &normalized.Value
	}

	return s.eventRepo.List(ctx, filter)
}
