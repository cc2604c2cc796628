package service

import (
	"errors"

	"plate-service/internal/plate"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidInput     = errors.New("invalid input")
	ErrConflict         = errors.New("conflict")
)

// PlateService wraps the normalization pipeline with the
// service-level preferred formats from config. Per-request preferred
// formats take precedence over configured ones.
type PlateService struct {
	preferred []string
}

func NewPlateService(preferred []string) *PlateService {
	return &PlateService{preferred: preferred}
}

func (s *PlateService) Normalize(raw string, prefer []string) (plate.Plate, error) {
	if len(prefer) == 0 {
		prefer = s.preferred
	}
	return plate.Parse(raw, prefer...)
}

func (s *PlateService) Formats() []string {
	formats := make([]string, len(plate.AllowedFormats))
	copy(formats, plate.AllowedFormats)
	return formats
}
