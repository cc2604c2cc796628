package service

import (
	"context"

	"github.com/google/uuid"

	"plate-service/internal/model"
	"plate-service/internal/repository"
)

type VehicleService struct {
	vehicleRepo  *repository.VehicleRepository
	plateService *PlateService
}

func NewVehicleService(vehicleRepo *repository.VehicleRepository, plateService *PlateService) *VehicleService {
	return &VehicleService{
		vehicleRepo:  vehicleRepo,
		plateService: plateService,
	}
}

type RegisterVehicleInput struct {
	ContractorID string
	PlateNumber  string
	BodyVolumeM3 *float64
}

func (s *VehicleService) Register(ctx context.Context, principal model.Principal, input RegisterVehicleInput) (*model.Vehicle, error) {
	if !principal.CanManageVehicles() {
		return nil, ErrPermissionDenied
	}

	contractorID, err := uuid.Parse(input.ContractorID)
	if err != nil {
		return nil, ErrInvalidInput
	}

	normalized, err := s.plateService.Normalize(input.PlateNumber, nil)
	if err != nil {
		return nil, err
	}

	existing, err := s.vehicleRepo.GetByPlate(ctx, normalized.Value)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	vehicle := &model.Vehicle{
		ContractorID: contractorID,
		PlateNumber:  normalized.Value,
		PlateFormat:  normalized.Format,
		BodyVolumeM3: input.BodyVolumeM3,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// GetByPlate accepts any manual spelling of the plate; the argument
// is normalized before the lookup.
func (s *VehicleService) GetByPlate(ctx context.Context, principal model.Principal, raw string) (*model.Vehicle, error) {
	normalized, err := s.plateService.Normalize(raw, nil)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByPlate(ctx, normalized.Value)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrNotFound
	}
	return vehicle, nil
}

func (s *VehicleService) List(ctx context.Context, principal model.Principal, contractorID *string) ([]model.Vehicle, error) {
	filter := repository.VehicleListFilter{}

	if contractorID != nil {
		parsed, err := uuid.Parse(*contractorID)
		if err != nil {
			return nil, ErrInvalidInput
		}
		filter.ContractorID = &parsed
	}

	return s.vehicleRepo.List(ctx, filter)
}
