package zone

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"storefront/internal/entities"
)

type Zone struct {
	repository Repository
	geocoder   Geocoder
	txManager  TxManager
	branchID   int64
}

func New(repository Repository, geocoder Geocoder, txManager TxManager, branchID int64) *Zone {
	return &Zone{
		repository: repository,
		geocoder:   geocoder,
		txManager:  txManager,
		branchID:   branchID,
	}
}

// ValidateLocation проверяет точку, выбранную на карте, по активным зонам филиала.
func (s *Zone) ValidateLocation(ctx context.Context, point entities.GeoPoint) (*entities.MatchResult, error) {
	if !isValidPoint(point) {
		return nil, ErrInvalidPoint
	}

	zones, err := s.activeZones(ctx)
	if err != nil {
		return nil, err
	}

	result := MatchZone(point, zones)
	result.Point = &point
	return &result, nil
}

// ValidateAddress геокодит адрес и проверяет полученную точку.
// И пустой ответ геокодера, и транспортная ошибка дают ErrAddressNotResolved,
// причина во втором случае обёрнута для логов.
func (s *Zone) ValidateAddress(ctx context.Context, address entities.StructuredAddress) (*entities.MatchResult, error) {
	if address.IsEmpty() {
		return nil, ErrEmptyAddress
	}

	point, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAddressNotResolved, err)
	}
	if point == nil {
		return nil, ErrAddressNotResolved
	}

	return s.ValidateLocation(ctx, *point)
}

func (s *Zone) GetZones(ctx context.Context, status *entities.ZoneStatusType) ([]entities.DeliveryZone, error) {
	if status != nil && !isValidStatus(status.String()) {
		return nil, ErrInvalidStatus
	}

	zones, err := s.repository.GetZones(ctx, entities.ZoneFilter{
		BranchID: s.branchID,
		Status:   status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get zones: %w", err)
	}

	return zones, nil
}

func (s *Zone) CreateZone(ctx context.Context, zoneModify entities.ZoneModify) (*entities.DeliveryZone, error) {
	if zoneModify.Name == nil ||
		zoneModify.Coordinates == nil ||
		zoneModify.DeliveryFee == nil {
		return nil, ErrMissingRequiredFields
	}

	if err := validateModify(zoneModify); err != nil {
		return nil, err
	}

	zone := entities.DeliveryZone{
		ID:             uuid.NewString(),
		BranchID:       s.branchID,
		Name:           *zoneModify.Name,
		Coordinates:    *zoneModify.Coordinates,
		DeliveryFee:    *zoneModify.DeliveryFee,
		MinOrderAmount: decimal.Zero,
		Status:         entities.DefaultZoneStatus,
	}
	if zoneModify.MinOrderAmount != nil {
		zone.MinOrderAmount = *zoneModify.MinOrderAmount
	}
	if zoneModify.Status != nil {
		zone.Status = *zoneModify.Status
	}

	created, err := s.repository.Create(ctx, zone)
	if err != nil {
		return nil, fmt.Errorf("create zone: %w", err)
	}

	return created, nil
}

func (s *Zone) UpdateZone(ctx context.Context, zoneModify entities.ZoneModify) (*entities.DeliveryZone, error) {
	if zoneModify.ID == nil || !isValidZoneID(*zoneModify.ID) {
		return nil, ErrInvalidZoneID
	}

	if zoneModify.Name == nil &&
		zoneModify.Coordinates == nil &&
		zoneModify.DeliveryFee == nil &&
		zoneModify.MinOrderAmount == nil &&
		zoneModify.Status == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := validateModify(zoneModify); err != nil {
		return nil, err
	}

	var updated *entities.DeliveryZone
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repository.GetByID(ctx, *zoneModify.ID)
		if err != nil {
			return fmt.Errorf("get zone: %w", err)
		}
		if existing.BranchID != s.branchID {
			return ErrZoneNotFound
		}

		updated, err = s.repository.Update(ctx, zoneModify)
		if err != nil {
			return fmt.Errorf("update zone: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update zone: %w", err)
	}

	return updated, nil
}

func (s *Zone) DeleteZone(ctx context.Context, id string) error {
	if !isValidZoneID(id) {
		return ErrInvalidZoneID
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get zone: %w", err)
		}
		if existing.BranchID != s.branchID {
			return ErrZoneNotFound
		}

		return s.repository.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete zone: %w", err)
	}

	return nil
}

func (s *Zone) activeZones(ctx context.Context) ([]entities.DeliveryZone, error) {
	active := entities.ZoneActive
	zones, err := s.repository.GetZones(ctx, entities.ZoneFilter{
		BranchID: s.branchID,
		Status:   &active,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load active zones: %w", err)
	}
	return zones, nil
}

func validateModify(zoneModify entities.ZoneModify) error {
	if zoneModify.Name != nil && !isValidName(*zoneModify.Name) {
		return ErrInvalidName
	}
	if zoneModify.Coordinates != nil && !isValidCoordinates(*zoneModify.Coordinates) {
		return ErrInvalidCoordinates
	}
	if zoneModify.DeliveryFee != nil && !isValidAmount(*zoneModify.DeliveryFee) {
		return fmt.Errorf("delivery fee: %w", ErrInvalidAmount)
	}
	if zoneModify.MinOrderAmount != nil && !isValidAmount(*zoneModify.MinOrderAmount) {
		return fmt.Errorf("min order amount: %w", ErrInvalidAmount)
	}
	if zoneModify.Status != nil && !isValidStatus(zoneModify.Status.String()) {
		return ErrInvalidStatus
	}
	return nil
}

func isValidZoneID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// IsNotResolved true для ошибок, после которых клиенту нужно уточнить адрес.
func IsNotResolved(err error) bool {
	return errors.Is(err, ErrAddressNotResolved) || errors.Is(err, ErrEmptyAddress)
}
