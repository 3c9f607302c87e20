package zone

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"storefront/internal/entities"
	"storefront/internal/repository"
	"storefront/internal/service/zone"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var zoneColumns = []string{
	"id::text",
	"branch_id",
	"zone_name",
	"coordinates",
	"delivery_fee::text",
	"min_order_amount::text",
	"status",
	"created_at",
	"updated_at",
}

var returning = "RETURNING " + strings.Join(zoneColumns, ", ")

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetZones порядок вставки важен: при пересечении зон побеждает первая.
func (r *Repository) GetZones(ctx context.Context, filter entities.ZoneFilter) ([]entities.DeliveryZone, error) {
	builder := qb.
		Select(zoneColumns...).
		From("delivery_zones").
		Where(sq.Eq{"branch_id": filter.BranchID}).
		OrderBy("created_at", "id")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository getzones error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository getzones error: %w", err)
	}
	defer rows.Close()

	zoneModels := make([]ZoneDB, 0, 8)
	for rows.Next() {
		var zoneModel ZoneDB
		if err := scanZone(rows, &zoneModel); err != nil {
			return nil, fmt.Errorf("unexpected zone repository getzones error: %w", err)
		}
		zoneModels = append(zoneModels, zoneModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected zone repository getzones error: %w", err)
	}

	return ToDomainList(zoneModels)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.DeliveryZone, error) {
	query, args, err := qb.
		Select(zoneColumns...).
		From("delivery_zones").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository getbyid error: %w", err)
	}

	var zoneModel ZoneDB
	err = scanZone(r.querier.QueryRow(ctx, query, args...), &zoneModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || repository.IsInvalidInput(err) {
			return nil, zone.ErrZoneNotFound
		}
		return nil, fmt.Errorf("unexpected zone repository getbyid error: %w", err)
	}

	return ToDomain(&zoneModel)
}

func (r *Repository) Create(ctx context.Context, zoneEntity entities.DeliveryZone) (*entities.DeliveryZone, error) {
	coordinates, err := EncodeCoordinates(zoneEntity.Coordinates)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.
		Insert("delivery_zones").
		Columns("id", "branch_id", "zone_name", "coordinates", "delivery_fee", "min_order_amount", "status").
		Values(
			zoneEntity.ID,
			zoneEntity.BranchID,
			zoneEntity.Name,
			coordinates,
			zoneEntity.DeliveryFee.String(),
			zoneEntity.MinOrderAmount.String(),
			zoneEntity.Status.String(),
		).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository create error: %w", err)
	}

	var zoneModel ZoneDB
	err = scanZone(r.querier.QueryRow(ctx, query, args...), &zoneModel)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, zone.ErrConflict
		}
		return nil, fmt.Errorf("unexpected zone repository create error: %w", err)
	}

	return ToDomain(&zoneModel)
}

func (r *Repository) Update(ctx context.Context, zoneModifyEntity entities.ZoneModify) (*entities.DeliveryZone, error) {
	zoneModifyModel, err := FromDomainModify(&zoneModifyEntity)
	if err != nil {
		return nil, err
	}
	if zoneModifyModel.ID == nil {
		return nil, zone.ErrInvalidZoneID
	}

	builder := qb.
		Update("delivery_zones")

	// опциональные поля
	if zoneModifyModel.Name != nil {
		builder = builder.Set("zone_name", zoneModifyModel.Name)
	}
	if zoneModifyModel.Coordinates != nil {
		builder = builder.Set("coordinates", zoneModifyModel.Coordinates)
	}
	if zoneModifyModel.DeliveryFee != nil {
		builder = builder.Set("delivery_fee", zoneModifyModel.DeliveryFee)
	}
	if zoneModifyModel.MinOrderAmount != nil {
		builder = builder.Set("min_order_amount", zoneModifyModel.MinOrderAmount)
	}
	if zoneModifyModel.Status != nil {
		builder = builder.Set("status", zoneModifyModel.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	query, args, err := builder.
		Where(sq.Eq{"id": zoneModifyModel.ID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository update error: %w", err)
	}

	var zoneModel ZoneDB
	err = scanZone(r.querier.QueryRow(ctx, query, args...), &zoneModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, zone.ErrZoneNotFound
		}
		if repository.IsUniqueViolation(err) {
			return nil, zone.ErrConflict
		}
		return nil, fmt.Errorf("unexpected zone repository update error: %w", err)
	}

	return ToDomain(&zoneModel)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM delivery_zones WHERE id = $1`, id)
	if err != nil {
		if repository.IsInvalidInput(err) {
			return zone.ErrZoneNotFound
		}
		return fmt.Errorf("unexpected zone repository delete error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return zone.ErrZoneNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanZone(row rowScanner, zoneModel *ZoneDB) error {
	return row.Scan(
		&zoneModel.ID,
		&zoneModel.BranchID,
		&zoneModel.Name,
		&zoneModel.Coordinates,
		&zoneModel.DeliveryFee,
		&zoneModel.MinOrderAmount,
		&zoneModel.Status,
		&zoneModel.CreatedAt,
		&zoneModel.UpdatedAt,
	)
}
