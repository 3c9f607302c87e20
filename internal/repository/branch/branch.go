package branch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"storefront/internal/entities"
	"storefront/internal/service/hours"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetOperatingHours nil, nil когда расписание не задано (NULL).
func (r *Repository) GetOperatingHours(ctx context.Context, branchID int64) (*entities.WeeklyOperatingHours, error) {
	query := `SELECT operating_hours
		FROM branches
		WHERE id = $1`

	var raw []byte
	err := r.querier.QueryRow(ctx, query, branchID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, hours.ErrBranchNotFound
		}
		return nil, fmt.Errorf("unexpected branch repository getoperatinghours error: %w", err)
	}

	if raw == nil || string(raw) == "null" {
		return nil, nil
	}

	var doc OperatingHoursDB
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("branch %d operating_hours: %w", branchID, err)
	}

	return ToDomain(doc), nil
}
