package geocache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"storefront/internal/entities"
)

const keyPrefix = "storefront:"

type pointDB struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Repository struct {
	client Client
}

func New(client Client) *Repository {
	return &Repository{
		client: client,
	}
}

// Get nil, nil при промахе.
func (r *Repository) Get(ctx context.Context, key string) (*entities.GeoPoint, error) {
	raw, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected geocache repository get error: %w", err)
	}

	var p pointDB
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("geocache entry %q: %w", key, err)
	}

	return &entities.GeoPoint{Lat: p.Lat, Lng: p.Lng}, nil
}

func (r *Repository) Set(ctx context.Context, key string, point entities.GeoPoint, ttl time.Duration) error {
	raw, err := json.Marshal(pointDB{Lat: point.Lat, Lng: point.Lng})
	if err != nil {
		return fmt.Errorf("geocache entry %q: %w", key, err)
	}

	if err := r.client.Set(ctx, keyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("unexpected geocache repository set error: %w", err)
	}
	return nil
}
