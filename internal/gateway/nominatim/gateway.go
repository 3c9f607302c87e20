package nominatim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront/internal/entities"
	"storefront/internal/gateway"
	"storefront/pkg/logger"
	retrierconfig "storefront/pkg/retrier"
	"storefront/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "nominatim"

	countryName = "Kuwait"
	countryCode = "kw"

	maxBodyBytes = 1 << 20
	cacheKeyBase = "geocode:"
)

type Config struct {
	BaseURL   string
	UserAgent string
	Referer   string
	Timeout   time.Duration
	CacheTTL  time.Duration
}

type Gateway struct {
	cfg     Config
	client  *http.Client
	limiter Limiter
	cache   Cache
	retrier retrierconfig.Retrier
	log     gatewayLogger
}

func New(cfg Config, limiter Limiter, cache Cache, log gatewayLogger) *Gateway {
	return &Gateway{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: limiter,
		cache:   cache,
		retrier: backoff_adapter.New(retrierconfig.Request(gateway.IsRetryable)),
		log:     log.With(logger.NewField("gateway", serviceName)),
	}
}

// Geocode адрес -> точка. nil, nil если сервис ничего не нашёл или ответил не 2xx,
// ошибка только для транспорта и нечитаемого ответа.
func (g *Gateway) Geocode(ctx context.Context, address entities.StructuredAddress) (*entities.GeoPoint, error) {
	query := BuildQuery(address)
	cacheKey := cacheKeyBase + strings.ToLower(query)

	if point := g.fromCache(ctx, cacheKey); point != nil {
		return point, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("countrycodes", countryCode)
	params.Set("limit", "1")

	var results []searchResult
	err := g.get(ctx, "Search", "/search", params, &results)
	if err != nil {
		var statusErr *gateway.StatusError
		if errors.As(err, &statusErr) {
			return nil, nil
		}
		return nil, fmt.Errorf("gateway nominatim, geocode %q: %w", query, err)
	}

	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("gateway nominatim, parse lat %q: %w", results[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("gateway nominatim, parse lon %q: %w", results[0].Lon, err)
	}

	point := entities.GeoPoint{Lat: lat, Lng: lng}
	g.toCache(ctx, cacheKey, point)

	return &point, nil
}

// ReverseGeocode точка -> частичный адрес, отсутствующие поля остаются пустыми.
func (g *Gateway) ReverseGeocode(ctx context.Context, point entities.GeoPoint) (*entities.StructuredAddress, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(point.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(point.Lng, 'f', -1, 64))
	params.Set("zoom", "18")
	params.Set("addressdetails", "1")

	var result reverseResult
	err := g.get(ctx, "Reverse", "/reverse", params, &result)
	if err != nil {
		return nil, fmt.Errorf("gateway nominatim, reverse geocode: %w", err)
	}

	a := result.Address
	return &entities.StructuredAddress{
		Area:     firstNonEmpty(a.Suburb, a.Neighbourhood, a.CityDistrict, a.Town, a.City),
		Street:   firstNonEmpty(a.Road, a.Street),
		Block:    a.Quarter,
		Building: a.HouseNumber,
	}, nil
}

// BuildQuery "Salmiya, Block 10, Baghdad St, Building 5, Kuwait", пустые части пропускаются.
func BuildQuery(address entities.StructuredAddress) string {
	parts := make([]string, 0, 5)

	if area := strings.TrimSpace(address.Area); area != "" {
		parts = append(parts, area)
	}
	if block := strings.TrimSpace(address.Block); block != "" {
		parts = append(parts, "Block "+block)
	}
	if street := strings.TrimSpace(address.Street); street != "" {
		parts = append(parts, street)
	}
	if building := strings.TrimSpace(address.Building); building != "" {
		parts = append(parts, "Building "+building)
	}
	parts = append(parts, countryName)

	return strings.Join(parts, ", ")
}

func (g *Gateway) get(ctx context.Context, method, path string, params url.Values, out any) error {
	endpoint := strings.TrimRight(g.cfg.BaseURL, "/") + path + "?" + params.Encode()

	return gateway.ExecuteWithMetrics(ctx, g.retrier, serviceName, method, func(ctx context.Context) error {
		// публичный сервис просит не больше 1 запроса в секунду
		if err := g.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("User-Agent", g.cfg.UserAgent)
		req.Header.Set("Referer", g.cfg.Referer)
		req.Header.Set("Accept-Language", "en")
		req.Header.Set("Accept", "application/json")

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &gateway.StatusError{Code: resp.StatusCode, Body: string(body)}
		}

		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode body: %w", err)
		}
		return nil
	})
}

func (g *Gateway) fromCache(ctx context.Context, key string) *entities.GeoPoint {
	if g.cache == nil {
		return nil
	}

	point, err := g.cache.Get(ctx, key)
	if err != nil {
		gateway.GatewayCacheTotal.WithLabelValues(serviceName, "error").Inc()
		g.log.Warn("geocode cache read failed",
			logger.NewField("key", key),
			logger.NewField("error", err),
		)
		return nil
	}
	if point == nil {
		gateway.GatewayCacheTotal.WithLabelValues(serviceName, "miss").Inc()
		return nil
	}

	gateway.GatewayCacheTotal.WithLabelValues(serviceName, "hit").Inc()
	return point
}

func (g *Gateway) toCache(ctx context.Context, key string, point entities.GeoPoint) {
	if g.cache == nil {
		return
	}

	if err := g.cache.Set(ctx, key, point, g.cfg.CacheTTL); err != nil {
		g.log.Warn("geocode cache write failed",
			logger.NewField("key", key),
			logger.NewField("error", err),
		)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
