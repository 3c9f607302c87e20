package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultNominatimURL    = "https://nominatim.openstreetmap.org"
	defaultNominatimRPS    = 1
	defaultGatewayTimeout  = 5 * time.Second
	defaultGeocodeCacheTTL = 24 * time.Hour
	defaultTrackingSync    = 10 * time.Second
	defaultHoursRefresh    = 60 * time.Second
	defaultTrackingIdleTTL = 30 * time.Minute
	defaultKafkaTopic      = "order.status.changed"
)

type (
	Tasks struct {
		TrackingSyncInterval time.Duration
		HoursRefreshInterval time.Duration
		TrackingIdleTTL      time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Log struct {
		Level    string
		FilePath string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	// Redis пустой Addr отключает кэш геокодинга
	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Store struct {
		BranchID int64
	}

	Nominatim struct {
		BaseURL   string
		UserAgent string
		Referer   string
		Timeout   time.Duration
		RPS       int
		CacheTTL  time.Duration
	}

	OrderAPI struct {
		BaseURL string
		Timeout time.Duration
	}

	Admin struct {
		JWTSecret string
	}

	// Kafka пустой Brokers отключает consumer
	Kafka struct {
		Brokers       string
		Topic         string
		ConsumerGroup string
		Sarama        Sarama
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	Config struct {
		Tasks     Tasks
		Server    HTTPServer
		Log       Log
		Database  Database
		Redis     Redis
		Store     Store
		Nominatim Nominatim
		OrderAPI  OrderAPI
		Admin     Admin
		Kafka     Kafka
	}
)

func (k Kafka) Enabled() bool {
	return strings.TrimSpace(k.Brokers) != ""
}

func (k Kafka) BrokerList() []string {
	parts := strings.Split(k.Brokers, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

func (r Redis) Enabled() bool {
	return r.Addr != ""
}

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	trackingSync, err := osGetEnvDurationDefault("BACKGROUND_TRACKING_SYNC_INTERVAL", defaultTrackingSync)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	hoursRefresh, err := osGetEnvDurationDefault("BACKGROUND_HOURS_REFRESH_INTERVAL", defaultHoursRefresh)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	trackingIdle, err := osGetEnvDurationDefault("TRACKING_IDLE_TTL", defaultTrackingIdleTTL)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	branchID, err := osGetInt("STORE_BRANCH_ID")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	nominatimTimeout, err := osGetEnvDurationDefault("NOMINATIM_TIMEOUT", defaultGatewayTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	nominatimRPS, err := osGetInt("NOMINATIM_RPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if nominatimRPS == 0 {
		nominatimRPS = defaultNominatimRPS
	}

	geocodeCacheTTL, err := osGetEnvDurationDefault("GEOCODE_CACHE_TTL", defaultGeocodeCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderAPITimeout, err := osGetEnvDurationDefault("ORDER_API_TIMEOUT", defaultGatewayTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			TrackingSyncInterval: trackingSync,
			HoursRefreshInterval: hoursRefresh,
			TrackingIdleTTL:      trackingIdle,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Log: Log{
			Level:    os.Getenv("LOG_LEVEL"),
			FilePath: os.Getenv("LOG_FILE"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Store: Store{
			BranchID: int64(branchID),
		},
		Nominatim: Nominatim{
			BaseURL:   osGetDefault("NOMINATIM_URL", defaultNominatimURL),
			UserAgent: os.Getenv("NOMINATIM_USER_AGENT"),
			Referer:   os.Getenv("NOMINATIM_REFERER"),
			Timeout:   nominatimTimeout,
			RPS:       nominatimRPS,
			CacheTTL:  geocodeCacheTTL,
		},
		OrderAPI: OrderAPI{
			BaseURL: os.Getenv("ORDER_API_URL"),
			Timeout: orderAPITimeout,
		},
		Admin: Admin{
			JWTSecret: os.Getenv("ADMIN_JWT_SECRET"),
		},
		Kafka: Kafka{
			Brokers:       os.Getenv("KAFKA_BROKERS"),
			Topic:         osGetDefault("KAFKA_TOPIC", defaultKafkaTopic),
			ConsumerGroup: os.Getenv("KAFKA_CONSUMER_GROUP"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Store.BranchID <= 0 {
		return errors.New("STORE_BRANCH_ID is required and must be positive")
	}

	if cfg.Nominatim.UserAgent == "" {
		return errors.New("NOMINATIM_USER_AGENT is required (usage policy asks for an identifying agent)")
	}
	if cfg.Nominatim.RPS < 0 {
		return errors.New("NOMINATIM_RPS must be positive")
	}

	if cfg.OrderAPI.BaseURL == "" {
		return errors.New("ORDER_API_URL is required")
	}

	if cfg.Admin.JWTSecret == "" {
		return errors.New("ADMIN_JWT_SECRET is required")
	}

	if cfg.Tasks.TrackingSyncInterval <= 0 {
		return errors.New("BACKGROUND_TRACKING_SYNC_INTERVAL must be positive")
	}
	if cfg.Tasks.HoursRefreshInterval <= 0 {
		return errors.New("BACKGROUND_HOURS_REFRESH_INTERVAL must be positive")
	}

	if !cfg.Kafka.Enabled() {
		return nil
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	return nil
}

func osGetDefault(s, def string) string {
	val := os.Getenv(s)
	if val == "" {
		return def
	}
	return val
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	return osGetEnvDurationDefault(s, 0)
}

func osGetEnvDurationDefault(s string, def time.Duration) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
