package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	APIKey    APIKeyConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
	Trips     TripsConfig
	RateLimit RateLimitConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// APIKeyConfig holds the keys accepted on internal routes
type APIKeyConfig struct {
	UsersService string
	TripsService string
}

// NewRelicConfig contains APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// TripsConfig contains trips service specific configuration
type TripsConfig struct {
	NearbyRadiusKm      float64 `json:"nearby_radius_km"`  // Radius around the pickup point for immediate bookings
	SweepIntervalSec    int     `json:"sweep_interval_sec"`
	LookaheadMinutes    int     `json:"lookahead_minutes"` // How far ahead scheduled trips are considered due
	SweepLockTTLSec     int     `json:"sweep_lock_ttl_sec"`
	MaxReservationTries int     `json:"max_reservation_tries"`
}

// RateLimitConfig bounds request bursts on sensitive routes
type RateLimitConfig struct {
	LoginPerPeriod   int
	BookingPerPeriod int
	PeriodSec        int
}
