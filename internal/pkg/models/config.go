package models

// Config holds all configuration for the dispatch service
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	Location LocationConfig
	Match    MatchConfig
	ETA      ETAConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL configuration
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

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig holds NSQ configuration
type NSQConfig struct {
	NSQDAddress    string
	LookupdAddress string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret     string
	Expiration int
	Issuer     string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// LocationConfig holds driver-location tracking configuration
type LocationConfig struct {
	// MaxAgeSeconds is the staleness window: location samples older than
	// this are excluded from matching.
	MaxAgeSeconds    int
	GeohashPrecision uint
}

// MatchConfig holds matching configuration
type MatchConfig struct {
	NearbyLimit int
}

// ETAConfig holds distance estimator configuration
type ETAConfig struct {
	OSRMEndpoint string
	AvgSpeedKmh  float64
}
