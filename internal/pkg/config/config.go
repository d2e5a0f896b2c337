package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/rizaldy/angkut/internal/pkg/models"
)

// InitConfig loads configuration from an optional env file and the
// environment. Environment variables always win over file values.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return configFromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "dispatch-service")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_DATABASE", "angkut")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQ_NSQD_ADDRESS", "localhost:4150")
	v.SetDefault("NSQ_LOOKUPD_ADDRESS", "localhost:4161")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRATION", 3600)
	v.SetDefault("JWT_ISSUER", "angkut")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")

	v.SetDefault("LOCATION_MAX_AGE_SECONDS", 120)
	v.SetDefault("LOCATION_GEOHASH_PRECISION", 6)

	v.SetDefault("MATCH_NEARBY_LIMIT", 10)

	v.SetDefault("ETA_OSRM_ENDPOINT", "")
	v.SetDefault("ETA_AVG_SPEED_KMH", 30.0)
}

func configFromViper(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.NSQ.NSQDAddress = v.GetString("NSQ_NSQD_ADDRESS")
	configs.NSQ.LookupdAddress = v.GetString("NSQ_LOOKUPD_ADDRESS")

	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	configs.Location.MaxAgeSeconds = v.GetInt("LOCATION_MAX_AGE_SECONDS")
	configs.Location.GeohashPrecision = uint(v.GetInt("LOCATION_GEOHASH_PRECISION"))

	configs.Match.NearbyLimit = v.GetInt("MATCH_NEARBY_LIMIT")

	configs.ETA.OSRMEndpoint = v.GetString("ETA_OSRM_ENDPOINT")
	configs.ETA.AvgSpeedKmh = v.GetFloat64("ETA_AVG_SPEED_KMH")

	return configs
}
