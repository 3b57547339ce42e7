package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingJWTSecret is returned by Load when no signing secret is configured.
var ErrMissingJWTSecret = errors.New("jwt.secret must be set (env JWT_SECRET or ATS_JWT_SECRET)")

// Config holds all configuration for the application
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"database"`
	Redis  RedisConfig  `mapstructure:"redis"`
	JWT    JWTConfig    `mapstructure:"jwt"`
	CORS   CORSConfig   `mapstructure:"cors"`
	Upload UploadConfig `mapstructure:"upload"`
}

// AppConfig holds process wide settings.
type AppConfig struct {
	Environment string `mapstructure:"environment"`
}

// IsDevelopment reports whether error details may be exposed to clients.
func (a AppConfig) IsDevelopment() bool {
	return strings.EqualFold(a.Environment, "development")
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

// DBConfig holds database specific configuration
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxConns int32  `mapstructure:"max_conns"`
}

// RedisConfig holds the job list cache connection. An empty Addr disables caching.
type RedisConfig struct {
	Addr       string        `mapstructure:"addr"`
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db"`
	JobListTTL time.Duration `mapstructure:"job_list_ttl"`
}

// JWTConfig holds token signing settings. Secret signs new tokens;
// PreviousSecrets are still accepted for verification during rotation.
type JWTConfig struct {
	Secret          string        `mapstructure:"secret"`
	PreviousSecrets []string      `mapstructure:"previous_secrets"`
	Expiration      time.Duration `mapstructure:"expiration"`
}

// CORSConfig holds CORS specific configuration
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig holds resume upload limits.
type UploadConfig struct {
	Dir               string   `mapstructure:"dir"`
	MaxBytes          int64    `mapstructure:"max_bytes"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
}

// Load configuration from .env, an optional config file and environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/app/config")
	v.AddConfigPath("/app")

	// --- Set Default Values ---
	v.SetDefault("app.environment", "production")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "ats")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.job_list_ttl", 5*time.Minute)
	v.SetDefault("jwt.expiration", 7*24*time.Hour)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.max_bytes", 5_000_000)
	v.SetDefault("upload.allowed_extensions", []string{".pdf", ".doc", ".docx"})

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Config file not found, using defaults and environment variables.")
		} else {
			log.Printf("Error reading config file: %v", err)
		}
	}

	v.SetEnvPrefix("ATS") // e.g. ATS_JWT_SECRET
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(&cfg)

	if strings.TrimSpace(cfg.JWT.Secret) == "" {
		return nil, ErrMissingJWTSecret
	}

	log.Printf("Configuration loaded: Env=%s Server Port=%d, DB Host=%s, Redis=%q, Allowed Origins=%v",
		cfg.App.Environment, cfg.Server.Port, cfg.DB.Host, cfg.Redis.Addr, cfg.CORS.AllowedOrigins)

	return &cfg, nil
}

// applyEnvOverrides applies the unprefixed variables used by the container setup.
func applyEnvOverrides(cfg *Config) {
	if env := os.Getenv("APP_ENV"); env != "" {
		cfg.App.Environment = env
	}
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Server.Port = port
		}
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.DB.Host = host
	}
	if portStr := os.Getenv("DB_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.DB.Port = port
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.DB.User = user
	}
	if pass := os.Getenv("DB_PASSWORD"); pass != "" {
		cfg.DB.Password = pass
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.DB.Name = name
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if prev := os.Getenv("JWT_PREVIOUS_SECRETS"); prev != "" {
		cfg.JWT.PreviousSecrets = splitList(prev)
	}
	if originsStr := os.Getenv("CORS_ALLOWED_ORIGINS"); originsStr != "" {
		cfg.CORS.AllowedOrigins = splitList(originsStr)
	}
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		cfg.Upload.Dir = dir
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
