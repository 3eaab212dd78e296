package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host           string   `yaml:"host"`
		Port           int      `yaml:"port"`
		Env            string   `yaml:"env"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret     string `yaml:"secret"`
		TTLMinutes int    `yaml:"ttl_minutes"`
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		ResetBaseURL string `yaml:"reset_base_url"`
	} `yaml:"email"`

	Storage struct {
		Type      string `yaml:"type"`       // local, s3
		BasePath  string `yaml:"base_path"`  // for local storage
		BaseURL   string `yaml:"base_url"`   // public URL base
		Bucket    string `yaml:"bucket"`     // for S3
		Region    string `yaml:"region"`     // for S3
		AccessKey string `yaml:"access_key"` // for S3
		SecretKey string `yaml:"secret_key"` // for S3
		Endpoint  string `yaml:"endpoint"`   // for custom S3 endpoints
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"` // bytes
		AllowedTypes []string `yaml:"allowed_types"`
	} `yaml:"upload"`

	Geocoding struct {
		Endpoint       string `yaml:"endpoint"`
		APIKey         string `yaml:"api_key"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"geocoding"`
}

var AppConfig *Config

// LoadConfig reads configuration from CONFIG_PATH (default
// config/config.yaml). When DATABASE_URL is set, environment variables take
// over entirely, which is how tests and container deployments run.
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTLMinutes, _ = strconv.Atoi(os.Getenv("JWT_TTL_MINUTES"))

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("SMTP_FROM")
	cfg.Email.ResetBaseURL = os.Getenv("RESET_BASE_URL")

	cfg.Storage.Type = os.Getenv("STORAGE_TYPE")
	cfg.Storage.BasePath = os.Getenv("STORAGE_BASE_PATH")
	cfg.Storage.BaseURL = os.Getenv("STORAGE_BASE_URL")
	cfg.Storage.Bucket = os.Getenv("STORAGE_BUCKET")
	cfg.Storage.Region = os.Getenv("STORAGE_REGION")
	cfg.Storage.AccessKey = os.Getenv("STORAGE_ACCESS_KEY")
	cfg.Storage.SecretKey = os.Getenv("STORAGE_SECRET_KEY")
	cfg.Storage.Endpoint = os.Getenv("STORAGE_ENDPOINT")

	cfg.Geocoding.Endpoint = os.Getenv("GEOCODING_ENDPOINT")
	cfg.Geocoding.APIKey = os.Getenv("GEOCODING_API_KEY")

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.Server.AllowedOrigins = strings.Split(origins, ",")
	}

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.JWT.TTLMinutes == 0 {
		cfg.JWT.TTLMinutes = 24 * 60
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/api/v1/files"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{
			"application/pdf", "image/jpeg", "image/png",
		}
	}
	if cfg.Geocoding.TimeoutSeconds == 0 {
		cfg.Geocoding.TimeoutSeconds = 10
	}
}

// GetConfig returns the loaded configuration, loading it on first use.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
