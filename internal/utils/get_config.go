package utils

import (
	"fmt"
	"os"
	"strconv"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const DefaultConfigPath = "config.yaml"

type Config struct {
	// Server configuration
	AppPort        string `yaml:"APP_PORT" validate:"required,numeric"`
	AllowedOrigins string `yaml:"ALLOWED_ORIGINS"`
	RateLimitMax   int    `yaml:"RATE_LIMIT_MAX" validate:"gte=0"`
	LogPath        string `yaml:"LOG_PATH" validate:"required"`
	LogLevel       string `yaml:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error"`
	// Timezone names the calendar used to decide "today". Empty means the
	// process local zone.
	Timezone string `yaml:"TIMEZONE" validate:"omitempty,timezone"`

	// Catalog configuration
	CatalogSource    string `yaml:"CATALOG_SOURCE" validate:"required,oneof=file s3 postgres"`
	CatalogPath      string `yaml:"CATALOG_PATH" validate:"required_if=CatalogSource file"`
	CatalogObjectKey string `yaml:"CATALOG_OBJECT_KEY" validate:"required_if=CatalogSource s3"`

	// Database configuration
	DBUser     string `yaml:"DB_USER" validate:"required_if=CatalogSource postgres"`
	DBName     string `yaml:"DB_NAME" validate:"required_if=CatalogSource postgres"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT" validate:"omitempty,numeric"`
	DBHost     string `yaml:"DB_HOST" validate:"required_if=CatalogSource postgres"`

	// AWS S3 configuration
	AWSS3Bucket   string `yaml:"AWS_S3_BUCKET" validate:"required_if=CatalogSource s3"`
	AWSS3Region   string `yaml:"AWS_S3_REGION"`
	AWSS3Endpoint string `yaml:"AWS_S3_ENDPOINT" validate:"omitempty,url"`
	AWSAccessKey  string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey  string `yaml:"AWS_SECRET_KEY"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:        "3000",
		AllowedOrigins: "*",
		RateLimitMax:   10,
		LogPath:        "./logs/app.log",
		LogLevel:       "info",
		CatalogSource:  "file",
		CatalogPath:    "data.json",
		DBPort:         "5432",
		AWSS3Region:    "auto",
	}
}

// LoadConfig resets the configuration to its defaults, then layers a .env
// file, the YAML file at path and finally the process environment on top.
// Missing files are not an error.
func LoadConfig(path string) error {
	cfg := defaultConfig()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("error reading .env file: %v", err)
	}

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		log.Infof("%s not found, using defaults and environment", path)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return err
	}

	config = cfg
	return nil
}

// ValidateConfig checks the loaded configuration.
func ValidateConfig() error {
	InitValidator()
	return Validate.Struct(config)
}

func applyEnv(cfg *Config) error {
	for _, key := range configKeys {
		value, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		if err := setConfig(cfg, key, value); err != nil {
			return err
		}
	}
	return nil
}

var configKeys = []string{
	"APP_PORT", "ALLOWED_ORIGINS", "RATE_LIMIT_MAX", "LOG_PATH", "LOG_LEVEL", "TIMEZONE",
	"CATALOG_SOURCE", "CATALOG_PATH", "CATALOG_OBJECT_KEY",
	"DB_USER", "DB_NAME", "DB_PASSWORD", "DB_PORT", "DB_HOST",
	"AWS_S3_BUCKET", "AWS_S3_REGION", "AWS_S3_ENDPOINT", "AWS_ACCESS_KEY", "AWS_SECRET_KEY",
}

func setConfig(cfg *Config, key, value string) error {
	switch key {
	case "APP_PORT":
		cfg.AppPort = value
	case "ALLOWED_ORIGINS":
		cfg.AllowedOrigins = value
	case "RATE_LIMIT_MAX":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT_MAX: %w", err)
		}
		cfg.RateLimitMax = n
	case "LOG_PATH":
		cfg.LogPath = value
	case "LOG_LEVEL":
		cfg.LogLevel = value
	case "TIMEZONE":
		cfg.Timezone = value
	case "CATALOG_SOURCE":
		cfg.CatalogSource = value
	case "CATALOG_PATH":
		cfg.CatalogPath = value
	case "CATALOG_OBJECT_KEY":
		cfg.CatalogObjectKey = value
	case "DB_USER":
		cfg.DBUser = value
	case "DB_NAME":
		cfg.DBName = value
	case "DB_PASSWORD":
		cfg.DBPassword = value
	case "DB_PORT":
		cfg.DBPort = value
	case "DB_HOST":
		cfg.DBHost = value
	case "AWS_S3_BUCKET":
		cfg.AWSS3Bucket = value
	case "AWS_S3_REGION":
		cfg.AWSS3Region = value
	case "AWS_S3_ENDPOINT":
		cfg.AWSS3Endpoint = value
	case "AWS_ACCESS_KEY":
		cfg.AWSAccessKey = value
	case "AWS_SECRET_KEY":
		cfg.AWSSecretKey = value
	}
	return nil
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "ALLOWED_ORIGINS":
		return config.AllowedOrigins
	case "RATE_LIMIT_MAX":
		return strconv.Itoa(config.RateLimitMax)
	case "LOG_PATH":
		return config.LogPath
	case "LOG_LEVEL":
		return config.LogLevel
	case "TIMEZONE":
		return config.Timezone
	case "CATALOG_SOURCE":
		return config.CatalogSource
	case "CATALOG_PATH":
		return config.CatalogPath
	case "CATALOG_OBJECT_KEY":
		return config.CatalogObjectKey
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_S3_ENDPOINT":
		return config.AWSS3Endpoint
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}

func GetConfigInt(key string) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		return 0
	}
	return n
}
