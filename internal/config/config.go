package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	AWS      AWSConfig
	Presets  PresetsConfig
}

// DatabaseConfig holds database configuration. An empty URL keeps settings in memory.
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// AWSConfig holds AWS/S3 configuration
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	S3Endpoint      string
}

// PresetsConfig holds preset store configuration
type PresetsConfig struct {
	Path           string
	BundledPath    string
	Format         string
	SeedS3Key      string
	BackupS3Prefix string
}

// S3Enabled reports whether object storage is configured
func (c AWSConfig) S3Enabled() bool {
	return c.S3Bucket != ""
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "dev")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("AWS_ACCESS_KEY_ID", "")
	viper.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	viper.SetDefault("S3_BUCKET", "")
	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("PRESETS_PATH", "data/equalizer-presets.plist")
	viper.SetDefault("BUNDLED_PRESETS_PATH", "assets/equalizer-presets.plist")
	viper.SetDefault("PRESETS_FORMAT", "binary")
	viper.SetDefault("SEED_S3_KEY", "")
	viper.SetDefault("BACKUP_S3_PREFIX", "backups")

	// Read from .env files based on environment
	env := viper.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	viper.SetConfigName(".env." + env)
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	_ = viper.ReadInConfig() // file may not exist

	// Environment variables override .env file values
	viper.AutomaticEnv()

	for _, key := range []string{
		"DATABASE_URL", "PORT", "ENVIRONMENT", "LOG_LEVEL",
		"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "S3_BUCKET", "S3_ENDPOINT",
		"ALLOWED_ORIGINS", "PRESETS_PATH", "BUNDLED_PRESETS_PATH", "PRESETS_FORMAT",
		"SEED_S3_KEY", "BACKUP_S3_PREFIX",
	} {
		viper.BindEnv(key)
	}

	var config Config
	config.Database.URL = viper.GetString("DATABASE_URL")
	config.Server.Port = viper.GetString("PORT")
	config.Server.Env = viper.GetString("ENVIRONMENT")
	config.Server.LogLevel = viper.GetString("LOG_LEVEL")
	config.Server.AllowedOrigins = splitList(viper.GetString("ALLOWED_ORIGINS"))
	config.AWS.Region = viper.GetString("AWS_REGION")
	config.AWS.AccessKeyID = viper.GetString("AWS_ACCESS_KEY_ID")
	config.AWS.SecretAccessKey = viper.GetString("AWS_SECRET_ACCESS_KEY")
	config.AWS.S3Bucket = viper.GetString("S3_BUCKET")
	config.AWS.S3Endpoint = viper.GetString("S3_ENDPOINT")
	config.Presets.Path = viper.GetString("PRESETS_PATH")
	config.Presets.BundledPath = viper.GetString("BUNDLED_PRESETS_PATH")
	config.Presets.Format = viper.GetString("PRESETS_FORMAT")
	config.Presets.SeedS3Key = viper.GetString("SEED_S3_KEY")
	config.Presets.BackupS3Prefix = viper.GetString("BACKUP_S3_PREFIX")

	log.Debug().
		Str("env", config.Server.Env).
		Str("presets_path", config.Presets.Path).
		Bool("s3", config.AWS.S3Enabled()).
		Bool("database", config.Database.URL != "").
		Strs("allowed_origins", config.Server.AllowedOrigins).
		Msg("Configuration loaded")

	return &config, nil
}

// GetStringOrDefault returns the value from viper if set, otherwise returns the default
func GetStringOrDefault(envVar, def string) string {
	if viper.IsSet(envVar) {
		return viper.GetString(envVar)
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
