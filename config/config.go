package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type (
	APP struct {
		Name string
		Host string
		Port string
		Env  string
		// Domain is the public base URL used to build view links,
		// e.g. "https://share.example.com".
		Domain string
	}
	DB struct {
		User     string
		Password string
		Name     string
		Host     string
		Port     string
	}
	S3 struct {
		Endpoint        string
		Region          string
		AccessKeyID     string
		SecretAccessKey string
		Bucket          string
		UseSSL          bool
	}
	Upload struct {
		AllowedExtensions []string
		AllowedOrigins    []string
	}
	Log struct {
		Path       string
		MaxSizeMB  int
		MaxBackups int
		MaxAgeDays int
	}
	Reaper struct {
		Interval time.Duration
	}

	Config struct {
		App    APP
		DB     DB
		S3     S3
		Upload Upload
		Log    Log
		Reaper Reaper
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvList(key, def string) []string {
	parts := strings.Split(getEnv(key, def), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func Load() Config {
	app := APP{
		Name:   getEnv("SERVICE_NAME", "fileshare-api"),
		Host:   getEnv("SERVICE_HOST", ""),
		Port:   getEnv("SERVICE_PORT", "8080"),
		Env:    getEnv("SERVICE_ENV", ""),
		Domain: strings.TrimRight(getEnv("SERVICE_DOMAIN", "http://localhost:8080"), "/"),
	}
	db := DB{
		User:     getEnv("POSTGRES_USER", ""),
		Password: getEnv("POSTGRES_PASSWORD", ""),
		Name:     getEnv("POSTGRES_DB", ""),
		Host:     getEnv("POSTGRES_HOST", ""),
		Port:     getEnv("POSTGRES_PORT", ""),
	}
	s3 := S3{
		Endpoint:        getEnv("S3_ENDPOINT", ""),
		Region:          getEnv("S3_REGION", "auto"),
		AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		Bucket:          getEnv("S3_BUCKET", ""),
		UseSSL:          getEnv("S3_USE_SSL", "true") == "true",
	}
	upload := Upload{
		AllowedExtensions: getEnvList("UPLOAD_ALLOWED_EXTENSIONS",
			"jpg,jpeg,png,gif,webp,pdf,txt,md,zip,mp4,mp3"),
		AllowedOrigins: getEnvList("UPLOAD_ALLOWED_ORIGINS",
			"http://localhost:5173"),
	}
	lg := Log{
		Path:       getEnv("LOG_PATH", ""),
		MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
		MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 7),
	}
	reaper := Reaper{
		Interval: getEnvDuration("REAPER_INTERVAL", 30*time.Minute),
	}

	return Config{
		App:    app,
		DB:     db,
		S3:     s3,
		Upload: upload,
		Log:    lg,
		Reaper: reaper,
	}
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	), nil
}
