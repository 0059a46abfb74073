package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port string

	JWTSecret string

	S3Bucket    string // bucket for signatures, slips and job photos
	S3PublicURL string // public base URL prepended to stored object paths

	GoEnv string // dev/prod
	FEURL string // frontend origin, used for CORS
}

// Load reads the environment. Database settings are read by db.Connect
// directly; everything else the process needs is validated here so a
// missing variable fails at boot, not on the first request.
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),

		GoEnv: os.Getenv("GO_ENV"),
		FEURL: os.Getenv("FE_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.GoEnv == "" {
		cfg.GoEnv = "dev"
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.S3Bucket == "" {
		return Config{}, fmt.Errorf("S3_BUCKET is required")
	}
	if cfg.S3PublicURL == "" {
		region := os.Getenv("AWS_REGION")
		if region == "" {
			return Config{}, fmt.Errorf("S3_PUBLIC_URL or AWS_REGION is required")
		}
		cfg.S3PublicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, region)
	}

	return cfg, nil
}
