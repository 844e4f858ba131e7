package storage

import (
	"context"
	"fmt"
	"os"
)

type FactoryResult struct {
	Driver  string
	Storage Storage
}

// FromEnv builds the upload driver named by UPLOAD_DRIVER (default local).
func FromEnv(ctx context.Context) (FactoryResult, error) {
	driver := envOr("UPLOAD_DRIVER", "local")

	switch driver {
	case "local":
		baseDir := envOr("UPLOAD_DIR", "./data/uploads")
		urlPrefix := envOr("UPLOAD_URL_PREFIX", "/uploads")
		return FactoryResult{Driver: "local", Storage: NewLocal(baseDir, urlPrefix)}, nil

	case "s3":
		cfg := S3Config{
			Region:        os.Getenv("S3_REGION"),
			Bucket:        os.Getenv("S3_BUCKET"),
			Prefix:        envOr("S3_PREFIX", "uploads"),
			PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
		}
		if cfg.Region == "" || cfg.Bucket == "" || cfg.PublicBaseURL == "" {
			return FactoryResult{}, fmt.Errorf("s3 uploads need S3_REGION, S3_BUCKET and S3_PUBLIC_BASE_URL")
		}
		s, err := NewS3(ctx, cfg)
		if err != nil {
			return FactoryResult{}, err
		}
		return FactoryResult{Driver: "s3", Storage: s}, nil

	default:
		return FactoryResult{}, fmt.Errorf("unknown UPLOAD_DRIVER %q", driver)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
