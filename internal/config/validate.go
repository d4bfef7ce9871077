package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31 (got %d)", c.Auth.BcryptCost)
	}

	if err := c.Directory.validate(); err != nil {
		return fmt.Errorf("directory: %w", err)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("ratelimit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (d *DirectoryConfig) validate() error {
	if d.PageSize <= 0 {
		return fmt.Errorf("page_size must be > 0 (got %d)", d.PageSize)
	}
	if d.BulkConcurrency <= 0 {
		return fmt.Errorf("bulk_concurrency must be > 0 (got %d)", d.BulkConcurrency)
	}
	if d.ImportBatchSize <= 0 {
		return fmt.Errorf("import_batch_size must be > 0 (got %d)", d.ImportBatchSize)
	}
	if d.ActivityRetention <= 0 {
		return fmt.Errorf("activity_retention must be > 0 (got %s)", d.ActivityRetention)
	}
	if d.RecentLimit <= 0 {
		return fmt.Errorf("recent_limit must be > 0 (got %d)", d.RecentLimit)
	}
	if d.ProfileRetries < 0 {
		return fmt.Errorf("profile_retries must be >= 0 (got %d)", d.ProfileRetries)
	}
	return nil
}

func (s *StorageConfig) validate() error {
	s.Type = strings.ToLower(strings.TrimSpace(s.Type))
	switch s.Type {
	case "local":
		if s.LocalPath == "" {
			return fmt.Errorf("local_path is required for local storage")
		}
	case "s3":
		if s.Bucket == "" {
			return fmt.Errorf("bucket is required for s3 storage")
		}
	default:
		return fmt.Errorf("unknown type %q (want local or s3)", s.Type)
	}
	return nil
}
