package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.LoginRateLimit < 0 {
		return fmt.Errorf("server.login_rate_limit must be >= 0 (got %d)", c.Server.LoginRateLimit)
	}

	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must be >= 0 (got %s)", c.Database.StatementTimeout)
	}

	if c.Auth.VKAppSecret == "" {
		return fmt.Errorf("auth.vk_app_secret is required")
	}

	ids, err := ParseVKIDs(c.Auth.AdminVKIDsRaw)
	if err != nil {
		return fmt.Errorf("auth.admin_vk_ids: %w", err)
	}
	c.Auth.AdminVKIDs = ids

	if err := c.Achievements.validate(); err != nil {
		return fmt.Errorf("achievements: %w", err)
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing.sample_ratio must be within [0, 1] (got %v)", c.Tracing.SampleRatio)
	}

	return nil
}

func (a *AchievementsConfig) validate() error {
	if a.BatchConcurrency <= 0 {
		return fmt.Errorf("batch_concurrency must be > 0 (got %d)", a.BatchConcurrency)
	}
	if a.RetryAttempts < 1 {
		return fmt.Errorf("retry_attempts must be >= 1 (got %d)", a.RetryAttempts)
	}
	if a.PerBoecTimeout <= 0 {
		return fmt.Errorf("per_boec_timeout must be > 0 (got %s)", a.PerBoecTimeout)
	}
	return nil
}
