package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if err := c.Feed.validate(); err != nil {
		return fmt.Errorf("feed: %w", err)
	}

	return nil
}

func (f *FeedConfig) validate() error {
	if f.PostsPerPage <= 0 || f.PostsPerPage > 100 {
		return fmt.Errorf("posts_per_page must be in [1, 100] (got %d)", f.PostsPerPage)
	}
	if f.RecommendPerTag <= 0 || f.RecommendPerTag > 100 {
		return fmt.Errorf("recommend_per_tag must be in [1, 100] (got %d)", f.RecommendPerTag)
	}
	if f.RecentReactions < 0 {
		return fmt.Errorf("recent_reactions must be >= 0 (got %d)", f.RecentReactions)
	}
	return nil
}

// Validate checks the pool bounds.
func (d *DatabaseConfig) Validate() error {
	if d.MaxConns <= 0 {
		return fmt.Errorf("database.max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("database.min_conns must be in [0, max_conns] (got %d)", d.MinConns)
	}
	return nil
}
