package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
)

// bcrypt accepts costs in [4, 31].
const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.BcryptCost < minBcryptCost || c.Auth.BcryptCost > maxBcryptCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", minBcryptCost, maxBcryptCost, c.Auth.BcryptCost)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	if c.Audit.RetentionDays < 0 {
		return fmt.Errorf("audit.retention_days must be >= 0 (got %d)", c.Audit.RetentionDays)
	}

	if err := c.Movies.validate(); err != nil {
		return fmt.Errorf("movies: %w", err)
	}

	return nil
}

func (m *MoviesConfig) validate() error {
	if m.MaxRating <= 0 {
		return fmt.Errorf("max_rating must be > 0 (got %v)", m.MaxRating)
	}

	buckets, err := ParseRatingBuckets(m.RatingBucketsRaw)
	if err != nil {
		return fmt.Errorf("rating_buckets: %w", err)
	}
	if len(buckets) == 0 {
		return fmt.Errorf("rating_buckets: at least one bucket required")
	}
	m.RatingBuckets = buckets

	stats, err := ParseRatingBuckets(m.StatsBucketsRaw)
	if err != nil {
		return fmt.Errorf("stats_buckets: %w", err)
	}
	if err := checkDisjoint(stats); err != nil {
		return fmt.Errorf("stats_buckets: %w", err)
	}
	m.StatsBuckets = stats

	return nil
}

// ParseRatingBuckets parses a comma-separated list of "Label:min:max" triples
// (e.g. "Excellent:4:5.1,Great:3:4.1") preserving order. Labels must be unique
// and min must not exceed max. An empty string returns a nil slice.
func ParseRatingBuckets(raw string) ([]domain.RatingRange, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	buckets := make([]domain.RatingRange, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		fields := strings.Split(p, ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("invalid bucket %q: want label:min:max", p)
		}

		label := strings.TrimSpace(fields[0])
		if label == "" {
			return nil, fmt.Errorf("invalid bucket %q: empty label", p)
		}
		if slices.ContainsFunc(buckets, func(b domain.RatingRange) bool { return b.Label == label }) {
			return nil, fmt.Errorf("duplicate bucket label %q", label)
		}

		lo, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid bucket %q min: %w", p, err)
		}
		hi, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid bucket %q max: %w", p, err)
		}
		if lo > hi {
			return nil, fmt.Errorf("invalid bucket %q: min %v > max %v", p, lo, hi)
		}

		buckets = append(buckets, domain.RatingRange{Label: label, Min: lo, Max: hi})
	}

	return buckets, nil
}

// checkDisjoint rejects buckets whose intervals overlap, so every rating lands
// in at most one stats bucket.
func checkDisjoint(buckets []domain.RatingRange) error {
	sorted := slices.Clone(buckets)
	slices.SortFunc(sorted, func(a, b domain.RatingRange) int {
		switch {
		case a.Min < b.Min:
			return -1
		case a.Min > b.Min:
			return 1
		}
		return 0
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Min < sorted[i-1].Max {
			return fmt.Errorf("buckets %q and %q overlap", sorted[i-1].Label, sorted[i].Label)
		}
	}
	return nil
}
