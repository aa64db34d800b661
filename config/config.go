package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/zjm/league_manager/controller"
)

// Config collects every knob the process reads from the environment. It is
// built once in main and handed to the pieces that need it; nothing else in
// the codebase reads environment variables.
type Config struct {
	PostgresConnStr string
	Port            int
	RedisAddr       string
	AMQPURL         string

	// Stats feed credentials. Empty values mean unauthenticated access.
	FeedClientID     string
	FeedClientSecret string
	FeedTokenURL     string

	// Admin credentials for the /admin routes.
	AdminUser     string
	AdminPassword string

	SeasonID           int32
	PointsPerWin       int32
	TieRule            controller.TieRule
	BidWindow          time.Duration
	SettlementInterval time.Duration
	StandingsCacheTTL  time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		PostgresConnStr:  os.Getenv("POSTGRES_CONN_STR"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		AMQPURL:          os.Getenv("AMQP_URL"),
		FeedClientID:     os.Getenv("FEED_CLIENT_ID"),
		FeedClientSecret: os.Getenv("FEED_CLIENT_SECRET"),
		FeedTokenURL:     os.Getenv("FEED_TOKEN_URL"),
		AdminUser:        getEnv("ADMIN_USER", "admin"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),

		Port:               3000,
		SeasonID:           1,
		PointsPerWin:       2,
		TieRule:            controller.TieRuleOvertimeLoss,
		BidWindow:          48 * time.Hour,
		SettlementInterval: 5 * time.Minute,
		StandingsCacheTTL:  time.Minute,
	}

	var err error
	if cfg.Port, err = intEnv("PORT", cfg.Port); err != nil {
		return nil, err
	}

	seasonID, err := intEnv("LEAGUE_SEASON_ID", int(cfg.SeasonID))
	if err != nil {
		return nil, err
	}
	cfg.SeasonID = int32(seasonID)

	// The source system disagreed with itself on the value of a win (2 in
	// some places, 3 in others). It is a single deployment constant here.
	ppw, err := intEnv("LEAGUE_POINTS_PER_WIN", int(cfg.PointsPerWin))
	if err != nil {
		return nil, err
	}
	cfg.PointsPerWin = int32(ppw)

	if v := os.Getenv("LEAGUE_TIE_RULE"); v != "" {
		switch controller.TieRule(v) {
		case controller.TieRuleOvertimeLoss, controller.TieRuleDraw:
			cfg.TieRule = controller.TieRule(v)
		default:
			return nil, fmt.Errorf("unknown LEAGUE_TIE_RULE: %s", v)
		}
	}

	if cfg.BidWindow, err = durationEnv("BID_WINDOW", cfg.BidWindow); err != nil {
		return nil, err
	}
	if cfg.SettlementInterval, err = durationEnv("SETTLEMENT_INTERVAL", cfg.SettlementInterval); err != nil {
		return nil, err
	}
	if cfg.StandingsCacheTTL, err = durationEnv("STANDINGS_CACHE_TTL", cfg.StandingsCacheTTL); err != nil {
		return nil, err
	}

	return cfg, nil
}

// StandingsPolicy builds the engine policy from the deployment constants.
func (c *Config) StandingsPolicy() controller.StandingsPolicy {
	return controller.StandingsPolicy{
		PointsPerWin: c.PointsPerWin,
		TieRule:      c.TieRule,
	}
}

// AdminCredentials returns the basic-auth credential map for the admin
// routes, keyed by username.
func (c *Config) AdminCredentials() map[string]string {
	if c.AdminPassword == "" {
		return nil
	}
	return map[string]string{c.AdminUser: c.AdminPassword}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %w", key, err)
	}
	return n, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %w", key, err)
	}
	return d, nil
}
