package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm/logger"
)

// Config holds the raw environment settings. Empty values fall back to the
// defaults of the component that reads them.
type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	RedisURL         string
	StatsRefreshCron string
	StatsCacheTTL    string
	TaxRate          string
	DeliveryFee      string
	LogLevel         string
	AdminUsername    string
	AdminPassword    string
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode)
}

// Pricing parses TAX_RATE and DELIVERY_FEE over order.DefaultPricing.
func (c Config) Pricing() (order.Pricing, error) {
	defaults := order.DefaultPricing()
	taxRate, fee := defaults.TaxRate(), defaults.DeliveryFee()

	if c.TaxRate != "" {
		parsed, err := decimal.NewFromString(c.TaxRate)
		if err != nil {
			return order.Pricing{}, fmt.Errorf("TAX_RATE: %w", err)
		}
		taxRate = parsed
	}
	if c.DeliveryFee != "" {
		parsed, err := kernel.MoneyFromString(c.DeliveryFee)
		if err != nil {
			return order.Pricing{}, fmt.Errorf("DELIVERY_FEE: %w", err)
		}
		fee = parsed
	}

	return order.NewPricing(taxRate, fee)
}

// CacheTTL parses STATS_CACHE_TTL, e.g. "5m". Zero means the handler default.
func (c Config) CacheTTL() (time.Duration, error) {
	if c.StatsCacheTTL == "" {
		return 0, nil
	}
	ttl, err := time.ParseDuration(c.StatsCacheTTL)
	if err != nil {
		return 0, fmt.Errorf("STATS_CACHE_TTL: %w", err)
	}
	return ttl, nil
}

// SlogLevel maps LOG_LEVEL (debug, info, warn, error) to a slog level.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GormLogLevel keeps SQL logging quiet unless LOG_LEVEL is debug.
func (c Config) GormLogLevel() logger.LogLevel {
	switch c.SlogLevel() {
	case slog.LevelDebug:
		return logger.Info
	case slog.LevelError:
		return logger.Error
	default:
		return logger.Warn
	}
}
