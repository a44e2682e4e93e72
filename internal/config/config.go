package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
// Pricing and loyalty numbers default to the documented fallback values;
// all amounts are in the base currency unit (USD).
type Config struct {
	HTTPAddr        string
	DBConnString    string
	ShutdownTimeout time.Duration

	// SizeLUpcharge is added per unit when a drink is sized L.
	SizeLUpcharge float64
	// ExchangeRate converts the base currency to the secondary display
	// currency (VND). Core arithmetic never uses it except for point
	// accrual, which is defined in the secondary currency.
	ExchangeRate float64
	// LoyaltyPointValue is the secondary-currency amount worth one point.
	LoyaltyPointValue float64

	LoyaltyBronzeMin  int
	LoyaltySilverMin  int
	LoyaltyGoldMin    int
	LoyaltyDiamondMin int

	MergeCombos bool
}

// FromEnv builds Config with defaults, overridden by environment variables.
// DB_DSN may be empty, in which case the api runs against the in-memory
// store only.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		DBConnString:    os.Getenv("DB_DSN"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),

		SizeLUpcharge:     envFloat("SIZE_L_UPCHARGE", 0.50),
		ExchangeRate:      envFloat("EXCHANGE_RATE", 25000),
		LoyaltyPointValue: envFloat("LOYALTY_POINT_VALUE", 10000),

		LoyaltyBronzeMin:  envInt("LOYALTY_BRONZE_MIN", 0),
		LoyaltySilverMin:  envInt("LOYALTY_SILVER_MIN", 500),
		LoyaltyGoldMin:    envInt("LOYALTY_GOLD_MIN", 850),
		LoyaltyDiamondMin: envInt("LOYALTY_DIAMOND_MIN", 1350),

		MergeCombos: envBool("MERGE_COMBOS", false),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
