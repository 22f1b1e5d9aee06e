package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const EnvFileName = ".env"

type Config struct {
	Addr          string
	LogLevel      zerolog.Level
	Strict        bool
	SecureCookies bool

	RedisAddr  string
	CacheTTL   time.Duration
	SessionTTL time.Duration

	ResultsDelay time.Duration
	SuccessDelay time.Duration

	FormEndpoint string
	FormName     string
	FormTimeout  time.Duration

	RateLimit  int
	RateWindow time.Duration
	TrustProxy bool
}

// LoadEnvFile loads variables from a .env file in the working directory.
// Errors are ignored since the file may not exist.
func LoadEnvFile() {
	_ = godotenv.Load(EnvFileName)
}

// Load reads the configuration from the environment, applying defaults for
// anything unset.
func Load() (Config, error) {
	cfg := Config{
		Addr:         stringVar("INTENTRA_ADDR", ":8080"),
		RedisAddr:    stringVar("INTENTRA_REDIS_ADDR", ""),
		FormEndpoint: stringVar("INTENTRA_FORM_ENDPOINT", ""),
		FormName:     stringVar("INTENTRA_FORM_NAME", "market-interest"),
	}

	var err error
	if cfg.LogLevel, err = zerolog.ParseLevel(stringVar("INTENTRA_LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("INTENTRA_LOG_LEVEL: %w", err)
	}
	if cfg.Strict, err = boolVar("INTENTRA_STRICT", false); err != nil {
		return Config{}, err
	}
	if cfg.SecureCookies, err = boolVar("INTENTRA_SECURE_COOKIES", false); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = durationVar("INTENTRA_CACHE_TTL", time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = durationVar("INTENTRA_SESSION_TTL", 30*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.ResultsDelay, err = durationVar("INTENTRA_RESULTS_DELAY", 800*time.Millisecond); err != nil {
		return Config{}, err
	}
	if cfg.SuccessDelay, err = durationVar("INTENTRA_SUCCESS_DELAY", 100*time.Millisecond); err != nil {
		return Config{}, err
	}
	if cfg.FormTimeout, err = durationVar("INTENTRA_FORM_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit, err = intVar("INTENTRA_RATE_LIMIT", 5); err != nil {
		return Config{}, err
	}
	if cfg.RateWindow, err = durationVar("INTENTRA_RATE_WINDOW", time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.TrustProxy, err = boolVar("INTENTRA_TRUST_PROXY", false); err != nil {
		return Config{}, err
	}

	if cfg.RateLimit <= 0 {
		return Config{}, fmt.Errorf("INTENTRA_RATE_LIMIT must be positive, got %d", cfg.RateLimit)
	}
	if cfg.ResultsDelay < 0 || cfg.SuccessDelay < 0 {
		return Config{}, fmt.Errorf("delays must not be negative")
	}
	return cfg, nil
}

func stringVar(name, def string) string {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v
	}
	return def
}

func boolVar(name string, def bool) (bool, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", name, err)
	}
	return b, nil
}

func intVar(name string, def int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", name, err)
	}
	return n, nil
}

func durationVar(name string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", name, err)
	}
	return d, nil
}
