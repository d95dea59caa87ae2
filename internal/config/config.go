package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	CORS     CORSConfig
	Overtime OvertimeConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration time.Duration
	AcceptableSkew   time.Duration
}

// AppConfig holds application configuration
type AppConfig struct {
	Name     string
	Version  string
	Port     int
	Env      string
	LogLevel string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// OvertimeConfig holds the overtime rule constants as read from the
// environment. Rules converts them for the calculator.
type OvertimeConfig struct {
	RoundingMinutes   int
	StandardEnd       string
	BreakStart        string
	BreakEnd          string
	LateNightStart    string
	LateNightEnd      string
	MonthlyCapMinutes int
	ConsistencyCheck  bool

	PremiumRegular          string
	PremiumOverThreshold    string
	PremiumLateNight        string
	PremiumHoliday          string
	PremiumThresholdMinutes int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
		slog.Info("no .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := getEnvInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	maxConns, err := getEnvInt("DB_MAX_CONNS", 10)
	if err != nil {
		return nil, err
	}
	minConns, err := getEnvInt("DB_MIN_CONNS", 2)
	if err != nil {
		return nil, err
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "cmlabs-hris"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}

	// Application configuration
	appPort, err := getEnvInt("APP_PORT", 8081)
	if err != nil {
		return nil, err
	}

	config.App = AppConfig{
		Name:     getEnv("APP_NAME", "hris-overtime"),
		Version:  getEnv("APP_VERSION", "v1.0.0"),
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	// JWT configuration
	accessExpiration, err := getEnvDuration("JWT_ACCESS_EXPIRATION_TIME", time.Hour)
	if err != nil {
		return nil, err
	}
	acceptableSkew, err := getEnvDuration("JWT_ACCEPTABLE_SKEW", 30*time.Second)
	if err != nil {
		return nil, err
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: accessExpiration,
		AcceptableSkew:   acceptableSkew,
	}

	// Overtime rules
	roundingMinutes, err := getEnvInt("OVERTIME_ROUNDING_MINUTES", 15)
	if err != nil {
		return nil, err
	}
	capMinutes, err := getEnvInt("OVERTIME_MONTHLY_CAP_MINUTES", 2700)
	if err != nil {
		return nil, err
	}
	thresholdMinutes, err := getEnvInt("OVERTIME_PREMIUM_THRESHOLD_MINUTES", 3600)
	if err != nil {
		return nil, err
	}
	consistencyCheck, err := strconv.ParseBool(getEnv("OVERTIME_CONSISTENCY_CHECK", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid OVERTIME_CONSISTENCY_CHECK: %w", err)
	}

	config.Overtime = OvertimeConfig{
		RoundingMinutes:   roundingMinutes,
		StandardEnd:       getEnv("OVERTIME_STANDARD_END", "18:00"),
		BreakStart:        getEnv("OVERTIME_BREAK_START", "12:00"),
		BreakEnd:          getEnv("OVERTIME_BREAK_END", "13:00"),
		LateNightStart:    getEnv("OVERTIME_LATE_NIGHT_START", "22:00"),
		LateNightEnd:      getEnv("OVERTIME_LATE_NIGHT_END", "05:00"),
		MonthlyCapMinutes: capMinutes,
		ConsistencyCheck:  consistencyCheck,

		PremiumRegular:          getEnv("OVERTIME_PREMIUM_REGULAR", "0.25"),
		PremiumOverThreshold:    getEnv("OVERTIME_PREMIUM_OVER_THRESHOLD", "0.50"),
		PremiumLateNight:        getEnv("OVERTIME_PREMIUM_LATE_NIGHT", "0.25"),
		PremiumHoliday:          getEnv("OVERTIME_PREMIUM_HOLIDAY", "0.35"),
		PremiumThresholdMinutes: thresholdMinutes,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.JWT.AccessExpiration <= 0 {
		return fmt.Errorf("JWT_ACCESS_EXPIRATION_TIME must be positive")
	}
	if c.JWT.AcceptableSkew < 0 {
		return fmt.Errorf("JWT_ACCEPTABLE_SKEW must not be negative")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS must not exceed DB_MAX_CONNS")
	}
	if _, err := c.Overtime.Rules(); err != nil {
		return err
	}
	return nil
}

// Rules converts the overtime settings into calculator rules.
func (o OvertimeConfig) Rules() (overtime.Rules, error) {
	rules := overtime.DefaultRules()
	rules.RoundingUnit = time.Duration(o.RoundingMinutes) * time.Minute
	rules.MonthlyCapMinutes = o.MonthlyCapMinutes
	rules.ConsistencyCheck = o.ConsistencyCheck
	rules.Premium.ThresholdMinutes = o.PremiumThresholdMinutes

	clocks := []struct {
		key   string
		value string
		dst   *overtime.ClockTime
	}{
		{"OVERTIME_STANDARD_END", o.StandardEnd, &rules.StandardEnd},
		{"OVERTIME_BREAK_START", o.BreakStart, &rules.Break.Start},
		{"OVERTIME_BREAK_END", o.BreakEnd, &rules.Break.End},
		{"OVERTIME_LATE_NIGHT_START", o.LateNightStart, &rules.LateNight.Start},
		{"OVERTIME_LATE_NIGHT_END", o.LateNightEnd, &rules.LateNight.End},
	}
	for _, c := range clocks {
		parsed, err := overtime.ParseClockTime(c.value)
		if err != nil {
			return overtime.Rules{}, fmt.Errorf("invalid %s: %w", c.key, err)
		}
		*c.dst = parsed
	}

	rates := []struct {
		key   string
		value string
		dst   *decimal.Decimal
	}{
		{"OVERTIME_PREMIUM_REGULAR", o.PremiumRegular, &rules.Premium.Regular},
		{"OVERTIME_PREMIUM_OVER_THRESHOLD", o.PremiumOverThreshold, &rules.Premium.OverThreshold},
		{"OVERTIME_PREMIUM_LATE_NIGHT", o.PremiumLateNight, &rules.Premium.LateNight},
		{"OVERTIME_PREMIUM_HOLIDAY", o.PremiumHoliday, &rules.Premium.Holiday},
	}
	for _, r := range rates {
		parsed, err := decimal.NewFromString(r.value)
		if err != nil {
			return overtime.Rules{}, fmt.Errorf("invalid %s: %w", r.key, err)
		}
		if parsed.IsNegative() {
			return overtime.Rules{}, fmt.Errorf("invalid %s: rate must not be negative", r.key)
		}
		*r.dst = parsed
	}

	if err := rules.Validate(); err != nil {
		return overtime.Rules{}, fmt.Errorf("invalid overtime rules: %w", err)
	}

	return rules, nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (a AppConfig) SlogLevel() slog.Level {
	switch strings.ToLower(a.LogLevel) {
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

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvSlice(key string, fallback []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
