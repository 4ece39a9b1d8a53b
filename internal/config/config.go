package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/netip"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	Email        EmailConfig        `yaml:"email"`
	JWT          JWTConfig          `yaml:"jwt"`
	Log          LogConfig          `yaml:"log"`
	Notification NotificationConfig `yaml:"notification"`
	RateLimit    RateLimitConfig    `yaml:"rate_limit"`
	Scheduler    SchedulerConfig    `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host                  string `yaml:"host"`
	Port                  int    `yaml:"port"`
	ReadTimeoutSeconds    int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds   int    `yaml:"write_timeout_seconds"`
	ShutdownTimeoutSecond int    `yaml:"shutdown_timeout_seconds"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// RedisConfig enables the shared rate limiter. An empty URL disables it.
type RedisConfig struct {
	URL string `yaml:"url"`
}

// EmailConfig selects the mail provider
type EmailConfig struct {
	Provider string         `yaml:"provider"` // "smtp", "sendgrid" or "log"
	From     string         `yaml:"from"`
	FromName string         `yaml:"from_name"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	SendGrid SendGridConfig `yaml:"sendgrid"`
}

// SMTPConfig contains SMTP relay settings
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// SendGridConfig contains SendGrid API settings
type SendGridConfig struct {
	APIKey string `yaml:"api_key"`
}

// JWTConfig contains bearer token settings
type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// NotificationConfig contains status email settings
type NotificationConfig struct {
	AppBaseURL          string `yaml:"app_base_url"`
	PurgeReadAfterDays  int    `yaml:"purge_read_after_days"`
	AlertLookbackHours  int    `yaml:"alert_lookback_hours"`
	AlertMaxJobsPerMail int    `yaml:"alert_max_jobs_per_mail"`
}

// RateLimitConfig bounds write requests per user
type RateLimitConfig struct {
	Requests      int `yaml:"requests"`
	WindowSeconds int `yaml:"window_seconds"`
	// TrustedProxies lists the addresses or CIDR ranges whose X-Forwarded-For
	// header is believed. Empty means the peer address is always used.
	TrustedProxies []string `yaml:"trusted_proxies"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	SendSavedSearchAlerts  string `yaml:"send_saved_search_alerts"`
	PurgeReadNotifications string `yaml:"purge_read_notifications"`
}

// Load reads configuration from a YAML file. A .env file next to the working
// directory is loaded first so its values take part in the env overrides.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML, applies environment overrides and validates the result
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Redis
	if val := os.Getenv("REDIS_URL"); val != "" {
		c.Redis.URL = val
	}

	// Email
	if val := os.Getenv("EMAIL_PROVIDER"); val != "" {
		c.Email.Provider = val
	}
	if val := os.Getenv("EMAIL_FROM"); val != "" {
		c.Email.From = val
	}
	if val := os.Getenv("SMTP_HOST"); val != "" {
		c.Email.SMTP.Host = val
	}
	if val := os.Getenv("SMTP_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Email.SMTP.Port)
	}
	if val := os.Getenv("SMTP_USER"); val != "" {
		c.Email.SMTP.User = val
	}
	if val := os.Getenv("SMTP_PASSWORD"); val != "" {
		c.Email.SMTP.Password = val
	}
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Email.SendGrid.APIKey = val
	}

	// JWT
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	if val := os.Getenv("APP_BASE_URL"); val != "" {
		c.Notification.AppBaseURL = val
	}

	if val := os.Getenv("TRUSTED_PROXIES"); val != "" {
		c.RateLimit.TrustedProxies = strings.Split(val, ",")
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid and fills in defaults
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.ReadTimeoutSeconds == 0 {
		c.Server.ReadTimeoutSeconds = 15
	}
	if c.Server.WriteTimeoutSeconds == 0 {
		c.Server.WriteTimeoutSeconds = 15
	}
	if c.Server.ShutdownTimeoutSecond == 0 {
		c.Server.ShutdownTimeoutSecond = 10
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	c.Email.Provider = strings.ToLower(c.Email.Provider)
	switch c.Email.Provider {
	case "", "log":
		c.Email.Provider = "log"
	case "smtp":
		if c.Email.SMTP.Host == "" {
			return fmt.Errorf("SMTP host is required")
		}
		if c.Email.SMTP.Port <= 0 || c.Email.SMTP.Port > 65535 {
			return fmt.Errorf("invalid SMTP port: %d", c.Email.SMTP.Port)
		}
	case "sendgrid":
		if c.Email.SendGrid.APIKey == "" {
			return fmt.Errorf("SendGrid API key is required")
		}
	default:
		return fmt.Errorf("unsupported email provider: %s", c.Email.Provider)
	}
	if c.Email.Provider != "log" && c.Email.From == "" {
		return fmt.Errorf("email from address is required")
	}
	if c.Email.FromName == "" {
		c.Email.FromName = "Job Board"
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}

	if c.Notification.PurgeReadAfterDays == 0 {
		c.Notification.PurgeReadAfterDays = 90
	}
	if c.Notification.AlertLookbackHours == 0 {
		c.Notification.AlertLookbackHours = 24
	}
	if c.Notification.AlertMaxJobsPerMail == 0 {
		c.Notification.AlertMaxJobsPerMail = 20
	}

	if c.RateLimit.Requests == 0 {
		c.RateLimit.Requests = 60
	}
	if c.RateLimit.WindowSeconds == 0 {
		c.RateLimit.WindowSeconds = 60
	}
	for i, proxy := range c.RateLimit.TrustedProxies {
		proxy = strings.TrimSpace(proxy)
		c.RateLimit.TrustedProxies[i] = proxy
		if _, err := ParseProxy(proxy); err != nil {
			return err
		}
	}

	if c.Scheduler.SendSavedSearchAlerts == "" {
		c.Scheduler.SendSavedSearchAlerts = "0 0 7 * * *" // 7 AM UTC
	}
	if c.Scheduler.PurgeReadNotifications == "" {
		c.Scheduler.PurgeReadNotifications = "0 30 3 * * *" // 3:30 AM UTC
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP listen address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ParseProxy accepts a bare address or a CIDR range.
func ParseProxy(proxy string) (netip.Prefix, error) {
	if strings.Contains(proxy, "/") {
		prefix, err := netip.ParsePrefix(proxy)
		if err != nil {
			return netip.Prefix{}, fmt.Errorf("invalid trusted proxy %q: %w", proxy, err)
		}
		return prefix.Masked(), nil
	}
	addr, err := netip.ParseAddr(proxy)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("invalid trusted proxy %q: %w", proxy, err)
	}
	addr = addr.Unmap()
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}
