package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"jobboard/internal/adapters/out/postgres"
	"jobboard/internal/schedule"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/bytes"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"4000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	DB  DBConfig  `envPrefix:"DB_"`
	JWT JWTConfig `envPrefix:"JWT_"`

	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
	BodyLimit        string   `env:"BODY_LIMIT" envDefault:"1M"`

	ExpireJobsSchedule string `env:"EXPIRE_JOBS_SCHEDULE" envDefault:"@every 1m"`
	BcryptCost         int    `env:"BCRYPT_COST" envDefault:"10"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

type DBConfig struct {
	Host           string        `env:"HOST" envDefault:"localhost"`
	Port           int           `env:"PORT" envDefault:"5432"`
	User           string        `env:"USER" envDefault:"postgres"`
	Password       string        `env:"PASSWORD"`
	Name           string        `env:"NAME" envDefault:"jobboard"`
	SSLMode        string        `env:"SSLMODE" envDefault:"disable"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
}

func (c DBConfig) Settings() postgres.Settings {
	return postgres.Settings{
		Host:     c.Host,
		Port:     c.Port,
		User:     c.User,
		Password: c.Password,
		Name:     c.Name,
		SSLMode:  c.SSLMode,
	}
}

type JWTConfig struct {
	Secret string        `env:"SECRET"`
	Issuer string        `env:"ISSUER" envDefault:"jobboard"`
	TTL    time.Duration `env:"TTL" envDefault:"1h"`
}

// LoadConfig reads envFile into the process environment when it exists and
// then parses the environment. Variables already set win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// ParseConfig parses cfg from an explicit variable set instead of the process
// environment.
func ParseConfig(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []error

	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		problems = append(problems, fmt.Errorf("HTTP_PORT %d is out of range", c.HTTPPort))
	}
	if c.DB.Port < 1 || c.DB.Port > 65535 {
		problems = append(problems, fmt.Errorf("DB_PORT %d is out of range", c.DB.Port))
	}
	if c.DB.ConnectTimeout <= 0 {
		problems = append(problems, errors.New("DB_CONNECT_TIMEOUT must be positive"))
	}
	if c.JWT.Secret == "" {
		problems = append(problems, errors.New("JWT_SECRET is required"))
	}
	if c.JWT.TTL <= 0 {
		problems = append(problems, errors.New("JWT_TTL must be positive"))
	}
	if _, err := bytes.Parse(c.BodyLimit); err != nil {
		problems = append(problems, fmt.Errorf("BODY_LIMIT %q: %w", c.BodyLimit, err))
	}
	if err := schedule.ValidateSchedule(c.ExpireJobsSchedule); err != nil {
		problems = append(problems, fmt.Errorf("EXPIRE_JOBS_SCHEDULE: %w", err))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		problems = append(problems, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		problems = append(problems, err)
	}
	if f := strings.ToLower(c.LogFormat); f != "text" && f != "json" {
		problems = append(problems, fmt.Errorf("LOG_FORMAT %q must be text or json", c.LogFormat))
	}

	return errors.Join(problems...)
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}
