package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"lastmile/internal/pkg/errs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	EnvironmentProduction = "production"

	// developmentSecret signs tokens outside production when JWT_SECRET is unset.
	developmentSecret = "logixpress-development-secret"
)

type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8000"`
	AppName     string `env:"APP_NAME" envDefault:"LOGIXPress API"`
	AppVersion  string `env:"APP_VERSION" envDefault:"1.0.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	JWTSecret  string        `env:"JWT_SECRET"`
	JWTTTL     time.Duration `env:"JWT_TTL" envDefault:"30m"`
	JWTIssuer  string        `env:"JWT_ISSUER" envDefault:"lastmile"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:8000,http://localhost:3000,http://localhost:5173"`

	SeedSampleData bool `env:"SEED_SAMPLE_DATA" envDefault:"true"`
	SeedUsers      bool `env:"SEED_USERS" envDefault:"true"`

	StatsReportSchedule string `env:"STATS_REPORT_SCHEDULE" envDefault:"@every 1m"`

	OTelEndpoint string `env:"OTEL_ENDPOINT"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// LoadConfig reads the environment after loading the given .env files, or
// ".env" when none are given. Missing files are skipped; variables already
// set in the environment win over file values.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	config, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	if config.JWTSecret == "" && config.Environment != EnvironmentProduction {
		config.JWTSecret = developmentSecret
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	var problems []error

	if c.HTTPPort == "" {
		problems = append(problems, errs.NewValueIsRequiredError("HTTP_PORT"))
	}
	if c.JWTSecret == "" {
		problems = append(problems, errs.NewValueIsRequiredError("JWT_SECRET"))
	}
	if c.JWTTTL <= 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("JWT_TTL", c.JWTTTL, time.Second, "unbounded"))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("LOG_FORMAT", errors.New("must be text or json")))
	}
	if _, err := c.SlogLevel(); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
	}

	return errors.Join(problems...)
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}
