package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

// Config is the main service configuration.
type Config struct {
	Server    ServerConfig      `yaml:"server"    validate:"required"`
	Logger    LoggerConfig      `yaml:"logger"    validate:"required"`
	Gin       GinConfig         `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig    `yaml:"postgres"  validate:"required"`
	Stats     StatsClientConfig `yaml:"stats"     validate:"required"`
	Scheduler SchedulerConfig   `yaml:"scheduler" validate:"required"`
	Requests  RequestsConfig    `yaml:"requests"`
}

// StatsConfig is the statistics service configuration.
type StatsConfig struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	Postgres PostgresConfig `yaml:"postgres" validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

// LogLevel maps the configured level onto wbf's logger.Level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"ewm"       validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type StatsClientConfig struct {
	BaseURL       string        `yaml:"base_url"       env:"STATS_SERVER_URL"     env-default:"http://localhost:9090" validate:"required,url"`
	App           string        `yaml:"app"            env:"STATS_APP"            env-default:"ewm-service"           validate:"required"`
	Timeout       time.Duration `yaml:"timeout"        env:"STATS_TIMEOUT"        env-default:"2s"                    validate:"gt=0"`
	RetryAttempts int           `yaml:"retry_attempts" env:"STATS_RETRY_ATTEMPTS" env-default:"2"                     validate:"min=1"`
	RetryDelay    time.Duration `yaml:"retry_delay"    env:"STATS_RETRY_DELAY"    env-default:"100ms"                 validate:"gt=0"`
}

func (c StatsClientConfig) Strategy() retry.Strategy {
	return retry.Strategy{
		Attempts: c.RetryAttempts,
		Delay:    c.RetryDelay,
		Backoff:  2,
	}
}

type SchedulerConfig struct {
	Enabled   bool          `yaml:"enabled"    env:"SCHEDULER_ENABLED"    env-default:"true"`
	Interval  time.Duration `yaml:"interval"   env:"SCHEDULER_INTERVAL"   env-default:"1m"  validate:"required,gt=0"`
	BatchSize int           `yaml:"batch_size" env:"SCHEDULER_BATCH_SIZE" env-default:"100" validate:"min=1"`
}

type RequestsConfig struct {
	CancelOwnerCheck bool `yaml:"cancel_owner_check" env:"REQUESTS_CANCEL_OWNER_CHECK" env-default:"true"`
}

func MustLoad() *Config {
	loadDotEnv()

	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}

func MustLoadStats() *StatsConfig {
	loadDotEnv()

	var cfg StatsConfig
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}

// loadDotEnv copies an optional .env file into the environment so local runs
// need no exported variables. Variables already set win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Sprintf("failed to load .env: %v", err))
	}
}
