package config

import (
	"fmt"
	"strings"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Storage   StorageConfig   `yaml:"storage"   validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Redis     RedisConfig     `yaml:"redis"`
	Booking   BookingConfig   `yaml:"booking"   validate:"required"`
	Auth      AuthConfig      `yaml:"auth"      validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

type ServerConfig struct {
	Addr           string        `yaml:"addr"            env:"SERVER_ADDR"            env-default:":8080" validate:"required"`
	ReadTimeout    time.Duration `yaml:"read_timeout"    env:"SERVER_READ_TIMEOUT"    env-default:"10s"   validate:"gt=0"`
	WriteTimeout   time.Duration `yaml:"write_timeout"   env:"SERVER_WRITE_TIMEOUT"   env-default:"10s"   validate:"gt=0"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"    env:"SERVER_IDLE_TIMEOUT"    env-default:"60s"   validate:"gt=0"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS" env-separator:","`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
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

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres" validate:"required,oneof=postgres memory"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"   validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"        validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"    validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"    validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"cafebooker"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"     validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"          validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"           validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"          validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// RedisConfig: пустой адрес означает in-memory хранилище ключей идемпотентности.
type RedisConfig struct {
	Addr           string        `yaml:"addr"            env:"REDIS_ADDR"            env-default:""`
	Password       string        `yaml:"password"        env:"REDIS_PASSWORD"        env-default:""`
	DB             int           `yaml:"db"              env:"REDIS_DB"              env-default:"0"   validate:"min=0"`
	IdempotencyTTL time.Duration `yaml:"idempotency_ttl" env:"REDIS_IDEMPOTENCY_TTL" env-default:"24h" validate:"gt=0"`
}

type BookingConfig struct {
	Capacity    int           `yaml:"capacity"     env:"BOOKING_CAPACITY"     env-default:"50"  validate:"min=1"`
	MaxDays     int           `yaml:"max_days"     env:"BOOKING_MAX_DAYS"     env-default:"10"  validate:"min=1"`
	MinSession  time.Duration `yaml:"min_session"  env:"BOOKING_MIN_SESSION"  env-default:"30m" validate:"gt=0"`
	MaxSession  time.Duration `yaml:"max_session"  env:"BOOKING_MAX_SESSION"  env-default:"12h" validate:"gtfield=MinSession"`
	GraceWindow time.Duration `yaml:"grace_window" env:"BOOKING_GRACE_WINDOW" env-default:"5m"  validate:"gte=0"`
	Timezone    string        `yaml:"timezone"     env:"BOOKING_TIMEZONE"     env-default:"Local"`
}

// Location returns the zone calendar days are counted in.
func (b BookingConfig) Location() (*time.Location, error) {
	if b.Timezone == "" || strings.EqualFold(b.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load booking timezone %q: %w", b.Timezone, err)
	}
	return loc, nil
}

type AuthConfig struct {
	JWTSecret   string   `yaml:"jwt_secret"   env:"AUTH_JWT_SECRET"   validate:"required,min=16"`
	AdminEmails []string `yaml:"admin_emails" env:"AUTH_ADMIN_EMAILS" env-separator:","`
}

type SchedulerConfig struct {
	Interval    time.Duration `yaml:"interval"     env:"SCHEDULER_INTERVAL"     env-default:"30s" validate:"required,gt=0"`
	HorizonDays int           `yaml:"horizon_days" env:"SCHEDULER_HORIZON_DAYS" env-default:"7"   validate:"min=0,max=60"`
}

type TelegramConfig struct {
	BotToken    string `yaml:"bot_token"     env:"TELEGRAM_BOT_TOKEN"     env-default:""`
	AdminChatID int64  `yaml:"admin_chat_id" env:"TELEGRAM_ADMIN_CHAT_ID" env-default:"0"`
}

type TracingConfig struct {
	Endpoint string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:""`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
