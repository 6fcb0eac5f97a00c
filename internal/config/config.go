package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Payment   PaymentConfig   `yaml:"payment"   validate:"required"`
	SePay     SePayConfig     `yaml:"sepay"`
	MoMo      MoMoConfig      `yaml:"momo"`
	PayOS     PayOSConfig     `yaml:"payos"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

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

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"      validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"           validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"       validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"       validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"garagebooking"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"        validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"             validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"              validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"             validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// PaymentConfig describes the receiving merchant account. Events naming a
// different account are skipped; amounts within Tolerance of the booking
// price still settle (banks shave transfer fees off the received amount).
type PaymentConfig struct {
	AccountNumber   string `yaml:"account_number"   env:"PAY_ACCOUNT_NUMBER"  validate:"required"`
	BankCode        string `yaml:"bank_code"        env:"PAY_BANK_CODE"       validate:"required"`
	AccountName     string `yaml:"account_name"     env:"PAY_ACCOUNT_NAME"    validate:"required"`
	AmountTolerance int64  `yaml:"amount_tolerance" env:"PAY_AMOUNT_TOLERANCE" env-default:"2000" validate:"min=0"`
}

type SePayConfig struct {
	WebhookSecret string `yaml:"webhook_secret" env:"SEPAY_WEBHOOK_SECRET"`
	APIBase       string `yaml:"api_base"       env:"SEPAY_API_BASE" env-default:"https://my.sepay.vn"`
	APIToken      string `yaml:"api_token"      env:"SEPAY_API_TOKEN"`
}

type MoMoConfig struct {
	PartnerCode string `yaml:"partner_code" env:"MOMO_PARTNER_CODE"`
	AccessKey   string `yaml:"access_key"   env:"MOMO_ACCESS_KEY"`
	SecretKey   string `yaml:"secret_key"   env:"MOMO_SECRET_KEY"`
}

type PayOSConfig struct {
	APIBase     string `yaml:"api_base"     env:"PAYOS_API_BASE" env-default:"https://api-merchant.payos.vn"`
	ClientID    string `yaml:"client_id"    env:"PAYOS_CLIENT_ID"`
	APIKey      string `yaml:"api_key"      env:"PAYOS_API_KEY"`
	ChecksumKey string `yaml:"checksum_key" env:"PAYOS_CHECKSUM_KEY"`
	ReturnURL   string `yaml:"return_url"   env:"PAYOS_RETURN_URL"`
	CancelURL   string `yaml:"cancel_url"   env:"PAYOS_CANCEL_URL"`
}

type SchedulerConfig struct {
	Enabled   bool          `yaml:"enabled"    env:"SCHEDULER_ENABLED"    env-default:"true"`
	Interval  time.Duration `yaml:"interval"   env:"SCHEDULER_INTERVAL"   env-default:"5m" validate:"required,gt=0"`
	BatchSize int           `yaml:"batch_size" env:"SCHEDULER_BATCH_SIZE" env-default:"20" validate:"min=1,max=100"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
