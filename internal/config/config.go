package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Apotek     Apotek     `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Report     Report     `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port" validate:"required,numeric"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	Enabled  bool   `mapstructure:"database_enabled"`
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url" validate:"required_if=Enabled true"`
	User     string `mapstructure:"database_user"`
}

type Apotek struct {
	BaseURL        string        `mapstructure:"apotek_base_url" validate:"required,url"`
	OrdersPath     string        `mapstructure:"apotek_orders_path" validate:"required"`
	OrderLinesPath string        `mapstructure:"apotek_order_lines_path" validate:"required,contains={id}"`
	ProductsPath   string        `mapstructure:"apotek_products_path" validate:"required"`
	HTTPTimeout    time.Duration `mapstructure:"apotek_http_timeout" validate:"gte=0"`
}

type App struct {
	LogLevel          string `mapstructure:"log_level"`
	LogFile           string `mapstructure:"log_file"`
	LogFileMaxSizeMB  int    `mapstructure:"log_file_max_size_mb" validate:"gte=0"`
	LogFileMaxBackups int    `mapstructure:"log_file_max_backups" validate:"gte=0"`
	LogFileMaxAgeDays int    `mapstructure:"log_file_max_age_days" validate:"gte=0"`
}

type Auth struct {
	Secret            string        `mapstructure:"auth_secret" validate:"required,min=16"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl" validate:"gt=0"`
	AdminEmail        string        `mapstructure:"admin_email" validate:"required,email"`
	AdminName         string        `mapstructure:"admin_name"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash" validate:"required"`
}

type Report struct {
	MaxConcurrentFetches int `mapstructure:"report_max_concurrent_fetches" validate:"gte=1"`
}

type ReportSync struct {
	CronSchedule string `mapstructure:"report_sync_cron"`
	Enabled      bool   `mapstructure:"report_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/apotek?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("APOTEK_BASE_URL", "https://antaresapi-production.up.railway.app/api")
	viper.SetDefault("APOTEK_ORDERS_PATH", "/pesanan")
	viper.SetDefault("APOTEK_ORDER_LINES_PATH", "/detail-pesanan/pesanan/{id}")
	viper.SetDefault("APOTEK_PRODUCTS_PATH", "/obat")
	viper.SetDefault("APOTEK_HTTP_TIMEOUT", "0s") // sem timeout, igual ao painel original

	viper.SetDefault("AUTH_SECRET", "change_me_local_secret")
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")
	viper.SetDefault("ADMIN_EMAIL", "admin@apotekantares.com")
	viper.SetDefault("ADMIN_NAME", "Admin")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "") // ONLY LOCAL: gerar com bcrypt

	viper.SetDefault("REPORT_MAX_CONCURRENT_FETCHES", 8)

	viper.SetDefault("REPORT_SYNC_CRON", "0 * * * *")  // De hora em hora
	viper.SetDefault("REPORT_SYNC_ENABLED", false)     // Atualização é manual por padrão

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("LOG_FILE_MAX_SIZE_MB", 50)
	viper.SetDefault("LOG_FILE_MAX_BACKUPS", 5)
	viper.SetDefault("LOG_FILE_MAX_AGE_DAYS", 30)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica as tags `validate` de todas as seções
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: configuração inválida: %w", err)
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
