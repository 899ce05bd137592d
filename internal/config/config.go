package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
	StorageDriverRedis    = "redis"
	StorageDriverMemory   = "memory"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Storage         Storage         `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Redis           Redis           `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Gemini          Gemini          `mapstructure:",squash"`
	InsightsRefresh InsightsRefresh `mapstructure:",squash"`
	ContractWatch   ContractWatch   `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
}

type App struct {
	LogLevel       string   `mapstructure:"log_level"`
	Env            string   `mapstructure:"app_env"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	SeedDemoData   bool     `mapstructure:"seed_demo_data"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Storage struct {
	Driver     string `mapstructure:"storage_driver"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type Auth struct {
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
	DemoUsername      string        `mapstructure:"auth_demo_username"`
	DemoPassword      string        `mapstructure:"auth_demo_password"`
	MinPasswordLength int           `mapstructure:"auth_min_password_length"`
	Permissive        bool          `mapstructure:"auth_permissive"`
	Users             []string      `mapstructure:"auth_users"`
}

// UserHashes retorna os usuários configurados em AUTH_USERS ("usuario:hash-bcrypt")
func (a Auth) UserHashes() map[string]string {
	hashes := make(map[string]string, len(a.Users))
	for _, entry := range a.Users {
		username, hash, found := strings.Cut(strings.TrimSpace(entry), ":")
		if !found || username == "" || hash == "" {
			logrus.Warnf("Entrada inválida em AUTH_USERS ignorada: %q", entry)
			continue
		}
		hashes[strings.ToLower(username)] = hash
	}
	return hashes
}

type Gemini struct {
	APIKey      string        `mapstructure:"gemini_api_key"`
	Model       string        `mapstructure:"gemini_model"`
	Temperature float32       `mapstructure:"gemini_temperature"`
	TopP        float32       `mapstructure:"gemini_top_p"`
	Timeout     time.Duration `mapstructure:"gemini_timeout"`
}

type InsightsRefresh struct {
	CronSchedule string `mapstructure:"insights_refresh_cron"`
	Enabled      bool   `mapstructure:"insights_refresh_enabled"`
}

type ContractWatch struct {
	CronSchedule string `mapstructure:"contract_watch_cron"`
	Enabled      bool   `mapstructure:"contract_watch_enabled"`
	WarningDays  int    `mapstructure:"contract_watch_warning_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("SEED_DEMO_DATA", true)

	viper.SetDefault("STORAGE_DRIVER", StorageDriverSQLite)
	viper.SetDefault("SQLITE_PATH", "dashboard.db")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_DEMO_USERNAME", "demo")
	viper.SetDefault("AUTH_DEMO_PASSWORD", "demo")
	viper.SetDefault("AUTH_MIN_PASSWORD_LENGTH", 4)
	viper.SetDefault("AUTH_PERMISSIVE", true) // Comportamento do painel de demonstração
	viper.SetDefault("AUTH_USERS", "")

	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-3-flash-preview")
	viper.SetDefault("GEMINI_TEMPERATURE", 0.7)
	viper.SetDefault("GEMINI_TOP_P", 0.95)
	viper.SetDefault("GEMINI_TIMEOUT", "20s")

	viper.SetDefault("INSIGHTS_REFRESH_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("INSIGHTS_REFRESH_ENABLED", false)

	viper.SetDefault("CONTRACT_WATCH_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("CONTRACT_WATCH_ENABLED", true)
	viper.SetDefault("CONTRACT_WATCH_WARNING_DAYS", 30)

	viper.SetDefault("LOG_LEVEL", "debug")
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

	config.App.AllowedOrigins = compact(config.App.AllowedOrigins)
	config.Auth.Users = compact(config.Auth.Users)

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

// Validate verifica combinações de configuração que impedem a inicialização
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverSQLite, StorageDriverPostgres, StorageDriverRedis, StorageDriverMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER inválido: %q", c.Storage.Driver)
	}

	if c.Storage.Driver == StorageDriverSQLite && c.Storage.SQLitePath == "" {
		return fmt.Errorf("SQLITE_PATH é obrigatório para o driver sqlite")
	}

	if c.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY é obrigatório")
	}

	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("AUTH_TOKEN_TTL deve ser positivo")
	}

	if c.ContractWatch.WarningDays < 0 {
		return fmt.Errorf("CONTRACT_WATCH_WARNING_DAYS não pode ser negativo")
	}

	return nil
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
