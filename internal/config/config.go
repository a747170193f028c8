package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	TikTok       TikTok       `mapstructure:",squash"`
	AdManager    AdManager    `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	CampaignSync CampaignSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Redis é opcional; sem URL o lock distribuído usa advisory lock do Postgres
type Redis struct {
	URL string `mapstructure:"redis_url"`
}

type TikTok struct {
	BaseURL           string  `mapstructure:"tiktok_base_url"`
	AccessToken       string  `mapstructure:"tiktok_access_token"`
	DefaultAdvertiser string  `mapstructure:"tiktok_default_advertiser_id"`
	RequestsPerSecond float64 `mapstructure:"tiktok_requests_per_second"`
	PageSize          int     `mapstructure:"tiktok_page_size"`
}

type AdManager struct {
	BaseURL           string `mapstructure:"ad_manager_base_url"`
	NetworkCode       string `mapstructure:"ad_manager_network_code"`
	ClientID          string `mapstructure:"ad_manager_client_id"`
	ClientSecret      string `mapstructure:"ad_manager_client_secret"`
	RefreshToken      string `mapstructure:"ad_manager_refresh_token"`
	TokenURL          string `mapstructure:"ad_manager_token_url"`
	TrafficSource     string `mapstructure:"ad_manager_traffic_source"`
	PollAttempts      int    `mapstructure:"ad_manager_report_poll_attempts"`
	PollDelaySeconds  int    `mapstructure:"ad_manager_report_poll_delay_seconds"`
	FetchRowsPageSize int    `mapstructure:"ad_manager_fetch_rows_page_size"`
}

// PollDelay retorna o intervalo entre consultas do relatório assíncrono
func (a AdManager) PollDelay() time.Duration {
	return time.Duration(a.PollDelaySeconds) * time.Second
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type CampaignSync struct {
	CronSchedule   string        `mapstructure:"campaign_sync_cron"`
	LookbackDays   int           `mapstructure:"campaign_sync_lookback_days"`
	LockTTL        time.Duration `mapstructure:"campaign_sync_lock_ttl"`
	Enabled        bool          `mapstructure:"campaign_sync_enabled"`
	AccountTimeout time.Duration `mapstructure:"campaign_sync_account_timeout"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/arbitrage?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_URL", "")

	viper.SetDefault("TIKTOK_BASE_URL", "https://business-api.tiktok.com/open_api/v1.3")
	viper.SetDefault("TIKTOK_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("TIKTOK_DEFAULT_ADVERTISER_ID", "")
	viper.SetDefault("TIKTOK_REQUESTS_PER_SECOND", 5)
	viper.SetDefault("TIKTOK_PAGE_SIZE", 1000)

	viper.SetDefault("AD_MANAGER_BASE_URL", "https://admanager.googleapis.com/v1")
	viper.SetDefault("AD_MANAGER_NETWORK_CODE", "")
	viper.SetDefault("AD_MANAGER_CLIENT_ID", "")
	viper.SetDefault("AD_MANAGER_CLIENT_SECRET", "")
	viper.SetDefault("AD_MANAGER_REFRESH_TOKEN", "")
	viper.SetDefault("AD_MANAGER_TOKEN_URL", "")
	viper.SetDefault("AD_MANAGER_TRAFFIC_SOURCE", "tiktok")
	viper.SetDefault("AD_MANAGER_REPORT_POLL_ATTEMPTS", 10)
	viper.SetDefault("AD_MANAGER_REPORT_POLL_DELAY_SECONDS", 3)
	viper.SetDefault("AD_MANAGER_FETCH_ROWS_PAGE_SIZE", 10000)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("CAMPAIGN_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("CAMPAIGN_SYNC_LOOKBACK_DAYS", 1)  // Apenas ontem
	viper.SetDefault("CAMPAIGN_SYNC_LOCK_TTL", "30m")   // Tempo máximo de posse do lock
	viper.SetDefault("CAMPAIGN_SYNC_ENABLED", false)    // Habilitar sincronização agendada
	viper.SetDefault("CAMPAIGN_SYNC_ACCOUNT_TIMEOUT", "2m")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	if config.AdManager.PollAttempts <= 0 {
		return nil, fmt.Errorf("AD_MANAGER_REPORT_POLL_ATTEMPTS deve ser positivo, recebido %d", config.AdManager.PollAttempts)
	}

	if config.CampaignSync.LookbackDays <= 0 {
		config.CampaignSync.LookbackDays = 1
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Location retorna o fuso horário usado para as datas de calendário dos períodos
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		logrus.WithField("timezone", c.App.Timezone).Warn("Fuso horário inválido, usando UTC")
		return time.UTC
	}
	return loc
}

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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
