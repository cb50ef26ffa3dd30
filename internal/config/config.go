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
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	Analytics        Analytics        `mapstructure:",squash"`
	Inference        Inference        `mapstructure:",squash"`
	AIInsightsWarmup AIInsightsWarmup `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Analytics controla o fuso civil usado em todos os recortes de período.
// Todas as lojas operam no mesmo fuso, então um offset fixo basta.
type Analytics struct {
	UTCOffsetHours int            `mapstructure:"analytics_utc_offset_hours"`
	Location       *time.Location `mapstructure:"-"`
}

type Inference struct {
	URL            string `mapstructure:"inference_url"`
	AccessToken    string `mapstructure:"inference_access_token"`
	Model          string `mapstructure:"inference_model"`
	TimeoutSeconds int    `mapstructure:"inference_timeout_seconds"`
}

type AIInsightsWarmup struct {
	CronSchedule string `mapstructure:"ai_insights_warmup_cron"`
	Enabled      bool   `mapstructure:"ai_insights_warmup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/reforma")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Fuso civil de referência (Brasília, sem horário de verão)
	viper.SetDefault("ANALYTICS_UTC_OFFSET_HOURS", -3)

	viper.SetDefault("INFERENCE_URL", "http://localhost:9000")
	viper.SetDefault("INFERENCE_ACCESS_TOKEN", "")
	viper.SetDefault("INFERENCE_MODEL", "funnel-insights-v1")
	viper.SetDefault("INFERENCE_TIMEOUT_SECONDS", 30)

	// Defaults para o aquecimento do cache de insights de IA
	viper.SetDefault("AI_INSIGHTS_WARMUP_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("AI_INSIGHTS_WARMUP_ENABLED", false)    // Habilitar aquecimento do cache

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.Analytics.Location = time.FixedZone(
		fmt.Sprintf("UTC%+d", config.Analytics.UTCOffsetHours),
		config.Analytics.UTCOffsetHours*60*60,
	)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
