package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Dataset     Dataset     `mapstructure:",squash"`
	Dashboard   Dashboard   `mapstructure:",squash"`
	Theme       Theme       `mapstructure:",squash"`
	DatasetRoll DatasetRoll `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Dataset configura o gerador do conjunto sintético. A semente é explícita
// para que o conjunto seja reprodutível entre execuções.
type Dataset struct {
	Seed          int64 `mapstructure:"dataset_seed"`
	Days          int   `mapstructure:"dataset_days"`
	CampaignCount int   `mapstructure:"dataset_campaign_count"`
}

// Dashboard configura o comportamento das visões derivadas
type Dashboard struct {
	PageSize   int           `mapstructure:"dashboard_page_size"`
	FetchDelay time.Duration `mapstructure:"dashboard_fetch_delay"`
}

// Theme configura a persistência da preferência de tema
type Theme struct {
	StorePath     string `mapstructure:"theme_store_path"`
	PreferenceKey string `mapstructure:"theme_preference_key"`
}

// DatasetRoll configura a rolagem diária do conjunto
type DatasetRoll struct {
	CronSchedule string `mapstructure:"dataset_roll_cron"`
	Enabled      bool   `mapstructure:"dataset_roll_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATASET_SEED", 20240101)       // Semente fixa: conjunto reprodutível
	viper.SetDefault("DATASET_DAYS", 365)            // Um ano de registros diários
	viper.SetDefault("DATASET_CAMPAIGN_COUNT", 15)   // Linhas da tabela de campanhas

	viper.SetDefault("DASHBOARD_PAGE_SIZE", 5)           // Tamanho fixo da página da tabela
	viper.SetDefault("DASHBOARD_FETCH_DELAY", "800ms")   // Atraso simulado de busca

	viper.SetDefault("THEME_STORE_PATH", ".data/preferences.json")
	viper.SetDefault("THEME_PREFERENCE_KEY", "dashboard.theme")

	viper.SetDefault("DATASET_ROLL_CRON", "0 0 * * *") // Todos os dias à meia-noite
	viper.SetDefault("DATASET_ROLL_ENABLED", false)    // Habilitar rolagem diária do conjunto

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

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
