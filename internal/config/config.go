package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Upload         Upload         `mapstructure:",squash"`
	OpenAI         OpenAI         `mapstructure:",squash"`
	CategorizeSync CategorizeSync `mapstructure:",squash"`
	CleanupSync    CleanupSync    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Upload controla la recepción de archivos CSV
type Upload struct {
	MaxFileSizeBytes int64 `mapstructure:"upload_max_file_size_bytes"`
}

// OpenAI configura el clasificador externo de categorías
type OpenAI struct {
	BaseURL         string `mapstructure:"openai_base_url"`
	APIKey          string `mapstructure:"openai_api_key"`
	Model           string `mapstructure:"openai_model"`
	MaxOutputTokens int    `mapstructure:"openai_max_output_tokens"`
}

// CategorizeSync configura la corrida periódica del clasificador sobre
// las filas pendientes
type CategorizeSync struct {
	CronSchedule        string `mapstructure:"categorize_sync_cron"`
	BatchSize           int    `mapstructure:"categorize_sync_batch_size"`
	RequestDelaySeconds int    `mapstructure:"categorize_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"categorize_sync_enabled"`
}

// CleanupSync configura la purga de filas pendientes sin contenido
type CleanupSync struct {
	CronSchedule string `mapstructure:"cleanup_sync_cron"`
	Enabled      bool   `mapstructure:"cleanup_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pulso_social")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("UPLOAD_MAX_FILE_SIZE_BYTES", 10*1024*1024) // 10 MiB

	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-5-chat-latest")
	viper.SetDefault("OPENAI_MAX_OUTPUT_TOKENS", 50)

	// Defaults para la categorización automática de pendientes
	viper.SetDefault("CATEGORIZE_SYNC_CRON", "0 2 * * *")        // Todos los días a las 2h
	viper.SetDefault("CATEGORIZE_SYNC_BATCH_SIZE", 10)           // Registros por lote
	viper.SetDefault("CATEGORIZE_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requests
	viper.SetDefault("CATEGORIZE_SYNC_ENABLED", false)

	viper.SetDefault("CLEANUP_SYNC_CRON", "0 1 * * 0") // Domingos a la 1h
	viper.SetDefault("CLEANUP_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primero cargar el archivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Intentar leer el archivo .env con Viper (opcional, ya usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variables cargadas por godotenv (viper no pudo leer .env):", err)
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

	return config, nil
}

// loadEnvFile carga el archivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("No fue posible obtener el directorio actual:", err)
		return
	}

	// Intentar varias ubicaciones posibles para el archivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Archivo .env cargado desde:", location)
			return
		}
	}

	logrus.Warn("No fue posible cargar el archivo .env desde ninguna ubicación conocida")
}
