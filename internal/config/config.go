package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Storage
	DataDir        string `mapstructure:"DATA_DIR"`
	FotosDir       string `mapstructure:"FOTOS_DIR"`
	PDFStoragePath string `mapstructure:"PDF_STORAGE_PATH"`

	// Session
	SessionSecret          string `mapstructure:"SESSION_SECRET"`
	SessionExpirationHours int    `mapstructure:"SESSION_EXPIRATION_HOURS"`

	// Campaign queue — empty REDIS_URL disables the worker pool
	RedisURL       string `mapstructure:"REDIS_URL"`
	WorkerPoolSize int    `mapstructure:"WORKER_POOL_SIZE"`

	// SMTP (campaign mailer)
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`

	// External lookups
	ViaCEPURL   string `mapstructure:"VIACEP_URL"`
	GeocoderURL string `mapstructure:"GEOCODER_URL"`

	// Store identity printed on receipts and quotes
	LojaNome     string `mapstructure:"LOJA_NOME"`
	LojaCidade   string `mapstructure:"LOJA_CIDADE"`
	LojaTelefone string `mapstructure:"LOJA_TELEFONE"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATA_DIR", "dados")
	viper.SetDefault("FOTOS_DIR", "dados/fotos")
	viper.SetDefault("PDF_STORAGE_PATH", "/tmp/otica/pdfs")
	viper.SetDefault("SESSION_SECRET", "otica-dev-secret")
	viper.SetDefault("SESSION_EXPIRATION_HOURS", 12)
	viper.SetDefault("WORKER_POOL_SIZE", 3)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("VIACEP_URL", "https://viacep.com.br")
	viper.SetDefault("GEOCODER_URL", "https://geocode.arcgis.com")
	viper.SetDefault("LOJA_NOME", "FÁBRICA DE ÓCULOS JR VITÓRIA")
	viper.SetDefault("LOJA_CIDADE", "Vitória - ES")
	viper.SetDefault("LOJA_TELEFONE", "(27) 99999-9999")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
