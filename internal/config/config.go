// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type JWTConfig struct {
	SecretKey      string        `mapstructure:"secret_key"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
}

type MailerConfig struct {
	Type string `mapstructure:"type"` // "ses" | "smtp" | "log"
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	From            string `mapstructure:"from"`
	AuthType        string `mapstructure:"auth_type"` // "iam_role" | "static_credentials"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

// AppConfig はエネルギー/ストリーク/XPまわりの調整値をまとめたものです。
// 値の意味は progression パッケージ側のドキュメントを参照。
type AppConfig struct {
	Name        string `mapstructure:"name"`
	FrontendURL string `mapstructure:"frontend_url"`

	EnergyRegenMinutes int `mapstructure:"energy_regen_minutes"`
	MaxEnergyFree      int `mapstructure:"max_energy_free"`
	MaxEnergyPro       int `mapstructure:"max_energy_pro"`
	// N回連続正解ごとにエネルギーを1回復する
	StreakBonusEvery int `mapstructure:"streak_bonus_every"`

	XPCorrect   int `mapstructure:"xp_correct"`
	XPPartial   int `mapstructure:"xp_partial"`
	XPIncorrect int `mapstructure:"xp_incorrect"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Mailer   MailerConfig   `mapstructure:"mailer"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	SES      SESConfig      `mapstructure:"ses"`
	App      AppConfig      `mapstructure:"app"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数での上書き (例: APP_JWT_SECRET_KEY)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	applyDefaults(&Cfg)

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Energy regen: 1 per %d min (free cap %d)", Cfg.App.EnergyRegenMinutes, Cfg.App.MaxEnergyFree)

	return nil
}

// applyDefaults は未設定・不正な値にデフォルトを適用します
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.App.Name == "" {
		cfg.App.Name = AppName
	}
	if cfg.App.EnergyRegenMinutes <= 0 {
		cfg.App.EnergyRegenMinutes = DefaultEnergyRegenMinutes
	}
	if cfg.App.MaxEnergyFree <= 0 {
		cfg.App.MaxEnergyFree = DefaultMaxEnergyFree
	}
	if cfg.App.MaxEnergyPro <= 0 {
		cfg.App.MaxEnergyPro = DefaultMaxEnergyPro
	}
	if cfg.App.StreakBonusEvery <= 0 {
		cfg.App.StreakBonusEvery = DefaultStreakBonusEvery
	}
	if cfg.App.XPCorrect <= 0 {
		cfg.App.XPCorrect = DefaultXPCorrect
	}
	if cfg.App.XPPartial <= 0 {
		cfg.App.XPPartial = DefaultXPPartial
	}
	if cfg.App.XPIncorrect <= 0 {
		cfg.App.XPIncorrect = DefaultXPIncorrect
	}
	if cfg.JWT.AccessTokenTTL <= 0 {
		cfg.JWT.AccessTokenTTL = 24 * time.Hour
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set in config.")
	}
}
