package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Log       LogConfig
	Site      SiteConfig
	Lead      LeadConfig
	SMTP      SMTPConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string // lista separada por comas; vacío = "*"
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig nivel y archivo rotado opcional.
type LogConfig struct {
	Level string
	File  string // vacío = solo stdout
}

// SiteConfig datos públicos del sitio.
type SiteConfig struct {
	BaseURL string // https://perfectpolymers.co (sitemap, QR de las fichas, cabecera Origin)
}

// Receptores de formularios admitidos en LEAD_SINK.
const (
	SinkLog        = "log"
	SinkFormSubmit = "formsubmit"
	SinkSMTP       = "smtp"
)

// LeadConfig receptor de los formularios.
type LeadConfig struct {
	Sink               string
	FormSubmitEndpoint string
	SubmitTimeout      time.Duration
}

// SMTPConfig servidor de correo para LEAD_SINK=smtp.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// RedisConfig almacenamiento compartido del limitador. Addr vacío = memoria local.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RateLimitConfig límite de envíos de formularios por IP.
type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, LEAD_SINK, SMTP_HOST, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env o config.env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "perfectpolymers-api"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			CORSOrigins: getString(v, "CORS_ALLOW_ORIGINS", ""),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
			File:  getString(v, "LOG_FILE", ""),
		},
		Site: SiteConfig{
			BaseURL: strings.TrimRight(getString(v, "SITE_BASE_URL", "https://perfectpolymers.co"), "/"),
		},
		Lead: LeadConfig{
			Sink:               strings.ToLower(getString(v, "LEAD_SINK", SinkLog)),
			FormSubmitEndpoint: getString(v, "FORMSUBMIT_ENDPOINT", "https://formsubmit.co/ajax/info@perfectpolymers.co"),
			SubmitTimeout:      time.Duration(getInt(v, "LEAD_SUBMIT_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		SMTP: SMTPConfig{
			Host:     getString(v, "SMTP_HOST", ""),
			Port:     getInt(v, "SMTP_PORT", 587),
			Username: getString(v, "SMTP_USERNAME", ""),
			Password: getString(v, "SMTP_PASSWORD", ""),
			From:     getString(v, "SMTP_FROM", ""),
			To:       getString(v, "SMTP_TO", "sales@perfectpolymers.co"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			Max:    getInt(v, "RATE_LIMIT_MAX", 5),
			Window: time.Duration(getInt(v, "RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Lead.Sink {
	case SinkLog, SinkFormSubmit:
	case SinkSMTP:
		if c.SMTP.Host == "" || c.SMTP.From == "" {
			return fmt.Errorf("config: LEAD_SINK=smtp requiere SMTP_HOST y SMTP_FROM")
		}
	default:
		return fmt.Errorf("config: LEAD_SINK %q no soportado (log | formsubmit | smtp)", c.Lead.Sink)
	}
	if c.Lead.SubmitTimeout <= 0 {
		return fmt.Errorf("config: LEAD_SUBMIT_TIMEOUT_SECONDS debe ser mayor que 0")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
