package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
)

// Config, sunucunun çalışma ayarlarını tutar.
type Config struct {
	AppEnv    string `default:"development"`
	HTTPAddr  string `default:":8080"`
	HTTPSAddr string `default:":8443"`
	// Port doluysa sunucu barındırılan modda tek HTTP portu dinler.
	Port   string
	DevTLS bool

	APIURL        string `default:"http://localhost:8000/api"`
	APITimeoutSec int

	SessionSecret string
	CookieSecure  bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DataFile      string `default:"./data.json"`
	StoreTTLHours int    `default:"720"`
	CartPerStore  bool

	SMTPHost         string
	SMTPPort         int `default:"587"`
	SMTPUser         string
	SMTPPass         string
	PostmarkAPIToken string
	EmailSender      string `default:"no-reply@jewelhub.in"`
	EmailTimeoutSec  int    `default:"10"`
	ContactInbox     string

	SecurityLog string `default:"security.log"`
}

// Load, .env dosyasını (varsa) ve ortam değişkenlerini okuyarak Config döndürür.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Config.Load - .env okunamadı: %v", err)
	}

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	str(&cfg.AppEnv, "APP_ENV")
	str(&cfg.HTTPAddr, "HTTP_ADDR")
	str(&cfg.HTTPSAddr, "HTTPS_ADDR")
	str(&cfg.Port, "PORT")
	str(&cfg.APIURL, "API_URL")
	str(&cfg.APIURL, "NEXT_PUBLIC_API_URL")
	str(&cfg.SessionSecret, "SESSION_SECRET")
	str(&cfg.RedisAddr, "REDIS_ADDR")
	str(&cfg.RedisPassword, "REDIS_PASSWORD")
	str(&cfg.DataFile, "DATA_FILE")
	str(&cfg.SMTPHost, "SMTP_HOST")
	str(&cfg.SMTPUser, "SMTP_USER")
	str(&cfg.SMTPPass, "SMTP_PASS")
	str(&cfg.PostmarkAPIToken, "POSTMARK_API_TOKEN")
	str(&cfg.EmailSender, "EMAIL_SENDER")
	str(&cfg.ContactInbox, "CONTACT_INBOX")
	str(&cfg.SecurityLog, "SECURITY_LOG")

	for key, dst := range map[string]*bool{
		"DEV_TLS":        &cfg.DevTLS,
		"COOKIE_SECURE":  &cfg.CookieSecure,
		"CART_PER_STORE": &cfg.CartPerStore,
	} {
		if err := boolean(dst, key); err != nil {
			return nil, err
		}
	}
	for key, dst := range map[string]*int{
		"API_TIMEOUT_SEC":   &cfg.APITimeoutSec,
		"REDIS_DB":          &cfg.RedisDB,
		"STORE_TTL_HOURS":   &cfg.StoreTTLHours,
		"SMTP_PORT":         &cfg.SMTPPort,
		"EMAIL_TIMEOUT_SEC": &cfg.EmailTimeoutSec,
	} {
		if err := integer(dst, key); err != nil {
			return nil, err
		}
	}

	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("SESSION_SECRET is required in production")
		}
		log.Println("Config.Load - SESSION_SECRET boş, geliştirme anahtarı kullanılıyor")
		cfg.SessionSecret = "jewelhub-development-secret"
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// APITimeout, 0 ise istemci zaman aşımı uygulamaz.
func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.APITimeoutSec) * time.Second
}

func (c *Config) EmailTimeout() time.Duration {
	return time.Duration(c.EmailTimeoutSec) * time.Second
}

func (c *Config) StoreTTL() time.Duration {
	return time.Duration(c.StoreTTLHours) * time.Hour
}

func str(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func boolean(dst *bool, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}

func integer(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
