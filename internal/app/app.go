// Package app, yapılandırmadan çalışır bir gin engine kurar.
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jewelhub/internal/apiclient"
	"jewelhub/internal/config"
	"jewelhub/internal/database"
	"jewelhub/internal/handlers"
	"jewelhub/internal/services"
	"jewelhub/internal/session"
	"jewelhub/web"
)

// App, kurulmuş engine ve kapatılması gereken kaynaklardır.
type App struct {
	Engine  *gin.Engine
	closers []func() error
}

// New, depoyu, API istemcisini, servisleri, şablonları ve rotaları bağlar.
func New(cfg *config.Config) (*App, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	a := &App{}

	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	if closer, ok := store.(interface{ Close() error }); ok {
		a.closers = append(a.closers, closer.Close)
	}

	api := apiclient.New(cfg.APIURL, &http.Client{Timeout: cfg.APITimeout()})
	security := services.NewSecurityLogger(cfg.SecurityLog)
	a.closers = append(a.closers, security.Close)
	email := services.NewEmailService(services.EmailConfig{
		PostmarkToken: cfg.PostmarkAPIToken,
		SMTPHost:      cfg.SMTPHost,
		SMTPPort:      cfg.SMTPPort,
		SMTPUser:      cfg.SMTPUser,
		SMTPPass:      cfg.SMTPPass,
		From:          cfg.EmailSender,
		Timeout:       cfg.EmailTimeout(),
	})
	a.closers = append(a.closers, func() error {
		email.Wait()
		return nil
	})

	h := handlers.NewHandler(handlers.Deps{
		API:          api,
		Sessions:     session.NewStore(store, cfg.StoreTTL()),
		Signer:       session.NewSigner(cfg.SessionSecret),
		Cart:         services.NewCartService(store, cfg.StoreTTL(), cfg.CartPerStore),
		Email:        email,
		Contact:      services.NewContactService(email, services.NewSpamDetector(), security, cfg.ContactInbox),
		Security:     security,
		CookieSecure: cfg.CookieSecure || cfg.DevTLS,
		TokenTTL:     24 * time.Hour,
	})

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	if err := r.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	renderer, err := handlers.LoadTemplates(web.Templates(), handlers.TemplateFuncs(api))
	if err != nil {
		return nil, err
	}
	r.HTMLRender = renderer
	h.RegisterRoutes(r)

	a.Engine = r
	return a, nil
}

// Close, açık kaynakları kapatır.
func (a *App) Close() {
	for _, fn := range a.closers {
		if err := fn(); err != nil {
			log.Printf("App.Close - %v", err)
		}
	}
}

// openStore, REDIS_ADDR doluysa Redis'i, değilse JSON dosyasını kullanır.
func openStore(cfg *config.Config) (database.Store, error) {
	if cfg.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		store, err := database.NewRedisStore(ctx, database.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		log.Printf("openStore - Redis kullanılıyor: %s", cfg.RedisAddr)
		return store, nil
	}
	db, err := database.NewDatabase(cfg.DataFile)
	if err != nil {
		return nil, fmt.Errorf("veritabanı başlatılamadı: %w", err)
	}
	log.Printf("openStore - JSON veritabanı kullanılıyor: %s", cfg.DataFile)
	return db, nil
}
