package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jewelhub/internal/app"
	"jewelhub/internal/config"
	"jewelhub/internal/devcert"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run, uygulamayı kurar ve sunucu kapanana kadar bekler. Dönüşte açık
// kaynaklar her durumda kapatılır.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("ayarlar yüklenemedi: %w", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("uygulama başlatılamadı: %w", err)
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case cfg.Port != "":
		// Barındırılan ortam: yalnızca HTTP
		log.Printf("HTTP Server başlatılıyor (port: %s)...", cfg.Port)
		return serve(ctx, &http.Server{Addr: ":" + cfg.Port, Handler: a.Engine})
	case cfg.DevTLS:
		return serveTLS(ctx, cfg, a.Engine)
	default:
		log.Printf("HTTP Server başlatılıyor: http://localhost%s", cfg.HTTPAddr)
		return serve(ctx, &http.Server{Addr: cfg.HTTPAddr, Handler: a.Engine})
	}
}

// serveTLS, HTTPS sunucusunu ve HTTPS'e yönlendiren HTTP sunucusunu başlatır.
func serveTLS(ctx context.Context, cfg *config.Config, handler http.Handler) error {
	cert, err := devcert.Load("localhost.crt", "localhost.key", nil)
	if err != nil {
		log.Printf("Self-signed sertifika oluşturulamadı: %v, sadece HTTP başlatılıyor", err)
		return serve(ctx, &http.Server{Addr: cfg.HTTPAddr, Handler: handler})
	}

	httpsServer := &http.Server{
		Addr:      cfg.HTTPSAddr,
		Handler:   handler,
		TLSConfig: &tls.Config{Certificates: []tls.Certificate{cert}, MinVersion: tls.VersionTLS12},
	}
	_, httpsPort, _ := net.SplitHostPort(cfg.HTTPSAddr)
	redirect := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.Host)
			if err != nil {
				host = r.Host
			}
			target := fmt.Sprintf("https://%s:%s%s", host, httpsPort, r.URL.RequestURI())
			http.Redirect(w, r, target, http.StatusMovedPermanently)
		}),
	}

	go func() {
		log.Printf("HTTPS Server başlatılıyor: https://localhost%s", cfg.HTTPSAddr)
		if err := httpsServer.ListenAndServeTLS("", ""); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("HTTPS Server başlatılamadı: %v", err)
		}
	}()
	log.Printf("HTTP Server başlatılıyor (HTTPS'e yönlendirme): http://localhost%s", cfg.HTTPAddr)
	go shutdownOnDone(ctx, httpsServer)
	return serve(ctx, redirect)
}

// serve, sunucuyu başlatır ve ctx bitince kapatır. Normal kapanışta nil
// döner.
func serve(ctx context.Context, srv *http.Server) error {
	go shutdownOnDone(ctx, srv)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP Server başlatılamadı (%s): %w", srv.Addr, err)
	}
	return nil
}

func shutdownOnDone(ctx context.Context, srv *http.Server) {
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server kapatılamadı (%s): %v", srv.Addr, err)
	}
}
