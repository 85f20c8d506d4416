// Package handler, sunucusuz barındırma için tek giriş noktasıdır.
package handler

import (
	"log"
	"net/http"
	"sync"

	"jewelhub/internal/app"
	"jewelhub/internal/config"
)

var (
	once     sync.Once
	instance *app.App
	initErr  error
)

// Handler, uygulamayı ilk istekte kurar ve isteği gin'e iletir.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		instance, initErr = app.New(cfg)
	})
	if initErr != nil {
		log.Printf("Handler - uygulama başlatılamadı: %v", initErr)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}
	instance.Engine.ServeHTTP(w, r)
}
