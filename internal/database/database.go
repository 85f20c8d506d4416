package database

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"
	"time"
)

// ErrNotFound, anahtar yoksa veya süresi dolmuşsa döner.
var ErrNotFound = errors.New("database: key not found")

// Store, oturum ve sepet verilerinin saklandığı anahtar/değer deposudur.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// ttl 0 ise kayıt süresizdir.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// entry, JSON dosyasındaki tek bir kaydı temsil eder.
type entry struct {
	Value     json.RawMessage `json:"value"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
}

func (e entry) expired(now time.Time) bool {
	return e.ExpiresAt != nil && !now.Before(*e.ExpiresAt)
}

// dbData, JSON dosyasındaki tüm verileri temsil eder.
type dbData struct {
	Entries map[string]entry `json:"entries"`
}

// JSONDatabase, Redis yokken kullanılan dosya tabanlı depodur.
type JSONDatabase struct {
	mu       sync.RWMutex
	data     dbData
	filePath string
	now      func() time.Time
}

// NewDatabase, yeni bir JSONDatabase örneği oluşturur ve verileri yükler.
func NewDatabase(filePath string) (*JSONDatabase, error) {
	if filePath == "" {
		filePath = "./data.json"
	}
	db := &JSONDatabase{
		filePath: filePath,
		now:      time.Now,
	}
	if err := db.loadData(); err != nil {
		// Bozuk dosya: boş veriyle yeniden başlat
		var syntaxErr *json.SyntaxError
		if !errors.As(err, &syntaxErr) {
			return nil, err
		}
		log.Printf("JSONDatabase.NewDatabase - %s bozuk, sıfırlanıyor: %v", filePath, err)
		db.data.Entries = map[string]entry{}
		if saveErr := db.saveData(); saveErr != nil {
			return nil, saveErr
		}
	}
	return db, nil
}

func (db *JSONDatabase) loadData() error {
	db.data.Entries = map[string]entry{}
	if _, err := os.Stat(db.filePath); os.IsNotExist(err) {
		return db.saveData()
	}

	fileData, err := os.ReadFile(db.filePath)
	if err != nil {
		return err
	}
	// Dosya boşsa hata vermemesi için kontrol
	if len(fileData) == 0 {
		return nil
	}
	if err := json.Unmarshal(fileData, &db.data); err != nil {
		return err
	}
	if db.data.Entries == nil {
		db.data.Entries = map[string]entry{}
	}
	return nil
}

func (db *JSONDatabase) saveData() error {
	data, err := json.MarshalIndent(db.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(db.filePath, data, 0600)
}

// Get, anahtarın değerini döndürür. Süresi dolmuş kayıtlar yok sayılır.
func (db *JSONDatabase) Get(_ context.Context, key string) ([]byte, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	e, ok := db.data.Entries[key]
	if !ok || e.expired(db.now()) {
		return nil, ErrNotFound
	}
	out := make([]byte, len(e.Value))
	copy(out, e.Value)
	return out, nil
}

// Set, değeri kaydeder ve dosyaya yazar. Değer geçerli JSON olmalıdır.
func (db *JSONDatabase) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if !json.Valid(value) {
		return errors.New("database: value is not valid JSON")
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	e := entry{Value: append(json.RawMessage(nil), value...)}
	if ttl > 0 {
		exp := db.now().Add(ttl)
		e.ExpiresAt = &exp
	}
	db.data.Entries[key] = e
	db.purgeExpired()
	return db.saveData()
}

// Delete, anahtarı siler. Olmayan anahtar hata değildir.
func (db *JSONDatabase) Delete(_ context.Context, key string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if _, ok := db.data.Entries[key]; !ok {
		return nil
	}
	delete(db.data.Entries, key)
	return db.saveData()
}

// purgeExpired, mu kilitliyken çağrılmalıdır.
func (db *JSONDatabase) purgeExpired() {
	now := db.now()
	for k, e := range db.data.Entries {
		if e.expired(now) {
			delete(db.data.Entries, k)
		}
	}
}

// Len, süresi dolmamış kayıt sayısını döndürür.
func (db *JSONDatabase) Len() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	now := db.now()
	n := 0
	for _, e := range db.data.Entries {
		if !e.expired(now) {
			n++
		}
	}
	return n
}
