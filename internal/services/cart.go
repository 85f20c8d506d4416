package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"jewelhub/internal/cart"
	"jewelhub/internal/database"
	"jewelhub/internal/models"
)

const cartKeyPrefix = "cart-storage:"

// CartScope, sepetin hangi anahtarda tutulacağını belirler. StoreSlug
// yalnızca mağaza başına sepet açıkken kullanılır.
type CartScope struct {
	VisitorID string
	StoreSlug string
}

// CartService, sepet işlemlerini yönetir ve sepeti depoya yazar.
type CartService struct {
	db       database.Store
	ttl      time.Duration
	perStore bool
	// Aynı ziyaretçinin eşzamanlı güncellemeleri kaybolmasın diye
	// oku-değiştir-yaz tek kilit altında yapılır.
	mu sync.Mutex
}

// NewCartService, yeni bir CartService örneği oluşturur
func NewCartService(db database.Store, ttl time.Duration, perStore bool) *CartService {
	return &CartService{db: db, ttl: ttl, perStore: perStore}
}

func (cs *CartService) key(scope CartScope) string {
	if cs.perStore && scope.StoreSlug != "" {
		return cartKeyPrefix + scope.VisitorID + ":" + scope.StoreSlug
	}
	return cartKeyPrefix + scope.VisitorID
}

func (cs *CartService) load(ctx context.Context, scope CartScope) (*cart.Cart, error) {
	c := &cart.Cart{}
	raw, err := cs.db.Get(ctx, cs.key(scope))
	if errors.Is(err, database.ErrNotFound) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if err := json.Unmarshal(raw, c); err != nil {
		// Bozuk kayıt boş sepet gibi davranır
		log.Printf("CartService.load - corrupt cart for %s: %v", cs.key(scope), err)
		return &cart.Cart{}, nil
	}
	return c, nil
}

func (cs *CartService) save(ctx context.Context, scope CartScope, c *cart.Cart) error {
	if c.Empty() {
		return cs.db.Delete(ctx, cs.key(scope))
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return cs.db.Set(ctx, cs.key(scope), raw, cs.ttl)
}

func (cs *CartService) mutate(ctx context.Context, scope CartScope, fn func(*cart.Cart)) (*cart.Cart, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	c, err := cs.load(ctx, scope)
	if err != nil {
		return nil, err
	}
	fn(c)
	if err := cs.save(ctx, scope, c); err != nil {
		log.Printf("CartService.mutate - save error: %v", err)
		return nil, err
	}
	return c, nil
}

// GetCart, ziyaretçinin sepetini döndürür. Sepet yoksa boş sepet döner.
func (cs *CartService) GetCart(ctx context.Context, scope CartScope) (*cart.Cart, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.load(ctx, scope)
}

// AddToCart, sepete ürün ekler
func (cs *CartService) AddToCart(ctx context.Context, scope CartScope, item models.CartItem) (*cart.Cart, error) {
	log.Printf("CartService.AddToCart - Visitor: %s, ProductID: %d", scope.VisitorID, item.ProductID)
	return cs.mutate(ctx, scope, func(c *cart.Cart) { c.AddItem(item) })
}

// UpdateQuantity, miktarı günceller; 0 veya altı ürünü sepetten çıkarır.
func (cs *CartService) UpdateQuantity(ctx context.Context, scope CartScope, productID int64, quantity int) (*cart.Cart, error) {
	log.Printf("CartService.UpdateQuantity - Visitor: %s, ProductID: %d, Quantity: %d", scope.VisitorID, productID, quantity)
	return cs.mutate(ctx, scope, func(c *cart.Cart) { c.UpdateQuantity(productID, quantity) })
}

// RemoveFromCart, ürünü sepetten çıkarır
func (cs *CartService) RemoveFromCart(ctx context.Context, scope CartScope, productID int64) (*cart.Cart, error) {
	log.Printf("CartService.RemoveFromCart - Visitor: %s, ProductID: %d", scope.VisitorID, productID)
	return cs.mutate(ctx, scope, func(c *cart.Cart) { c.RemoveItem(productID) })
}

// ClearCart, sepeti boşaltır
func (cs *CartService) ClearCart(ctx context.Context, scope CartScope) error {
	log.Printf("CartService.ClearCart - Visitor: %s", scope.VisitorID)
	_, err := cs.mutate(ctx, scope, func(c *cart.Cart) { c.Clear() })
	return err
}
