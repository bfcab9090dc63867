package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aidajassomex/finca57/internal/cfg"
	"github.com/aidajassomex/finca57/internal/domain"
	"github.com/aidajassomex/finca57/pkg/e"
)

// sweepInterval — период фоновой очистки истекших корзин
const sweepInterval = time.Minute

type entry struct {
	cart      domain.Cart
	expiresAt time.Time
}

// CartRepo — корзины сессий в памяти процесса.
// Бэкенд по умолчанию: корзины живут до TTL и теряются при рестарте,
// что соответствует сессионной семантике корзины.
type CartRepo struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration

	stop chan struct{}
	done chan struct{}
}

func NewCartRepo(cfg *cfg.CartCfg) *CartRepo {
	r := &CartRepo{
		entries: make(map[string]entry),
		ttl:     cfg.TTL,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	go r.sweep()

	return r
}

func (r *CartRepo) GetCart(_ context.Context, cartID string) (domain.Cart, error) {
	r.mu.RLock()
	ent, ok := r.entries[cartID]
	r.mu.RUnlock()

	if !ok || time.Now().After(ent.expiresAt) {
		return domain.Cart{}, e.Wrap(cartID, e.ErrCartNotFound)
	}

	return ent.cart, nil
}

// SaveCart сохраняет корзину и продлевает ее TTL.
func (r *CartRepo) SaveCart(_ context.Context, cart domain.Cart) error {
	r.mu.Lock()
	r.entries[cart.ID] = entry{
		cart:      cart,
		expiresAt: time.Now().Add(r.ttl),
	}
	r.mu.Unlock()

	return nil
}

func (r *CartRepo) DeleteCart(_ context.Context, cartID string) error {
	r.mu.Lock()
	delete(r.entries, cartID)
	r.mu.Unlock()

	return nil
}

// Close останавливает фоновую очистку.
func (r *CartRepo) Close(ctx context.Context) error {
	close(r.stop)

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *CartRepo) sweep() {
	defer close(r.done)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case now := <-ticker.C:
			r.mu.Lock()
			for id, ent := range r.entries {
				if now.After(ent.expiresAt) {
					delete(r.entries, id)
				}
			}
			r.mu.Unlock()
		}
	}
}
