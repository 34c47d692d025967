package quotesRepo

import (
	"context"
	"sync"
	"time"

	"upsell/models"
)

// MemoryQuoteRepo keeps quotes in process, for tests and single-node setups.
type MemoryQuoteRepo struct {
	mu     sync.RWMutex
	quotes map[string]models.Quote
	now    func() time.Time
}

func NewMemoryQuoteRepo() *MemoryQuoteRepo {
	return &MemoryQuoteRepo{quotes: make(map[string]models.Quote), now: time.Now}
}

func (r *MemoryQuoteRepo) Save(ctx context.Context, quote models.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quotes[quote.ID] = quote
	return nil
}

func (r *MemoryQuoteRepo) Get(ctx context.Context, id string) (*models.Quote, error) {
	r.mu.RLock()
	quote, ok := r.quotes[id]
	r.mu.RUnlock()
	if !ok || !r.now().Before(quote.ExpiresAt) {
		return nil, ErrNotFound
	}
	return &quote, nil
}

func (r *MemoryQuoteRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.quotes, id)
	return nil
}
