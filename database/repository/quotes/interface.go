package quotesRepo

import (
	"context"
	"errors"

	"upsell/models"
)

// ErrNotFound is returned when a quote is missing or past its expiry.
var ErrNotFound = errors.New("quote not found")

// QuoteRepository stores priced optimization reports until they expire.
type QuoteRepository interface {
	Save(ctx context.Context, quote models.Quote) error
	Get(ctx context.Context, id string) (*models.Quote, error)
	Delete(ctx context.Context, id string) error
}
