package newsletter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence collaborator for newsletter records and the
// subscriber list. The send flow depends on this interface only; the pgx
// implementation lives in repository_pg.go.
type Repository interface {
	CreateNewsletter(ctx context.Context, n Newsletter) error
	GetNewsletter(ctx context.Context, id uuid.UUID) (Newsletter, error)
	SaveContent(ctx context.Context, id uuid.UUID, doc Document) error
	MarkSent(ctx context.Context, id uuid.UUID, recipientsCount int, sentAt time.Time) error

	AddSubscriber(ctx context.Context, s Subscriber) error
	ListActiveSubscribers(ctx context.Context) ([]Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
}
