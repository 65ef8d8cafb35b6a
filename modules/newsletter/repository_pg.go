package newsletter

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgRepository persists newsletters and subscribers in PostgreSQL. Section
// content is stored as a JSONB blob in the wire shape produced by
// EncodeSections; records written by the pre-structured editor hold a bare
// HTML string there, which DecodeSections still accepts.
type pgRepository struct {
	db *pgxpool.Pool
}

// NewRepository creates a PostgreSQL-backed Repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &pgRepository{db: db}
}

func (r *pgRepository) CreateNewsletter(ctx context.Context, n Newsletter) error {
	content, err := EncodeSections(n.Sections)
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO newsletters (id, main_title, sub_title, display_date, content, status, recipients_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.ID, n.MainTitle, n.SubTitle, n.DisplayDate, content, n.Status, n.RecipientsCount, n.CreatedAt,
	)
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	return nil
}

func (r *pgRepository) GetNewsletter(ctx context.Context, id uuid.UUID) (Newsletter, error) {
	var (
		n       Newsletter
		content []byte
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, main_title, sub_title, display_date, content, status, recipients_count, created_at, sent_at
		FROM newsletters WHERE id = $1`, id,
	).Scan(&n.ID, &n.MainTitle, &n.SubTitle, &n.DisplayDate, &content, &n.Status, &n.RecipientsCount, &n.CreatedAt, &n.SentAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Newsletter{}, ErrNewsletterNotFound
		}
		return Newsletter{}, errors.Join(ErrFailedToLoad, err)
	}

	n.Sections = DecodeSections(content)
	return n, nil
}

func (r *pgRepository) SaveContent(ctx context.Context, id uuid.UUID, doc Document) error {
	content, err := EncodeSections(doc.Sections)
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE newsletters
		SET main_title = $2, sub_title = $3, display_date = $4, content = $5
		WHERE id = $1`,
		id, doc.MainTitle, doc.SubTitle, doc.Date, content,
	)
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNewsletterNotFound
	}
	return nil
}

func (r *pgRepository) MarkSent(ctx context.Context, id uuid.UUID, recipientsCount int, sentAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE newsletters
		SET status = $2, recipients_count = $3, sent_at = $4
		WHERE id = $1`,
		id, StatusSent, recipientsCount, sentAt,
	)
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNewsletterNotFound
	}
	return nil
}

func (r *pgRepository) AddSubscriber(ctx context.Context, s Subscriber) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO subscribers (id, email, unsubscribe_token, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.Email, s.UnsubscribeToken, s.Status, s.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505: unique violation on the email column.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrSubscriberExists
		}
		return errors.Join(ErrFailedToSave, err)
	}
	return nil
}

func (r *pgRepository) ListActiveSubscribers(ctx context.Context) ([]Subscriber, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, email, unsubscribe_token, status, created_at
		FROM subscribers
		WHERE status = $1
		ORDER BY created_at`, SubscriberActive,
	)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoad, err)
	}
	defer rows.Close()

	var subscribers []Subscriber
	for rows.Next() {
		var s Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.UnsubscribeToken, &s.Status, &s.CreatedAt); err != nil {
			return nil, errors.Join(ErrFailedToLoad, err)
		}
		subscribers = append(subscribers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrFailedToLoad, err)
	}
	return subscribers, nil
}

func (r *pgRepository) Unsubscribe(ctx context.Context, email string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE subscribers SET status = $2 WHERE email = $1`,
		email, SubscriberUnsubscribed,
	)
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSubscriberNotFound
	}
	return nil
}
