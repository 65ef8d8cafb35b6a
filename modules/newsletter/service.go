package newsletter

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/newskit/modules/newsletter/dispatch"
	"github.com/dmitrymomot/newskit/pkg/logger"
)

// RenderFunc converts a document into the HTML email body. Injected so this
// package stays independent of the render package, which imports the
// document types from here.
type RenderFunc func(Document) string

// Dispatcher fans rendered HTML out to a recipient list. Satisfied by
// *dispatch.Dispatcher.
type Dispatcher interface {
	Dispatch(ctx context.Context, html, subject string, recipients []dispatch.Recipient) (dispatch.SendReport, error)
}

// Service orchestrates the newsletter lifecycle: draft creation and edits
// against the repository, and the send flow of load, render, dispatch,
// mark-sent.
type Service struct {
	repo        Repository
	dispatcher  Dispatcher
	render      RenderFunc
	tokenSecret string
	log         *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithTokenSecret sets the secret for deriving unsubscribe tokens of new
// subscribers.
func WithTokenSecret(secret string) ServiceOption {
	return func(s *Service) {
		s.tokenSecret = secret
	}
}

// NewService creates the newsletter service. Repository, dispatcher, and
// renderer are all required.
func NewService(repo Repository, dispatcher Dispatcher, render RenderFunc, opts ...ServiceOption) (*Service, error) {
	if repo == nil || dispatcher == nil || render == nil {
		return nil, ErrMissingDependencies
	}

	s := &Service{
		repo:       repo,
		dispatcher: dispatcher,
		render:     render,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CreateDraft creates a new draft newsletter record with an empty document.
func (s *Service) CreateDraft(ctx context.Context, mainTitle, subTitle, displayDate string) (Newsletter, error) {
	n := Newsletter{
		ID:          uuid.New(),
		MainTitle:   mainTitle,
		SubTitle:    subTitle,
		DisplayDate: displayDate,
		Sections:    []Section{},
		Status:      StatusDraft,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.CreateNewsletter(ctx, n); err != nil {
		return Newsletter{}, err
	}
	return n, nil
}

// GetNewsletter loads a newsletter record.
func (s *Service) GetNewsletter(ctx context.Context, id uuid.UUID) (Newsletter, error) {
	return s.repo.GetNewsletter(ctx, id)
}

// SaveDraft persists the current document of a newsletter.
func (s *Service) SaveDraft(ctx context.Context, id uuid.UUID, doc Document) error {
	return s.repo.SaveContent(ctx, id, doc)
}

// Subscribe adds an address to the distribution list with a derived
// unsubscribe token.
func (s *Service) Subscribe(ctx context.Context, email string) (Subscriber, error) {
	sub := Subscriber{
		ID:               uuid.New(),
		Email:            email,
		UnsubscribeToken: UnsubscribeToken(email, s.tokenSecret),
		Status:           SubscriberActive,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.repo.AddSubscriber(ctx, sub); err != nil {
		return Subscriber{}, err
	}
	return sub, nil
}

// Unsubscribe removes an address from the active list when the token
// matches. An invalid token is reported as not-found so the endpoint does
// not leak which addresses exist.
func (s *Service) Unsubscribe(ctx context.Context, email, token string) error {
	if !VerifyUnsubscribeToken(email, token, s.tokenSecret) {
		return ErrSubscriberNotFound
	}
	return s.repo.Unsubscribe(ctx, email)
}

// Send renders the newsletter once and dispatches it to every active
// subscriber, then updates the record's send metadata. Partial delivery is
// a success: the record is marked sent whenever the dispatch itself was
// able to run, and the caller receives the full report either way. A
// dispatch configuration error is fatal and leaves the record untouched.
func (s *Service) Send(ctx context.Context, id uuid.UUID, subject string) (dispatch.SendReport, error) {
	n, err := s.repo.GetNewsletter(ctx, id)
	if err != nil {
		return dispatch.SendReport{}, err
	}
	if subject == "" {
		subject = n.MainTitle
	}

	subscribers, err := s.repo.ListActiveSubscribers(ctx)
	if err != nil {
		return dispatch.SendReport{}, err
	}

	recipients := make([]dispatch.Recipient, 0, len(subscribers))
	for _, sub := range subscribers {
		recipients = append(recipients, dispatch.Recipient{
			Email:            sub.Email,
			UnsubscribeToken: sub.UnsubscribeToken,
		})
	}

	html := s.render(n.Document())

	report, err := s.dispatcher.Dispatch(ctx, html, subject, recipients)
	if err != nil {
		return report, err
	}

	if err := s.repo.MarkSent(ctx, id, report.Succeeded, time.Now().UTC()); err != nil {
		// Delivery already happened; surface the bookkeeping failure but
		// hand the report back so the caller can still present it.
		s.log.LogAttrs(ctx, slog.LevelError, "failed to mark newsletter as sent",
			logger.NewsletterID(id.String()),
			logger.Error(err),
		)
		return report, err
	}

	return report, nil
}
