package newsletter

import "errors"

var (
	ErrNewsletterNotFound  = errors.New("newsletter.errors.newsletter_not_found")
	ErrSubscriberExists    = errors.New("newsletter.errors.subscriber_exists")
	ErrSubscriberNotFound  = errors.New("newsletter.errors.subscriber_not_found")
	ErrFailedToSave        = errors.New("newsletter.errors.failed_to_save")
	ErrFailedToLoad        = errors.New("newsletter.errors.failed_to_load")
	ErrMissingDependencies = errors.New("newsletter.errors.missing_dependencies")
)
