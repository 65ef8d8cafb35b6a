package logger

import "log/slog"

// Error returns a standardized attribute for error values.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

// NewsletterID returns a standardized attribute for newsletter identifiers.
func NewsletterID(id string) slog.Attr {
	return slog.String("newsletter_id", id)
}

// Recipient returns a standardized attribute for recipient addresses.
func Recipient(email string) slog.Attr {
	return slog.String("recipient", email)
}
