// Package email provides a provider-agnostic interface for sending
// newsletter emails, with a Postmark implementation for production and a
// file-based sender for local development.
//
// # Architecture
//
// The package is built around the Sender interface so the dispatch layer
// depends on a single-recipient primitive and providers can be swapped
// without touching dispatch logic:
//   - PostmarkClient for production delivery with open/click tracking
//   - DevSender for local development (saves emails to disk)
//
// All implementations validate SendParams before sending, so malformed
// addresses or empty bodies are rejected consistently across providers.
//
// # Usage
//
//	cfg := email.Config{
//		PostmarkServerToken:  "server-token",
//		PostmarkAccountToken: "account-token",
//		SenderEmail:          "news@example.com",
//	}
//
//	sender, err := email.NewPostmarkClient(cfg)
//	if err != nil {
//		// configuration error: transport must not be used
//	}
//
//	err = sender.SendEmail(ctx, email.SendParams{
//		SendTo:         "reader@example.com",
//		Subject:        "Weekly digest",
//		BodyHTML:       html,
//		Tag:            "newsletter",
//		UnsubscribeURL: "https://example.com/unsubscribe?email=...&token=...",
//	})
//
// When UnsubscribeURL is set, the Postmark client attaches List-Unsubscribe
// and List-Unsubscribe-Post headers (RFC 8058 one-click) in addition to
// whatever unsubscribe link the body itself carries.
//
// # Error Handling
//
// Sentinel errors support programmatic handling with errors.Is:
//   - ErrInvalidConfig: transport configuration validation failed
//   - ErrInvalidParams: send parameters validation failed
//   - ErrFailedToSendEmail: delivery failed
package email
