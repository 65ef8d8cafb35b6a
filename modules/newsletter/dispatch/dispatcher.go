package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/newskit/pkg/async"
	"github.com/dmitrymomot/newskit/pkg/email"
	"github.com/dmitrymomot/newskit/pkg/logger"
)

const (
	// DefaultBatchSize is how many recipients are sent to in parallel
	// before the dispatcher pauses.
	DefaultBatchSize = 10
	// DefaultBatchDelay is the blocking pause between batch completions,
	// keeping the transport under its rate limit.
	DefaultBatchDelay = time.Second
	// DefaultMaxFailureDetail caps how many per-recipient failures are
	// carried in the report for presentation; counts are never capped.
	DefaultMaxFailureDetail = 5
)

// Recipient is a single delivery target. The unsubscribe token personalizes
// the unsubscribe link; a shared link would let one reader unsubscribe
// another.
type Recipient struct {
	Email            string
	UnsubscribeToken string
}

// Dispatcher fans a rendered newsletter out to a recipient list through a
// single-recipient transport, in fixed-size parallel batches.
type Dispatcher struct {
	sender           email.Sender
	siteURL          string
	batchSize        int
	batchDelay       time.Duration
	maxFailureDetail int
	log              *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithBatchSize sets the number of parallel sends per batch.
func WithBatchSize(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.batchSize = n
		}
	}
}

// WithBatchDelay sets the pause between batches.
func WithBatchDelay(delay time.Duration) Option {
	return func(d *Dispatcher) {
		if delay >= 0 {
			d.batchDelay = delay
		}
	}
}

// WithMaxFailureDetail sets the failure-detail cap in the report.
func WithMaxFailureDetail(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.maxFailureDetail = n
		}
	}
}

// WithSiteURL sets the site base URL used to build unsubscribe links.
func WithSiteURL(siteURL string) Option {
	return func(d *Dispatcher) {
		d.siteURL = strings.TrimRight(siteURL, "/")
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// New creates a dispatcher over the given transport.
func New(sender email.Sender, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sender:           sender,
		batchSize:        DefaultBatchSize,
		batchDelay:       DefaultBatchDelay,
		maxFailureDetail: DefaultMaxFailureDetail,
		log:              slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch sends html to every recipient and reconciles a SendReport.
//
// Recipients are partitioned into fixed-size batches; within a batch every
// send runs in parallel and settles independently, so one failure never
// aborts its batch or the batches after it. A blocking delay separates
// batch completions. Partial delivery is a success condition: the returned
// error is non-nil only for the fatal precondition of a missing transport,
// which must never be confused with an intentionally empty recipient list.
//
// Dispatch runs to completion over all recipients. The context is forwarded
// to each transport send, so a canceled context surfaces as per-recipient
// failures in the report rather than an abort.
func (d *Dispatcher) Dispatch(ctx context.Context, html, subject string, recipients []Recipient) (SendReport, error) {
	if d.sender == nil {
		return SendReport{}, ErrNoSender
	}

	report := SendReport{TotalAttempted: len(recipients)}
	if len(recipients) == 0 {
		return report, nil
	}

	batches := (len(recipients) + d.batchSize - 1) / d.batchSize
	d.log.InfoContext(ctx, "dispatching newsletter",
		slog.Int("recipients", len(recipients)),
		slog.Int("batches", batches),
	)

	var failures []SendFailure
	for start := 0; start < len(recipients); start += d.batchSize {
		end := min(start+d.batchSize, len(recipients))
		batch := recipients[start:end]

		futures := make([]*async.Future[string], 0, len(batch))
		for _, rcpt := range batch {
			futures = append(futures, async.Async(ctx, rcpt, func(ctx context.Context, rcpt Recipient) (string, error) {
				return rcpt.Email, d.sendOne(ctx, html, subject, rcpt)
			}))
		}

		// Per-goroutine results are folded after the batch settles; no
		// counter is shared between the parallel sends.
		for i, res := range async.AwaitAll(futures...) {
			if res.Err != nil {
				report.Failed++
				failures = append(failures, SendFailure{
					Email:  batch[i].Email,
					Reason: res.Err.Error(),
				})
				d.log.LogAttrs(ctx, slog.LevelWarn, "newsletter send failed",
					logger.Recipient(batch[i].Email),
					logger.Error(res.Err),
				)
				continue
			}
			report.Succeeded++
		}

		if end < len(recipients) {
			time.Sleep(d.batchDelay)
		}
	}

	if len(failures) > d.maxFailureDetail {
		report.Failures = failures[:d.maxFailureDetail]
		report.TruncatedFailureList = true
	} else {
		report.Failures = failures
	}

	d.log.InfoContext(ctx, "newsletter dispatch completed",
		slog.Int("succeeded", report.Succeeded),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}

// sendOne appends the personalized unsubscribe footer to the shared HTML
// template and performs a single transport send. The template itself is
// never mutated; each recipient gets a fresh concatenation.
func (d *Dispatcher) sendOne(ctx context.Context, html, subject string, rcpt Recipient) error {
	unsubscribeURL := d.unsubscribeURL(rcpt)
	body := html + unsubscribeFooter(unsubscribeURL)

	return d.sender.SendEmail(ctx, email.SendParams{
		SendTo:         rcpt.Email,
		Subject:        subject,
		BodyHTML:       body,
		Tag:            "newsletter",
		UnsubscribeURL: unsubscribeURL,
	})
}

// unsubscribeURL builds the personalized unsubscribe link. The query shape
// is parsed by an external unsubscribe handler and must stay bit-exact:
// {siteURL}/unsubscribe?email={urlEncoded(email)}&token={token}.
func (d *Dispatcher) unsubscribeURL(rcpt Recipient) string {
	return fmt.Sprintf("%s/unsubscribe?email=%s&token=%s",
		d.siteURL, url.QueryEscape(rcpt.Email), rcpt.UnsubscribeToken)
}

func unsubscribeFooter(unsubscribeURL string) string {
	return fmt.Sprintf(
		`<div dir="rtl" style="max-width:600px;margin:0 auto;padding:16px;text-align:center;font-family:Arial,Helvetica,sans-serif;">`+
			`<a href="%s" style="color:#9ca3af;font-size:12px;text-decoration:underline;">הסרה מרשימת התפוצה</a>`+
			`</div>`,
		unsubscribeURL)
}
