// Package dispatch fans a rendered newsletter out to a subscriber list
// through a single-recipient email transport.
//
// Delivery proceeds in fixed-size batches: sends within a batch run in
// parallel and settle independently, batches run sequentially with a
// blocking delay between them to respect transport rate limits. Every
// recipient gets the shared HTML template plus a personalized unsubscribe
// footer; failures accumulate into the SendReport instead of aborting.
//
//	d := dispatch.New(sender,
//		dispatch.WithSiteURL("https://news.example.com"),
//	)
//	report, err := d.Dispatch(ctx, html, "Weekly digest", recipients)
//	if err != nil {
//		// fatal: transport missing, nothing was attempted
//	}
//	if report.Delivered() {
//		// partial failure included; inspect report.Failures for detail
//	}
//
// The only error Dispatch returns is ErrNoSender. Everything that happens
// after the first send is reported, not raised.
package dispatch
