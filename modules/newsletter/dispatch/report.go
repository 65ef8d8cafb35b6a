package dispatch

// SendFailure records one recipient that could not be delivered to.
type SendFailure struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// SendReport is the per-dispatch reconciliation. Succeeded and Failed
// always sum to TotalAttempted; the Failures list is capped for
// presentation and TruncatedFailureList marks that more occurred.
type SendReport struct {
	TotalAttempted       int           `json:"total_attempted"`
	Succeeded            int           `json:"succeeded"`
	Failed               int           `json:"failed"`
	Failures             []SendFailure `json:"failures,omitempty"`
	TruncatedFailureList bool          `json:"truncated_failure_list,omitempty"`
}

// Delivered reports whether the dispatch reached at least one recipient, or
// had nobody to reach. Partial failure still counts as delivered; only a
// non-empty list with zero successes does not.
func (r SendReport) Delivered() bool {
	return r.Succeeded > 0 || r.TotalAttempted == 0
}
