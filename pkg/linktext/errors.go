package linktext

import "errors"

var (
	ErrNotALink       = errors.New("linktext.errors.not_a_link")
	ErrStaleSelection = errors.New("linktext.errors.stale_selection")
)
