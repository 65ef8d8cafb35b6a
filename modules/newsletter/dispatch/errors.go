package dispatch

import "errors"

// ErrNoSender is the fatal precondition: dispatch refuses to start without
// a configured transport, so "nothing was sent because the transport is
// missing" can never be mistaken for "delivered to zero recipients".
var ErrNoSender = errors.New("dispatch.errors.no_sender")
