package token

import "github.com/iov-one/treasury/errors"

// Reserved codes 200~209
var (
	// ErrTransferFailed is returned when a token declined a transfer or an
	// approval.
	ErrTransferFailed = errors.Register(200, "token transfer failed")
)
