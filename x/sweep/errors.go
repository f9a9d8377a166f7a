package sweep

import "github.com/iov-one/treasury/errors"

// ErrLockupNotExpired is returned when a tracked token is recovered before
// the admin lockup elapsed.
var ErrLockupNotExpired = errors.Register(400, "lockup not expired")
