package credits

import "errors"

// ErrLimitReached indicates the user spent all credits for the period.
var ErrLimitReached = errors.New("credit limit reached")
