package deps

import "errors"

// ErrUnavailable indicates the arceos checkout could not be produced.
var ErrUnavailable = errors.New("arceos dependency unavailable")
