package refresher

import "errors"

// ErrShutdownTimeout is returned when the loop does not stop in time.
var ErrShutdownTimeout = errors.New("refresher shutdown timed out")
