package numeric

import "errors"

// ErrOverflow is returned when a result does not fit in the return type.
var ErrOverflow = errors.New("numeric: result overflows uint64")
