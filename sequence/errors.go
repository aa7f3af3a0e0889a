package sequence

import "errors"

// ErrNoOutlier is returned by FindOutlier when the input has fewer than three
// values or contains no value of the minority parity.
var ErrNoOutlier = errors.New("sequence: no parity outlier")
