package evaluation

import "errors"

// Sentinel errors returned by the score constructors.
var (
	// ErrNilTable indicates that a nil *contingency.Table was passed.
	ErrNilTable = errors.New("evaluation: contingency table is nil")

	// ErrZeroTotal indicates a table whose element count n is zero; every
	// score normalizes by n.
	ErrZeroTotal = errors.New("evaluation: contingency table has zero total count")
)
