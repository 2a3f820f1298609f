package gldtax

import (
	"errors"
	"fmt"
)

// DataError reports a problem in the user-supplied input data: a malformed
// row, out-of-order dates, a sell that exceeds the shares held, or trades
// outside the coverage of the proceeds file. The run aborts with the message
// and produces no partial results.
type DataError struct {
	msg string
}

func (e *DataError) Error() string { return e.msg }

func dataErrorf(format string, args ...any) error {
	return &DataError{msg: fmt.Sprintf(format, args...)}
}

// IsDataError reports whether err is, or wraps, a DataError.
func IsDataError(err error) bool {
	var de *DataError
	return errors.As(err, &de)
}

// ConsistencyError reports a violated internal invariant. Unlike DataError it
// does not point at the input files: it indicates a defect in the matching
// pipeline itself and is unconditionally fatal.
type ConsistencyError struct {
	msg string
}

func (e *ConsistencyError) Error() string { return e.msg }

func consistencyErrorf(format string, args ...any) error {
	return &ConsistencyError{msg: fmt.Sprintf(format, args...)}
}

// IsConsistencyError reports whether err is, or wraps, a ConsistencyError.
func IsConsistencyError(err error) bool {
	var ce *ConsistencyError
	return errors.As(err, &ce)
}
