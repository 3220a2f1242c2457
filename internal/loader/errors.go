package loader

import (
	"github.com/jmgilman/go/errors"
)

// Failure kinds, carried as the error code of every error Load returns.
const (
	// KindNotFound covers any failure to open the path.
	KindNotFound = errors.CodeNotFound
	// KindStatFailed means the size query failed after a successful open.
	KindStatFailed errors.ErrorCode = "STAT_FAILED"
	// KindMapUnavailable is internal to the mapped path and never returned by Load.
	KindMapUnavailable errors.ErrorCode = "MAP_UNAVAILABLE"
	// KindReadFailed means a content read failed once the size was known.
	KindReadFailed errors.ErrorCode = "READ_FAILED"
	// KindAllocationFailed means the owned buffer could not be allocated.
	KindAllocationFailed errors.ErrorCode = "ALLOCATION_FAILED"
)

// ErrReleased is returned when a Buffer is released twice.
var ErrReleased = errors.New(errors.CodeConflict, "buffer already released")

// KindOf returns the failure kind of err, or errors.CodeUnknown when err
// did not come from this package.
func KindOf(err error) errors.ErrorCode {
	return errors.GetCode(err)
}

func failure(err error, kind errors.ErrorCode, path, msg string) errors.PlatformError {
	return errors.WrapWithContext(err, kind, msg, map[string]interface{}{"path": path})
}
