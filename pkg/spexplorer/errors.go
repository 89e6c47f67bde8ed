package spexplorer

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// FailureKind is the coarse failure classification handed to the batch
// runner, which owns the retry policy.
type FailureKind string

const (
	// FailureCorrupted marks input the workbook reader cannot parse.
	FailureCorrupted FailureKind = "corrupted"
	// FailureTimeout marks an externally cancelled invocation.
	FailureTimeout FailureKind = "timeout"
	// FailureOther marks every remaining failure.
	FailureOther FailureKind = "other"
)

// ExtractError represents a failed extraction of one workbook.
type ExtractError struct {
	Path string
	Kind FailureKind
	Err  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract %q (%s): %v", e.Path, e.Kind, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// NewExtractError wraps an error with its failure classification.
func NewExtractError(path string, err error) *ExtractError {
	return &ExtractError{Path: path, Kind: ClassifyFailure(err), Err: err}
}

// ClassifyFailure maps an error to its FailureKind. An *ExtractError
// reports its own kind.
func ClassifyFailure(err error) FailureKind {
	var ee *ExtractError
	if errors.As(err, &ee) {
		return ee.Kind
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return FailureTimeout
	case errors.Is(err, zip.ErrFormat), errors.Is(err, excelize.ErrWorkbookFileFormat):
		return FailureCorrupted
	default:
		return FailureOther
	}
}
