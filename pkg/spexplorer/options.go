// Package spexplorer extracts a structured document from one
// spreadsheet workbook without prior knowledge of its template.
package spexplorer

import (
	"go.uber.org/zap"

	"github.com/naveenbxyz/spexplorer/pkg/spexplorer/parser"
)

// Options configures extraction behavior.
type Options struct {
	// Weights are the classifier heuristics; the zero value means
	// DefaultWeights.
	Weights parser.Weights
	// IncludeFormatting specifies whether to read per-cell formatting
	// hints. If nil, defaults to true; disabling it skips the style
	// lookups and the formatting-based classifier bonuses.
	IncludeFormatting *bool
	// Logger receives warnings about locally-degraded input. Nil means
	// no logging.
	Logger *zap.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{Weights: parser.DefaultWeights()}
}

// ShouldIncludeFormatting returns whether to gather formatting hints.
func (o Options) ShouldIncludeFormatting() bool {
	if o.IncludeFormatting != nil {
		return *o.IncludeFormatting
	}
	return true
}

func (o Options) weights() parser.Weights {
	if o.Weights == (parser.Weights{}) {
		return parser.DefaultWeights()
	}
	return o.Weights
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
