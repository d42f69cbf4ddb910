// Package semsearch turns spreadsheet formulas into business-readable
// semantic formulas by resolving every cell reference to a label.
package semsearch

import (
	"runtime"

	"github.com/anant0059/sementic-search-spreadsheets/pkg/semsearch/resolve"
)

// Options configures index construction and formula expansion.
type Options struct {
	// MaxDepth bounds reference-chain recursion.
	MaxDepth int `toml:"max_depth"`
	// SectionRows bounds the section-label search window upward.
	SectionRows int `toml:"section_rows"`
	// SectionCols bounds the section-label search window leftward.
	SectionCols int `toml:"section_cols"`
	// Jobs is the number of concurrent expansion workers.
	// Zero or negative means GOMAXPROCS.
	Jobs int `toml:"jobs"`
}

// DefaultOptions returns default expansion options.
func DefaultOptions() Options {
	p := resolve.DefaultParams()
	return Options{
		MaxDepth:    p.MaxDepth,
		SectionRows: p.SectionRows,
		SectionCols: p.SectionCols,
	}
}

// params converts the options to resolver parameters.
func (o Options) params() resolve.Params {
	return resolve.Params{
		MaxDepth:    o.MaxDepth,
		SectionRows: o.SectionRows,
		SectionCols: o.SectionCols,
	}
}

// jobs returns the effective worker count.
func (o Options) jobs() int {
	if o.Jobs > 0 {
		return o.Jobs
	}
	return runtime.GOMAXPROCS(0)
}
