package semsearch

import (
	"path/filepath"

	"github.com/anant0059/sementic-search-spreadsheets/pkg/semsearch/ingest"
	"github.com/anant0059/sementic-search-spreadsheets/pkg/semsearch/models"
	"github.com/anant0059/sementic-search-spreadsheets/pkg/semsearch/resolve"
)

// BuildEntries ingests the given workbook paths into a single entry map.
// Addresses are keyed by workbook base name, so entries from different
// workbooks never collide.
func BuildEntries(paths []string) (map[models.CellAddress]models.Entry, error) {
	if len(paths) == 0 {
		return nil, ErrNoWorkbooks
	}

	entries := make(map[models.CellAddress]models.Entry)
	for _, path := range paths {
		book, err := ingest.File(path)
		if err != nil {
			return nil, NewIngestError(filepath.Base(path), err)
		}
		for addr, e := range book {
			entries[addr] = e
		}
	}
	return entries, nil
}

// BuildIndex ingests the given workbook paths into an immutable index with
// headers precomputed for every cell.
func BuildIndex(paths []string, opts Options) (*resolve.Index, error) {
	entries, err := BuildEntries(paths)
	if err != nil {
		return nil, err
	}
	return resolve.NewIndex(entries, opts.params()), nil
}

// IndexFromEntries builds an index from already-materialized entries, e.g.
// a loaded snapshot.
func IndexFromEntries(entries map[models.CellAddress]models.Entry, opts Options) *resolve.Index {
	return resolve.NewIndex(entries, opts.params())
}
