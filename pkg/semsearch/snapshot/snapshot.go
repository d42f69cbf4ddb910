// Package snapshot persists ingested index entries between runs so repeated
// queries over an unchanged workbook set skip re-ingestion.
package snapshot

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/anant0059/sementic-search-spreadsheets/pkg/semsearch/models"
)

// record pairs an address with its entry. Entries are serialized as a flat
// record list because msgpack maps keyed by structs do not round-trip.
type record struct {
	Addr  models.CellAddress `msgpack:"addr"`
	Entry models.Entry       `msgpack:"entry"`
}

// Save writes entries to path atomically (temp file, then rename).
func Save(path string, entries map[models.CellAddress]models.Entry) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	recs := make([]record, 0, len(entries))
	for addr, e := range entries {
		recs = append(recs, record{Addr: addr, Entry: e})
	}
	if err := msgpack.NewEncoder(f).Encode(recs); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// Load reads entries from path. The second return value reports whether a
// snapshot existed.
func Load(path string) (map[models.CellAddress]models.Entry, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var recs []record
	if err := msgpack.NewDecoder(f).Decode(&recs); err != nil {
		return nil, false, err
	}

	entries := make(map[models.CellAddress]models.Entry, len(recs))
	for _, rec := range recs {
		entries[rec.Addr] = rec.Entry
	}
	return entries, true, nil
}
