package resolve

import (
	"strings"
	"sync"

	"github.com/anant0059/sementic-search-spreadsheets/pkg/semsearch/models"
)

// Provenance identifies which fallback produced a resolution. It is used in
// diagnostics and tests only and is never emitted to downstream consumers.
type Provenance string

const (
	ProvenanceFormula  Provenance = "formula-expansion"
	ProvenanceLabel    Provenance = "label"
	ProvenanceNeighbor Provenance = "neighbor-label"
	ProvenanceHeader   Provenance = "header-fallback"
	ProvenanceValue    Provenance = "raw-value"
	ProvenanceEmpty    Provenance = "empty"
)

// pathSet tracks the addresses on the current resolution path. It is local
// to one top-level call and never shared across concurrent resolutions.
type pathSet map[models.CellAddress]struct{}

// Resolver turns cell addresses into their best human-readable
// representation using an ordered fallback policy over an immutable index.
// It is safe for concurrent use.
type Resolver struct {
	ix       *Index
	headers  *Headers
	maxDepth int

	mu   sync.RWMutex
	memo map[models.CellAddress]string
}

// NewResolver builds a resolver for one session over ix. The memo cache
// lives as long as the resolver; rebuild the index and the resolver together.
func NewResolver(ix *Index, p Params) *Resolver {
	p = p.withDefaults()
	return &Resolver{
		ix:       ix,
		headers:  newHeaders(ix, p),
		maxDepth: p.MaxDepth,
		memo:     make(map[models.CellAddress]string),
	}
}

// Resolve returns the best human-readable representation of addr.
// Resolution is referentially transparent, so top-level results are memoized
// for the session; repeated calls return identical strings.
func (r *Resolver) Resolve(addr models.CellAddress) string {
	addr.Coord = models.NormalizeCoord(addr.Coord)

	r.mu.RLock()
	s, ok := r.memo[addr]
	r.mu.RUnlock()
	if ok {
		return s
	}

	s, _ = r.resolve(addr, make(pathSet), 0)

	r.mu.Lock()
	r.memo[addr] = s
	r.mu.Unlock()
	return s
}

// ResolveWithProvenance resolves addr without touching the memo cache and
// reports which fallback produced the result.
func (r *Resolver) ResolveWithProvenance(addr models.CellAddress) (string, Provenance) {
	addr.Coord = models.NormalizeCoord(addr.Coord)
	return r.resolve(addr, make(pathSet), 0)
}

// resolve applies the ordered fallback policy: cycle guard, formula
// expansion, label, neighbor text, header inference, raw value, empty.
func (r *Resolver) resolve(addr models.CellAddress, visited pathSet, depth int) (string, Provenance) {
	entry, found := r.ix.Lookup(addr)

	// Revisiting an address on the current path means a cycle; the depth
	// ceiling catches chains that grow without literally repeating a cell.
	// Both degrade to the evaluated value rather than recursing further.
	if _, onPath := visited[addr]; onPath || depth >= r.maxDepth {
		if v := entry.ValueString(); v != "" {
			return v, ProvenanceValue
		}
		return "", ProvenanceEmpty
	}

	if found && entry.Formula != "" {
		visited[addr] = struct{}{}
		s := r.expand(entry.Formula, addr.Book, addr.Sheet, visited, depth+1)
		delete(visited, addr)
		return s, ProvenanceFormula
	}

	if found && strings.TrimSpace(entry.Label) != "" {
		return entry.Label, ProvenanceLabel
	}

	if t := r.neighborText(addr); t != "" {
		return t, ProvenanceNeighbor
	}

	inf := r.headers.Infer(addr)
	switch {
	case inf.RowHeader != "" && inf.ColHeader != "":
		return inf.RowHeader + " " + inf.ColHeader, ProvenanceHeader
	case inf.RowHeader != "":
		return inf.RowHeader, ProvenanceHeader
	case inf.ColHeader != "":
		return inf.ColHeader, ProvenanceHeader
	}

	if found {
		if v := entry.ValueString(); v != "" {
			return v, ProvenanceValue
		}
	}
	return "", ProvenanceEmpty
}

// neighborText returns non-formula text from the immediate left neighbor,
// then the immediate above neighbor.
func (r *Resolver) neighborText(addr models.CellAddress) string {
	col, row, ok := cellToCoordinates(addr.Coord)
	if !ok {
		return ""
	}
	if col > 1 {
		if t := r.textAt(addr, col-1, row); t != "" {
			return t
		}
	}
	if row > 1 {
		if t := r.textAt(addr, col, row-1); t != "" {
			return t
		}
	}
	return ""
}

func (r *Resolver) textAt(addr models.CellAddress, col, row int) string {
	coord := coordinatesToCell(col, row)
	if coord == "" {
		return ""
	}
	e, ok := r.ix.Lookup(models.CellAddress{Book: addr.Book, Sheet: addr.Sheet, Coord: coord})
	if !ok {
		return ""
	}
	return strings.TrimSpace(e.Text())
}
