package geo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rizaldy/angkut/internal/utils"
)

type memoryEntry struct {
	id   string
	loc  utils.GeoPoint
	ts   time.Time
	cell string
}

// MemoryIndex is an in-process spatial index. Positions are bucketed by
// geohash cell so nearest queries only scan the cells around the query
// point instead of the whole index.
type MemoryIndex struct {
	mu        sync.RWMutex
	cells     map[string]map[string]*memoryEntry
	byID      map[string]*memoryEntry
	precision uint
}

// NewMemoryIndex creates an index bucketing positions at the given geohash
// precision. Precision 6 yields cells of roughly 1.2km x 0.6km.
func NewMemoryIndex(precision uint) *MemoryIndex {
	if precision == 0 {
		precision = 6
	}
	return &MemoryIndex{
		cells:     make(map[string]map[string]*memoryEntry),
		byID:      make(map[string]*memoryEntry),
		precision: precision,
	}
}

// Upsert records the latest position for the driver. An update carrying a
// timestamp older than the stored one is discarded so out-of-order
// deliveries cannot rewind a driver's position.
func (m *MemoryIndex) Upsert(_ context.Context, id string, loc utils.GeoPoint, ts time.Time) error {
	cell := utils.EncodePoint(loc, m.precision)

	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.byID[id]; ok {
		if ts.Before(prev.ts) {
			return nil
		}
		if prev.cell != cell {
			delete(m.cells[prev.cell], id)
			if len(m.cells[prev.cell]) == 0 {
				delete(m.cells, prev.cell)
			}
		}
	}

	e := &memoryEntry{id: id, loc: loc, ts: ts, cell: cell}
	m.byID[id] = e
	if m.cells[cell] == nil {
		m.cells[cell] = make(map[string]*memoryEntry)
	}
	m.cells[cell][id] = e
	return nil
}

// Remove drops the driver from the index.
func (m *MemoryIndex) Remove(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev, ok := m.byID[id]
	if !ok {
		return nil
	}
	delete(m.byID, id)
	delete(m.cells[prev.cell], id)
	if len(m.cells[prev.cell]) == 0 {
		delete(m.cells, prev.cell)
	}
	return nil
}

// Nearest returns up to limit drivers within radiusKm of center, nearest
// first. The query scans the center cell and its eight neighbors; when the
// radius exceeds what that 3x3 block can cover, it falls back to a full
// scan so distant drivers are not missed.
func (m *MemoryIndex) Nearest(_ context.Context, center utils.GeoPoint, radiusKm float64, limit int) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var candidates []*memoryEntry
	if m.blockCoversRadius(radiusKm) {
		cell := utils.EncodePoint(center, m.precision)
		for _, c := range append(utils.NeighborCells(cell), cell) {
			for _, e := range m.cells[c] {
				candidates = append(candidates, e)
			}
		}
	} else {
		for _, e := range m.byID {
			candidates = append(candidates, e)
		}
	}

	results := make([]Entry, 0, len(candidates))
	for _, e := range candidates {
		d := utils.HaversineKm(center, e.loc)
		if d > radiusKm {
			continue
		}
		results = append(results, Entry{
			ID:         e.id,
			Location:   e.loc,
			Timestamp:  e.ts,
			DistanceKm: d,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Get returns the stored position for a driver.
func (m *MemoryIndex) Get(_ context.Context, id string) (Entry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.byID[id]
	if !ok {
		return Entry{}, false, nil
	}
	return Entry{ID: e.id, Location: e.loc, Timestamp: e.ts}, true, nil
}

// Size returns the number of indexed drivers.
func (m *MemoryIndex) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}

// blockCoversRadius reports whether a 3x3 block of cells at the index
// precision is guaranteed to contain every point within radiusKm.
func (m *MemoryIndex) blockCoversRadius(radiusKm float64) bool {
	// Minimum cell edge in km per geohash precision level (latitude edge,
	// the shorter of the two at even precisions).
	edges := map[uint]float64{
		4: 19.5,
		5: 4.89,
		6: 0.61,
		7: 0.153,
		8: 0.019,
	}
	edge, ok := edges[m.precision]
	if !ok {
		return false
	}
	return radiusKm <= edge
}
