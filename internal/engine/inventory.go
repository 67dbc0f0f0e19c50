package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/donaldgifford/dealer-appraisal/internal/metrics"
	"github.com/donaldgifford/dealer-appraisal/pkg/appraise"
	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

// ComparableSource supplies the comparable pool for a make and model.
type ComparableSource interface {
	Comparables(ctx context.Context, vehicleMake, model string) ([]appraise.Comparable, error)
}

// ComparableLister is the store query behind StoreSource.
type ComparableLister interface {
	ListComparables(ctx context.Context, vehicleMake, model string) ([]domain.Vehicle, error)
}

// InventoryLister is the store query behind Snapshot.
type InventoryLister interface {
	ListInventory(ctx context.Context) ([]domain.Vehicle, error)
}

// StoreSource queries the store on every appraisal.
type StoreSource struct {
	store ComparableLister
}

// NewStoreSource creates a ComparableSource backed by direct store queries.
func NewStoreSource(s ComparableLister) *StoreSource {
	return &StoreSource{store: s}
}

// Comparables returns every stored vehicle matching make and model.
func (s *StoreSource) Comparables(ctx context.Context, vehicleMake, model string) ([]appraise.Comparable, error) {
	vehicles, err := s.store.ListComparables(ctx, vehicleMake, model)
	if err != nil {
		return nil, fmt.Errorf("listing comparables: %w", err)
	}
	out := make([]appraise.Comparable, len(vehicles))
	for i := range vehicles {
		out[i] = toComparable(&vehicles[i])
	}
	return out, nil
}

// Snapshot holds the whole inventory in memory, indexed by make and model.
// It is rebuilt by Refresh, typically on a schedule.
type Snapshot struct {
	store InventoryLister
	log   *slog.Logger
	now   func() time.Time

	// refreshMu serialises reloads so a slow load never replaces a newer one.
	refreshMu sync.Mutex

	mu        sync.RWMutex
	index     map[string][]appraise.Comparable
	size      int
	loaded    bool
	refreshed time.Time
}

// NewSnapshot creates an empty snapshot. The first Comparables call loads it
// if Refresh has not run yet.
func NewSnapshot(s InventoryLister, log *slog.Logger) *Snapshot {
	if log == nil {
		log = slog.Default()
	}
	return &Snapshot{
		store: s,
		log:   log,
		now:   time.Now,
		index: map[string][]appraise.Comparable{},
	}
}

// Refresh reloads the inventory from the store. On failure the previous
// snapshot stays in place.
func (s *Snapshot) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()
	return s.reload(ctx)
}

// reload rebuilds the index. Callers hold refreshMu.
func (s *Snapshot) reload(ctx context.Context) error {
	vehicles, err := s.store.ListInventory(ctx)
	if err != nil {
		metrics.InventoryRefreshTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("loading inventory: %w", err)
	}

	index := make(map[string][]appraise.Comparable)
	for i := range vehicles {
		c := toComparable(&vehicles[i])
		k := key(c.Make, c.Model)
		index[k] = append(index[k], c)
	}

	now := s.now()
	s.mu.Lock()
	s.index = index
	s.size = len(vehicles)
	s.loaded = true
	s.refreshed = now
	s.mu.Unlock()

	metrics.InventoryRefreshTotal.WithLabelValues("success").Inc()
	metrics.InventorySnapshotSize.Set(float64(len(vehicles)))
	metrics.InventoryRefreshTimestamp.Set(float64(now.Unix()))

	s.log.Debug("inventory snapshot refreshed", "vehicles", len(vehicles), "models", len(index))
	return nil
}

// Comparables returns a copy of the snapshot entries for make and model.
func (s *Snapshot) Comparables(ctx context.Context, vehicleMake, model string) ([]appraise.Comparable, error) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if !loaded {
		if err := s.loadOnce(ctx); err != nil {
			return nil, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.index[key(vehicleMake, model)]
	out := make([]appraise.Comparable, len(entries))
	copy(out, entries)
	return out, nil
}

// loadOnce loads the snapshot unless a concurrent caller or the scheduler
// already did while this one waited.
func (s *Snapshot) loadOnce(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}
	return s.reload(ctx)
}

// Size reports how many vehicles the snapshot holds.
func (s *Snapshot) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}

// RefreshedAt reports when the snapshot was last rebuilt. Zero if never.
func (s *Snapshot) RefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshed
}

func key(vehicleMake, model string) string {
	return strings.ToLower(strings.TrimSpace(vehicleMake)) + "|" + strings.ToLower(strings.TrimSpace(model))
}

func toComparable(v *domain.Vehicle) appraise.Comparable {
	return appraise.Comparable{
		ID:           v.ID,
		Make:         v.Make,
		Model:        v.Model,
		Trim:         v.Trim,
		Year:         v.Year,
		Price:        v.Price,
		Kilometers:   v.Kilometers,
		Transmission: v.Transmission,
		BodyType:     v.BodyType,
		DealershipID: v.DealershipID,
	}
}
