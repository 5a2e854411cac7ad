package service

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"doc_ingest/internal/domain"
)

// InvalidDocumentAggregator counts quarantined files per category and caches
// the result for ttl.
type InvalidDocumentAggregator struct {
	logs       ProcessingLogStore
	categories []domain.Category
	ttl        time.Duration
	now        func() time.Time
	logger     *slog.Logger

	mu        sync.Mutex
	cached    *domain.InvalidCounts
	expiresAt time.Time
}

// NewInvalidDocumentAggregator uses time.Now when now is nil.
func NewInvalidDocumentAggregator(
	logs ProcessingLogStore,
	categories []domain.Category,
	ttl time.Duration,
	now func() time.Time,
	logger *slog.Logger,
) *InvalidDocumentAggregator {
	if now == nil {
		now = time.Now
	}
	return &InvalidDocumentAggregator{
		logs:       logs,
		categories: categories,
		ttl:        ttl,
		now:        now,
		logger:     logger.With("component", "invalid_counts"),
	}
}

// InvalidCounts never fails: a category whose query fails counts as zero.
func (a *InvalidDocumentAggregator) InvalidCounts(ctx context.Context) *domain.InvalidCounts {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cached != nil && a.now().Before(a.expiresAt) {
		return copyCounts(a.cached)
	}

	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	counts := &domain.InvalidCounts{Breakdown: make(map[domain.Category]int, len(a.categories))}

	for _, cat := range a.categories {
		g.Go(func() error {
			n, err := a.logs.CountInvalid(ctx, cat)
			if err != nil {
				a.logger.Error("failed to count invalid documents", "category", cat, "error", err)
				n = 0
			}

			mu.Lock()
			counts.Breakdown[cat] = n
			counts.Total += n
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	a.cached = counts
	a.expiresAt = a.now().Add(a.ttl)
	return copyCounts(counts)
}

// Invalidate drops the cached counts.
func (a *InvalidDocumentAggregator) Invalidate() {
	a.mu.Lock()
	a.cached = nil
	a.mu.Unlock()
}

func copyCounts(c *domain.InvalidCounts) *domain.InvalidCounts {
	return &domain.InvalidCounts{Total: c.Total, Breakdown: maps.Clone(c.Breakdown)}
}
