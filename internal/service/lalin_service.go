package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jengzang/lalin-backend-go/internal/cache"
	"github.com/jengzang/lalin-backend-go/internal/models"
	"github.com/jengzang/lalin-backend-go/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	lalinCachePrefix = "lalins:"
	fetchTimeout     = 30 * time.Second
)

// LalinStore is the storage behind LalinService
type LalinStore interface {
	List(ctx context.Context, tanggal string, page, limit int) ([]models.Lalin, int64, error)
	CreateBatch(ctx context.Context, lalins []models.Lalin) error
}

var _ LalinStore = (*repository.LalinRepository)(nil)

// LalinService serves pages of lalins, caching them per (tanggal, page, limit)
type LalinService struct {
	repo   LalinStore
	cache  cache.Cache
	ttl    time.Duration
	loc    *time.Location
	logger *zap.Logger

	// collapses concurrent fetches of the same page
	group singleflight.Group

	// generation is bumped by every invalidation. A fetch started under an
	// older generation never writes the cache. cacheMu orders that check
	// and the write against the bump and the prefix delete.
	generation atomic.Uint64
	cacheMu    sync.RWMutex
}

// NewLalinService creates a new lalin service
func NewLalinService(repo LalinStore, c cache.Cache, ttl time.Duration, loc *time.Location, logger *zap.Logger) *LalinService {
	if loc == nil {
		loc = time.UTC
	}
	return &LalinService{
		repo:   repo,
		cache:  c,
		ttl:    ttl,
		loc:    loc,
		logger: logger,
	}
}

// normalizeFilter validates the date and clamps paging. The date is
// rewritten to its storage form.
func (s *LalinService) normalizeFilter(filter models.LalinFilter) (models.LalinFilter, error) {
	if filter.Tanggal != "" {
		t, err := models.ParseTanggal(filter.Tanggal, s.loc)
		if err != nil {
			return filter, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		filter.Tanggal = t.Format(models.TanggalLayout)
	}
	filter.Page, filter.Limit = models.NormalizePage(filter.Page, filter.Limit, models.DefaultPageLimit)
	return filter, nil
}

func cacheKey(filter models.LalinFilter) string {
	return fmt.Sprintf("%s%s:%d:%d", lalinCachePrefix, filter.Tanggal, filter.Page, filter.Limit)
}

// GetLalins returns one page of lalins
func (s *LalinService) GetLalins(ctx context.Context, filter models.LalinFilter) (*models.PaginatedData[models.Lalin], error) {
	filter, err := s.normalizeFilter(filter)
	if err != nil {
		return nil, err
	}
	key := cacheKey(filter)

	if page, ok := s.fromCache(ctx, key); ok {
		return page, nil
	}

	// callers arriving after an invalidation start a new flight
	gen := s.generation.Load()
	flightKey := fmt.Sprintf("%d/%s", gen, key)

	ch := s.group.DoChan(flightKey, func() (interface{}, error) {
		// detached so one caller going away does not fail the others
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()

		lalins, total, err := s.repo.List(fetchCtx, filter.Tanggal, filter.Page, filter.Limit)
		if err != nil {
			return nil, fmt.Errorf("failed to get lalins: %w", err)
		}
		page := models.NewPaginatedData(lalins, total, filter.Page, filter.Limit)
		s.toCache(fetchCtx, gen, key, page)
		return page, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*models.PaginatedData[models.Lalin]), nil
	}
}

func (s *LalinService) fromCache(ctx context.Context, key string) (*models.PaginatedData[models.Lalin], bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("lalin cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var page models.PaginatedData[models.Lalin]
	if err := json.Unmarshal(raw, &page); err != nil {
		s.logger.Warn("dropping undecodable cache entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &page, true
}

// toCache stores page unless an invalidation happened since gen was read
func (s *LalinService) toCache(ctx context.Context, gen uint64, key string, page *models.PaginatedData[models.Lalin]) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(page)
	if err != nil {
		s.logger.Warn("failed to encode lalin page", zap.String("key", key), zap.Error(err))
		return
	}

	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()
	if s.generation.Load() != gen {
		s.logger.Debug("skipping stale lalin page", zap.String("key", key))
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		s.logger.Warn("lalin cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops every cached lalin page. Fetches already in flight
// still answer their callers but are not cached, and later callers start
// a fresh fetch.
func (s *LalinService) Invalidate(ctx context.Context) error {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	s.generation.Add(1)
	if s.cache == nil {
		return nil
	}
	if err := s.cache.DeletePrefix(ctx, lalinCachePrefix); err != nil {
		return fmt.Errorf("failed to invalidate lalin cache: %w", err)
	}
	return nil
}

// Import validates and stores lalins, then invalidates cached pages
func (s *LalinService) Import(ctx context.Context, inputs []models.LalinInput) ([]models.Lalin, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: no lalins given", ErrValidation)
	}

	lalins := make([]models.Lalin, 0, len(inputs))
	var problems []string
	for i, in := range inputs {
		l, err := s.fromInput(in)
		if err != nil {
			problems = append(problems, fmt.Sprintf("lalins[%d]: %v", i, err))
			continue
		}
		if l.Golongan < 1 || l.Golongan > 5 {
			s.logger.Warn("lalin golongan outside 1..5 counts only towards row totals",
				zap.Int("index", i), zap.Int("golongan", l.Golongan))
		}
		lalins = append(lalins, l)
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, "; "))
	}

	if err := s.repo.CreateBatch(ctx, lalins); err != nil {
		return nil, fmt.Errorf("failed to import lalins: %w", err)
	}
	if err := s.Invalidate(ctx); err != nil {
		s.logger.Warn("lalin cache invalidation failed", zap.Error(err))
	}

	s.logger.Info("imported lalins", zap.Int("count", len(lalins)))
	return lalins, nil
}

func (s *LalinService) fromInput(in models.LalinInput) (models.Lalin, error) {
	l := in.Lalin
	t, err := models.ParseTanggal(in.Tanggal, s.loc)
	if err != nil {
		return l, err
	}
	l.Tanggal = t

	if l.IDCabang < 1 || l.IDGerbang < 1 || l.IDGardu < 1 {
		return l, errors.New("IdCabang, IdGerbang and IdGardu are required")
	}
	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"Tunai", l.Tunai}, {"DinasOpr", l.DinasOpr}, {"DinasMitra", l.DinasMitra}, {"DinasKary", l.DinasKary},
		{"eMandiri", l.EMandiri}, {"eBri", l.EBri}, {"eBni", l.EBni}, {"eBca", l.EBca},
		{"eNobu", l.ENobu}, {"eDKI", l.EDKI}, {"eMega", l.EMega}, {"eFlo", l.EFlo},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return l, fmt.Errorf("%s must not be negative", a.name)
		}
	}
	return l, nil
}
