package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jengzang/lalin-backend-go/internal/models"
	"github.com/jengzang/lalin-backend-go/internal/repository"
	"go.uber.org/zap"
)

// Invalidator drops cached data derived from gerbangs
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// GerbangService handles business logic for gerbangs
type GerbangService struct {
	repo        *repository.GerbangRepository
	invalidator Invalidator
	logger      *zap.Logger
}

// NewGerbangService creates a new gerbang service. invalidator may be nil.
func NewGerbangService(repo *repository.GerbangRepository, invalidator Invalidator, logger *zap.Logger) *GerbangService {
	return &GerbangService{
		repo:        repo,
		invalidator: invalidator,
		logger:      logger,
	}
}

// GetGerbangs retrieves gerbangs with filtering and pagination
func (s *GerbangService) GetGerbangs(ctx context.Context, filter models.GerbangFilter) (*models.PaginatedData[models.Gerbang], error) {
	filter.Page, filter.Limit = models.NormalizePage(filter.Page, filter.Limit, models.DefaultPageLimit)
	filter.NamaGerbang = strings.TrimSpace(filter.NamaGerbang)
	filter.NamaCabang = strings.TrimSpace(filter.NamaCabang)

	gerbangs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get gerbangs: %w", err)
	}
	return models.NewPaginatedData(gerbangs, total, filter.Page, filter.Limit), nil
}

func validateGerbang(req models.GerbangRequest) (models.Gerbang, error) {
	g := models.Gerbang{
		ID:          req.ID,
		IDCabang:    req.IDCabang,
		NamaGerbang: strings.TrimSpace(req.NamaGerbang),
		NamaCabang:  strings.TrimSpace(req.NamaCabang),
	}

	var problems []string
	if g.ID < 1 {
		problems = append(problems, "ID is required")
	}
	if g.IDCabang < 1 {
		problems = append(problems, "ID Cabang is required")
	}
	if g.NamaGerbang == "" {
		problems = append(problems, "Nama Gerbang is required")
	}
	if g.NamaCabang == "" {
		problems = append(problems, "Nama Cabang is required")
	}
	if len(problems) > 0 {
		return g, fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, ", "))
	}
	return g, nil
}

// CreateGerbang validates and stores a new gerbang
func (s *GerbangService) CreateGerbang(ctx context.Context, req models.GerbangRequest) (*models.Gerbang, error) {
	g, err := validateGerbang(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &g); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.logger.Info("gerbang created", zap.Int64("id", g.ID), zap.Int64("id_cabang", g.IDCabang))
	return &g, nil
}

// UpdateGerbang renames an existing gerbang
func (s *GerbangService) UpdateGerbang(ctx context.Context, req models.GerbangRequest) (*models.Gerbang, error) {
	g, err := validateGerbang(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, &g); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.logger.Info("gerbang updated", zap.Int64("id", g.ID), zap.Int64("id_cabang", g.IDCabang))
	return &g, nil
}

// DeleteGerbang removes a gerbang
func (s *GerbangService) DeleteGerbang(ctx context.Context, req models.DeleteGerbangRequest) error {
	if req.ID < 1 || req.IDCabang < 1 {
		return fmt.Errorf("%w: id and IdCabang are required", ErrValidation)
	}
	if err := s.repo.Delete(ctx, req.ID, req.IDCabang); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.logger.Info("gerbang deleted", zap.Int64("id", req.ID), zap.Int64("id_cabang", req.IDCabang))
	return nil
}

func (s *GerbangService) invalidate(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Invalidate(ctx); err != nil {
		s.logger.Warn("cache invalidation failed", zap.Error(err))
	}
}
