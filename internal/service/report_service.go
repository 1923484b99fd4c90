package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jengzang/lalin-backend-go/internal/models"
	"github.com/jengzang/lalin-backend-go/internal/report"
)

// DefaultReportLimit is the source page size of the daily report
const DefaultReportLimit = 5

// LalinSource supplies pages of lalins
type LalinSource interface {
	GetLalins(ctx context.Context, filter models.LalinFilter) (*models.PaginatedData[models.Lalin], error)
}

// ReportService builds the daily report and the dashboard from lalin pages
type ReportService struct {
	source LalinSource
}

// NewReportService creates a new report service
func NewReportService(source LalinSource) *ReportService {
	return &ReportService{source: source}
}

func (s *ReportService) fetch(ctx context.Context, filter models.LalinFilter) (*models.PaginatedData[models.Lalin], error) {
	if filter.Limit < 1 {
		filter.Limit = DefaultReportLimit
	}
	return s.source.GetLalins(ctx, filter)
}

// DailyReport aggregates the requested lalin page under the requested
// payment method, then applies search, sort and the row window. Ruas
// subtotals and the grand total cover the whole page regardless of search.
func (s *ReportService) DailyReport(ctx context.Context, q models.ReportQuery) (*models.DailyReport, error) {
	method, ok := report.ParsePaymentMethod(q.Tab)
	if !ok {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, q.Tab)
	}
	if q.RowsPage < 0 || q.RowsPerPage < 0 {
		return nil, fmt.Errorf("%w: rows_page and rows_per_page must not be negative", ErrValidation)
	}

	page, err := s.fetch(ctx, q.SourceFilter())
	if err != nil {
		return nil, err
	}

	agg := report.Aggregate(page.Rows.Rows, method)
	rows, matched := report.View(agg.Rows, q)

	return &models.DailyReport{
		MetodePembayaran: string(method),
		Rows:             rows,
		TotalRows:        matched,
		SummaryByRuas:    agg.SummaryByRuas,
		GrandTotal:       agg.GrandTotal,
		Count:            page.Count,
		CurrentPage:      page.CurrentPage,
		TotalPages:       page.TotalPages,
	}, nil
}

// Dashboard summarizes one lalin page for the dashboard charts
func (s *ReportService) Dashboard(ctx context.Context, filter models.LalinFilter) (*models.Dashboard, error) {
	page, err := s.fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	dash := report.BuildDashboard(page.Rows.Rows)
	return &dash, nil
}

var csvHeader = []string{
	"Ruas", "Gerbang", "Gardu", "Hari", "Tanggal", "Metode Pembayaran",
	"Gol I", "Gol II", "Gol III", "Gol IV", "Gol V", "Total Lalin",
}

func totalsRecord(t models.Totals) []string {
	return []string{
		t.GolI.String(), t.GolII.String(), t.GolIII.String(),
		t.GolIV.String(), t.GolV.String(), t.TotalLalin.String(),
	}
}

// ExportCSV writes the daily report as CSV: the visible rows, one subtotal
// line per ruas and the grand total.
func (s *ReportService) ExportCSV(ctx context.Context, q models.ReportQuery, w io.Writer) error {
	rep, err := s.DailyReport(ctx, q)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	for _, r := range rep.Rows {
		record := append([]string{r.Ruas, r.Gerbang, r.Gardu, r.Hari, r.Tanggal, r.MetodePembayaran}, totalsRecord(r.Totals)...)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}
	for _, sum := range rep.SummaryByRuas {
		record := append([]string{"Total " + sum.Ruas, "", "", "", "", rep.MetodePembayaran}, totalsRecord(sum.Totals)...)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}
	record := append([]string{"Total Keseluruhan", "", "", "", "", rep.MetodePembayaran}, totalsRecord(rep.GrandTotal)...)
	if err := cw.Write(record); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	cw.Flush()
	return cw.Error()
}
