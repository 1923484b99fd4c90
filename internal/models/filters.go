package models

// GerbangFilter represents filter parameters for querying gerbangs
type GerbangFilter struct {
	ID          int64  `form:"id"`
	IDCabang    int64  `form:"IdCabang"`
	NamaGerbang string `form:"NamaGerbang"` // substring, case-insensitive
	NamaCabang  string `form:"NamaCabang"`  // substring, case-insensitive
	Page        int    `form:"page"`        // 1-based
	Limit       int    `form:"limit"`
}

// LalinFilter represents filter parameters for querying lalins
type LalinFilter struct {
	Tanggal string `form:"tanggal"` // YYYY-MM-DD, optional
	Page    int    `form:"page"`    // 1-based
	Limit   int    `form:"limit"`
}

// ReportQuery represents the state of the daily report view
type ReportQuery struct {
	Tanggal string `form:"tanggal"`
	Page    int    `form:"page"` // 0-based, fetches source page Page+1
	Limit   int    `form:"limit"`
	Tab     string `form:"tab"` // payment method facet
	Search  string `form:"search"`
	SortBy  string `form:"sort_by"`
	SortDir string `form:"sort_dir"` // asc, desc or empty

	// Optional window over the aggregated rows; RowsPerPage 0 returns all rows
	RowsPage    int `form:"rows_page"`
	RowsPerPage int `form:"rows_per_page"`
}

// SourceFilter returns the lalin page the report is built from
func (q ReportQuery) SourceFilter() LalinFilter {
	page := q.Page
	if page < 0 {
		page = 0
	}
	if page >= MaxPage {
		page = MaxPage - 1
	}
	return LalinFilter{
		Tanggal: q.Tanggal,
		Page:    page + 1,
		Limit:   q.Limit,
	}
}
