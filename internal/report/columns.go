package report

import (
	"cmp"
	"time"

	"github.com/jengzang/lalin-backend-go/internal/models"
	"github.com/jengzang/lalin-backend-go/internal/table"
	"github.com/shopspring/decimal"
)

// SearchKeys are the columns matched by the report search box
var SearchKeys = []string{"ruas", "gerbang", "gardu"}

func amountColumn(key string, field func(models.LalinRow) decimal.Decimal) table.Column[models.LalinRow] {
	return table.Column[models.LalinRow]{
		Key:     key,
		Text:    func(r models.LalinRow) string { return field(r).String() },
		Compare: func(a, b models.LalinRow) int { return field(a).Cmp(field(b)) },
	}
}

// dateValue orders DateLayout strings chronologically; unparsable dates
// sort first.
func dateValue(s string) int64 {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return 0
	}
	return t.Unix()
}

// Columns are the sortable and searchable fields of a report row
var Columns = table.Columns[models.LalinRow]{
	{Key: "ruas", Text: func(r models.LalinRow) string { return r.Ruas }},
	{Key: "gerbang", Text: func(r models.LalinRow) string { return r.Gerbang }},
	{Key: "gardu", Text: func(r models.LalinRow) string { return r.Gardu }},
	{Key: "hari", Text: func(r models.LalinRow) string { return r.Hari }},
	{
		Key:     "tanggal",
		Text:    func(r models.LalinRow) string { return r.Tanggal },
		Compare: func(a, b models.LalinRow) int { return cmp.Compare(dateValue(a.Tanggal), dateValue(b.Tanggal)) },
	},
	{Key: "metodePembayaran", Text: func(r models.LalinRow) string { return r.MetodePembayaran }},
	amountColumn("golI", func(r models.LalinRow) decimal.Decimal { return r.GolI }),
	amountColumn("golII", func(r models.LalinRow) decimal.Decimal { return r.GolII }),
	amountColumn("golIII", func(r models.LalinRow) decimal.Decimal { return r.GolIII }),
	amountColumn("golIV", func(r models.LalinRow) decimal.Decimal { return r.GolIV }),
	amountColumn("golV", func(r models.LalinRow) decimal.Decimal { return r.GolV }),
	amountColumn("totalLalin", func(r models.LalinRow) decimal.Decimal { return r.TotalLalin }),
}

// View applies search, sort and the optional row window of q to rows. It
// returns the visible rows and the number of rows matching the search.
func View(rows []models.LalinRow, q models.ReportQuery) ([]models.LalinRow, int) {
	out := table.Search(rows, q.Search, Columns.Subset(SearchKeys...))

	if col, ok := Columns.Lookup(q.SortBy); ok {
		out = table.Sort(out, col, table.ParseDirection(q.SortDir))
	}

	matched := len(out)
	if q.RowsPerPage > 0 {
		out = table.Paginate(out, q.RowsPage, q.RowsPerPage)
	}
	return out, matched
}
