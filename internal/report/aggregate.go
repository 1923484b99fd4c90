package report

import (
	"fmt"

	"github.com/jengzang/lalin-backend-go/internal/models"
	"github.com/shopspring/decimal"
)

// DateLayout is the display format of report dates
const DateLayout = "02-01-2006"

// DayNames is indexed by time.Weekday
var DayNames = [7]string{
	"Minggu",
	"Senin",
	"Selasa",
	"Rabu",
	"Kamis",
	"Jumat",
	"Sabtu",
}

// GroupKey identifies one report row
type GroupKey struct {
	IDCabang  int64
	IDGerbang int64
	IDGardu   int64
	Tanggal   string // DateLayout
}

// KeyOf returns the group a lalin belongs to
func KeyOf(l models.Lalin) GroupKey {
	return GroupKey{
		IDCabang:  l.IDCabang,
		IDGerbang: l.IDGerbang,
		IDGardu:   l.IDGardu,
		Tanggal:   l.Tanggal.Format(DateLayout),
	}
}

// RowID is the display identifier of a group
func (k GroupKey) RowID() string {
	return fmt.Sprintf("%d-%d-%d-%s", k.IDCabang, k.IDGerbang, k.IDGardu, k.Tanggal)
}

// Report is the aggregated view of one page of lalins
type Report struct {
	Rows          []models.LalinRow
	SummaryByRuas []models.RuasSummary
	GrandTotal    models.Totals
}

// Aggregate groups lalins by (cabang, gerbang, gardu, date) in first-seen
// order, summing each record's payment value into its golongan bucket.
//
// The row total takes every record's value, including golongan outside 1..5
// which no bucket receives. Such rows have TotalLalin > ClassSum().
func Aggregate(lalins []models.Lalin, method PaymentMethod) Report {
	index := make(map[GroupKey]int)
	rows := make([]models.LalinRow, 0)

	for _, l := range lalins {
		key := KeyOf(l)
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, newRow(key, l, method))
		}

		value := PaymentValue(l, method)
		row := &rows[i]
		switch l.Golongan {
		case 1:
			row.GolI = row.GolI.Add(value)
		case 2:
			row.GolII = row.GolII.Add(value)
		case 3:
			row.GolIII = row.GolIII.Add(value)
		case 4:
			row.GolIV = row.GolIV.Add(value)
		case 5:
			row.GolV = row.GolV.Add(value)
		}
		row.TotalLalin = row.TotalLalin.Add(value)
	}

	summary := SummarizeByRuas(rows)
	return Report{
		Rows:          rows,
		SummaryByRuas: summary,
		GrandTotal:    GrandTotal(summary),
	}
}

func newRow(key GroupKey, l models.Lalin, method PaymentMethod) models.LalinRow {
	return models.LalinRow{
		ID:               key.RowID(),
		Ruas:             fmt.Sprintf("Ruas %d", l.IDCabang),
		Gerbang:          fmt.Sprintf("Gerbang %d", l.IDGerbang),
		Gardu:            fmt.Sprintf("%02d", l.IDGardu),
		Hari:             DayNames[l.Tanggal.Weekday()],
		Tanggal:          key.Tanggal,
		MetodePembayaran: string(method),
		Totals:           zeroTotals(),
	}
}

// SummarizeByRuas folds rows into one subtotal per ruas label, ordered by
// first appearance.
func SummarizeByRuas(rows []models.LalinRow) []models.RuasSummary {
	index := make(map[string]int)
	summary := make([]models.RuasSummary, 0)

	for _, row := range rows {
		i, ok := index[row.Ruas]
		if !ok {
			i = len(summary)
			index[row.Ruas] = i
			summary = append(summary, models.RuasSummary{Ruas: row.Ruas, Totals: zeroTotals()})
		}
		summary[i].Totals = summary[i].Totals.Add(row.Totals)
	}

	return summary
}

// GrandTotal sums every ruas subtotal
func GrandTotal(summary []models.RuasSummary) models.Totals {
	total := zeroTotals()
	for _, s := range summary {
		total = total.Add(s.Totals)
	}
	return total
}

func zeroTotals() models.Totals {
	zero := decimal.Zero
	return models.Totals{GolI: zero, GolII: zero, GolIII: zero, GolIV: zero, GolV: zero, TotalLalin: zero}
}
