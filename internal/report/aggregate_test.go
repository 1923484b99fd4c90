package report

import (
	"testing"
	"time"

	"github.com/jengzang/lalin-backend-go/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateSingleGroup(t *testing.T) {
	lalins := []models.Lalin{
		cash(7, 12, 3, "2024-05-01", 1, 10),
		cash(7, 12, 3, "2024-05-01", 1, 5),
		cash(7, 12, 3, "2024-05-01", 3, 20),
	}

	rep := Aggregate(lalins, Tunai)

	require.Len(t, rep.Rows, 1)
	row := rep.Rows[0]
	assert.Equal(t, "7-12-3-01-05-2024", row.ID)
	assert.Equal(t, "Ruas 7", row.Ruas)
	assert.Equal(t, "Gerbang 12", row.Gerbang)
	assert.Equal(t, "03", row.Gardu)
	assert.Equal(t, "Rabu", row.Hari)
	assert.Equal(t, "01-05-2024", row.Tanggal)
	assert.Equal(t, "Tunai", row.MetodePembayaran)
	assertAmount(t, 15, row.GolI)
	assertAmount(t, 0, row.GolII)
	assertAmount(t, 20, row.GolIII)
	assertAmount(t, 0, row.GolIV)
	assertAmount(t, 0, row.GolV)
	assertAmount(t, 35, row.TotalLalin)
}

func TestAggregateEmpty(t *testing.T) {
	for _, in := range [][]models.Lalin{nil, {}} {
		rep := Aggregate(in, Keseluruhan)

		assert.NotNil(t, rep.Rows)
		assert.Empty(t, rep.Rows)
		assert.Empty(t, rep.SummaryByRuas)
		assertAmount(t, 0, rep.GrandTotal.GolI)
		assertAmount(t, 0, rep.GrandTotal.GolV)
		assertAmount(t, 0, rep.GrandTotal.TotalLalin)
	}
}

func TestAggregateOutOfRangeGolongan(t *testing.T) {
	rep := Aggregate([]models.Lalin{cash(1, 1, 1, "2024-05-01", 9, 50)}, Tunai)

	require.Len(t, rep.Rows, 1)
	row := rep.Rows[0]
	assertAmount(t, 0, row.ClassSum())
	assertAmount(t, 50, row.TotalLalin)
	assertAmount(t, 50, rep.GrandTotal.TotalLalin)
}

func TestAggregateGroupsByKeyInFirstSeenOrder(t *testing.T) {
	lalins := []models.Lalin{
		cash(2, 5, 1, "2024-05-02", 1, 1),
		cash(1, 5, 1, "2024-05-02", 2, 2),
		cash(2, 5, 1, "2024-05-02", 3, 4),  // same as first
		cash(2, 5, 2, "2024-05-02", 4, 8),  // other gardu
		cash(2, 5, 1, "2024-05-03", 5, 16), // other date
		cash(2, 6, 1, "2024-05-02", 1, 32), // other gerbang
	}

	rep := Aggregate(lalins, Tunai)

	ids := make([]string, len(rep.Rows))
	for i, r := range rep.Rows {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{
		"2-5-1-02-05-2024",
		"1-5-1-02-05-2024",
		"2-5-2-02-05-2024",
		"2-5-1-03-05-2024",
		"2-6-1-02-05-2024",
	}, ids)
	assertAmount(t, 5, rep.Rows[0].TotalLalin)
	assertAmount(t, 1, rep.Rows[0].GolI)
	assertAmount(t, 4, rep.Rows[0].GolIII)
}

func TestAggregateGroupsTimesOfTheSameDay(t *testing.T) {
	morning := cash(1, 1, 1, "2024-05-01", 1, 3)
	evening := cash(1, 1, 1, "2024-05-01", 1, 4)
	evening.Tanggal = evening.Tanggal.Add(20 * time.Hour)

	rep := Aggregate([]models.Lalin{morning, evening}, Tunai)

	require.Len(t, rep.Rows, 1)
	assertAmount(t, 7, rep.Rows[0].GolI)
}

func TestAggregateIsPartition(t *testing.T) {
	lalins := sampleLalins()
	rep := Aggregate(lalins, Keseluruhan)

	inputTotal := decimal.Zero
	for _, l := range lalins {
		inputTotal = inputTotal.Add(PaymentValue(l, Keseluruhan))
	}

	rowTotal := decimal.Zero
	for _, r := range rep.Rows {
		rowTotal = rowTotal.Add(r.TotalLalin)
		assert.True(t, r.ClassSum().Equal(r.TotalLalin), r.ID)
	}

	summaryTotal := decimal.Zero
	for _, s := range rep.SummaryByRuas {
		summaryTotal = summaryTotal.Add(s.TotalLalin)
	}

	assert.True(t, inputTotal.Equal(rowTotal))
	assert.True(t, rowTotal.Equal(summaryTotal))
	assert.True(t, summaryTotal.Equal(rep.GrandTotal.TotalLalin))
	assert.True(t, rep.GrandTotal.ClassSum().Equal(rep.GrandTotal.TotalLalin))
}

func TestSummarizeByRuas(t *testing.T) {
	rep := Aggregate(sampleLalins(), Tunai)

	require.Len(t, rep.SummaryByRuas, 2)
	assert.Equal(t, "Ruas 1", rep.SummaryByRuas[0].Ruas)
	assert.Equal(t, "Ruas 2", rep.SummaryByRuas[1].Ruas)
	assertAmount(t, 10+30, rep.SummaryByRuas[0].TotalLalin)
	assertAmount(t, 10, rep.SummaryByRuas[0].GolI)
	assertAmount(t, 30, rep.SummaryByRuas[0].GolII)
	assertAmount(t, 20+40, rep.SummaryByRuas[1].TotalLalin)
	assertAmount(t, 100, rep.GrandTotal.TotalLalin)
}

func TestAggregateIsIdempotent(t *testing.T) {
	lalins := sampleLalins()

	first := Aggregate(lalins, ETollTunaiFlo)
	second := Aggregate(lalins, ETollTunaiFlo)

	assert.Equal(t, first, second)
}

func TestAggregateUsesSelectedMethod(t *testing.T) {
	l := fullLalin()

	assertAmount(t, 1, Aggregate([]models.Lalin{l}, Tunai).Rows[0].GolI)
	assertAmount(t, 2048, Aggregate([]models.Lalin{l}, Flo).Rows[0].GolI)
	assert.Equal(t, "Flo", Aggregate([]models.Lalin{l}, Flo).Rows[0].MetodePembayaran)
}

func TestDayNames(t *testing.T) {
	assert.Equal(t, "Minggu", DayNames[time.Sunday])
	assert.Equal(t, "Sabtu", DayNames[time.Saturday])

	rep := Aggregate([]models.Lalin{cash(1, 1, 1, "2024-05-05", 1, 1)}, Tunai)
	assert.Equal(t, "Minggu", rep.Rows[0].Hari)
}

func sampleLalins() []models.Lalin {
	a := cash(1, 1, 1, "2024-05-01", 1, 10)
	a.EBca = d(5)
	b := cash(2, 3, 1, "2024-05-01", 4, 20)
	b.EFlo = d(7)
	c := cash(1, 1, 2, "2024-05-01", 2, 30)
	c.DinasOpr = d(3)
	e := cash(2, 3, 1, "2024-05-02", 5, 40)
	return []models.Lalin{a, b, c, e}
}
