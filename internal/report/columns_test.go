package report

import (
	"testing"

	"github.com/jengzang/lalin-backend-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewIDs(rows []models.LalinRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Ruas + "/" + r.Gardu + "/" + r.Tanggal
	}
	return out
}

func viewRows() []models.LalinRow {
	return Aggregate([]models.Lalin{
		cash(1, 1, 1, "2024-05-02", 1, 30),
		cash(2, 1, 2, "2024-04-30", 1, 10),
		cash(1, 1, 3, "2024-05-01", 1, 30),
		cash(3, 2, 4, "2024-05-03", 1, 20),
	}, Tunai).Rows
}

func TestViewWithoutOptionsKeepsOrder(t *testing.T) {
	rows, matched := View(viewRows(), models.ReportQuery{})

	assert.Equal(t, 4, matched)
	assert.Equal(t, []string{"Ruas 1/01/02-05-2024", "Ruas 2/02/30-04-2024", "Ruas 1/03/01-05-2024", "Ruas 3/04/03-05-2024"}, viewIDs(rows))
}

func TestViewSearch(t *testing.T) {
	rows, matched := View(viewRows(), models.ReportQuery{Search: "ruas 1"})
	assert.Equal(t, 2, matched)
	assert.Equal(t, []string{"Ruas 1/01/02-05-2024", "Ruas 1/03/01-05-2024"}, viewIDs(rows))

	rows, _ = View(viewRows(), models.ReportQuery{Search: "04"})
	assert.Equal(t, []string{"Ruas 3/04/03-05-2024"}, viewIDs(rows))

	// hari is not a search key
	rows, _ = View(viewRows(), models.ReportQuery{Search: "Kamis"})
	assert.Empty(t, rows)
}

func TestViewSortByAmountIsStable(t *testing.T) {
	rows, _ := View(viewRows(), models.ReportQuery{SortBy: "totalLalin", SortDir: "desc"})

	assert.Equal(t, []string{"Ruas 1/01/02-05-2024", "Ruas 1/03/01-05-2024", "Ruas 3/04/03-05-2024", "Ruas 2/02/30-04-2024"}, viewIDs(rows))
}

func TestViewSortByTanggalIsChronological(t *testing.T) {
	rows, _ := View(viewRows(), models.ReportQuery{SortBy: "tanggal", SortDir: "asc"})

	assert.Equal(t, []string{"Ruas 2/02/30-04-2024", "Ruas 1/03/01-05-2024", "Ruas 1/01/02-05-2024", "Ruas 3/04/03-05-2024"}, viewIDs(rows))
}

func TestViewWindow(t *testing.T) {
	rows, matched := View(viewRows(), models.ReportQuery{SortBy: "gardu", SortDir: "desc", RowsPage: 1, RowsPerPage: 3})

	assert.Equal(t, 4, matched)
	assert.Equal(t, []string{"Ruas 1/01/02-05-2024"}, viewIDs(rows))

	rows, _ = View(viewRows(), models.ReportQuery{RowsPage: 5, RowsPerPage: 3})
	assert.Empty(t, rows)
}

func TestColumnsCoverReportFields(t *testing.T) {
	for _, key := range []string{"ruas", "gerbang", "gardu", "hari", "tanggal", "metodePembayaran", "golI", "golII", "golIII", "golIV", "golV", "totalLalin"} {
		_, ok := Columns.Lookup(key)
		require.True(t, ok, key)
	}
}
