package report

import (
	"testing"
	"time"

	"github.com/jengzang/lalin-backend-go/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func date(s string) time.Time {
	t, err := time.Parse(models.TanggalLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func assertAmount(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(d(want)), "want %d, got %s", want, got.String())
}

// cash builds a lalin carrying only a cash amount
func cash(cabang, gerbang, gardu int64, tanggal string, golongan int, amount int64) models.Lalin {
	return models.Lalin{
		IDCabang:  cabang,
		IDGerbang: gerbang,
		IDGardu:   gardu,
		Tanggal:   date(tanggal),
		Golongan:  golongan,
		Shift:     1,
		Tunai:     d(amount),
	}
}

// fullLalin builds a lalin with a distinct amount in every channel
func fullLalin() models.Lalin {
	return models.Lalin{
		IDCabang:   1,
		IDGerbang:  1,
		IDGardu:    1,
		Tanggal:    date("2024-05-01"),
		Golongan:   1,
		Tunai:      d(1),
		DinasOpr:   d(2),
		DinasMitra: d(4),
		DinasKary:  d(8),
		EMandiri:   d(16),
		EBri:       d(32),
		EBni:       d(64),
		EBca:       d(128),
		ENobu:      d(256),
		EDKI:       d(512),
		EMega:      d(1024),
		EFlo:       d(2048),
	}
}
