package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentValue(t *testing.T) {
	l := fullLalin()

	tests := []struct {
		method PaymentMethod
		want   int64
	}{
		{Tunai, 1},
		{KTP, 2 + 4 + 8},
		{EToll, 16 + 32 + 64 + 128 + 256 + 512 + 1024},
		{Flo, 2048},
		{Keseluruhan, 4095},
		{ETollTunaiFlo, 4095 - 14},
		{PaymentMethod("Giro"), 0},
		{PaymentMethod(""), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			assertAmount(t, tt.want, PaymentValue(l, tt.method))
		})
	}
}

func TestCombinedEqualsSumOfGroups(t *testing.T) {
	records := []struct{ cash, card, flo int64 }{{0, 0, 0}, {10, 5, 3}, {7, 0, 11}}
	for _, r := range records {
		l := cash(1, 1, 1, "2024-05-01", 1, r.cash)
		l.EBni = d(r.card)
		l.EFlo = d(r.flo)
		l.DinasKary = d(r.cash + 1)

		sum := PaymentValue(l, EToll).
			Add(PaymentValue(l, Tunai)).
			Add(PaymentValue(l, Flo)).
			Add(PaymentValue(l, KTP))
		assert.True(t, sum.Equal(PaymentValue(l, Keseluruhan)))
	}
}

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		in     string
		want   PaymentMethod
		wantOK bool
	}{
		{"", Tunai, true},
		{"Tunai", Tunai, true},
		{"e-toll", EToll, true},
		{"Flo", Flo, true},
		{"KTP", KTP, true},
		{"Keseluruhan", Keseluruhan, true},
		{"E-Toll+Tunai+Flo", ETollTunaiFlo, true},
		{"E-Toll Tunai Flo", ETollTunaiFlo, true},
		{"Giro", "", false},
	}

	for _, tt := range tests {
		got, ok := ParsePaymentMethod(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestTabs(t *testing.T) {
	tabs := Tabs()
	assert.Len(t, tabs, 6)
	assert.Equal(t, "Total Tunai", tabs[0].Label)
	assert.Equal(t, "E-Toll+Tunai+Flo", tabs[5].Value)

	tabs[0].Label = "changed"
	assert.Equal(t, "Total Tunai", Tabs()[0].Label)
}
