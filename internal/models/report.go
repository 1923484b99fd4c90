package models

import "github.com/shopspring/decimal"

// Totals holds per vehicle class sums and their total
type Totals struct {
	GolI       decimal.Decimal `json:"golI"`
	GolII      decimal.Decimal `json:"golII"`
	GolIII     decimal.Decimal `json:"golIII"`
	GolIV      decimal.Decimal `json:"golIV"`
	GolV       decimal.Decimal `json:"golV"`
	TotalLalin decimal.Decimal `json:"totalLalin"`
}

// Add returns the field-wise sum of t and o
func (t Totals) Add(o Totals) Totals {
	return Totals{
		GolI:       t.GolI.Add(o.GolI),
		GolII:      t.GolII.Add(o.GolII),
		GolIII:     t.GolIII.Add(o.GolIII),
		GolIV:      t.GolIV.Add(o.GolIV),
		GolV:       t.GolV.Add(o.GolV),
		TotalLalin: t.TotalLalin.Add(o.TotalLalin),
	}
}

// ClassSum returns GolI+...+GolV
func (t Totals) ClassSum() decimal.Decimal {
	return t.GolI.Add(t.GolII).Add(t.GolIII).Add(t.GolIV).Add(t.GolV)
}

// LalinRow is one row of the daily report: a (ruas, gerbang, gardu, date)
// group under one payment method.
type LalinRow struct {
	ID               string `json:"id"`
	Ruas             string `json:"ruas"`
	Gerbang          string `json:"gerbang"`
	Gardu            string `json:"gardu"`
	Hari             string `json:"hari"`
	Tanggal          string `json:"tanggal"` // DD-MM-YYYY
	MetodePembayaran string `json:"metodePembayaran"`
	Totals
}

// RuasSummary is the subtotal of all rows of one ruas
type RuasSummary struct {
	Ruas string `json:"ruas"`
	Totals
}

// DailyReport is the response of the daily report endpoint
type DailyReport struct {
	MetodePembayaran string        `json:"metodePembayaran"`
	Rows             []LalinRow    `json:"rows"`
	TotalRows        int           `json:"totalRows"` // rows after search, before the view window
	SummaryByRuas    []RuasSummary `json:"summaryByRuas"`
	GrandTotal       Totals        `json:"grandTotal"`

	// Source page the report was built from
	Count       int64 `json:"count"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
}

// PaymentMethodTab describes one selectable payment method
type PaymentMethodTab struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ChartItem is a labelled value of a bar chart
type ChartItem struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// PieItem is a labelled percentage of a pie chart
type PieItem struct {
	ID    int64  `json:"id"`
	Value int64  `json:"value"`
	Label string `json:"label"`
}

// Dashboard is the chart summary of one page of lalins
type Dashboard struct {
	PaymentChannels []ChartItem `json:"paymentChannels"`
	Gerbangs        []ChartItem `json:"gerbangs"`
	Shifts          []PieItem   `json:"shifts"`
	Ruas            []PieItem   `json:"ruas"`
}
