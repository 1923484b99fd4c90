package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TanggalLayout is the storage and query format of a Lalin date
const TanggalLayout = "2006-01-02"

// Lalin represents one traffic tally: a gate lane, a date, a shift and a
// vehicle class (golongan), with the amount recorded per payment channel.
type Lalin struct {
	ID            int64     `json:"id" db:"id"`
	IDCabang      int64     `json:"IdCabang" db:"id_cabang"`
	IDGerbang     int64     `json:"IdGerbang" db:"id_gerbang"`
	Tanggal       time.Time `json:"Tanggal" db:"tanggal"`
	Shift         int       `json:"Shift" db:"shift"`
	IDGardu       int64     `json:"IdGardu" db:"id_gardu"`
	Golongan      int       `json:"Golongan" db:"golongan"`
	IDAsalGerbang int64     `json:"IdAsalGerbang" db:"id_asal_gerbang"`

	// Cash
	Tunai decimal.Decimal `json:"Tunai" db:"tunai"`

	// Exemptions (KTP / dinas)
	DinasOpr   decimal.Decimal `json:"DinasOpr" db:"dinas_opr"`
	DinasMitra decimal.Decimal `json:"DinasMitra" db:"dinas_mitra"`
	DinasKary  decimal.Decimal `json:"DinasKary" db:"dinas_kary"`

	// Card issuers (e-toll)
	EMandiri decimal.Decimal `json:"eMandiri" db:"e_mandiri"`
	EBri     decimal.Decimal `json:"eBri" db:"e_bri"`
	EBni     decimal.Decimal `json:"eBni" db:"e_bni"`
	EBca     decimal.Decimal `json:"eBca" db:"e_bca"`
	ENobu    decimal.Decimal `json:"eNobu" db:"e_nobu"`
	EDKI     decimal.Decimal `json:"eDKI" db:"e_dki"`
	EMega    decimal.Decimal `json:"eMega" db:"e_mega"`

	// Tag based (Flo)
	EFlo decimal.Decimal `json:"eFlo" db:"e_flo"`
}

// ParseTanggal parses a stored or submitted date. Plain dates are taken as
// calendar dates; timestamps are moved into loc before the time of day is
// dropped, so the calendar date is the one observed at the toll plaza.
func ParseTanggal(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.ParseInLocation(TanggalLayout, s, loc); err == nil {
		return t, nil
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		t = t.In(loc)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
	}

	return time.Time{}, fmt.Errorf("invalid tanggal %q", s)
}

// LalinInput is the JSON form of a submitted lalin, with Tanggal as text
type LalinInput struct {
	Lalin
	Tanggal string `json:"Tanggal"`
}

// ImportLalinsRequest is the body of a lalin import
type ImportLalinsRequest struct {
	Lalins []LalinInput `json:"lalins" binding:"required"`
}
