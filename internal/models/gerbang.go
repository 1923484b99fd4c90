package models

import "time"

// Gerbang represents a toll gate registered under a branch (cabang).
// The pair (ID, IDCabang) identifies a gate.
type Gerbang struct {
	ID          int64  `json:"id" db:"id"`
	IDCabang    int64  `json:"IdCabang" db:"id_cabang"`
	NamaGerbang string `json:"NamaGerbang" db:"nama_gerbang"`
	NamaCabang  string `json:"NamaCabang" db:"nama_cabang"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// GerbangRequest is the body of create and update requests
type GerbangRequest struct {
	ID          int64  `json:"id"`
	IDCabang    int64  `json:"IdCabang"`
	NamaGerbang string `json:"NamaGerbang"`
	NamaCabang  string `json:"NamaCabang"`
}

// DeleteGerbangRequest is the body of delete requests
type DeleteGerbangRequest struct {
	ID       int64 `json:"id"`
	IDCabang int64 `json:"IdCabang"`
}

// DeleteGerbangResponse echoes the removed key
type DeleteGerbangResponse struct {
	IDGerbang int64 `json:"IdGerbang"`
	IDCabang  int64 `json:"IdCabang"`
}
