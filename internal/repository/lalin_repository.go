package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jengzang/lalin-backend-go/internal/database"
	"github.com/jengzang/lalin-backend-go/internal/models"
)

// LalinRepository handles database operations for lalins
type LalinRepository struct {
	db  *sql.DB
	loc *time.Location
}

// NewLalinRepository creates a new lalin repository. Dates are read as
// calendar dates in loc.
func NewLalinRepository(db *sql.DB, loc *time.Location) *LalinRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &LalinRepository{db: db, loc: loc}
}

const lalinColumns = `id, id_cabang, id_gerbang, tanggal, shift, id_gardu, golongan, id_asal_gerbang,
	tunai, dinas_opr, dinas_mitra, dinas_kary,
	e_mandiri, e_bri, e_bni, e_bca, e_nobu, e_dki, e_mega, e_flo`

// List retrieves one page of lalins in insertion order, optionally limited
// to one date. tanggal must be empty or formatted as models.TanggalLayout.
func (r *LalinRepository) List(ctx context.Context, tanggal string, page, limit int) ([]models.Lalin, int64, error) {
	where := ""
	var args []interface{}
	if tanggal != "" {
		where = " WHERE tanggal = ?"
		args = append(args, tanggal)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM lalins"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count lalins: %w", err)
	}

	offset, ok := models.PageOffset(page, limit, total)
	if !ok {
		return []models.Lalin{}, total, nil
	}
	query := "SELECT " + lalinColumns + " FROM lalins" + where + " ORDER BY id LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query lalins: %w", err)
	}
	defer rows.Close()

	lalins := []models.Lalin{}
	for rows.Next() {
		var l models.Lalin
		var tanggalStr string
		err := rows.Scan(
			&l.ID, &l.IDCabang, &l.IDGerbang, &tanggalStr, &l.Shift, &l.IDGardu, &l.Golongan, &l.IDAsalGerbang,
			&l.Tunai, &l.DinasOpr, &l.DinasMitra, &l.DinasKary,
			&l.EMandiri, &l.EBri, &l.EBni, &l.EBca, &l.ENobu, &l.EDKI, &l.EMega, &l.EFlo,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan lalin: %w", err)
		}
		l.Tanggal, err = models.ParseTanggal(tanggalStr, r.loc)
		if err != nil {
			return nil, 0, fmt.Errorf("lalin %d: %w", l.ID, err)
		}
		lalins = append(lalins, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate lalins: %w", err)
	}

	return lalins, total, nil
}

// CreateBatch inserts lalins in one transaction and fills in their IDs
func (r *LalinRepository) CreateBatch(ctx context.Context, lalins []models.Lalin) error {
	return database.Transaction(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO lalins (
			id_cabang, id_gerbang, tanggal, shift, id_gardu, golongan, id_asal_gerbang,
			tunai, dinas_opr, dinas_mitra, dinas_kary,
			e_mandiri, e_bri, e_bni, e_bca, e_nobu, e_dki, e_mega, e_flo
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare lalin insert: %w", err)
		}
		defer stmt.Close()

		for i := range lalins {
			l := &lalins[i]
			res, err := stmt.ExecContext(ctx,
				l.IDCabang, l.IDGerbang, l.Tanggal.Format(models.TanggalLayout), l.Shift, l.IDGardu, l.Golongan, l.IDAsalGerbang,
				l.Tunai, l.DinasOpr, l.DinasMitra, l.DinasKary,
				l.EMandiri, l.EBri, l.EBni, l.EBca, l.ENobu, l.EDKI, l.EMega, l.EFlo,
			)
			if err != nil {
				return fmt.Errorf("failed to insert lalin %d: %w", i, err)
			}
			if l.ID, err = res.LastInsertId(); err != nil {
				return fmt.Errorf("failed to read lalin id: %w", err)
			}
		}
		return nil
	})
}
