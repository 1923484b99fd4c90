package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jengzang/lalin-backend-go/internal/models"
)

// GerbangRepository handles database operations for gerbangs
type GerbangRepository struct {
	db *sql.DB
}

// NewGerbangRepository creates a new gerbang repository
func NewGerbangRepository(db *sql.DB) *GerbangRepository {
	return &GerbangRepository{db: db}
}

const gerbangColumns = `id, id_cabang, nama_gerbang, nama_cabang, created_at, updated_at`

func scanGerbang(scanner interface{ Scan(...interface{}) error }) (models.Gerbang, error) {
	var g models.Gerbang
	err := scanner.Scan(&g.ID, &g.IDCabang, &g.NamaGerbang, &g.NamaCabang, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

// List retrieves gerbangs with filtering and pagination. filter.Page and
// filter.Limit must already be normalized.
func (r *GerbangRepository) List(ctx context.Context, filter models.GerbangFilter) ([]models.Gerbang, int64, error) {
	var conditions []string
	var args []interface{}

	if filter.ID > 0 {
		conditions = append(conditions, "id = ?")
		args = append(args, filter.ID)
	}
	if filter.IDCabang > 0 {
		conditions = append(conditions, "id_cabang = ?")
		args = append(args, filter.IDCabang)
	}
	if filter.NamaGerbang != "" {
		conditions = append(conditions, `LOWER(nama_gerbang) LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(strings.ToLower(filter.NamaGerbang)))
	}
	if filter.NamaCabang != "" {
		conditions = append(conditions, `LOWER(nama_cabang) LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(strings.ToLower(filter.NamaCabang)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM gerbangs"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count gerbangs: %w", err)
	}

	offset, ok := models.PageOffset(filter.Page, filter.Limit, total)
	if !ok {
		return []models.Gerbang{}, total, nil
	}
	query := "SELECT " + gerbangColumns + " FROM gerbangs" + where + " ORDER BY id_cabang, id LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, query, append(args, filter.Limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query gerbangs: %w", err)
	}
	defer rows.Close()

	gerbangs := []models.Gerbang{}
	for rows.Next() {
		g, err := scanGerbang(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan gerbang: %w", err)
		}
		gerbangs = append(gerbangs, g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate gerbangs: %w", err)
	}

	return gerbangs, total, nil
}

// Get retrieves a single gerbang; it returns nil when none matches
func (r *GerbangRepository) Get(ctx context.Context, id, idCabang int64) (*models.Gerbang, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+gerbangColumns+" FROM gerbangs WHERE id = ? AND id_cabang = ?", id, idCabang)
	g, err := scanGerbang(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gerbang: %w", err)
	}
	return &g, nil
}

// Create inserts a gerbang; it fails with ErrDuplicate when the key exists
func (r *GerbangRepository) Create(ctx context.Context, g *models.Gerbang) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO gerbangs (id, id_cabang, nama_gerbang, nama_cabang, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		g.ID, g.IDCabang, g.NamaGerbang, g.NamaCabang, now, now,
	)
	if isConstraintViolation(err) {
		return fmt.Errorf("gerbang %d/%d: %w", g.ID, g.IDCabang, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to create gerbang: %w", err)
	}

	g.CreatedAt = now
	g.UpdatedAt = now
	return nil
}

// Update changes the names of an existing gerbang
func (r *GerbangRepository) Update(ctx context.Context, g *models.Gerbang) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE gerbangs SET nama_gerbang = ?, nama_cabang = ?, updated_at = ?
		WHERE id = ? AND id_cabang = ?`,
		g.NamaGerbang, g.NamaCabang, now, g.ID, g.IDCabang,
	)
	if err != nil {
		return fmt.Errorf("failed to update gerbang: %w", err)
	}
	if err := expectAffected(res, fmt.Sprintf("gerbang %d/%d", g.ID, g.IDCabang)); err != nil {
		return err
	}
	g.UpdatedAt = now
	return nil
}

// Delete removes a gerbang
func (r *GerbangRepository) Delete(ctx context.Context, id, idCabang int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM gerbangs WHERE id = ? AND id_cabang = ?", id, idCabang)
	if err != nil {
		return fmt.Errorf("failed to delete gerbang: %w", err)
	}
	return expectAffected(res, fmt.Sprintf("gerbang %d/%d", id, idCabang))
}

func expectAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
