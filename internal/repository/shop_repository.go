package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/propline/property-sales-backend/internal/model"
)

// ShopRepo provides persistence for shops.  Write methods map the MySQL
// foreign key violation (error 1452) onto ErrFloorReference so handlers
// can answer with a validation failure instead of a blanket 500.
type ShopRepo struct {
	db *sql.DB
}

// NewShopRepo constructs a ShopRepo with the given DB handle.
func NewShopRepo(db *sql.DB) *ShopRepo {
	return &ShopRepo{db: db}
}

// isFKViolation reports whether err is the MySQL "cannot add or update a
// child row" foreign key error.
func isFKViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1452")
}

const shopCols = `id, shop_number, size, status, floor_id, created_at, updated_at`

func scanShop(row *sql.Row, s *model.Shop) error {
	return row.Scan(&s.ID, &s.ShopNumber, &s.Size, &s.Status, &s.FloorID, &s.CreatedAt, &s.UpdatedAt)
}

// Create inserts a new shop.  Status is left to the column default
// (AVAILABLE).  A floor id that does not resolve to an existing floor
// fails with ErrFloorReference and nothing is persisted.  After insert
// the record is read back so ID, status and timestamps are populated.
func (r *ShopRepo) Create(ctx context.Context, s *model.Shop) error {
	const qInsert = `INSERT INTO shops (shop_number, size, floor_id) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, s.ShopNumber, s.Size, s.FloorID)
	if err != nil {
		if isFKViolation(err) {
			return ErrFloorReference
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)

	return scanShop(r.db.QueryRowContext(ctx,
		`SELECT `+shopCols+` FROM shops WHERE id = ?`, s.ID), s)
}

// GetByID retrieves a shop by id without joining floor data.  It returns
// ErrShopNotFound when no row is found.
func (r *ShopRepo) GetByID(ctx context.Context, id uint64) (*model.Shop, error) {
	var s model.Shop
	err := scanShop(r.db.QueryRowContext(ctx,
		`SELECT `+shopCols+` FROM shops WHERE id = ?`, id), &s)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Delete removes a shop and returns the deleted record.  ErrShopNotFound
// is returned when the shop does not exist.
func (r *ShopRepo) Delete(ctx context.Context, id uint64) (*model.Shop, error) {
	s, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM shops WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateFloor reassigns a shop to another floor.  The floors table is not
// consulted beforehand; the foreign key rejects a dangling reference and
// the error surfaces as ErrFloorReference.
func (r *ShopRepo) UpdateFloor(ctx context.Context, id, floorID uint64) (*model.Shop, error) {
	return r.update(ctx, id, `UPDATE shops SET floor_id = ? WHERE id = ?`, floorID, id)
}

// UpdateStatus sets the availability status.  Callers validate the value
// against the enum before reaching this point; the ENUM column is the
// backstop.
func (r *ShopRepo) UpdateStatus(ctx context.Context, id uint64, status string) (*model.Shop, error) {
	return r.update(ctx, id, `UPDATE shops SET status = ? WHERE id = ?`, status, id)
}

// UpdateSize sets the free-form size field.
func (r *ShopRepo) UpdateSize(ctx context.Context, id uint64, size string) (*model.Shop, error) {
	return r.update(ctx, id, `UPDATE shops SET size = ? WHERE id = ?`, size, id)
}

// UpdateNumber sets the display shop number.
func (r *ShopRepo) UpdateNumber(ctx context.Context, id uint64, shopNumber string) (*model.Shop, error) {
	return r.update(ctx, id, `UPDATE shops SET shop_number = ? WHERE id = ?`, shopNumber, id)
}

// Update changes shop number, size and floor linkage in one statement.
func (r *ShopRepo) Update(ctx context.Context, id uint64, shopNumber, size string, floorID uint64) (*model.Shop, error) {
	return r.update(ctx, id,
		`UPDATE shops SET shop_number = ?, size = ?, floor_id = ? WHERE id = ?`,
		shopNumber, size, floorID, id)
}

// update executes a single-row UPDATE and reads the row back.  Reading
// back rather than inspecting RowsAffected distinguishes "shop absent"
// from "value unchanged".
func (r *ShopRepo) update(ctx context.Context, id uint64, q string, args ...any) (*model.Shop, error) {
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		if isFKViolation(err) {
			return nil, ErrFloorReference
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// ListWithFloor returns shops joined with their floor, optionally
// filtered by status ("" means all).  Rows come back in store order
// (primary key); callers relying on grouping preserve that order.
func (r *ShopRepo) ListWithFloor(ctx context.Context, status string) ([]*model.Shop, error) {
	q := `SELECT s.id, s.shop_number, s.size, s.status, s.floor_id, s.created_at, s.updated_at,
	             f.id, f.name, f.floor_number, f.created_at, f.updated_at
	      FROM shops s
	      JOIN floors f ON f.id = s.floor_id`
	args := []any{}
	if status != "" {
		q += ` WHERE s.status = ?`
		args = append(args, status)
	}
	q += ` ORDER BY s.id`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Shop, 0)
	for rows.Next() {
		s := new(model.Shop)
		f := new(model.Floor)
		if err := rows.Scan(
			&s.ID, &s.ShopNumber, &s.Size, &s.Status, &s.FloorID, &s.CreatedAt, &s.UpdatedAt,
			&f.ID, &f.Name, &f.FloorNumber, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, err
		}
		s.Floor = f
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the total number of shops.
func (r *ShopRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shops`).Scan(&n)
	return n, err
}

// CountByStatus returns the number of shops with the given status.
func (r *ShopRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shops WHERE status = ?`, status).Scan(&n)
	return n, err
}
