package repository // repository holds data access logic for domain entities

import (
	"context"      // context is used to manage deadlines and cancellation
	"database/sql" // sql provides DB primitives
	"errors"       // errors package allows sentinel comparisons

	"github.com/propline/property-sales-backend/internal/model"
)

// FloorRepo provides methods to create, list and delete floors.  It
// embeds a database handle to perform queries and commands.
type FloorRepo struct {
	db *sql.DB // db is the underlying database connection
}

// NewFloorRepo constructs a FloorRepo with the given DB handle.
func NewFloorRepo(db *sql.DB) *FloorRepo {
	return &FloorRepo{db: db}
}

// Create inserts a new floor.  Name and FloorNumber must be set; floor
// numbers are intentionally not unique.  After insert the record is read
// back so ID and the timestamp columns are populated.
func (r *FloorRepo) Create(ctx context.Context, f *model.Floor) error {
	const qInsert = `INSERT INTO floors (name, floor_number) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, f.Name, f.FloorNumber)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)

	const qSelect = `SELECT id, name, floor_number, created_at, updated_at FROM floors WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, f.ID).
		Scan(&f.ID, &f.Name, &f.FloorNumber, &f.CreatedAt, &f.UpdatedAt)
}

// GetByID retrieves a floor by its ID.  It returns ErrFloorNotFound when
// no row is found.
func (r *FloorRepo) GetByID(ctx context.Context, id uint64) (*model.Floor, error) {
	const q = `SELECT id, name, floor_number, created_at, updated_at FROM floors WHERE id = ?`
	var f model.Floor
	err := r.db.QueryRowContext(ctx, q, id).Scan(&f.ID, &f.Name, &f.FloorNumber, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFloorNotFound
		}
		return nil, err
	}
	return &f, nil
}

// ListAll returns every floor ordered by id.  No shop data is joined.
func (r *FloorRepo) ListAll(ctx context.Context) ([]*model.Floor, error) {
	const q = `SELECT id, name, floor_number, created_at, updated_at FROM floors ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Floor, 0)
	for rows.Next() {
		f := new(model.Floor)
		if err := rows.Scan(&f.ID, &f.Name, &f.FloorNumber, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the total number of floors.
func (r *FloorRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM floors`).Scan(&n)
	return n, err
}

// DeleteCascade removes the floor and every shop referencing it inside a
// single transaction, so a failure part way through leaves nothing
// half-deleted.  It returns the deleted floor so the handler can echo it
// back, and ErrFloorNotFound when the floor does not exist.
func (r *FloorRepo) DeleteCascade(ctx context.Context, id uint64) (*model.Floor, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	const qSelect = `SELECT id, name, floor_number, created_at, updated_at FROM floors WHERE id = ? FOR UPDATE`
	var f model.Floor
	if err := tx.QueryRowContext(ctx, qSelect, id).
		Scan(&f.ID, &f.Name, &f.FloorNumber, &f.CreatedAt, &f.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFloorNotFound
		}
		return nil, err
	}

	// Children first: the foreign key restricts deleting a referenced floor.
	if _, err := tx.ExecContext(ctx, `DELETE FROM shops WHERE floor_id = ?`, id); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM floors WHERE id = ?`, id); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &f, nil
}
