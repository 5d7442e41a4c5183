package practice

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/telemed/telemed/internal/platform/db"
)

// =========== Doctor Repository ===========

type doctorRepoPG struct{ pool *pgxpool.Pool }

func NewDoctorRepoPG(pool *pgxpool.Pool) DoctorRepository {
	return &doctorRepoPG{pool: pool}
}

func (r *doctorRepoPG) conn(ctx context.Context) db.Queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const doctorCols = `id, full_name, specialty, email, active, created_at, updated_at, deleted_at`

func (r *doctorRepoPG) scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.FullName, &d.Specialty, &d.Email, &d.Active,
		&d.CreatedAt, &d.UpdatedAt, &d.DeletedAt)
	return &d, err
}

func (r *doctorRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return r.scanDoctor(r.conn(ctx).QueryRow(ctx,
		`SELECT `+doctorCols+` FROM doctor WHERE id = $1 AND deleted_at IS NULL`, id))
}

func (r *doctorRepoPG) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM doctor WHERE id = $1 AND active AND deleted_at IS NULL)`, id).Scan(&exists)
	return exists, err
}

func (r *doctorRepoPG) List(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM doctor WHERE deleted_at IS NULL`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+doctorCols+` FROM doctor WHERE deleted_at IS NULL ORDER BY full_name LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Doctor
	for rows.Next() {
		d, err := r.scanDoctor(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, nil
}

// =========== Location Repository ===========

type locationRepoPG struct{ pool *pgxpool.Pool }

func NewLocationRepoPG(pool *pgxpool.Pool) LocationRepository {
	return &locationRepoPG{pool: pool}
}

func (r *locationRepoPG) conn(ctx context.Context) db.Queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const locationCols = `id, doctor_id, name, type, address, contact, active, created_at, updated_at, deleted_at`

func (r *locationRepoPG) scanLocation(row pgx.Row) (*Location, error) {
	var l Location
	err := row.Scan(&l.ID, &l.DoctorID, &l.Name, &l.Type, &l.Address, &l.Contact,
		&l.Active, &l.CreatedAt, &l.UpdatedAt, &l.DeletedAt)
	return &l, err
}

func (r *locationRepoPG) Create(ctx context.Context, l *Location) error {
	l.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO location (id, doctor_id, name, type, address, contact, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		l.ID, l.DoctorID, l.Name, l.Type, l.Address, l.Contact, l.Active)
	return err
}

func (r *locationRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Location, error) {
	return r.scanLocation(r.conn(ctx).QueryRow(ctx,
		`SELECT `+locationCols+` FROM location WHERE id = $1 AND deleted_at IS NULL`, id))
}

func (r *locationRepoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Location, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+locationCols+` FROM location WHERE doctor_id = $1 AND deleted_at IS NULL ORDER BY name`,
		doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Location
	for rows.Next() {
		l, err := r.scanLocation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, nil
}

func (r *locationRepoPG) Update(ctx context.Context, l *Location) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE location SET name=$2, type=$3, address=$4, contact=$5, active=$6, updated_at=NOW()
		WHERE id = $1 AND deleted_at IS NULL`,
		l.ID, l.Name, l.Type, l.Address, l.Contact, l.Active)
	return err
}

func (r *locationRepoPG) SoftDelete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx,
		`UPDATE location SET deleted_at = NOW(), active = FALSE WHERE id = $1 AND deleted_at IS NULL`, id)
	return err
}
