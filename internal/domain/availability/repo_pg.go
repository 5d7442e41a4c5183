package availability

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/telemed/telemed/internal/platform/db"
)

// =========== SlotDefinition Repository ===========

type slotRepoPG struct{ pool *pgxpool.Pool }

func NewSlotDefinitionRepoPG(pool *pgxpool.Pool) SlotDefinitionRepository {
	return &slotRepoPG{pool: pool}
}

func (r *slotRepoPG) conn(ctx context.Context) db.Queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const slotCols = `id, doctor_id, kind, day_of_week, date, start_time, end_time, location_id, active, created_at, updated_at, deleted_at`

func (r *slotRepoPG) scanSlot(row pgx.Row) (*SlotDefinition, error) {
	var sd SlotDefinition
	var day *int
	err := row.Scan(&sd.ID, &sd.DoctorID, &sd.Kind, &day, &sd.Date, &sd.StartTime, &sd.EndTime,
		&sd.LocationID, &sd.Active, &sd.CreatedAt, &sd.UpdatedAt, &sd.DeletedAt)
	if day != nil {
		wd := time.Weekday(*day)
		sd.DayOfWeek = &wd
	}
	return &sd, err
}

func (r *slotRepoPG) Create(ctx context.Context, sd *SlotDefinition) error {
	sd.ID = uuid.New()
	var day *int
	if sd.DayOfWeek != nil {
		d := int(*sd.DayOfWeek)
		day = &d
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO slot_definition (id, doctor_id, kind, day_of_week, date, start_time, end_time, location_id, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		sd.ID, sd.DoctorID, sd.Kind, day, sd.Date, sd.StartTime, sd.EndTime, sd.LocationID, sd.Active)
	return err
}

func (r *slotRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*SlotDefinition, error) {
	return r.scanSlot(r.conn(ctx).QueryRow(ctx,
		`SELECT `+slotCols+` FROM slot_definition WHERE id = $1 AND deleted_at IS NULL`, id))
}

func (r *slotRepoPG) Update(ctx context.Context, sd *SlotDefinition) error {
	var day *int
	if sd.DayOfWeek != nil {
		d := int(*sd.DayOfWeek)
		day = &d
	}
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE slot_definition SET kind=$2, day_of_week=$3, date=$4, start_time=$5, end_time=$6,
			location_id=$7, active=$8, updated_at=NOW()
		WHERE id = $1 AND deleted_at IS NULL`,
		sd.ID, sd.Kind, day, sd.Date, sd.StartTime, sd.EndTime, sd.LocationID, sd.Active)
	return err
}

func (r *slotRepoPG) SoftDelete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx,
		`UPDATE slot_definition SET deleted_at = NOW(), active = FALSE WHERE id = $1 AND deleted_at IS NULL`, id)
	return err
}

func (r *slotRepoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*SlotDefinition, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+slotCols+` FROM slot_definition
		WHERE doctor_id = $1 AND active AND deleted_at IS NULL
		ORDER BY kind, day_of_week, date, start_time`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *slotRepoPG) FindRecurring(ctx context.Context, doctorID uuid.UUID, day time.Weekday) ([]*SlotDefinition, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+slotCols+` FROM slot_definition
		WHERE doctor_id = $1 AND kind = 'recurring' AND day_of_week = $2
			AND active AND deleted_at IS NULL
		ORDER BY start_time`, doctorID, int(day))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *slotRepoPG) FindSpecific(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]*SlotDefinition, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+slotCols+` FROM slot_definition
		WHERE doctor_id = $1 AND kind = 'specific' AND date = $2::date
			AND active AND deleted_at IS NULL
		ORDER BY start_time`, doctorID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *slotRepoPG) FindSpecificInRange(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*SlotDefinition, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+slotCols+` FROM slot_definition
		WHERE doctor_id = $1 AND kind = 'specific' AND date >= $2::date AND date <= $3::date
			AND active AND deleted_at IS NULL
		ORDER BY date, start_time`, doctorID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *slotRepoPG) collect(rows pgx.Rows) ([]*SlotDefinition, error) {
	var items []*SlotDefinition
	for rows.Next() {
		sd, err := r.scanSlot(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, sd)
	}
	return items, rows.Err()
}

// =========== BlockedDate Repository ===========

type blockedRepoPG struct{ pool *pgxpool.Pool }

func NewBlockedDateRepoPG(pool *pgxpool.Pool) BlockedDateRepository {
	return &blockedRepoPG{pool: pool}
}

func (r *blockedRepoPG) conn(ctx context.Context) db.Queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const blockedCols = `id, doctor_id, date, reason, active, created_at, deleted_at`

func (r *blockedRepoPG) scanBlocked(row pgx.Row) (*BlockedDate, error) {
	var b BlockedDate
	err := row.Scan(&b.ID, &b.DoctorID, &b.Date, &b.Reason, &b.Active, &b.CreatedAt, &b.DeletedAt)
	return &b, err
}

func (r *blockedRepoPG) Create(ctx context.Context, b *BlockedDate) error {
	b.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO blocked_date (id, doctor_id, date, reason, active)
		VALUES ($1,$2,$3,$4,$5)`,
		b.ID, b.DoctorID, b.Date, b.Reason, b.Active)
	return err
}

func (r *blockedRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*BlockedDate, error) {
	return r.scanBlocked(r.conn(ctx).QueryRow(ctx, `
		SELECT `+blockedCols+` FROM blocked_date
		WHERE id = $1 AND active AND deleted_at IS NULL`, id))
}

func (r *blockedRepoPG) SoftDelete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx,
		`UPDATE blocked_date SET deleted_at = NOW(), active = FALSE WHERE id = $1 AND deleted_at IS NULL`, id)
	return err
}

func (r *blockedRepoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*BlockedDate, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+blockedCols+` FROM blocked_date
		WHERE doctor_id = $1 AND active AND deleted_at IS NULL
		ORDER BY date`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *blockedRepoPG) GetForDate(ctx context.Context, doctorID uuid.UUID, date time.Time) (*BlockedDate, error) {
	b, err := r.scanBlocked(r.conn(ctx).QueryRow(ctx, `
		SELECT `+blockedCols+` FROM blocked_date
		WHERE doctor_id = $1 AND date = $2::date AND active AND deleted_at IS NULL
		LIMIT 1`, doctorID, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *blockedRepoPG) FindInRange(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*BlockedDate, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+blockedCols+` FROM blocked_date
		WHERE doctor_id = $1 AND date >= $2::date AND date <= $3::date
			AND active AND deleted_at IS NULL
		ORDER BY date`, doctorID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *blockedRepoPG) collect(rows pgx.Rows) ([]*BlockedDate, error) {
	var items []*BlockedDate
	for rows.Next() {
		b, err := r.scanBlocked(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}
