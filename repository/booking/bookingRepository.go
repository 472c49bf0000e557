package bookingrepo

import (
	"context"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"

	"github.com/Nastia-N/shareit/model"
	"github.com/Nastia-N/shareit/util/database"
)

// TimeScope selects the window filter applied relative to "now".
type TimeScope int

const (
	ScopeAll TimeScope = iota
	ScopeCurrent
	ScopePast
	ScopeFuture
)

// ListFilter describes one booking list query: at most one of Scope or
// Status is set by callers; SortBy is a bookings column name.
type ListFilter struct {
	Scope  TimeScope
	Status model.BookingStatus
	Now    time.Time
	SortBy string
	Desc   bool
}

type Repo interface {
	Create(ctx context.Context, b *model.Booking) error
	ByID(ctx context.Context, id int64) (*model.Booking, error)
	// SetStatusIfWaiting performs the WAITING-guarded transition and reports
	// whether a row actually changed.
	SetStatusIfWaiting(ctx context.Context, id int64, status model.BookingStatus) (bool, error)
	ListForBooker(ctx context.Context, bookerID int64, f ListFilter) ([]model.Booking, error)
	ListForOwner(ctx context.Context, ownerID int64, f ListFilter) ([]model.Booking, error)
	LastForItem(ctx context.Context, itemID int64, now time.Time) (*model.BookingInfo, error)
	NextForItem(ctx context.Context, itemID int64, now time.Time) (*model.BookingInfo, error)
	HasFinishedApproved(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, b *model.Booking) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO bookings(start_date, end_date, status, item_id, booker_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		b.Start, b.End, b.Status, b.ItemID, b.BookerID,
	).Scan(&b.ID)
}

// ByID returns (nil, nil) when no such booking exists.
func (r *repo) ByID(ctx context.Context, id int64) (*model.Booking, error) {
	b := &model.Booking{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT b.id, b.start_date, b.end_date, b.status, b.item_id, b.booker_id,
		       i.name, u.name
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users u ON u.id = b.booker_id
		WHERE b.id = $1`,
		id,
	).Scan(&b.ID, &b.Start, &b.End, &b.Status, &b.ItemID, &b.BookerID,
		&b.Item.Name, &b.Booker.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	b.Item.ID = b.ItemID
	b.Booker.ID = b.BookerID
	return b, nil
}

func (r *repo) SetStatusIfWaiting(ctx context.Context, id int64, status model.BookingStatus) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE bookings
		SET status = $2
		WHERE id = $1
		AND status = 'WAITING'`,
		id, status,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repo) ListForBooker(ctx context.Context, bookerID int64, f ListFilter) ([]model.Booking, error) {
	return r.list(ctx, goqu.Ex{"b.booker_id": bookerID}, f)
}

func (r *repo) ListForOwner(ctx context.Context, ownerID int64, f ListFilter) ([]model.Booking, error) {
	return r.list(ctx, goqu.Ex{"i.owner_id": ownerID}, f)
}

func (r *repo) list(ctx context.Context, scope goqu.Ex, f ListFilter) ([]model.Booking, error) {
	ds := goqu.Dialect("postgres").
		From(goqu.T("bookings").As("b")).
		Join(goqu.T("items").As("i"), goqu.On(goqu.I("i.id").Eq(goqu.I("b.item_id")))).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("b.booker_id")))).
		Select("b.id", "b.start_date", "b.end_date", "b.status", "b.item_id", "b.booker_id",
			"i.name", "u.name").
		Where(scope)

	switch f.Scope {
	case ScopeCurrent:
		ds = ds.Where(
			goqu.I("b.start_date").Lte(f.Now),
			goqu.I("b.end_date").Gte(f.Now),
		)
	case ScopePast:
		ds = ds.Where(goqu.I("b.end_date").Lt(f.Now))
	case ScopeFuture:
		ds = ds.Where(goqu.I("b.start_date").Gt(f.Now))
	}
	if f.Status != "" {
		ds = ds.Where(goqu.Ex{"b.status": string(f.Status)})
	}

	sortCol := goqu.I("b." + f.SortBy)
	if f.Desc {
		ds = ds.Order(sortCol.Desc())
	} else {
		ds = ds.Order(sortCol.Asc())
	}

	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.Start, &b.End, &b.Status, &b.ItemID, &b.BookerID,
			&b.Item.Name, &b.Booker.Name); err != nil {
			return nil, err
		}
		b.Item.ID = b.ItemID
		b.Booker.ID = b.BookerID
		out = append(out, b)
	}
	return out, rows.Err()
}

// LastForItem is the latest approved booking already started at now.
func (r *repo) LastForItem(ctx context.Context, itemID int64, now time.Time) (*model.BookingInfo, error) {
	const q = `
		SELECT id, booker_id
		FROM bookings
		WHERE item_id = $1
		AND status = 'APPROVED'
		AND start_date <= $2
		ORDER BY start_date DESC
		LIMIT 1`
	return r.info(ctx, q, itemID, now)
}

// NextForItem is the earliest approved booking starting after now.
func (r *repo) NextForItem(ctx context.Context, itemID int64, now time.Time) (*model.BookingInfo, error) {
	const q = `
		SELECT id, booker_id
		FROM bookings
		WHERE item_id = $1
		AND status = 'APPROVED'
		AND start_date > $2
		ORDER BY start_date ASC
		LIMIT 1`
	return r.info(ctx, q, itemID, now)
}

func (r *repo) info(ctx context.Context, q string, itemID int64, now time.Time) (*model.BookingInfo, error) {
	bi := &model.BookingInfo{}
	err := r.db.Pool.QueryRow(ctx, q, itemID, now).Scan(&bi.ID, &bi.BookerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return bi, nil
}

func (r *repo) HasFinishedApproved(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1
			FROM bookings
			WHERE item_id = $1
			AND booker_id = $2
			AND status = 'APPROVED'
			AND end_date < $3
		)`
	var ok bool
	err := r.db.Pool.QueryRow(ctx, q, itemID, bookerID, now).Scan(&ok)
	return ok, err
}
