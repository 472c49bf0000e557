package itemrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Nastia-N/shareit/model"
	"github.com/Nastia-N/shareit/util/database"
)

type Repo interface {
	Create(ctx context.Context, it *model.Item) error
	Update(ctx context.Context, it *model.Item) error
	ByID(ctx context.Context, id int64) (*model.Item, error)
	ByOwner(ctx context.Context, ownerID int64) ([]model.Item, error)
	ByRequest(ctx context.Context, requestID int64) ([]model.Item, error)
	Search(ctx context.Context, text string) ([]model.Item, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, it *model.Item) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO items(name, description, available, owner_id, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		it.Name, it.Description, it.Available, it.OwnerID, it.RequestID,
	).Scan(&it.ID)
}

func (r *repo) Update(ctx context.Context, it *model.Item) error {
	_, err := r.db.Pool.Exec(ctx, `
		UPDATE items
		SET name = $2, description = $3, available = $4
		WHERE id = $1`,
		it.ID, it.Name, it.Description, it.Available,
	)
	return err
}

// ByID returns (nil, nil) when no such item exists.
func (r *repo) ByID(ctx context.Context, id int64) (*model.Item, error) {
	it := &model.Item{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE id = $1`,
		id,
	).Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &it.RequestID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *repo) ByOwner(ctx context.Context, ownerID int64) ([]model.Item, error) {
	const q = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE owner_id = $1
		ORDER BY id`
	return r.list(ctx, q, ownerID)
}

func (r *repo) ByRequest(ctx context.Context, requestID int64) ([]model.Item, error) {
	const q = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE request_id = $1
		ORDER BY id`
	return r.list(ctx, q, requestID)
}

// Search matches available items whose name or description contains the
// text, case-insensitive. Blank text short-circuits to an empty result.
func (r *repo) Search(ctx context.Context, text string) ([]model.Item, error) {
	const q = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE available = TRUE
		AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY id`
	return r.list(ctx, q, text)
}

func (r *repo) list(ctx context.Context, q string, args ...any) ([]model.Item, error) {
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Item
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &it.RequestID); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
