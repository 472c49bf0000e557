package requestrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Nastia-N/shareit/model"
	"github.com/Nastia-N/shareit/util/database"
)

type Repo interface {
	Create(ctx context.Context, req *model.ItemRequest) error
	ByID(ctx context.Context, id int64) (*model.ItemRequest, error)
	ByRequestor(ctx context.Context, requestorID int64) ([]model.ItemRequest, error)
	ByOtherRequestors(ctx context.Context, userID int64, from, size int) ([]model.ItemRequest, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, req *model.ItemRequest) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO requests(description, requestor_id, created)
		VALUES ($1, $2, $3)
		RETURNING id`,
		req.Description, req.RequestorID, req.Created,
	).Scan(&req.ID)
}

// ByID returns (nil, nil) when no such request exists.
func (r *repo) ByID(ctx context.Context, id int64) (*model.ItemRequest, error) {
	req := &model.ItemRequest{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, description, requestor_id, created
		FROM requests
		WHERE id = $1`,
		id,
	).Scan(&req.ID, &req.Description, &req.RequestorID, &req.Created)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *repo) ByRequestor(ctx context.Context, requestorID int64) ([]model.ItemRequest, error) {
	const q = `
		SELECT id, description, requestor_id, created
		FROM requests
		WHERE requestor_id = $1
		ORDER BY created DESC, id DESC`
	return r.list(ctx, q, requestorID)
}

func (r *repo) ByOtherRequestors(ctx context.Context, userID int64, from, size int) ([]model.ItemRequest, error) {
	const q = `
		SELECT id, description, requestor_id, created
		FROM requests
		WHERE requestor_id <> $1
		ORDER BY created DESC, id DESC
		OFFSET $2 LIMIT $3`
	return r.list(ctx, q, userID, from, size)
}

func (r *repo) list(ctx context.Context, q string, args ...any) ([]model.ItemRequest, error) {
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ItemRequest
	for rows.Next() {
		var req model.ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequestorID, &req.Created); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}
