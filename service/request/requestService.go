package requestsvc

import (
	"context"
	"strings"
	"time"

	"github.com/Nastia-N/shareit/model"
	"github.com/Nastia-N/shareit/util/apperr"
)

type Repo interface {
	Create(ctx context.Context, req *model.ItemRequest) error
	ByID(ctx context.Context, id int64) (*model.ItemRequest, error)
	ByRequestor(ctx context.Context, requestorID int64) ([]model.ItemRequest, error)
	ByOtherRequestors(ctx context.Context, userID int64, from, size int) ([]model.ItemRequest, error)
}

type UserRepo interface {
	ByID(ctx context.Context, id int64) (*model.User, error)
}

type ItemRepo interface {
	ByRequest(ctx context.Context, requestID int64) ([]model.Item, error)
}

type Service interface {
	Create(ctx context.Context, requestorID int64, description string) (*model.ItemRequest, error)
	ListOwn(ctx context.Context, requestorID int64) ([]model.ItemRequest, error)
	ListOthers(ctx context.Context, userID int64, from, size int) ([]model.ItemRequest, error)
	GetByID(ctx context.Context, requestID, userID int64) (*model.ItemRequest, error)
}

type service struct {
	r     Repo
	users UserRepo
	items ItemRepo
}

func New(r Repo, users UserRepo, items ItemRepo) Service {
	return &service{r: r, users: users, items: items}
}

func (s *service) Create(ctx context.Context, requestorID int64, description string) (*model.ItemRequest, error) {
	u, err := s.users.ByID(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}

	if strings.TrimSpace(description) == "" {
		return nil, apperr.Validation("request description must not be blank")
	}

	req := &model.ItemRequest{
		Description: description,
		RequestorID: requestorID,
		Created:     time.Now(),
		Items:       []model.Item{},
	}
	if err := s.r.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *service) ListOwn(ctx context.Context, requestorID int64) ([]model.ItemRequest, error) {
	u, err := s.users.ByID(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}

	reqs, err := s.r.ByRequestor(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, reqs)
}

func (s *service) ListOthers(ctx context.Context, userID int64, from, size int) ([]model.ItemRequest, error) {
	u, err := s.users.ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}

	if from < 0 {
		return nil, apperr.Validation("'from' must not be negative")
	}
	if size <= 0 {
		return nil, apperr.Validation("'size' must be positive")
	}

	reqs, err := s.r.ByOtherRequestors(ctx, userID, from, size)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, reqs)
}

func (s *service) GetByID(ctx context.Context, requestID, userID int64) (*model.ItemRequest, error) {
	req, err := s.r.ByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, apperr.NotFound("request not found")
	}

	items, err := s.items.ByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	req.Items = items
	return req, nil
}

func (s *service) attachItems(ctx context.Context, reqs []model.ItemRequest) ([]model.ItemRequest, error) {
	out := make([]model.ItemRequest, 0, len(reqs))
	for _, req := range reqs {
		items, err := s.items.ByRequest(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []model.Item{}
		}
		req.Items = items
		out = append(out, req)
	}
	return out, nil
}
