package itemsvc

import (
	"context"
	"strings"
	"time"

	"github.com/Nastia-N/shareit/model"
	"github.com/Nastia-N/shareit/util/apperr"
)

type Repo interface {
	Create(ctx context.Context, it *model.Item) error
	Update(ctx context.Context, it *model.Item) error
	ByID(ctx context.Context, id int64) (*model.Item, error)
	ByOwner(ctx context.Context, ownerID int64) ([]model.Item, error)
	Search(ctx context.Context, text string) ([]model.Item, error)
}

type UserRepo interface {
	ByID(ctx context.Context, id int64) (*model.User, error)
}

type RequestRepo interface {
	ByID(ctx context.Context, id int64) (*model.ItemRequest, error)
}

type BookingRepo interface {
	LastForItem(ctx context.Context, itemID int64, now time.Time) (*model.BookingInfo, error)
	NextForItem(ctx context.Context, itemID int64, now time.Time) (*model.BookingInfo, error)
	HasFinishedApproved(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)
}

type CommentRepo interface {
	Create(ctx context.Context, c *model.Comment) error
	ByItem(ctx context.Context, itemID int64) ([]model.Comment, error)
}

type Service interface {
	Create(ctx context.Context, ownerID int64, name, description string, available *bool, requestID *int64) (*model.Item, error)
	Update(ctx context.Context, itemID, ownerID int64, patch model.ItemPatch) (*model.Item, error)
	GetByID(ctx context.Context, itemID, callerID int64) (*model.ItemWithBookings, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.ItemForOwner, error)
	Search(ctx context.Context, text string) ([]model.Item, error)
	AddComment(ctx context.Context, itemID, authorID int64, text string) (*model.Comment, error)
}

type service struct {
	r        Repo
	users    UserRepo
	requests RequestRepo
	bookings BookingRepo
	comments CommentRepo
}

func New(r Repo, users UserRepo, requests RequestRepo, bookings BookingRepo, comments CommentRepo) Service {
	return &service{r: r, users: users, requests: requests, bookings: bookings, comments: comments}
}

func (s *service) Create(ctx context.Context, ownerID int64, name, description string, available *bool, requestID *int64) (*model.Item, error) {
	owner, err := s.users.ByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperr.NotFound("user not found")
	}

	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("item name must not be blank")
	}
	if strings.TrimSpace(description) == "" {
		return nil, apperr.Validation("item description must not be blank")
	}
	if available == nil {
		return nil, apperr.Validation("item availability must be provided")
	}

	if requestID != nil {
		req, err := s.requests.ByID(ctx, *requestID)
		if err != nil {
			return nil, err
		}
		if req == nil {
			return nil, apperr.NotFound("request not found")
		}
	}

	it := &model.Item{
		Name:        name,
		Description: description,
		Available:   *available,
		OwnerID:     ownerID,
		RequestID:   requestID,
	}
	if err := s.r.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Update(ctx context.Context, itemID, ownerID int64, patch model.ItemPatch) (*model.Item, error) {
	it, err := s.r.ByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, apperr.NotFound("item not found")
	}
	if it.OwnerID != ownerID {
		return nil, apperr.Forbidden("only the owner can update the item")
	}

	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	if patch.Available != nil {
		it.Available = *patch.Available
	}

	if err := s.r.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) GetByID(ctx context.Context, itemID, callerID int64) (*model.ItemWithBookings, error) {
	it, err := s.r.ByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, apperr.NotFound("item not found")
	}

	comments, err := s.comments.ByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []model.Comment{}
	}

	out := &model.ItemWithBookings{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
		Comments:    comments,
	}

	// Booking details are visible to the owner only.
	if callerID == it.OwnerID {
		now := time.Now()
		if out.LastBooking, err = s.bookings.LastForItem(ctx, itemID, now); err != nil {
			return nil, err
		}
		if out.NextBooking, err = s.bookings.NextForItem(ctx, itemID, now); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64) ([]model.ItemForOwner, error) {
	owner, err := s.users.ByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperr.NotFound("user not found")
	}

	items, err := s.r.ByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]model.ItemForOwner, 0, len(items))
	for _, it := range items {
		row := model.ItemForOwner{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
		}
		if row.LastBooking, err = s.bookings.LastForItem(ctx, it.ID, now); err != nil {
			return nil, err
		}
		if row.NextBooking, err = s.bookings.NextForItem(ctx, it.ID, now); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *service) Search(ctx context.Context, text string) ([]model.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []model.Item{}, nil
	}
	items, err := s.r.Search(ctx, text)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

func (s *service) AddComment(ctx context.Context, itemID, authorID int64, text string) (*model.Comment, error) {
	author, err := s.users.ByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, apperr.NotFound("user not found")
	}

	it, err := s.r.ByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, apperr.NotFound("item not found")
	}

	if strings.TrimSpace(text) == "" {
		return nil, apperr.Validation("comment text must not be blank")
	}

	now := time.Now()
	ok, err := s.bookings.HasFinishedApproved(ctx, itemID, authorID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Validation("user has no finished booking of the item")
	}

	c := &model.Comment{
		Text:       text,
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Created:    now,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
