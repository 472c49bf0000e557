package usersvc

import (
	"context"
	"strings"

	"github.com/Nastia-N/shareit/model"
	"github.com/Nastia-N/shareit/util/apperr"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	ByID(ctx context.Context, id int64) (*model.User, error)
	ByEmail(ctx context.Context, email string) (*model.User, error)
	All(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type Service interface {
	Create(ctx context.Context, name, email string) (*model.User, error)
	Update(ctx context.Context, userID int64, patch model.UserPatch) (*model.User, error)
	GetByID(ctx context.Context, userID int64) (*model.User, error)
	GetAll(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, userID int64) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, name, email string) (*model.User, error) {
	existing, err := s.r.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("user with email " + email + " already exists")
	}

	u := &model.User{Name: name, Email: email}
	if err := s.r.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Update(ctx context.Context, userID int64, patch model.UserPatch) (*model.User, error) {
	u, err := s.r.ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}

	updated := false

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, apperr.Validation("name must not be blank")
		}
		u.Name = *patch.Name
		updated = true
	}

	if patch.Email != nil {
		if strings.TrimSpace(*patch.Email) == "" {
			return nil, apperr.Validation("email must not be blank")
		}
		if *patch.Email != u.Email {
			other, err := s.r.ByEmail(ctx, *patch.Email)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != userID {
				return nil, apperr.Conflict("email " + *patch.Email + " is already in use")
			}
			u.Email = *patch.Email
			updated = true
		}
	}

	if !updated {
		return nil, apperr.Validation("no fields to update")
	}

	if err := s.r.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) GetByID(ctx context.Context, userID int64) (*model.User, error) {
	u, err := s.r.ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	return u, nil
}

func (s *service) GetAll(ctx context.Context) ([]model.User, error) {
	users, err := s.r.All(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

func (s *service) Delete(ctx context.Context, userID int64) error {
	deleted, err := s.r.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("user not found")
	}
	return nil
}
