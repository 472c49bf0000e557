package bookingsvc

import (
	"context"
	"strings"
	"time"

	bookingrepo "github.com/Nastia-N/shareit/repository/booking"

	"github.com/Nastia-N/shareit/model"
	"github.com/Nastia-N/shareit/util/apperr"
)

type ListFilter = bookingrepo.ListFilter

type Repo interface {
	Create(ctx context.Context, b *model.Booking) error
	ByID(ctx context.Context, id int64) (*model.Booking, error)
	SetStatusIfWaiting(ctx context.Context, id int64, status model.BookingStatus) (bool, error)
	ListForBooker(ctx context.Context, bookerID int64, f ListFilter) ([]model.Booking, error)
	ListForOwner(ctx context.Context, ownerID int64, f ListFilter) ([]model.Booking, error)
}

type ItemRepo interface {
	ByID(ctx context.Context, id int64) (*model.Item, error)
}

type UserRepo interface {
	ByID(ctx context.Context, id int64) (*model.User, error)
}

type Service interface {
	Create(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*model.Booking, error)
	Approve(ctx context.Context, bookingID, ownerID int64, approved bool) (*model.Booking, error)
	GetByID(ctx context.Context, bookingID, callerID int64) (*model.Booking, error)
	ListForBooker(ctx context.Context, userID int64, state, sortBy, direction string) ([]model.Booking, error)
	ListForOwner(ctx context.Context, ownerID int64, state, sortBy, direction string) ([]model.Booking, error)
}

type service struct {
	r     Repo
	items ItemRepo
	users UserRepo
}

func New(r Repo, items ItemRepo, users UserRepo) Service {
	return &service{r: r, items: items, users: users}
}

func (s *service) Create(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*model.Booking, error) {
	booker, err := s.users.ByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	if booker == nil {
		return nil, apperr.NotFound("user not found")
	}

	item, err := s.items.ByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFound("item not found")
	}

	if !item.Available {
		return nil, apperr.Validation("item is not available for booking")
	}
	if item.OwnerID == bookerID {
		return nil, apperr.Validation("owner cannot book their own item")
	}
	if !end.After(start) {
		return nil, apperr.Validation("booking end must be after start")
	}

	b := &model.Booking{
		Start:    start,
		End:      end,
		Status:   model.BookingWaiting,
		ItemID:   itemID,
		BookerID: bookerID,
		Item:     model.ItemShort{ID: item.ID, Name: item.Name},
		Booker:   model.UserShort{ID: booker.ID, Name: booker.Name},
	}
	if err := s.r.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Approve(ctx context.Context, bookingID, ownerID int64, approved bool) (*model.Booking, error) {
	b, err := s.r.ByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperr.NotFound("booking not found")
	}

	item, err := s.items.ByID(ctx, b.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.OwnerID != ownerID {
		return nil, apperr.Validation("only the item owner can approve the booking")
	}
	if b.Status != model.BookingWaiting {
		return nil, apperr.Validation("booking status cannot be changed")
	}

	status := model.BookingRejected
	if approved {
		status = model.BookingApproved
	}

	// Guarded update; a concurrent approval that already left WAITING makes
	// this a no-op and the call fails like any other late transition.
	changed, err := s.r.SetStatusIfWaiting(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, apperr.Validation("booking status cannot be changed")
	}

	b.Status = status
	return b, nil
}

func (s *service) GetByID(ctx context.Context, bookingID, callerID int64) (*model.Booking, error) {
	b, err := s.r.ByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperr.NotFound("booking not found")
	}
	if b.BookerID == callerID {
		return b, nil
	}

	item, err := s.items.ByID(ctx, b.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.OwnerID != callerID {
		return nil, apperr.Forbidden("access to booking is forbidden")
	}
	return b, nil
}

func (s *service) ListForBooker(ctx context.Context, userID int64, state, sortBy, direction string) ([]model.Booking, error) {
	f, err := s.buildFilter(ctx, userID, state, sortBy, direction)
	if err != nil {
		return nil, err
	}
	return s.r.ListForBooker(ctx, userID, f)
}

func (s *service) ListForOwner(ctx context.Context, ownerID int64, state, sortBy, direction string) ([]model.Booking, error) {
	f, err := s.buildFilter(ctx, ownerID, state, sortBy, direction)
	if err != nil {
		return nil, err
	}
	return s.r.ListForOwner(ctx, ownerID, f)
}

func (s *service) buildFilter(ctx context.Context, userID int64, state, sortBy, direction string) (ListFilter, error) {
	u, err := s.users.ByID(ctx, userID)
	if err != nil {
		return ListFilter{}, err
	}
	if u == nil {
		return ListFilter{}, apperr.NotFound("user not found")
	}

	f, err := ParseState(state)
	if err != nil {
		return ListFilter{}, err
	}
	f.Now = time.Now()

	f.SortBy, f.Desc, err = parseSort(sortBy, direction)
	if err != nil {
		return ListFilter{}, err
	}
	return f, nil
}

// ParseState maps a state token onto the repository filter. APPROVED is an
// exact status match like WAITING and REJECTED.
func ParseState(state string) (ListFilter, error) {
	switch state {
	case "", "ALL":
		return ListFilter{Scope: bookingrepo.ScopeAll}, nil
	case "CURRENT":
		return ListFilter{Scope: bookingrepo.ScopeCurrent}, nil
	case "PAST":
		return ListFilter{Scope: bookingrepo.ScopePast}, nil
	case "FUTURE":
		return ListFilter{Scope: bookingrepo.ScopeFuture}, nil
	case "WAITING":
		return ListFilter{Status: model.BookingWaiting}, nil
	case "APPROVED":
		return ListFilter{Status: model.BookingApproved}, nil
	case "REJECTED":
		return ListFilter{Status: model.BookingRejected}, nil
	default:
		return ListFilter{}, apperr.Validation("Unknown state: " + state)
	}
}

var sortColumns = map[string]string{
	"":       "start_date",
	"start":  "start_date",
	"end":    "end_date",
	"status": "status",
	"id":     "id",
}

func parseSort(sortBy, direction string) (string, bool, error) {
	col, ok := sortColumns[sortBy]
	if !ok {
		return "", false, apperr.Validation("unknown sort field: " + sortBy)
	}
	switch strings.ToUpper(direction) {
	case "", "DESC":
		return col, true, nil
	case "ASC":
		return col, false, nil
	default:
		return "", false, apperr.Validation("unknown sort direction: " + direction)
	}
}
