package requestsvc_test

import (
	"context"
	"testing"
	"time"

	requestsvc "github.com/Nastia-N/shareit/service/request"

	"github.com/Nastia-N/shareit/model"
	"github.com/Nastia-N/shareit/util/apperr"
)

type repoMock struct {
	createFn   func(ctx context.Context, req *model.ItemRequest) error
	byIDFn     func(ctx context.Context, id int64) (*model.ItemRequest, error)
	byReqFn    func(ctx context.Context, requestorID int64) ([]model.ItemRequest, error)
	byOthersFn func(ctx context.Context, userID int64, from, size int) ([]model.ItemRequest, error)
}

func (m *repoMock) Create(ctx context.Context, req *model.ItemRequest) error {
	return m.createFn(ctx, req)
}
func (m *repoMock) ByID(ctx context.Context, id int64) (*model.ItemRequest, error) {
	return m.byIDFn(ctx, id)
}
func (m *repoMock) ByRequestor(ctx context.Context, requestorID int64) ([]model.ItemRequest, error) {
	return m.byReqFn(ctx, requestorID)
}
func (m *repoMock) ByOtherRequestors(ctx context.Context, userID int64, from, size int) ([]model.ItemRequest, error) {
	return m.byOthersFn(ctx, userID, from, size)
}

type usersMock struct{ users map[int64]*model.User }

func (m *usersMock) ByID(ctx context.Context, id int64) (*model.User, error) {
	return m.users[id], nil
}

type itemsMock struct{ byRequest map[int64][]model.Item }

func (m *itemsMock) ByRequest(ctx context.Context, requestID int64) ([]model.Item, error) {
	return m.byRequest[requestID], nil
}

func newService(r *repoMock, items *itemsMock) requestsvc.Service {
	users := &usersMock{users: map[int64]*model.User{
		5: {ID: 5, Name: "alice"},
		7: {ID: 7, Name: "bob"},
	}}
	if items == nil {
		items = &itemsMock{byRequest: map[int64][]model.Item{}}
	}
	return requestsvc.New(r, users, items)
}

func TestCreate(t *testing.T) {
	r := &repoMock{createFn: func(ctx context.Context, req *model.ItemRequest) error {
		req.ID = 3
		return nil
	}}
	s := newService(r, nil)
	ctx := context.Background()

	if _, err := s.Create(ctx, 99, "need a drill"); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("missing user: got %v; want NotFound", err)
	}
	if _, err := s.Create(ctx, 5, "   "); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("blank description: got %v; want Validation", err)
	}

	req, err := s.Create(ctx, 5, "need a drill")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if req.ID != 3 || req.RequestorID != 5 || req.Created.IsZero() {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.Items == nil || len(req.Items) != 0 {
		t.Fatalf("new request must carry an empty item list: %+v", req.Items)
	}
}

func TestListOthers_Pagination(t *testing.T) {
	var gotUser int64
	var gotFrom, gotSize int
	r := &repoMock{
		byOthersFn: func(ctx context.Context, userID int64, from, size int) ([]model.ItemRequest, error) {
			gotUser, gotFrom, gotSize = userID, from, size
			return []model.ItemRequest{{ID: 3, RequestorID: 7, Created: time.Now()}}, nil
		},
	}
	items := &itemsMock{byRequest: map[int64][]model.Item{
		3: {{ID: 42, Name: "drill", RequestID: ptr(int64(3))}},
	}}
	s := newService(r, items)
	ctx := context.Background()

	if _, err := s.ListOthers(ctx, 5, -1, 10); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("negative from: got %v; want Validation", err)
	}
	if _, err := s.ListOthers(ctx, 5, 0, 0); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("zero size: got %v; want Validation", err)
	}

	rows, err := s.ListOthers(ctx, 5, 20, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotUser != 5 || gotFrom != 20 || gotSize != 10 {
		t.Fatalf("repo called with user=%d from=%d size=%d", gotUser, gotFrom, gotSize)
	}
	if len(rows) != 1 || len(rows[0].Items) != 1 || rows[0].Items[0].ID != 42 {
		t.Fatalf("items not attached: %+v", rows)
	}
}

func TestGetByID(t *testing.T) {
	r := &repoMock{byIDFn: func(ctx context.Context, id int64) (*model.ItemRequest, error) {
		if id != 3 {
			return nil, nil
		}
		return &model.ItemRequest{ID: 3, Description: "need a drill", RequestorID: 7}, nil
	}}
	s := newService(r, nil)
	ctx := context.Background()

	if _, err := s.GetByID(ctx, 99, 5); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("missing request: got %v; want NotFound", err)
	}

	req, err := s.GetByID(ctx, 3, 5)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if req.Items == nil {
		t.Fatal("items must be an empty list, not null")
	}
}

func TestListOwn(t *testing.T) {
	r := &repoMock{byReqFn: func(ctx context.Context, requestorID int64) ([]model.ItemRequest, error) {
		return []model.ItemRequest{
			{ID: 4, RequestorID: requestorID, Created: time.Now()},
			{ID: 3, RequestorID: requestorID, Created: time.Now().Add(-time.Hour)},
		}, nil
	}}
	s := newService(r, nil)

	rows, err := s.ListOwn(context.Background(), 5)
	if err != nil {
		t.Fatalf("list own: %v", err)
	}
	if len(rows) != 2 || rows[0].ID != 4 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	for _, row := range rows {
		if row.Items == nil {
			t.Fatalf("request %d items must not be null", row.ID)
		}
	}
}

func ptr[T any](v T) *T { return &v }
