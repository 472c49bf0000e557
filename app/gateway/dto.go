package gateway

import "time"

// The gateway rechecks payloads before a call ever reaches the backend;
// these DTOs mirror the backend's but are bound and validated here.

type CreateBookingReq struct {
	ItemID int64      `json:"itemId" validate:"required,gt=0"`
	Start  *time.Time `json:"start" validate:"required"`
	End    *time.Time `json:"end" validate:"required"`
}

type CreateItemReq struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId"`
}

type UpdateItemReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateCommentReq struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}

type CreateRequestReq struct {
	Description string `json:"description" validate:"required"`
}

type CreateUserReq struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateUserReq struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
}
