package item

type CreateItemReq struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId"`
}

type CreateCommentReq struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}
