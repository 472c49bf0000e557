package model

type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"-"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// ItemPatch carries the partial-update payload; nil means "leave as is".
type ItemPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// ItemShort is the nested item shape inside booking responses.
type ItemShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ItemWithBookings is the owner-facing item view: last/next booking are
// filled only when the caller owns the item.
type ItemWithBookings struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Available   bool         `json:"available"`
	RequestID   *int64       `json:"requestId,omitempty"`
	LastBooking *BookingInfo `json:"lastBooking"`
	NextBooking *BookingInfo `json:"nextBooking"`
	Comments    []Comment    `json:"comments"`
}

// ItemForOwner is the list-by-owner row: bookings, no comments.
type ItemForOwner struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Available   bool         `json:"available"`
	LastBooking *BookingInfo `json:"lastBooking"`
	NextBooking *BookingInfo `json:"nextBooking"`
}
