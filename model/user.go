package model

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserPatch carries the partial-update payload; nil means "leave as is".
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserShort is the nested user shape inside booking responses.
type UserShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}
