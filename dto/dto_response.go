package dto

// ===== Error Response =====
type ErrorResponse struct {
	Error string `json:"error" example:"user not found"`
}

type MessageResponse struct {
	Message string `json:"message"      example:"deleted"`
	ID      string `json:"id,omitempty" example:"66c6248b98c56c39f018e7d2"`
}

type SeedResponse struct {
	Users   int `json:"users"`
	Posts   int `json:"posts"`
	Follows int `json:"follows"`
	Likes   int `json:"likes"`
}
