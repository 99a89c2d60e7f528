package dto

// ===== Request =====
type CreatePostDTO struct {
	AuthorID  string  `json:"authorId"  validate:"required,objectid"`
	Content   string  `json:"content"   validate:"required,max=5000"`
	MediaType string  `json:"mediaType" validate:"omitempty,oneof=none image video"`
	MediaURL  *string `json:"mediaUrl"`
}
