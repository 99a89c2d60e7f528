package dto

type LikeRequestDTO struct {
	UserID string `json:"userId" validate:"required,objectid"`
	PostID string `json:"postId" validate:"required,objectid"`
}

type LikeResponse struct {
	PostID     string `json:"postId"     example:"66c6248b98c56c39f018e7d2"`
	LikesCount int    `json:"likesCount" example:"1"`
	IsLiked    bool   `json:"isLiked"    example:"true"`
}
