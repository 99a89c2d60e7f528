package dto

type FollowRequestDTO struct {
	FollowerID string `json:"followerId" validate:"required,objectid"`
	FolloweeID string `json:"followeeId" validate:"required,objectid"`
}
