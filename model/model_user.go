package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID            bson.ObjectID `json:"id"                      bson:"_id" swaggertype:"string"`
	Username      string        `json:"username"                bson:"username"`
	DisplayName   string        `json:"displayName"             bson:"display_name"`
	Bio           string        `json:"bio"                     bson:"bio"`
	ProfilePicURL *string       `json:"profilePicUrl,omitempty" bson:"profile_pic_url,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"               bson:"created_at"`
}

// UserProfile is a user with its graph counters.
type UserProfile struct {
	User
	FollowerCount  int `json:"followerCount"`
	FollowingCount int `json:"followingCount"`
	PostCount      int `json:"postCount"`
}

// Suggestion is a user ranked by the number of 2-hop paths leading to it.
type Suggestion struct {
	User
	MutualCount int `json:"mutualCount"`
}
