package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Like struct {
	UserID    bson.ObjectID `json:"userId"    bson:"user_id" swaggertype:"string"`
	PostID    bson.ObjectID `json:"postId"    bson:"post_id" swaggertype:"string"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
