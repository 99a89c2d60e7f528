package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Follow is a directed edge: FollowerID sees FolloweeID's posts in their feed.
type Follow struct {
	FollowerID bson.ObjectID `json:"followerId" bson:"follower_id" swaggertype:"string"`
	FolloweeID bson.ObjectID `json:"followeeId" bson:"followee_id" swaggertype:"string"`
	CreatedAt  time.Time     `json:"createdAt"  bson:"created_at"`
}
