package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type MediaType string

const (
	MediaNone  MediaType = "none"
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

type Post struct {
	ID         bson.ObjectID `json:"id"         bson:"_id" swaggertype:"string"`
	AuthorID   bson.ObjectID `json:"authorId"   bson:"author_id" swaggertype:"string"`
	Content    string        `json:"content"    bson:"content"`
	MediaType  MediaType     `json:"mediaType"  bson:"media_type"`
	MediaURL   *string       `json:"mediaUrl"   bson:"media_url,omitempty"`
	Hashtags   []string      `json:"hashtags"   bson:"hashtags"`
	CreatedAt  time.Time     `json:"createdAt"  bson:"created_at"`
	LikesCount int           `json:"likesCount" bson:"likes_count"`
}

// FeedPost is a post with its author resolved. Author is nil when the
// author record no longer exists.
type FeedPost struct {
	Post
	Author *User `json:"author"`
}
