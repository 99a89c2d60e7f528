package graph

import (
	"bytes"
	"slices"

	"go.mongodb.org/mongo-driver/v2/bson"

	"socialgraph/model"
)

// Feed returns the posts of everyone userID follows, newest first. Posts
// with the same timestamp are ordered by id, highest first.
func Feed(src Source, userID bson.ObjectID) []model.FeedPost {
	followees := FolloweesOf(src, userID)

	var posts []model.Post
	for _, p := range src.ListPosts() {
		if followees.Has(p.AuthorID) {
			posts = append(posts, p)
		}
	}
	SortNewestFirst(posts)

	out := make([]model.FeedPost, 0, len(posts))
	for _, p := range posts {
		item := model.FeedPost{Post: p}
		if u, ok := src.GetUser(p.AuthorID); ok {
			item.Author = &u
		}
		out = append(out, item)
	}
	return out
}

// SortNewestFirst orders posts by createdAt descending, then id descending.
func SortNewestFirst(posts []model.Post) {
	slices.SortFunc(posts, func(a, b model.Post) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return bytes.Compare(b.ID[:], a.ID[:])
	})
}
