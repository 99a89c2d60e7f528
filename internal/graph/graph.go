// Package graph derives relationships from the raw follow and like edges of
// a store snapshot. Every function is pure and reads only through Source.
package graph

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"socialgraph/model"
)

// Source is a read-only snapshot. *repository.Reader implements it.
type Source interface {
	GetUser(id bson.ObjectID) (model.User, bool)
	ListUsers() []model.User
	ListPosts() []model.Post
	ListFollows() []model.Follow
	ListLikes() []model.Like
}

// Set is a set of user ids.
type Set map[bson.ObjectID]struct{}

func (s Set) Has(id bson.ObjectID) bool {
	_, ok := s[id]
	return ok
}

// FolloweesOf returns every user id that userID follows.
func FolloweesOf(src Source, userID bson.ObjectID) Set {
	out := Set{}
	for _, f := range src.ListFollows() {
		if f.FollowerID == userID {
			out[f.FolloweeID] = struct{}{}
		}
	}
	return out
}

// FollowersOf resolves the users following userID, in edge order. Ids that
// no longer resolve are skipped.
func FollowersOf(src Source, userID bson.ObjectID) []model.User {
	out := []model.User{}
	for _, f := range src.ListFollows() {
		if f.FolloweeID != userID {
			continue
		}
		if u, ok := src.GetUser(f.FollowerID); ok {
			out = append(out, u)
		}
	}
	return out
}

// FollowingOf resolves the users userID follows, in edge order.
func FollowingOf(src Source, userID bson.ObjectID) []model.User {
	out := []model.User{}
	for _, f := range src.ListFollows() {
		if f.FollowerID != userID {
			continue
		}
		if u, ok := src.GetUser(f.FolloweeID); ok {
			out = append(out, u)
		}
	}
	return out
}

func FollowerCount(src Source, userID bson.ObjectID) int {
	return len(FollowersOf(src, userID))
}

func FollowingCount(src Source, userID bson.ObjectID) int {
	return len(FollowingOf(src, userID))
}

func PostCount(src Source, userID bson.ObjectID) int {
	n := 0
	for _, p := range src.ListPosts() {
		if p.AuthorID == userID {
			n++
		}
	}
	return n
}

// LikersOf resolves the users who liked postID, in edge order.
func LikersOf(src Source, postID bson.ObjectID) []model.User {
	out := []model.User{}
	for _, l := range src.ListLikes() {
		if l.PostID != postID {
			continue
		}
		if u, ok := src.GetUser(l.UserID); ok {
			out = append(out, u)
		}
	}
	return out
}

// Profile bundles a user with its counters.
func Profile(src Source, u model.User) model.UserProfile {
	return model.UserProfile{
		User:           u,
		FollowerCount:  FollowerCount(src, u.ID),
		FollowingCount: FollowingCount(src, u.ID),
		PostCount:      PostCount(src, u.ID),
	}
}
