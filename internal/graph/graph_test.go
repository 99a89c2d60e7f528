package graph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"socialgraph/internal/repository"
	"socialgraph/model"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	t     *testing.T
	store *repository.Store
	users map[string]model.User
}

func newFixture(t *testing.T, names ...string) *fixture {
	f := &fixture{t: t, store: repository.NewStore(), users: map[string]model.User{}}
	_ = f.store.Update(func(w *repository.Writer) error {
		for _, n := range names {
			u := model.User{ID: bson.NewObjectID(), Username: n, DisplayName: n}
			w.PutUser(u)
			f.users[n] = u
		}
		return nil
	})
	return f
}

func (f *fixture) id(name string) bson.ObjectID {
	u, ok := f.users[name]
	require.True(f.t, ok, "unknown user %s", name)
	return u.ID
}

func (f *fixture) follow(a, b string) {
	_ = f.store.Update(func(w *repository.Writer) error {
		w.AddFollow(model.Follow{FollowerID: f.id(a), FolloweeID: f.id(b)})
		return nil
	})
}

func (f *fixture) post(author string, at time.Duration) model.Post {
	p := model.Post{ID: bson.NewObjectID(), AuthorID: f.id(author), Content: author, CreatedAt: epoch.Add(at)}
	_ = f.store.Update(func(w *repository.Writer) error {
		w.PutPost(p)
		return nil
	})
	return p
}

func (f *fixture) view(fn func(src Source)) {
	_ = f.store.View(func(r *repository.Reader) error {
		fn(r)
		return nil
	})
}

func usernames(users []model.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Username)
	}
	return out
}

func TestFollowersAndFollowing(t *testing.T) {
	f := newFixture(t, "a", "b", "c")
	f.follow("a", "b")
	f.follow("c", "b")
	f.follow("b", "c")

	f.view(func(src Source) {
		assert.Equal(t, []string{"a", "c"}, usernames(FollowersOf(src, f.id("b"))))
		assert.Equal(t, []string{"c"}, usernames(FollowingOf(src, f.id("b"))))
		assert.Empty(t, FollowersOf(src, f.id("a")))

		followees := FolloweesOf(src, f.id("a"))
		assert.Len(t, followees, 1)
		assert.True(t, followees.Has(f.id("b")))
	})
}

func TestCountsMatchResolvedLists(t *testing.T) {
	f := newFixture(t, "a", "b", "c", "d")
	f.follow("a", "b")
	f.follow("a", "c")
	f.follow("b", "c")
	f.follow("d", "a")
	f.post("a", time.Minute)
	f.post("a", 2*time.Minute)

	f.view(func(src Source) {
		for _, u := range src.ListUsers() {
			assert.Equal(t, len(FollowersOf(src, u.ID)), FollowerCount(src, u.ID), u.Username)
			assert.Equal(t, len(FollowingOf(src, u.ID)), FollowingCount(src, u.ID), u.Username)
		}
		p := Profile(src, f.users["a"])
		assert.Equal(t, 1, p.FollowerCount)
		assert.Equal(t, 2, p.FollowingCount)
		assert.Equal(t, 2, p.PostCount)
	})
}

func TestDanglingReferencesAreFiltered(t *testing.T) {
	f := newFixture(t, "a")
	ghost := bson.NewObjectID()
	post := f.post("a", 0)
	_ = f.store.Update(func(w *repository.Writer) error {
		w.AddFollow(model.Follow{FollowerID: ghost, FolloweeID: f.id("a")})
		w.AddFollow(model.Follow{FollowerID: f.id("a"), FolloweeID: ghost})
		w.AddLike(model.Like{UserID: ghost, PostID: post.ID})
		return nil
	})

	f.view(func(src Source) {
		assert.Empty(t, FollowersOf(src, f.id("a")))
		assert.Empty(t, FollowingOf(src, f.id("a")))
		assert.Equal(t, 0, FollowerCount(src, f.id("a")))
		assert.Empty(t, LikersOf(src, post.ID))
	})
}

func TestLikersOf(t *testing.T) {
	f := newFixture(t, "a", "b", "c")
	post := f.post("a", 0)
	_ = f.store.Update(func(w *repository.Writer) error {
		w.AddLike(model.Like{UserID: f.id("c"), PostID: post.ID})
		w.AddLike(model.Like{UserID: f.id("b"), PostID: post.ID})
		return nil
	})

	f.view(func(src Source) {
		assert.Equal(t, []string{"c", "b"}, usernames(LikersOf(src, post.ID)))
	})
}
