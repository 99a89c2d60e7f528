package repository

import (
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/text/cases"

	"socialgraph/model"
)

type followKey struct {
	follower bson.ObjectID
	followee bson.ObjectID
}

type likeKey struct {
	user bson.ObjectID
	post bson.ObjectID
}

// tables holds every collection. Slices keep insertion order, maps index them.
type tables struct {
	users     map[bson.ObjectID]model.User
	userOrder []bson.ObjectID
	usernames map[string]bson.ObjectID
	posts     map[bson.ObjectID]*model.Post
	postOrder []bson.ObjectID
	follows   []model.Follow
	followSet map[followKey]struct{}
	likes     []model.Like
	likeSet   map[likeKey]struct{}
}

func newTables() *tables {
	return &tables{
		users:     map[bson.ObjectID]model.User{},
		usernames: map[string]bson.ObjectID{},
		posts:     map[bson.ObjectID]*model.Post{},
		followSet: map[followKey]struct{}{},
		likeSet:   map[likeKey]struct{}{},
	}
}

// Store is the in-memory relation store. It never checks referential
// integrity; callers do that inside Update before writing.
type Store struct {
	mu sync.RWMutex
	t  *tables
}

func NewStore() *Store {
	return &Store{t: newTables()}
}

// View runs fn with a consistent read-only snapshot.
func (s *Store) View(fn func(r *Reader) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&Reader{t: s.t})
}

// Update runs fn with exclusive access. Nothing else reads or writes the
// store until fn returns.
func (s *Store) Update(fn func(w *Writer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Writer{Reader{t: s.t}})
}

// Reset drops every collection.
func (s *Store) Reset() {
	s.mu.Lock()
	s.t = newTables()
	s.mu.Unlock()
}

// ReplaceWith moves every collection of src into s in one step. Readers of s
// see either the old contents or all of src's. src is left empty.
func (s *Store) ReplaceWith(src *Store) {
	src.mu.Lock()
	t := src.t
	src.t = newTables()
	src.mu.Unlock()

	s.mu.Lock()
	s.t = t
	s.mu.Unlock()
}

// Reader exposes lookups. Returned values are copies.
type Reader struct {
	t *tables
}

// usernameKey applies full Unicode case folding, so "STRASSE" and "straße"
// collide.
func usernameKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func (r *Reader) GetUser(id bson.ObjectID) (model.User, bool) {
	u, ok := r.t.users[id]
	return u, ok
}

// UserByUsername matches case-insensitively.
func (r *Reader) UserByUsername(name string) (model.User, bool) {
	id, ok := r.t.usernames[usernameKey(name)]
	if !ok {
		return model.User{}, false
	}
	return r.GetUser(id)
}

func (r *Reader) ListUsers() []model.User {
	out := make([]model.User, 0, len(r.t.userOrder))
	for _, id := range r.t.userOrder {
		out = append(out, r.t.users[id])
	}
	return out
}

func (r *Reader) GetPost(id bson.ObjectID) (model.Post, bool) {
	p, ok := r.t.posts[id]
	if !ok {
		return model.Post{}, false
	}
	return clonePost(p), true
}

func (r *Reader) ListPosts() []model.Post {
	out := make([]model.Post, 0, len(r.t.postOrder))
	for _, id := range r.t.postOrder {
		out = append(out, clonePost(r.t.posts[id]))
	}
	return out
}

func (r *Reader) HasFollow(followerID, followeeID bson.ObjectID) bool {
	_, ok := r.t.followSet[followKey{followerID, followeeID}]
	return ok
}

func (r *Reader) ListFollows() []model.Follow {
	out := make([]model.Follow, len(r.t.follows))
	copy(out, r.t.follows)
	return out
}

func (r *Reader) HasLike(userID, postID bson.ObjectID) bool {
	_, ok := r.t.likeSet[likeKey{userID, postID}]
	return ok
}

func (r *Reader) ListLikes() []model.Like {
	out := make([]model.Like, len(r.t.likes))
	copy(out, r.t.likes)
	return out
}

func clonePost(p *model.Post) model.Post {
	cp := *p
	if p.Hashtags != nil {
		cp.Hashtags = append([]string(nil), p.Hashtags...)
	}
	return cp
}

// Writer adds mutations to a Reader. Only valid inside Store.Update.
type Writer struct {
	Reader
}

// PutUser inserts or replaces u and indexes its username.
func (w *Writer) PutUser(u model.User) {
	if old, ok := w.t.users[u.ID]; ok {
		delete(w.t.usernames, usernameKey(old.Username))
	} else {
		w.t.userOrder = append(w.t.userOrder, u.ID)
	}
	w.t.users[u.ID] = u
	w.t.usernames[usernameKey(u.Username)] = u.ID
}

// PutPost inserts or replaces p. The stored likes counter is kept when p
// replaces an existing post.
func (w *Writer) PutPost(p model.Post) {
	cp := clonePost(&p)
	if old, ok := w.t.posts[p.ID]; ok {
		cp.LikesCount = old.LikesCount
	} else {
		w.t.postOrder = append(w.t.postOrder, p.ID)
	}
	w.t.posts[p.ID] = &cp
}

// DeletePost removes the post and every like edge that references it.
func (w *Writer) DeletePost(id bson.ObjectID) bool {
	if _, ok := w.t.posts[id]; !ok {
		return false
	}
	delete(w.t.posts, id)
	w.t.postOrder = removeID(w.t.postOrder, id)

	kept := w.t.likes[:0]
	for _, l := range w.t.likes {
		if l.PostID == id {
			delete(w.t.likeSet, likeKey{l.UserID, l.PostID})
			continue
		}
		kept = append(kept, l)
	}
	w.t.likes = kept
	return true
}

func (w *Writer) AddFollow(f model.Follow) {
	k := followKey{f.FollowerID, f.FolloweeID}
	if _, ok := w.t.followSet[k]; ok {
		return
	}
	w.t.followSet[k] = struct{}{}
	w.t.follows = append(w.t.follows, f)
}

func (w *Writer) RemoveFollow(followerID, followeeID bson.ObjectID) bool {
	k := followKey{followerID, followeeID}
	if _, ok := w.t.followSet[k]; !ok {
		return false
	}
	delete(w.t.followSet, k)
	for i, f := range w.t.follows {
		if f.FollowerID == followerID && f.FolloweeID == followeeID {
			w.t.follows = append(w.t.follows[:i], w.t.follows[i+1:]...)
			break
		}
	}
	return true
}

// AddLike records the edge and bumps the post's likes counter by one. It
// returns the counter after the change, or false when the edge already
// exists.
func (w *Writer) AddLike(l model.Like) (int, bool) {
	k := likeKey{l.UserID, l.PostID}
	if _, ok := w.t.likeSet[k]; ok {
		return w.likesCount(l.PostID), false
	}
	w.t.likeSet[k] = struct{}{}
	w.t.likes = append(w.t.likes, l)
	if p, ok := w.t.posts[l.PostID]; ok {
		p.LikesCount++
	}
	return w.likesCount(l.PostID), true
}

// RemoveLike drops the edge and decrements the counter, floored at zero.
func (w *Writer) RemoveLike(userID, postID bson.ObjectID) (int, bool) {
	k := likeKey{userID, postID}
	if _, ok := w.t.likeSet[k]; !ok {
		return w.likesCount(postID), false
	}
	delete(w.t.likeSet, k)
	for i, l := range w.t.likes {
		if l.UserID == userID && l.PostID == postID {
			w.t.likes = append(w.t.likes[:i], w.t.likes[i+1:]...)
			break
		}
	}
	if p, ok := w.t.posts[postID]; ok && p.LikesCount > 0 {
		p.LikesCount--
	}
	return w.likesCount(postID), true
}

func (w *Writer) likesCount(postID bson.ObjectID) int {
	if p, ok := w.t.posts[postID]; ok {
		return p.LikesCount
	}
	return 0
}

func removeID(ids []bson.ObjectID, id bson.ObjectID) []bson.ObjectID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
