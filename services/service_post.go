package services

import (
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"socialgraph/dto"
	"socialgraph/internal/graph"
	"socialgraph/internal/repository"
	"socialgraph/internal/utils"
	"socialgraph/model"
)

// CreatePost publishes a post for an existing author. mediaType defaults to
// none; mediaUrl is stored as given whatever the media type.
func (s *Service) CreatePost(req dto.CreatePostDTO) (model.Post, error) {
	req.Content = strings.Clone(strings.TrimSpace(req.Content))
	if req.MediaURL != nil {
		v := strings.Clone(*req.MediaURL)
		req.MediaURL = &v
	}
	req.MediaType = strings.Clone(strings.ToLower(strings.TrimSpace(req.MediaType)))
	if req.MediaType == "" {
		req.MediaType = string(model.MediaNone)
	}
	if err := dto.Validate(&req); err != nil {
		return model.Post{}, invalid("%s", err)
	}
	authorID, err := parseID("authorId", req.AuthorID)
	if err != nil {
		return model.Post{}, err
	}

	var post model.Post
	err = s.store.Update(func(w *repository.Writer) error {
		if _, ok := w.GetUser(authorID); !ok {
			return invalid("author %s does not exist", authorID.Hex())
		}
		post = model.Post{
			ID:        s.newID(),
			AuthorID:  authorID,
			Content:   req.Content,
			MediaType: model.MediaType(req.MediaType),
			MediaURL:  req.MediaURL,
			Hashtags:  utils.ExtractHashtags(req.Content),
			CreatedAt: s.now(),
		}
		w.PutPost(post)
		return nil
	})
	if err != nil {
		return model.Post{}, err
	}

	s.log.Info("post created",
		zap.String("post_id", post.ID.Hex()),
		zap.String("author_id", authorID.Hex()),
		zap.String("media_type", req.MediaType),
	)
	return post, nil
}

func (s *Service) GetPost(id bson.ObjectID) (model.Post, error) {
	var post model.Post
	err := s.store.View(func(r *repository.Reader) error {
		p, ok := r.GetPost(id)
		if !ok {
			return notFound("post %s", id.Hex())
		}
		post = p
		return nil
	})
	return post, err
}

// ListPosts returns every post, newest first.
func (s *Service) ListPosts() []model.Post {
	var posts []model.Post
	_ = s.store.View(func(r *repository.Reader) error {
		posts = r.ListPosts()
		return nil
	})
	graph.SortNewestFirst(posts)
	return posts
}

// PostsByUser returns the posts authored by id, newest first.
func (s *Service) PostsByUser(id bson.ObjectID) ([]model.Post, error) {
	posts := []model.Post{}
	err := s.store.View(func(r *repository.Reader) error {
		if _, ok := r.GetUser(id); !ok {
			return notFound("user %s", id.Hex())
		}
		for _, p := range r.ListPosts() {
			if p.AuthorID == id {
				posts = append(posts, p)
			}
		}
		return nil
	})
	graph.SortNewestFirst(posts)
	return posts, err
}

// DeletePost removes the post together with all of its likes.
func (s *Service) DeletePost(id bson.ObjectID) error {
	err := s.store.Update(func(w *repository.Writer) error {
		if !w.DeletePost(id) {
			return notFound("post %s", id.Hex())
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info("post deleted", zap.String("post_id", id.Hex()))
	return nil
}

// Likers returns the users who liked the post.
func (s *Service) Likers(postID bson.ObjectID) ([]model.User, error) {
	var users []model.User
	err := s.store.View(func(r *repository.Reader) error {
		if _, ok := r.GetPost(postID); !ok {
			return notFound("post %s", postID.Hex())
		}
		users = graph.LikersOf(r, postID)
		return nil
	})
	return users, err
}
