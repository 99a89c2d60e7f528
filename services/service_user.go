package services

import (
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"socialgraph/dto"
	"socialgraph/internal/graph"
	"socialgraph/internal/repository"
	"socialgraph/model"
)

// CreateUser registers a user. Usernames are unique ignoring case.
func (s *Service) CreateUser(req dto.CreateUserDTO) (model.User, error) {
	// Request strings may alias the transport's reused buffers; the store
	// keeps its own copies.
	req.Username = strings.Clone(strings.TrimSpace(req.Username))
	req.DisplayName = strings.Clone(strings.TrimSpace(req.DisplayName))
	req.Bio = strings.Clone(strings.TrimSpace(req.Bio))
	if req.ProfilePicURL != nil {
		if v := strings.Clone(strings.TrimSpace(*req.ProfilePicURL)); v != "" {
			req.ProfilePicURL = &v
		} else {
			req.ProfilePicURL = nil
		}
	}
	if err := dto.Validate(&req); err != nil {
		return model.User{}, invalid("%s", err)
	}

	var user model.User
	err := s.store.Update(func(w *repository.Writer) error {
		if _, taken := w.UserByUsername(req.Username); taken {
			return conflict("username %q is already taken", req.Username)
		}
		user = model.User{
			ID:            s.newID(),
			Username:      req.Username,
			DisplayName:   req.DisplayName,
			Bio:           req.Bio,
			ProfilePicURL: req.ProfilePicURL,
			CreatedAt:     s.now(),
		}
		w.PutUser(user)
		return nil
	})
	if err != nil {
		return model.User{}, err
	}

	s.log.Info("user created",
		zap.String("user_id", user.ID.Hex()),
		zap.String("username", user.Username),
	)
	return user, nil
}

func (s *Service) ListUsers() []model.User {
	var users []model.User
	_ = s.store.View(func(r *repository.Reader) error {
		users = r.ListUsers()
		return nil
	})
	return users
}

// GetUser returns the user with its follower, following and post counts.
func (s *Service) GetUser(id bson.ObjectID) (model.UserProfile, error) {
	var profile model.UserProfile
	err := s.store.View(func(r *repository.Reader) error {
		u, ok := r.GetUser(id)
		if !ok {
			return notFound("user %s", id.Hex())
		}
		profile = graph.Profile(r, u)
		return nil
	})
	return profile, err
}

func (s *Service) Followers(id bson.ObjectID) ([]model.User, error) {
	var users []model.User
	err := s.store.View(func(r *repository.Reader) error {
		if _, ok := r.GetUser(id); !ok {
			return notFound("user %s", id.Hex())
		}
		users = graph.FollowersOf(r, id)
		return nil
	})
	return users, err
}

func (s *Service) Following(id bson.ObjectID) ([]model.User, error) {
	var users []model.User
	err := s.store.View(func(r *repository.Reader) error {
		if _, ok := r.GetUser(id); !ok {
			return notFound("user %s", id.Hex())
		}
		users = graph.FollowingOf(r, id)
		return nil
	})
	return users, err
}

// Feed returns the posts of the users id follows, newest first.
func (s *Service) Feed(id bson.ObjectID) ([]model.FeedPost, error) {
	var feed []model.FeedPost
	err := s.store.View(func(r *repository.Reader) error {
		if _, ok := r.GetUser(id); !ok {
			return notFound("user %s", id.Hex())
		}
		feed = graph.Feed(r, id)
		return nil
	})
	return feed, err
}

// Suggest ranks every user id does not follow by 2-hop path count.
func (s *Service) Suggest(id bson.ObjectID) ([]model.Suggestion, error) {
	var out []model.Suggestion
	err := s.store.View(func(r *repository.Reader) error {
		if _, ok := r.GetUser(id); !ok {
			return notFound("user %s", id.Hex())
		}
		out = graph.Suggest(r, id)
		return nil
	})
	return out, err
}
