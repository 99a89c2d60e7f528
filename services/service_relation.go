package services

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"socialgraph/dto"
	"socialgraph/internal/repository"
	"socialgraph/model"
)

func parseFollow(req dto.FollowRequestDTO) (bson.ObjectID, bson.ObjectID, error) {
	if err := dto.Validate(&req); err != nil {
		return bson.NilObjectID, bson.NilObjectID, invalid("%s", err)
	}
	followerID, err := parseID("followerId", req.FollowerID)
	if err != nil {
		return bson.NilObjectID, bson.NilObjectID, err
	}
	followeeID, err := parseID("followeeId", req.FolloweeID)
	if err != nil {
		return bson.NilObjectID, bson.NilObjectID, err
	}
	return followerID, followeeID, nil
}

// Follow creates the edge follower -> followee.
func (s *Service) Follow(req dto.FollowRequestDTO) (model.Follow, error) {
	followerID, followeeID, err := parseFollow(req)
	if err != nil {
		return model.Follow{}, err
	}
	if followerID == followeeID {
		return model.Follow{}, invalid("a user cannot follow themselves")
	}

	var edge model.Follow
	err = s.store.Update(func(w *repository.Writer) error {
		if _, ok := w.GetUser(followerID); !ok {
			return notFound("user %s", followerID.Hex())
		}
		if _, ok := w.GetUser(followeeID); !ok {
			return notFound("user %s", followeeID.Hex())
		}
		if w.HasFollow(followerID, followeeID) {
			return conflict("user %s already follows %s", followerID.Hex(), followeeID.Hex())
		}
		edge = model.Follow{FollowerID: followerID, FolloweeID: followeeID, CreatedAt: s.now()}
		w.AddFollow(edge)
		return nil
	})
	if err != nil {
		return model.Follow{}, err
	}

	s.log.Info("follow created",
		zap.String("follower_id", followerID.Hex()),
		zap.String("followee_id", followeeID.Hex()),
	)
	return edge, nil
}

// Unfollow removes the edge follower -> followee.
func (s *Service) Unfollow(req dto.FollowRequestDTO) error {
	followerID, followeeID, err := parseFollow(req)
	if err != nil {
		return err
	}
	err = s.store.Update(func(w *repository.Writer) error {
		if !w.RemoveFollow(followerID, followeeID) {
			return notFound("user %s does not follow %s", followerID.Hex(), followeeID.Hex())
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("follow removed",
		zap.String("follower_id", followerID.Hex()),
		zap.String("followee_id", followeeID.Hex()),
	)
	return nil
}

func parseLike(req dto.LikeRequestDTO) (bson.ObjectID, bson.ObjectID, error) {
	if err := dto.Validate(&req); err != nil {
		return bson.NilObjectID, bson.NilObjectID, invalid("%s", err)
	}
	userID, err := parseID("userId", req.UserID)
	if err != nil {
		return bson.NilObjectID, bson.NilObjectID, err
	}
	postID, err := parseID("postId", req.PostID)
	if err != nil {
		return bson.NilObjectID, bson.NilObjectID, err
	}
	return userID, postID, nil
}

// Like records that the user likes the post and returns the new likes count.
func (s *Service) Like(req dto.LikeRequestDTO) (int, error) {
	userID, postID, err := parseLike(req)
	if err != nil {
		return 0, err
	}

	var count int
	err = s.store.Update(func(w *repository.Writer) error {
		if _, ok := w.GetUser(userID); !ok {
			return notFound("user %s", userID.Hex())
		}
		if _, ok := w.GetPost(postID); !ok {
			return notFound("post %s", postID.Hex())
		}
		n, added := w.AddLike(model.Like{UserID: userID, PostID: postID, CreatedAt: s.now()})
		if !added {
			return conflict("user %s already liked post %s", userID.Hex(), postID.Hex())
		}
		count = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("post liked",
		zap.String("user_id", userID.Hex()),
		zap.String("post_id", postID.Hex()),
		zap.Int("likes_count", count),
	)
	return count, nil
}

// Unlike removes the user's like and returns the new likes count.
func (s *Service) Unlike(req dto.LikeRequestDTO) (int, error) {
	userID, postID, err := parseLike(req)
	if err != nil {
		return 0, err
	}

	var count int
	err = s.store.Update(func(w *repository.Writer) error {
		if _, ok := w.GetUser(userID); !ok {
			return notFound("user %s", userID.Hex())
		}
		if _, ok := w.GetPost(postID); !ok {
			return notFound("post %s", postID.Hex())
		}
		n, removed := w.RemoveLike(userID, postID)
		if !removed {
			return notFound("user %s has not liked post %s", userID.Hex(), postID.Hex())
		}
		count = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("post unliked",
		zap.String("user_id", userID.Hex()),
		zap.String("post_id", postID.Hex()),
		zap.Int("likes_count", count),
	)
	return count, nil
}
