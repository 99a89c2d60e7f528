package bootstrap

import (
	_ "embed"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"socialgraph/dto"
	"socialgraph/model"
	"socialgraph/services"
)

//go:embed seed.yaml
var defaultSeed []byte

type Dataset struct {
	Users   []dto.CreateUserDTO `yaml:"users"`
	Posts   []SeedPost          `yaml:"posts"`
	Follows []SeedFollow        `yaml:"follows"`
	Likes   []SeedLike          `yaml:"likes"`
}

type SeedPost struct {
	Key       string  `yaml:"key"`
	Author    string  `yaml:"author"`
	Content   string  `yaml:"content"`
	MediaType string  `yaml:"mediaType"`
	MediaURL  *string `yaml:"mediaUrl"`
}

type SeedFollow struct {
	Follower string `yaml:"follower"`
	Followee string `yaml:"followee"`
}

type SeedLike struct {
	User string `yaml:"user"`
	Post string `yaml:"post"`
}

func ParseDataset(data []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, errors.Wrap(err, "parse seed dataset")
	}
	return ds, nil
}

// Seed loads the embedded demo dataset into svc.
func Seed(svc *services.Service) (dto.SeedResponse, error) {
	ds, err := ParseDataset(defaultSeed)
	if err != nil {
		return dto.SeedResponse{}, err
	}
	return Load(svc, ds)
}

// Reseed replaces everything in svc with the embedded demo dataset. Requests
// running meanwhile never observe a half-loaded dataset or collide with it.
func Reseed(svc *services.Service) (dto.SeedResponse, error) {
	ds, err := ParseDataset(defaultSeed)
	if err != nil {
		return dto.SeedResponse{}, err
	}
	var res dto.SeedResponse
	err = svc.ResetWith(func(staging *services.Service) error {
		var err error
		res, err = Load(staging, ds)
		return err
	})
	if err != nil {
		return dto.SeedResponse{}, err
	}
	return res, nil
}

// Load inserts ds through the regular service operations, so every record is
// validated exactly as an API call would be. It stops at the first failure
// and leaves what was already inserted.
func Load(svc *services.Service, ds Dataset) (dto.SeedResponse, error) {
	var out dto.SeedResponse
	users := make(map[string]model.User, len(ds.Users))
	for _, req := range ds.Users {
		u, err := svc.CreateUser(req)
		if err != nil {
			return out, errors.Wrapf(err, "seed user %q", req.Username)
		}
		users[req.Username] = u
		out.Users++
	}

	userID := func(name string) (string, error) {
		u, ok := users[name]
		if !ok {
			return "", errors.Errorf("unknown seed user %q", name)
		}
		return u.ID.Hex(), nil
	}

	posts := make(map[string]model.Post, len(ds.Posts))
	for _, sp := range ds.Posts {
		author, err := userID(sp.Author)
		if err != nil {
			return out, err
		}
		p, err := svc.CreatePost(dto.CreatePostDTO{
			AuthorID:  author,
			Content:   sp.Content,
			MediaType: sp.MediaType,
			MediaURL:  sp.MediaURL,
		})
		if err != nil {
			return out, errors.Wrapf(err, "seed post %q", sp.Key)
		}
		posts[sp.Key] = p
		out.Posts++
	}

	for _, f := range ds.Follows {
		follower, err := userID(f.Follower)
		if err != nil {
			return out, err
		}
		followee, err := userID(f.Followee)
		if err != nil {
			return out, err
		}
		if _, err := svc.Follow(dto.FollowRequestDTO{FollowerID: follower, FolloweeID: followee}); err != nil {
			return out, errors.Wrapf(err, "seed follow %s -> %s", f.Follower, f.Followee)
		}
		out.Follows++
	}

	for _, l := range ds.Likes {
		user, err := userID(l.User)
		if err != nil {
			return out, err
		}
		p, ok := posts[l.Post]
		if !ok {
			return out, errors.Errorf("unknown seed post %q", l.Post)
		}
		if _, err := svc.Like(dto.LikeRequestDTO{UserID: user, PostID: p.ID.Hex()}); err != nil {
			return out, errors.Wrapf(err, "seed like %s -> %s", l.User, l.Post)
		}
		out.Likes++
	}
	return out, nil
}
