package bootstrap

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialgraph/dto"
	"socialgraph/internal/repository"
	"socialgraph/model"
	"socialgraph/services"
)

func newService() *services.Service {
	t := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return services.New(repository.NewStore(), services.WithClock(func() time.Time {
		t = t.Add(time.Minute)
		return t
	}))
}

func userByName(t *testing.T, svc *services.Service, name string) model.User {
	t.Helper()
	for _, u := range svc.ListUsers() {
		if u.Username == name {
			return u
		}
	}
	t.Fatalf("user %q not seeded", name)
	return model.User{}
}

func TestSeed(t *testing.T) {
	svc := newService()
	res, err := Seed(svc)
	require.NoError(t, err)
	assert.Equal(t, dto.SeedResponse{Users: 5, Posts: 5, Follows: 8, Likes: 7}, res)

	alice := userByName(t, svc, "alice")
	profile, err := svc.GetUser(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, profile.FollowerCount)
	assert.Equal(t, 2, profile.FollowingCount)
	assert.Equal(t, 1, profile.PostCount)

	feed, err := svc.Feed(alice.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "carol", feed[0].Author.Username)
	assert.Equal(t, "bob", feed[1].Author.Username)
	assert.Equal(t, 2, feed[1].LikesCount)
	assert.Equal(t, []string{"photography", "sunrise"}, feed[1].Hashtags)

	sugg, err := svc.Suggest(alice.ID)
	require.NoError(t, err)
	require.Len(t, sugg, 2)
	assert.Equal(t, "dave", sugg[0].Username)
	assert.Equal(t, 2, sugg[0].MutualCount)
	assert.Equal(t, "erin", sugg[1].Username)
	assert.Equal(t, 1, sugg[1].MutualCount)
}

func TestSeedBioKeepsHash(t *testing.T) {
	ds, err := ParseDataset(defaultSeed)
	require.NoError(t, err)
	require.NotEmpty(t, ds.Users)
	assert.Equal(t, "Runner. #marathon", ds.Users[len(ds.Users)-1].Bio)
}

func TestSeedTwiceConflicts(t *testing.T) {
	svc := newService()
	_, err := Seed(svc)
	require.NoError(t, err)

	_, err = Seed(svc)
	assert.Equal(t, services.KindConflict, services.KindOf(err))

	svc.Reset()
	_, err = Seed(svc)
	assert.NoError(t, err)
}

func TestParseDataset_Invalid(t *testing.T) {
	_, err := ParseDataset([]byte("users: [unclosed"))
	assert.Error(t, err)
}

func TestLoad_UnknownReference(t *testing.T) {
	tests := []struct {
		name string
		ds   Dataset
	}{
		{
			name: "post author",
			ds:   Dataset{Posts: []SeedPost{{Key: "p", Author: "ghost", Content: "hi"}}},
		},
		{
			name: "follow",
			ds: Dataset{
				Users:   []dto.CreateUserDTO{{Username: "a", DisplayName: "A"}},
				Follows: []SeedFollow{{Follower: "a", Followee: "ghost"}},
			},
		},
		{
			name: "like post",
			ds: Dataset{
				Users: []dto.CreateUserDTO{{Username: "a", DisplayName: "A"}},
				Likes: []SeedLike{{User: "a", Post: "missing"}},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(newService(), tc.ds)
			assert.ErrorContains(t, err, "unknown seed")
		})
	}
}

func TestReseedReplacesExistingData(t *testing.T) {
	svc := newService()
	_, err := svc.CreateUser(dto.CreateUserDTO{Username: "alice", DisplayName: "Someone else"})
	require.NoError(t, err)
	_, err = svc.CreateUser(dto.CreateUserDTO{Username: "stranger", DisplayName: "Stranger"})
	require.NoError(t, err)

	res, err := Reseed(svc)
	require.NoError(t, err)
	assert.Equal(t, dto.SeedResponse{Users: 5, Posts: 5, Follows: 8, Likes: 7}, res)
	assert.Len(t, svc.ListUsers(), 5)
	assert.Equal(t, "Alice Martin", userByName(t, svc, "alice").DisplayName)
}

func TestReseedUnderConcurrentWrites(t *testing.T) {
	svc := newService()
	stop := make(chan struct{})
	var writers sync.WaitGroup
	for i := 0; i < 4; i++ {
		writers.Add(1)
		go func() {
			defer writers.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				// Conflicts here are expected; they must never reach the seed.
				_, _ = svc.CreateUser(dto.CreateUserDTO{Username: "alice", DisplayName: "Intruder"})
			}
		}()
	}

	for i := 0; i < 20; i++ {
		res, err := Reseed(svc)
		assert.NoError(t, err)
		assert.Equal(t, 5, res.Users)
	}
	close(stop)
	writers.Wait()

	users := svc.ListUsers()
	assert.Len(t, users, 5)
	assert.Equal(t, "Alice Martin", userByName(t, svc, "alice").DisplayName)
}
