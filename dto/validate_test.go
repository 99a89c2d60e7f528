package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     any
		wantErr string
	}{
		{"user ok", &CreateUserDTO{Username: "alice", DisplayName: "Alice"}, ""},
		{"user missing username", &CreateUserDTO{DisplayName: "Alice"}, "username is required"},
		{"user missing display name", &CreateUserDTO{Username: "alice"}, "displayName is required"},
		{"post ok without media", &CreatePostDTO{AuthorID: "66c6248b98c56c39f018e7d2", Content: "hi"}, ""},
		{"post ok with video", &CreatePostDTO{AuthorID: "66c6248b98c56c39f018e7d2", Content: "hi", MediaType: "video"}, ""},
		{"post bad media type", &CreatePostDTO{AuthorID: "66c6248b98c56c39f018e7d2", Content: "hi", MediaType: "gif"}, "mediaType must be one of: none image video"},
		{"post bad author id", &CreatePostDTO{AuthorID: "nope", Content: "hi"}, "authorId must be a valid id"},
		{"post missing content", &CreatePostDTO{AuthorID: "66c6248b98c56c39f018e7d2"}, "content is required"},
		{"follow missing followee", &FollowRequestDTO{FollowerID: "66c6248b98c56c39f018e7d2"}, "followeeId is required"},
		{"like ok", &LikeRequestDTO{UserID: "66c6248b98c56c39f018e7d2", PostID: "66c6248b98c56c39f018e7d3"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
