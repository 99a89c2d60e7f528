package services

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialgraph/dto"
)

// aliased returns a string sharing buf's memory, the way zero-copy request
// parsing hands strings out.
func aliased(buf []byte) string {
	return unsafe.String(&buf[0], len(buf))
}

func TestCreateUserCopiesRequestStrings(t *testing.T) {
	s := newService(t)
	name := []byte("alice")
	display := []byte("Alice")

	u, err := s.CreateUser(dto.CreateUserDTO{Username: aliased(name), DisplayName: aliased(display)})
	require.NoError(t, err)

	copy(name, "zzzzz")
	copy(display, "ZZZZZ")

	profile, err := s.GetUser(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "Alice", profile.DisplayName)

	_, err = s.CreateUser(dto.CreateUserDTO{Username: "ALICE", DisplayName: "x"})
	assert.Equal(t, KindConflict, KindOf(err))
	_, err = s.CreateUser(dto.CreateUserDTO{Username: "zzzzz", DisplayName: "x"})
	assert.NoError(t, err)
}

func TestCreatePostCopiesRequestStrings(t *testing.T) {
	s := newService(t)
	author := mustUser(t, s, "author")
	content := []byte("hello #go")
	media := []byte("image")
	mediaURL := []byte("https://example.com/a.png")
	urlStr := aliased(mediaURL)

	p, err := s.CreatePost(dto.CreatePostDTO{
		AuthorID:  author.ID.Hex(),
		Content:   aliased(content),
		MediaType: aliased(media),
		MediaURL:  &urlStr,
	})
	require.NoError(t, err)

	copy(content, "xxxxx xxx")
	copy(media, "video")
	copy(mediaURL, "xxxxxxxxxxxxxxxxxxxxxxxxx")

	got, err := s.GetPost(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello #go", got.Content)
	assert.Equal(t, "image", string(got.MediaType))
	require.NotNil(t, got.MediaURL)
	assert.Equal(t, "https://example.com/a.png", *got.MediaURL)
}
