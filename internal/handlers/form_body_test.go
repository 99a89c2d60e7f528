package handlers_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialgraph/dto"
	"socialgraph/model"
)

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func TestFormBodiesAreNotOverwritten(t *testing.T) {
	app := newApp(t, false)

	code, raw := postForm(t, app, "/api/users", url.Values{"username": {"alice"}, "displayName": {"Alice"}})
	require.Equal(t, http.StatusCreated, code, string(raw))
	alice := decode[model.User](t, raw)

	code, raw = postForm(t, app, "/api/posts", url.Values{"authorId": {alice.ID.Hex()}, "content": {"first #post"}})
	require.Equal(t, http.StatusCreated, code, string(raw))
	first := decode[model.Post](t, raw)

	for i := 0; i < 50; i++ {
		code, raw = postForm(t, app, "/api/users", url.Values{
			"username":    {fmt.Sprintf("zzzzz%d", i)},
			"displayName": {fmt.Sprintf("ZZZZZ%d", i)},
		})
		require.Equal(t, http.StatusCreated, code, string(raw))
		code, raw = postForm(t, app, "/api/posts", url.Values{
			"authorId": {alice.ID.Hex()},
			"content":  {fmt.Sprintf("zzzzzzzzzzz %d", i)},
		})
		require.Equal(t, http.StatusCreated, code, string(raw))
	}

	code, raw = call(t, app, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, code)
	users := decode[[]model.User](t, raw)
	require.Len(t, users, 51)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "Alice", users[0].DisplayName)

	code, raw = call(t, app, http.MethodGet, "/api/posts/"+first.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, code)
	post := decode[model.Post](t, raw)
	assert.Equal(t, "first #post", post.Content)
	assert.Equal(t, []string{"post"}, post.Hashtags)

	code, _ = call(t, app, http.MethodPost, "/api/users", dto.CreateUserDTO{Username: "ALICE", DisplayName: "Other"})
	assert.Equal(t, http.StatusConflict, code)
}
