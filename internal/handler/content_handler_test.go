package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateContentPage(t *testing.T) {
	env := newTestEnv(t)

	t.Run("editor can create", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/content", env.editorToken, map[string]interface{}{
			"pageKey": "home",
			"title":   "Home",
			"content": map[string]interface{}{"hero": "Welcome"},
		})
		requireStatus(t, rec, http.StatusCreated)

		var created map[string]interface{}
		decodeBody(t, rec, &created)
		assert.Equal(t, "home", created["pageKey"])
		assert.Equal(t, true, created["isPublished"], "defaults to published")
		assert.NotEmpty(t, created["lastModified"])
	})

	t.Run("explicit unpublished survives the round trip", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/content", env.editorToken, map[string]interface{}{
			"pageKey":     "draft-page",
			"title":       "Draft page",
			"isPublished": false,
		})
		requireStatus(t, rec, http.StatusCreated)

		var created map[string]interface{}
		decodeBody(t, rec, &created)
		assert.Equal(t, false, created["isPublished"])

		rec = env.do(t, http.MethodGet, "/api/content/draft-page", "", nil)
		requireStatus(t, rec, http.StatusOK)
		var page map[string]interface{}
		decodeBody(t, rec, &page)
		assert.Equal(t, false, page["isPublished"])
	})

	t.Run("duplicate page key is rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/content", env.editorToken, map[string]interface{}{
			"pageKey": "home",
			"title":   "Home again",
		})
		requireStatus(t, rec, http.StatusBadRequest)

		var resp map[string]string
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Page key already exists", resp["message"])
	})

	t.Run("viewer is forbidden", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/content", env.viewerToken, map[string]interface{}{
			"pageKey": "about",
			"title":   "About",
		})
		requireStatus(t, rec, http.StatusForbidden)
	})
}

func TestGetContentPage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/content", env.editorToken, map[string]interface{}{
		"pageKey": "about",
		"title":   "About Us",
		"content": map[string]interface{}{"body": "History of the school"},
	})
	requireStatus(t, rec, http.StatusCreated)

	t.Run("fetch by key is public", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/content/about", "", nil)
		requireStatus(t, rec, http.StatusOK)

		var page map[string]interface{}
		decodeBody(t, rec, &page)
		assert.Equal(t, "About Us", page["title"])

		content, ok := page["content"].(map[string]interface{})
		require.True(t, ok, "content round-trips as JSON")
		assert.Equal(t, "History of the school", content["body"])
	})

	t.Run("unknown key is 404", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/content/missing", "", nil)
		requireStatus(t, rec, http.StatusNotFound)

		var resp map[string]string
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Page not found", resp["message"])
	})
}

func TestUpdateContentPage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/content", env.editorToken, map[string]interface{}{
		"pageKey": "news",
		"title":   "News",
	})
	requireStatus(t, rec, http.StatusCreated)

	var created map[string]interface{}
	decodeBody(t, rec, &created)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	t.Run("update refreshes lastModified and records the editor", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/content/"+id, env.editorToken, map[string]interface{}{
			"title": "School News",
		})
		requireStatus(t, rec, http.StatusOK)

		var updated map[string]interface{}
		decodeBody(t, rec, &updated)
		assert.Equal(t, "School News", updated["title"])
		assert.Equal(t, "news", updated["pageKey"], "pageKey is immutable")
		assert.NotEqual(t, created["lastModified"], updated["lastModified"])
		assert.NotEmpty(t, updated["modifiedBy"])
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/content/00000000-0000-0000-0000-000000000001", env.editorToken, map[string]interface{}{
			"title": "x",
		})
		requireStatus(t, rec, http.StatusNotFound)
	})
}

func TestGetAllContentPages(t *testing.T) {
	env := newTestEnv(t)

	for _, key := range []string{"home", "about"} {
		rec := env.do(t, http.MethodPost, "/api/content", env.editorToken, map[string]interface{}{
			"pageKey": key,
			"title":   key,
		})
		requireStatus(t, rec, http.StatusCreated)
	}

	rec := env.do(t, http.MethodGet, "/api/content", "", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Len(t, decodeList(t, rec), 2)
}
