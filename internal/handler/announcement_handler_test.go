package handler_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAnnouncement(t *testing.T) {
	env := newTestEnv(t)

	t.Run("editor can create", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/announcements", env.editorToken, map[string]interface{}{
			"title":   "Enrollment period",
			"content": "Enrollment opens June 1.",
		})
		requireStatus(t, rec, http.StatusCreated)

		var created map[string]interface{}
		decodeBody(t, rec, &created)
		assert.Equal(t, "Enrollment period", created["title"])
		assert.Equal(t, true, created["isPublished"], "defaults to published")
		assert.NotEmpty(t, created["id"])
		assert.NotEmpty(t, created["createdBy"])
	})

	t.Run("explicit unpublished survives the round trip", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/announcements", env.editorToken, map[string]interface{}{
			"title":       "Draft notice",
			"content":     "not ready yet",
			"isPublished": false,
		})
		requireStatus(t, rec, http.StatusCreated)

		var created map[string]interface{}
		decodeBody(t, rec, &created)
		assert.Equal(t, false, created["isPublished"])

		list := decodeList(t, env.do(t, http.MethodGet, "/api/announcements?published=true", "", nil))
		for _, a := range list {
			assert.NotEqual(t, "Draft notice", a["title"], "draft must not reach the published surface")
		}
	})

	t.Run("viewer is forbidden", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/announcements", env.viewerToken, map[string]interface{}{
			"title":   "x",
			"content": "y",
		})
		requireStatus(t, rec, http.StatusForbidden)
	})

	t.Run("no token is unauthorized", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/announcements", "", map[string]interface{}{
			"title":   "x",
			"content": "y",
		})
		requireStatus(t, rec, http.StatusUnauthorized)
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/announcements", env.editorToken, map[string]interface{}{
			"content": "y",
		})
		requireStatus(t, rec, http.StatusBadRequest)
	})
}

func TestGetAnnouncements(t *testing.T) {
	env := newTestEnv(t)

	base := time.Now().UTC().Add(-time.Hour)
	for i, published := range []bool{true, false, true} {
		a := &entity.Announcement{
			Title:       fmt.Sprintf("announcement %d", i+1),
			Content:     "body",
			IsPublished: published,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, env.store.CreateAnnouncement(t.Context(), a))
	}

	t.Run("lists newest first without a token", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/announcements", "", nil)
		requireStatus(t, rec, http.StatusOK)

		list := decodeList(t, rec)
		require.Len(t, list, 3)
		assert.Equal(t, "announcement 3", list[0]["title"])
		assert.Equal(t, "announcement 2", list[1]["title"])
		assert.Equal(t, "announcement 1", list[2]["title"])
	})

	t.Run("published filter drops drafts", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/announcements?published=true", "", nil)
		requireStatus(t, rec, http.StatusOK)

		list := decodeList(t, rec)
		require.Len(t, list, 2)
		assert.Equal(t, "announcement 3", list[0]["title"])
		assert.Equal(t, "announcement 1", list[1]["title"])
	})
}

func TestUpdateAnnouncement(t *testing.T) {
	env := newTestEnv(t)

	a := &entity.Announcement{Title: "before", Content: "body", IsPublished: true}
	require.NoError(t, env.store.CreateAnnouncement(t.Context(), a))

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/announcements/"+a.ID.String(), env.editorToken, map[string]interface{}{
			"title": "after",
		})
		requireStatus(t, rec, http.StatusOK)

		var updated map[string]interface{}
		decodeBody(t, rec, &updated)
		assert.Equal(t, "after", updated["title"])
		assert.Equal(t, "body", updated["content"])
		assert.Equal(t, true, updated["isPublished"])
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/announcements/00000000-0000-0000-0000-000000000001", env.editorToken, map[string]interface{}{
			"title": "x",
		})
		requireStatus(t, rec, http.StatusNotFound)
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/announcements/not-a-uuid", env.editorToken, map[string]interface{}{
			"title": "x",
		})
		requireStatus(t, rec, http.StatusBadRequest)
	})
}

func TestDeleteAnnouncement(t *testing.T) {
	env := newTestEnv(t)

	a := &entity.Announcement{Title: "gone soon", Content: "body", IsPublished: true}
	require.NoError(t, env.store.CreateAnnouncement(t.Context(), a))

	t.Run("delete returns 204 and removes the row", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, "/api/announcements/"+a.ID.String(), env.editorToken, nil)
		requireStatus(t, rec, http.StatusNoContent)

		list, err := env.store.GetAllAnnouncements(t.Context())
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("deleting again is 404", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, "/api/announcements/"+a.ID.String(), env.editorToken, nil)
		requireStatus(t, rec, http.StatusNotFound)
	})
}
