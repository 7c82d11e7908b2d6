package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEvent(t *testing.T) {
	env := newTestEnv(t)

	t.Run("editor can create", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/events", env.editorToken, map[string]interface{}{
			"title":     "Foundation Day",
			"eventDate": "2026-09-15T08:00:00Z",
			"location":  "School grounds",
		})
		requireStatus(t, rec, http.StatusCreated)

		var created map[string]interface{}
		decodeBody(t, rec, &created)
		assert.Equal(t, "Foundation Day", created["title"])
		assert.Equal(t, true, created["isPublished"], "defaults to published")
	})

	t.Run("explicit unpublished survives the round trip", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/events", env.editorToken, map[string]interface{}{
			"title":       "Draft event",
			"eventDate":   "2026-12-01T08:00:00Z",
			"isPublished": false,
		})
		requireStatus(t, rec, http.StatusCreated)

		var created map[string]interface{}
		decodeBody(t, rec, &created)
		assert.Equal(t, false, created["isPublished"])

		list := decodeList(t, env.do(t, http.MethodGet, "/api/events?published=true", "", nil))
		for _, e := range list {
			assert.NotEqual(t, "Draft event", e["title"], "draft must not reach the published surface")
		}
	})

	t.Run("missing eventDate is rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/events", env.editorToken, map[string]interface{}{
			"title": "no date",
		})
		requireStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("viewer is forbidden", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/events", env.viewerToken, map[string]interface{}{
			"title":     "x",
			"eventDate": "2026-09-15T08:00:00Z",
		})
		requireStatus(t, rec, http.StatusForbidden)
	})

	t.Run("no token is unauthorized", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/events", "", map[string]interface{}{
			"title":     "x",
			"eventDate": "2026-09-15T08:00:00Z",
		})
		requireStatus(t, rec, http.StatusUnauthorized)
	})
}

func TestGetEvents(t *testing.T) {
	env := newTestEnv(t)

	base := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	seed := []entity.Event{
		{Title: "earliest", EventDate: base, IsPublished: true},
		{Title: "middle", EventDate: base.AddDate(0, 0, 7), IsPublished: false},
		{Title: "latest", EventDate: base.AddDate(0, 0, 14), IsPublished: true},
	}
	for i := range seed {
		require.NoError(t, env.store.CreateEvent(t.Context(), &seed[i]))
	}

	t.Run("lists newest event date first", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/events", "", nil)
		requireStatus(t, rec, http.StatusOK)

		list := decodeList(t, rec)
		require.Len(t, list, 3)
		assert.Equal(t, "latest", list[0]["title"])
		assert.Equal(t, "middle", list[1]["title"])
		assert.Equal(t, "earliest", list[2]["title"])
	})

	t.Run("published filter drops drafts", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/events?published=true", "", nil)
		requireStatus(t, rec, http.StatusOK)

		list := decodeList(t, rec)
		require.Len(t, list, 2)
		assert.Equal(t, "latest", list[0]["title"])
		assert.Equal(t, "earliest", list[1]["title"])
	})
}

func TestUpdateEvent(t *testing.T) {
	env := newTestEnv(t)

	e := &entity.Event{Title: "Sports fest", EventDate: time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC), IsPublished: true}
	require.NoError(t, env.store.CreateEvent(t.Context(), e))

	t.Run("partial update", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/events/"+e.ID.String(), env.editorToken, map[string]interface{}{
			"location": "Covered court",
		})
		requireStatus(t, rec, http.StatusOK)

		var updated map[string]interface{}
		decodeBody(t, rec, &updated)
		assert.Equal(t, "Sports fest", updated["title"])
		assert.Equal(t, "Covered court", updated["location"])
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/events/00000000-0000-0000-0000-000000000001", env.editorToken, map[string]interface{}{
			"location": "x",
		})
		requireStatus(t, rec, http.StatusNotFound)
	})
}

func TestDeleteEvent(t *testing.T) {
	env := newTestEnv(t)

	e := &entity.Event{Title: "cancelled", EventDate: time.Now().UTC(), IsPublished: true}
	require.NoError(t, env.store.CreateEvent(t.Context(), e))

	rec := env.do(t, http.MethodDelete, "/api/events/"+e.ID.String(), env.editorToken, nil)
	requireStatus(t, rec, http.StatusNoContent)

	rec = env.do(t, http.MethodDelete, "/api/events/"+e.ID.String(), env.editorToken, nil)
	requireStatus(t, rec, http.StatusNotFound)
}
