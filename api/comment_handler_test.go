package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkpost/blog-backend/models"
)

func sendCommentRequest(payload string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/sendcomment", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSendComment(t *testing.T) {
	t.Run("stores comment and acknowledges", func(t *testing.T) {
		env := setupTestRouter(t)

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, sendCommentRequest(`{"date": "2024-01-01", "desc": "nice post"}`))

		assert.Equal(t, http.StatusOK, w.Code)

		var ack string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
		assert.Equal(t, "Comment sent successfully!", ack)

		// the comment shows up on the listing
		w = httptest.NewRecorder()
		env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/getcomments", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		var listed []models.Comment
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
		assert.Len(t, listed, 1)
		assert.Equal(t, "2024-01-01", listed[0].Date)
		assert.Equal(t, "nice post", listed[0].Description)
		assert.NotZero(t, listed[0].ID)
	})

	t.Run("missing desc is rejected", func(t *testing.T) {
		env := setupTestRouter(t)

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, sendCommentRequest(`{"date": "2024-01-01"}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "desc", response["field"])
	})

	t.Run("missing date is rejected", func(t *testing.T) {
		env := setupTestRouter(t)

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, sendCommentRequest(`{"desc": "nice post"}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		env := setupTestRouter(t)

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, sendCommentRequest(`{not json`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("write failure returns 501", func(t *testing.T) {
		env := setupTestRouter(t)
		env.comments.FailWith = errors.New("insert failed")

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, sendCommentRequest(`{"date": "2024-01-01", "desc": "nice post"}`))
		assert.Equal(t, http.StatusNotImplemented, w.Code)
	})
}

func TestGetComments(t *testing.T) {
	t.Run("empty collection returns empty array", func(t *testing.T) {
		env := setupTestRouter(t)

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/getcomments", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("nil slice from the store still yields an empty array", func(t *testing.T) {
		h := newCommentHandler(nilCommentStore{})

		w := httptest.NewRecorder()
		h.getComments()(w, httptest.NewRequest(http.MethodGet, "/getcomments", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("query failure returns 501", func(t *testing.T) {
		env := setupTestRouter(t)
		env.comments.FailWith = errors.New("connection reset")

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/getcomments", nil))
		assert.Equal(t, http.StatusNotImplemented, w.Code)
	})
}

// nilCommentStore yields a nil slice on listing, the way a bare gorm
// Find does on an empty table.
type nilCommentStore struct{}

func (nilCommentStore) Add(*models.Comment) error           { return nil }
func (nilCommentStore) FindAll() ([]*models.Comment, error) { return nil, nil }
