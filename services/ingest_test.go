package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkpost/blog-backend/database/mock"
	"github.com/inkpost/blog-backend/errs"
)

type fakeStore struct {
	url   string
	err   error
	calls int
}

func (f *fakeStore) Store(ctx context.Context, file io.Reader, originalName string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Hello", "hello"},
		{"Hello   Big   World", "hello-big-world"},
		{"Tabs\tand\nnewlines", "tabs-and-newlines"},
		{"MIXED Case Title", "mixed-case-title"},
		// leading/trailing whitespace runs become hyphens too,
		// matching the historical frontend contract
		{" padded ", "-padded-"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "title %q", tc.title)
	}
}

func TestIngest(t *testing.T) {
	input := PostInput{
		Title:       "Hello World",
		Description: "x",
		Content:     "y",
	}

	t.Run("creates document with derived slug and image URL", func(t *testing.T) {
		store := &fakeStore{url: "http://localhost:3000/uploads/1-a.png"}
		repo := mock.NewNewpostRepo()
		ingestor := NewPostIngestor(store, repo)

		post, err := ingestor.Ingest(context.Background(), input, strings.NewReader("png bytes"), "a.png")
		assert.NoError(t, err)
		assert.NotZero(t, post.ID)
		assert.Equal(t, "Hello World", post.Title)
		assert.Equal(t, "hello-world", post.Slug)
		assert.Equal(t, "x", post.Description)
		assert.Equal(t, "y", post.Content)
		assert.Equal(t, "http://localhost:3000/uploads/1-a.png", post.Image)
		assert.Equal(t, 1, store.calls)

		// round-trip: the persisted document matches what was returned
		stored, err := repo.FindByID(post.ID)
		assert.NoError(t, err)
		assert.Equal(t, post.Title, stored.Title)
		assert.Equal(t, post.Slug, stored.Slug)
		assert.Equal(t, post.Image, stored.Image)
	})

	t.Run("rejects missing title before touching the store", func(t *testing.T) {
		store := &fakeStore{url: "http://example.com/u/1"}
		repo := mock.NewNewpostRepo()
		ingestor := NewPostIngestor(store, repo)

		_, err := ingestor.Ingest(context.Background(), PostInput{}, strings.NewReader("data"), "a.png")
		assertStatus(t, err, http.StatusBadRequest)
		assert.Equal(t, 0, store.calls)
	})

	t.Run("rejects missing file before touching the store", func(t *testing.T) {
		store := &fakeStore{url: "http://example.com/u/1"}
		repo := mock.NewNewpostRepo()
		ingestor := NewPostIngestor(store, repo)

		_, err := ingestor.Ingest(context.Background(), input, nil, "")
		assertStatus(t, err, http.StatusBadRequest)
		assert.Equal(t, 0, store.calls)

		all, findErr := repo.FindAll()
		assert.NoError(t, findErr)
		assert.Empty(t, all)
	})

	t.Run("storage failure creates no document", func(t *testing.T) {
		store := &fakeStore{err: errors.New("bucket unreachable")}
		repo := mock.NewNewpostRepo()
		ingestor := NewPostIngestor(store, repo)

		_, err := ingestor.Ingest(context.Background(), input, strings.NewReader("data"), "a.png")
		assertStatus(t, err, http.StatusInternalServerError)
		assert.True(t, errs.IsStorageError(err))

		all, findErr := repo.FindAll()
		assert.NoError(t, findErr)
		assert.Empty(t, all)
	})

	t.Run("persistence failure after the asset is stored", func(t *testing.T) {
		store := &fakeStore{url: "http://example.com/u/1"}
		repo := mock.NewNewpostRepo()
		repo.FailWith = errors.New("insert failed")
		ingestor := NewPostIngestor(store, repo)

		_, err := ingestor.Ingest(context.Background(), input, strings.NewReader("data"), "a.png")
		assertStatus(t, err, http.StatusInternalServerError)

		// the asset was stored before the write failed; it stays orphaned
		assert.Equal(t, 1, store.calls)
	})
}

func assertStatus(t *testing.T, err error, want int) {
	t.Helper()

	var apiErr *errs.ApiErr
	assert.Error(t, err)
	assert.True(t, errors.As(err, &apiErr), "expected an ApiErr, got %v", err)
	assert.Equal(t, want, apiErr.StatusCode)
}
