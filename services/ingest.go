package services

import (
	"context"
	"io"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/inkpost/blog-backend/assets"
	"github.com/inkpost/blog-backend/database"
	"github.com/inkpost/blog-backend/errs"
	"github.com/inkpost/blog-backend/models"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Slugify derives the URL-safe slug stored alongside a post: the title
// lower-cased with every whitespace run replaced by a single hyphen.
// Derived once at creation, never recomputed, not unique.
func Slugify(title string) string {
	return whitespaceRuns.ReplaceAllString(strings.ToLower(title), "-")
}

// PostInput carries the text fields of a create-post request.
type PostInput struct {
	Title       string `validate:"required"`
	Description string
	Content     string
}

// PostIngestor orchestrates the post creation write path: file intake,
// asset storage, slug derivation, document persistence.
type PostIngestor struct {
	store    assets.Store
	posts    database.NewPostStore
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewPostIngestor(store assets.Store, posts database.NewPostStore) *PostIngestor {
	return &PostIngestor{
		store:    store,
		posts:    posts,
		validate: validator.New(),
		logger:   log.With().Str("service", "postIngestor").Logger(),
	}
}

// Ingest runs a single pass with no retries. A missing title or file
// is rejected before any asset I/O happens. If the document write
// fails after the asset was stored, the asset is left behind as an
// orphan: there is deliberately no compensating delete, only a log
// line.
func (s *PostIngestor) Ingest(ctx context.Context, input PostInput, file io.Reader, filename string) (*models.NewPost, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, errs.NewMissingRequiredFieldError("title")
	}
	if file == nil || filename == "" {
		return nil, errs.NewMissingRequiredFieldError("file")
	}

	imageURL, err := s.store.Store(ctx, file, filename)
	if err != nil {
		return nil, errs.NewStorageError(err)
	}

	post := &models.NewPost{
		Image:       imageURL,
		Title:       input.Title,
		Slug:        Slugify(input.Title),
		Description: input.Description,
		Content:     input.Content,
	}

	if err := s.posts.Add(post); err != nil {
		s.logger.Error().
			Err(err).
			Str("image", imageURL).
			Msg("post write failed after asset was stored, asset left orphaned")
		return nil, errs.NewPersistenceError("post", err)
	}

	return post, nil
}
