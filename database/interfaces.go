package database

import (
	"github.com/google/uuid"

	"github.com/inkpost/blog-backend/models"
)

// PostStore defines read/write access to the posts collection.
type PostStore interface {
	Add(post *models.Post) error
	FindAll() ([]*models.Post, error)
	FindByID(id uuid.UUID) (*models.Post, error)
}

// NewPostStore defines read/write access to the newposts collection,
// the one the ingestion workflow writes to.
type NewPostStore interface {
	Add(post *models.NewPost) error
	FindAll() ([]*models.NewPost, error)
	FindByID(id uuid.UUID) (*models.NewPost, error)
}

// CommentStore defines access to the site-wide comments collection.
// Comments are never looked up individually.
type CommentStore interface {
	Add(comment *models.Comment) error
	FindAll() ([]*models.Comment, error)
}
