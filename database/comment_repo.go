package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkpost/blog-backend/models"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindAll returns all comments in storage order. The slice is
// allocated up front so an empty table serializes as [] rather than
// null.
func (r *CommentRepo) FindAll() ([]*models.Comment, error) {
	comments := []*models.Comment{}
	err := r.db.Find(&comments).Error
	return comments, err
}

// Add inserts a new comment, assigning an identifier when none is set.
func (r *CommentRepo) Add(comment *models.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	return r.db.Create(comment).Error
}
