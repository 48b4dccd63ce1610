package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkpost/blog-backend/models"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// FindAll returns all posts in storage order. The slice is allocated
// up front so an empty table serializes as [] rather than null.
func (r *PostRepo) FindAll() ([]*models.Post, error) {
	posts := []*models.Post{}
	err := r.db.Find(&posts).Error
	return posts, err
}

// FindByID returns a post by its ID. A miss surfaces
// gorm.ErrRecordNotFound for the caller to translate.
func (r *PostRepo) FindByID(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new post, assigning an identifier when none is set.
func (r *PostRepo) Add(post *models.Post) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	return r.db.Create(post).Error
}
