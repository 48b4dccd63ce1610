package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkpost/blog-backend/models"
)

// NewpostRepo persists documents created by the post ingestion
// workflow into the newposts table. The collection is queried
// separately from posts and the two are never unioned. The lowercase
// "post" keeps the type name from clashing with PostRepo's
// constructor.
type NewpostRepo struct {
	db *gorm.DB
}

func NewNewpostRepo(db *gorm.DB) *NewpostRepo {
	return &NewpostRepo{db}
}

func (r *NewpostRepo) FindAll() ([]*models.NewPost, error) {
	posts := []*models.NewPost{}
	err := r.db.Find(&posts).Error
	return posts, err
}

func (r *NewpostRepo) FindByID(id uuid.UUID) (*models.NewPost, error) {
	var post models.NewPost
	err := r.db.First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *NewpostRepo) Add(post *models.NewPost) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	return r.db.Create(post).Error
}
