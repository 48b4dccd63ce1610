package database

import (
	"gorm.io/gorm"

	"github.com/inkpost/blog-backend/models"
)

type Database struct {
	postRepo    *PostRepo
	newpostRepo *NewpostRepo
	commentRepo *CommentRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		postRepo:    NewPostRepo(db),
		newpostRepo: NewNewpostRepo(db),
		commentRepo: NewCommentRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) NewpostRepo() *NewpostRepo {
	return d.newpostRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

// Migrate creates or updates the schema for every persisted entity,
// including the users table which no endpoint touches but which
// external consumers expect to exist.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Post{},
		&models.NewPost{},
		&models.Comment{},
		&models.User{},
	)
}
