package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a published blog post. Posts are written once and never
// updated or deleted through this API.
type Post struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Image       string    `json:"img" gorm:"type:text;not null"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	Slug        string    `json:"slug" gorm:"type:text;not null;index"`
	Description string    `json:"descr" gorm:"type:text"`
	Content     string    `json:"content" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewPost has the same shape as Post but lives in its own table. The
// ingestion endpoint only ever writes here; the two collections are
// never queried together.
type NewPost struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Image       string    `json:"img" gorm:"type:text;not null"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	Slug        string    `json:"slug" gorm:"type:text;not null;index"`
	Description string    `json:"descr" gorm:"type:text"`
	Content     string    `json:"content" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (NewPost) TableName() string {
	return "newposts"
}
