package models

import (
	"time"

	"github.com/google/uuid"
)

// User is part of the persisted schema but has no reachable behavior:
// no endpoint creates, reads, or references users. The table is still
// migrated so external consumers of the database see the full shape.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Username  string    `json:"username" gorm:"type:text"`
	Email     string    `json:"email" gorm:"type:text"`
	Image     string    `json:"img" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
