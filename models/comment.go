package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a site-wide comment. The frontend sends the display date
// as a preformatted string, so it is stored verbatim rather than as a
// timestamp. Comments carry no reference to any post.
type Comment struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Date        string    `json:"date" gorm:"type:text"`
	Description string    `json:"desc" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
