package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkpost/blog-backend/database"
	"github.com/inkpost/blog-backend/database/mock"
)

// Compile-time checks that the real repos and their test doubles both
// satisfy the store interfaces, and that every repo constructor in the
// package resolves to a distinct identifier.
var (
	_ database.PostStore    = (*database.PostRepo)(nil)
	_ database.NewPostStore = (*database.NewpostRepo)(nil)
	_ database.CommentStore = (*database.CommentRepo)(nil)

	_ database.PostStore    = (*mock.PostRepo)(nil)
	_ database.NewPostStore = (*mock.NewpostRepo)(nil)
	_ database.CommentStore = (*mock.CommentRepo)(nil)
)

func TestRepoConstructors(t *testing.T) {
	assert.NotNil(t, database.NewPostRepo(nil))
	assert.NotNil(t, database.NewNewpostRepo(nil))
	assert.NotNil(t, database.NewCommentRepo(nil))
}
