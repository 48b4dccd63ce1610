package api

import (
	"github.com/inkpost/blog-backend/assets"
	"github.com/inkpost/blog-backend/database"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	postHandler    postHandler
	commentHandler commentHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, store assets.Store) *routeHandlers {
	return &routeHandlers{
		postHandler:    newPostHandler(database.PostRepo(), database.NewpostRepo(), store),
		commentHandler: newCommentHandler(database.CommentRepo()),
	}
}
