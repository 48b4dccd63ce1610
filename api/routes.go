package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the full REST surface. Paths are kept exactly as
// the frontend expects them, including the mixed-case single-post
// lookups.
func setupRoutes(r chi.Router, handlers *routeHandlers, uploadsDir string) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/create-post", handlers.postHandler.createPost())
		r.Get("/getdata", handlers.postHandler.getAllPosts())
		r.Get("/getnewdata", handlers.postHandler.getAllNewPosts())
		r.Get("/getSinglepost/{postID}", handlers.postHandler.getPost())
		r.Get("/getSinglenewpost/{postID}", handlers.postHandler.getNewPost())
		r.Post("/sendcomment", handlers.commentHandler.sendComment())
		r.Get("/getcomments", handlers.commentHandler.getComments())

		r.Get("/", healthCheck())
	})

	// Locally stored assets are served by the API itself.
	if uploadsDir != "" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir)))
		r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
			fileServer.ServeHTTP(w, r)
		})
	}
}

func healthCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("Blog API is running!"))
	}
}
