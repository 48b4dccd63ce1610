package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/inkpost/blog-backend/assets"
	"github.com/inkpost/blog-backend/database"
	"github.com/inkpost/blog-backend/errs"
	"github.com/inkpost/blog-backend/models"
	"github.com/inkpost/blog-backend/services"
)

// maxUploadMemory bounds the in-memory part of multipart parsing;
// larger files spill to temp files.
const maxUploadMemory = 32 << 20

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	posts     database.PostStore
	newPosts  database.NewPostStore
	ingestor  *services.PostIngestor
}

func newPostHandler(posts database.PostStore, newPosts database.NewPostStore, store assets.Store) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(logger),
		logger:    logger,
		posts:     posts,
		newPosts:  newPosts,
		ingestor:  services.NewPostIngestor(store, newPosts),
	}
}

// createPost accepts a multipart form with title, descr, content and
// an image under "file", runs it through the ingestion workflow and
// returns the created document with 201.
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart form"))
			return
		}

		input := services.PostInput{
			Title:       r.FormValue("title"),
			Description: r.FormValue("descr"),
			Content:     r.FormValue("content"),
		}

		var (
			file     io.Reader
			filename string
		)
		if f, header, err := r.FormFile("file"); err == nil {
			defer f.Close()
			file = f
			filename = header.Filename
		}

		post, err := h.ingestor.Ingest(r.Context(), input, file, filename)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, post)
	}
}

// getAllPosts returns every document in the posts collection as-is.
// An empty collection is an empty JSON array, never null.
func (h postHandler) getAllPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.posts.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewQueryError("find", "posts", err))
			return
		}

		if posts == nil {
			posts = []*models.Post{}
		}
		h.responder.WriteJSON(w, posts)
	}
}

// getAllNewPosts returns every document written by the ingestion
// workflow.
func (h postHandler) getAllNewPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.newPosts.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewQueryError("find", "newposts", err))
			return
		}

		if posts == nil {
			posts = []*models.NewPost{}
		}
		h.responder.WriteJSON(w, posts)
	}
}

func (h postHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("invalid post id", "postID"))
			return
		}

		post, err := h.posts.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFound("post"))
				return
			}
			h.responder.WriteError(w, errs.NewQueryError("find", "post", err))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

func (h postHandler) getNewPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("invalid post id", "postID"))
			return
		}

		post, err := h.newPosts.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFound("post"))
				return
			}
			h.responder.WriteError(w, errs.NewQueryError("find", "newpost", err))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}
