package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/inkpost/blog-backend/database"
	"github.com/inkpost/blog-backend/errs"
	"github.com/inkpost/blog-backend/models"
)

type commentHandler struct {
	responder Responder
	logger    zerolog.Logger
	comments  database.CommentStore
	validate  *validator.Validate
}

func newCommentHandler(comments database.CommentStore) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return commentHandler{
		responder: NewResponder(logger),
		logger:    logger,
		comments:  comments,
		validate:  validate,
	}
}

type commentPayload struct {
	Date        string `json:"date" validate:"required"`
	Description string `json:"desc" validate:"required"`
}

// sendComment stores a site-wide comment and acknowledges with the
// historical plain-string body rather than the created document.
func (h commentHandler) sendComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload commentPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode comment request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.validate.Struct(payload); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError(verrs[0].Field()))
				return
			}
			h.responder.WriteError(w, errs.NewBadRequestError("invalid comment payload"))
			return
		}

		comment := &models.Comment{
			Date:        payload.Date,
			Description: payload.Description,
		}

		if err := h.comments.Add(comment); err != nil {
			h.responder.WriteError(w, errs.NewQueryError("send", "comment", err))
			return
		}

		h.responder.WriteJSON(w, "Comment sent successfully!")
	}
}

// getComments returns all comments as-is, storage order. An empty
// collection is an empty JSON array, never null.
func (h commentHandler) getComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comments, err := h.comments.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewQueryError("find", "comments", err))
			return
		}

		if comments == nil {
			comments = []*models.Comment{}
		}
		h.responder.WriteJSON(w, comments)
	}
}
