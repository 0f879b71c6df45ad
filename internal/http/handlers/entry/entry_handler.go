package entry

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"remotesync/internal/clients/identity"
	"remotesync/internal/clients/inference"
	"remotesync/internal/http/api"
	"remotesync/internal/http/middleware"
	"remotesync/internal/lib/sl"
	repo "remotesync/internal/repository"
	"remotesync/internal/service"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// submissions are short voice notes; 32 MiB of form data is plenty
const maxSubmissionBytes = 32 << 20

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=entryService --exported --structname=MockEntryService
type entryService interface {
	Submit(ctx context.Context, user *identity.User, teamID, text string, audio []byte, contentType string) (*api.EntrySchema, error)
}

type EntryHandler struct {
	log     *slog.Logger
	service entryService
}

func NewEntryHandler(log *slog.Logger, s entryService) *EntryHandler {
	return &EntryHandler{
		log:     log,
		service: s,
	}
}

// Submit accepts a multipart form with team_id, optional text and an
// optional audio file. At least one of text/audio must be present.
func (h *EntryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.entry.Submit"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", chimw.GetReqID(r.Context())),
	)

	ctx := r.Context()
	user, _ := middleware.UserFromContext(ctx)

	if err := r.ParseMultipartForm(maxSubmissionBytes); err != nil {
		log.Error("failed to parse multipart form", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	teamID := r.FormValue("team_id")
	if teamID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrValidationErr, "field 'team_id' is required"))
		return
	}

	text := r.FormValue("text")

	var audio []byte
	var contentType string

	file, header, err := r.FormFile("audio")
	switch {
	case err == nil:
		defer file.Close()

		audio, err = io.ReadAll(file)
		if err != nil {
			log.Error("failed to read audio part", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
			return
		}
		contentType = header.Header.Get("Content-Type")
	case errors.Is(err, http.ErrMissingFile):
		// text-only submission
	default:
		log.Error("failed to read audio part", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	resp, err := h.service.Submit(ctx, user, teamID, text, audio, contentType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptySubmission):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, err.Error()))
		case errors.Is(err, repo.ErrNotFound):
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
		case errors.Is(err, service.ErrNotMember):
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, api.Error(api.ErrCodeForbidden, err.Error()))
		case errors.Is(err, inference.ErrUpstream):
			log.Error("inference provider failure", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.Error(api.ErrCodeUpstream, err.Error()))
		default:
			log.Error("error while submitting entry", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
		}
		return
	}

	log.Info("entry submitted", slog.String("team_id", teamID), slog.Int64("entry_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.EntryResponse{Entry: *resp})
}
