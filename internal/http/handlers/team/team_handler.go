package team

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"remotesync/internal/clients/identity"
	"remotesync/internal/http/api"
	"remotesync/internal/lib/sl"
	"remotesync/internal/models"
	repo "remotesync/internal/repository"
	"remotesync/internal/service"

	"remotesync/internal/http/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=teamService --exported --structname=MockTeamService
type teamService interface {
	Create(ctx context.Context, owner *identity.User, name string, settings models.TeamSettings) (*api.TeamSchema, error)
	Invite(ctx context.Context, caller *identity.User, teamID string, emails []string) error
	UpdateSettings(ctx context.Context, caller *identity.User, teamID string, patch *models.TeamSettings, recipients []string) (*api.TeamSchema, error)
	RemoveMember(ctx context.Context, caller *identity.User, teamID, memberID string) error
	Members(ctx context.Context, caller *identity.User, teamID string) ([]api.MemberSchema, error)
}

type TeamHandler struct {
	log     *slog.Logger
	service teamService
}

func NewTeamHandler(log *slog.Logger, s teamService) *TeamHandler {
	return &TeamHandler{
		log:     log,
		service: s,
	}
}

type TeamCreateRequest struct {
	Name     string              `json:"name" validate:"required,max=64"`
	Settings models.TeamSettings `json:"settings"`
}

type TeamInviteRequest struct {
	Emails []string `json:"emails" validate:"required,min=1,dive,email"`
}

type TeamSettingsRequest struct {
	Settings         *models.TeamSettings `json:"settings"`
	ReportRecipients []string             `json:"report_recipients"`
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", chimw.GetReqID(r.Context())),
	)

	ctx := r.Context()
	user, _ := middleware.UserFromContext(ctx)

	var input TeamCreateRequest

	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	resp, err := h.service.Create(ctx, user, input.Name, input.Settings)
	if err != nil {
		if errors.Is(err, models.ErrInvalidSettings) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrValidationErr, err.Error()))
			return
		}
		log.Error("error while creating team", sl.Err(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("team created", slog.String("team_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.TeamResponse{Team: *resp})
}

func (h *TeamHandler) Invite(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Invite"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", chimw.GetReqID(r.Context())),
	)

	ctx := r.Context()
	user, _ := middleware.UserFromContext(ctx)
	teamID := chi.URLParam(r, "team_id")

	var input TeamInviteRequest

	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	if err := h.service.Invite(ctx, user, teamID, input.Emails); err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
		case errors.Is(err, service.ErrNotMember):
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, api.Error(api.ErrCodeForbidden, err.Error()))
		default:
			log.Error("error while sending invites", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
		}
		return
	}

	log.Info("invites sent", slog.String("team_id", teamID), slog.Int("count", len(input.Emails)))
	render.JSON(w, r, api.StatusResponse{Status: "invites sent successfully"})
}

func (h *TeamHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.UpdateSettings"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", chimw.GetReqID(r.Context())),
	)

	ctx := r.Context()
	user, _ := middleware.UserFromContext(ctx)
	teamID := chi.URLParam(r, "team_id")

	var input TeamSettingsRequest

	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	resp, err := h.service.UpdateSettings(ctx, user, teamID, input.Settings, input.ReportRecipients)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
		case errors.Is(err, service.ErrNotOwner):
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, api.Error(api.ErrCodeForbidden, err.Error()))
		case errors.Is(err, models.ErrInvalidSettings):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrValidationErr, err.Error()))
		default:
			log.Error("error while updating settings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
		}
		return
	}

	log.Info("settings updated", slog.String("team_id", teamID))
	render.JSON(w, r, api.TeamResponse{Team: *resp})
}

func (h *TeamHandler) Members(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Members"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", chimw.GetReqID(r.Context())),
	)

	ctx := r.Context()
	user, _ := middleware.UserFromContext(ctx)
	teamID := chi.URLParam(r, "team_id")

	members, err := h.service.Members(ctx, user, teamID)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
		case errors.Is(err, service.ErrNotMember):
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, api.Error(api.ErrCodeForbidden, err.Error()))
		default:
			log.Error("error while listing members", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
		}
		return
	}

	render.JSON(w, r, api.MembersResponse{Members: members})
}

func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.RemoveMember"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", chimw.GetReqID(r.Context())),
	)

	ctx := r.Context()
	user, _ := middleware.UserFromContext(ctx)
	teamID := chi.URLParam(r, "team_id")
	memberID := chi.URLParam(r, "member_id")

	if err := h.service.RemoveMember(ctx, user, teamID, memberID); err != nil {
		switch {
		case errors.Is(err, service.ErrOwnerImmutable):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, err.Error()))
		case errors.Is(err, service.ErrNotOwner):
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, api.Error(api.ErrCodeForbidden, err.Error()))
		case errors.Is(err, repo.ErrNotFound):
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
		default:
			log.Error("error while removing member", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
		}
		return
	}

	log.Info("member removed", slog.String("team_id", teamID), slog.String("member_id", memberID))
	render.JSON(w, r, api.StatusResponse{Status: "member removed"})
}
