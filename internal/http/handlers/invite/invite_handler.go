package invite

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"remotesync/internal/clients/identity"
	"remotesync/internal/http/api"
	"remotesync/internal/http/middleware"
	"remotesync/internal/lib/sl"
	"remotesync/internal/service"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=inviteService --exported --structname=MockInviteService
type inviteService interface {
	Accept(ctx context.Context, user *identity.User, token string) (*api.TeamSchema, error)
}

type InviteHandler struct {
	log     *slog.Logger
	service inviteService
}

func NewInviteHandler(log *slog.Logger, s inviteService) *InviteHandler {
	return &InviteHandler{
		log:     log,
		service: s,
	}
}

type AcceptRequest struct {
	Token string `json:"token" validate:"required"`
}

func (h *InviteHandler) Accept(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.invite.Accept"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", chimw.GetReqID(r.Context())),
	)

	ctx := r.Context()
	user, _ := middleware.UserFromContext(ctx)

	var input AcceptRequest

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

	resp, err := h.service.Accept(ctx, user, input.Token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInvite) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, err.Error()))
			return
		}
		log.Error("error while accepting invite", sl.Err(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("invite accepted", slog.String("team_id", resp.ID))
	render.JSON(w, r, api.TeamResponse{Team: *resp})
}
