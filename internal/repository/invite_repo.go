package repo

import (
	"context"

	"remotesync/internal/lib"
	"remotesync/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type InviteRepository interface {
	Create(ctx context.Context, invite *models.Invite) error
	MarkAccepted(ctx context.Context, teamID, email string) error
}

type InviteRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewInviteRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *InviteRepo {
	return &InviteRepo{
		db:     db,
		getter: c,
	}
}

func (r *InviteRepo) Create(ctx context.Context, invite *models.Invite) error {
	const op = "invite_repo.Create"

	query := `
		INSERT INTO invites (id, team_id, email, token, status, created_at)
		VALUES ($1, $2, $3, $4, $5, now());
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		query,
		invite.ID,
		invite.TeamID,
		invite.Email,
		invite.Token,
		invite.Status,
	)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

// MarkAccepted flips pending invite rows for the accepting user's email.
// A join via the reusable team token may not have a matching row, so zero
// updated rows is not an error.
func (r *InviteRepo) MarkAccepted(ctx context.Context, teamID, email string) error {
	const op = "invite_repo.MarkAccepted"

	query := `
		UPDATE invites
		SET status = $1
		WHERE team_id = $2 AND email = $3 AND status = $4;
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).
		ExecContext(ctx, query, models.InviteAccepted, teamID, email, models.InvitePending)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}
