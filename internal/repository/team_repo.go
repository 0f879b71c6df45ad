package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"remotesync/internal/lib"
	"remotesync/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, teamID string) (*models.Team, error)
	GetByInviteToken(ctx context.Context, token string) (*models.Team, error)
	UpdateSettings(ctx context.Context, teamID string, settings models.TeamSettings, recipients []string) error
	ListAll(ctx context.Context) ([]*models.Team, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Team, error)
	MarkReminded(ctx context.Context, teamID string, day time.Time) error
	MarkReported(ctx context.Context, teamID string, day time.Time) error
	Delete(ctx context.Context, teamID string) error
}

type TeamRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewTeamRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *TeamRepo {
	return &TeamRepo{
		db:     db,
		getter: c,
	}
}

func (r *TeamRepo) Create(ctx context.Context, team *models.Team) error {
	const op = "team_repo.Create"

	query := `
		INSERT INTO teams (id, name, owner_id, settings, report_recipients, invite_token, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now());
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		query,
		team.ID,
		team.Name,
		team.OwnerID,
		team.Settings,
		team.ReportRecipients,
		team.InviteToken,
	)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return ErrTeamExists
			}
		}
		return lib.Err(op, err)
	}

	return nil
}

func (r *TeamRepo) GetByID(ctx context.Context, teamID string) (*models.Team, error) {
	const op = "team_repo.GetByID"

	query := `
		SELECT id, name, owner_id, settings, report_recipients, invite_token,
		       reminder_sent_on, report_sent_on, created_at
		FROM teams
		WHERE id = $1;
	`

	var team models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &team, query, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &team, nil
}

func (r *TeamRepo) GetByInviteToken(ctx context.Context, token string) (*models.Team, error) {
	const op = "team_repo.GetByInviteToken"

	query := `
		SELECT id, name, owner_id, settings, report_recipients, invite_token,
		       reminder_sent_on, report_sent_on, created_at
		FROM teams
		WHERE invite_token = $1;
	`

	var team models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &team, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &team, nil
}

func (r *TeamRepo) UpdateSettings(ctx context.Context, teamID string, settings models.TeamSettings, recipients []string) error {
	const op = "team_repo.UpdateSettings"

	query := `
		UPDATE teams
		SET settings = $1, report_recipients = $2
		WHERE id = $3;
	`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).
		ExecContext(ctx, query, settings, pq.StringArray(recipients), teamID)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *TeamRepo) ListAll(ctx context.Context) ([]*models.Team, error) {
	const op = "team_repo.ListAll"

	query := `
		SELECT id, name, owner_id, settings, report_recipients, invite_token,
		       reminder_sent_on, report_sent_on, created_at
		FROM teams
		ORDER BY created_at;
	`

	var teams []*models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &teams, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Team{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return teams, nil
}

func (r *TeamRepo) ListByUser(ctx context.Context, userID string) ([]*models.Team, error) {
	const op = "team_repo.ListByUser"

	query := `
		SELECT t.id, t.name, t.owner_id, t.settings, t.report_recipients, t.invite_token,
		       t.reminder_sent_on, t.report_sent_on, t.created_at
		FROM teams t
		JOIN team_members m ON m.team_id = t.id
		WHERE m.user_id = $1
		ORDER BY t.created_at;
	`

	var teams []*models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &teams, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Team{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return teams, nil
}

func (r *TeamRepo) MarkReminded(ctx context.Context, teamID string, day time.Time) error {
	const op = "team_repo.MarkReminded"

	query := `UPDATE teams SET reminder_sent_on = $1 WHERE id = $2;`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, day, teamID)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *TeamRepo) MarkReported(ctx context.Context, teamID string, day time.Time) error {
	const op = "team_repo.MarkReported"

	query := `UPDATE teams SET report_sent_on = $1 WHERE id = $2;`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, day, teamID)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

// Delete removes the team row. Memberships, invites and entries are removed
// by the ON DELETE CASCADE rules declared in the schema.
func (r *TeamRepo) Delete(ctx context.Context, teamID string) error {
	const op = "team_repo.Delete"

	query := `DELETE FROM teams WHERE id = $1;`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, teamID)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
