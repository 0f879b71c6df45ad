package repo

import (
	"context"
	"database/sql"
	"errors"

	"remotesync/internal/lib"
	"remotesync/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type MemberRepository interface {
	Add(ctx context.Context, member *models.TeamMember) (bool, error)
	Get(ctx context.Context, teamID, userID string) (*models.TeamMember, error)
	List(ctx context.Context, teamID string) ([]*models.TeamMember, error)
	Remove(ctx context.Context, teamID, userID string) error
}

type MemberRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewMemberRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *MemberRepo {
	return &MemberRepo{
		db:     db,
		getter: c,
	}
}

// Add inserts a membership row. Returns false when the row already existed,
// which makes repeated invite acceptance idempotent.
func (r *MemberRepo) Add(ctx context.Context, member *models.TeamMember) (bool, error) {
	const op = "member_repo.Add"

	query := `
		INSERT INTO team_members (team_id, user_id, role, created_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (team_id, user_id) DO NOTHING;
	`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).
		ExecContext(ctx, query, member.TeamID, member.UserID, member.Role)
	if err != nil {
		return false, lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, lib.Err(op, err)
	}

	return rowsAffected > 0, nil
}

func (r *MemberRepo) Get(ctx context.Context, teamID, userID string) (*models.TeamMember, error) {
	const op = "member_repo.Get"

	query := `
		SELECT team_id, user_id, role, created_at
		FROM team_members
		WHERE team_id = $1 AND user_id = $2;
	`

	var member models.TeamMember
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &member, query, teamID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &member, nil
}

func (r *MemberRepo) List(ctx context.Context, teamID string) ([]*models.TeamMember, error) {
	const op = "member_repo.List"

	query := `
		SELECT team_id, user_id, role, created_at
		FROM team_members
		WHERE team_id = $1
		ORDER BY created_at;
	`

	var members []*models.TeamMember
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &members, query, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.TeamMember{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return members, nil
}

func (r *MemberRepo) Remove(ctx context.Context, teamID, userID string) error {
	const op = "member_repo.Remove"

	query := `DELETE FROM team_members WHERE team_id = $1 AND user_id = $2;`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, teamID, userID)
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
