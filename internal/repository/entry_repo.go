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

type EntryRepository interface {
	Save(ctx context.Context, entry *models.StandupEntry) (int64, error)
	ListTeamSince(ctx context.Context, teamID string, since time.Time) ([]*models.StandupEntry, error)
	ListForTeamsSince(ctx context.Context, teamIDs []string, since time.Time) ([]*models.StandupEntry, error)
	DistinctAuthorsSince(ctx context.Context, teamID string, since time.Time) ([]string, error)
}

type EntryRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewEntryRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *EntryRepo {
	return &EntryRepo{
		db:     db,
		getter: c,
	}
}

func (r *EntryRepo) Save(ctx context.Context, entry *models.StandupEntry) (int64, error) {
	const op = "entry_repo.Save"

	query := `
		INSERT INTO standup_entries (team_id, user_id, text, summary, audio_url, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id, created_at;
	`

	err := r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(
		ctx,
		query,
		entry.TeamID,
		entry.UserID,
		entry.Text,
		entry.Summary,
		entry.AudioURL,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return 0, lib.Err(op, err)
	}

	return entry.ID, nil
}

func (r *EntryRepo) ListTeamSince(ctx context.Context, teamID string, since time.Time) ([]*models.StandupEntry, error) {
	const op = "entry_repo.ListTeamSince"

	query := `
		SELECT id, team_id, user_id, text, summary, audio_url, created_at
		FROM standup_entries
		WHERE team_id = $1 AND created_at >= $2
		ORDER BY created_at;
	`

	var entries []*models.StandupEntry
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &entries, query, teamID, since)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.StandupEntry{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return entries, nil
}

func (r *EntryRepo) ListForTeamsSince(ctx context.Context, teamIDs []string, since time.Time) ([]*models.StandupEntry, error) {
	const op = "entry_repo.ListForTeamsSince"

	if len(teamIDs) == 0 {
		return []*models.StandupEntry{}, nil
	}

	query := `
		SELECT id, team_id, user_id, text, summary, audio_url, created_at
		FROM standup_entries
		WHERE team_id = ANY($1) AND created_at >= $2
		ORDER BY created_at DESC;
	`

	var entries []*models.StandupEntry
	err := r.getter.DefaultTrOrDB(ctx, r.db).
		SelectContext(ctx, &entries, query, pq.StringArray(teamIDs), since)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.StandupEntry{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return entries, nil
}

func (r *EntryRepo) DistinctAuthorsSince(ctx context.Context, teamID string, since time.Time) ([]string, error) {
	const op = "entry_repo.DistinctAuthorsSince"

	query := `
		SELECT DISTINCT user_id
		FROM standup_entries
		WHERE team_id = $1 AND created_at >= $2;
	`

	var userIDs []string
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &userIDs, query, teamID, since)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []string{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return userIDs, nil
}
