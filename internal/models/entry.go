package models

import "time"

type StandupEntry struct {
	ID        int64     `db:"id"`
	TeamID    string    `db:"team_id"`
	UserID    string    `db:"user_id"`
	Text      *string   `db:"text"`
	Summary   string    `db:"summary"`
	AudioURL  *string   `db:"audio_url"`
	CreatedAt time.Time `db:"created_at"`
}
