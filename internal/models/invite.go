package models

import "time"

const (
	InvitePending  = "pending"
	InviteAccepted = "accepted"
)

type Invite struct {
	ID        string     `db:"id"`
	TeamID    string     `db:"team_id"`
	Email     string     `db:"email"`
	Token     string     `db:"token"`
	Status    string     `db:"status"`
	CreatedAt *time.Time `db:"created_at"`
}
